package state

// Cursor tracks the highlighted row of a list with a fixed row count. All
// movement methods report whether the position changed.
type Cursor struct {
	pos   int
	count int
}

// NewCursor returns a cursor on the first of count rows.
func NewCursor(count int) Cursor {
	if count < 0 {
		count = 0
	}
	return Cursor{count: count}
}

// Pos returns the highlighted row, or 0 for an empty list.
func (c Cursor) Pos() int {
	return c.pos
}

// Move steps by delta rows, wrapping past either end.
func (c *Cursor) Move(delta int) bool {
	if c.count == 0 {
		return false
	}
	next := ((c.pos+delta)%c.count + c.count) % c.count
	return c.set(next)
}

// Home moves to the first row.
func (c *Cursor) Home() bool {
	return c.Set(0)
}

// End moves to the last row.
func (c *Cursor) End() bool {
	return c.Set(c.count - 1)
}

// PageUp moves up by page rows, stopping at the first row.
func (c *Cursor) PageUp(page int) bool {
	return c.clampBy(-pageRows(page, c.count))
}

// PageDown moves down by page rows, stopping at the last row.
func (c *Cursor) PageDown(page int) bool {
	return c.clampBy(pageRows(page, c.count))
}

// Set moves to idx; out-of-range positions are ignored.
func (c *Cursor) Set(idx int) bool {
	if idx < 0 || idx >= c.count {
		return false
	}
	return c.set(idx)
}

func (c *Cursor) set(idx int) bool {
	old := c.pos
	c.pos = idx
	return old != idx
}

func (c *Cursor) clampBy(delta int) bool {
	if c.count == 0 {
		return false
	}
	next := c.pos + delta
	if next < 0 {
		next = 0
	}
	if next >= c.count {
		next = c.count - 1
	}
	return c.set(next)
}

func pageRows(page, total int) int {
	if page <= 0 || page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}
	return page
}
