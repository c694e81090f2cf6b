package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/atomicstack/persona-picker/internal/logging/events"
	"github.com/atomicstack/persona-picker/internal/menu"
)

// CountsFile is the name-count cache kept in the data directory.
const CountsFile = "name_counts.json"

// NameCount holds the number of entries in each name list for one
// nationality.
type NameCount struct {
	Male   int `json:"male"`
	Female int `json:"female"`
	Last   int `json:"last"`
}

// Counts maps lowercase nationality keys to their name counts.
type Counts map[string]NameCount

// Label decorates a nationality for display. Unknown nationalities show
// zero counts.
func (c Counts) Label(nationality string) string {
	n := c[key(nationality)]
	return fmt.Sprintf("%s (M:%d, F:%d, L:%d)", nationality, n.Male, n.Female, n.Last)
}

// Counts scans the name lists for every nationality listed under the
// continents of the nationalities tree. Missing lists count as zero.
func (c *Catalog) Counts(nationalities *menu.Node) Counts {
	out := Counts{}
	if nationalities == nil {
		return out
	}
	for _, continent := range nationalities.Keys() {
		child, _ := nationalities.Child(continent)
		if !child.IsLeaf() {
			continue
		}
		for _, nat := range child.Items {
			out[key(nat)] = NameCount{
				Male:   c.count(c.FirstNames("male", nat)),
				Female: c.count(c.FirstNames("female", nat)),
				Last:   c.count(c.LastNames(nat)),
			}
		}
	}
	return out
}

func (c *Catalog) count(items []string, err error) int {
	if err != nil {
		return 0
	}
	return len(items)
}

// LoadCounts reads the cache. A missing cache yields an empty map.
func (c *Catalog) LoadCounts() (Counts, error) {
	path := filepath.Join(c.dir, CountsFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Counts{}, nil
	}
	if err != nil {
		return Counts{}, fmt.Errorf("read %s: %w", path, err)
	}
	counts := Counts{}
	if err := json.Unmarshal(data, &counts); err != nil {
		return Counts{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return counts, nil
}

// SaveCounts rewrites the cache and returns its path.
func (c *Catalog) SaveCounts(counts Counts) (string, error) {
	path := filepath.Join(c.dir, CountsFile)
	data, err := json.MarshalIndent(counts, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode counts: %w", err)
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", c.dir, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	events.Catalog.Counts(len(counts), path)
	return path, nil
}
