// Package catalog loads the hierarchy trees and flat name lists that feed
// the persona steps from a data directory.
package catalog

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/persona-picker/internal/logging/events"
	"github.com/atomicstack/persona-picker/internal/menu"
)

var (
	// ErrNotFound is returned when a tree or list file does not exist.
	ErrNotFound = errors.New("catalog: not found")
	// ErrNotCategory is returned when a tree file does not hold a mapping
	// at its root.
	ErrNotCategory = errors.New("catalog: root is not a category")
)

var treeExtensions = []string{".json", ".yaml", ".yml"}

// Catalog reads data files below a single directory.
type Catalog struct {
	dir string
}

// New returns a Catalog rooted at dir.
func New(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Dir returns the data directory.
func (c *Catalog) Dir() string {
	return c.dir
}

// Tree loads <name>.json, <name>.yaml or <name>.yml. When none exists but a
// flat <name>/general.txt does, the list is wrapped in a single "General"
// category.
func (c *Catalog) Tree(name string) (*menu.Node, error) {
	for _, ext := range treeExtensions {
		path := filepath.Join(c.dir, name+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		root, err := menu.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if !root.IsCategory() {
			return nil, fmt.Errorf("%s: %w", path, ErrNotCategory)
		}
		events.Catalog.Tree(name, path)
		return root, nil
	}

	items, err := c.List(name, "general.txt")
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("tree %q: %w", name, ErrNotFound)
		}
		return nil, err
	}
	return menu.NewCategory(map[string]*menu.Node{"General": menu.NewLeaf(items)}), nil
}

// List loads a text file below the data directory, one item per non-blank
// line with surrounding whitespace trimmed.
func (c *Catalog) List(rel ...string) ([]string, error) {
	path := filepath.Join(append([]string{c.dir}, rel...)...)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	items := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			items = append(items, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	events.Catalog.List(path, len(items))
	return items, nil
}

// FirstNames returns names/<gender>/<nationality>.txt.
func (c *Catalog) FirstNames(gender, nationality string) ([]string, error) {
	return c.List("names", key(gender), key(nationality)+".txt")
}

// LastNames returns last_names/<nationality>.txt.
func (c *Catalog) LastNames(nationality string) ([]string, error) {
	return c.List("last_names", key(nationality)+".txt")
}

// Phrases returns common_phrases/<language>.txt.
func (c *Catalog) Phrases(language string) ([]string, error) {
	return c.List("common_phrases", key(language)+".txt")
}

// Pictures returns profile_pictures.txt.
func (c *Catalog) Pictures() ([]string, error) {
	return c.List("profile_pictures.txt")
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
