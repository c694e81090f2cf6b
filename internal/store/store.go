// Package store keeps persona profiles as JSON files and writes the plain
// text and timestamped JSON exports next to them.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/persona-picker/internal/logging/events"
	"github.com/atomicstack/persona-picker/internal/persona"
)

const (
	profileExt = ".json"
	textExt    = ".txt"
	stampFmt   = "20060102_150405"
)

var (
	// ErrNotFound is returned when no profile matches a name.
	ErrNotFound = errors.New("profile not found")
	// ErrInvalidName is returned for empty names or names with separators.
	ErrInvalidName = errors.New("invalid profile name")
)

// Store reads and writes profiles under two directories.
type Store struct {
	profiles string
	exports  string
}

// New returns a Store. Directories are created on first write.
func New(profilesDir, exportsDir string) *Store {
	return &Store{profiles: profilesDir, exports: exportsDir}
}

// ProfilesDir returns the directory holding saved profiles.
func (s *Store) ProfilesDir() string { return s.profiles }

// ExportsDir returns the directory holding exports.
func (s *Store) ExportsDir() string { return s.exports }

// Path returns where the profile called name is stored.
func (s *Store) Path(name string) string {
	return filepath.Join(s.profiles, name+profileExt)
}

// Save writes p as indented JSON to <profiles>/<name>.json.
func (s *Store) Save(p *persona.Profile, name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	path := s.Path(name)
	if err := writeJSON(path, p); err != nil {
		return "", err
	}
	events.Store.Save(name, path)
	return path, nil
}

// Load reads the profile called name.
func (s *Store) Load(name string) (*persona.Profile, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	path := s.Path(name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var p persona.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	events.Store.Load(name)
	return &p, nil
}

// List returns the saved profile names in sorted order. A missing profiles
// directory holds no profiles.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.profiles)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.profiles, err)
	}
	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != profileExt {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), profileExt))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the profile and its text export. The paths actually
// removed are returned; a missing export is not an error.
func (s *Store) Delete(name string) ([]string, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	path := s.Path(name)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("delete %s: %w", path, err)
	}
	removed := []string{path}
	export := filepath.Join(s.exports, name+textExt)
	switch err := os.Remove(export); {
	case err == nil:
		removed = append(removed, export)
	case !errors.Is(err, fs.ErrNotExist):
		return removed, fmt.Errorf("delete %s: %w", export, err)
	}
	events.Store.Delete(name)
	return removed, nil
}

// Find resolves query to a saved profile name: exact matches first, then
// prefixes, substrings and finally the closest fuzzy match.
func (s *Store) Find(query string) (string, error) {
	names, err := s.List()
	if err != nil {
		return "", err
	}
	if name, ok := BestMatch(names, query); ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, query)
}

// BestMatch picks the name best matching query.
func BestMatch(names []string, query string) (string, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(names) == 0 {
		return "", false
	}
	lower := strings.ToLower(trimmed)
	for _, name := range names {
		if strings.EqualFold(name, trimmed) {
			return name, true
		}
	}
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			return name, true
		}
	}
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), lower) {
			return name, true
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return "", false
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return names[best.OriginalIndex], true
}

// ExportJSON writes a timestamped copy <name>_export_YYYYMMDD_HHMMSS.json
// into the exports directory.
func (s *Store) ExportJSON(p *persona.Profile, name string, now time.Time) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	path := filepath.Join(s.exports, fmt.Sprintf("%s_export_%s%s", name, now.Format(stampFmt), profileExt))
	if err := writeJSON(path, p); err != nil {
		return "", err
	}
	events.Store.Export(name, path)
	return path, nil
}

// ExportText writes the plain text report to <exports>/<name>.txt.
func (s *Store) ExportText(p *persona.Profile, name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	path := filepath.Join(s.exports, name+textExt)
	if err := writeFile(path, []byte(Report(p))); err != nil {
		return "", err
	}
	events.Store.Export(name, path)
	return path, nil
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return writeFile(path, append(data, '\n'))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
