package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir string, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestTreeLoadsJSONAndYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "interests.json", `{"Music": {"Genres": ["jazz", "rock"]}, "Sports": ["chess"]}`)
	writeFile(t, dir, "locations.yaml", "Europe:\n  France:\n    - Paris\n")

	c := New(dir)
	interests, err := c.Tree("interests")
	require.NoError(t, err)
	require.Equal(t, []string{"Music", "Sports"}, interests.Keys())
	leaf, ok := interests.Find("Music", "Genres")
	require.True(t, ok)
	require.Equal(t, []string{"jazz", "rock"}, leaf.SortedItems())

	locations, err := c.Tree("locations")
	require.NoError(t, err)
	france, ok := locations.Find("Europe", "France")
	require.True(t, ok)
	require.Equal(t, []string{"Paris"}, france.Items)
}

func TestTreeErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{"Music": [`)
	writeFile(t, dir, "flat.json", `["a", "b"]`)
	c := New(dir)

	_, err := c.Tree("missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = c.Tree("broken")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)

	_, err = c.Tree("flat")
	require.ErrorIs(t, err, ErrNotCategory)
}

func TestTreeFallsBackToGeneralList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "professions/general.txt", "Baker\n\nNurse\n")

	root, err := New(dir).Tree("professions")
	require.NoError(t, err)
	require.Equal(t, []string{"General"}, root.Keys())
	general, _ := root.Child("General")
	require.Equal(t, []string{"Baker", "Nurse"}, general.Items)
}

func TestListTrimsAndSkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "names/female/french.txt", "  Amélie \n\n\tChloé\r\n   \n")
	writeFile(t, dir, "last_names/french.txt", "")
	c := New(dir)

	names, err := c.FirstNames("Female", "French")
	require.NoError(t, err)
	require.Equal(t, []string{"Amélie", "Chloé"}, names)

	last, err := c.LastNames("french")
	require.NoError(t, err)
	require.Empty(t, last)
	require.NotNil(t, last)

	_, err = c.Phrases("english")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = c.Pictures()
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCountsRoundTripThroughCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "nationalities.json", `{"Europe": ["French", "German"], "Broken": {"x": []}}`)
	writeFile(t, dir, "names/male/french.txt", "Louis\nHugo\n")
	writeFile(t, dir, "names/female/french.txt", "Chloé\n")
	writeFile(t, dir, "last_names/french.txt", "Martin\nBernard\nDubois\n")
	c := New(dir)

	empty, err := c.LoadCounts()
	require.NoError(t, err)
	require.Empty(t, empty)

	tree, err := c.Tree("nationalities")
	require.NoError(t, err)
	counts := c.Counts(tree)
	require.Equal(t, Counts{
		"french": {Male: 2, Female: 1, Last: 3},
		"german": {},
	}, counts)

	path, err := c.SaveCounts(counts)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, CountsFile), path)

	loaded, err := c.LoadCounts()
	require.NoError(t, err)
	require.Equal(t, counts, loaded)
	require.Equal(t, "French (M:2, F:1, L:3)", loaded.Label("French"))
	require.Equal(t, "Dutch (M:0, F:0, L:0)", loaded.Label("Dutch"))
}

func TestLoadCountsRejectsMalformedCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CountsFile, "not json")
	counts, err := New(dir).LoadCounts()
	require.Error(t, err)
	require.Empty(t, counts)
}
