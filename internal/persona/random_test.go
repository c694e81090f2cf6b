package persona

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atomicstack/persona-picker/internal/data/catalog"
)

func newRandomizer(t *testing.T, dir string, seed int64) *Randomizer {
	t.Helper()
	r := NewRandomizer(catalog.New(dir), rand.New(rand.NewSource(seed)))
	r.now = func() time.Time { return fixedNow }
	r.newID = func() string { return "6f1c2a4e-8d3b-4c6f-9a7e-2b5d8c1e0f34" }
	return r
}

func frenchOnly() map[string]string {
	files := fixtureFiles()
	files["nationalities.json"] = `{"Europe": ["French"]}`
	files["names/male/french.txt"] = "Louis\nHugo\n"
	return files
}

func TestGenerateLevels(t *testing.T) {
	dir := writeFixture(t, frenchOnly())
	for seed := int64(1); seed <= 20; seed++ {
		r := newRandomizer(t, dir, seed)

		minimal := r.Generate(DetailMinimal)
		require.NoError(t, minimal.Validate())
		require.Equal(t, "french", minimal.Nationality)
		require.Equal(t, "Martin", minimal.LastName)
		require.Contains(t, []string{"Louis", "Hugo", "Chloé", "Léa"}, minimal.FirstName)
		require.GreaterOrEqual(t, minimal.Age, MinAge)
		require.LessOrEqual(t, minimal.Age, 75)
		require.Contains(t, []string{"Nurse", "Midwife"}, minimal.Profession)
		require.Empty(t, minimal.Location)
		require.Empty(t, minimal.Username)
		require.Equal(t, fixedNow, minimal.CreatedAt)
		require.NotEmpty(t, minimal.Biography)

		standard := r.Generate(DetailStandard)
		require.Equal(t, "France, Europe", standard.Location)
		require.NotEmpty(t, standard.Username)
		require.Len(t, standard.Password, PasswordLengths[0])
		require.Empty(t, standard.Platforms)

		detailed := r.Generate(DetailDetailed)
		require.Equal(t, "Paris, Île-de-France, France, Europe", detailed.Location)
		require.NotEmpty(t, detailed.Platforms)
		require.LessOrEqual(t, len(detailed.Platforms), 4)
		require.NotEmpty(t, detailed.Interests)
		require.LessOrEqual(t, len(detailed.Interests), MaxInterests)
		for _, platform := range detailed.Platforms {
			require.Contains(t, Platforms, platform)
		}
		require.Empty(t, detailed.CommonPhrases)

		full := r.Generate(DetailFull)
		require.NotEmpty(t, full.CommonPhrases)
		require.LessOrEqual(t, len(full.CommonPhrases), MaxPhrases)
		require.Equal(t, FilterPictures([]string{full.ProfilePicture}, full.Gender), []string{full.ProfilePicture})
		require.NoError(t, full.Validate())
	}
}

func TestGenerateWithoutData(t *testing.T) {
	r := newRandomizer(t, t.TempDir(), 3)
	p := r.Generate(DetailFull)
	require.Equal(t, "american", p.Nationality)
	require.Equal(t, "Alex", p.FirstName)
	require.Equal(t, "Smith", p.LastName)
	require.Equal(t, Unspecified, p.Profession)
	require.Equal(t, Earth, p.Location)
	require.Empty(t, p.Interests)
	require.Empty(t, p.CommonPhrases)
	require.Empty(t, p.ProfilePicture)
	require.Contains(t, p.Biography, "Alex Smith is a")
}

func TestDetail(t *testing.T) {
	require.Equal(t, "minimal", DetailMinimal.String())
	require.Equal(t, "full", DetailFull.String())
	require.Equal(t, "detail(9)", Detail(9).String())
	require.True(t, DetailDetailed.Valid())
	require.False(t, Detail(0).Valid())
	require.Len(t, DetailLabels, int(DetailFull))
}

func TestSampleKeepsSource(t *testing.T) {
	src := []string{"a", "b", "c"}
	got := sample(rand.New(rand.NewSource(1)), src, 5)
	require.Len(t, got, 3)
	require.ElementsMatch(t, src, got)
	require.Equal(t, []string{"a", "b", "c"}, src)
}
