package persona

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atomicstack/persona-picker/internal/logging"
	"github.com/atomicstack/persona-picker/internal/logging/events"
)

// Detail is how much of a random persona is filled in.
type Detail int

const (
	DetailMinimal Detail = iota + 1
	DetailStandard
	DetailDetailed
	DetailFull
)

// DetailLabels describes each level in menu order.
var DetailLabels = []string{
	"Minimal (Name, Gender, Age, Nationality, Profession)",
	"Standard (Adds Basic Location, Username, Password)",
	"Detailed (Adds Specific Location, Platforms, Interests)",
	"Full (Adds Phrases, Picture)",
}

// Platforms are the networks random personas are spread across.
var Platforms = []string{
	"Twitter", "Facebook", "Instagram", "Reddit", "LinkedIn", "TikTok",
	"Pinterest", "YouTube", "Discord", "Telegram", "Snapchat", "Mastodon", "Bluesky",
}

const (
	nameRetries      = 50
	fallbackNation   = "american"
	fallbackFirst    = "Alex"
	fallbackLast     = "Smith"
	interestAttempts = 15 * MaxInterests
)

func (d Detail) String() string {
	if d < DetailMinimal || d > DetailFull {
		return fmt.Sprintf("detail(%d)", int(d))
	}
	return strings.ToLower(strings.Fields(DetailLabels[d-1])[0])
}

// Valid reports whether d is one of the four levels.
func (d Detail) Valid() bool {
	return d >= DetailMinimal && d <= DetailFull
}

// Randomizer fills profiles from catalog data without prompting.
type Randomizer struct {
	data  Data
	rng   Rand
	now   func() time.Time
	newID func() string
}

// NewRandomizer returns a Randomizer drawing from rng.
func NewRandomizer(data Data, rng Rand) *Randomizer {
	return &Randomizer{data: data, rng: rng, now: time.Now, newID: uuid.NewString}
}

// Generate builds a profile at the given detail level. Missing data falls
// back to fixed defaults rather than failing.
func (r *Randomizer) Generate(detail Detail) *Profile {
	p := &Profile{
		ID:        r.newID(),
		CreatedAt: r.now().UTC().Truncate(time.Second),
		Gender:    GenderMale,
	}
	if r.rng.Intn(2) == 1 {
		p.Gender = GenderFemale
	}
	p.Nationality, p.FirstName, p.LastName = r.names(p.Gender)
	p.Age = between(r.rng, MinAge, 75)
	p.Profession = r.profession()

	if detail >= DetailStandard {
		p.Location = Earth
		if path, _, _ := r.leaf("locations"); len(path) > 0 {
			p.Location = joinReversed(head(path, 2))
		}
		suggestions := UsernameSuggestions(p.FirstName, p.LastName, p.Age, r.now().Year(), r.rng)
		p.Username = suggestions[r.rng.Intn(len(suggestions))]
		password, err := GeneratePassword(PasswordLengths[0])
		if err != nil {
			logging.Error(err)
		}
		p.Password = password
	}

	if detail >= DetailDetailed {
		if path, item, ok := r.leaf("locations"); len(path) > 0 {
			if ok {
				path = append(path, item)
			}
			p.Location = joinReversed(head(path, 4))
		}
		p.Platforms = sample(r.rng, Platforms, between(r.rng, 1, 4))
		p.Interests = r.interests()
	}

	if detail >= DetailFull {
		if phrases, err := r.data.Phrases(DefaultLanguage); err == nil && len(phrases) > 0 {
			p.CommonPhrases = sample(r.rng, phrases, between(r.rng, 1, MaxPhrases))
		}
		if pictures, err := r.data.Pictures(); err == nil && len(pictures) > 0 {
			candidates := FilterPictures(pictures, p.Gender)
			if len(candidates) == 0 {
				candidates = pictures
			}
			p.ProfilePicture = candidates[r.rng.Intn(len(candidates))]
		}
	}

	p.Biography = Biography(p)
	events.App.Step("random", detail.String())
	return p
}

// names draws nationalities until one has both name lists.
func (r *Randomizer) names(gender string) (nationality, first, last string) {
	root, err := r.data.Tree("nationalities")
	if err != nil {
		logging.Error(err)
	}
	for attempt := 0; attempt < nameRetries; attempt++ {
		nat := fallbackNation
		if root != nil {
			if _, item, ok := root.RandomLeaf(r.rng); ok {
				nat = strings.ToLower(item)
			}
		}
		firsts, err1 := r.data.FirstNames(gender, nat)
		lasts, err2 := r.data.LastNames(nat)
		if err1 == nil && err2 == nil && len(firsts) > 0 && len(lasts) > 0 {
			return nat, firsts[r.rng.Intn(len(firsts))], lasts[r.rng.Intn(len(lasts))]
		}
		if root == nil {
			break
		}
	}
	logging.Trace("random.names.fallback", map[string]interface{}{"gender": gender})
	return fallbackNation, fallbackFirst, fallbackLast
}

func (r *Randomizer) profession() string {
	path, item, ok := r.leaf("professions")
	switch {
	case ok:
		return item
	case len(path) > 0:
		return path[len(path)-1]
	}
	return Unspecified
}

func (r *Randomizer) interests() []string {
	root, err := r.data.Tree("interests")
	if err != nil {
		return []string{}
	}
	out := []string{}
	for attempt := 0; attempt < interestAttempts && len(out) < MaxInterests; attempt++ {
		if _, item, ok := root.RandomLeaf(r.rng); ok && !contains(out, item) {
			out = append(out, item)
		}
	}
	return out
}

func (r *Randomizer) leaf(tree string) ([]string, string, bool) {
	root, err := r.data.Tree(tree)
	if err != nil {
		return nil, "", false
	}
	return root.RandomLeaf(r.rng)
}

// sample draws k distinct entries without disturbing list.
func sample(rng Rand, list []string, k int) []string {
	pool := append([]string(nil), list...)
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

func head(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
