package persona

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atomicstack/persona-picker/internal/data/catalog"
	"github.com/atomicstack/persona-picker/internal/menu"
	"github.com/atomicstack/persona-picker/internal/picker"
	"github.com/atomicstack/persona-picker/internal/prompt"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

type choice func(t *testing.T, m menu.Menu) (int, bool)

type prompter struct {
	t       *testing.T
	choices []choice
	menus   []menu.Menu
}

func (p *prompter) Choose(m menu.Menu) (int, bool) {
	p.t.Helper()
	p.menus = append(p.menus, m)
	if len(p.choices) == 0 {
		p.t.Fatalf("unexpected menu %q", m.Title)
		return 0, false
	}
	next := p.choices[0]
	p.choices = p.choices[1:]
	return next(p.t, m)
}

func pick(label string) choice {
	return func(t *testing.T, m menu.Menu) (int, bool) {
		t.Helper()
		for i, opt := range m.Options {
			if opt.Label == label {
				return i + 1, true
			}
		}
		var labels []string
		for _, opt := range m.Options {
			labels = append(labels, opt.Label)
		}
		t.Fatalf("expected option %q in %q, got %q", label, m.Title, labels)
		return 0, false
	}
}

func pickKind(kind menu.Kind) choice {
	return func(t *testing.T, m menu.Menu) (int, bool) {
		t.Helper()
		for i, opt := range m.Options {
			if opt.Kind == kind {
				return i + 1, true
			}
		}
		t.Fatalf("expected %s action in %q", kind, m.Title)
		return 0, false
	}
}

func leave() choice {
	return func(*testing.T, menu.Menu) (int, bool) { return 0, false }
}

type reply struct {
	text    string
	yes     bool
	confirm bool
	cancel  bool
}

func say(text string) reply { return reply{text: text} }
func yes() reply { return reply{confirm: true, yes: true} }
func no() reply { return reply{confirm: true} }
func hangUp() reply { return reply{cancel: true} }

type asker struct {
	t         *testing.T
	replies   []reply
	questions []string
	printed   []string
}

func (a *asker) next(question string) reply {
	a.t.Helper()
	a.questions = append(a.questions, question)
	if len(a.replies) == 0 {
		a.t.Fatalf("unexpected question %q", question)
	}
	r := a.replies[0]
	a.replies = a.replies[1:]
	return r
}

func (a *asker) Ask(question, def string, validate func(string) error) (string, error) {
	a.t.Helper()
	for {
		r := a.next(question)
		if r.cancel {
			return "", prompt.ErrCanceled
		}
		if r.confirm {
			a.t.Fatalf("expected a confirm for %q, got a text question", question)
		}
		text := r.text
		if text == "" {
			text = def
		}
		if validate != nil {
			if err := validate(text); err != nil {
				a.printed = append(a.printed, err.Error())
				continue
			}
		}
		return text, nil
	}
}

func (a *asker) Confirm(question string, def bool) (bool, error) {
	a.t.Helper()
	r := a.next(question)
	if r.cancel {
		return false, prompt.ErrCanceled
	}
	if !r.confirm {
		a.t.Fatalf("expected a text answer for %q, got a confirm", question)
	}
	return r.yes, nil
}

func (a *asker) Println(text string) {
	a.printed = append(a.printed, text)
}

func (a *asker) done() {
	a.t.Helper()
	require.Empty(a.t, a.replies, "unused replies")
}

type savedProfile struct {
	name    string
	profile Profile
}

type saver struct {
	saved    []savedProfile
	exported []string
	err      error
}

func (s *saver) Save(p *Profile, name string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, savedProfile{name: name, profile: *p})
	return filepath.Join("profiles", name+".json"), nil
}

func (s *saver) ExportText(p *Profile, name string) (string, error) {
	s.exported = append(s.exported, name)
	return filepath.Join("exports", name+".txt"), nil
}

func writeFixture(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func fixtureFiles() map[string]string {
	return map[string]string{
		"nationalities.json":         `{"Europe": ["French", "Icelandic"], "Asia": ["Japanese"]}`,
		"names/male/french.txt":      "Louis\nHugo\n",
		"names/female/french.txt":    "Chloé\nLéa\n",
		"names/male/icelandic.txt":   "",
		"last_names/french.txt":      "Martin\n",
		"interests.json":             `{"Music": {"Genres": ["jazz", "rock", "blues"]}, "Games": ["chess"]}`,
		"professions.json":           `{"Health": {"Nursing": ["Nurse", "Midwife"]}}`,
		"locations.json":             `{"Europe": {"France": {"Île-de-France": {"Paris": ["Montmartre"]}}}}`,
		"common_phrases/english.txt": "Cheers\nNo worries\n",
		"profile_pictures.txt":       "https://img.example/men/1.jpg\nhttps://img.example/women/2.jpg\n",
	}
}

type harness struct {
	prompter *prompter
	asker    *asker
	saver    *saver
	steps    *Steps
	builder  *Builder
}

func newHarness(t *testing.T, dataDir string, choices []choice, replies []reply) *harness {
	t.Helper()
	p := &prompter{t: t, choices: choices}
	a := &asker{t: t, replies: replies}
	rng := rand.New(rand.NewSource(7))
	steps := NewSteps(picker.New(p, rng), a, catalog.New(dataDir), rng)
	steps.now = func() time.Time { return fixedNow }
	sv := &saver{}
	b := NewBuilder(steps, sv)
	b.now = func() time.Time { return fixedNow }
	b.newID = func() string { return "6f1c2a4e-8d3b-4c6f-9a7e-2b5d8c1e0f34" }
	return &harness{prompter: p, asker: a, saver: sv, steps: steps, builder: b}
}

func (h *harness) done(t *testing.T) {
	t.Helper()
	require.Empty(t, h.prompter.choices, "unused menu choices")
	h.asker.done()
}

func containsLine(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}

var errDisk = errors.New("disk full")
