package app

import (
	"errors"
	"io"
	"math/rand"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/atomicstack/persona-picker/internal/data/catalog"
	"github.com/atomicstack/persona-picker/internal/logging"
	"github.com/atomicstack/persona-picker/internal/menu"
	"github.com/atomicstack/persona-picker/internal/persona"
	"github.com/atomicstack/persona-picker/internal/picker"
	"github.com/atomicstack/persona-picker/internal/prompt"
	"github.com/atomicstack/persona-picker/internal/store"
	"github.com/atomicstack/persona-picker/internal/ui"
)

const (
	UIAuto = "auto"
	UITUI  = "tui"
	UILine = "line"
)

// Config describes user-provided application options.
type Config struct {
	DataDir     string `validate:"required"`
	ProfilesDir string `validate:"required"`
	ExportsDir  string `validate:"required"`
	UI          string `validate:"oneof=auto tui line"`
	Seed        int64
	PageSize    int `validate:"gte=1,lte=100"`
	Width       int `validate:"gte=0"`
}

// Action is one entry point run against a prepared App.
type Action func(*App) error

// App wires the prompters, catalog, store and persona flows together.
type App struct {
	cfg     Config
	ask     persona.Asker
	sel     *picker.Selector
	catalog *catalog.Catalog
	store   *store.Store
	builder *persona.Builder
	random  *persona.Randomizer
	now     func() time.Time
}

// Run builds an App on the process terminal and executes action.
func Run(cfg Config, action Action) error {
	a := New(cfg, os.Stdin, os.Stdout)
	err := action(a)
	if errors.Is(err, prompt.ErrCanceled) {
		return nil
	}
	return err
}

// New prepares an App reading from in and writing to out. The UI mode picks
// the Bubble Tea prompter or the line prompter.
func New(cfg Config, in io.Reader, out io.Writer) *App {
	p, ask := prompters(cfg, in, out)
	return newApp(cfg, p, ask)
}

func newApp(cfg Config, p menu.Prompter, ask persona.Asker) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	sel := picker.New(p, rng)
	cat := catalog.New(cfg.DataDir)
	st := store.New(cfg.ProfilesDir, cfg.ExportsDir)
	steps := persona.NewSteps(sel, ask, cat, rng)
	steps.SetPageSize(cfg.PageSize)
	return &App{
		cfg:     cfg,
		ask:     ask,
		sel:     sel,
		catalog: cat,
		store:   st,
		builder: persona.NewBuilder(steps, st),
		random:  persona.NewRandomizer(cat, rng),
		now:     time.Now,
	}
}

func prompters(cfg Config, in io.Reader, out io.Writer) (menu.Prompter, persona.Asker) {
	useTUI := UsesTUI(cfg.UI, in, out)
	logging.Trace("app.prompter", map[string]interface{}{"ui": cfg.UI, "tui": useTUI})
	if useTUI {
		return ui.NewPrompter(in, out, cfg.Width), ui.NewAsker(in, out)
	}
	width := cfg.Width
	if width == 0 {
		width = ProbeTerminal(out).Width
	}
	line := prompt.NewLine(in, out, width)
	return line, line
}

// UsesTUI reports whether mode selects the Bubble Tea prompter for the given
// streams. auto requires both to be terminals.
func UsesTUI(mode string, in, out any) bool {
	switch mode {
	case UITUI:
		return true
	case UIAuto:
		return ProbeTerminal(in).IsTerminal && ProbeTerminal(out).IsTerminal
	default:
		return false
	}
}

// Terminal describes one probed stream.
type Terminal struct {
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

type fdFile interface {
	Fd() uintptr
}

// ProbeTerminal checks whether v is a terminal file and reads its size.
// Anything without a file descriptor is not a terminal.
func ProbeTerminal(v any) Terminal {
	f, ok := v.(fdFile)
	if !ok {
		return Terminal{}
	}
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return Terminal{}
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return Terminal{IsTerminal: true, Error: err.Error()}
	}
	return Terminal{IsTerminal: true, Width: width, Height: height}
}
