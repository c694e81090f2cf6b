package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/persona-picker/internal/persona"
	"github.com/atomicstack/persona-picker/internal/prompt"
)

const (
	titleMain    = "Main Menu:"
	titleLevel   = "Select level of random persona detail:"
	titleLoad    = "Select a persona to load:"
	promptSave   = "Do you want to save this generated profile?"
	promptDelete = "Are you sure you want to delete this persona?"

	msgNoProfiles = "No saved personas found."
	msgGoodbye    = "Thank you for using persona-picker! We hope to see you back soon."
)

// ErrInexactName is returned when a destructive command without a
// confirmation names no saved persona exactly.
var ErrInexactName = errors.New("no exact persona match")

var (
	mainOptions    = []string{"Create new persona", "Create random persona", "Load existing persona", "View program information", "Exit"}
	personaOptions = []string{"View persona details", "Edit persona", "Export persona (JSON)", "Export persona (TXT)", "Delete persona", "Back to main menu"}
)

// Info is shown by the info command and the main menu.
const Info = `persona-picker builds realistic fictitious profiles ("sock puppets") for
OSINT and cybersecurity training, awareness sessions and ethical hacking labs.
Profiles are assembled from the catalog in the data directory and saved as
JSON with a plain text export.

Stay safe, stay ethical.`

// Menu runs the interactive main menu until the user exits.
func (a *App) Menu() error {
	for {
		idx, ok := a.sel.ChooseOne("main", titleMain, mainOptions)
		if !ok || idx == len(mainOptions)-1 {
			a.ask.Println(msgGoodbye)
			return nil
		}
		var err error
		switch idx {
		case 0:
			err = a.Create()
		case 1:
			err = a.Random(0)
		case 2:
			err = a.Load()
		case 3:
			err = a.Info()
		}
		if errors.Is(err, prompt.ErrCanceled) {
			return nil
		}
		if err != nil {
			a.ask.Println("Error: " + err.Error())
		}
	}
}

// Create runs the guided creation flow.
func (a *App) Create() error {
	a.ask.Println("--- Starting New Persona Creation ---")
	_, err := a.builder.Create()
	switch {
	case errors.Is(err, persona.ErrAborted):
		return nil
	case err != nil:
		return err
	}
	a.ask.Println("Persona creation process complete.")
	return nil
}

// Random generates a persona at detail, asking for the level when detail is
// not valid, then offers to save it.
func (a *App) Random(detail persona.Detail) error {
	if !detail.Valid() {
		idx, ok := a.sel.ChooseOne("random-level", titleLevel, persona.DetailLabels)
		if !ok {
			a.ask.Println("Random persona creation cancelled.")
			return nil
		}
		detail = persona.Detail(idx + 1)
	}
	p := a.random.Generate(detail)
	a.ask.Println("Random persona generation complete.")
	a.ask.Println(persona.Preview(p))
	save, err := a.ask.Confirm(promptSave, false)
	if err != nil {
		return err
	}
	if !save {
		a.ask.Println("Profile not saved.")
		return nil
	}
	_, err = a.builder.SaveAs(p)
	return err
}

// Load picks a saved persona and shows its options menu.
func (a *App) Load() error {
	names, err := a.store.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		a.ask.Println(msgNoProfiles)
		return nil
	}
	idx, ok := a.sel.ChooseOne("load", titleLoad, names)
	if !ok {
		a.ask.Println("Loading cancelled.")
		return nil
	}
	p, err := a.store.Load(names[idx])
	if err != nil {
		return err
	}
	a.ask.Println("Persona loaded successfully.")
	return a.Options(names[idx], p)
}

// Options is the per-persona menu. It returns after Back, cancellation or a
// successful delete.
func (a *App) Options(name string, p *persona.Profile) error {
	title := fmt.Sprintf("--- Options for Persona: %s ---", name)
	for {
		idx, ok := a.sel.ChooseOne("persona-options", title, personaOptions)
		if !ok || idx == len(personaOptions)-1 {
			return nil
		}
		switch idx {
		case 0:
			a.ask.Println(persona.Preview(p))
		case 1:
			a.builder.Edit(p)
			if _, err := a.store.Save(p, name); err != nil {
				a.ask.Println("Save Error after edit: " + err.Error())
				continue
			}
			a.ask.Println("Changes saved.")
		case 2:
			a.report(a.store.ExportJSON(p, name, a.now()))
		case 3:
			a.report(a.store.ExportText(p, name))
		case 4:
			deleted, err := a.remove(name, false)
			switch {
			case errors.Is(err, prompt.ErrCanceled):
				return err
			case err != nil:
				a.ask.Println("Error: " + err.Error())
			case deleted:
				return nil
			}
		}
	}
}

func (a *App) report(path string, err error) {
	if err != nil {
		a.ask.Println("Export Error: " + err.Error())
		return
	}
	a.ask.Println("Profile exported to " + path)
}

func (a *App) remove(name string, yes bool) (bool, error) {
	if !yes {
		ok, err := a.ask.Confirm(promptDelete, false)
		if err != nil {
			return false, err
		}
		if !ok {
			a.ask.Println("Deletion cancelled.")
			return false, nil
		}
	}
	removed, err := a.store.Delete(name)
	for _, path := range removed {
		a.ask.Println("Deleted " + path)
	}
	if err != nil {
		return false, err
	}
	a.ask.Println("Persona deleted successfully.")
	return true, nil
}

// List prints the saved persona names.
func (a *App) List() error {
	names, err := a.store.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		a.ask.Println(msgNoProfiles)
		return nil
	}
	a.ask.Println(strings.Join(names, "\n"))
	return nil
}

// Show prints the preview of the persona best matching query.
func (a *App) Show(query string) error {
	_, p, err := a.find(query)
	if err != nil {
		return err
	}
	a.ask.Println(persona.Preview(p))
	return nil
}

// Edit runs the field editor on a saved persona and saves any change.
func (a *App) Edit(query string) error {
	name, p, err := a.find(query)
	if err != nil {
		return err
	}
	if !a.builder.Edit(p) {
		a.ask.Println("No changes made.")
		return nil
	}
	if _, err := a.store.Save(p, name); err != nil {
		return err
	}
	a.ask.Println("Changes saved.")
	return nil
}

// Export writes the text report, or a timestamped JSON copy when asJSON is
// set.
func (a *App) Export(query string, asJSON bool) error {
	name, p, err := a.find(query)
	if err != nil {
		return err
	}
	var path string
	if asJSON {
		path, err = a.store.ExportJSON(p, name, a.now())
	} else {
		path, err = a.store.ExportText(p, name)
	}
	if err != nil {
		return err
	}
	a.ask.Println("Profile exported to " + path)
	return nil
}

// Delete removes a saved persona, asking first unless yes is set. A query
// that only approximately matches a saved name is refused under yes and
// named in the prompt otherwise.
func (a *App) Delete(query string, yes bool) error {
	name, _, err := a.find(query)
	if err != nil {
		return err
	}
	if !strings.EqualFold(name, strings.TrimSpace(query)) {
		if yes {
			return fmt.Errorf("%w: %q, closest match is %s", ErrInexactName, query, name)
		}
		a.ask.Println(fmt.Sprintf("Closest match for %q: %s", query, name))
	}
	_, err = a.remove(name, yes)
	return err
}

// Counts rebuilds the name count cache shown next to nationalities.
func (a *App) Counts() error {
	root, err := a.catalog.Tree("nationalities")
	if err != nil {
		return fmt.Errorf("load nationalities: %w", err)
	}
	counts := a.catalog.Counts(root)
	path, err := a.catalog.SaveCounts(counts)
	if err != nil {
		return err
	}
	a.ask.Println(fmt.Sprintf("Name counts for %d nationalities saved to %s", len(counts), path))
	return nil
}

// Info prints the program information.
func (a *App) Info() error {
	a.ask.Println(Info)
	return nil
}

func (a *App) find(query string) (string, *persona.Profile, error) {
	name, err := a.store.Find(query)
	if err != nil {
		return "", nil, err
	}
	p, err := a.store.Load(name)
	if err != nil {
		return "", nil, err
	}
	return name, p, nil
}
