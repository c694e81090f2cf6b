package persona

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atomicstack/persona-picker/internal/logging/events"
)

// ErrAborted is returned when the user cancels persona creation.
var ErrAborted = errors.New("persona creation cancelled")

// File name validation errors, shown to the user before re-asking.
var (
	ErrEmptyFileName = errors.New("file name cannot be empty")
	ErrFileNamePath  = errors.New("file name cannot contain path separators")
)

var errGender = errors.New("enter male or female")

const (
	titleEdit        = "--- Edit Profile ---"
	labelFinishEdit  = "Finish Editing"
	promptEdit       = "Do you want to edit any fields?"
	promptFileName   = "Enter filename to save the profile (without extension):"
	promptEditValue  = "Enter the new value (leave blank to keep current):"
	promptEditList   = "Enter new comma-separated values (leave blank to keep current):"
	promptEditAge    = "Enter new age (leave blank to keep current):"
	promptEditGender = "Enter male or female (leave blank to keep current):"
)

// Saver persists a finished profile.
type Saver interface {
	Save(p *Profile, name string) (string, error)
	ExportText(p *Profile, name string) (string, error)
}

// Builder sequences the steps into the create and edit flows.
type Builder struct {
	steps *Steps
	saver Saver
	now   func() time.Time
	newID func() string
}

// NewBuilder returns a Builder saving through saver.
func NewBuilder(steps *Steps, saver Saver) *Builder {
	return &Builder{steps: steps, saver: saver, now: time.Now, newID: uuid.NewString}
}

// Create runs every step, previews the result, offers editing and saves it.
// A failed name step returns to the nationality step.
func (b *Builder) Create() (*Profile, error) {
	s := b.steps
	p := &Profile{}

	if !b.required(p, "Gender", s.Gender()) {
		return nil, ErrAborted
	}
	for {
		if !b.required(p, "Nationality", s.Nationality()) {
			return nil, ErrAborted
		}
		first := s.FirstName(p.Gender, p.Nationality)
		if first.Status != StepDone {
			s.ask.Println("Returning to Nationality selection...")
			p.Nationality = ""
			continue
		}
		p.Apply(first)
		last := s.LastName(p.Nationality)
		if last.Status != StepDone {
			s.ask.Println("Returning to Nationality selection...")
			p.Nationality = ""
			p.FirstName = ""
			continue
		}
		p.Apply(last)
		break
	}
	if !b.required(p, "Age", s.Age()) ||
		!b.required(p, "Username", s.Username(*p)) ||
		!b.required(p, "Password", s.Password()) {
		return nil, ErrAborted
	}

	p.Apply(s.Platforms())
	p.Apply(s.Interests(p.Interests))
	p.Apply(s.Profession())
	p.Apply(s.Location())
	p.Apply(s.OptionalPhrases(p.CommonPhrases))
	p.Apply(s.OptionalPicture(p.Gender))
	p.Apply(s.Biography(*p))
	p.ID = b.newID()
	p.CreatedAt = b.now().UTC().Truncate(time.Second)

	s.ask.Println(Preview(p))
	if edit, err := s.ask.Confirm(promptEdit, false); err == nil && edit {
		b.Edit(p)
	}
	p.Apply(s.Appendix())

	if _, err := b.SaveAs(p); err != nil {
		return p, err
	}
	return p, nil
}

func (b *Builder) required(p *Profile, name string, r StepResult) bool {
	if r.Status != StepDone {
		b.steps.ask.Println(fmt.Sprintf("Persona creation cancelled during %s selection.", name))
		return false
	}
	p.Apply(r)
	return true
}

// Finalize stamps an ID and creation time on profiles that lack them.
func (b *Builder) Finalize(p *Profile) {
	if p.ID == "" {
		p.ID = b.newID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = b.now().UTC().Truncate(time.Second)
	}
}

// SaveAs asks for a file name, defaulting to first_last, then writes the
// profile and its text export.
func (b *Builder) SaveAs(p *Profile) (string, error) {
	b.Finalize(p)
	if err := p.Validate(); err != nil {
		return "", err
	}
	name, err := b.steps.ask.Ask(promptFileName, p.DefaultFileName(), ValidateFileName)
	if err != nil {
		return "", err
	}
	return name, b.Save(p, name)
}

// Save writes the profile and its text export under name.
func (b *Builder) Save(p *Profile, name string) error {
	path, err := b.saver.Save(p, name)
	if err != nil {
		return err
	}
	b.steps.ask.Println("Profile saved to " + path)
	txt, err := b.saver.ExportText(p, name)
	if err != nil {
		return err
	}
	b.steps.ask.Println("Profile exported to " + txt)
	return nil
}

// ValidateFileName rejects names that would escape the profiles directory.
func ValidateFileName(name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return ErrEmptyFileName
	case name == "." || name == "..", strings.ContainsAny(name, `/\`):
		return ErrFileNamePath
	}
	return nil
}

// Edit shows the numbered field menu until the user finishes. It reports
// whether any field changed.
func (b *Builder) Edit(p *Profile) bool {
	changed := false
	for {
		labels := make([]string, 0, len(Fields)+1)
		for _, f := range Fields {
			labels = append(labels, f.Label()+": "+p.Display(f))
		}
		labels = append(labels, labelFinishEdit)

		idx, ok := b.steps.sel.ChooseOne("edit", titleEdit, labels)
		if !ok || idx == len(Fields) {
			events.App.Step("edit", strconv.FormatBool(changed))
			return changed
		}
		before := *p
		b.editField(p, Fields[idx])
		if p.Display(Fields[idx]) != before.Display(Fields[idx]) {
			changed = true
		}
		b.steps.ask.Println("... Field updated (if a new value was provided).")
	}
}

func (b *Builder) editField(p *Profile, f Field) {
	s := b.steps
	switch f {
	case FieldInterests:
		p.Apply(s.Interests(p.Interests))
	case FieldCommonPhrases:
		p.Apply(s.Phrases(p.CommonPhrases))
	case FieldLocation:
		p.Apply(s.Location())
	case FieldProfession:
		p.Apply(s.Profession())
	case FieldAge:
		answer, err := s.ask.Ask(promptEditAge, "", validateAge)
		if err == nil && answer != "" {
			p.Age, _ = strconv.Atoi(answer)
		}
	case FieldGender:
		answer, err := s.ask.Ask(promptEditGender, "", validateGender)
		if err == nil && answer != "" {
			p.Gender = strings.ToLower(strings.TrimSpace(answer))
		}
	default:
		if f.IsList() {
			answer, err := s.ask.Ask(promptEditList, "", nil)
			if err == nil && strings.TrimSpace(answer) != "" {
				p.SetList(f, SplitList(answer))
			}
			return
		}
		answer, err := s.ask.Ask(promptEditValue, "", nil)
		if err != nil || strings.TrimSpace(answer) == "" {
			return
		}
		if f == FieldNationality {
			answer = strings.ToLower(answer)
		}
		p.SetText(f, strings.TrimSpace(answer))
	}
}

func validateGender(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", GenderMale, GenderFemale:
		return nil
	}
	return errGender
}
