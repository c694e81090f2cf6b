// Package persona builds, randomizes and edits persona profiles by driving
// the picker over catalog data.
package persona

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"

	MinAge = 18
	MaxAge = 99

	MaxInterests = 5
	MaxPhrases   = 3
)

var validate = validator.New()

// Profile is the persisted persona.
type Profile struct {
	ID             string    `json:"id,omitempty" validate:"omitempty,uuid"`
	Gender         string    `json:"gender" validate:"required,oneof=male female"`
	FirstName      string    `json:"first_name" validate:"required"`
	LastName       string    `json:"last_name" validate:"required"`
	Age            int       `json:"age" validate:"gte=18,lte=99"`
	Nationality    string    `json:"nationality" validate:"required"`
	Location       string    `json:"location,omitempty"`
	Username       string    `json:"username,omitempty"`
	Password       string    `json:"password,omitempty"`
	Platforms      []string  `json:"platforms,omitempty"`
	Interests      []string  `json:"interests,omitempty" validate:"max=5"`
	Profession     string    `json:"profession,omitempty"`
	Biography      string    `json:"biography,omitempty"`
	CommonPhrases  []string  `json:"common_phrases,omitempty" validate:"max=3"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	Appendix       string    `json:"appendix,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitzero"`
}

// Validate checks the struct tags.
func (p *Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

// FullName joins the first and last name.
func (p *Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// DefaultFileName is first_last in lowercase with spaces replaced.
func (p *Profile) DefaultFileName() string {
	first := p.FirstName
	if first == "" {
		first = "profile"
	}
	last := p.LastName
	if last == "" {
		last = "persona"
	}
	return strings.ReplaceAll(strings.ToLower(first+"_"+last), " ", "_")
}

// Field names one editable profile attribute by its JSON key.
type Field string

const (
	FieldGender         Field = "gender"
	FieldFirstName      Field = "first_name"
	FieldLastName       Field = "last_name"
	FieldAge            Field = "age"
	FieldNationality    Field = "nationality"
	FieldLocation       Field = "location"
	FieldUsername       Field = "username"
	FieldPassword       Field = "password"
	FieldPlatforms      Field = "platforms"
	FieldInterests      Field = "interests"
	FieldProfession     Field = "profession"
	FieldBiography      Field = "biography"
	FieldCommonPhrases  Field = "common_phrases"
	FieldProfilePicture Field = "profile_picture"
	FieldAppendix       Field = "appendix"
)

// Fields lists the editable fields in display order.
var Fields = []Field{
	FieldGender, FieldFirstName, FieldLastName, FieldAge, FieldNationality,
	FieldLocation, FieldUsername, FieldPassword, FieldPlatforms, FieldInterests,
	FieldProfession, FieldBiography, FieldCommonPhrases, FieldProfilePicture,
	FieldAppendix,
}

// Label turns the key into a capitalised label, e.g. "First name".
func (f Field) Label() string {
	s := strings.ReplaceAll(string(f), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// IsList reports whether the field holds a list.
func (f Field) IsList() bool {
	switch f {
	case FieldPlatforms, FieldInterests, FieldCommonPhrases:
		return true
	}
	return false
}

// Display renders the field's value for menus; passwords are masked.
func (p *Profile) Display(f Field) string {
	switch {
	case f == FieldPassword:
		if p.Password == "" {
			return "(No Password Set)"
		}
		return Mask(p.Password)
	case f == FieldAge:
		return strconv.Itoa(p.Age)
	case f.IsList():
		list := p.list(f)
		if len(list) == 0 {
			return "(Empty List)"
		}
		return strings.Join(list, ", ")
	default:
		return p.text(f)
	}
}

func (p *Profile) text(f Field) string {
	if ref := p.textRef(f); ref != nil {
		return *ref
	}
	return ""
}

func (p *Profile) list(f Field) []string {
	if ref := p.listRef(f); ref != nil {
		return *ref
	}
	return nil
}

func (p *Profile) textRef(f Field) *string {
	switch f {
	case FieldGender:
		return &p.Gender
	case FieldFirstName:
		return &p.FirstName
	case FieldLastName:
		return &p.LastName
	case FieldNationality:
		return &p.Nationality
	case FieldLocation:
		return &p.Location
	case FieldUsername:
		return &p.Username
	case FieldPassword:
		return &p.Password
	case FieldProfession:
		return &p.Profession
	case FieldBiography:
		return &p.Biography
	case FieldProfilePicture:
		return &p.ProfilePicture
	case FieldAppendix:
		return &p.Appendix
	}
	return nil
}

func (p *Profile) listRef(f Field) *[]string {
	switch f {
	case FieldPlatforms:
		return &p.Platforms
	case FieldInterests:
		return &p.Interests
	case FieldCommonPhrases:
		return &p.CommonPhrases
	}
	return nil
}

// SetText assigns a text field. It reports false for list fields and age.
func (p *Profile) SetText(f Field, value string) bool {
	ref := p.textRef(f)
	if ref == nil {
		return false
	}
	*ref = value
	return true
}

// SetList assigns a list field. It reports false for text fields.
func (p *Profile) SetList(f Field, values []string) bool {
	ref := p.listRef(f)
	if ref == nil {
		return false
	}
	*ref = cloneList(values)
	return true
}

func (p *Profile) copyField(f Field, src *Profile) {
	switch {
	case f == FieldAge:
		p.Age = src.Age
	case f.IsList():
		p.SetList(f, src.list(f))
	default:
		p.SetText(f, src.text(f))
	}
}

// Status is how a step ended.
type Status int

const (
	// StepDone means the step produced its values.
	StepDone Status = iota
	// StepBack asks the caller to return to the nationality step.
	StepBack
	// StepAbort cancels the whole creation.
	StepAbort
)

func (s Status) String() string {
	switch s {
	case StepDone:
		return "done"
	case StepBack:
		return "back"
	case StepAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// StepResult carries the fields a step set. Only the fields listed are
// applied; a step that leaves the profile untouched lists none.
type StepResult struct {
	Status Status
	Fields []Field
	Values Profile
}

func done(values Profile, fields ...Field) StepResult {
	return StepResult{Status: StepDone, Fields: fields, Values: values}
}

// Apply merges the listed fields of r into p. Results that are not done are
// ignored.
func (p *Profile) Apply(r StepResult) {
	if r.Status != StepDone {
		return
	}
	for _, f := range r.Fields {
		p.copyField(f, &r.Values)
	}
}

// Mask replaces every character with '*'.
func Mask(s string) string {
	return strings.Repeat("*", len([]rune(s)))
}

// SplitList parses comma-separated input, dropping blank entries.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func cloneList(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
