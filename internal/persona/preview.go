package persona

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/persona-picker/internal/format/table"
)

const (
	previewTitle = "Generated Profile Preview:"
	na           = "N/A"
)

var previewRule = strings.Repeat("=", 40)

// Preview renders the profile as aligned label/value rows with the password
// masked. Optional sections appear only when set.
func Preview(p *Profile) string {
	pairs := [][2]string{
		{"Name:", orNA(p.FullName())},
		{"Gender:", orNA(capitalize(p.Gender))},
		{"Age:", orNA(age(p.Age))},
		{"Nationality:", orNA(capitalize(p.Nationality))},
		{"Location:", orNA(p.Location)},
		{"Username:", orNA(p.Username)},
		{"Password:", orNA(Mask(p.Password))},
	}
	if len(p.Platforms) > 0 {
		pairs = append(pairs, [2]string{"Platforms:", strings.Join(p.Platforms, ", ")})
	}
	if len(p.Interests) > 0 {
		pairs = append(pairs, [2]string{"Interests:", strings.Join(p.Interests, ", ")})
	}
	pairs = append(pairs, [2]string{"Profession:", orNA(p.Profession)})
	optional := [][2]string{
		{"Biography:", p.Biography},
		{"Common Phrases:", strings.Join(p.CommonPhrases, " | ")},
		{"Profile Picture:", p.ProfilePicture},
		{"Appendix:", p.Appendix},
	}
	for _, pair := range optional {
		if pair[1] != "" {
			pairs = append(pairs, pair)
		}
	}

	lines := []string{previewTitle, previewRule}
	lines = append(lines, table.Pairs(pairs)...)
	lines = append(lines, previewRule)
	return strings.Join(lines, "\n")
}

// Biography writes a one-line summary from the profile.
func Biography(p *Profile) string {
	name := p.FullName()
	if name == "" {
		name = "This persona"
	}
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" is a")
	if p.Age > 0 {
		fmt.Fprintf(&b, " %d-year-old", p.Age)
	}
	if p.Profession != "" && p.Profession != Unspecified {
		b.WriteString(" " + strings.ToLower(p.Profession))
	} else {
		b.WriteString(" person")
	}
	switch p.Location {
	case "", UnknownLocation, Undetermined, Earth:
	default:
		b.WriteString(" from " + p.Location)
	}
	b.WriteString(".")
	if len(p.Interests) > 0 {
		b.WriteString(" Interested in " + joinAnd(p.Interests) + ".")
	}
	return b.String()
}

func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func age(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func orNA(s string) string {
	if s == "" {
		return na
	}
	return s
}
