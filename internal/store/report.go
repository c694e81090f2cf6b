package store

import (
	"strconv"
	"strings"

	"github.com/atomicstack/persona-picker/internal/persona"
)

const na = "N/A"

// Report renders the plain text export of p.
func Report(p *persona.Profile) string {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	field := func(label, value string) {
		if value == "" {
			value = na
		}
		line(label + ": " + value)
	}
	list := func(title string, items []string, none string) {
		line("===== " + title + " =====")
		if len(items) == 0 {
			line(none)
		}
		for _, item := range items {
			line("- " + item)
		}
		line("")
	}

	line("===== SOCK SPY PROFILE =====")
	line("")
	field("First Name", p.FirstName)
	field("Last Name", p.LastName)
	field("Gender", p.Gender)
	age := ""
	if p.Age > 0 {
		age = strconv.Itoa(p.Age)
	}
	field("Age", age)
	field("Nationality", p.Nationality)
	field("Location", p.Location)
	line("")

	line("===== CREDENTIALS =====")
	field("Username", p.Username)
	field("Password", p.Password)
	line("")

	list("PLATFORMS", p.Platforms, "No platforms specified")
	list("INTERESTS", p.Interests, "No interests specified")

	field("Profession", p.Profession)
	line("")

	line("===== BIOGRAPHY =====")
	bio := p.Biography
	if bio == "" {
		bio = "No biography available"
	}
	line(bio)
	line("")

	if len(p.CommonPhrases) > 0 {
		list("COMMON PHRASES", p.CommonPhrases, "")
	}
	if p.ProfilePicture != "" {
		line("Profile Picture URL: " + p.ProfilePicture)
		line("")
	}
	if p.Appendix != "" {
		line("===== APPENDIX =====")
		line(p.Appendix)
		line("")
	}
	line("===== END OF PROFILE =====")
	return b.String()
}
