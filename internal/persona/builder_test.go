package persona

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atomicstack/persona-picker/internal/menu"
)

func TestCreateFullFlow(t *testing.T) {
	h := newHarness(t, writeFixture(t, fixtureFiles()), []choice{
		pick("Male"),
		pick("Europe"),
		pick("Icelandic (M:0, F:0, L:0)"),
		pick("Europe"),
		pick("French (M:0, F:0, L:0)"),
		pick("Hugo"),
		pick("Martin"),
		pick("hugomartin"),
		pick("Generate random password"),
		pick("Strong (24 characters)"),
		pick("Music"),
		pick("Genres"),
		pick("jazz"),
		pickKind(menu.KindFinish),
		pick("Health"),
		pick("Nursing"),
		pick("Nurse"),
		pick("Europe"),
		pick("France"),
		pick("Île-de-France"),
		pick("Paris"),
		pickKind(menu.KindSkip),
		pick("Cheers"),
		pickKind(menu.KindFinish),
	}, []reply{
		yes(), // go back after the empty name list
		say("abc"),
		say("34"),
		yes(), // confirm username
		say("Twitter, , Reddit"),
		yes(), // add phrases
		no(),  // add picture
		say(""),
		no(), // edit
		no(), // appendix
		say(""),
	})

	p, err := h.builder.Create()
	require.NoError(t, err)
	h.done(t)

	require.Equal(t, GenderMale, p.Gender)
	require.Equal(t, "Hugo", p.FirstName)
	require.Equal(t, "Martin", p.LastName)
	require.Equal(t, 34, p.Age)
	require.Equal(t, "french", p.Nationality)
	require.Equal(t, "hugomartin", p.Username)
	require.Len(t, p.Password, 24)
	require.Equal(t, []string{"Twitter", "Reddit"}, p.Platforms)
	require.Equal(t, []string{"jazz"}, p.Interests)
	require.Equal(t, "Nurse", p.Profession)
	require.Equal(t, "Paris, Île-de-France, France, Europe", p.Location)
	require.Equal(t, []string{"Cheers"}, p.CommonPhrases)
	require.Empty(t, p.ProfilePicture)
	require.Equal(t, "Hugo Martin is a 34-year-old nurse from Paris, Île-de-France, France, Europe. Interested in jazz.", p.Biography)
	require.Equal(t, "6f1c2a4e-8d3b-4c6f-9a7e-2b5d8c1e0f34", p.ID)
	require.Equal(t, fixedNow, p.CreatedAt)
	require.NoError(t, p.Validate())

	require.Len(t, h.saver.saved, 1)
	require.Equal(t, "hugo_martin", h.saver.saved[0].name)
	require.Equal(t, []string{"hugo_martin"}, h.saver.exported)

	printed := h.asker.printed
	require.True(t, containsLine(printed, "Warning: The name list for this selection (male/icelandic.txt) is currently empty."))
	require.True(t, containsLine(printed, "Returning to Nationality selection..."))
	require.True(t, containsLine(printed, errAge.Error()))
	require.True(t, containsLine(printed, "Profile saved to profiles/hugo_martin.json"))
	require.True(t, containsLine(printed, "Profile exported to exports/hugo_martin.txt"))
	require.Contains(t, h.asker.questions, "Confirm username 'hugomartin'?")
}

func TestCreateAbortsOnBlankAge(t *testing.T) {
	h := newHarness(t, writeFixture(t, fixtureFiles()), []choice{
		pick("Female"),
		pick("Europe"),
		pick("French (M:0, F:0, L:0)"),
		pick("Léa"),
		pick("Martin"),
	}, []reply{say("")})

	p, err := h.builder.Create()
	require.ErrorIs(t, err, ErrAborted)
	require.Nil(t, p)
	require.Empty(t, h.saver.saved)
	require.True(t, containsLine(h.asker.printed, "Persona creation cancelled during Age selection."))
	h.done(t)
}

func TestCreateMissingNameListLoopsBack(t *testing.T) {
	h := newHarness(t, writeFixture(t, fixtureFiles()), []choice{
		pick("Male"),
		pick("Asia"),
		pick("Japanese (M:0, F:0, L:0)"),
		leave(),
	}, nil)

	_, err := h.builder.Create()
	require.ErrorIs(t, err, ErrAborted)
	require.True(t, containsLine(h.asker.printed, "Error: Could not load name file for male/japanese."))
	require.True(t, containsLine(h.asker.printed, "Returning to Nationality selection..."))
	require.True(t, containsLine(h.asker.printed, "Persona creation cancelled during Nationality selection."))
	h.done(t)
}

func TestCreateAbortsOnGender(t *testing.T) {
	h := newHarness(t, writeFixture(t, fixtureFiles()), []choice{leave()}, nil)
	_, err := h.builder.Create()
	require.ErrorIs(t, err, ErrAborted)
	require.True(t, containsLine(h.asker.printed, "Persona creation cancelled during Gender selection."))
}

func sampleProfile() *Profile {
	return &Profile{
		Gender:      GenderFemale,
		FirstName:   "Ana",
		LastName:    "Li",
		Age:         30,
		Nationality: "french",
		Password:    "pass",
		Interests:   []string{"jazz"},
	}
}

func TestSaveAsValidatesFileName(t *testing.T) {
	h := newHarness(t, writeFixture(t, fixtureFiles()), nil, []reply{say("../escape"), say("ana")})
	p := sampleProfile()

	name, err := h.builder.SaveAs(p)
	require.NoError(t, err)
	require.Equal(t, "ana", name)
	require.Contains(t, h.asker.printed, ErrFileNamePath.Error())
	require.Equal(t, "6f1c2a4e-8d3b-4c6f-9a7e-2b5d8c1e0f34", p.ID)
	require.Equal(t, fixedNow, p.CreatedAt)
	require.Equal(t, "Enter filename to save the profile (without extension):", h.asker.questions[0])
	h.done(t)
}

func TestSaveAsReportsErrors(t *testing.T) {
	h := newHarness(t, writeFixture(t, fixtureFiles()), nil, []reply{say("")})
	h.saver.err = errDisk
	_, err := h.builder.SaveAs(sampleProfile())
	require.ErrorIs(t, err, errDisk)

	invalid := sampleProfile()
	invalid.Age = 12
	_, err = h.builder.SaveAs(invalid)
	require.Error(t, err)
	h.done(t)
}

func TestEditFields(t *testing.T) {
	h := newHarness(t, writeFixture(t, fixtureFiles()), []choice{
		pick("Age: 30"),
		pick("Platforms: (Empty List)"),
		pick("Password: ****"),
		pick("Interests: jazz"),
		pick("Music"),
		pick("Genres"),
		pick("rock"),
		pickKind(menu.KindFinish),
		pick("Nationality: french"),
		pick(labelFinishEdit),
	}, []reply{
		say("17"),
		say("41"),
		say("A, B"),
		say(""),
		say("Belgian"),
	})
	p := sampleProfile()

	changed := h.builder.Edit(p)
	require.True(t, changed)
	require.Equal(t, 41, p.Age)
	require.Equal(t, []string{"A", "B"}, p.Platforms)
	require.Equal(t, "pass", p.Password)
	require.Equal(t, []string{"jazz", "rock"}, p.Interests)
	require.Equal(t, "belgian", p.Nationality)
	require.Contains(t, h.asker.printed, errAge.Error())
	require.Equal(t, titleEdit, h.prompter.menus[0].Title)
	h.done(t)
}

func TestEditWithoutChanges(t *testing.T) {
	h := newHarness(t, writeFixture(t, fixtureFiles()), []choice{
		pick("Gender: female"),
		leave(),
	}, []reply{say("robot"), say("")})
	p := sampleProfile()
	require.False(t, h.builder.Edit(p))
	require.Equal(t, GenderFemale, p.Gender)
	require.Contains(t, h.asker.printed, errGender.Error())
	h.done(t)
}
