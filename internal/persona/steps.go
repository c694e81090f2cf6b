package persona

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/persona-picker/internal/data/catalog"
	"github.com/atomicstack/persona-picker/internal/logging"
	"github.com/atomicstack/persona-picker/internal/logging/events"
	"github.com/atomicstack/persona-picker/internal/menu"
	"github.com/atomicstack/persona-picker/internal/picker"
)

const (
	titleGender         = "Select gender for the persona:"
	titleNatContinent   = "Select continent/region for nationality:"
	titleNatSpecific    = "Select a specific nationality:"
	titleFirstName      = "Select a first name:"
	titleLastName       = "Select a last name:"
	titleUsername       = "Username suggestions:"
	titlePasswordMethod = "How do you want to set the password?"
	titlePasswordLength = "Select desired password length:"
	titlePhrases        = "Select common phrases (max 3):"
	titlePicture        = "Select a profile picture:"

	promptAge        = "Enter the age of the persona (18-99):"
	promptUsername   = "Enter a username for the persona:"
	promptPassword   = "Enter a password for the persona:"
	promptPlatforms  = "Enter comma-separated list of platforms (e.g., Twitter, Facebook, Instagram):"
	promptBiography  = "Enter a short biography (press Enter to generate automatically):"
	promptAppendix   = "Enter appendix text:"
	promptAddPhrases = "Add common phrases?"
	promptAddPicture = "Add profile picture?"
	promptAddAppx    = "Do you want to add an appendix to the profile?"
	promptGoBack     = "Would you like to go back and change your selection?"

	labelCustomUsername = "Enter custom username"

	// Unspecified is the profession used when none was chosen.
	Unspecified = "Unspecified"
	// UnknownLocation is used when the location walk chose nothing.
	UnknownLocation = "Unknown Location"
	// Undetermined is used when the location walk was aborted.
	Undetermined = "Undetermined"
	// Earth is used when no location data is available.
	Earth = "Earth"

	// DefaultLanguage selects the common phrases list.
	DefaultLanguage = "english"
)

var (
	genderOptions   = []string{"Male", "Female"}
	passwordMethods = []string{"Enter manually", "Generate random password"}
	passwordLabels  = []string{"Standard (12 characters)", "Strong (24 characters)", "Very Strong (32 characters)"}

	interestTitles   = []string{"Select interests category:", "Select interests subcategory:", "Select specific interests (max 5):"}
	professionTitles = []string{"Select profession category:", "Select profession subcategory:", "Select a specific profession:"}
	locationTitles   = []string{"Select a continent:", "Select a country:", "Select a region/state:", "Select a city:", "Select a neighborhood (Optional):"}

	errAge = fmt.Errorf("age must be a number between %d and %d", MinAge, MaxAge)
)

// Asker asks free-text and yes/no questions. Both prompt.Line and ui.Asker
// implement it.
type Asker interface {
	Ask(question, def string, validate func(string) error) (string, error)
	Confirm(question string, def bool) (bool, error)
	Println(text string)
}

// Data is the catalog surface the steps read.
type Data interface {
	Tree(name string) (*menu.Node, error)
	FirstNames(gender, nationality string) ([]string, error)
	LastNames(nationality string) ([]string, error)
	Phrases(language string) ([]string, error)
	Pictures() ([]string, error)
	LoadCounts() (catalog.Counts, error)
}

// Steps runs the individual persona questions.
type Steps struct {
	sel      *picker.Selector
	walker   *picker.Walker
	ask      Asker
	data     Data
	rng      Rand
	now      func() time.Time
	language string
	pageSize int
}

// NewSteps wires the steps to a selector, a question asker and catalog data.
func NewSteps(sel *picker.Selector, ask Asker, data Data, rng Rand) *Steps {
	return &Steps{
		sel:      sel,
		walker:   picker.NewWalker(sel),
		ask:      ask,
		data:     data,
		rng:      rng,
		now:      time.Now,
		language: DefaultLanguage,
		pageSize: picker.DefaultPageSize,
	}
}

// SetPageSize changes the window size used at tree levels. Values below one
// are ignored.
func (s *Steps) SetPageSize(n int) {
	if n > 0 {
		s.pageSize = n
	}
}

func (s *Steps) trace(name string, r StepResult) StepResult {
	events.App.Step(name, r.Status.String())
	return r
}

func (s *Steps) abort(name string) StepResult {
	return s.trace(name, StepResult{Status: StepAbort})
}

// Gender asks for male or female. Cancelling aborts.
func (s *Steps) Gender() StepResult {
	idx, ok := s.sel.ChooseOne("gender", titleGender, genderOptions)
	if !ok {
		return s.abort("gender")
	}
	gender := GenderMale
	if idx == 1 {
		gender = GenderFemale
	}
	return s.trace("gender", done(Profile{Gender: gender}, FieldGender))
}

// Nationality walks continent then nationality, labelling each entry with
// its cached name counts. The stored value is lowercase.
func (s *Steps) Nationality() StepResult {
	root, err := s.data.Tree("nationalities")
	if err != nil {
		logging.Error(err)
		s.ask.Println(fmt.Sprintf("Error loading nationalities: %v", err))
		return s.abort("nationality")
	}
	counts, err := s.data.LoadCounts()
	if err != nil {
		logging.Error(err)
		s.ask.Println(fmt.Sprintf("Warning: Could not load name counts cache: %v", err))
		counts = catalog.Counts{}
	}
	res := s.walker.Walk(root, picker.WalkOptions{
		ID:           "nationality",
		Titles:       []string{titleNatContinent, titleNatSpecific},
		PageSize:     s.pageSize,
		Leaf:         picker.LeafSingle,
		LeafTitle:    titleNatSpecific,
		LeafPageSize: s.pageSize,
		LeafLabel:    counts.Label,
	})
	if res.Outcome != picker.Completed {
		return s.abort("nationality")
	}
	return s.trace("nationality", done(Profile{Nationality: strings.ToLower(res.Item())}, FieldNationality))
}

// FirstName picks from names/<gender>/<nationality>.txt. Any failure asks
// the caller to go back to the nationality step.
func (s *Steps) FirstName(gender, nationality string) StepResult {
	names, err := s.data.FirstNames(gender, nationality)
	name, status := s.pickName("first-name", titleFirstName, names, err,
		fmt.Sprintf("%s/%s.txt", gender, nationality), "name")
	if status != StepDone {
		return s.trace("first-name", StepResult{Status: status})
	}
	return s.trace("first-name", done(Profile{FirstName: name}, FieldFirstName))
}

// LastName picks from last_names/<nationality>.txt.
func (s *Steps) LastName(nationality string) StepResult {
	names, err := s.data.LastNames(nationality)
	name, status := s.pickName("last-name", titleLastName, names, err,
		nationality+".txt", "last name")
	if status != StepDone {
		return s.trace("last-name", StepResult{Status: status})
	}
	return s.trace("last-name", done(Profile{LastName: name}, FieldLastName))
}

func (s *Steps) pickName(id, title string, names []string, err error, file, kind string) (string, Status) {
	if err != nil {
		if !errors.Is(err, catalog.ErrNotFound) {
			logging.Error(err)
		}
		s.ask.Println(fmt.Sprintf("Error: Could not load %s file for %s.", kind, strings.TrimSuffix(file, ".txt")))
		return "", StepBack
	}
	if len(names) == 0 {
		s.ask.Println(fmt.Sprintf("Warning: The name list for this selection (%s) is currently empty.", file))
		s.ask.Println("We are working hard to bring more data! Perhaps you could help contribute names to this list?")
		back, err := s.ask.Confirm(promptGoBack, true)
		if err != nil || back {
			return "", StepBack
		}
		s.ask.Println(fmt.Sprintf("Proceeding without %s options for this selection.", kind))
	}
	name, outcome := s.sel.Select(names, picker.Options{ID: id, Title: title, PageSize: 7})
	if outcome != picker.Selected {
		return "", StepBack
	}
	return name, StepDone
}

// Age asks for an age between 18 and 99. A blank answer aborts.
func (s *Steps) Age() StepResult {
	answer, err := s.ask.Ask(promptAge, "", validateAge)
	if err != nil || answer == "" {
		return s.abort("age")
	}
	age, _ := strconv.Atoi(answer)
	return s.trace("age", done(Profile{Age: age}, FieldAge))
}

func validateAge(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	age, err := strconv.Atoi(s)
	if err != nil || age < MinAge || age > MaxAge {
		return errAge
	}
	return nil
}

// Username offers suggestions derived from p plus a custom entry, and asks
// for confirmation before accepting.
func (s *Steps) Username(p Profile) StepResult {
	year := s.now().Year()
	for {
		suggestions := UsernameSuggestions(p.FirstName, p.LastName, p.Age, year, s.rng)
		options := make([]string, 0, len(suggestions)+1)
		options = append(options, suggestions...)
		options = append(options, labelCustomUsername)

		idx, ok := s.sel.ChooseOne("username", titleUsername, options)
		if !ok {
			return s.abort("username")
		}
		var name string
		if idx < len(suggestions) {
			name = suggestions[idx]
		} else {
			answer, err := s.ask.Ask(promptUsername, "", nil)
			if err != nil {
				return s.abort("username")
			}
			name = strings.TrimSpace(answer)
		}
		if name == "" {
			s.ask.Println("Username cannot be empty.")
			continue
		}
		yes, err := s.ask.Confirm(fmt.Sprintf("Confirm username '%s'?", name), true)
		if err != nil {
			return s.abort("username")
		}
		if yes {
			return s.trace("username", done(Profile{Username: name}, FieldUsername))
		}
	}
}

// Password is entered manually or generated at one of PasswordLengths.
func (s *Steps) Password() StepResult {
	method, ok := s.sel.ChooseOne("password", titlePasswordMethod, passwordMethods)
	if !ok {
		return s.abort("password")
	}
	if method == 0 {
		for {
			answer, err := s.ask.Ask(promptPassword, "", nil)
			if err != nil {
				return s.abort("password")
			}
			if answer == "" {
				s.ask.Println("Password cannot be empty.")
				continue
			}
			yes, err := s.ask.Confirm(fmt.Sprintf("Confirm password '%s'?", Mask(answer)), true)
			if err != nil {
				return s.abort("password")
			}
			if yes {
				return s.trace("password", done(Profile{Password: answer}, FieldPassword))
			}
		}
	}

	idx, ok := s.sel.ChooseOne("password-length", titlePasswordLength, passwordLabels)
	if !ok {
		return s.abort("password")
	}
	password, err := GeneratePassword(PasswordLengths[idx])
	if err != nil {
		logging.Error(err)
		return s.abort("password")
	}
	s.ask.Println("Generated Password: " + Mask(password))
	return s.trace("password", done(Profile{Password: password}, FieldPassword))
}

// Platforms reads a comma-separated list.
func (s *Steps) Platforms() StepResult {
	answer, err := s.ask.Ask(promptPlatforms, "", nil)
	if err != nil {
		answer = ""
	}
	return s.trace("platforms", done(Profile{Platforms: SplitList(answer)}, FieldPlatforms))
}

// Interests walks the interests tree, skipping allowed below the top level,
// and multi-selects up to MaxInterests starting from current. A skip keeps
// current; backing out clears the list.
func (s *Steps) Interests(current []string) StepResult {
	none := done(Profile{Interests: []string{}}, FieldInterests)
	root, err := s.data.Tree("interests")
	if err != nil {
		logging.Error(err)
		s.ask.Println(fmt.Sprintf("Warning: Interests data error (%v). Skipping interests selection.", err))
		return s.trace("interests", none)
	}
	res := s.walker.Walk(root, picker.WalkOptions{
		ID:        "interests",
		Titles:    interestTitles,
		AllowSkip: func(level int) bool { return level >= 1 },
		PageSize:  s.pageSize,
		Leaf:      picker.LeafMulti,
		LeafTitle: interestTitles[2],
		Multi:     picker.MultiOptions{ID: "interests", Max: MaxInterests, Seed: current},
	})
	switch res.Outcome {
	case picker.Completed:
		return s.trace("interests", done(Profile{Interests: res.Items}, FieldInterests))
	case picker.Stopped:
		return s.trace("interests", done(Profile{Interests: append([]string{}, current...)}, FieldInterests))
	default:
		return s.trace("interests", none)
	}
}

// Profession walks the professions tree. Stopping early keeps the deepest
// category; aborting or missing data yields Unspecified.
func (s *Steps) Profession() StepResult {
	root, err := s.data.Tree("professions")
	if err != nil {
		logging.Error(err)
		s.ask.Println(fmt.Sprintf("Warning: Professions data error (%v). Setting profession to '%s'.", err, Unspecified))
		return s.trace("profession", done(Profile{Profession: Unspecified}, FieldProfession))
	}
	res := s.walker.Walk(root, picker.WalkOptions{
		ID:            "profession",
		Titles:        professionTitles,
		AllowSkip:     func(int) bool { return true },
		PageSize:      s.pageSize,
		Leaf:          picker.LeafSingle,
		LeafPageSize:  15,
		LeafAllowSkip: true,
	})
	profession := Unspecified
	switch res.Outcome {
	case picker.Completed:
		profession = res.Item()
	case picker.Stopped:
		if last := res.Last(); last != "" {
			profession = last
		}
	}
	return s.trace("profession", done(Profile{Profession: profession}, FieldProfession))
}

// Location walks the locations tree, skipping allowed from the region level
// on, with an optional final pick. The value lists the most specific place
// first.
func (s *Steps) Location() StepResult {
	root, err := s.data.Tree("locations")
	if err != nil {
		logging.Error(err)
		s.ask.Println(fmt.Sprintf("Error loading locations: %v. Setting location to '%s'.", err, Earth))
		return s.trace("location", done(Profile{Location: Earth}, FieldLocation))
	}
	res := s.walker.Walk(root, picker.WalkOptions{
		ID:            "location",
		Titles:        locationTitles,
		AllowSkip:     func(level int) bool { return level >= 2 },
		PageSize:      s.pageSize,
		Leaf:          picker.LeafSingle,
		LeafPageSize:  s.pageSize,
		LeafAllowSkip: true,
	})
	var location string
	switch res.Outcome {
	case picker.Aborted:
		location = Undetermined
	case picker.Completed:
		location = joinReversed(append(append([]string{}, res.Path...), res.Item()))
	default:
		location = res.Joined()
	}
	if location == "" {
		location = UnknownLocation
	}
	return s.trace("location", done(Profile{Location: location}, FieldLocation))
}

// OptionalPhrases asks first, then runs Phrases.
func (s *Steps) OptionalPhrases(current []string) StepResult {
	if !s.confirm(promptAddPhrases) {
		return StepResult{Status: StepDone}
	}
	return s.Phrases(current)
}

// Phrases multi-selects up to MaxPhrases common phrases starting from
// current.
func (s *Steps) Phrases(current []string) StepResult {
	phrases, err := s.data.Phrases(s.language)
	if err != nil || len(phrases) == 0 {
		if err != nil && !errors.Is(err, catalog.ErrNotFound) {
			logging.Error(err)
		}
		s.ask.Println("Warning: No common phrases found. Skipping.")
		return s.trace("phrases", done(Profile{CommonPhrases: []string{}}, FieldCommonPhrases))
	}
	chosen := s.sel.SelectMany(phrases, picker.MultiOptions{
		ID:    "phrases",
		Title: titlePhrases,
		Max:   MaxPhrases,
		Seed:  current,
	})
	return s.trace("phrases", done(Profile{CommonPhrases: chosen}, FieldCommonPhrases))
}

// OptionalPicture asks first, then runs Picture.
func (s *Steps) OptionalPicture(gender string) StepResult {
	if !s.confirm(promptAddPicture) {
		return StepResult{Status: StepDone}
	}
	return s.Picture(gender)
}

// Picture pages through the picture URLs matching gender, or all of them
// when none match. Cancelling clears the picture.
func (s *Steps) Picture(gender string) StepResult {
	cleared := done(Profile{}, FieldProfilePicture)
	pictures, err := s.data.Pictures()
	if err != nil || len(pictures) == 0 {
		s.ask.Println("Warning: No pictures file found or list is empty. Cannot select picture.")
		return s.trace("picture", cleared)
	}
	candidates := FilterPictures(pictures, gender)
	if len(candidates) == 0 {
		s.ask.Println(fmt.Sprintf("Warning: No specific pictures found for '%s'. Showing all available pictures.", gender))
		candidates = pictures
	}
	url, outcome := s.sel.Select(candidates, picker.Options{ID: "picture", Title: titlePicture, PageSize: 5})
	if outcome != picker.Selected {
		return s.trace("picture", cleared)
	}
	return s.trace("picture", done(Profile{ProfilePicture: url}, FieldProfilePicture))
}

// Biography asks for free text; a blank answer generates one from p.
func (s *Steps) Biography(p Profile) StepResult {
	answer, err := s.ask.Ask(promptBiography, "", nil)
	if err != nil || strings.TrimSpace(answer) == "" {
		answer = Biography(&p)
	}
	return s.trace("biography", done(Profile{Biography: strings.TrimSpace(answer)}, FieldBiography))
}

// Appendix optionally records free text.
func (s *Steps) Appendix() StepResult {
	if !s.confirm(promptAddAppx) {
		return StepResult{Status: StepDone}
	}
	answer, err := s.ask.Ask(promptAppendix, "", nil)
	if err != nil || strings.TrimSpace(answer) == "" {
		return StepResult{Status: StepDone}
	}
	return s.trace("appendix", done(Profile{Appendix: answer}, FieldAppendix))
}

func (s *Steps) confirm(question string) bool {
	yes, err := s.ask.Confirm(question, false)
	return err == nil && yes
}

// FilterPictures keeps URLs under /men/ for male and /women/ otherwise.
func FilterPictures(pictures []string, gender string) []string {
	keyword := "/women/"
	if gender == GenderMale {
		keyword = "/men/"
	}
	var out []string
	for _, p := range pictures {
		if strings.Contains(strings.ToLower(p), keyword) {
			out = append(out, p)
		}
	}
	return out
}

func joinReversed(parts []string) string {
	return picker.WalkResult{Path: parts}.Joined()
}
