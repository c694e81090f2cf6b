package persona

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// PasswordLengths are the generated password sizes on offer.
var PasswordLengths = []int{12, 24, 32}

// Rand is the random source for non-secret choices. *math/rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// UsernameSuggestions derives candidate usernames from the name and age. The
// list is deduplicated and always ends with a short fallback.
func UsernameSuggestions(first, last string, age, year int, rng Rand) []string {
	f := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(first), " ", ""))
	l := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(last), " ", ""))

	var out []string
	if f != "" || l != "" {
		out = append(out,
			f+l,
			f+l+strconv.Itoa(age),
			f+l+strconv.Itoa(year-age),
		)
	}
	if f != "" && l != "" {
		out = append(out,
			prefix(f, 1)+prefix(l, 1)+strconv.Itoa(between(rng, 100, 999)),
			prefix(f, 3)+prefix(l, 3)+strconv.Itoa(between(rng, 10, 99)),
		)
	}
	base := f
	if base == "" {
		base = "user"
	}
	out = append(out, prefix(base, 4)+strconv.Itoa(between(rng, 100, 999)))
	return dedupe(out)
}

// GeneratePassword draws length characters from letters, digits and
// punctuation using crypto/rand.
func GeneratePassword(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("password length must be positive (got %d)", length)
	}
	alphabet := []rune(passwordAlphabet)
	max := big.NewInt(int64(len(alphabet)))
	out := make([]rune, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}

func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// between returns a value in [lo, hi].
func between(rng Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
