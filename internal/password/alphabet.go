package password

import (
	"errors"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// similarChars are easily confused with one another in most fonts.
	similarChars = "iIlL1oO0"
	// ambiguousChars tend to break copy-paste, shells and config files.
	ambiguousChars = "{}[]()/\\'\"`~,;:.<>"
)

var (
	ErrEmptyAlphabet     = errors.New("character pool is empty after exclusions")
	ErrAttemptsExhausted = errors.New("no candidate satisfied all constraints within the attempt limit")
)

// BuildAlphabet assembles the pool of characters eligible for sampling from
// the include flags and exclusion sets in opts. Categories are appended in a
// fixed order (lowercase, uppercase, numbers, symbols) so the result is
// deterministic for a given set of options. Exclusions are subtracted from
// the whole accumulated pool, not per category.
func BuildAlphabet(opts Options) (string, error) {
	var pool string

	if opts.Lowercase {
		pool += lowercaseChars
	}
	if opts.Uppercase {
		pool += uppercaseChars
	}
	if opts.Numbers {
		pool += numberChars
	}
	if opts.Symbols {
		pool += symbolChars
	}

	if opts.ExcludeSimilar {
		pool = stripChars(pool, similarChars)
	}
	if opts.ExcludeAmbiguous {
		pool = stripChars(pool, ambiguousChars)
	}

	if pool == "" {
		return "", ErrEmptyAlphabet
	}
	return pool, nil
}

// stripChars removes every occurrence of each byte in cut from s.
func stripChars(s, cut string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(cut, s[i]) < 0 {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
