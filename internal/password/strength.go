package password

import "strings"

// Strength is the qualitative label derived from an assessment score.
type Strength int

const (
	Weak Strength = iota
	Moderate
	Strong
	VeryStrong
)

// String returns the human-readable form of the label.
func (s Strength) String() string {
	switch s {
	case VeryStrong:
		return "very strong"
	case Strong:
		return "strong"
	case Moderate:
		return "moderate"
	default:
		return "weak"
	}
}

// Assessment describes the structural strength of a password. It is computed
// fresh on every call and carries no state.
type Assessment struct {
	Score         int
	Label         Strength
	Length        int
	HasLowercase  bool
	HasUppercase  bool
	HasNumbers    bool
	HasSymbols    bool
	CategoryCount int
}

// Assess scores an arbitrary string, including the empty string. Symbols are
// detected against the generator's own symbol set, not general punctuation.
//
// The score starts at zero and accumulates: +1 each for length thresholds 8,
// 12 and 16, +1 per character category present, -1 for any character repeated
// three or more times in a row, -1 for letters-only input and -1 for
// digits-only input. It is not clamped and can go negative.
func Assess(pw string) Assessment {
	a := Assessment{
		Length:       len(pw),
		HasLowercase: strings.ContainsAny(pw, lowercaseChars),
		HasUppercase: strings.ContainsAny(pw, uppercaseChars),
		HasNumbers:   strings.ContainsAny(pw, numberChars),
		HasSymbols:   strings.ContainsAny(pw, symbolChars),
	}
	for _, has := range []bool{a.HasLowercase, a.HasUppercase, a.HasNumbers, a.HasSymbols} {
		if has {
			a.CategoryCount++
		}
	}

	if a.Length >= 8 {
		a.Score++
	}
	if a.Length >= 12 {
		a.Score++
	}
	if a.Length >= 16 {
		a.Score++
	}
	a.Score += a.CategoryCount

	if longestRun(pw) >= 3 {
		a.Score--
	}
	if a.Length > 0 && onlyLetters(pw) {
		a.Score--
	}
	if a.Length > 0 && onlyDigits(pw) {
		a.Score--
	}

	switch {
	case a.Score >= 6:
		a.Label = VeryStrong
	case a.Score >= 4:
		a.Label = Strong
	case a.Score >= 2:
		a.Label = Moderate
	default:
		a.Label = Weak
	}
	return a
}

func onlyLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

func onlyDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
