package password

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"
)

// MaxAttempts bounds the rejection-sampling loop so that generation always
// terminates, even when the constraints are unsatisfiable for the requested
// length.
const MaxAttempts = 100

// Options configures a single generation call. Length must be positive and
// at least one include flag must be set for generation to succeed.
type Options struct {
	Length           int
	Lowercase        bool
	Uppercase        bool
	Numbers          bool
	Symbols          bool
	ExcludeSimilar   bool
	ExcludeAmbiguous bool
	RequireAll       bool
	// MaxConsecutive caps the length of runs of identical adjacent
	// characters. 0 means unbounded.
	MaxConsecutive int
}

// DefaultOptions returns sensible defaults: 12 characters with all character
// types enabled and no extra constraints.
func DefaultOptions() Options {
	return Options{
		Length:    12,
		Lowercase: true,
		Uppercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Generator draws passwords from a uniform randomness source. The zero value
// is not usable; construct one with NewGenerator or NewGeneratorFrom.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator backed by crypto/rand. The algorithm does
// not depend on the source being cryptographically secure, but there is no
// reason to hand out guessable passwords.
func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

// NewGeneratorFrom returns a Generator backed by r. A deterministic reader
// (for example a seeded math/rand.Rand) makes generation reproducible.
func NewGeneratorFrom(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate produces a password satisfying opts by rejection sampling: it
// draws candidates of the requested length uniformly from the alphabet and
// returns the first one passing every active constraint. After MaxAttempts
// rejected candidates it gives up with ErrAttemptsExhausted. No partial
// result is ever returned on failure.
func (g *Generator) Generate(opts Options) (string, error) {
	alphabet, err := BuildAlphabet(opts)
	if err != nil {
		return "", err
	}

	buf := make([]byte, opts.Length)
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		for i := range buf {
			n, err := g.randInt(len(alphabet))
			if err != nil {
				return "", err
			}
			buf[i] = alphabet[n]
		}
		candidate := string(buf)

		if opts.RequireAll && !coversIncludedCategories(candidate, opts) {
			continue
		}
		if opts.MaxConsecutive > 0 && longestRun(candidate) > opts.MaxConsecutive {
			continue
		}
		return candidate, nil
	}
	return "", ErrAttemptsExhausted
}

// Generate produces a password using a crypto/rand backed Generator.
func Generate(opts Options) (string, error) {
	return NewGenerator().Generate(opts)
}

// coversIncludedCategories reports whether s contains at least one character
// from every included category. Coverage is checked against the full fixed
// category sets, not the post-exclusion pool; excluded characters never
// appear in the pool, so they cannot sneak coverage in.
func coversIncludedCategories(s string, opts Options) bool {
	if opts.Lowercase && !strings.ContainsAny(s, lowercaseChars) {
		return false
	}
	if opts.Uppercase && !strings.ContainsAny(s, uppercaseChars) {
		return false
	}
	if opts.Numbers && !strings.ContainsAny(s, numberChars) {
		return false
	}
	if opts.Symbols && !strings.ContainsAny(s, symbolChars) {
		return false
	}
	return true
}

// longestRun returns the length of the longest run of identical adjacent
// characters in s. Empty input yields 0.
func longestRun(s string) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] == s[i-1] {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// randInt picks a uniform int in [0, max) from the generator's source.
func (g *Generator) randInt(max int) (int, error) {
	n, err := rand.Int(g.rand, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
