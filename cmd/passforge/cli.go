package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
	"github.com/passforge/passforge-go/internal/service"
)

// cliOptions holds the fully resolved command-line options. The negative
// include flags (-no-lowercase etc.) exist because every character type is on
// by default.
type cliOptions struct {
	Length           int
	Count            int
	NoLowercase      bool
	NoUppercase      bool
	NoNumbers        bool
	NoSymbols        bool
	ExcludeSimilar   bool
	ExcludeAmbiguous bool
	RequireAll       bool
	MaxConsecutive   int
	Check            string
	JSON             bool
	Interactive      bool
}

// parseFlags registers and parses command-line flags on the provided FlagSet
// so tests can run it without touching global flag state. Environment-derived
// config supplies the defaults.
func parseFlags(fs *flag.FlagSet, cfg config.Config, args []string) (cliOptions, error) {
	var o cliOptions

	fs.IntVar(&o.Length, "length", cfg.DefaultLength, "password length")
	fs.IntVar(&o.Length, "l", cfg.DefaultLength, "password length (shorthand)")
	fs.IntVar(&o.Count, "count", cfg.DefaultCount, "number of passwords to generate")
	fs.IntVar(&o.Count, "c", cfg.DefaultCount, "number of passwords (shorthand)")

	fs.BoolVar(&o.NoLowercase, "no-lowercase", false, "exclude lowercase letters")
	fs.BoolVar(&o.NoUppercase, "no-uppercase", false, "exclude uppercase letters")
	fs.BoolVar(&o.NoNumbers, "no-numbers", false, "exclude digits")
	fs.BoolVar(&o.NoSymbols, "no-symbols", false, "exclude symbols")

	fs.BoolVar(&o.ExcludeSimilar, "exclude-similar", false, "exclude easily confused characters (iIlL1oO0)")
	fs.BoolVar(&o.ExcludeAmbiguous, "exclude-ambiguous", false, "exclude brackets, quotes and other ambiguous characters")
	fs.BoolVar(&o.RequireAll, "require-all", false, "require at least one character from every enabled type")
	fs.IntVar(&o.MaxConsecutive, "max-consecutive", 0, "maximum run of identical characters (0 = unlimited)")

	fs.StringVar(&o.Check, "check", "", "assess the strength of the given password instead of generating")
	fs.BoolVar(&o.JSON, "json", false, "emit JSON output")
	fs.BoolVar(&o.Interactive, "interactive", false, "prompt for options interactively")
	fs.BoolVar(&o.Interactive, "i", false, "prompt for options interactively (shorthand)")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}
	if o.Length < 1 {
		return cliOptions{}, fmt.Errorf("length must be positive, got %d", o.Length)
	}
	if o.Count < 1 {
		return cliOptions{}, fmt.Errorf("count must be positive, got %d", o.Count)
	}
	if o.MaxConsecutive < 0 {
		return cliOptions{}, fmt.Errorf("max-consecutive must not be negative, got %d", o.MaxConsecutive)
	}
	return o, nil
}

// runInteractive prompts for each option on r/w, starting from base (usually
// the parsed flags) and keeping its value when the answer is blank.
func runInteractive(r io.Reader, w io.Writer, base cliOptions) cliOptions {
	sc := bufio.NewScanner(r)
	o := base

	fmt.Fprintln(w, "passforge — interactive mode (blank keeps the default)")
	fmt.Fprintln(w)

	o.Length = promptInt(sc, w, "Password length", o.Length)
	o.Count = promptInt(sc, w, "How many passwords", o.Count)
	o.NoLowercase = !promptYesNo(sc, w, "Include lowercase letters", !o.NoLowercase)
	o.NoUppercase = !promptYesNo(sc, w, "Include uppercase letters", !o.NoUppercase)
	o.NoNumbers = !promptYesNo(sc, w, "Include digits", !o.NoNumbers)
	o.NoSymbols = !promptYesNo(sc, w, "Include symbols", !o.NoSymbols)
	o.ExcludeSimilar = promptYesNo(sc, w, "Exclude similar characters (iIlL1oO0)", o.ExcludeSimilar)
	o.ExcludeAmbiguous = promptYesNo(sc, w, "Exclude ambiguous characters", o.ExcludeAmbiguous)
	o.RequireAll = promptYesNo(sc, w, "Require one of every enabled type", o.RequireAll)
	o.MaxConsecutive = promptInt(sc, w, "Max identical characters in a row (0 = unlimited)", o.MaxConsecutive)

	fmt.Fprintln(w)
	return o
}

func promptInt(sc *bufio.Scanner, w io.Writer, label string, def int) int {
	fmt.Fprintf(w, "%s [%d]: ", label, def)
	if !sc.Scan() {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || v < 0 {
		return def
	}
	return v
}

func promptYesNo(sc *bufio.Scanner, w io.Writer, label string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(w, "%s [%s]: ", label, hint)
	if !sc.Scan() {
		return def
	}
	switch strings.TrimSpace(strings.ToLower(sc.Text())) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}

// run executes either the strength check or the generation loop and writes
// the result to w.
func run(o cliOptions, w io.Writer) error {
	if o.Check != "" {
		return runCheck(o, w)
	}
	return runGenerate(o, w)
}

func runCheck(o cliOptions, w io.Writer) error {
	resp := service.NewStrengthService().Assess(o.Check)
	if o.JSON {
		return writeJSON(w, resp)
	}

	fmt.Fprintf(w, "strength: %s (score %d)\n", resp.Label, resp.Score)
	fmt.Fprintf(w, "length:   %d\n", resp.Length)
	fmt.Fprintf(w, "classes:  %d of 4 (lowercase=%v uppercase=%v numbers=%v symbols=%v)\n",
		resp.CategoryCount, resp.HasLowercase, resp.HasUppercase, resp.HasNumbers, resp.HasSymbols)
	if resp.CrackTimeDisplay != "" {
		fmt.Fprintf(w, "estimate: %.1f bits of entropy, crackable in %s\n", resp.Entropy, resp.CrackTimeDisplay)
	}
	return nil
}

func runGenerate(o cliOptions, w io.Writer) error {
	off := false
	req := model.GenerateRequest{
		Length:           o.Length,
		ExcludeSimilar:   o.ExcludeSimilar,
		ExcludeAmbiguous: o.ExcludeAmbiguous,
		RequireAll:       o.RequireAll,
		MaxConsecutive:   o.MaxConsecutive,
		Count:            o.Count,
	}
	if o.NoLowercase {
		req.Lowercase = &off
	}
	if o.NoUppercase {
		req.Uppercase = &off
	}
	if o.NoNumbers {
		req.Numbers = &off
	}
	if o.NoSymbols {
		req.Symbols = &off
	}

	results, err := service.NewGeneratorService().GenerateBatch(req)
	if err != nil {
		return err
	}

	if o.JSON {
		return writeJSON(w, results)
	}
	for _, r := range results {
		fmt.Fprintln(w, r.Password)
	}
	return nil
}

// renderError turns the core's failure signals into actionable guidance; any
// other error is passed through as-is.
func renderError(err error) string {
	switch {
	case errors.Is(err, password.ErrEmptyAlphabet):
		return "no characters left to choose from — enable more character types or drop an exclusion"
	case errors.Is(err, password.ErrAttemptsExhausted):
		return "could not satisfy all constraints — relax them or increase the length"
	default:
		return err.Error()
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
