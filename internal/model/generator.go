package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and
// explicit false; the exclusion and constraint fields default to off, so plain
// bools are enough there.
type GenerateRequest struct {
	Length           int   `json:"length"`
	Lowercase        *bool `json:"lowercase"`
	Uppercase        *bool `json:"uppercase"`
	Numbers          *bool `json:"numbers"`
	Symbols          *bool `json:"symbols"`
	ExcludeSimilar   bool  `json:"exclude_similar"`
	ExcludeAmbiguous bool  `json:"exclude_ambiguous"`
	RequireAll       bool  `json:"require_all"`
	MaxConsecutive   int   `json:"max_consecutive"`
	Count            int   `json:"count"`
}

// GenerateResponse represents a single generated password.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// StrengthResponse represents a password strength assessment. Score and Label
// come from the structural scorer; Entropy and CrackTimeDisplay are advisory
// estimates from zxcvbn.
type StrengthResponse struct {
	Score            int     `json:"score"`
	Label            string  `json:"label"`
	Length           int     `json:"length"`
	HasLowercase     bool    `json:"has_lowercase"`
	HasUppercase     bool    `json:"has_uppercase"`
	HasNumbers       bool    `json:"has_numbers"`
	HasSymbols       bool    `json:"has_symbols"`
	CategoryCount    int     `json:"category_count"`
	Entropy          float64 `json:"entropy"`
	CrackTimeDisplay string  `json:"crack_time_display"`
}
