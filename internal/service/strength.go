package service

import (
	"github.com/nbutton23/zxcvbn-go"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
)

// StrengthService assesses password strength. The structural score and label
// come from the core scorer; zxcvbn contributes an entropy estimate and a
// human-readable crack time on top.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Assess scores an arbitrary password, including the empty string.
func (s *StrengthService) Assess(pw string) model.StrengthResponse {
	a := password.Assess(pw)

	resp := model.StrengthResponse{
		Score:         a.Score,
		Label:         a.Label.String(),
		Length:        a.Length,
		HasLowercase:  a.HasLowercase,
		HasUppercase:  a.HasUppercase,
		HasNumbers:    a.HasNumbers,
		HasSymbols:    a.HasSymbols,
		CategoryCount: a.CategoryCount,
	}

	if pw != "" {
		match := zxcvbn.PasswordStrength(pw, nil)
		resp.Entropy = match.Entropy
		resp.CrackTimeDisplay = match.CrackTimeDisplay
	}
	return resp
}
