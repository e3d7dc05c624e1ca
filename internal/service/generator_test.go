package service

import (
	"errors"
	mathrand "math/rand"
	"strings"
	"testing"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 12 {
		t.Errorf("expected length 12, got %d", resp.Length)
	}
	if len(resp.Password) != 12 {
		t.Errorf("expected password length 12, got %d", len(resp.Password))
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Lowercase: boolPtr(true),
		Uppercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_ExclusionsApplied(t *testing.T) {
	svc := NewGeneratorService()
	for i := 0; i < 50; i++ {
		resp, err := svc.Generate(model.GenerateRequest{ExcludeSimilar: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.ContainsAny(resp.Password, "iIlL1oO0") {
			t.Errorf("password %q contains a similar-looking character", resp.Password)
		}
	}
}

func TestGenerate_NoCharacterTypes(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Lowercase: boolPtr(false),
		Uppercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if !errors.Is(err, password.ErrEmptyAlphabet) {
		t.Fatalf("expected ErrEmptyAlphabet, got %v", err)
	}
}

func TestGenerate_UnsatisfiableConstraints(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:     2,
		RequireAll: true,
	})
	if !errors.Is(err, password.ErrAttemptsExhausted) {
		t.Fatalf("expected ErrAttemptsExhausted, got %v", err)
	}
}

func TestGenerateBatch_Count(t *testing.T) {
	svc := NewGeneratorService()
	results, err := svc.GenerateBatch(model.GenerateRequest{Count: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 5 {
		t.Errorf("expected 5 passwords, got %d", len(results))
	}
	for _, r := range results {
		if len(r.Password) != 12 {
			t.Errorf("expected password length 12, got %d", len(r.Password))
		}
	}
}

func TestGenerateBatch_DefaultsToOne(t *testing.T) {
	svc := NewGeneratorService()
	results, err := svc.GenerateBatch(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected 1 password, got %d", len(results))
	}
}

func TestGenerateBatch_SeededSourceReproducible(t *testing.T) {
	req := model.GenerateRequest{Count: 3}

	first, err := NewGeneratorServiceWith(password.NewGeneratorFrom(mathrand.New(mathrand.NewSource(7)))).GenerateBatch(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewGeneratorServiceWith(password.NewGeneratorFrom(mathrand.New(mathrand.NewSource(7)))).GenerateBatch(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range first {
		if first[i].Password != second[i].Password {
			t.Errorf("batch item %d: same seed produced %q and %q", i, first[i].Password, second[i].Password)
		}
	}
}
