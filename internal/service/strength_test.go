package service

import "testing"

func TestAssess_StructuralFields(t *testing.T) {
	svc := NewStrengthService()
	resp := svc.Assess("Tr0ub4dor&3")

	if resp.Label != "strong" {
		t.Errorf("expected label %q, got %q", "strong", resp.Label)
	}
	if resp.Score != 5 {
		t.Errorf("expected score 5, got %d", resp.Score)
	}
	if resp.CategoryCount != 4 {
		t.Errorf("expected 4 categories, got %d", resp.CategoryCount)
	}
	if resp.Length != 11 {
		t.Errorf("expected length 11, got %d", resp.Length)
	}
}

func TestAssess_EntropyEnrichment(t *testing.T) {
	svc := NewStrengthService()
	resp := svc.Assess("Tr0ub4dor&3")

	if resp.Entropy <= 0 {
		t.Errorf("expected positive entropy estimate, got %f", resp.Entropy)
	}
	if resp.CrackTimeDisplay == "" {
		t.Error("expected a crack time display string")
	}
}

func TestAssess_EmptyPassword(t *testing.T) {
	svc := NewStrengthService()
	resp := svc.Assess("")

	if resp.Label != "weak" {
		t.Errorf("expected label %q, got %q", "weak", resp.Label)
	}
	if resp.Score != 0 {
		t.Errorf("expected score 0, got %d", resp.Score)
	}
	if resp.Entropy != 0 {
		t.Errorf("expected zero entropy for empty input, got %f", resp.Entropy)
	}
}
