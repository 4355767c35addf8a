package semid

import (
	"errors"
	"testing"
)

func TestStableID_Deterministic(t *testing.T) {
	a, err := StableID("Percentage Change")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := StableID("Percentage Change")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("same label produced different IDs: %s vs %s", a, b)
	}
	if len(a) != IDLength {
		t.Errorf("expected %d-char ID, got %d (%s)", IDLength, len(a), a)
	}
}

func TestStableID_NormalizesCaseAndWhitespace(t *testing.T) {
	variants := []string{
		"percentage change",
		"Percentage Change",
		"  percentage change  ",
		"PERCENTAGE CHANGE",
	}

	first, err := StableID(variants[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range variants[1:] {
		id, err := StableID(v)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", v, err)
		}
		if id != first {
			t.Errorf("variant %q produced %s, want %s", v, id, first)
		}
	}
}

func TestStableID_DistinctLabels(t *testing.T) {
	a, _ := StableID("ratio")
	b, _ := StableID("proportion")
	if a == b {
		t.Errorf("distinct labels collided: %s", a)
	}
}

func TestStableID_EmptyLabel(t *testing.T) {
	if _, err := StableID("   "); !errors.Is(err, ErrEmptyLabel) {
		t.Errorf("expected ErrEmptyLabel, got %v", err)
	}
}

func TestMapLabels(t *testing.T) {
	m := MapLabels([]string{"ratio", "Ratio", "", "proportion"})

	if len(m) != 3 {
		t.Fatalf("expected 3 entries (empty label dropped), got %d: %v", len(m), m)
	}
	if m["ratio"] != m["Ratio"] {
		t.Errorf("case variants should map to the same ID")
	}
	if m["ratio"] == m["proportion"] {
		t.Errorf("distinct labels should map to distinct IDs")
	}
}
