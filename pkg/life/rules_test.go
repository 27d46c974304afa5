package life

import (
	"slices"
	"testing"
)

func TestParseRules(t *testing.T) {
	cases := []struct {
		in      string
		birth   []int
		survive []int
	}{
		{"B3/S23", []int{3}, []int{2, 3}},
		{"b36/s23", []int{3, 6}, []int{2, 3}},
		{"S23/B3", []int{3}, []int{2, 3}},
		{"23/3", []int{3}, []int{2, 3}},
		{"B2/S", []int{2}, nil},
		{" B0/S8 ", []int{0}, []int{8}},
	}
	for _, tc := range cases {
		r, err := ParseRules(tc.in)
		if err != nil {
			t.Fatalf("ParseRules(%q): %v", tc.in, err)
		}
		if !slices.Equal(r.Birth.Counts(), tc.birth) {
			t.Fatalf("ParseRules(%q) birth=%v, expected %v", tc.in, r.Birth.Counts(), tc.birth)
		}
		if !slices.Equal(r.Survive.Counts(), tc.survive) {
			t.Fatalf("ParseRules(%q) survive=%v, expected %v", tc.in, r.Survive.Counts(), tc.survive)
		}
	}
}

func TestParseRulesRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "B3", "B3/S23/S1", "B9/S23", "B3/S2x", "B33/S23", "B3/B3"} {
		if _, err := ParseRules(in); err == nil {
			t.Fatalf("ParseRules(%q) should fail", in)
		}
	}
}

func TestRulesString(t *testing.T) {
	if got := Conway.String(); got != "B3/S23" {
		t.Fatalf("Conway.String()=%q", got)
	}
	r, err := ParseRules("S1357/B1357")
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	if got := r.String(); got != "B1357/S1357" {
		t.Fatalf("String()=%q", got)
	}
}

func TestLookupRules(t *testing.T) {
	for _, name := range Presets() {
		if _, err := LookupRules(name); err != nil {
			t.Fatalf("preset %q: %v", name, err)
		}
	}
	r, err := LookupRules("HighLife")
	if err != nil {
		t.Fatalf("LookupRules: %v", err)
	}
	if r.String() != "B36/S23" {
		t.Fatalf("highlife=%s", r)
	}
	if r, err := LookupRules("B3/S23"); err != nil || r != Conway {
		t.Fatalf("notation lookup=%v, %v", r, err)
	}
}

func TestNeighbourSetIgnoresImpossibleCounts(t *testing.T) {
	s := NewNeighbourSet(-1, 2, 9, 12)
	if !slices.Equal(s.Counts(), []int{2}) {
		t.Fatalf("counts=%v", s.Counts())
	}
	if s.Has(9) || s.Has(-1) {
		t.Fatal("impossible counts must never match")
	}
}
