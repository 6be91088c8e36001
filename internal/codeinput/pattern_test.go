package codeinput

import "testing"

func TestPatternAnchorsFullMatch(t *testing.T) {
	p := MustCompilePattern(`[0-9]`)
	cases := map[string]bool{
		"4":   true,
		"a":   false,
		"42":  false,
		"a4":  false,
		"4\n": false,
		"":    false,
	}
	for in, want := range cases {
		if got := p.Accepts(in); got != want {
			t.Fatalf("Accepts(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPatternRuns(t *testing.T) {
	p := MustCompilePattern(`\d+`)
	if !p.Accepts("432") {
		t.Fatalf("expected digits run to match")
	}
	if p.Accepts("43a") {
		t.Fatalf("expected mixed run to be rejected")
	}
}

func TestPatternAlternationIsGrouped(t *testing.T) {
	p := MustCompilePattern(`a|b`)
	if p.Accepts("ab") || p.Accepts("xb") {
		t.Fatalf("expected alternation to stay anchored on both sides")
	}
	if !p.Accepts("b") {
		t.Fatalf("expected b to match")
	}
}

func TestNilPatternAcceptsEverything(t *testing.T) {
	p, err := CompilePattern("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil pattern for blank expression")
	}
	if !p.Accepts("anything at all") {
		t.Fatalf("nil pattern should accept")
	}
	if p.String() != "" {
		t.Fatalf("expected empty source, got %q", p.String())
	}
}

func TestCompilePatternRejectsInvalid(t *testing.T) {
	if _, err := CompilePattern(`[0-9`); err == nil {
		t.Fatal("expected compile error")
	}
}
