package codeinput

import "testing"

func TestPasteFillsFromFocus(t *testing.T) {
	in, rec := newTestInput(t, 4, "", `[0-9]+`)
	focus(t, in, 0)

	res := in.Paste("432")
	if !res.Changed || !res.Moved {
		t.Fatalf("expected change and move, got %+v", res)
	}
	if slotChars(in) != "4,3,2," {
		t.Fatalf("unexpected slots %q", slotChars(in))
	}
	if in.Focus() != 2 {
		t.Fatalf("expected focus 2, got %d", in.Focus())
	}
	if len(rec.values) != 1 || rec.values[0] != "432" {
		t.Fatalf("expected one report of \"432\", got %v", rec.values)
	}
}

func TestPasteDiscardsOverflow(t *testing.T) {
	in, rec := newTestInput(t, 4, "", "")
	focus(t, in, 2)
	in.Paste("56789")
	if slotChars(in) != ",,5,6" {
		t.Fatalf("unexpected slots %q", slotChars(in))
	}
	if in.Focus() != 3 {
		t.Fatalf("expected focus clamped to 3, got %d", in.Focus())
	}
	if len(rec.values) != 1 || rec.values[0] != "56" {
		t.Fatalf("expected single report, got %v", rec.values)
	}
}

func TestPasteOverwritesExisting(t *testing.T) {
	in, _ := newTestInput(t, 6, "abcdef", "")
	focus(t, in, 1)
	in.Paste("XY")
	if in.Value() != "aXYdef" || in.Focus() != 2 {
		t.Fatalf("unexpected value %q focus=%d", in.Value(), in.Focus())
	}
}

func TestPasteRejectedAsWhole(t *testing.T) {
	in, rec := newTestInput(t, 4, "1", `[0-9]+`)
	focus(t, in, 1)
	res := in.Paste("12a4")
	if res.Changed || res.Moved {
		t.Fatalf("expected rejection, got %+v", res)
	}
	if slotChars(in) != "1,,," || in.Focus() != 1 || len(rec.values) != 0 {
		t.Fatalf("rejected paste mutated state: %q focus=%d reports=%v",
			slotChars(in), in.Focus(), rec.values)
	}
}

func TestPasteSingleCharacterPatternRejectsRuns(t *testing.T) {
	in, rec := newTestInput(t, 4, "", `[0-9]`)
	in.Paste("12")
	if in.Value() != "" || len(rec.values) != 0 {
		t.Fatalf("expected run to fail single-character pattern, got %q", in.Value())
	}
}

func TestPasteEmptyIsNoop(t *testing.T) {
	in, rec := newTestInput(t, 4, "", "")
	if res := in.Paste(""); res.Changed || res.Moved {
		t.Fatalf("expected no-op, got %+v", res)
	}
	if len(rec.values) != 0 {
		t.Fatalf("expected no reports, got %v", rec.values)
	}
}

func TestPasteWithoutFocusStartsAtFirstSlot(t *testing.T) {
	in, _ := newTestInput(t, 4, "", "")
	in.Paste("ab")
	if slotChars(in) != "a,b,," || in.Focus() != 1 {
		t.Fatalf("unexpected state %q focus=%d", slotChars(in), in.Focus())
	}
}
