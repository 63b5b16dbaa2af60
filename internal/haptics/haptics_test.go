package haptics

import (
	"strings"
	"testing"
)

func TestBellFiltersKinds(t *testing.T) {
	var buf strings.Builder
	b := NewBell(&buf)

	b.Emit(KindSelection)
	b.Emit(KindImpactLight)
	if buf.Len() != 0 {
		t.Fatalf("light kinds must stay silent, wrote %q", buf.String())
	}

	b.Emit(KindImpactMed)
	b.Emit(KindSuccess)
	b.Emit(KindError)
	if got := buf.String(); got != "\a\a\a" {
		t.Fatalf("expected three bells, got %q", got)
	}
}

func TestRecorderCapturesOrder(t *testing.T) {
	rec := &Recorder{}
	rec.Emit(KindSelection)
	rec.Emit(KindError)

	kinds := rec.Kinds()
	if len(kinds) != 2 || kinds[0] != KindSelection || kinds[1] != KindError {
		t.Fatalf("unexpected kinds %v", kinds)
	}

	// Kinds returns a copy.
	kinds[0] = KindWarning
	if rec.Kinds()[0] != KindSelection {
		t.Fatal("Kinds leaked internal slice")
	}
}

func TestNoopIsSafe(t *testing.T) {
	Noop().Emit(KindError)
}
