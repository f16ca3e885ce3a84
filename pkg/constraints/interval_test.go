package constraints

import "testing"

func TestScheduleValid(t *testing.T) {
	c := NewSchedule[string]("A", 9, 17)

	if !c.Valid("R9,17") {
		t.Fatalf("expected an interval exactly at the bounds to satisfy Schedule")
	}
	if c.Valid("R8,17") {
		t.Fatalf("expected an interval starting before Earliest to violate Schedule")
	}
	if c.Valid("R9,18") {
		t.Fatalf("expected an interval ending after Latest to violate Schedule")
	}
}

func TestScheduleAffects(t *testing.T) {
	c := NewSchedule[string]("A", 9, 17)

	if !c.Affects("A") {
		t.Fatalf("expected Schedule to affect its own variable")
	}
	if c.Affects("B") {
		t.Fatalf("did not expect Schedule to affect an unrelated variable")
	}
}

func TestNotOverlapDifferentTagsNeverConflict(t *testing.T) {
	c := NewNotOverlap[string]("A", "B")

	if !c.Valid("R10,12", "S10,12") {
		t.Fatalf("expected differently-tagged intervals to never overlap")
	}
}

func TestNotOverlapSharedStartConflicts(t *testing.T) {
	c := NewNotOverlap[string]("A", "B")

	if c.Valid("R10,12", "R10,15") {
		t.Fatalf("expected a shared start to count as overlap")
	}
}

func TestNotOverlapSharedEndConflicts(t *testing.T) {
	c := NewNotOverlap[string]("A", "B")

	if c.Valid("R8,12", "R10,12") {
		t.Fatalf("expected a shared end to count as overlap")
	}
}

func TestNotOverlapInteriorOverlapConflicts(t *testing.T) {
	c := NewNotOverlap[string]("A", "B")

	if c.Valid("R10,12", "R11,13") {
		t.Fatalf("expected an interior overlap to be rejected")
	}
}

func TestNotOverlapAdjacentIntervalsDoNotConflict(t *testing.T) {
	c := NewNotOverlap[string]("A", "B")

	if !c.Valid("R10,12", "R12,14") {
		t.Fatalf("expected back-to-back intervals sharing only a boundary instant to not overlap")
	}
}

func TestNotOverlapAffectsAndOther(t *testing.T) {
	c := NewNotOverlap[string]("A", "B")

	if !c.Affects("A") || !c.Affects("B") {
		t.Fatalf("expected NotOverlap to affect both endpoints")
	}
	if got := c.Other("A"); got != "B" {
		t.Fatalf("Other(A) = %q, want B", got)
	}
}
