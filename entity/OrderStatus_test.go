package entity

import "testing"

func TestStageOf(t *testing.T) {
	cases := []struct {
		status OrderStatus
		want   Stage
	}{
		{StatusPending, StageAccepted},
		{StatusAccepted, StageAccepted},
		{StatusPreparing, StagePreparing},
		{StatusReadyForPickup, StageReady},
		{StatusDelivered, StagePickedUp},
		{StatusCancelled, StagePickedUp},
		// display-only mapping fails open for unknown values
		{OrderStatus("garbage"), StageAccepted},
		{OrderStatus(""), StageAccepted},
	}
	for _, tc := range cases {
		if got := StageOf(tc.status); got != tc.want {
			t.Errorf("StageOf(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestStorageOf(t *testing.T) {
	cases := []struct {
		stage Stage
		want  OrderStatus
	}{
		{StageAccepted, StatusAccepted},
		{StagePreparing, StatusPreparing},
		{StageReady, StatusReadyForPickup},
		{StagePickedUp, StatusDelivered},
	}
	for _, tc := range cases {
		if got := StorageOf(tc.stage); got != tc.want {
			t.Errorf("StorageOf(%q) = %q, want %q", tc.stage, got, tc.want)
		}
	}
}

func TestNextStage(t *testing.T) {
	next, ok := NextStage(StageAccepted)
	if !ok || next != StagePreparing {
		t.Fatalf("NextStage(accepted) = %q, %v", next, ok)
	}
	next, ok = NextStage(StagePreparing)
	if !ok || next != StageReady {
		t.Fatalf("NextStage(preparing) = %q, %v", next, ok)
	}
	next, ok = NextStage(StageReady)
	if !ok || next != StagePickedUp {
		t.Fatalf("NextStage(ready) = %q, %v", next, ok)
	}
	if _, ok := NextStage(StagePickedUp); ok {
		t.Fatal("picked_up must be terminal")
	}
	if _, ok := NextStage(Stage("bogus")); ok {
		t.Fatal("unknown stage must not advance")
	}
}

func TestStorageStatusesOfRoundTrip(t *testing.T) {
	// every storage status must appear in the guard set of its own stage
	all := []OrderStatus{
		StatusPending, StatusAccepted, StatusPreparing,
		StatusReadyForPickup, StatusDelivered, StatusCancelled,
	}
	for _, s := range all {
		stage := StageOf(s)
		found := false
		for _, g := range StorageStatusesOf(stage) {
			if g == s {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("status %q missing from guard set of stage %q", s, stage)
		}
	}
}

func TestParseStage(t *testing.T) {
	for _, s := range StageFlow {
		if got, ok := ParseStage(string(s)); !ok || got != s {
			t.Errorf("ParseStage(%q) = %q, %v", s, got, ok)
		}
	}
	if _, ok := ParseStage("pending"); ok {
		t.Error("storage-only value must not parse as a stage")
	}
}

func TestParseMealType(t *testing.T) {
	for _, s := range []string{"breakfast", "lunch", "dinner"} {
		if _, err := ParseMealType(s); err != nil {
			t.Errorf("ParseMealType(%q): %v", s, err)
		}
	}
	for _, s := range []string{"brunch", "", "Breakfast"} {
		if _, err := ParseMealType(s); err == nil {
			t.Errorf("ParseMealType(%q) accepted an unknown value", s)
		}
	}
}
