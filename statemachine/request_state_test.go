package statemachine

import (
	"testing"

	"food-rescue-api/models"
)

var allStatuses = []models.RequestStatus{
	models.StatusPending,
	models.StatusAccepted,
	models.StatusRejected,
	models.StatusCompleted,
}

func TestOnlyThreeEdgesAreAllowed(t *testing.T) {
	allowed := map[[3]string]bool{
		{"pending", "accepted", "restaurant"}:   true,
		{"pending", "rejected", "restaurant"}:   true,
		{"accepted", "completed", "restaurant"}: true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			for _, actor := range []string{"restaurant", "charity", "admin"} {
				err := CanTransition(from, to, actor)
				key := [3]string{string(from), string(to), actor}
				if allowed[key] && err != nil {
					t.Errorf("expected %s -> %s by %s to be allowed, got %v", from, to, actor, err)
				}
				if !allowed[key] && err == nil {
					t.Errorf("expected %s -> %s by %s to be rejected", from, to, actor)
				}
			}
		}
	}
}

func TestTerminalStates(t *testing.T) {
	if !IsTerminal(models.StatusRejected) {
		t.Error("rejected should be terminal")
	}
	if !IsTerminal(models.StatusCompleted) {
		t.Error("completed should be terminal")
	}
	if IsTerminal(models.StatusPending) {
		t.Error("pending should not be terminal")
	}
	if IsTerminal(models.StatusAccepted) {
		t.Error("accepted should not be terminal")
	}
}

func TestValidTransitionsFromPending(t *testing.T) {
	nexts := ValidTransitionsFrom(models.StatusPending)
	if len(nexts) != 2 {
		t.Fatalf("expected 2 next states from pending, got %v", nexts)
	}
	seen := map[models.RequestStatus]bool{}
	for _, s := range nexts {
		seen[s] = true
	}
	if !seen[models.StatusAccepted] || !seen[models.StatusRejected] {
		t.Errorf("expected accepted and rejected, got %v", nexts)
	}
}

func TestValidTransitionsFromAccepted(t *testing.T) {
	nexts := ValidTransitionsFrom(models.StatusAccepted)
	if len(nexts) != 1 || nexts[0] != models.StatusCompleted {
		t.Errorf("expected only completed from accepted, got %v", nexts)
	}
}
