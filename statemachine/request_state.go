package statemachine

import (
	"errors"
	"food-rescue-api/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.RequestStatus
	To    models.RequestStatus
	Actor string // "restaurant" or "charity"
}

// validTransitions is the authoritative state machine definition.
// Creation (→ pending) is the charity's act; every later move belongs to
// the restaurant that owns the listing. Ownership itself is checked by the
// guarded UPDATE in the handler, not here.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusAccepted, Actor: "restaurant"},
	{From: models.StatusPending, To: models.StatusRejected, Actor: "restaurant"},
	{From: models.StatusAccepted, To: models.StatusCompleted, Actor: "restaurant"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.RequestStatus
	To    models.RequestStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.RequestStatus) []models.RequestStatus {
	var nexts []models.RequestStatus
	seen := map[models.RequestStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// IsTerminal reports whether no further transition leaves the state
func IsTerminal(status models.RequestStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.RequestStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.RequestStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
