package statemachine

import (
	"fmt"
	"strings"

	"jamjam-resort-api/models"
)

// Transition defines a valid kitchen-order-ticket state change
type Transition struct {
	From models.KitchenStatus `json:"from"`
	To   models.KitchenStatus `json:"to"`
}

// validTransitions is the authoritative KOT lifecycle
var validTransitions = []Transition{
	// Kitchen picks up the ticket
	{From: models.KitchenPending, To: models.KitchenPreparing},
	// Food is plated and waiting at the pass
	{From: models.KitchenPreparing, To: models.KitchenReady},
	// Delivered to the table
	{From: models.KitchenReady, To: models.KitchenServed},
	// Cancellation is only possible before the food is ready
	{From: models.KitchenPending, To: models.KitchenCancelled},
	{From: models.KitchenPreparing, To: models.KitchenCancelled},
}

var statuses = []models.KitchenStatus{
	models.KitchenPending, models.KitchenPreparing, models.KitchenReady,
	models.KitchenServed, models.KitchenCancelled,
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// TransitionError reports a status change the lifecycle does not allow.
type TransitionError struct {
	From  models.KitchenStatus
	To    models.KitchenStatus
	Valid []models.KitchenStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s → %s is not allowed. Valid transitions from %s are: %s",
		e.From, e.To, e.From, describe(e.Valid))
}

// Known reports whether s is one of the KOT statuses.
func Known(s models.KitchenStatus) bool {
	for _, k := range statuses {
		if k == s {
			return true
		}
	}
	return false
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.KitchenStatus) []models.KitchenStatus {
	var nexts []models.KitchenStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether an order may move from one state to another. Orders written
// before statuses were tracked (or with a status outside the lifecycle) may move anywhere.
func CanTransition(from, to models.KitchenStatus) error {
	if !Known(from) || transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return &TransitionError{From: from, To: to, Valid: ValidTransitionsFrom(from)}
}

// Terminal reports whether no transition leaves s.
func Terminal(s models.KitchenStatus) bool {
	return Known(s) && len(ValidTransitionsFrom(s)) == 0
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}

// TerminalStates lists the statuses an order ends in.
func TerminalStates() []models.KitchenStatus {
	var out []models.KitchenStatus
	for _, s := range statuses {
		if Terminal(s) {
			out = append(out, s)
		}
	}
	return out
}

func describe(nexts []models.KitchenStatus) string {
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	parts := make([]string, len(nexts))
	for i, s := range nexts {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
