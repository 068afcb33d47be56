package game

import (
	"errors"
	"fmt"
)

// Structural errors abort the match. They indicate a broken integration or
// corrupted state rather than a bad decision.
var (
	ErrUnknownPlayer      = errors.New("unknown player")
	ErrEmptyHand          = errors.New("empty hand")
	ErrShortDeck          = errors.New("not enough cards to deal")
	ErrNotEnoughCompanies = errors.New("fewer companies than players")
)

// RuleViolationError marks a failure attributable to a single player's
// decision: an unaffordable exchange, a card not in hand, an unpayable
// construction. The turn resolver rejects these without mutating shared
// state and the orchestrator recovers by forcing a drop.
type RuleViolationError struct {
	Player PlayerID
	Reason string
}

func (e *RuleViolationError) Error() string {
	return fmt.Sprintf("rule violation by %s: %s", e.Player, e.Reason)
}

// violation builds a RuleViolationError with a formatted reason.
func violation(id PlayerID, format string, args ...any) error {
	return &RuleViolationError{Player: id, Reason: fmt.Sprintf(format, args...)}
}

// IsRuleViolation reports whether err is player-attributable and therefore
// recoverable by the orchestrator.
func IsRuleViolation(err error) bool {
	var rv *RuleViolationError
	return errors.As(err, &rv)
}
