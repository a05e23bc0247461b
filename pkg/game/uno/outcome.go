package uno

import (
	"context"
	"time"
)

// Outcome is the symbolic result of a play or abandonment step.
type Outcome int8

const (
	OutcomeContinue Outcome = iota
	OutcomeEndWithWinner
	OutcomeEndNoWinner
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeEndWithWinner:
		return "end_with_winner"
	case OutcomeEndNoWinner:
		return "end_no_winner"
	}
	return "unknown"
}

// Dispatch maps an outcome to its persistence action: finalize for the
// two ending outcomes, a plain save otherwise. Finalizing is never
// followed by a redundant save. The in-memory session is updated to
// mirror what the store recorded so callers see the final state.
func Dispatch(ctx context.Context, store Store, s *Session, outcome Outcome, winnerID string) error {
	switch outcome {
	case OutcomeEndWithWinner:
		if err := store.Finalize(ctx, s.ID, winnerID); err != nil {
			return err
		}
		end(s, winnerID)
		return nil
	case OutcomeEndNoWinner:
		if err := store.Finalize(ctx, s.ID, ""); err != nil {
			return err
		}
		end(s, "")
		return nil
	default:
		return store.Save(ctx, s)
	}
}

func end(s *Session, winnerID string) {
	s.Status = Ended
	s.WinnerID = winnerID
	if s.EndedAt == nil {
		endedAt := time.Now().UTC()
		s.EndedAt = &endedAt
	}
}
