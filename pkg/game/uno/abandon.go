package uno

import (
	"context"

	"github.com/mpsalisbury/uno/pkg/result"
)

// AbandonOutcome is the resolved consequence of a player leaving an
// active session.
type AbandonOutcome struct {
	Session  *Session
	Outcome  Outcome
	WinnerID string
}

// Abandon removes a player from an active session, renumbers the
// remaining seats, and ends or continues the game depending on how many
// seats are left: one remaining seat wins by forfeit, zero ends the
// game without a winner, two or more keep playing.
func Abandon(ctx context.Context, store Store, s *Session, playerID string) result.Result[AbandonOutcome] {
	validated := result.Ok(s).
		AndThen(IsSeated(playerID)).
		AndThen(IsActive)

	return result.AndThen(validated, func(s *Session) result.Result[AbandonOutcome] {
		removed := s.SeatIndex(playerID)
		s.Seats = append(s.Seats[:removed], s.Seats[removed+1:]...)
		s.reposition()

		// Keep the cursor on the seat whose turn it is: seats above the
		// removed one shift down, and removing the current seat hands the
		// turn to the next one. Wrap for the shrunken table.
		if removed < s.CurrentPlayerIndex {
			s.CurrentPlayerIndex--
		}
		if len(s.Seats) > 0 {
			s.CurrentPlayerIndex = ((s.CurrentPlayerIndex % len(s.Seats)) + len(s.Seats)) % len(s.Seats)
		} else {
			s.CurrentPlayerIndex = 0
		}

		outcome := OutcomeContinue
		winnerID := ""
		switch len(s.Seats) {
		case 1:
			outcome = OutcomeEndWithWinner
			winnerID = s.Seats[0].PlayerID
		case 0:
			outcome = OutcomeEndNoWinner
		}
		if err := Dispatch(ctx, store, s, outcome, winnerID); err != nil {
			return result.Err[AbandonOutcome](err)
		}
		return result.Ok(AbandonOutcome{Session: s, Outcome: outcome, WinnerID: winnerID})
	})
}
