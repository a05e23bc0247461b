package uno

import (
	"context"

	"github.com/mpsalisbury/uno/pkg/cards"
	"github.com/mpsalisbury/uno/pkg/result"
)

// PlayInput identifies the acting player, the card from their hand, and
// the chosen color for color-choosing cards.
type PlayInput struct {
	PlayerID    string
	CardID      string
	ChosenColor cards.Color
}

// PlayOutcome is the resolved consequence of one play.
type PlayOutcome struct {
	Session *Session
	Outcome Outcome
	Card    cards.Card
	Message string
}

// PlayCard runs one play-a-card step:
// validate turn and hand, gate on the effect's CanExecute, execute the
// effect, move the card from hand to discard, check for a win, and
// dispatch the outcome to the store. Any validation failure aborts with
// no mutation and no write.
//
// Playing a plain number card does not advance the turn; the caller
// ends the turn with AdvanceTurn. Skip and draw effects consume turns
// inside their effect and must not be advanced again.
func PlayCard(ctx context.Context, store Store, s *Session, in PlayInput) result.Result[PlayOutcome] {
	validated := result.Ok(s).
		AndThen(IsActive).
		AndThen(IsTurn(in.PlayerID)).
		AndThen(HoldsCard(in.PlayerID, in.CardID))

	return result.AndThen(validated, func(s *Session) result.Result[PlayOutcome] {
		seat, _ := s.SeatFor(in.PlayerID)
		card, _ := seat.Hand.FindID(in.CardID)

		effect := EffectFor(card.Kind)
		ectx := &EffectContext{Session: s, Card: card, ChosenColor: in.ChosenColor}
		if !effect.CanExecute(ectx) {
			return result.Err[PlayOutcome](newError(CodeInvalidCardAction,
				"cannot play %s without a valid color", card))
		}
		effect.Execute(ectx)

		seat.Hand = seat.Hand.RemoveID(card.ID)
		s.Discard(card)

		outcome := OutcomeContinue
		winnerID := ""
		message := "card played successfully"
		if len(seat.Hand) == 0 {
			outcome = OutcomeEndWithWinner
			winnerID = seat.PlayerID
			message = "you played your last card and won"
		}
		if err := Dispatch(ctx, store, s, outcome, winnerID); err != nil {
			return result.Err[PlayOutcome](err)
		}
		return result.Ok(PlayOutcome{Session: s, Outcome: outcome, Card: card, Message: message})
	})
}

// AdvanceTurn ends the acting player's turn. Number-card plays rely on
// this; it is rejected out of turn like any other action.
func AdvanceTurn(ctx context.Context, store Store, s *Session, playerID string) result.Result[*Session] {
	return result.Ok(s).
		AndThen(IsActive).
		AndThen(IsTurn(playerID)).
		AndThen(func(s *Session) result.Result[*Session] {
			s.AdvanceCursor()
			return save(ctx, store, s)
		})
}
