package uno

import (
	"context"
	"math/rand"

	"github.com/mpsalisbury/uno/pkg/cards"
	"github.com/mpsalisbury/uno/pkg/result"
)

// Lobby orchestration: join, ready, start. Each step validates, mutates
// in memory, and persists through the injected store.

const startingHandSize = 7

// Join seats a new player at the end of the table.
func Join(ctx context.Context, store Store, s *Session, playerID string) result.Result[*Session] {
	return result.Ok(s).
		AndThen(IsWaiting).
		AndThen(HasRoom).
		AndThen(NotSeated(playerID)).
		AndThen(func(s *Session) result.Result[*Session] {
			s.Seats = append(s.Seats, Seat{
				PlayerID: playerID,
				Position: len(s.Seats) + 1,
			})
			return save(ctx, store, s)
		})
}

// Ready marks a seated player as ready to start.
func Ready(ctx context.Context, store Store, s *Session, playerID string) result.Result[*Session] {
	return result.Ok(s).
		AndThen(IsWaiting).
		AndThen(IsSeated(playerID)).
		AndThen(func(s *Session) result.Result[*Session] {
			seat, _ := s.SeatFor(playerID)
			seat.Ready = true
			return save(ctx, store, s)
		})
}

// Start deals hands and activates the session. Only the creator may
// start, and only once the minimum seat count is met and everyone is
// ready. Seats are repositioned 1..N in join order and the cursor is
// set to the first seat, direction forward.
func Start(ctx context.Context, store Store, s *Session, playerID string, rng *rand.Rand) result.Result[*Session] {
	return result.Ok(s).
		AndThen(IsCreator(playerID)).
		AndThen(NotStarted).
		AndThen(MinPlayersMet).
		AndThen(AllReady).
		AndThen(func(s *Session) result.Result[*Session] {
			deck := cards.MakeDeck()
			deck.Shuffle(rng)
			hands, rest := cards.Deal(deck, len(s.Seats), startingHandSize)
			for i := range s.Seats {
				s.Seats[i].Hand = hands[i]
			}
			s.Deck = rest
			s.reposition()
			s.Status = Active
			s.CurrentPlayerIndex = 0
			s.TurnDirection = 1
			s.CurrentColor = cards.NoColor
			return save(ctx, store, s)
		})
}

func save(ctx context.Context, store Store, s *Session) result.Result[*Session] {
	if err := store.Save(ctx, s); err != nil {
		return result.Err[*Session](err)
	}
	return result.Ok(s)
}
