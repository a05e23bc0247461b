package uno

import (
	"github.com/mpsalisbury/uno/pkg/result"
)

// Check is one lifecycle predicate. Checks compose left to right with
// AndThen; the first failure short-circuits the pipeline, so the order
// of checks defines precedence between overlapping violations.
type Check func(*Session) result.Result[*Session]

func ok(s *Session) result.Result[*Session] {
	return result.Ok(s)
}

func fail(code Code, format string, args ...any) result.Result[*Session] {
	return result.Err[*Session](newError(code, format, args...))
}

// IsWaiting: the session is still accepting players.
func IsWaiting(s *Session) result.Result[*Session] {
	if s.Status != Waiting {
		return fail(CodeNotAcceptingPlayers, "session %s is not accepting players", s.ID)
	}
	return ok(s)
}

// HasRoom: another seat is available.
func HasRoom(s *Session) result.Result[*Session] {
	if len(s.Seats) >= s.MaxPlayers {
		return fail(CodeSessionFull, "session %s is full", s.ID)
	}
	return ok(s)
}

// NotSeated: the actor does not already hold a seat.
func NotSeated(playerID string) Check {
	return func(s *Session) result.Result[*Session] {
		if s.SeatIndex(playerID) >= 0 {
			return fail(CodeAlreadySeated, "player %s is already seated", playerID)
		}
		return ok(s)
	}
}

// IsCreator: only the creator may start the session.
func IsCreator(playerID string) Check {
	return func(s *Session) result.Result[*Session] {
		if s.CreatorID != playerID {
			return fail(CodeNotCreator, "player %s did not create session %s", playerID, s.ID)
		}
		return ok(s)
	}
}

// NotStarted: the session has not left Waiting yet.
func NotStarted(s *Session) result.Result[*Session] {
	if s.Status != Waiting {
		return fail(CodeAlreadyStarted, "session %s has already started", s.ID)
	}
	return ok(s)
}

// MinPlayersMet: enough seats are filled to start.
func MinPlayersMet(s *Session) result.Result[*Session] {
	if len(s.Seats) < s.MinPlayers {
		return fail(CodeMinimumPlayersUnmet,
			"session %s has %d players, needs %d", s.ID, len(s.Seats), s.MinPlayers)
	}
	return ok(s)
}

// AllReady: every seated player has confirmed.
func AllReady(s *Session) result.Result[*Session] {
	for _, seat := range s.Seats {
		if !seat.Ready {
			return fail(CodeNotAllReady, "player %s is not ready", seat.PlayerID)
		}
	}
	return ok(s)
}

// IsSeated: the actor holds a seat.
func IsSeated(playerID string) Check {
	return func(s *Session) result.Result[*Session] {
		if s.SeatIndex(playerID) < 0 {
			return fail(CodeNotSeated, "player %s is not seated in session %s", playerID, s.ID)
		}
		return ok(s)
	}
}

// IsActive: the session is in play.
func IsActive(s *Session) result.Result[*Session] {
	if s.Status != Active {
		return fail(CodeSessionNotActive, "session %s is not active", s.ID)
	}
	return ok(s)
}

// HasSeatedPlayers: at least one seat remains. Failing this on an Active
// session signals corruption, not a rule violation.
func HasSeatedPlayers(s *Session) result.Result[*Session] {
	if len(s.Seats) == 0 {
		return fail(CodeNoSeatedPlayers, "session %s has no seated players", s.ID)
	}
	return ok(s)
}

// IsTurn: the cursor points at the actor's seat. An out-of-bounds cursor
// is reported as indeterminate rather than "not your turn" because it
// means the session state is corrupt.
func IsTurn(playerID string) Check {
	return func(s *Session) result.Result[*Session] {
		seat, found := s.CurrentSeat()
		if !found {
			return fail(CodeIndeterminateCurrentPlayer,
				"session %s cursor %d is out of bounds", s.ID, s.CurrentPlayerIndex)
		}
		if seat.PlayerID != playerID {
			return fail(CodeNotYourTurn, "it is not player %s's turn", playerID)
		}
		return ok(s)
	}
}

// HoldsCard: the actor's hand contains the named card.
func HoldsCard(playerID, cardID string) Check {
	return func(s *Session) result.Result[*Session] {
		seat, found := s.SeatFor(playerID)
		if !found {
			return fail(CodeNotSeated, "player %s is not seated in session %s", playerID, s.ID)
		}
		if !seat.Hand.ContainsID(cardID) {
			return fail(CodeCardNotInHand, "player %s does not hold card %s", playerID, cardID)
		}
		return ok(s)
	}
}
