package uno

import (
	"context"
	"math/rand"
	"testing"
)

func TestJoinSeatsNewPlayer(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	s := waitingSession("p1", 2, 4)

	r := Join(ctx, store, s, "p2")
	if !r.IsOk() {
		t.Fatalf("Join: %v", r.Err())
	}
	if len(s.Seats) != 2 {
		t.Fatalf("seats=%d, want 2", len(s.Seats))
	}
	seat := s.Seats[1]
	if seat.PlayerID != "p2" || seat.Ready || seat.Position != 2 {
		t.Errorf("new seat = %+v, want p2 not ready at position 2", seat)
	}
	if store.saves != 1 {
		t.Errorf("saves=%d, want 1", store.saves)
	}
}

func TestJoinFailures(t *testing.T) {
	ctx := context.Background()

	full := waitingSession("p1", 2, 2)
	full.Seats = append(full.Seats, Seat{PlayerID: "p2", Position: 2})

	for _, tc := range []struct {
		name     string
		session  *Session
		playerID string
		wantCode Code
	}{
		{"already started", activeSession("p1", "p2"), "p3", CodeNotAcceptingPlayers},
		{"full", full, "p3", CodeSessionFull},
		{"already seated", waitingSession("p1", 2, 4), "p1", CodeAlreadySeated},
	} {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			r := Join(ctx, store, tc.session, tc.playerID)
			wantCode(t, r.Err(), tc.wantCode)
			if store.saves != 0 {
				t.Errorf("saves=%d, want 0", store.saves)
			}
		})
	}
}

func TestReadyMarksSeat(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	s := waitingSession("p1", 2, 4)
	Join(ctx, store, s, "p2")

	r := Ready(ctx, store, s, "p2")
	if !r.IsOk() {
		t.Fatalf("Ready: %v", r.Err())
	}
	if !s.Seats[1].Ready {
		t.Error("seat not marked ready")
	}

	wantCode(t, Ready(ctx, store, s, "p9").Err(), CodeNotSeated)
}

// Scenario: creator seated ready, second player joins but has not
// confirmed. Starting fails until they do, then activates the session.
func TestStartLifecycle(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	rng := rand.New(rand.NewSource(1))
	s := waitingSession("p1", 2, 4)

	if r := Join(ctx, store, s, "p2"); !r.IsOk() {
		t.Fatalf("Join: %v", r.Err())
	}
	wantCode(t, Start(ctx, store, s, "p1", rng).Err(), CodeNotAllReady)
	if s.Status != Waiting {
		t.Fatalf("failed start changed status to %v", s.Status)
	}

	Ready(ctx, store, s, "p2")
	wantCode(t, Start(ctx, store, s, "p2", rng).Err(), CodeNotCreator)

	r := Start(ctx, store, s, "p1", rng)
	if !r.IsOk() {
		t.Fatalf("Start: %v", r.Err())
	}
	if s.Status != Active {
		t.Errorf("Status=%v, want Active", s.Status)
	}
	if s.CurrentPlayerIndex != 0 || s.TurnDirection != 1 {
		t.Errorf("cursor=(%d,%d), want (0,1)", s.CurrentPlayerIndex, s.TurnDirection)
	}
	for i, seat := range s.Seats {
		if seat.Position != i+1 {
			t.Errorf("seat %d position = %d, want %d", i, seat.Position, i+1)
		}
		if len(seat.Hand) != startingHandSize {
			t.Errorf("seat %d hand size = %d, want %d", i, len(seat.Hand), startingHandSize)
		}
	}
	if want := 108 - 2*startingHandSize; len(s.Deck) != want {
		t.Errorf("deck size = %d, want %d", len(s.Deck), want)
	}

	wantCode(t, Start(ctx, store, s, "p1", rng).Err(), CodeAlreadyStarted)
}

func TestStartRequiresMinimumPlayers(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	s := waitingSession("p1", 3, 4)
	Join(ctx, store, s, "p2")
	Ready(ctx, store, s, "p2")
	wantCode(t, Start(ctx, store, s, "p1", rand.New(rand.NewSource(1))).Err(), CodeMinimumPlayersUnmet)
}
