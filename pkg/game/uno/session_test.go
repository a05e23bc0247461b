package uno

import (
	"testing"
	"time"

	"github.com/mpsalisbury/uno/pkg/cards"
)

func TestNewSession(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s, err := NewSession("g1", "p1", 2, 4, func() time.Time { return fixed })
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Status != Waiting {
		t.Errorf("Status=%v, want Waiting", s.Status)
	}
	if len(s.Seats) != 1 {
		t.Fatalf("seats=%d, want 1", len(s.Seats))
	}
	seat := s.Seats[0]
	if seat.PlayerID != "p1" || !seat.Ready || seat.Position != 1 {
		t.Errorf("creator seat = %+v, want seated ready at position 1", seat)
	}
	if s.TurnDirection != 1 {
		t.Errorf("TurnDirection=%d, want 1", s.TurnDirection)
	}
	if !s.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt=%v, want %v", s.CreatedAt, fixed)
	}
}

func TestNewSessionRejectsBadInput(t *testing.T) {
	for _, tc := range []struct {
		name                   string
		id, creator            string
		minPlayers, maxPlayers int
		wantCode               Code
	}{
		{"blank id", "  ", "p1", 2, 4, CodeInvalidSessionID},
		{"blank creator", "g1", "", 2, 4, CodeNotSeated},
		{"min below two", "g1", "p1", 1, 4, CodeMinimumPlayersUnmet},
		{"min above max", "g1", "p1", 5, 4, CodeMinimumPlayersUnmet},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSession(tc.id, tc.creator, tc.minPlayers, tc.maxPlayers, nil)
			wantCode(t, err, tc.wantCode)
		})
	}
}

func TestNormalizeSessionID(t *testing.T) {
	r := NormalizeSessionID("  g1  ")
	if !r.IsOk() || r.Value() != "g1" {
		t.Errorf("NormalizeSessionID trimmed = %q (%v), want g1", r.Value(), r.Err())
	}
	wantCode(t, NormalizeSessionID("   ").Err(), CodeInvalidSessionID)
}

func TestDiscardOrderIsMonotonic(t *testing.T) {
	s := activeSession("p1", "p2")
	s.Discard(mustCard(t, "c1", "r5"))
	s.Discard(mustCard(t, "c2", "gS"))
	s.Discard(mustCard(t, "c3", "W"))
	for i, entry := range s.DiscardPile {
		if entry.Order != i+1 {
			t.Errorf("entry %d order = %d, want %d", i, entry.Order, i+1)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := activeSession("p1", "p2")
	s.Seats[0].Hand = cards.Cards{mustCard(t, "c1", "r5")}
	s.Deck = cards.Cards{mustCard(t, "d1", "b3")}
	s.Discard(mustCard(t, "c2", "y7"))
	endedAt := time.Now()
	s.EndedAt = &endedAt

	clone := s.Clone()
	clone.Seats[0].Hand[0].ID = "changed"
	clone.Seats[0].PlayerID = "changed"
	clone.Deck[0].ID = "changed"
	clone.DiscardPile[0].Order = 99
	*clone.EndedAt = endedAt.Add(time.Hour)

	if s.Seats[0].Hand[0].ID != "c1" {
		t.Error("clone hand mutation leaked into original")
	}
	if s.Seats[0].PlayerID != "p1" {
		t.Error("clone seat mutation leaked into original")
	}
	if s.Deck[0].ID != "d1" {
		t.Error("clone deck mutation leaked into original")
	}
	if s.DiscardPile[0].Order != 1 {
		t.Error("clone discard mutation leaked into original")
	}
	if !s.EndedAt.Equal(endedAt) {
		t.Error("clone EndedAt mutation leaked into original")
	}
}

func TestCurrentSeatBounds(t *testing.T) {
	s := activeSession("p1", "p2")
	if seat, ok := s.CurrentSeat(); !ok || seat.PlayerID != "p1" {
		t.Errorf("CurrentSeat = %v,%v, want p1", seat, ok)
	}
	s.CurrentPlayerIndex = 2
	if _, ok := s.CurrentSeat(); ok {
		t.Error("CurrentSeat with out-of-bounds cursor reported ok")
	}
	s.CurrentPlayerIndex = -1
	if _, ok := s.CurrentSeat(); ok {
		t.Error("CurrentSeat with negative cursor reported ok")
	}
}
