// Package uno holds the game engine: the session state machine, the
// turn cursor, per-card effects, lifecycle validators, and the
// orchestrators that tie a player action to its consequences.
package uno

import (
	"strings"
	"time"

	"github.com/mpsalisbury/uno/pkg/cards"
	"github.com/mpsalisbury/uno/pkg/result"
)

// Status is the lifecycle state of a session.
type Status int8

const (
	Waiting Status = iota
	Active
	Ended
)

func (st Status) String() string {
	switch st {
	case Waiting:
		return "waiting"
	case Active:
		return "active"
	case Ended:
		return "ended"
	}
	return "unknown"
}

// Seat is a player's membership in a session: their hand and turn position.
type Seat struct {
	PlayerID string
	Ready    bool // meaningful only while Waiting
	Position int  // 1-based, reassigned on start and abandonment
	Hand     cards.Cards
}

// DiscardEntry records one played card. Order is strictly increasing.
type DiscardEntry struct {
	Order int
	Card  cards.Card
}

// Session is one running game.
type Session struct {
	ID         string
	Status     Status
	CreatorID  string
	MinPlayers int
	MaxPlayers int
	Seats      []Seat

	// Turn cursor; meaningful only while Active.
	CurrentPlayerIndex int
	TurnDirection      int

	CurrentColor cards.Color // NoColor until the first wild is played
	DiscardPile  []DiscardEntry
	Deck         cards.Cards
	WinnerID     string

	// Version guards concurrent read-modify-write cycles; stores reject
	// saves whose version doesn't match the stored one.
	Version   int64
	CreatedAt time.Time
	EndedAt   *time.Time
}

// NewSession creates a Waiting session with the creator seated, ready,
// at position 1.
func NewSession(id, creatorID string, minPlayers, maxPlayers int, now func() time.Time) (*Session, error) {
	if now == nil {
		now = time.Now
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, newError(CodeInvalidSessionID, "session id is required")
	}
	creatorID = strings.TrimSpace(creatorID)
	if creatorID == "" {
		return nil, newError(CodeNotSeated, "creator id is required")
	}
	if minPlayers < 2 || minPlayers > maxPlayers {
		return nil, newError(CodeMinimumPlayersUnmet,
			"need 2 <= minPlayers <= maxPlayers, got %d..%d", minPlayers, maxPlayers)
	}
	return &Session{
		ID:            id,
		Status:        Waiting,
		CreatorID:     creatorID,
		MinPlayers:    minPlayers,
		MaxPlayers:    maxPlayers,
		Seats:         []Seat{{PlayerID: creatorID, Ready: true, Position: 1}},
		TurnDirection: 1,
		CreatedAt:     now().UTC(),
	}, nil
}

// NormalizeSessionID trims the id and rejects blank ones. Any further
// shape checking belongs to the store.
func NormalizeSessionID(id string) result.Result[string] {
	id = strings.TrimSpace(id)
	if id == "" {
		return result.Err[string](newError(CodeInvalidSessionID, "session id is required"))
	}
	return result.Ok(id)
}

// SeatIndex returns the seat index for a player, or -1.
func (s *Session) SeatIndex(playerID string) int {
	for i := range s.Seats {
		if s.Seats[i].PlayerID == playerID {
			return i
		}
	}
	return -1
}

// SeatFor returns the seat for a player, if seated.
func (s *Session) SeatFor(playerID string) (*Seat, bool) {
	if i := s.SeatIndex(playerID); i >= 0 {
		return &s.Seats[i], true
	}
	return nil, false
}

// CurrentSeat returns the seat the cursor points at, or false when the
// cursor is out of bounds.
func (s *Session) CurrentSeat() (*Seat, bool) {
	if s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Seats) {
		return nil, false
	}
	return &s.Seats[s.CurrentPlayerIndex], true
}

// reposition renumbers seats 1..N in their current relative order.
func (s *Session) reposition() {
	for i := range s.Seats {
		s.Seats[i].Position = i + 1
	}
}

// Discard appends a card to the discard pile with the next order value.
func (s *Session) Discard(c cards.Card) {
	order := 1
	if n := len(s.DiscardPile); n > 0 {
		order = s.DiscardPile[n-1].Order + 1
	}
	s.DiscardPile = append(s.DiscardPile, DiscardEntry{Order: order, Card: c})
}

// DrawInto moves up to n cards from the deck into the seat's hand and
// returns how many were delivered. A short deck delivers what remains.
func (s *Session) DrawInto(seat *Seat, n int) int {
	delivered := 0
	for i := 0; i < n && len(s.Deck) > 0; i++ {
		seat.Hand = append(seat.Hand, s.Deck[0])
		s.Deck = s.Deck[1:]
		delivered++
	}
	return delivered
}

// Clone deep-copies the session.
func (s *Session) Clone() *Session {
	clone := *s
	clone.Seats = make([]Seat, len(s.Seats))
	for i, seat := range s.Seats {
		seat.Hand = seat.Hand.Copy()
		clone.Seats[i] = seat
	}
	clone.DiscardPile = append([]DiscardEntry(nil), s.DiscardPile...)
	clone.Deck = s.Deck.Copy()
	if s.EndedAt != nil {
		endedAt := *s.EndedAt
		clone.EndedAt = &endedAt
	}
	return &clone
}
