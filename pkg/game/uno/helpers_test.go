package uno

import (
	"context"
	"testing"

	"github.com/mpsalisbury/uno/pkg/cards"
)

// fakeStore records persistence calls without real storage.
type fakeStore struct {
	saves      int
	finalizes  int
	lastWinner string
	saveErr    error
}

func (f *fakeStore) Load(ctx context.Context, id string) (*Session, error) {
	return nil, ErrNotFound
}

func (f *fakeStore) Save(ctx context.Context, s *Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	s.Version++
	return nil
}

func (f *fakeStore) Finalize(ctx context.Context, id, winnerID string) error {
	f.finalizes++
	f.lastWinner = winnerID
	return nil
}

// mustCard builds a card from its face string with a fixed id.
func mustCard(t *testing.T, id, face string) cards.Card {
	t.Helper()
	c, err := cards.ParseCard(face)
	if err != nil {
		t.Fatalf("ParseCard(%q): %v", face, err)
	}
	c.ID = id
	return c
}

// activeSession builds an active session with one seat per player, in
// order, cursor on the first seat, direction forward.
func activeSession(playerIDs ...string) *Session {
	s := &Session{
		ID:            "game1",
		Status:        Active,
		CreatorID:     playerIDs[0],
		MinPlayers:    2,
		MaxPlayers:    len(playerIDs),
		TurnDirection: 1,
	}
	for i, id := range playerIDs {
		s.Seats = append(s.Seats, Seat{PlayerID: id, Position: i + 1})
	}
	return s
}

// waitingSession builds a Waiting session with the creator seated ready.
func waitingSession(creatorID string, minPlayers, maxPlayers int) *Session {
	s, err := NewSession("game1", creatorID, minPlayers, maxPlayers, nil)
	if err != nil {
		panic(err)
	}
	return s
}

func wantCode(t *testing.T, err error, want Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("got success, want error code %s", want)
	}
	if got := CodeOf(err); got != want {
		t.Fatalf("error code = %s (%v), want %s", got, err, want)
	}
}
