package server

import "github.com/mpsalisbury/uno/pkg/game/uno"

// SessionView is a player-scoped rendering of a session: the caller
// sees their own hand as card faces with ids; other hands appear only
// as counts.
type SessionView struct {
	ID              string     `json:"id"`
	Status          string     `json:"status"`
	CreatorID       string     `json:"creatorId"`
	CurrentPlayerID string     `json:"currentPlayerId,omitempty"`
	TurnDirection   int        `json:"turnDirection"`
	CurrentColor    string     `json:"currentColor"`
	TopDiscard      string     `json:"topDiscard,omitempty"`
	DeckCount       int        `json:"deckCount"`
	WinnerID        string     `json:"winnerId,omitempty"`
	Seats           []SeatView `json:"seats"`
}

type SeatView struct {
	PlayerID  string     `json:"playerId"`
	Ready     bool       `json:"ready"`
	Position  int        `json:"position"`
	CardCount int        `json:"cardCount"`
	Hand      []CardView `json:"hand,omitempty"`
}

type CardView struct {
	ID   string `json:"id"`
	Face string `json:"face"`
}

type PlayerView struct {
	PlayerID    string `json:"playerId"`
	Position    int    `json:"position"`
	DisplayName string `json:"displayName"`
	Contact     string `json:"contact"`
}

type PlayView struct {
	Session SessionView `json:"session"`
	Outcome string      `json:"outcome"`
	Card    string      `json:"card"`
	Message string      `json:"message"`
}

type AbandonView struct {
	Session  SessionView `json:"session"`
	Outcome  string      `json:"outcome"`
	WinnerID string      `json:"winnerId,omitempty"`
}

func viewFor(s *uno.Session, playerID string) SessionView {
	view := SessionView{
		ID:            s.ID,
		Status:        s.Status.String(),
		CreatorID:     s.CreatorID,
		TurnDirection: s.TurnDirection,
		CurrentColor:  s.CurrentColor.String(),
		DeckCount:     len(s.Deck),
		WinnerID:      s.WinnerID,
	}
	if seat, ok := s.CurrentSeat(); ok && s.Status == uno.Active {
		view.CurrentPlayerID = seat.PlayerID
	}
	if n := len(s.DiscardPile); n > 0 {
		view.TopDiscard = s.DiscardPile[n-1].Card.String()
	}
	view.Seats = make([]SeatView, len(s.Seats))
	for i, seat := range s.Seats {
		sv := SeatView{
			PlayerID:  seat.PlayerID,
			Ready:     seat.Ready,
			Position:  seat.Position,
			CardCount: len(seat.Hand),
		}
		if seat.PlayerID == playerID {
			sv.Hand = make([]CardView, len(seat.Hand))
			for j, c := range seat.Hand {
				sv.Hand[j] = CardView{ID: c.ID, Face: c.String()}
			}
		}
		view.Seats[i] = sv
	}
	return view
}
