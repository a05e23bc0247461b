// Package server hosts game sessions behind a websocket transport.
// GameService is the application layer: each action loads the session,
// runs the engine orchestrator, and reports a player-scoped view.
package server

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mpsalisbury/uno/internal/directory"
	"github.com/mpsalisbury/uno/pkg/cards"
	"github.com/mpsalisbury/uno/pkg/game/uno"
	"github.com/mpsalisbury/uno/pkg/result"
)

// SessionStore is the persistence surface the service needs: the engine
// store plus a lobby listing.
type SessionStore interface {
	uno.Store
	List(ctx context.Context) ([]*uno.Session, error)
}

type GameService struct {
	// mu serializes actions so that in-process callers never race each
	// other into version conflicts; the store's version check still
	// guards multi-process deployments.
	mu     sync.Mutex
	store  SessionStore
	dir    directory.Directory
	logger *slog.Logger
	rng    *rand.Rand

	minPlayers int
	maxPlayers int
}

func NewGameService(store SessionStore, dir directory.Directory, logger *slog.Logger, minPlayers, maxPlayers int) *GameService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GameService{
		store:      store,
		dir:        dir,
		logger:     logger,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		minPlayers: minPlayers,
		maxPlayers: maxPlayers,
	}
}

// CreateSession opens a new waiting session with the caller seated as
// creator and returns its view.
func (g *GameService) CreateSession(ctx context.Context, playerID string) (SessionView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, err := uno.NewSession(uuid.NewString(), playerID, g.minPlayers, g.maxPlayers, nil)
	if err != nil {
		return SessionView{}, err
	}
	if err := g.store.Save(ctx, s); err != nil {
		return SessionView{}, err
	}
	g.logger.Info("session created", "session", s.ID, "creator", playerID)
	return viewFor(s, playerID), nil
}

// JoinSession seats a player in a waiting session.
func (g *GameService) JoinSession(ctx context.Context, sessionID, playerID string) (SessionView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, err := g.load(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	r := uno.Join(ctx, g.store, s, playerID)
	return g.finishSessionAction(ctx, "join", playerID, r)
}

// MarkReady records that a seated player is ready to start.
func (g *GameService) MarkReady(ctx context.Context, sessionID, playerID string) (SessionView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, err := g.load(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	r := uno.Ready(ctx, g.store, s, playerID)
	return g.finishSessionAction(ctx, "ready", playerID, r)
}

// StartSession deals hands and activates the session.
func (g *GameService) StartSession(ctx context.Context, sessionID, playerID string) (SessionView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, err := g.load(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	r := uno.Start(ctx, g.store, s, playerID, g.rng)
	return g.finishSessionAction(ctx, "start", playerID, r)
}

// PlayCard plays one card from the caller's hand. Color names the
// chosen color for wild cards ("r", "y", "g", "b"); it is ignored for
// everything else.
func (g *GameService) PlayCard(ctx context.Context, sessionID, playerID, cardID, color string) (PlayView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, err := g.load(ctx, sessionID)
	if err != nil {
		return PlayView{}, err
	}

	chosen := cards.NoColor
	if color != "" {
		chosen, err = cards.ParseColor(color)
		if err != nil {
			return PlayView{}, err
		}
	}

	r := uno.PlayCard(ctx, g.store, s, uno.PlayInput{
		PlayerID:    playerID,
		CardID:      cardID,
		ChosenColor: chosen,
	})
	if !r.IsOk() {
		g.logFailure("play", playerID, r.Err())
		return PlayView{}, r.Err()
	}
	out := r.Value()
	g.logger.Info("card played",
		"session", out.Session.ID, "player", playerID,
		"card", out.Card.String(), "outcome", out.Outcome.String())
	return PlayView{
		Session: viewFor(out.Session, playerID),
		Outcome: out.Outcome.String(),
		Card:    out.Card.String(),
		Message: out.Message,
	}, nil
}

// EndTurn passes the turn after a plain number card.
func (g *GameService) EndTurn(ctx context.Context, sessionID, playerID string) (SessionView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, err := g.load(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	r := uno.AdvanceTurn(ctx, g.store, s, playerID)
	return g.finishSessionAction(ctx, "end_turn", playerID, r)
}

// AbandonSession removes the caller from an active session.
func (g *GameService) AbandonSession(ctx context.Context, sessionID, playerID string) (AbandonView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, err := g.load(ctx, sessionID)
	if err != nil {
		return AbandonView{}, err
	}
	r := uno.Abandon(ctx, g.store, s, playerID)
	if !r.IsOk() {
		g.logFailure("abandon", playerID, r.Err())
		return AbandonView{}, r.Err()
	}
	out := r.Value()
	g.logger.Info("player abandoned",
		"session", out.Session.ID, "player", playerID, "outcome", out.Outcome.String())
	return AbandonView{
		Session:  viewFor(out.Session, playerID),
		Outcome:  out.Outcome.String(),
		WinnerID: out.WinnerID,
	}, nil
}

// SessionState reports the caller's view of a session.
func (g *GameService) SessionState(ctx context.Context, sessionID, playerID string) (SessionView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, err := g.load(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return viewFor(s, playerID), nil
}

// ListSessions reports a caller-scoped view of every session.
func (g *GameService) ListSessions(ctx context.Context, playerID string) ([]SessionView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	sessions, err := g.store.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]SessionView, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, viewFor(s, playerID))
	}
	return views, nil
}

// Players reports the seated players decorated with directory profiles.
// Directory failures degrade to placeholder profiles.
func (g *GameService) Players(ctx context.Context, sessionID string) ([]PlayerView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, err := g.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(s.Seats))
	for i, seat := range s.Seats {
		ids[i] = seat.PlayerID
	}
	profiles := directory.Decorate(ctx, g.dir, ids)
	views := make([]PlayerView, len(ids))
	for i := range ids {
		views[i] = PlayerView{
			PlayerID:    ids[i],
			Position:    s.Seats[i].Position,
			DisplayName: profiles[i].DisplayName,
			Contact:     profiles[i].Contact,
		}
	}
	return views, nil
}

func (g *GameService) load(ctx context.Context, sessionID string) (*uno.Session, error) {
	idResult := uno.NormalizeSessionID(sessionID)
	if !idResult.IsOk() {
		return nil, idResult.Err()
	}
	return g.store.Load(ctx, idResult.Value())
}

func (g *GameService) finishSessionAction(ctx context.Context, action, playerID string, r result.Result[*uno.Session]) (SessionView, error) {
	if !r.IsOk() {
		g.logFailure(action, playerID, r.Err())
		return SessionView{}, r.Err()
	}
	s := r.Value()
	g.logger.Info("action applied", "action", action, "session", s.ID, "player", playerID)
	return viewFor(s, playerID), nil
}

// logFailure logs rule violations at info and internal inconsistencies
// at error, so corrupted sessions stand out in the server log.
func (g *GameService) logFailure(action, playerID string, err error) {
	code := uno.CodeOf(err)
	if code.Internal() {
		g.logger.Error("action failed", "action", action, "player", playerID, "code", string(code), "err", err)
		return
	}
	g.logger.Info("action rejected", "action", action, "player", playerID, "code", string(code))
}
