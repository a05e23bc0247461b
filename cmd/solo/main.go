// Solo runs a complete bot-driven game in process: it seats a table of
// automatic players against a single server instance and plays until
// the session ends, printing each move.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/mpsalisbury/uno/internal/directory"
	"github.com/mpsalisbury/uno/internal/server"
	"github.com/mpsalisbury/uno/internal/store/memory"
)

var (
	numPlayers = flag.Int("players", 4, "Number of automatic players")
	verbose    = flag.Bool("verbose", false, "Print extra information during the session")
	seed       = flag.Int64("seed", 0, "Random seed; 0 picks one from the clock")
)

var colors = []string{"r", "y", "g", "b"}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	logOutput := io.Discard
	if *verbose {
		logOutput = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOutput, nil))

	svc := server.NewGameService(memory.NewStore(), directory.Static{}, logger, 2, *numPlayers)
	ctx := context.Background()

	players := make([]string, *numPlayers)
	for i := range players {
		players[i] = fmt.Sprintf("bot%d", i+1)
	}

	created, err := svc.CreateSession(ctx, players[0])
	if err != nil {
		return err
	}
	for _, p := range players[1:] {
		if _, err := svc.JoinSession(ctx, created.ID, p); err != nil {
			return err
		}
		if _, err := svc.MarkReady(ctx, created.ID, p); err != nil {
			return err
		}
	}
	if _, err := svc.StartSession(ctx, created.ID, players[0]); err != nil {
		return err
	}
	fmt.Printf("Session %s started with %d players (seed %d)\n", created.ID, *numPlayers, *seed)

	for turn := 1; ; turn++ {
		view, err := svc.SessionState(ctx, created.ID, "")
		if err != nil {
			return err
		}
		if view.Status == "ended" {
			if view.WinnerID != "" {
				fmt.Printf("Winner after %d turns: %s\n", turn-1, view.WinnerID)
			} else {
				fmt.Printf("Game ended with no winner after %d turns\n", turn-1)
			}
			return nil
		}

		actor := view.CurrentPlayerID
		if err := playTurn(ctx, svc, rng, created.ID, actor); err != nil {
			return err
		}
	}
}

// playTurn plays the actor's first card, choosing a random color for
// wilds, and ends the turn when the card does not do that itself.
func playTurn(ctx context.Context, svc *server.GameService, rng *rand.Rand, sessionID, actor string) error {
	view, err := svc.SessionState(ctx, sessionID, actor)
	if err != nil {
		return err
	}
	var hand []server.CardView
	for _, seat := range view.Seats {
		if seat.PlayerID == actor {
			hand = seat.Hand
		}
	}
	if len(hand) == 0 {
		return fmt.Errorf("player %s has no cards but the game continues", actor)
	}

	card := hand[rng.Intn(len(hand))]
	color := ""
	if strings.HasPrefix(card.Face, "W") {
		color = colors[rng.Intn(len(colors))]
	}

	played, err := svc.PlayCard(ctx, sessionID, actor, card.ID, color)
	if err != nil {
		return fmt.Errorf("%s playing %s: %w", actor, card.Face, err)
	}
	if *verbose {
		fmt.Printf("  %s plays %s (%s)\n", actor, played.Card, played.Message)
	}
	if played.Outcome != "continue" {
		return nil
	}

	// Number cards, reverses, and plain wilds leave the turn with the
	// actor; pass it on. Skip and draw effects already moved the cursor
	// and reject a second advance.
	after, err := svc.SessionState(ctx, sessionID, actor)
	if err != nil {
		return err
	}
	if after.CurrentPlayerID == actor {
		if _, err := svc.EndTurn(ctx, sessionID, actor); err != nil {
			return err
		}
	}
	return nil
}
