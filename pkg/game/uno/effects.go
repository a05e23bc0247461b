package uno

import (
	"github.com/mpsalisbury/uno/pkg/cards"
)

// EffectContext carries everything an effect may touch when a card is
// played.
type EffectContext struct {
	Session     *Session
	Card        cards.Card
	ChosenColor cards.Color
}

// Effect is the behavior of one card kind. CanExecute guards Execute;
// the orchestrator never calls Execute after a false CanExecute.
type Effect interface {
	CanExecute(*EffectContext) bool
	Execute(*EffectContext)
}

// EffectFor maps a card kind to its effect. Unrecognized kinds fall back
// to the number no-op; that fallback is load-bearing, not an error path.
func EffectFor(kind cards.Kind) Effect {
	switch kind {
	case cards.Skip:
		return skipEffect{}
	case cards.Reverse:
		return reverseEffect{}
	case cards.DrawTwo:
		return drawEffect{count: 2}
	case cards.Wild:
		return wildEffect{}
	case cards.WildDrawFour:
		return wildEffect{draw: 4}
	default:
		return noopEffect{}
	}
}

// noopEffect: number cards. The generic discard move is the
// orchestrator's job, so there is nothing to do here.
type noopEffect struct{}

func (noopEffect) CanExecute(*EffectContext) bool { return true }
func (noopEffect) Execute(*EffectContext)         {}

// skipEffect consumes the played turn and one extra, so the cursor lands
// two seats ahead and the immediately-next player never acts.
type skipEffect struct{}

func (skipEffect) CanExecute(*EffectContext) bool { return true }
func (skipEffect) Execute(ctx *EffectContext) {
	ctx.Session.AdvanceCursor()
	ctx.Session.AdvanceCursor()
}

type reverseEffect struct{}

func (reverseEffect) CanExecute(*EffectContext) bool { return true }
func (reverseEffect) Execute(ctx *EffectContext) {
	ctx.Session.ReverseTurn()
}

// drawEffect delivers cards to the next player and skips their turn.
type drawEffect struct {
	count int
}

func (drawEffect) CanExecute(*EffectContext) bool { return true }
func (e drawEffect) Execute(ctx *EffectContext) {
	deliver(ctx.Session, e.count)
}

// wildEffect sets the current color; with draw > 0 it also behaves like
// a draw effect against the next player.
type wildEffect struct {
	draw int
}

func (wildEffect) CanExecute(ctx *EffectContext) bool {
	return ctx.ChosenColor.Playable()
}
func (e wildEffect) Execute(ctx *EffectContext) {
	ctx.Session.CurrentColor = ctx.ChosenColor
	if e.draw > 0 {
		deliver(ctx.Session, e.draw)
	}
}

// deliver hands count drawn cards to the next player, then moves the
// cursor past them: their turn is consumed along with the played one.
func deliver(s *Session, count int) {
	if len(s.Seats) > 0 {
		next := s.PeekNextIndex()
		s.DrawInto(&s.Seats[next], count)
	}
	s.AdvanceCursor()
	s.AdvanceCursor()
}
