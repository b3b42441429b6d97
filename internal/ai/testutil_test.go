package ai

import (
	"testing"

	"github.com/google/uuid"

	"github.com/peterkuimelis/npzr/internal/game"
	"github.com/peterkuimelis/npzr/internal/log"
)

func regular(ch game.Character, p game.BodyPart) *game.Card {
	return &game.Card{ID: uuid.NewString(), Character: ch, Part: p}
}

func characterWild(ch game.Character) *game.Card {
	return &game.Card{ID: uuid.NewString(), Character: ch, Part: game.PartWild}
}

func positionWild(p game.BodyPart) *game.Card {
	return &game.Card{ID: uuid.NewString(), Character: game.CharWild, Part: p}
}

func universalWild() *game.Card {
	return &game.Card{ID: uuid.NewString(), Character: game.CharWild, Part: game.PartWild}
}

// newDuel returns a deterministic engine with both seats joined and seat 0
// on move in the draw state.
func newDuel(t *testing.T) *game.Engine {
	t.Helper()
	e := game.New(game.Config{Logger: log.NewMemoryLogger(), NoShuffle: true, Seed: 1})
	if _, err := e.AddPlayer("AI-0"); err != nil {
		t.Fatalf("AddPlayer: %v", err)
	}
	if _, err := e.AddPlayer("AI-1"); err != nil {
		t.Fatalf("AddPlayer: %v", err)
	}
	return e
}

// openStack burns one full turn for the seat on move: a throwaway torso is
// played to a fresh stack, which the test then reshapes in place.
func openStack(t *testing.T, e *game.Engine, seat int) *game.Stack {
	t.Helper()
	if e.TurnSeat() != seat {
		t.Fatalf("openStack: seat %d is not on move (turn seat %d)", seat, e.TurnSeat())
	}
	c := regular(game.CharPirate, game.PartTorso)
	e.Player(seat).Hand = []*game.Card{c}
	if err := e.DrawCard(seat); err != nil {
		t.Fatalf("DrawCard(%d): %v", seat, err)
	}
	if err := e.PlayCard(seat, c.ID, game.PlayOptions{TargetPile: game.PartTorso}); err != nil {
		t.Fatalf("PlayCard(%d): %v", seat, err)
	}
	stacks := e.StacksOf(seat)
	return stacks[len(stacks)-1]
}

// reshape empties a stack in place and lays out the given pile tops. Nil
// leaves a pile empty.
func reshape(s *game.Stack, head, torso, legs *game.Card) {
	for _, p := range game.RealParts {
		for s.Top(p) != nil {
			s.TakeTop(p)
		}
	}
	if head != nil {
		s.Place(head, game.PartHead)
	}
	if torso != nil {
		s.Place(torso, game.PartTorso)
	}
	if legs != nil {
		s.Place(legs, game.PartLegs)
	}
}

// analyzeSeat mirrors the player's own pre-decision analysis.
func analyzeSeat(e *game.Engine, seat int) *GameAnalysis {
	opp := e.Opponent(seat)
	return Analyze(e.StacksOf(seat), e.StacksOf(opp), e.Hand(seat), e.Score(seat), e.Score(opp))
}

// findPlay returns the first option targeting the given placement.
func findPlay(t *testing.T, opts []PlayOption, stackID string, pile game.BodyPart) PlayOption {
	t.Helper()
	for _, o := range opts {
		if o.Opts.TargetStackID == stackID && o.Opts.TargetPile == pile {
			return o
		}
	}
	t.Fatalf("no play option targets stack %q pile %s", stackID, pile)
	return PlayOption{}
}

// findWildPlay returns the wild option for the placement and nominated
// character.
func findWildPlay(t *testing.T, opts []PlayOption, stackID string, pile game.BodyPart, ch game.Character) PlayOption {
	t.Helper()
	for _, o := range opts {
		if o.Wild && o.Opts.TargetStackID == stackID && o.Opts.TargetPile == pile &&
			o.Nomination != nil && o.Nomination.Character == ch {
			return o
		}
	}
	t.Fatalf("no wild option targets stack %q pile %s as %s", stackID, pile, ch)
	return PlayOption{}
}

// findMove returns the first move matching the given endpoints.
func findMove(t *testing.T, moves []Move, fromStackID string, fromPile game.BodyPart, toStackID string) Move {
	t.Helper()
	for _, m := range moves {
		if m.Opts.FromStackID == fromStackID && m.Opts.FromPile == fromPile && m.Opts.ToStackID == toStackID {
			return m
		}
	}
	t.Fatalf("no move from stack %q pile %s to stack %q", fromStackID, fromPile, toStackID)
	return Move{}
}

// cardsInPlay counts every card the engine tracks, wherever it sits.
func cardsInPlay(e *game.Engine) int {
	n := e.DeckCount() + e.DiscardCount() + len(e.Hand(0)) + len(e.Hand(1))
	for _, s := range e.Stacks() {
		n += s.CardCount()
	}
	return n
}
