package game

import (
	"testing"

	"github.com/google/uuid"

	"github.com/peterkuimelis/npzr/internal/log"
)

// --- Test card builders ---

func regular(ch Character, p BodyPart) *Card {
	return &Card{ID: uuid.NewString(), Character: ch, Part: p}
}

func characterWild(ch Character) *Card {
	return &Card{ID: uuid.NewString(), Character: ch, Part: PartWild}
}

func positionWild(p BodyPart) *Card {
	return &Card{ID: uuid.NewString(), Character: CharWild, Part: p}
}

func universalWild() *Card {
	return &Card{ID: uuid.NewString(), Character: CharWild, Part: PartWild}
}

// fillerDeck returns n torso-only cards. Torsos alone can never finish a
// character, so scripted tests draw them without side effects.
func fillerDeck(n int) []*Card {
	deck := make([]*Card, 0, n)
	for i := 0; i < n; i++ {
		deck = append(deck, regular(CharPirate, PartTorso))
	}
	return deck
}

// --- Engine rigging ---

// newTestEngine returns a started two-player engine with an unshuffled
// deck and a memory logger. Seat 0 is first to act, in DrawCard.
func newTestEngine(t *testing.T) (*Engine, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	e := New(Config{Logger: logger, NoShuffle: true, Seed: 1})
	if _, err := e.AddPlayer("Alice"); err != nil {
		t.Fatalf("AddPlayer Alice: %v", err)
	}
	if _, err := e.AddPlayer("Bob"); err != nil {
		t.Fatalf("AddPlayer Bob: %v", err)
	}
	return e, logger
}

// rig replaces the dealt hands and the draw pile. Draws pop from the end
// of the deck slice.
func rig(e *Engine, hand0, hand1, deck []*Card) {
	e.players[0].Hand = hand0
	e.players[1].Hand = hand1
	e.deck = deck
	e.discard = nil
}

// addStack places a stack with the given active cards directly on the
// board. Nil parts leave the pile empty.
func addStack(e *Engine, owner int, head, torso, legs *Card) *Stack {
	s := e.newStack(owner)
	if head != nil {
		s.Place(head, PartHead)
	}
	if torso != nil {
		s.Place(torso, PartTorso)
	}
	if legs != nil {
		s.Place(legs, PartLegs)
	}
	return s
}

// earnMoves grants the seat owed moves directly, as a completion would.
func earnMoves(e *Engine, seat int, n int) {
	e.pendingMoves = n
	e.enterState(seat, StateMoveCard)
}

// mustDraw and friends drive one scripted step, failing the test with
// the event log on rejection.

func mustDraw(t *testing.T, e *Engine, seat int) {
	t.Helper()
	if err := e.DrawCard(seat); err != nil {
		dumpLog(t, e)
		t.Fatalf("DrawCard seat %d: %v", seat, err)
	}
}

func mustPlay(t *testing.T, e *Engine, seat int, cardID string, opts PlayOptions) {
	t.Helper()
	if err := e.PlayCard(seat, cardID, opts); err != nil {
		dumpLog(t, e)
		t.Fatalf("PlayCard seat %d: %v", seat, err)
	}
}

func mustNominate(t *testing.T, e *Engine, seat int, nom Nomination) {
	t.Helper()
	if err := e.NominateWildCard(seat, nom); err != nil {
		dumpLog(t, e)
		t.Fatalf("NominateWildCard seat %d: %v", seat, err)
	}
}

func mustMove(t *testing.T, e *Engine, seat int, opts MoveOptions) {
	t.Helper()
	if err := e.MoveCard(seat, opts); err != nil {
		dumpLog(t, e)
		t.Fatalf("MoveCard seat %d: %v", seat, err)
	}
}

func dumpLog(t *testing.T, e *Engine) {
	t.Helper()
	if ml, ok := e.logger.(*log.MemoryLogger); ok {
		t.Logf("Event log:\n%s", log.FormatAll(ml.Events()))
	}
}

// totalCards counts every card the engine knows about: draw pile,
// discard pool, both hands, and every stack pile.
func totalCards(e *Engine) int {
	n := e.DeckCount() + e.DiscardCount()
	n += e.players[0].HandCount() + e.players[1].HandCount()
	for _, s := range e.Stacks() {
		n += s.CardCount()
	}
	return n
}
