package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/peterkuimelis/npzr/internal/log"
)

// stepGame performs the turn player's next required action, picking among
// the legal options with rng (first option when rng is nil). The engine's
// own legality helpers drive the game, so a rejection here is an engine bug.
func stepGame(t *testing.T, e *Engine, rng *rand.Rand) {
	t.Helper()
	seat := e.TurnSeat()
	switch e.State(seat).Kind {
	case StateDrawCard:
		mustDraw(t, e, seat)
	case StatePlayCard:
		plays := e.LegalPlays(seat)
		if len(plays) == 0 {
			dumpLog(t, e)
			t.Fatalf("Seat %d is in PlayCard with no legal play", seat)
		}
		pick := plays[pickIndex(rng, len(plays))]
		mustPlay(t, e, seat, pick.CardID, pick.Opts)
	case StateNominateWild:
		noms := e.LegalNominations(seat)
		if len(noms) == 0 {
			dumpLog(t, e)
			t.Fatalf("Seat %d is in NominateWild with no nomination", seat)
		}
		mustNominate(t, e, seat, noms[pickIndex(rng, len(noms))])
	case StateMoveCard:
		moves := e.LegalMoves(seat)
		if len(moves) == 0 {
			dumpLog(t, e)
			t.Fatalf("Seat %d owes a move with none legal", seat)
		}
		mustMove(t, e, seat, moves[pickIndex(rng, len(moves))])
	default:
		dumpLog(t, e)
		t.Fatalf("Unexpected state %s for seat %d", e.State(seat).Kind, seat)
	}
}

func pickIndex(rng *rand.Rand, n int) int {
	if rng == nil {
		return 0
	}
	return rng.Intn(n)
}

// TestScriptedSweep replays a scripted 15-turn game. Alice assembles all
// four characters, opening each with a different wild kind (universal,
// character wild, position wild, character wild) and finishing with the
// third regular piece; Bob dumps torso cards onto a single stack. Covers
// wild nomination with the free follow-up play, completion scoring, the
// forfeited earned move, draw skips on an empty deck, and deck refills
// from the discard pile.
func TestScriptedSweep(t *testing.T) {
	e, logger := newTestEngine(t)

	uw := universalWild()
	ninjaT := regular(CharNinja, PartTorso)
	ninjaL := regular(CharNinja, PartLegs)
	pirW := characterWild(CharPirate)
	pirT := regular(CharPirate, PartTorso)
	pirL := regular(CharPirate, PartLegs)
	posH := positionWild(PartHead)
	zomT := regular(CharZombie, PartTorso)
	zomL := regular(CharZombie, PartLegs)
	robW := characterWild(CharRobot)
	robT := regular(CharRobot, PartTorso)
	robL := regular(CharRobot, PartLegs)

	hand0 := []*Card{uw, ninjaT, ninjaL, pirW, pirT, pirL, posH, zomT, zomL, robW, robT, robL}
	hand1 := fillerDeck(7)
	rig(e, hand0, hand1, nil)

	// Turn 1 (Alice): universal wild opens the Ninja stack, nominated as
	// the head; the follow-up play adds the torso.
	mustDraw(t, e, 0)
	mustPlay(t, e, 0, uw.ID, PlayOptions{TargetPile: PartHead})
	mustNominate(t, e, 0, Nomination{Character: CharNinja, Part: PartHead})
	stackA := e.StacksOf(0)[0]
	mustPlay(t, e, 0, ninjaT.ID, PlayOptions{TargetStackID: stackA.ID, TargetPile: PartTorso})

	// Turn 2 (Bob): opens the dump stack.
	mustDraw(t, e, 1)
	mustPlay(t, e, 1, hand1[0].ID, PlayOptions{TargetPile: PartTorso})
	dump := e.StacksOf(1)[0]

	// Turn 3 (Alice): legs complete the Ninja. The earned move is
	// forfeited: the only stack left is Bob's, and its torso has nowhere
	// to go.
	mustDraw(t, e, 0)
	mustPlay(t, e, 0, ninjaL.ID, PlayOptions{TargetStackID: stackA.ID, TargetPile: PartLegs})
	if got := e.Score(0); len(got) != 1 || got[0] != CharNinja {
		t.Fatalf("Expected Ninja scored on turn 3, got %v", got)
	}

	// Turn 4 (Bob): the discarded Ninja refills the deck; Bob draws from
	// it and keeps dumping.
	mustDraw(t, e, 1)
	mustPlay(t, e, 1, hand1[1].ID, PlayOptions{TargetStackID: dump.ID, TargetPile: PartTorso})

	// Turns 5-8: the Pirate, opened with its character wild.
	mustDraw(t, e, 0)
	mustPlay(t, e, 0, pirW.ID, PlayOptions{TargetPile: PartHead})
	mustNominate(t, e, 0, Nomination{Character: CharPirate, Part: PartHead})
	stackB := e.StacksOf(0)[0]
	mustPlay(t, e, 0, pirT.ID, PlayOptions{TargetStackID: stackB.ID, TargetPile: PartTorso})

	mustDraw(t, e, 1)
	mustPlay(t, e, 1, hand1[2].ID, PlayOptions{TargetStackID: dump.ID, TargetPile: PartTorso})

	mustDraw(t, e, 0)
	mustPlay(t, e, 0, pirL.ID, PlayOptions{TargetStackID: stackB.ID, TargetPile: PartLegs})

	mustDraw(t, e, 1)
	mustPlay(t, e, 1, hand1[3].ID, PlayOptions{TargetStackID: dump.ID, TargetPile: PartTorso})

	// Turns 9-12: the Zombie, opened with the position wild head.
	mustDraw(t, e, 0)
	mustPlay(t, e, 0, posH.ID, PlayOptions{TargetPile: PartHead})
	mustNominate(t, e, 0, Nomination{Character: CharZombie, Part: PartHead})
	stackC := e.StacksOf(0)[0]
	mustPlay(t, e, 0, zomT.ID, PlayOptions{TargetStackID: stackC.ID, TargetPile: PartTorso})

	mustDraw(t, e, 1)
	mustPlay(t, e, 1, hand1[4].ID, PlayOptions{TargetStackID: dump.ID, TargetPile: PartTorso})

	mustDraw(t, e, 0)
	mustPlay(t, e, 0, zomL.ID, PlayOptions{TargetStackID: stackC.ID, TargetPile: PartLegs})

	mustDraw(t, e, 1)
	mustPlay(t, e, 1, hand1[5].ID, PlayOptions{TargetStackID: dump.ID, TargetPile: PartTorso})

	// Turns 13-15: the Robot closes the sweep.
	mustDraw(t, e, 0)
	mustPlay(t, e, 0, robW.ID, PlayOptions{TargetPile: PartHead})
	mustNominate(t, e, 0, Nomination{Character: CharRobot, Part: PartHead})
	stackD := e.StacksOf(0)[0]
	mustPlay(t, e, 0, robT.ID, PlayOptions{TargetStackID: stackD.ID, TargetPile: PartTorso})

	mustDraw(t, e, 1)
	mustPlay(t, e, 1, hand1[6].ID, PlayOptions{TargetStackID: dump.ID, TargetPile: PartTorso})

	mustDraw(t, e, 0)
	mustPlay(t, e, 0, robL.ID, PlayOptions{TargetStackID: stackD.ID, TargetPile: PartLegs})

	// The fourth character ends the game on the spot.
	if !e.IsComplete() || e.Winner() != 0 {
		dumpLog(t, e)
		t.Fatalf("Expected Alice to win, got complete=%v winner=%d", e.IsComplete(), e.Winner())
	}
	if got := e.Score(0); len(got) != 4 {
		t.Errorf("Expected all four characters scored, got %v", got)
	}
	if got := e.Score(1); len(got) != 0 {
		t.Errorf("Expected no score for Bob, got %v", got)
	}
	if e.Turn() != 15 {
		t.Errorf("Expected the win on turn 15, got %d", e.Turn())
	}
	if !strings.Contains(e.Result(), "wins with all four characters") {
		t.Errorf("Unexpected result %q", e.Result())
	}

	if got := logger.EventsOfType(log.EventStackComplete); len(got) != 4 {
		t.Errorf("Expected 4 completions, got %d", len(got))
	}
	if got := logger.EventsOfType(log.EventMoveSkipped); len(got) != 3 {
		t.Errorf("Expected 3 forfeited moves, got %d", len(got))
	}
	if got := logger.EventsOfType(log.EventDeckRefill); len(got) != 3 {
		t.Errorf("Expected 3 deck refills, got %d", len(got))
	}
	if got := logger.EventsOfType(log.EventDrawSkipped); len(got) != 6 {
		t.Errorf("Expected 6 skipped draws, got %d", len(got))
	}

	// Every rigged card is still accounted for.
	if got, want := totalCards(e), len(hand0)+len(hand1); got != want {
		t.Errorf("Expected %d cards in play, got %d", want, got)
	}
	if got := e.Player(0).HandCount(); got != 3 {
		t.Errorf("Expected 3 cards left in Alice's hand, got %d", got)
	}
	if got := e.Player(1).HandCount(); got != 6 {
		t.Errorf("Expected 6 cards left in Bob's hand, got %d", got)
	}

	t.Logf("Transcript:\n%s", log.FormatAll(logger.Events()))
}

// TestTurnLimitDraw: a game that never resolves ends in a draw at the
// configured turn limit.
func TestTurnLimitDraw(t *testing.T) {
	logger := log.NewMemoryLogger()
	e := New(Config{Logger: logger, NoShuffle: true, Seed: 1, MaxTurns: 6})
	if _, err := e.AddPlayer("Alice"); err != nil {
		t.Fatalf("AddPlayer Alice: %v", err)
	}
	if _, err := e.AddPlayer("Bob"); err != nil {
		t.Fatalf("AddPlayer Bob: %v", err)
	}

	// The first legal play always opens a new stack, so nothing ever
	// completes and the limit has to fire.
	for i := 0; !e.IsComplete(); i++ {
		if i > 1000 { // safety limit
			dumpLog(t, e)
			t.Fatal("Game did not reach the turn limit")
		}
		stepGame(t, e, nil)
		if got := totalCards(e); got != DeckSize {
			t.Fatalf("Expected %d cards in play, got %d", DeckSize, got)
		}
	}

	if e.Winner() != -1 {
		t.Errorf("Expected a draw, got winner %d", e.Winner())
	}
	if !strings.Contains(e.Result(), "Turn limit reached (6 turns)") {
		t.Errorf("Unexpected result %q", e.Result())
	}
	if e.Turn() != 6 {
		t.Errorf("Expected exactly 6 turns, got %d", e.Turn())
	}
	if got := logger.EventsOfType(log.EventTurnLimit); len(got) != 1 {
		t.Errorf("Expected 1 turn limit event, got %d", len(got))
	}
}

// TestRandomPlayoutConserves: a seeded random playout of a full shuffled
// game ends legally with all 44 cards accounted for after every action.
func TestRandomPlayoutConserves(t *testing.T) {
	logger := log.NewMemoryLogger()
	e := New(Config{Logger: logger, Seed: 42})
	if _, err := e.AddPlayer("Alice"); err != nil {
		t.Fatalf("AddPlayer Alice: %v", err)
	}
	if _, err := e.AddPlayer("Bob"); err != nil {
		t.Fatalf("AddPlayer Bob: %v", err)
	}
	rng := rand.New(rand.NewSource(7))

	for i := 0; !e.IsComplete(); i++ {
		if i > 20000 { // safety limit
			dumpLog(t, e)
			t.Fatal("Game did not finish")
		}
		stepGame(t, e, rng)
		if got := totalCards(e); got != DeckSize {
			dumpLog(t, e)
			t.Fatalf("Expected %d cards in play after action %d, got %d", DeckSize, i, got)
		}
	}

	if w := e.Winner(); w >= 0 {
		if got := e.Player(w).ScoreCount(); got != len(RealCharacters) {
			t.Errorf("Expected the winner to hold all four characters, got %d", got)
		}
		if got := logger.EventsOfType(log.EventWin); len(got) != 1 {
			t.Errorf("Expected 1 win event, got %d", len(got))
		}
	} else if !strings.Contains(e.Result(), "Turn limit") {
		t.Errorf("Expected a win or the turn limit, got %q", e.Result())
	}
	t.Logf("%s after %d turns (%d events)", e.Result(), e.Turn(), len(logger.Events()))
}
