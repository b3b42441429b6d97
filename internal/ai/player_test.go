package ai

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/npzr/internal/game"
	"github.com/peterkuimelis/npzr/internal/log"
)

func TestNewPlayerRejectsUnknownDifficulty(t *testing.T) {
	e := newDuel(t)
	_, err := NewPlayer(PlayerConfig{Engine: e, Seat: 0, Difficulty: "ruthless"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownDifficulty)

	p, err := NewPlayer(PlayerConfig{Engine: e, Seat: 1, Difficulty: DifficultyMedium})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Seat())
	assert.Equal(t, DifficultyMedium, p.Difficulty())
}

func TestMakeMoveIdlesOffTurn(t *testing.T) {
	e := newDuel(t)
	p, err := NewPlayer(PlayerConfig{
		Engine:     e,
		Seat:       1,
		Difficulty: DifficultyHard,
		Rand:       rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	require.Equal(t, game.StateWaitingForOpponent, e.State(1).Kind)
	require.NoError(t, p.MakeMove())
	assert.Equal(t, 0, e.TurnSeat(), "waiting seats do nothing")
	assert.Equal(t, game.StateWaitingForOpponent, e.State(1).Kind)
}

// riggedWildPlay parks seat 0 in the nominate state with a universal wild
// on a stack two pieces into Ninja.
func riggedWildPlay(t *testing.T) *game.Engine {
	t.Helper()
	e := newDuel(t)
	mine := openStack(t, e, 0)
	theirs := openStack(t, e, 1)
	reshape(mine,
		regular(game.CharNinja, game.PartHead),
		nil,
		regular(game.CharNinja, game.PartLegs))
	reshape(theirs, nil, nil, nil)

	uw := universalWild()
	e.Player(0).Hand = []*game.Card{uw, regular(game.CharPirate, game.PartTorso)}
	if err := e.DrawCard(0); err != nil {
		t.Fatalf("DrawCard: %v", err)
	}
	err := e.PlayCard(0, uw.ID, game.PlayOptions{
		TargetStackID: mine.ID,
		TargetPile:    game.PartTorso,
	})
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	return e
}

func TestPlannedNominationFollowsWildPlay(t *testing.T) {
	e := riggedWildPlay(t)
	require.Equal(t, game.StateNominateWild, e.State(0).Kind)

	p, err := NewPlayer(PlayerConfig{
		Engine:     e,
		Seat:       0,
		Difficulty: DifficultyHard,
		Rand:       rand.New(rand.NewSource(3)),
	})
	require.NoError(t, err)
	p.pendingNomination = &game.Nomination{Character: game.CharNinja, Part: game.PartTorso}

	require.NoError(t, p.MakeMove())

	assert.Nil(t, p.pendingNomination, "the plan is consumed by the nomination")
	assert.Equal(t, []game.Character{game.CharNinja}, e.Score(0))
	assert.Equal(t, game.StatePlayCard, e.State(0).Kind, "wild play earns a follow-up")
}

func TestUnplannedNominationUsesEvaluator(t *testing.T) {
	e := riggedWildPlay(t)
	require.Equal(t, game.StateNominateWild, e.State(0).Kind)

	p, err := NewPlayer(PlayerConfig{
		Engine:     e,
		Seat:       0,
		Difficulty: DifficultyHard,
		Rand:       rand.New(rand.NewSource(3)),
	})
	require.NoError(t, err)

	require.NoError(t, p.MakeMove())
	assert.Equal(t, []game.Character{game.CharNinja}, e.Score(0),
		"the evaluator picks the completing nomination")
}

// playOut runs a full AI-versus-AI game with fixed seeds and returns the
// finished engine with the number of actions taken.
func playOut(t *testing.T, engineSeed, seed0, seed1 int64, d0, d1 Difficulty) (*game.Engine, int) {
	t.Helper()
	e := game.New(game.Config{Logger: log.NewMemoryLogger(), Seed: engineSeed})
	_, err := e.AddPlayer("AI-0")
	require.NoError(t, err)
	_, err = e.AddPlayer("AI-1")
	require.NoError(t, err)

	var players [2]*AIPlayer
	players[0], err = NewPlayer(PlayerConfig{
		Engine: e, Seat: 0, Difficulty: d0, Rand: rand.New(rand.NewSource(seed0)),
	})
	require.NoError(t, err)
	players[1], err = NewPlayer(PlayerConfig{
		Engine: e, Seat: 1, Difficulty: d1, Rand: rand.New(rand.NewSource(seed1)),
	})
	require.NoError(t, err)

	steps := 0
	for !e.IsComplete() {
		require.NoError(t, players[e.TurnSeat()].MakeMove())
		steps++
		require.Less(t, steps, 20000, "game failed to terminate")
	}
	return e, steps
}

func TestPlayersFinishAGame(t *testing.T) {
	e, _ := playOut(t, 7, 11, 22, DifficultyHard, DifficultyEasy)

	assert.True(t, e.IsComplete())
	assert.Equal(t, game.DeckSize, cardsInPlay(e), "every card accounted for")
	if w := e.Winner(); w >= 0 {
		assert.Equal(t, 4, e.Player(w).ScoreCount())
		assert.Contains(t, e.Result(), "wins with all four characters")
	} else {
		assert.Contains(t, e.Result(), "Turn limit reached")
	}
}

func TestSeededGamesReproduce(t *testing.T) {
	first, firstSteps := playOut(t, 3, 5, 6, DifficultyMedium, DifficultyMedium)
	second, secondSteps := playOut(t, 3, 5, 6, DifficultyMedium, DifficultyMedium)

	assert.Equal(t, first.Winner(), second.Winner())
	assert.Equal(t, first.Result(), second.Result())
	assert.Equal(t, first.Turn(), second.Turn())
	assert.Equal(t, firstSteps, secondSteps)
	assert.Equal(t, first.Score(0), second.Score(0))
	assert.Equal(t, first.Score(1), second.Score(1))
}
