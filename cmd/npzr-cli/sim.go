package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/peterkuimelis/npzr/internal/ai"
	"github.com/peterkuimelis/npzr/internal/game"
	"github.com/peterkuimelis/npzr/internal/log"
)

func runSim(args []string) {
	fs := flag.NewFlagSet("sim", flag.ExitOnError)
	games := fs.Int("games", 100, "number of games to run")
	d0 := fs.String("d0", "medium", "seat 0 difficulty")
	d1 := fs.String("d1", "medium", "seat 1 difficulty")
	seed := fs.Int64("seed", 1, "base seed; game i runs with seed+i")
	verbose := fs.Bool("verbose", false, "print the full event log of every game")
	fs.Parse(args)

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	diffs := [2]ai.Difficulty{ai.Difficulty(*d0), ai.Difficulty(*d1)}
	wins := [2]int{}
	draws := 0
	totalTurns := 0

	for i := 0; i < *games; i++ {
		gameSeed := *seed + int64(i)
		winner, turns, err := runOneGame(diffs, gameSeed, *verbose)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: game %d: %v\n", i+1, err)
			os.Exit(1)
		}
		totalTurns += turns
		if winner < 0 {
			draws++
			logger.Debugf("game %d (seed %d): draw after %d turns", i+1, gameSeed, turns)
		} else {
			wins[winner]++
			logger.Debugf("game %d (seed %d): seat %d (%s) wins in %d turns", i+1, gameSeed, winner, diffs[winner], turns)
		}
	}

	logger.WithFields(logrus.Fields{
		"games":     *games,
		"p0":        string(diffs[0]),
		"p1":        string(diffs[1]),
		"p0_wins":   wins[0],
		"p1_wins":   wins[1],
		"draws":     draws,
		"avg_turns": float64(totalTurns) / float64(*games),
	}).Info("simulation complete")
}

// runOneGame plays a full AI-vs-AI game and returns the winning seat (-1
// for a draw) and the turn count.
func runOneGame(diffs [2]ai.Difficulty, seed int64, verbose bool) (int, int, error) {
	var logger log.EventLogger = log.NewMemoryLogger()
	if verbose {
		logger = log.NewTextLogger(os.Stdout)
	}
	engine := game.New(game.Config{Logger: logger, Seed: seed})

	var players [2]*ai.AIPlayer
	for seat := 0; seat < 2; seat++ {
		if _, err := engine.AddPlayer(fmt.Sprintf("%s-%d", diffs[seat], seat)); err != nil {
			return 0, 0, err
		}
		p, err := ai.NewPlayer(ai.PlayerConfig{
			Engine:     engine,
			Seat:       seat,
			Difficulty: diffs[seat],
			Rand:       rand.New(rand.NewSource(seed*2 + int64(seat))),
		})
		if err != nil {
			return 0, 0, err
		}
		players[seat] = p
	}

	for i := 0; !engine.IsComplete(); i++ {
		if i > 10000 { // safety limit
			return 0, 0, fmt.Errorf("game did not finish after %d actions", i)
		}
		if err := players[engine.TurnSeat()].MakeMove(); err != nil {
			return 0, 0, err
		}
	}
	return engine.Winner(), engine.Turn(), nil
}
