package ai

import (
	"errors"
	"fmt"
	"math/rand"
)

// Difficulty selects a tuning profile for an AI player.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ErrUnknownDifficulty is returned for a difficulty with no profile.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Config holds the behavioral knobs of one difficulty tier. Rates are
// probabilities in [0, 1].
type Config struct {
	// WildCardConservation is how reliably the player honors advice to
	// hold wild cards back.
	WildCardConservation float64
	// DisruptionAggression is how reliably the player pursues plays and
	// moves that attack opponent stacks.
	DisruptionAggression float64
	// MistakeRate is how often the player discards the best option and
	// picks a worse one.
	MistakeRate float64
	// CascadeOptimization enables the multi-completion move search.
	CascadeOptimization bool
}

// GetConfig returns the tuning profile for a difficulty.
func GetConfig(d Difficulty) (Config, error) {
	switch d {
	case DifficultyEasy:
		return Config{
			WildCardConservation: 0.2,
			DisruptionAggression: 0.1,
			MistakeRate:          0.2,
			CascadeOptimization:  false,
		}, nil
	case DifficultyMedium:
		return Config{
			WildCardConservation: 0.6,
			DisruptionAggression: 0.5,
			MistakeRate:          0.1,
			CascadeOptimization:  true,
		}, nil
	case DifficultyHard:
		return Config{
			WildCardConservation: 0.9,
			DisruptionAggression: 0.8,
			MistakeRate:          0.02,
			CascadeOptimization:  true,
		}, nil
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
}

// ShouldMakeMistake rolls whether this decision deliberately goes wrong.
func ShouldMakeMistake(cfg Config, rng *rand.Rand) bool {
	return rng.Float64() < cfg.MistakeRate
}

// FilterPlays removes options the difficulty tier is not disciplined
// enough to rank, or not aggressive enough to pursue. At least one option
// always survives.
func FilterPlays(cfg Config, rng *rand.Rand, opts []PlayOption) []PlayOption {
	if len(opts) == 0 {
		return opts
	}
	if rng.Float64() < cfg.WildCardConservation {
		opts = dropWildPlays(opts)
	}
	return filterDisruptionPlays(cfg, rng, opts)
}

// dropWildPlays removes wild options, keeping the best one if the hand
// offers nothing else.
func dropWildPlays(opts []PlayOption) []PlayOption {
	kept := opts[:0:0]
	for _, o := range opts {
		if !o.Wild {
			kept = append(kept, o)
		}
	}
	if len(kept) == 0 {
		return opts[:1]
	}
	return kept
}

func filterDisruptionPlays(cfg Config, rng *rand.Rand, opts []PlayOption) []PlayOption {
	dropAll := rng.Float64() >= cfg.DisruptionAggression
	kept := opts[:0:0]
	for _, o := range opts {
		if o.Kind == PlayDisruption {
			if dropAll {
				continue
			}
			if cfg.DisruptionAggression < 0.5 && o.Urgency < UrgencyCritical {
				continue
			}
		}
		kept = append(kept, o)
	}
	if len(kept) == 0 {
		return opts[:1]
	}
	return kept
}

// FilterMoves removes moves the difficulty tier does not look for. At
// least one move always survives.
func FilterMoves(cfg Config, rng *rand.Rand, moves []Move) []Move {
	if len(moves) == 0 {
		return moves
	}
	if !cfg.CascadeOptimization {
		moves = dropCascadeMoves(moves)
	}
	return filterDisruptionMoves(cfg, rng, moves)
}

func dropCascadeMoves(moves []Move) []Move {
	kept := moves[:0:0]
	for _, m := range moves {
		if m.Kind != MoveCascade {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return moves[:1]
	}
	return kept
}

func filterDisruptionMoves(cfg Config, rng *rand.Rand, moves []Move) []Move {
	dropAll := rng.Float64() >= cfg.DisruptionAggression
	kept := moves[:0:0]
	for _, m := range moves {
		if m.Kind == MoveDisruption {
			if dropAll {
				continue
			}
			if cfg.DisruptionAggression < 0.5 && m.Urgency < UrgencyCritical {
				continue
			}
		}
		kept = append(kept, m)
	}
	if len(kept) == 0 {
		return moves[:1]
	}
	return kept
}
