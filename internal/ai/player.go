package ai

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/peterkuimelis/npzr/internal/game"
)

// PlayerConfig configures an automated player bound to one seat of an
// engine.
type PlayerConfig struct {
	Engine     *game.Engine
	Seat       int
	Difficulty Difficulty
	// Rand drives mistakes and filter rolls. Nil gets a time-seeded
	// source; tests inject a fixed seed.
	Rand *rand.Rand
	// Logger receives decision traces at debug level. Nil discards them.
	Logger logrus.FieldLogger
}

// AIPlayer drives one seat of a game: each MakeMove call reads the
// seat's state, evaluates its options, and performs exactly one engine
// action.
type AIPlayer struct {
	engine *game.Engine
	seat   int
	diff   Difficulty
	cfg    Config
	rng    *rand.Rand
	log    logrus.FieldLogger

	// pendingNomination carries the nomination a wild play was scored
	// with into the nomination that must follow it.
	pendingNomination *game.Nomination
}

// NewPlayer builds a player for the configured seat and difficulty.
func NewPlayer(pc PlayerConfig) (*AIPlayer, error) {
	cfg, err := GetConfig(pc.Difficulty)
	if err != nil {
		return nil, err
	}
	rng := pc.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	log := pc.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &AIPlayer{
		engine: pc.Engine,
		seat:   pc.Seat,
		diff:   pc.Difficulty,
		cfg:    cfg,
		rng:    rng,
		log:    log,
	}, nil
}

// Seat returns the seat this player occupies.
func (p *AIPlayer) Seat() int { return p.seat }

// Difficulty returns the tier the player was built with.
func (p *AIPlayer) Difficulty() Difficulty { return p.diff }

// MakeMove performs one engine action for whatever state the seat is in.
// Waiting and finished states are a no-op, so callers can loop on it
// until the turn passes or the game ends.
func (p *AIPlayer) MakeMove() error {
	switch p.engine.State(p.seat).Kind {
	case game.StateDrawCard:
		return p.engine.DrawCard(p.seat)
	case game.StatePlayCard:
		return p.playCard()
	case game.StateNominateWild:
		return p.nominateWild()
	case game.StateMoveCard:
		return p.moveCard()
	default:
		return nil
	}
}

func (p *AIPlayer) analyze() *GameAnalysis {
	opp := p.engine.Opponent(p.seat)
	return Analyze(
		p.engine.StacksOf(p.seat),
		p.engine.StacksOf(opp),
		p.engine.Hand(p.seat),
		p.engine.Score(p.seat),
		p.engine.Score(opp),
	)
}

func (p *AIPlayer) playCard() error {
	a := p.analyze()
	options := EvaluatePlays(p.engine, p.seat, a)
	if len(options) == 0 {
		return fmt.Errorf("seat %d has no legal play", p.seat)
	}
	filtered := FilterPlays(p.cfg, p.rng, options)
	if len(filtered) == 0 {
		filtered = options
	}
	choice := p.pickPlay(filtered)
	p.log.Debugf("[P%d] plays %s: %s (value %d)", p.seat, game.ShortID(choice.CardID), choice.Reason, choice.Value)
	if err := p.engine.PlayCard(p.seat, choice.CardID, choice.Opts); err != nil {
		return err
	}
	if choice.Wild && choice.Nomination != nil {
		p.pendingNomination = choice.Nomination
	}
	return nil
}

func (p *AIPlayer) pickPlay(options []PlayOption) *PlayOption {
	if len(options) > 1 && ShouldMakeMistake(p.cfg, p.rng) {
		i := 1 + p.rng.Intn(len(options)-1)
		p.log.Debugf("[P%d] slips, taking option %d of %d", p.seat, i+1, len(options))
		return &options[i]
	}
	return SelectBestPlay(options)
}

func (p *AIPlayer) nominateWild() error {
	a := p.analyze()
	card, _, _ := p.engine.PendingWildCard()
	if card == nil {
		return fmt.Errorf("seat %d has no wild awaiting nomination", p.seat)
	}
	if nom := p.pendingNomination; nom != nil {
		p.pendingNomination = nil
		p.log.Debugf("[P%d] nominates %s as %s (planned with the play)", p.seat, card, nom)
		return p.engine.NominateWildCard(p.seat, *nom)
	}
	options := EvaluateNominations(p.engine, p.seat, a)
	nom := SelectBestNomination(options, card)
	if len(options) > 0 {
		p.log.Debugf("[P%d] nominates %s as %s: %s (value %d)", p.seat, card, nom, options[0].Reason, options[0].Value)
	}
	return p.engine.NominateWildCard(p.seat, nom)
}

func (p *AIPlayer) moveCard() error {
	a := p.analyze()
	moves := EvaluateMoves(p.engine, p.seat, a)
	if len(moves) == 0 {
		return fmt.Errorf("seat %d owes a move but has none", p.seat)
	}
	filtered := FilterMoves(p.cfg, p.rng, moves)
	if len(filtered) == 0 {
		filtered = moves
	}
	choice := p.pickMove(filtered)
	p.log.Debugf("[P%d] moves %s: %s (value %d)", p.seat, game.ShortID(choice.Opts.CardID), choice.Reason, choice.Value)
	return p.engine.MoveCard(p.seat, choice.Opts)
}

func (p *AIPlayer) pickMove(moves []Move) *Move {
	if len(moves) > 1 && ShouldMakeMistake(p.cfg, p.rng) {
		i := 1 + p.rng.Intn(len(moves)-1)
		p.log.Debugf("[P%d] slips, taking move %d of %d", p.seat, i+1, len(moves))
		return &moves[i]
	}
	return SelectBestMove(moves)
}
