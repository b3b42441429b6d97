package ai

import (
	"fmt"
	"sort"

	"github.com/peterkuimelis/npzr/internal/game"
)

// MoveKind tags what a board-to-board move achieves.
type MoveKind int

const (
	MoveNeutral MoveKind = iota
	MoveOrganization
	MoveSetup
	MoveDisruption
	MoveCompletion
	MoveCascade
)

func (k MoveKind) String() string {
	switch k {
	case MoveNeutral:
		return "neutral"
	case MoveOrganization:
		return "organization"
	case MoveSetup:
		return "setup"
	case MoveDisruption:
		return "disruption"
	case MoveCompletion:
		return "completion"
	case MoveCascade:
		return "cascade"
	default:
		return "unknown"
	}
}

// Move is one scored relocation of an active card.
type Move struct {
	Opts      game.MoveOptions
	Value     int
	Kind      MoveKind
	Urgency   Urgency
	Disrupts  bool
	Completes bool
	Reason    string
}

// EvaluateMoves scores every legal move for the seat, best first. Cascade
// and disruption candidates come from their dedicated searches; the
// general pass scores whatever they did not claim.
func EvaluateMoves(e *game.Engine, seat int, a *GameAnalysis) []Move {
	legal := e.LegalMoves(seat)
	seen := make(map[game.MoveOptions]bool, len(legal))
	var out []Move

	for _, m := range FindCascadeMoves(e, seat, legal, a) {
		if !seen[m.Opts] {
			seen[m.Opts] = true
			out = append(out, m)
		}
	}
	for _, m := range FindDisruptionMoves(e, seat, legal, a) {
		if !seen[m.Opts] {
			seen[m.Opts] = true
			out = append(out, m)
		}
	}
	for _, opts := range legal {
		if !seen[opts] {
			out = append(out, scoreGeneralMove(e, seat, a, opts))
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// SelectBestMove returns the highest-value move, or nil when none exist.
func SelectBestMove(moves []Move) *Move {
	if len(moves) == 0 {
		return nil
	}
	return &moves[0]
}

// FindCascadeMoves finds moves that complete a two-thirds-built own stack
// with a card already on the board, valued by how many further
// completions the earned move could reach.
func FindCascadeMoves(e *game.Engine, seat int, legal []game.MoveOptions, a *GameAnalysis) []Move {
	var out []Move
	for _, opts := range legal {
		if opts.ToStackID == "" {
			continue
		}
		dst := stackWithID(e.Stacks(), opts.ToStackID)
		if dst == nil || dst.Owner != seat {
			continue
		}
		ch, ok := completesDestination(e, opts)
		if !ok {
			continue
		}
		src := stackWithID(e.Stacks(), opts.FromStackID)
		moved := src.Top(opts.FromPile)
		unlocks := cascadeUnlocks(e, seat, opts)

		m := Move{
			Opts:      opts,
			Kind:      MoveCascade,
			Urgency:   UrgencyOptional,
			Disrupts:  src.Owner != seat,
			Completes: true,
			Value:     CascadeBase + CascadeUnlockBonus*unlocks - conservationPenalty(moved, a),
			Reason:    fmt.Sprintf("cascade completes %s", ch),
		}
		if unlocks > 0 {
			m.Reason = fmt.Sprintf("cascade completes %s with %d more in reach", ch, unlocks)
		}
		out = append(out, m)
	}
	return out
}

// FindDisruptionMoves finds moves that lift a piece off an opponent stack,
// graded by how advanced the stack is and what the piece does next.
func FindDisruptionMoves(e *game.Engine, seat int, legal []game.MoveOptions, a *GameAnalysis) []Move {
	var out []Move
	for _, opts := range legal {
		src := stackWithID(e.Stacks(), opts.FromStackID)
		if src == nil || src.Owner == seat {
			continue
		}
		moved := src.Top(opts.FromPile)
		srcChar, progress := src.Progress()
		destOwn := destinationOwn(e, seat, opts)
		_, completes := completesDestination(e, opts)

		m := Move{
			Opts:     opts,
			Kind:     MoveDisruption,
			Urgency:  disruptionUrgency(progress),
			Disrupts: true,
			Reason:   fmt.Sprintf("steals a piece from %s (progress %d)", srcChar, progress),
		}
		if completes && !destOwn {
			out = append(out, m) // finishing the opponent's stack for them is worth nothing
			continue
		}
		m.Value = DisruptionBase + DisruptionProgressBonus*progress
		if completes {
			m.Completes = true
			m.Value += DisruptionCompletesBonus
			m.Reason += ", completing an own stack"
		}
		if dom, ok := destinationDominant(e, opts); ok && moved.Character == dom {
			m.Value += DisruptionMatchBonus
		}
		m.Value -= conservationPenalty(moved, a)
		out = append(out, m)
	}
	return out
}

// scoreGeneralMove grades a move the dedicated searches did not claim:
// uncover completions, setup onto own stacks, and organizational splits.
func scoreGeneralMove(e *game.Engine, seat int, a *GameAnalysis, opts game.MoveOptions) Move {
	m := Move{Opts: opts, Kind: MoveNeutral}
	src := stackWithID(e.Stacks(), opts.FromStackID)
	if src == nil {
		return m
	}
	moved := src.Top(opts.FromPile)
	if moved == nil {
		return m
	}

	destOwn := destinationOwn(e, seat, opts)
	dom, domOK := destinationDominant(e, opts)

	if ch, ok := completesDestination(e, opts); ok && destOwn {
		m.Kind = MoveCompletion
		m.Completes = true
		m.Value = MoveCompletionValue + matchingBonus(moved, dom, domOK) - conservationPenalty(moved, a)
		m.Reason = fmt.Sprintf("completes %s", ch)
		return m
	}
	if ch, ok := completesSource(e, opts); ok {
		m.Kind = MoveCompletion
		m.Completes = true
		m.Value = MoveCompletionValue - conservationPenalty(moved, a)
		m.Reason = fmt.Sprintf("uncovers a %s completion", ch)
		return m
	}

	switch {
	case opts.ToStackID == "":
		m.Kind = MoveOrganization
		m.Value = splitBase(src, moved) + ConsolidationBonus*ownMatching(e, seat, moved)
		m.Reason = fmt.Sprintf("splits %s onto a fresh stack", moved)
	case destOwn:
		progress := destinationProgress(e, opts)
		m.Value = SetupProgressBonus*progress + matchingBonus(moved, dom, domOK)
		if progress > 0 {
			m.Kind = MoveSetup
			m.Reason = fmt.Sprintf("feeds a stack at progress %d", progress)
		} else {
			m.Reason = "shuffles own pieces"
		}
	default:
		m.Reason = "dumps onto the opponent"
	}
	m.Value -= conservationPenalty(moved, a)
	return m
}

func disruptionUrgency(progress int) Urgency {
	switch {
	case progress >= 2:
		return UrgencyCritical
	case progress == 1:
		return UrgencyImportant
	default:
		return UrgencyOptional
	}
}

// completesDestination reports whether placing the moved card completes
// the destination stack. The card arrives without its nomination, so only
// its printed character counts.
func completesDestination(e *game.Engine, opts game.MoveOptions) (game.Character, bool) {
	if opts.ToStackID == "" {
		return 0, false
	}
	dst := stackWithID(e.Stacks(), opts.ToStackID)
	src := stackWithID(e.Stacks(), opts.FromStackID)
	if dst == nil || src == nil {
		return 0, false
	}
	moved := src.Top(opts.FromPile)
	if moved == nil || moved.Character == game.CharWild {
		return 0, false
	}
	ch := moved.Character
	for _, p := range game.RealParts {
		if p == opts.ToPile {
			continue // the moved card becomes this pile's active card
		}
		active := dst.Top(p)
		if dst.ID == src.ID && p == opts.FromPile {
			active = underTop(src, p)
		}
		if active == nil || active.EffectiveCharacter() != ch {
			return 0, false
		}
	}
	return ch, true
}

// completesSource reports whether removing the moved card uncovers a
// completion on the source stack.
func completesSource(e *game.Engine, opts game.MoveOptions) (game.Character, bool) {
	if opts.FromStackID == opts.ToStackID {
		return 0, false // same stack is judged as a destination completion
	}
	src := stackWithID(e.Stacks(), opts.FromStackID)
	if src == nil {
		return 0, false
	}
	var ch game.Character
	for i, p := range game.RealParts {
		active := src.Top(p)
		if p == opts.FromPile {
			active = underTop(src, p)
		}
		if active == nil {
			return 0, false
		}
		ec := active.EffectiveCharacter()
		if ec == game.CharWild {
			return 0, false
		}
		if i == 0 {
			ch = ec
		} else if ec != ch {
			return 0, false
		}
	}
	return ch, true
}

// underTop is the card that becomes active when the pile's top moves away.
func underTop(s *game.Stack, p game.BodyPart) *game.Card {
	cards := s.Cards(p)
	if len(cards) < 2 {
		return nil
	}
	return cards[len(cards)-2]
}

// cascadeUnlocks estimates how many further completions the earned move
// could reach: an uncovered completion on the source stack, plus other own
// stacks one board-satisfiable piece from completing.
func cascadeUnlocks(e *game.Engine, seat int, opts game.MoveOptions) int {
	n := 0
	if _, ok := completesSource(e, opts); ok {
		n++
	}
	for _, s := range e.StacksOf(seat) {
		if n >= CascadeMaxUnlocks {
			break
		}
		if s.ID == opts.ToStackID || s.ID == opts.FromStackID {
			continue
		}
		ch, ok := s.DominantCharacter()
		if !ok || s.ProgressToward(ch) != 2 {
			continue
		}
		if boardSatisfier(e, s, ch) {
			n++
		}
	}
	if n > CascadeMaxUnlocks {
		n = CascadeMaxUnlocks
	}
	return n
}

// boardSatisfier reports whether some active card outside the target stack
// could fill the target's missing pile for the character.
func boardSatisfier(e *game.Engine, target *game.Stack, ch game.Character) bool {
	missing := missingParts(target.Pieces(ch))
	if len(missing) != 1 {
		return false
	}
	for _, s := range e.Stacks() {
		if s.ID == target.ID {
			continue
		}
		for _, p := range game.RealParts {
			top := s.Top(p)
			if top == nil || top.Character != ch {
				continue
			}
			if top.Part == missing[0] || top.Part == game.PartWild {
				return true
			}
		}
	}
	return false
}

func destinationOwn(e *game.Engine, seat int, opts game.MoveOptions) bool {
	if opts.ToStackID == "" {
		return true
	}
	dst := stackWithID(e.Stacks(), opts.ToStackID)
	return dst != nil && dst.Owner == seat
}

func destinationDominant(e *game.Engine, opts game.MoveOptions) (game.Character, bool) {
	if opts.ToStackID == "" {
		return 0, false
	}
	dst := stackWithID(e.Stacks(), opts.ToStackID)
	if dst == nil {
		return 0, false
	}
	return dst.DominantCharacter()
}

// matchingBonus rewards moving a card onto a stack it lines up with.
func matchingBonus(moved *game.Card, dom game.Character, ok bool) int {
	if !ok {
		return 0
	}
	if moved.Character == dom || moved.IsWild() {
		return MatchingBonus
	}
	return 0
}

// splitBase values opening a fresh stack with the moved card: more when
// the card never belonged on its origin stack.
func splitBase(src *game.Stack, moved *game.Card) int {
	dom, ok := src.DominantCharacter()
	if ok && moved.Character != dom {
		return SplitBase
	}
	return NewStackMoveBase
}

// ownMatching counts the seat's other active cards of the same character.
func ownMatching(e *game.Engine, seat int, moved *game.Card) int {
	if moved.Character == game.CharWild {
		return 0
	}
	n := 0
	for _, s := range e.StacksOf(seat) {
		for _, p := range game.RealParts {
			top := s.Top(p)
			if top != nil && top.ID != moved.ID && top.EffectiveCharacter() == moved.Character {
				n++
			}
		}
	}
	return n
}

func destinationProgress(e *game.Engine, opts game.MoveOptions) int {
	dst := stackWithID(e.Stacks(), opts.ToStackID)
	if dst == nil {
		return 0
	}
	_, n := dst.Progress()
	return n
}
