package ai

import (
	"fmt"
	"sort"

	"github.com/peterkuimelis/npzr/internal/game"
)

// PlayKind tags what a hand play achieves.
type PlayKind int

const (
	PlayNeutral PlayKind = iota
	PlayNewStack
	PlayBuild
	PlayDisruption
	PlayCompletion
)

func (k PlayKind) String() string {
	switch k {
	case PlayNeutral:
		return "neutral"
	case PlayNewStack:
		return "new-stack"
	case PlayBuild:
		return "build"
	case PlayDisruption:
		return "disruption"
	case PlayCompletion:
		return "completion"
	default:
		return "unknown"
	}
}

// PlayOption is one scored placement of a hand card. Wild options carry
// the nomination the score was computed for, so the caller can follow the
// play with the matching nomination.
type PlayOption struct {
	CardID     string
	Opts       game.PlayOptions
	Nomination *game.Nomination
	Value      int
	Kind       PlayKind
	Urgency    Urgency
	Wild       bool
	Reason     string
}

// EvaluatePlays scores every legal placement of every hand card, best
// first. A wild card yields one option per character it could be
// nominated as, since its worth depends on what it will count for.
func EvaluatePlays(e *game.Engine, seat int, a *GameAnalysis) []PlayOption {
	hand := e.Hand(seat)
	var out []PlayOption
	for _, pc := range e.LegalPlays(seat) {
		card := cardWithID(hand, pc.CardID)
		if card == nil {
			continue
		}
		if card.IsWild() {
			out = append(out, scoreWildPlays(e, seat, a, hand, card, pc.Opts)...)
		} else {
			out = append(out, scoreRegularPlay(e, seat, a, card, pc.Opts))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// SelectBestPlay returns the highest-value option, or nil when none exist.
func SelectBestPlay(opts []PlayOption) *PlayOption {
	if len(opts) == 0 {
		return nil
	}
	return &opts[0]
}

func scoreRegularPlay(e *game.Engine, seat int, a *GameAnalysis, card *game.Card, opts game.PlayOptions) PlayOption {
	kind, value, urgency, reason := scorePlacement(e, seat, a, card.Character, opts)
	return PlayOption{
		CardID:  card.ID,
		Opts:    opts,
		Value:   value,
		Kind:    kind,
		Urgency: urgency,
		Reason:  reason,
	}
}

// scorePlacement grades dropping a card of the given character onto the
// target pile, independent of how the card came to have that character.
func scorePlacement(e *game.Engine, seat int, a *GameAnalysis, ch game.Character, opts game.PlayOptions) (PlayKind, int, Urgency, string) {
	if opts.TargetStackID == "" {
		if a.HighPriority(ch) && a.Phase != PhaseLate {
			return PlayNewStack, NewStackPriorityValue, UrgencyOptional, fmt.Sprintf("opens %s", ch)
		}
		return PlayNewStack, NewStackBaseValue, UrgencyOptional, "opens a new stack"
	}
	s := stackWithID(e.Stacks(), opts.TargetStackID)
	if s == nil {
		return PlayNeutral, 0, UrgencyOptional, "covers a pile"
	}

	if s.Owner != seat {
		dom, ok := s.DominantCharacter()
		if ch == game.CharWild || (ok && ch == dom) || progressExcluding(s, ch, opts.TargetPile) == 2 {
			return PlayNeutral, 0, UrgencyOptional, "feeds the opponent's stack"
		}
		progress := 0
		if ok {
			progress = s.ProgressToward(dom)
		}
		switch {
		case progress >= 2:
			return PlayDisruption, BlockCriticalValue, UrgencyCritical, fmt.Sprintf("blocks %s", dom)
		case progress == 1:
			return PlayDisruption, BlockImportantValue, UrgencyImportant, fmt.Sprintf("hinders %s", dom)
		default:
			return PlayDisruption, BlockOptionalValue, UrgencyOptional, "crowds the opponent"
		}
	}

	if ch != game.CharWild && progressExcluding(s, ch, opts.TargetPile) == 2 {
		return PlayCompletion, PlayCompletionValue, UrgencyCritical, fmt.Sprintf("completes %s", ch)
	}
	if dom, ok := s.DominantCharacter(); ok && ch == dom {
		return PlayBuild, buildValue(s.ProgressToward(ch)), UrgencyOptional, fmt.Sprintf("builds %s", ch)
	}
	return PlayNeutral, 0, UrgencyOptional, "covers an own pile"
}

// scoreWildPlays expands a wild placement into one option per character it
// could count as. Each option's value is the placement worth plus the
// nomination worth, minus what spending the wild costs the hand.
func scoreWildPlays(e *game.Engine, seat int, a *GameAnalysis, hand []*game.Card, card *game.Card, opts game.PlayOptions) []PlayOption {
	var s *game.Stack
	if opts.TargetStackID != "" {
		s = stackWithID(e.Stacks(), opts.TargetStackID)
	}
	penalty := handRiskPenalty(len(hand)-1) + conservationPenalty(card, a)

	out := make([]PlayOption, 0, len(game.RealCharacters))
	for _, ch := range game.RealCharacters {
		nom := game.Nomination{Character: ch, Part: opts.TargetPile}
		kind, value, urgency, reason := scorePlacement(e, seat, a, ch, opts)
		nopt := scoreNomination(s, seat, opts.TargetPile, card, nom, a, hand)
		out = append(out, PlayOption{
			CardID:     card.ID,
			Opts:       opts,
			Nomination: &nom,
			Value:      value + nopt.Value - penalty,
			Kind:       kind,
			Urgency:    urgency,
			Wild:       true,
			Reason:     fmt.Sprintf("%s (as %s)", reason, ch),
		})
	}
	return out
}

// ShouldSaveWildCard reports whether the analysis argues for keeping wilds
// in hand. Never when a completion or critical disruption is on the table;
// otherwise early games hoard a first wild, late games spend freely, and
// the midgame holds by default.
func ShouldSaveWildCard(a *GameAnalysis) bool {
	if len(a.Completions) > 0 {
		return false
	}
	for _, d := range a.Disruptions {
		if d.Urgency == UrgencyCritical {
			return false
		}
	}
	switch a.Phase {
	case PhaseEarly:
		return a.WildsInHand < 2
	case PhaseLate:
		return false
	default:
		return true
	}
}

// conservationPenalty taxes spending a wild while the analysis says to
// hold it. Regular cards are never taxed.
func conservationPenalty(card *game.Card, a *GameAnalysis) int {
	if card != nil && card.IsWild() && ShouldSaveWildCard(a) {
		return WildConservationPenalty
	}
	return 0
}

// handRiskPenalty taxes plays by how thin they leave the hand.
func handRiskPenalty(handAfter int) int {
	switch {
	case handAfter <= 1:
		return HandRiskSevere
	case handAfter <= 2:
		return HandRiskHigh
	case handAfter <= 3:
		return HandRiskModerate
	case handAfter <= 4:
		return HandRiskLow
	default:
		return 0
	}
}

func cardWithID(hand []*game.Card, id string) *game.Card {
	for _, c := range hand {
		if c.ID == id {
			return c
		}
	}
	return nil
}
