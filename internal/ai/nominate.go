package ai

import (
	"fmt"
	"sort"

	"github.com/peterkuimelis/npzr/internal/game"
)

// NominationOption is one scored (character, body part) declaration for a
// placed wild card.
type NominationOption struct {
	Nomination              game.Nomination
	Value                   int
	CompletesOwn            bool
	BlocksCritical          bool
	EnablesFutureCompletion bool
	Reason                  string
}

// EvaluateNominations scores every legal declaration for the wild card
// awaiting nomination, best first.
func EvaluateNominations(e *game.Engine, seat int, a *GameAnalysis) []NominationOption {
	card, stackID, pile := e.PendingWildCard()
	if card == nil {
		return nil
	}
	s := stackWithID(e.Stacks(), stackID)
	hand := e.Hand(seat)

	var out []NominationOption
	for _, nom := range e.LegalNominations(seat) {
		out = append(out, scoreNomination(s, seat, pile, card, nom, a, hand))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// SelectBestNomination returns the top option's nomination; with no
// options it falls back to the card's printed fields.
func SelectBestNomination(opts []NominationOption, card *game.Card) game.Nomination {
	if len(opts) == 0 {
		return game.Nomination{Character: card.Character, Part: card.Part}
	}
	return opts[0].Nomination
}

// scoreNomination grades one declaration: completing an own stack, blocking
// a near-complete opponent stack, building toward a character already in
// the stack, or opening a new one. A nil stack stands for a stack the card
// would open.
func scoreNomination(s *game.Stack, seat int, pile game.BodyPart, card *game.Card, nom game.Nomination, a *GameAnalysis, hand []*game.Card) NominationOption {
	opt := NominationOption{Nomination: nom}
	own := s == nil || s.Owner == seat
	progress := progressExcluding(s, nom.Character, pile)
	support := supportingCards(hand, nom.Character, card.ID)

	switch {
	case own && progress == 2:
		opt.Value = NominationCompletesValue
		opt.CompletesOwn = true
		opt.Reason = fmt.Sprintf("completes %s", nom.Character)
	case !own:
		dom, ok := dominantExcluding(s, pile)
		switch {
		case ok && nom.Character != dom && progressExcluding(s, dom, pile) >= 2:
			opt.Value = NominationBlockValue
			opt.BlocksCritical = true
			opt.Reason = fmt.Sprintf("blocks %s", dom)
		case ok && nom.Character == dom:
			opt.Reason = fmt.Sprintf("matches the opponent's %s", dom)
		default:
			opt.Value = BuildBaseValue
			opt.Reason = "crowds the opponent's stack"
		}
	case progress >= 1:
		opt.Value = buildValue(progress)
		opt.EnablesFutureCompletion = support >= 1
		opt.Reason = fmt.Sprintf("builds %s", nom.Character)
	default:
		opt.Value = characterBase(a, nom.Character) + SupportBonus*support
		opt.EnablesFutureCompletion = support >= 2
		opt.Reason = fmt.Sprintf("opens %s", nom.Character)
	}
	opt.Value += wildKindBonus(card, nom)
	return opt
}

// buildValue grades adding to a character already present in a stack.
func buildValue(progress int) int {
	switch progress {
	case 2:
		return BuildTwoValue
	case 1:
		return BuildOneValue
	default:
		return BuildBaseValue
	}
}

// characterBase is the base value of opening a character: higher when
// neither side has scored it.
func characterBase(a *GameAnalysis, ch game.Character) int {
	if a.HighPriority(ch) {
		return NewStackPriorityValue
	}
	return NewStackBaseValue
}

// supportingCards counts hand cards able to advance the character, the
// card being scored excluded.
func supportingCards(hand []*game.Card, ch game.Character, excludeID string) int {
	n := 0
	for _, c := range hand {
		if c.ID == excludeID {
			continue
		}
		if c.Character == ch || c.IsWild() {
			n++
		}
	}
	return n
}

// wildKindBonus rewards declaring a wild as printed: a character-wild
// keeping its character, a position-wild keeping its part, a universal
// wild a flat amount.
func wildKindBonus(card *game.Card, nom game.Nomination) int {
	switch card.Kind() {
	case game.KindCharacterWild:
		if nom.Character == card.Character {
			return WildKindBonus
		}
	case game.KindPositionWild:
		if nom.Part == card.Part {
			return WildKindBonus
		}
	case game.KindUniversalWild:
		return UniversalKindBonus
	}
	return 0
}

// progressExcluding counts matching active cards outside one pile.
func progressExcluding(s *game.Stack, ch game.Character, except game.BodyPart) int {
	if s == nil {
		return 0
	}
	n := 0
	for _, p := range game.RealParts {
		if p == except {
			continue
		}
		if top := s.Top(p); top != nil && top.EffectiveCharacter() == ch {
			n++
		}
	}
	return n
}

// dominantExcluding is the stack's dominant character ignoring one pile.
func dominantExcluding(s *game.Stack, except game.BodyPart) (game.Character, bool) {
	if s == nil {
		return 0, false
	}
	var counts [4]int
	for _, p := range game.RealParts {
		if p == except {
			continue
		}
		if top := s.Top(p); top != nil {
			if ec := top.EffectiveCharacter(); ec != game.CharWild {
				counts[ec]++
			}
		}
	}
	best, bestN := game.CharNinja, 0
	for _, ch := range game.RealCharacters {
		if counts[ch] > bestN {
			best, bestN = ch, counts[ch]
		}
	}
	if bestN == 0 {
		return 0, false
	}
	return best, true
}
