package ai

import (
	"sort"

	"github.com/peterkuimelis/npzr/internal/game"
)

// Urgency grades how soon a disruption opportunity must be answered.
type Urgency int

const (
	UrgencyOptional Urgency = iota
	UrgencyImportant
	UrgencyCritical
)

func (u Urgency) String() string {
	switch u {
	case UrgencyOptional:
		return "optional"
	case UrgencyImportant:
		return "important"
	case UrgencyCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ThreatLevel summarizes how close the opponent is to winning.
type ThreatLevel int

const (
	ThreatLow ThreatLevel = iota
	ThreatMedium
	ThreatHigh
)

func (t ThreatLevel) String() string {
	switch t {
	case ThreatLow:
		return "low"
	case ThreatMedium:
		return "medium"
	case ThreatHigh:
		return "high"
	default:
		return "unknown"
	}
}

// GamePhase buckets the game by how many characters have been scored.
type GamePhase int

const (
	PhaseEarly GamePhase = iota
	PhaseMid
	PhaseLate
)

func (p GamePhase) String() string {
	switch p {
	case PhaseEarly:
		return "early"
	case PhaseMid:
		return "mid"
	case PhaseLate:
		return "late"
	default:
		return "unknown"
	}
}

// StackProgress is one character's best construction progress for one side.
type StackProgress struct {
	Character game.Character
	Level     int // matching active cards in the best stack, 0 to 3
	StackID   string
	Pieces    []game.BodyPart
	Missing   []game.BodyPart
	Scored    bool
}

// CompletionOpportunity is an own stack one satisfiable piece away from
// completing.
type CompletionOpportunity struct {
	Character game.Character
	StackID   string
	Missing   game.BodyPart
	CardID    string // hand card able to fill the missing pile
}

// DisruptionOpportunity is an opponent character worth blocking.
type DisruptionOpportunity struct {
	Character game.Character
	StackID   string
	Progress  int
	Urgency   Urgency
	Pieces    []game.BodyPart
}

// GameAnalysis is the advisory report the evaluators consume. It is
// recomputed for every decision and never stored.
type GameAnalysis struct {
	Own         map[game.Character]StackProgress
	Opponent    map[game.Character]StackProgress
	Threat      ThreatLevel
	Phase       GamePhase
	Completions []CompletionOpportunity
	Disruptions []DisruptionOpportunity
	WildsInHand int
}

// Analyze derives the opportunity and threat report for one side from
// board snapshots. It never touches the engine.
func Analyze(own, opponent []*game.Stack, hand []*game.Card, ownScore, opponentScore []game.Character) *GameAnalysis {
	a := &GameAnalysis{
		Own:         progressReport(own, scoreSet(ownScore)),
		Opponent:    progressReport(opponent, scoreSet(opponentScore)),
		WildsInHand: countWilds(hand),
	}
	a.Phase = gamePhase(len(ownScore) + len(opponentScore))
	a.Threat = threatLevel(a.Opponent, len(opponentScore))
	a.Completions = findCompletionOpportunities(a.Own, hand)
	a.Disruptions = findDisruptionOpportunities(a.Opponent, hand)
	return a
}

// HighPriority reports whether neither side has scored the character yet.
func (a *GameAnalysis) HighPriority(ch game.Character) bool {
	return !a.Own[ch].Scored && !a.Opponent[ch].Scored
}

func scoreSet(chars []game.Character) map[game.Character]bool {
	set := make(map[game.Character]bool, len(chars))
	for _, ch := range chars {
		set[ch] = true
	}
	return set
}

// progressReport computes each character's best single stack for one side.
// Scored characters are pinned at level 3 so nothing re-targets them.
func progressReport(stacks []*game.Stack, scored map[game.Character]bool) map[game.Character]StackProgress {
	out := make(map[game.Character]StackProgress, len(game.RealCharacters))
	for _, ch := range game.RealCharacters {
		sp := StackProgress{Character: ch}
		if scored[ch] {
			sp.Level = 3
			sp.Scored = true
			out[ch] = sp
			continue
		}
		for _, s := range stacks {
			if n := s.ProgressToward(ch); n > sp.Level {
				sp.Level = n
				sp.StackID = s.ID
				sp.Pieces = s.Pieces(ch)
			}
		}
		sp.Missing = missingParts(sp.Pieces)
		out[ch] = sp
	}
	return out
}

// missingParts lists the pile positions absent from a pieces set.
func missingParts(pieces []game.BodyPart) []game.BodyPart {
	var out []game.BodyPart
	for _, p := range game.RealParts {
		present := false
		for _, have := range pieces {
			if have == p {
				present = true
				break
			}
		}
		if !present {
			out = append(out, p)
		}
	}
	return out
}

func gamePhase(completions int) GamePhase {
	switch {
	case completions < 2:
		return PhaseEarly
	case completions <= 4:
		return PhaseMid
	default:
		return PhaseLate
	}
}

func threatLevel(opp map[game.Character]StackProgress, oppScored int) ThreatLevel {
	atTwo := 0
	for _, sp := range opp {
		if !sp.Scored && sp.Level == 2 {
			atTwo++
		}
	}
	switch {
	case atTwo >= 2 || oppScored >= 3:
		return ThreatHigh
	case atTwo >= 1 || oppScored >= 2:
		return ThreatMedium
	default:
		return ThreatLow
	}
}

// findCompletionOpportunities lists own characters one satisfiable piece
// away from completing, alphabetically.
func findCompletionOpportunities(own map[game.Character]StackProgress, hand []*game.Card) []CompletionOpportunity {
	var out []CompletionOpportunity
	for _, ch := range game.RealCharacters {
		sp := own[ch]
		if sp.Scored || sp.Level != 2 || len(sp.Missing) != 1 {
			continue
		}
		card := satisfyingCard(hand, ch, sp.Missing[0])
		if card == nil {
			continue
		}
		out = append(out, CompletionOpportunity{
			Character: ch,
			StackID:   sp.StackID,
			Missing:   sp.Missing[0],
			CardID:    card.ID,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Character.String() < out[j].Character.String()
	})
	return out
}

// satisfyingCard returns a hand card able to fill the missing pile with
// the wanted character, or nil.
func satisfyingCard(hand []*game.Card, ch game.Character, missing game.BodyPart) *game.Card {
	for _, c := range hand {
		charOK := c.Character == ch || c.Character == game.CharWild
		partOK := c.Part == missing || c.Part == game.PartWild
		if charOK && partOK {
			return c
		}
	}
	return nil
}

// findDisruptionOpportunities lists blockable opponent characters in
// progress, most urgent first.
func findDisruptionOpportunities(opp map[game.Character]StackProgress, hand []*game.Card) []DisruptionOpportunity {
	var out []DisruptionOpportunity
	for _, ch := range game.RealCharacters {
		sp := opp[ch]
		if sp.Scored || sp.Level < 1 || !canBlock(hand, ch) {
			continue
		}
		urgency := UrgencyImportant
		if sp.Level >= 2 {
			urgency = UrgencyCritical
		}
		out = append(out, DisruptionOpportunity{
			Character: ch,
			StackID:   sp.StackID,
			Progress:  sp.Level,
			Urgency:   urgency,
			Pieces:    sp.Pieces,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Urgency != out[j].Urgency {
			return out[i].Urgency > out[j].Urgency
		}
		return out[i].Character.String() < out[j].Character.String()
	})
	return out
}

// canBlock reports whether any hand card could interfere with the
// character: wilds always can, and any off-character card can cover a
// piece or poison the missing pile.
func canBlock(hand []*game.Card, ch game.Character) bool {
	for _, c := range hand {
		if c.IsWild() || c.Character != ch {
			return true
		}
	}
	return false
}

func countWilds(hand []*game.Card) int {
	n := 0
	for _, c := range hand {
		if c.IsWild() {
			n++
		}
	}
	return n
}

func stackWithID(stacks []*game.Stack, id string) *game.Stack {
	for _, s := range stacks {
		if s.ID == id {
			return s
		}
	}
	return nil
}
