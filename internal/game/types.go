package game

import (
	"fmt"
	"strings"
)

// --- Enums ---

type Character int

const (
	CharNinja Character = iota
	CharPirate
	CharZombie
	CharRobot
	CharWild
)

func (c Character) String() string {
	switch c {
	case CharNinja:
		return "Ninja"
	case CharPirate:
		return "Pirate"
	case CharZombie:
		return "Zombie"
	case CharRobot:
		return "Robot"
	case CharWild:
		return "Wild"
	default:
		return "Unknown"
	}
}

// RealCharacters lists the four scorable characters in deck order.
var RealCharacters = [4]Character{CharNinja, CharPirate, CharZombie, CharRobot}

// ParseCharacter resolves a case-insensitive character name.
func ParseCharacter(s string) (Character, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ninja":
		return CharNinja, nil
	case "pirate":
		return CharPirate, nil
	case "zombie":
		return CharZombie, nil
	case "robot":
		return CharRobot, nil
	case "wild":
		return CharWild, nil
	default:
		return 0, fmt.Errorf("unknown character %q", s)
	}
}

type BodyPart int

const (
	PartHead BodyPart = iota
	PartTorso
	PartLegs
	PartWild
)

func (p BodyPart) String() string {
	switch p {
	case PartHead:
		return "Head"
	case PartTorso:
		return "Torso"
	case PartLegs:
		return "Legs"
	case PartWild:
		return "Wild"
	default:
		return "Unknown"
	}
}

// RealParts lists the three pile positions in stack order.
var RealParts = [3]BodyPart{PartHead, PartTorso, PartLegs}

// ParseBodyPart resolves a case-insensitive body part name.
func ParseBodyPart(s string) (BodyPart, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "head":
		return PartHead, nil
	case "torso":
		return PartTorso, nil
	case "legs":
		return PartLegs, nil
	case "wild":
		return PartWild, nil
	default:
		return 0, fmt.Errorf("unknown body part %q", s)
	}
}

// CardKind classifies a card by which printed fields are wild.
type CardKind int

const (
	KindRegular CardKind = iota
	KindCharacterWild // fixed character, wild part
	KindPositionWild  // wild character, fixed part
	KindUniversalWild // both wild
)

func (k CardKind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindCharacterWild:
		return "character-wild"
	case KindPositionWild:
		return "position-wild"
	case KindUniversalWild:
		return "universal-wild"
	default:
		return "unknown"
	}
}

// StateKind is the turn state machine position of one player.
type StateKind int

const (
	StateWaitingForOpponent StateKind = iota
	StateDrawCard
	StatePlayCard
	StateNominateWild
	StateMoveCard
	StateGameOver
)

func (s StateKind) String() string {
	switch s {
	case StateWaitingForOpponent:
		return "WaitingForOpponent"
	case StateDrawCard:
		return "DrawCard"
	case StatePlayCard:
		return "PlayCard"
	case StateNominateWild:
		return "NominateWild"
	case StateMoveCard:
		return "MoveCard"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// --- Action types ---

type ActionType int

const (
	ActionDrawCard ActionType = iota
	ActionPlayCard
	ActionNominateWild
	ActionMoveCard
)

func (a ActionType) String() string {
	switch a {
	case ActionDrawCard:
		return "DrawCard"
	case ActionPlayCard:
		return "PlayCard"
	case ActionNominateWild:
		return "NominateWild"
	case ActionMoveCard:
		return "MoveCard"
	default:
		return "Unknown"
	}
}

// PlayerState describes what a player may legally do next. Only the engine
// constructs these; the Actions set is authoritative for callers.
type PlayerState struct {
	Kind    StateKind
	Message string
	Actions []ActionType
}

// Allows reports whether the given action is currently legal.
func (ps PlayerState) Allows(a ActionType) bool {
	for _, allowed := range ps.Actions {
		if allowed == a {
			return true
		}
	}
	return false
}

// Nomination is the (character, body part) a placed wild card is declared to
// represent.
type Nomination struct {
	Character Character
	Part      BodyPart
}

func (n Nomination) String() string {
	return fmt.Sprintf("%s %s", n.Character, n.Part)
}

// PlayOptions selects where a hand card is placed. An empty TargetStackID
// creates a new stack owned by the acting player.
type PlayOptions struct {
	TargetStackID string
	TargetPile    BodyPart
}

// MoveOptions selects a board-to-board move of one active card. An empty
// ToStackID creates a new stack owned by the mover.
type MoveOptions struct {
	CardID      string
	FromStackID string
	FromPile    BodyPart
	ToStackID   string
	ToPile      BodyPart
}

// ShortID abbreviates a card or stack ID for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
