package game

import "fmt"

// Card is a single NPZR card. Character and Part are the printed fields and
// never change. Nomination is set while a placed wild card holds a declared
// identity and is cleared whenever the card is relocated.
type Card struct {
	ID         string
	Character  Character
	Part       BodyPart
	Nomination *Nomination
}

// IsWild reports whether either printed field is wild.
func (c *Card) IsWild() bool {
	return c.Character == CharWild || c.Part == PartWild
}

// Kind classifies the card into the four sub-kinds.
func (c *Card) Kind() CardKind {
	switch {
	case c.Character == CharWild && c.Part == PartWild:
		return KindUniversalWild
	case c.Part == PartWild:
		return KindCharacterWild
	case c.Character == CharWild:
		return KindPositionWild
	default:
		return KindRegular
	}
}

// EffectiveCharacter is the nominated character if one is set, else the
// printed one.
func (c *Card) EffectiveCharacter() Character {
	if c.Nomination != nil {
		return c.Nomination.Character
	}
	return c.Character
}

// EffectivePart is the nominated body part if one is set, else the printed
// one.
func (c *Card) EffectivePart() BodyPart {
	if c.Nomination != nil {
		return c.Nomination.Part
	}
	return c.Part
}

// Nominate declares the wild card's identity. Validity is the engine's job.
func (c *Card) Nominate(n Nomination) {
	nom := n
	c.Nomination = &nom
}

// ClearNomination resets the card to its printed identity.
func (c *Card) ClearNomination() {
	c.Nomination = nil
}

// PlayablePiles returns the pile positions the card's printed part allows.
func (c *Card) PlayablePiles() []BodyPart {
	if c.Part == PartWild {
		return RealParts[:]
	}
	return []BodyPart{c.Part}
}

func (c *Card) String() string {
	var base string
	switch c.Kind() {
	case KindRegular:
		base = fmt.Sprintf("%s %s", c.Character, c.Part)
	case KindCharacterWild:
		base = fmt.Sprintf("%s Wild", c.Character)
	case KindPositionWild:
		base = fmt.Sprintf("Wild %s", c.Part)
	default:
		base = "Universal Wild"
	}
	if c.Nomination != nil {
		return fmt.Sprintf("%s (as %s)", base, c.Nomination)
	}
	return base
}
