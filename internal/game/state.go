package game

// Player holds one seat's hand, score set, and turn state.
type Player struct {
	Name string
	Hand []*Card

	scored map[Character]bool
	state  PlayerState
}

func newPlayer(name string) *Player {
	return &Player{
		Name:   name,
		scored: make(map[Character]bool),
	}
}

// State returns the player's current turn state.
func (p *Player) State() PlayerState {
	return p.state
}

// HandCount returns the number of cards in hand.
func (p *Player) HandCount() int {
	return len(p.Hand)
}

// HoldsCard returns the hand card with the given ID, or nil.
func (p *Player) HoldsCard(id string) *Card {
	for _, c := range p.Hand {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// AddToHand appends a card to the hand.
func (p *Player) AddToHand(c *Card) {
	if c != nil {
		p.Hand = append(p.Hand, c)
	}
}

// RemoveFromHand removes and returns the card with the given ID, or nil.
func (p *Player) RemoveFromHand(id string) *Card {
	for i, c := range p.Hand {
		if c.ID == id {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return c
		}
	}
	return nil
}

// WildsInHand counts the wild cards currently held.
func (p *Player) WildsInHand() int {
	n := 0
	for _, c := range p.Hand {
		if c.IsWild() {
			n++
		}
	}
	return n
}

// AddScore records a completed character. Scoring is a set operation: the
// return value is false when the character was already scored.
func (p *Player) AddScore(ch Character) bool {
	if p.scored[ch] {
		return false
	}
	p.scored[ch] = true
	return true
}

// HasScored reports whether the character is already in the score set.
func (p *Player) HasScored(ch Character) bool {
	return p.scored[ch]
}

// ScoredCharacters returns the score set in deck order.
func (p *Player) ScoredCharacters() []Character {
	var out []Character
	for _, ch := range RealCharacters {
		if p.scored[ch] {
			out = append(out, ch)
		}
	}
	return out
}

// ScoreCount returns the size of the score set.
func (p *Player) ScoreCount() int {
	return len(p.scored)
}

// HasWon reports whether all four characters are scored.
func (p *Player) HasWon() bool {
	return len(p.scored) == len(RealCharacters)
}
