package game

// Stack is a player-owned character under construction: one pile per body
// part, each an ordered sequence of cards where only the top card is active.
// Lower cards are buried history from covering plays and take effect again
// only when the card above them moves away.
type Stack struct {
	ID    string
	Owner int

	piles [3][]*Card
}

// NewStack creates an empty stack for the given owner.
func NewStack(id string, owner int) *Stack {
	return &Stack{ID: id, Owner: owner}
}

// Top returns the active card of the given pile, or nil if the pile is
// empty.
func (s *Stack) Top(p BodyPart) *Card {
	pile := s.piles[p]
	if len(pile) == 0 {
		return nil
	}
	return pile[len(pile)-1]
}

// Place puts a card on top of the given pile, covering whatever is there.
// The caller validates that the card's printed part allows the pile.
func (s *Stack) Place(card *Card, p BodyPart) {
	s.piles[p] = append(s.piles[p], card)
}

// TakeTop removes and returns the active card of the pile, or nil if empty.
// Relocation transfers ownership of the card, so any nomination it carried
// is cleared here and nowhere else.
func (s *Stack) TakeTop(p BodyPart) *Card {
	pile := s.piles[p]
	if len(pile) == 0 {
		return nil
	}
	card := pile[len(pile)-1]
	s.piles[p] = pile[:len(pile)-1]
	card.ClearNomination()
	return card
}

// Cards returns the pile's cards bottom to top.
func (s *Stack) Cards(p BodyPart) []*Card {
	pile := s.piles[p]
	out := make([]*Card, len(pile))
	copy(out, pile)
	return out
}

// PileSize returns the number of cards in one pile.
func (s *Stack) PileSize(p BodyPart) int {
	return len(s.piles[p])
}

// AllCards returns every card in the stack, pile by pile, bottom to top.
func (s *Stack) AllCards() []*Card {
	var out []*Card
	for _, p := range RealParts {
		out = append(out, s.piles[p]...)
	}
	return out
}

// CardCount returns the total number of cards across all piles.
func (s *Stack) CardCount() int {
	n := 0
	for _, p := range RealParts {
		n += len(s.piles[p])
	}
	return n
}

// IsEmpty reports whether every pile is empty.
func (s *Stack) IsEmpty() bool {
	return s.CardCount() == 0
}

// CompletionCharacter returns the character a complete stack scores: all
// three piles occupied and their active cards' effective characters equal
// and not wild.
func (s *Stack) CompletionCharacter() (Character, bool) {
	var ch Character
	for i, p := range RealParts {
		top := s.Top(p)
		if top == nil {
			return 0, false
		}
		ec := top.EffectiveCharacter()
		if ec == CharWild {
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

// IsComplete reports whether the completion predicate holds.
func (s *Stack) IsComplete() bool {
	_, ok := s.CompletionCharacter()
	return ok
}

// ProgressToward counts the piles whose active card has the given effective
// character (0 to 3).
func (s *Stack) ProgressToward(ch Character) int {
	n := 0
	for _, p := range RealParts {
		if top := s.Top(p); top != nil && top.EffectiveCharacter() == ch {
			n++
		}
	}
	return n
}

// Pieces returns the pile positions whose active card has the given
// effective character.
func (s *Stack) Pieces(ch Character) []BodyPart {
	var out []BodyPart
	for _, p := range RealParts {
		if top := s.Top(p); top != nil && top.EffectiveCharacter() == ch {
			out = append(out, p)
		}
	}
	return out
}

// DominantCharacter returns the most frequent effective character among the
// active cards. Ties break in RealCharacters order; ok is false when no
// active card has a non-wild effective character.
func (s *Stack) DominantCharacter() (Character, bool) {
	var counts [4]int
	for _, p := range RealParts {
		if top := s.Top(p); top != nil {
			if ec := top.EffectiveCharacter(); ec != CharWild {
				counts[ec]++
			}
		}
	}
	best, bestN := CharNinja, 0
	for _, ch := range RealCharacters {
		if counts[ch] > bestN {
			best, bestN = ch, counts[ch]
		}
	}
	if bestN == 0 {
		return 0, false
	}
	return best, true
}

// Progress returns the dominant character and how many piles' active cards
// match it (0 when the stack has no non-wild active card).
func (s *Stack) Progress() (Character, int) {
	ch, ok := s.DominantCharacter()
	if !ok {
		return 0, 0
	}
	return ch, s.ProgressToward(ch)
}
