package game

import "github.com/google/uuid"

// Deck composition: 36 regular cards (4 characters x 3 parts x 3 copies)
// plus 8 wilds (one character-wild per character, one position-wild per
// part, one universal wild).
const (
	DeckSize        = 44
	RegularCopies   = 3
	InitialHandSize = 5
)

// NewDeck builds the standard 44-card deck in a fixed order. The engine
// shuffles it unless configured not to.
func NewDeck() []*Card {
	deck := make([]*Card, 0, DeckSize)
	for _, ch := range RealCharacters {
		for _, p := range RealParts {
			for i := 0; i < RegularCopies; i++ {
				deck = append(deck, &Card{ID: uuid.NewString(), Character: ch, Part: p})
			}
		}
	}
	for _, ch := range RealCharacters {
		deck = append(deck, &Card{ID: uuid.NewString(), Character: ch, Part: PartWild})
	}
	for _, p := range RealParts {
		deck = append(deck, &Card{ID: uuid.NewString(), Character: CharWild, Part: p})
	}
	deck = append(deck, &Card{ID: uuid.NewString(), Character: CharWild, Part: PartWild})
	return deck
}
