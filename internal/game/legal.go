package game

// PlayChoice is one legal (card, placement) pair for a PlayCard action.
type PlayChoice struct {
	CardID string
	Opts   PlayOptions
}

// LegalPlays enumerates every placement the seat could make right now: each
// hand card crossed with each pile its literal part allows, on every existing
// stack plus a fresh stack. Covering an occupied pile is always legal.
func (e *Engine) LegalPlays(seat int) []PlayChoice {
	if seat < 0 || seat > 1 || e.players[seat] == nil {
		return nil
	}
	var out []PlayChoice
	for _, c := range e.players[seat].Hand {
		for _, pile := range c.PlayablePiles() {
			out = append(out, PlayChoice{
				CardID: c.ID,
				Opts:   PlayOptions{TargetPile: pile},
			})
			for _, s := range e.stacks {
				out = append(out, PlayChoice{
					CardID: c.ID,
					Opts:   PlayOptions{TargetStackID: s.ID, TargetPile: pile},
				})
			}
		}
	}
	return out
}

// LegalNominations enumerates the nominations available for the pending wild
// card. The part is pinned to the pile the wild was played into; the
// character ranges over all four.
func (e *Engine) LegalNominations(seat int) []Nomination {
	if e.pendingWild == nil || seat != e.turnSeat {
		return nil
	}
	out := make([]Nomination, 0, len(RealCharacters))
	for _, ch := range RealCharacters {
		out = append(out, Nomination{Character: ch, Part: e.pendingWild.pile})
	}
	return out
}

// LegalMoves enumerates every relocation of a top card to a compatible pile.
// Destinations cover every other (stack, pile) slot the card's literal part
// fits, plus a fresh stack when the source stack belongs to the acting seat.
func (e *Engine) LegalMoves(seat int) []MoveOptions {
	if seat < 0 || seat > 1 || e.players[seat] == nil {
		return nil
	}
	var out []MoveOptions
	for _, src := range e.stacks {
		for _, fromPile := range RealParts {
			c := src.Top(fromPile)
			if c == nil {
				continue
			}
			piles := RealParts[:]
			if c.Part != PartWild {
				piles = []BodyPart{c.Part}
			}
			for _, toPile := range piles {
				for _, dst := range e.stacks {
					if dst.ID == src.ID && toPile == fromPile {
						continue
					}
					out = append(out, MoveOptions{
						CardID:      c.ID,
						FromStackID: src.ID,
						FromPile:    fromPile,
						ToStackID:   dst.ID,
						ToPile:      toPile,
					})
				}
				if src.Owner == seat {
					out = append(out, MoveOptions{
						CardID:      c.ID,
						FromStackID: src.ID,
						FromPile:    fromPile,
						ToPile:      toPile,
					})
				}
			}
		}
	}
	return out
}
