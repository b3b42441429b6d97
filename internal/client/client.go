// Package client is the per-seat facade over a game engine. A Client
// binds one seat at join time and forwards actions and reads for that
// seat only; all legality checks stay in the engine.
package client

import (
	"fmt"

	"github.com/peterkuimelis/npzr/internal/game"
)

// Client is one player's handle on a shared engine.
type Client struct {
	engine *game.Engine
	seat   int
	name   string
}

// Join seats a new player on the engine. The second join deals hands and
// starts the first turn.
func Join(e *game.Engine, name string) (*Client, error) {
	seat, err := e.AddPlayer(name)
	if err != nil {
		return nil, err
	}
	return &Client{engine: e, seat: seat, name: name}, nil
}

// Name returns the name the client joined with.
func (c *Client) Name() string { return c.name }

// Seat returns the seat index the client occupies.
func (c *Client) Seat() int { return c.seat }

// DrawCard draws for this seat.
func (c *Client) DrawCard() error {
	return c.engine.DrawCard(c.seat)
}

// PlayCard plays a hand card for this seat.
func (c *Client) PlayCard(cardID string, opts game.PlayOptions) error {
	return c.engine.PlayCard(c.seat, cardID, opts)
}

// NominateWildCard declares what the named wild card counts as. The card
// must be the one awaiting nomination.
func (c *Client) NominateWildCard(cardID string, nom game.Nomination) error {
	pending, _, _ := c.engine.PendingWildCard()
	if pending == nil || pending.ID != cardID {
		return fmt.Errorf("card %s is not awaiting nomination: %w", game.ShortID(cardID), game.ErrCardNotFound)
	}
	return c.engine.NominateWildCard(c.seat, nom)
}

// MoveCard spends an earned move for this seat.
func (c *Client) MoveCard(opts game.MoveOptions) error {
	return c.engine.MoveCard(c.seat, opts)
}

// State returns this seat's current state.
func (c *Client) State() game.PlayerState {
	return c.engine.State(c.seat)
}

// Hand returns this seat's hand.
func (c *Client) Hand() []*game.Card {
	return c.engine.Hand(c.seat)
}

// MyStacks returns the stacks this seat owns.
func (c *Client) MyStacks() []*game.Stack {
	return c.engine.StacksOf(c.seat)
}

// OpponentStacks returns the stacks the other seat owns.
func (c *Client) OpponentStacks() []*game.Stack {
	return c.engine.StacksOf(c.engine.Opponent(c.seat))
}

// MyScore returns the characters this seat has scored.
func (c *Client) MyScore() []game.Character {
	return c.engine.Score(c.seat)
}

// OpponentScore returns the characters the other seat has scored.
func (c *Client) OpponentScore() []game.Character {
	return c.engine.Score(c.engine.Opponent(c.seat))
}

// IsMyTurn reports whether the client's seat holds the turn.
func (c *Client) IsMyTurn() bool {
	return !c.engine.IsComplete() && c.engine.TurnSeat() == c.seat
}

// HasWon reports whether this seat won.
func (c *Client) HasWon() bool {
	return c.engine.IsComplete() && c.engine.Winner() == c.seat
}

// IsGameComplete reports whether the game has ended.
func (c *Client) IsGameComplete() bool {
	return c.engine.IsComplete()
}

// Winner returns the winning seat, or -1 for a draw or unfinished game.
func (c *Client) Winner() int {
	return c.engine.Winner()
}
