package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/peterkuimelis/npzr/internal/log"
)

// Config holds configuration for creating a new game engine.
type Config struct {
	Logger    log.EventLogger
	Seed      int64 // RNG seed (0 for time-based)
	NoShuffle bool  // skip deck shuffles (for deterministic tests)
	MaxTurns  int   // declare a draw after this many turns (0 = default limit)
}

// Engine owns all game state and is its single writer. Every mutation
// arrives through one of the action methods, which validate against the
// acting player's turn state before touching anything; a rejected call
// leaves the game exactly as it was.
type Engine struct {
	players [2]*Player
	deck    []*Card
	discard []*Card
	stacks  []*Stack

	turnSeat  int
	turnCount int
	maxTurns  int

	pendingMoves   int
	pendingWild    *pendingNomination
	lastPlayedWild bool

	joined int
	over   bool
	winner int
	result string

	rng       *rand.Rand
	noShuffle bool
	logger    log.EventLogger
}

// pendingNomination records a placed wild card awaiting its declared
// identity, and the pile that pins the nomination's body part.
type pendingNomination struct {
	card    *Card
	stackID string
	pile    BodyPart
}

// New creates an engine with a fresh deck and no players seated.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = 200 // safety limit
	}

	e := &Engine{
		deck:      NewDeck(),
		maxTurns:  maxTurns,
		winner:    -1,
		rng:       rand.New(rand.NewSource(seed)),
		noShuffle: cfg.NoShuffle,
		logger:    logger,
	}
	if !e.noShuffle {
		e.shuffle(e.deck)
	}
	return e
}

// AddPlayer seats a player and returns their seat number. The game starts
// as soon as the second player joins: both hands are dealt and seat 0
// takes the first turn.
func (e *Engine) AddPlayer(name string) (int, error) {
	if e.joined >= 2 {
		return -1, fmt.Errorf("game already has two players: %w", ErrIllegalState)
	}
	seat := e.joined
	e.players[seat] = newPlayer(name)
	e.joined++
	e.log(log.NewJoinEvent(e.turnCount, seat, name))

	if e.joined < 2 {
		e.enterState(seat, StateWaitingForOpponent)
		return seat, nil
	}

	for i := 0; i < InitialHandSize; i++ {
		for p := 0; p < 2; p++ {
			e.players[p].AddToHand(e.drawFromDeck())
		}
	}
	e.beginTurn(0)
	return seat, nil
}

// DrawCard draws the turn player's card for the turn. An empty deck is
// refilled from the discard pile first; when both are empty the draw is
// skipped and the turn proceeds with the cards in hand.
func (e *Engine) DrawCard(seat int) error {
	if err := e.require(seat, ActionDrawCard); err != nil {
		return err
	}
	p := e.players[seat]

	e.refillDeck()
	if card := e.drawFromDeck(); card != nil {
		p.AddToHand(card)
		e.log(log.NewDrawEvent(e.turnCount, seat, card.String()))
	} else {
		e.log(log.NewDrawSkippedEvent(e.turnCount, seat))
	}

	if p.HandCount() == 0 {
		e.endTurn(seat)
		return nil
	}
	e.enterState(seat, StatePlayCard)
	return nil
}

// PlayCard plays a hand card into a stack pile, or onto a fresh stack when
// no target stack is named. Covering an occupied pile is always legal; the
// card only has to fit the pile it lands in. A wild card pauses the turn
// for nomination and grants a follow-up play once resolved.
func (e *Engine) PlayCard(seat int, cardID string, opts PlayOptions) error {
	if err := e.require(seat, ActionPlayCard); err != nil {
		return err
	}
	card := e.players[seat].HoldsCard(cardID)
	if card == nil {
		return fmt.Errorf("card %s is not in hand: %w", ShortID(cardID), ErrCardNotFound)
	}
	target, err := e.placementTarget(card, opts)
	if err != nil {
		return err
	}

	e.players[seat].RemoveFromHand(cardID)
	if target == nil {
		target = e.newStack(seat)
	}
	target.Place(card, opts.TargetPile)
	e.lastPlayedWild = card.IsWild()
	e.log(log.NewPlayEvent(e.turnCount, seat, card.String(), ShortID(target.ID), opts.TargetPile.String()))

	if card.IsWild() {
		e.pendingWild = &pendingNomination{card: card, stackID: target.ID, pile: opts.TargetPile}
		e.enterState(seat, StateNominateWild)
		return nil
	}
	e.resolve(seat)
	return nil
}

// NominateWildCard declares the identity of the wild card just played. The
// nominated part is pinned to the pile the card landed in; the character
// is the player's choice.
func (e *Engine) NominateWildCard(seat int, nom Nomination) error {
	if err := e.require(seat, ActionNominateWild); err != nil {
		return err
	}
	pw := e.pendingWild
	if pw == nil {
		return fmt.Errorf("no wild card awaiting nomination: %w", ErrIllegalState)
	}
	if !realCharacter(nom.Character) || !validPile(nom.Part) {
		return fmt.Errorf("nomination %s names no concrete piece: %w", nom, ErrIllegalPlacement)
	}
	if nom.Part != pw.pile {
		return fmt.Errorf("nomination %s does not match the %s pile the card is in: %w", nom, pw.pile, ErrIllegalPlacement)
	}

	pw.card.Nominate(nom)
	e.pendingWild = nil
	e.log(log.NewNominateEvent(e.turnCount, seat, pw.card.String(), nom.String()))
	e.resolve(seat)
	return nil
}

// MoveCard relocates the active card of one pile to another pile it fits,
// spending one earned move. The move can complete stacks both by what it
// builds and by what it uncovers.
func (e *Engine) MoveCard(seat int, opts MoveOptions) error {
	if err := e.require(seat, ActionMoveCard); err != nil {
		return err
	}
	if !validPile(opts.FromPile) || !validPile(opts.ToPile) {
		return fmt.Errorf("move names no stack pile: %w", ErrIllegalPlacement)
	}
	src := e.stackByID(opts.FromStackID)
	if src == nil {
		return fmt.Errorf("source stack %s not found: %w", ShortID(opts.FromStackID), ErrIllegalPlacement)
	}
	top := src.Top(opts.FromPile)
	if top == nil || top.ID != opts.CardID {
		return fmt.Errorf("card %s is not the active card of the %s pile: %w", ShortID(opts.CardID), opts.FromPile, ErrCardNotFound)
	}
	if top.Part != PartWild && top.Part != opts.ToPile {
		return fmt.Errorf("%s cannot go to the %s pile: %w", top, opts.ToPile, ErrIllegalPlacement)
	}

	var dst *Stack
	if opts.ToStackID == "" {
		if src.Owner != seat {
			return fmt.Errorf("new stacks can only be split off your own stacks: %w", ErrIllegalPlacement)
		}
	} else {
		dst = e.stackByID(opts.ToStackID)
		if dst == nil {
			return fmt.Errorf("target stack %s not found: %w", ShortID(opts.ToStackID), ErrIllegalPlacement)
		}
		if dst.ID == src.ID && opts.ToPile == opts.FromPile {
			return fmt.Errorf("card is already in that pile: %w", ErrIllegalPlacement)
		}
	}

	card := src.TakeTop(opts.FromPile)
	if dst == nil {
		dst = e.newStack(seat)
	}
	dst.Place(card, opts.ToPile)
	if src.IsEmpty() {
		e.removeStack(src.ID)
	}
	e.pendingMoves--
	e.log(log.NewMoveEvent(e.turnCount, seat, card.String(), ShortID(src.ID), opts.FromPile.String(), ShortID(dst.ID), opts.ToPile.String()))
	e.resolve(seat)
	return nil
}

// resolve runs the common post-action sequence: score completed stacks,
// then route the turn to owed moves, a wild card's follow-up play, or the
// next player.
func (e *Engine) resolve(seat int) {
	e.scanCompletions()
	if e.over {
		return
	}

	if e.pendingMoves > 0 {
		if len(e.LegalMoves(seat)) == 0 {
			e.log(log.NewMoveSkippedEvent(e.turnCount, seat, e.pendingMoves))
			e.pendingMoves = 0
		} else {
			e.enterState(seat, StateMoveCard)
			return
		}
	}

	if e.lastPlayedWild {
		e.lastPlayedWild = false
		if e.players[seat].HandCount() > 0 {
			e.enterState(seat, StatePlayCard)
			return
		}
	}
	e.endTurn(seat)
}

// scanCompletions scores and removes every complete stack. The stack owner
// scores the character; the acting player earns one move per completed
// stack either way.
func (e *Engine) scanCompletions() {
	var done []*Stack
	for _, s := range e.stacks {
		if s.IsComplete() {
			done = append(done, s)
		}
	}
	for _, s := range done {
		ch, _ := s.CompletionCharacter()
		owner := s.Owner
		scored := e.players[owner].AddScore(ch)
		e.discardStack(s)
		e.pendingMoves++
		e.log(log.NewCompleteEvent(e.turnCount, owner, ch.String(), ShortID(s.ID), scored))
		if e.players[owner].HasWon() {
			e.declareWinner(owner)
			return
		}
	}
}

func (e *Engine) beginTurn(seat int) {
	if e.turnCount >= e.maxTurns {
		e.endInDraw()
		return
	}
	e.turnCount++
	e.turnSeat = seat
	e.pendingMoves = 0
	e.pendingWild = nil
	e.lastPlayedWild = false
	e.log(log.NewTurnEvent(e.turnCount, seat))
	e.enterState(seat, StateDrawCard)
	e.enterState(e.Opponent(seat), StateWaitingForOpponent)
}

func (e *Engine) endTurn(seat int) {
	e.log(log.NewTurnEndEvent(e.turnCount, seat))
	e.beginTurn(e.Opponent(seat))
}

func (e *Engine) declareWinner(seat int) {
	e.over = true
	e.winner = seat
	e.result = fmt.Sprintf("P%d (%s) wins with all four characters", seat+1, e.players[seat].Name)
	e.log(log.NewWinEvent(e.turnCount, seat, "all four characters scored"))
	e.enterState(0, StateGameOver)
	e.enterState(1, StateGameOver)
}

func (e *Engine) endInDraw() {
	e.over = true
	e.winner = -1
	e.result = fmt.Sprintf("Turn limit reached (%d turns)", e.maxTurns)
	e.log(log.NewTurnLimitEvent(e.turnCount, e.maxTurns))
	e.enterState(0, StateGameOver)
	e.enterState(1, StateGameOver)
}

// enterState is the single place a player's turn state is written.
func (e *Engine) enterState(seat int, kind StateKind) {
	if e.players[seat] == nil {
		return
	}
	var st PlayerState
	switch kind {
	case StateWaitingForOpponent:
		st = PlayerState{Kind: kind, Message: "Waiting for opponent"}
	case StateDrawCard:
		st = PlayerState{Kind: kind, Message: "Draw a card", Actions: []ActionType{ActionDrawCard}}
	case StatePlayCard:
		st = PlayerState{Kind: kind, Message: "Play a card from your hand", Actions: []ActionType{ActionPlayCard}}
	case StateNominateWild:
		st = PlayerState{Kind: kind, Message: "Nominate what the wild card counts as", Actions: []ActionType{ActionNominateWild}}
	case StateMoveCard:
		st = PlayerState{Kind: kind, Message: fmt.Sprintf("Move a top card (%d earned)", e.pendingMoves), Actions: []ActionType{ActionMoveCard}}
	case StateGameOver:
		st = PlayerState{Kind: kind, Message: e.result}
	}
	e.players[seat].state = st
}

// require rejects an action unless the seat exists, the game is live, and
// the seat's current state allows it.
func (e *Engine) require(seat int, a ActionType) error {
	if seat < 0 || seat > 1 || e.players[seat] == nil {
		return fmt.Errorf("seat %d is not in the game: %w", seat, ErrIllegalState)
	}
	if e.over {
		return fmt.Errorf("game is over: %w", ErrIllegalState)
	}
	if st := e.players[seat].State(); !st.Allows(a) {
		return fmt.Errorf("%s not allowed in state %s: %w", a, st.Kind, ErrIllegalState)
	}
	return nil
}

// placementTarget validates a play's destination. A nil stack with a nil
// error means a fresh stack.
func (e *Engine) placementTarget(card *Card, opts PlayOptions) (*Stack, error) {
	if !validPile(opts.TargetPile) {
		return nil, fmt.Errorf("%s is not a stack pile: %w", opts.TargetPile, ErrIllegalPlacement)
	}
	if card.Part != PartWild && card.Part != opts.TargetPile {
		return nil, fmt.Errorf("%s cannot go to the %s pile: %w", card, opts.TargetPile, ErrIllegalPlacement)
	}
	if opts.TargetStackID == "" {
		return nil, nil
	}
	s := e.stackByID(opts.TargetStackID)
	if s == nil {
		return nil, fmt.Errorf("stack %s not found: %w", ShortID(opts.TargetStackID), ErrIllegalPlacement)
	}
	return s, nil
}

func (e *Engine) drawFromDeck() *Card {
	if len(e.deck) == 0 {
		return nil
	}
	card := e.deck[len(e.deck)-1]
	e.deck = e.deck[:len(e.deck)-1]
	return card
}

// refillDeck rebuilds the deck from the discard pile when the deck runs
// out. Nominations were already cleared when the cards were discarded.
func (e *Engine) refillDeck() {
	if len(e.deck) > 0 || len(e.discard) == 0 {
		return
	}
	e.deck = e.discard
	e.discard = nil
	if !e.noShuffle {
		e.shuffle(e.deck)
	}
	e.log(log.NewDeckRefillEvent(e.turnCount, len(e.deck)))
}

// discardStack sends every card of a stack to the discard pile and removes
// the stack from the table.
func (e *Engine) discardStack(s *Stack) {
	for _, c := range s.AllCards() {
		c.ClearNomination()
		e.discard = append(e.discard, c)
	}
	e.removeStack(s.ID)
}

func (e *Engine) newStack(owner int) *Stack {
	s := NewStack(uuid.NewString(), owner)
	e.stacks = append(e.stacks, s)
	return s
}

func (e *Engine) stackByID(id string) *Stack {
	for _, s := range e.stacks {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (e *Engine) removeStack(id string) {
	for i, s := range e.stacks {
		if s.ID == id {
			e.stacks = append(e.stacks[:i], e.stacks[i+1:]...)
			return
		}
	}
}

func (e *Engine) shuffle(cards []*Card) {
	e.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

func (e *Engine) log(ev log.GameEvent) {
	e.logger.Log(ev)
}

func validPile(p BodyPart) bool {
	return p == PartHead || p == PartTorso || p == PartLegs
}

func realCharacter(ch Character) bool {
	return ch == CharNinja || ch == CharPirate || ch == CharZombie || ch == CharRobot
}

// --- Accessors ---

// State returns the current turn state of a seat.
func (e *Engine) State(seat int) PlayerState {
	if seat < 0 || seat > 1 || e.players[seat] == nil {
		return PlayerState{Kind: StateWaitingForOpponent, Message: "Waiting for players"}
	}
	return e.players[seat].State()
}

// Player returns the seated player, or nil.
func (e *Engine) Player(seat int) *Player {
	if seat < 0 || seat > 1 {
		return nil
	}
	return e.players[seat]
}

// Hand returns a copy of the seat's hand.
func (e *Engine) Hand(seat int) []*Card {
	if seat < 0 || seat > 1 || e.players[seat] == nil {
		return nil
	}
	hand := e.players[seat].Hand
	out := make([]*Card, len(hand))
	copy(out, hand)
	return out
}

// Stacks returns every stack on the table.
func (e *Engine) Stacks() []*Stack {
	out := make([]*Stack, len(e.stacks))
	copy(out, e.stacks)
	return out
}

// StacksOf returns the stacks owned by a seat.
func (e *Engine) StacksOf(seat int) []*Stack {
	var out []*Stack
	for _, s := range e.stacks {
		if s.Owner == seat {
			out = append(out, s)
		}
	}
	return out
}

// Score returns the characters a seat has scored, in deck order.
func (e *Engine) Score(seat int) []Character {
	if seat < 0 || seat > 1 || e.players[seat] == nil {
		return nil
	}
	return e.players[seat].ScoredCharacters()
}

// PendingWildCard returns the wild card awaiting nomination, the stack it
// sits on, and its pile. The card is nil when no nomination is pending.
func (e *Engine) PendingWildCard() (*Card, string, BodyPart) {
	if e.pendingWild == nil {
		return nil, "", 0
	}
	return e.pendingWild.card, e.pendingWild.stackID, e.pendingWild.pile
}

// DeckCount returns the number of cards left in the deck.
func (e *Engine) DeckCount() int { return len(e.deck) }

// DiscardCount returns the number of cards in the discard pile.
func (e *Engine) DiscardCount() int { return len(e.discard) }

// Turn returns the current turn number, starting at 1.
func (e *Engine) Turn() int { return e.turnCount }

// TurnSeat returns the seat whose turn it is.
func (e *Engine) TurnSeat() int { return e.turnSeat }

// PendingMoves returns how many earned moves remain to be taken.
func (e *Engine) PendingMoves() int { return e.pendingMoves }

// IsComplete reports whether the game has ended.
func (e *Engine) IsComplete() bool { return e.over }

// Winner returns the winning seat, or -1 while the game is live or drawn.
func (e *Engine) Winner() int { return e.winner }

// Result returns a human-readable outcome, empty while the game is live.
func (e *Engine) Result() string { return e.result }

// Opponent returns the other seat.
func (e *Engine) Opponent(seat int) int { return 1 - seat }
