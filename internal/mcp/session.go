package mcp

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"

	"github.com/peterkuimelis/npzr/internal/ai"
	"github.com/peterkuimelis/npzr/internal/game"
	"github.com/peterkuimelis/npzr/internal/log"
)

// aiActionCap bounds one advance of the built-in opponent. A full turn is
// a handful of actions; anything past the cap is a stuck engine.
const aiActionCap = 100

// GameSession holds the state of a single MCP game session: the engine,
// the built-in opponent, and a cursor into the event log so each tool
// call reports only what happened since the last one.
type GameSession struct {
	mu        sync.Mutex
	engine    *game.Engine
	logger    *log.MemoryLogger
	opponent  *ai.AIPlayer
	agentSeat int
	lastSeq   int
}

// NewGameSession builds an engine, seats the agent and an AI opponent of
// the given difficulty, and deals the opening hands.
func NewGameSession(difficulty ai.Difficulty, agentSeat int, seed int64) (*GameSession, error) {
	logger := log.NewMemoryLogger()
	engine := game.New(game.Config{Logger: logger, Seed: seed})

	sess := &GameSession{
		engine:    engine,
		logger:    logger,
		agentSeat: agentSeat,
	}

	join := func(seat int) error {
		var err error
		if seat == agentSeat {
			_, err = engine.AddPlayer("Agent")
		} else {
			_, err = engine.AddPlayer(fmt.Sprintf("AI (%s)", difficulty))
		}
		return err
	}
	if err := join(0); err != nil {
		return nil, err
	}
	if err := join(1); err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed + 1))
	}
	opponent, err := ai.NewPlayer(ai.PlayerConfig{
		Engine:     engine,
		Seat:       engine.Opponent(agentSeat),
		Difficulty: difficulty,
		Rand:       rng,
	})
	if err != nil {
		return nil, err
	}
	sess.opponent = opponent
	return sess, nil
}

// advance lets the built-in opponent act until the turn comes back to the
// agent or the game ends.
func (s *GameSession) advance() error {
	for i := 0; i < aiActionCap; i++ {
		if s.engine.IsComplete() || s.engine.TurnSeat() == s.agentSeat {
			return nil
		}
		if err := s.opponent.MakeMove(); err != nil {
			return fmt.Errorf("opponent action: %w", err)
		}
	}
	return fmt.Errorf("opponent did not yield the turn after %d actions", aiActionCap)
}

// drainEvents returns the log entries added since the previous drain.
func (s *GameSession) drainEvents() []EventView {
	events := s.logger.Events()
	out := make([]EventView, 0, len(events))
	for _, e := range events {
		if e.Seq <= s.lastSeq {
			continue
		}
		s.lastSeq = e.Seq
		out = append(out, EventView{
			Turn:    e.Turn,
			Player:  s.seatLabel(e.Player),
			Type:    e.Type.String(),
			Details: e.Details,
		})
	}
	return out
}

// respond builds the standard tool response: fresh events, the agent's
// view of the state, and the outcome when the game is over.
func (s *GameSession) respond() *ToolResponse {
	resp := &ToolResponse{
		Events: s.drainEvents(),
		State:  s.buildState(),
	}
	if s.engine.IsComplete() {
		resp.GameOver = true
		resp.Winner = s.seatLabel(s.engine.Winner())
		resp.Result = s.engine.Result()
	}
	return resp
}

func (s *GameSession) buildState() *StateView {
	e := s.engine
	seat := s.agentSeat
	state := e.State(seat)

	sv := &StateView{
		You:          s.buildPlayer(seat, true),
		Opponent:     s.buildPlayer(e.Opponent(seat), false),
		Turn:         e.Turn(),
		DeckCount:    e.DeckCount(),
		DiscardCount: e.DiscardCount(),
		IsYourTurn:   !e.IsComplete() && e.TurnSeat() == seat,
		Phase:        state.Kind.String(),
		Message:      state.Message,
		MovesOwed:    e.PendingMoves(),
	}
	for _, a := range state.Actions {
		sv.Actions = append(sv.Actions, a.String())
	}
	if card, stackID, pile := e.PendingWildCard(); card != nil {
		sv.PendingWild = &PendingWild{
			CardID:  card.ID,
			Card:    card.String(),
			StackID: stackID,
			Pile:    pile.String(),
		}
	}
	return sv
}

func (s *GameSession) buildPlayer(seat int, you bool) PlayerView {
	e := s.engine
	pv := PlayerView{
		Name:      e.Player(seat).Name,
		HandCount: e.Player(seat).HandCount(),
		Stacks:    []StackView{},
		Score:     []string{},
	}
	if you {
		for _, c := range e.Hand(seat) {
			pv.Hand = append(pv.Hand, CardView{ID: c.ID, Name: c.String(), Wild: c.IsWild()})
		}
	}
	for _, st := range e.StacksOf(seat) {
		pv.Stacks = append(pv.Stacks, s.buildStack(st))
	}
	for _, ch := range e.Score(seat) {
		pv.Score = append(pv.Score, ch.String())
	}
	return pv
}

func (s *GameSession) buildStack(st *game.Stack) StackView {
	view := StackView{
		ID:    st.ID,
		Owner: s.seatLabel(st.Owner),
	}
	if ch, n := st.Progress(); n > 0 {
		view.Progress = fmt.Sprintf("%s %d/3", ch, n)
	}
	view.Head = buildPile(st, game.PartHead)
	view.Torso = buildPile(st, game.PartTorso)
	view.Legs = buildPile(st, game.PartLegs)
	return view
}

func buildPile(st *game.Stack, p game.BodyPart) *PileView {
	top := st.Top(p)
	if top == nil {
		return nil
	}
	return &PileView{
		Top:    top.String(),
		TopID:  top.ID,
		Buried: st.PileSize(p) - 1,
	}
}

// seatLabel names a seat for the agent: "you", "opponent", or "" for
// events with no actor.
func (s *GameSession) seatLabel(seat int) string {
	switch seat {
	case s.agentSeat:
		return "you"
	case s.engine.Opponent(s.agentSeat):
		return "opponent"
	default:
		return ""
	}
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
