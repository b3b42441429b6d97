package mcp

// View types for the JSON returned by MCP tools. Everything is built
// from the agent's perspective.

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Events   []EventView `json:"events"`
	State    *StateView  `json:"state,omitempty"`
	GameOver bool        `json:"game_over"`
	Winner   string      `json:"winner,omitempty"`
	Result   string      `json:"result,omitempty"`
}

// EventView is a simplified game event.
type EventView struct {
	Turn    int    `json:"turn"`
	Player  string `json:"player,omitempty"`
	Type    string `json:"type"`
	Details string `json:"details"`
}

// StateView is the game state from the agent's perspective.
type StateView struct {
	You          PlayerView   `json:"you"`
	Opponent     PlayerView   `json:"opponent"`
	Turn         int          `json:"turn"`
	DeckCount    int          `json:"deck_count"`
	DiscardCount int          `json:"discard_count"`
	IsYourTurn   bool         `json:"is_your_turn"`
	Phase        string       `json:"phase"`
	Message      string       `json:"message"`
	Actions      []string     `json:"actions,omitempty"`
	PendingWild  *PendingWild `json:"pending_wild,omitempty"`
	MovesOwed    int          `json:"moves_owed,omitempty"`
}

// PlayerView shows one side of the table.
type PlayerView struct {
	Name      string      `json:"name"`
	HandCount int         `json:"hand_count"`
	Hand      []CardView  `json:"hand,omitempty"` // only for "you"
	Stacks    []StackView `json:"stacks"`
	Score     []string    `json:"score"`
}

// CardView describes one card in the agent's hand.
type CardView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Wild bool   `json:"wild,omitempty"`
}

// StackView describes one stack on the table.
type StackView struct {
	ID       string    `json:"id"`
	Owner    string    `json:"owner"`
	Head     *PileView `json:"head,omitempty"`
	Torso    *PileView `json:"torso,omitempty"`
	Legs     *PileView `json:"legs,omitempty"`
	Progress string    `json:"progress,omitempty"`
}

// PileView describes one pile of a stack: the active card and how many
// lie buried beneath it.
type PileView struct {
	Top    string `json:"top"`
	TopID  string `json:"top_id"`
	Buried int    `json:"buried,omitempty"`
}

// PendingWild describes a placed wild card awaiting nomination.
type PendingWild struct {
	CardID  string `json:"card_id"`
	Card    string `json:"card"`
	StackID string `json:"stack_id"`
	Pile    string `json:"pile"`
}
