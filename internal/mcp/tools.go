package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/npzr/internal/ai"
	"github.com/peterkuimelis/npzr/internal/game"
)

// activeSession is the singleton game session (one per stdio process).
var activeSession *GameSession

// profilesFile is the path to the opponent profiles YAML file, set by main.
var profilesFile string

// SetProfilesFile sets the path to the opponent profiles YAML file.
func SetProfilesFile(path string) {
	profilesFile = path
}

// RegisterTools adds all game tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(getStateTool(), handleGetState)
	s.AddTool(drawCardTool(), handleDrawCard)
	s.AddTool(playCardTool(), handlePlayCard)
	s.AddTool(nominateWildTool(), handleNominateWild)
	s.AddTool(moveCardTool(), handleMoveCard)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new NPZR game against the built-in AI. You race to complete one character of each kind "+
			"(Ninja, Pirate, Zombie, Robot) by lining up a matching head, torso, and legs on a stack. "+
			"Returns the dealt state; if the AI goes first, its whole first turn is included in the events."),
		mcp.WithString("difficulty", mcp.Description("AI difficulty: easy, medium, or hard (default medium). Ignored when profile is given.")),
		mcp.WithString("profile", mcp.Description("Named opponent from the profiles file; overrides difficulty and seed.")),
		mcp.WithNumber("agent_seat", mcp.Description("Which seat you take: 0 = go first (default), 1 = go second")),
		mcp.WithNumber("seed", mcp.Description("Deck shuffle seed for reproducible games (0 = random)")),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current game state and any events since the last call. Read-only."),
	)
}

func drawCardTool() mcp.Tool {
	return mcp.NewTool("draw_card",
		mcp.WithDescription("Draw a card from the deck. Use when your phase is 'DrawCard'."),
	)
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Play a card from your hand onto a stack pile. Use when your phase is 'PlayCard'. "+
			"Covering an occupied pile is legal and buries the old card. Playing a wild card moves you to the "+
			"'NominateWild' phase; after nominating you get another play."),
		mcp.WithString("card_id", mcp.Required(), mcp.Description("ID of the hand card to play")),
		mcp.WithString("stack_id", mcp.Description("Target stack ID; omit to start a new stack of yours")),
		mcp.WithString("pile", mcp.Required(), mcp.Description("Target pile: head, torso, or legs")),
	)
}

func nominateWildTool() mcp.Tool {
	return mcp.NewTool("nominate_wild",
		mcp.WithDescription("Declare what your just-played wild card counts as. Use when your phase is 'NominateWild'. "+
			"The part must be the pile the card sits on; the character is your choice."),
		mcp.WithString("character", mcp.Required(), mcp.Description("Character to count as: ninja, pirate, zombie, or robot")),
		mcp.WithString("part", mcp.Required(), mcp.Description("Body part to count as; must match the pile the card was played to")),
	)
}

func moveCardTool() mcp.Tool {
	return mcp.NewTool("move_card",
		mcp.WithDescription("Spend an earned move: relocate the top card of any pile to a compatible pile on any stack. "+
			"Use when your phase is 'MoveCard'. Moving a card clears its wild nomination."),
		mcp.WithString("card_id", mcp.Required(), mcp.Description("ID of the top card to move")),
		mcp.WithString("from_stack", mcp.Required(), mcp.Description("Stack the card sits on")),
		mcp.WithString("from_pile", mcp.Required(), mcp.Description("Pile the card sits on: head, torso, or legs")),
		mcp.WithString("to_stack", mcp.Description("Destination stack ID; omit to start a new stack of yours")),
		mcp.WithString("to_pile", mcp.Required(), mcp.Description("Destination pile: head, torso, or legs")),
	)
}

// --- Tool handlers ---

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil {
		return mcp.NewToolResultError("A game is already running. Only one game at a time is supported."), nil
	}

	difficulty := ai.Difficulty(request.GetString("difficulty", string(ai.DifficultyMedium)))
	agentSeat := request.GetInt("agent_seat", 0)
	seed := int64(request.GetInt("seed", 0))

	if name := request.GetString("profile", ""); name != "" {
		profile, err := ai.ProfileByName(profilesFile, name)
		if err != nil {
			return mcp.NewToolResultErrorf("Failed to load profile: %v", err), nil
		}
		difficulty = ai.Difficulty(profile.Difficulty)
		seed = profile.Seed
	}
	if agentSeat != 0 && agentSeat != 1 {
		return mcp.NewToolResultError("agent_seat must be 0 or 1"), nil
	}

	sess, err := NewGameSession(difficulty, agentSeat, seed)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}
	if err := sess.advance(); err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}

	activeSession = sess
	return finish(sess)
}

func handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return mcp.NewToolResultText(respondJSON(sess.respond())), nil
}

func handleDrawCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.engine.DrawCard(sess.agentSeat); err != nil {
		return mcp.NewToolResultErrorf("Draw rejected: %v", err), nil
	}
	return act(sess)
}

func handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	cardID := request.GetString("card_id", "")
	pile, err := game.ParseBodyPart(request.GetString("pile", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid pile: %v", err), nil
	}
	opts := game.PlayOptions{
		TargetStackID: request.GetString("stack_id", ""),
		TargetPile:    pile,
	}
	if err := sess.engine.PlayCard(sess.agentSeat, cardID, opts); err != nil {
		return mcp.NewToolResultErrorf("Play rejected: %v", err), nil
	}
	return act(sess)
}

func handleNominateWild(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	ch, err := game.ParseCharacter(request.GetString("character", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid character: %v", err), nil
	}
	part, err := game.ParseBodyPart(request.GetString("part", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid part: %v", err), nil
	}
	nom := game.Nomination{Character: ch, Part: part}
	if err := sess.engine.NominateWildCard(sess.agentSeat, nom); err != nil {
		return mcp.NewToolResultErrorf("Nomination rejected: %v", err), nil
	}
	return act(sess)
}

func handleMoveCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	fromPile, err := game.ParseBodyPart(request.GetString("from_pile", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid from_pile: %v", err), nil
	}
	toPile, err := game.ParseBodyPart(request.GetString("to_pile", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid to_pile: %v", err), nil
	}
	opts := game.MoveOptions{
		CardID:      request.GetString("card_id", ""),
		FromStackID: request.GetString("from_stack", ""),
		FromPile:    fromPile,
		ToStackID:   request.GetString("to_stack", ""),
		ToPile:      toPile,
	}
	if err := sess.engine.MoveCard(sess.agentSeat, opts); err != nil {
		return mcp.NewToolResultErrorf("Move rejected: %v", err), nil
	}
	return act(sess)
}

// act advances the built-in opponent after a successful agent action and
// returns the resulting response. Callers hold the session lock.
func act(sess *GameSession) (*mcp.CallToolResult, error) {
	if err := sess.advance(); err != nil {
		return mcp.NewToolResultErrorf("Opponent failed: %v", err), nil
	}
	return finish(sess)
}

// finish builds the response and retires the session when the game ended.
// Callers hold the session lock (or, for start_game, own the session).
func finish(sess *GameSession) (*mcp.CallToolResult, error) {
	resp := sess.respond()
	if resp.GameOver {
		activeSession = nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}
