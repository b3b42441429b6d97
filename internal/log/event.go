package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventPlayerJoin EventType = iota
	EventNewTurn
	EventDraw
	EventDrawSkipped
	EventDeckRefill
	EventPlay
	EventNominate
	EventMove
	EventMoveSkipped
	EventStackComplete
	EventTurnEnd
	EventWin
	EventTurnLimit
)

func (e EventType) String() string {
	switch e {
	case EventPlayerJoin:
		return "PlayerJoin"
	case EventNewTurn:
		return "NewTurn"
	case EventDraw:
		return "Draw"
	case EventDrawSkipped:
		return "DrawSkipped"
	case EventDeckRefill:
		return "DeckRefill"
	case EventPlay:
		return "Play"
	case EventNominate:
		return "Nominate"
	case EventMove:
		return "Move"
	case EventMoveSkipped:
		return "MoveSkipped"
	case EventStackComplete:
		return "StackComplete"
	case EventTurnEnd:
		return "TurnEnd"
	case EventWin:
		return "Win"
	case EventTurnLimit:
		return "TurnLimit"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a game.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Player  int       // acting player (0 or 1)
	Type    EventType // event type
	Card    string    // card display name (if applicable)
	Details string    // human-readable detail string
}
