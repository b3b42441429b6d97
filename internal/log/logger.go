package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// playerName returns "P1" or "P2" for display.
func playerName(p int) string {
	return fmt.Sprintf("P%d", p+1)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	return fmt.Sprintf("T%-3d %-14s| %s", e.Turn, e.Type, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewJoinEvent(turn int, player int, name string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventPlayerJoin,
		Details: fmt.Sprintf("%s joins as %s", name, playerName(player)),
	}
}

func NewTurnEvent(turn int, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d (%s) ===", turn, playerName(player)),
	}
}

func NewDrawEvent(turn int, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("%s draws %s", playerName(player), cardName),
	}
}

func NewDrawSkippedEvent(turn int, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventDrawSkipped,
		Details: fmt.Sprintf("%s has nothing to draw", playerName(player)),
	}
}

func NewDeckRefillEvent(turn int, count int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  -1,
		Type:    EventDeckRefill,
		Details: fmt.Sprintf("Deck refilled with %d discarded cards", count),
	}
}

func NewPlayEvent(turn int, player int, cardName string, stack string, pile string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventPlay,
		Card:    cardName,
		Details: fmt.Sprintf("%s plays %s to stack %s (%s)", playerName(player), cardName, stack, pile),
	}
}

func NewNominateEvent(turn int, player int, cardName string, nomination string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventNominate,
		Card:    cardName,
		Details: fmt.Sprintf("%s nominates %s as %s", playerName(player), cardName, nomination),
	}
}

func NewMoveEvent(turn int, player int, cardName string, fromStack, fromPile, toStack, toPile string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventMove,
		Card:    cardName,
		Details: fmt.Sprintf("%s moves %s from %s/%s to %s/%s", playerName(player), cardName, fromStack, fromPile, toStack, toPile),
	}
}

func NewMoveSkippedEvent(turn int, player int, forfeited int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventMoveSkipped,
		Details: fmt.Sprintf("%s has no legal move (%d forfeited)", playerName(player), forfeited),
	}
}

func NewCompleteEvent(turn int, owner int, character string, stack string, scored bool) GameEvent {
	details := fmt.Sprintf("%s completes %s (stack %s)", playerName(owner), character, stack)
	if !scored {
		details = fmt.Sprintf("%s completes %s again (stack %s, already scored)", playerName(owner), character, stack)
	}
	return GameEvent{
		Turn:    turn,
		Player:  owner,
		Type:    EventStackComplete,
		Details: details,
	}
}

func NewTurnEndEvent(turn int, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventTurnEnd,
		Details: fmt.Sprintf("%s ends their turn", playerName(player)),
	}
}

func NewWinEvent(turn int, winner int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  winner,
		Type:    EventWin,
		Details: fmt.Sprintf("%s wins! (%s)", playerName(winner), reason),
	}
}

func NewTurnLimitEvent(turn int, limit int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  -1,
		Type:    EventTurnLimit,
		Details: fmt.Sprintf("Turn limit reached (%d turns)", limit),
	}
}
