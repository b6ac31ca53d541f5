package holdem

import "github.com/google/uuid"

// HistoryEntry is one append-only record of something that happened
// during a hand: the log a client replays to reconstruct table state.
type HistoryEntry struct {
	ID      string
	HandID  string
	Stage   Stage
	Seat    int // InvalidSeatIndex for table-level events (deal, stage change)
	Action  ActionType
	Amount  int64
	Message string
}

func newHistoryEntry(handID string, stage Stage, seat int, action ActionType, amount int64, message string) HistoryEntry {
	return HistoryEntry{
		ID:      uuid.NewString(),
		HandID:  handID,
		Stage:   stage,
		Seat:    seat,
		Action:  action,
		Amount:  amount,
		Message: message,
	}
}

func (g *GameState) appendHistory(stage Stage, seat int, action ActionType, amount int64, message string) {
	g.History = append(g.History, newHistoryEntry(g.HandID, stage, seat, action, amount, message))
}
