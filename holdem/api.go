package holdem

import (
	"fmt"

	"holdemcore/card"
)

// CreateTable builds a fresh, empty GameState.
func CreateTable(cfg TableConfig) (GameState, error) {
	return NewGameState(cfg)
}

// Join seats a new or reconnecting player. Joining mid-hand
// is allowed; the seat starts StatusWaiting and is dealt in starting next
// hand.
func (g GameState) Join(cfg JoinConfig) (GameState, int, error) {
	if err := cfg.validate(); err != nil {
		return g, InvalidSeatIndex, err
	}
	next := g.Clone()
	seat, err := next.Table.Join(cfg)
	if err != nil {
		return g, InvalidSeatIndex, err
	}
	return next, seat, nil
}

// Leave removes a player, or folds them in place if they're live in the
// current hand.
func (g GameState) Leave(playerID string) (GameState, error) {
	next := g.Clone()
	idx := next.Table.findByPlayerID(playerID)
	if idx < 0 {
		return g, ErrPlayerNotFound
	}
	inHand := next.Table.Seats[idx].Status == StatusActive || next.Table.Seats[idx].Status == StatusAllIn
	if err := next.Table.Leave(playerID, next.HandActive, inHand); err != nil {
		return g, err
	}
	if next.HandActive && inHand && foldedToOne(next) {
		return next.concludeByFold()
	}
	if next.HandActive && inHand && next.Betting.ActionOn == idx {
		if isRoundComplete(next) {
			return next.advanceStreet()
		}
		next.Betting.ActionOn = nextActionSeat(next)
	}
	return next, nil
}

// Showdown is the explicit external trigger for resolving a completed
// hand when the caller wants to separate "river action closed" from
// "pots distributed"; ApplyAction already runs the same resolution
// (runShowdown) internally once the river's betting round closes.
func (g GameState) Showdown() (GameState, error) {
	if !g.HandActive {
		return g, ErrGameNotStarted
	}
	if g.Stage != StageRiver && g.Stage != StageShowdown {
		return g, fmt.Errorf("%w: showdown requested before river closed", ErrInvalidAction)
	}
	next, err := g.Clone().runShowdown()
	if err != nil {
		return g, err
	}
	return next, nil
}

// CompleteHand clears a finished hand's per-hand state so the table is
// ready for the next StartHand: stage resets to init, the board and every
// seat's hole cards are cleared, and busted seats (zero stack) are marked
// StatusOut.
func (g GameState) CompleteHand() (GameState, error) {
	if g.HandActive {
		return g, ErrHandInProgress
	}
	next := g.Clone()
	next.Stage = StageInit
	next.Board = nil
	for _, p := range next.Table.Seats {
		if p == nil {
			continue
		}
		p.HoleCards = nil
		if p.Stack <= 0 {
			p.Status = StatusOut
		} else {
			p.Status = StatusWaiting
		}
	}
	return next, nil
}

// PublicSnapshot is a redacted view of GameState suitable for broadcast
// to every player at the table: hole cards belonging to seats other than
// viewerSeat are hidden until showdown (when non-folded seats' cards are
// shown), and the undealt deck is never exposed.
type PublicSnapshot struct {
	Stage       Stage
	Board       []card.Card
	ButtonIndex int
	Seats       []SeatView
	CurrentBet  int64
	ActionOn    int
	History     []HistoryEntry
	LastResult  *ShowdownResult
}

type SeatView struct {
	Occupied  bool
	PlayerID  string
	Name      string
	Stack     int64
	Status    SeatStatus
	Connected bool
	Committed int64
	HoleCards []card.Card // populated only for the viewer's own seat, or at showdown
	IsViewer  bool
}

// Snapshot projects g from the perspective of viewerSeat. Pass
// InvalidSeatIndex for a spectator view (no hole cards revealed before
// showdown; at showdown or after, non-folded seats' cards are shown).
func (g GameState) Snapshot(viewerSeat int) PublicSnapshot {
	snap := PublicSnapshot{
		Stage:       g.Stage,
		Board:       append([]card.Card(nil), g.Board...),
		ButtonIndex: g.Table.ButtonIndex,
		CurrentBet:  g.Betting.CurrentBet,
		ActionOn:    g.Betting.ActionOn,
		History:     append([]HistoryEntry(nil), g.History...),
		LastResult:  g.LastResult,
	}

	showdownReveal := g.Stage == StageShowdown || g.Stage == StageFinished
	for i, p := range g.Table.Seats {
		if p == nil {
			snap.Seats = append(snap.Seats, SeatView{})
			continue
		}
		view := SeatView{
			Occupied:  true,
			PlayerID:  p.ID,
			Name:      p.Name,
			Stack:     p.Stack,
			Status:    p.Status,
			Connected: p.Connected,
			Committed: p.TotalCommitted,
			IsViewer:  i == viewerSeat,
		}
		if i == viewerSeat || (showdownReveal && p.Status != StatusFolded) {
			view.HoleCards = append([]card.Card(nil), p.HoleCards...)
		}
		snap.Seats = append(snap.Seats, view)
	}
	return snap
}
