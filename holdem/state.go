package holdem

import "holdemcore/card"

// BettingRound tracks the in-progress street (C4). Contributions is this
// street's money only (resets to 0 at the start of each street); Player.
// TotalCommitted carries the whole-hand total the pot engine needs.
type BettingRound struct {
	CurrentBet    int64
	MinRaise      int64 // size of the last full raise increment, floor is BigBlind
	Contributions []int64
	ActionOn      int
	LastAggressor int // seat that made the last full bet/raise (the big blind preflop until a raise), InvalidSeatIndex if none yet; a short all-in leaves it unchanged

	// Acted never resets mid-street; it's what closes the round once every
	// contender has acted and all contributions match CurrentBet.
	Acted []bool

	// ActedSinceRaise resets to false for every seat whenever a full raise
	// (or the opening bet) lands. A seat with ActedSinceRaise == false may
	// still raise even if Acted == true, which is how an incomplete (short)
	// all-in raise is prevented from reopening betting for seats that had
	// already closed action against the prior full raise: their Acted bit
	// stays true and their ActedSinceRaise bit is left untouched by a raise
	// that wasn't full.
	ActedSinceRaise []bool
}

func newBettingRound(n int) BettingRound {
	return BettingRound{
		Contributions:   make([]int64, n),
		Acted:           make([]bool, n),
		ActedSinceRaise: make([]bool, n),
		LastAggressor:   InvalidSeatIndex,
	}
}

func (b BettingRound) clone() BettingRound {
	cp := b
	cp.Contributions = append([]int64(nil), b.Contributions...)
	cp.Acted = append([]bool(nil), b.Acted...)
	cp.ActedSinceRaise = append([]bool(nil), b.ActedSinceRaise...)
	return cp
}

// GameState is the entire state of one table, the value the functional
// core operates over: every public operation takes a GameState and input
// and returns a new GameState, never mutating the caller's copy.
type GameState struct {
	Table       Table
	Stage       Stage
	Board       []card.Card
	Deck        card.CardList // remaining undealt cards
	Betting     BettingRound
	History     []HistoryEntry
	HandsPlayed int64
	HandActive  bool
	HandID      string
	LastResult  *ShowdownResult
}

// NewGameState constructs an idle table ready to accept Join calls.
func NewGameState(cfg TableConfig) (GameState, error) {
	if err := cfg.validate(); err != nil {
		return GameState{}, err
	}
	return GameState{
		Table: NewTable(cfg),
		Stage: StageInit,
	}, nil
}

// Clone returns a deep copy, so the caller's reference to the previous
// state remains valid and unaffected by subsequent operations on the
// returned state.
func (g GameState) Clone() GameState {
	cp := g
	cp.Table = g.Table.clone()
	cp.Board = append([]card.Card(nil), g.Board...)
	cp.Deck = g.Deck.Clone()
	cp.Betting = g.Betting.clone()
	cp.History = append([]HistoryEntry(nil), g.History...)
	if g.LastResult != nil {
		r := *g.LastResult
		cp.LastResult = &r
	}
	return cp
}

// seatedPlayers returns the non-nil seats in ascending seat order.
func (g GameState) seatedPlayers() []*Player {
	var out []*Player
	for _, p := range g.Table.Seats {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// contenders returns seat indices still in the hand (active or all-in).
func (g GameState) contenders() []int {
	var out []int
	for i, p := range g.Table.Seats {
		if p != nil && (p.Status == StatusActive || p.Status == StatusAllIn) {
			out = append(out, i)
		}
	}
	return out
}
