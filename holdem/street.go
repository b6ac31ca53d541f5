package holdem

import "fmt"

// advanceStreet closes the current betting round and opens the next one:
// deals community cards, resets the betting round, and finds the first
// seat to act. If every remaining contender but one is already all-in, no
// betting is possible, so the board is dealt straight through to
// showdown without waiting on any action.
func (g GameState) advanceStreet() (GameState, error) {
	next := g
	for {
		var dealt int
		switch next.Stage {
		case StagePreflop:
			next.Stage = StageFlop
			dealt = 3
		case StageFlop:
			next.Stage = StageTurn
			dealt = 1
		case StageTurn:
			next.Stage = StageRiver
			dealt = 1
		case StageRiver:
			return next.runShowdown()
		default:
			return next, fmt.Errorf("%w: cannot advance from stage %s", ErrInvalidAction, next.Stage)
		}
		if err := next.dealBoard(dealt); err != nil {
			return g, err
		}
		next.appendHistory(next.Stage, InvalidSeatIndex, ActionNone, 0, "street")
		next.Betting = newBettingRound(len(next.Table.Seats))
		next.Betting.MinRaise = next.Table.BigBlind

		if countActable(next.Table) <= 1 {
			continue
		}
		first := next.Table.NextActiveSeat(next.Table.ButtonIndex)
		if first < 0 {
			continue
		}
		next.Betting.ActionOn = first
		return next, nil
	}
}

// dealBoard burns one card, then reveals n community cards: flop burns
// one and reveals three, turn and river each burn one and reveal one.
func (g *GameState) dealBoard(n int) error {
	if _, ok := g.dealCard(); !ok {
		return fmt.Errorf("%w: deck exhausted burning before board", ErrUnknown)
	}
	for i := 0; i < n; i++ {
		c, ok := g.dealCard()
		if !ok {
			return fmt.Errorf("%w: deck exhausted dealing board", ErrUnknown)
		}
		g.Board = append(g.Board, c)
	}
	return nil
}

// concludeByFold awards the pot to the lone remaining contender without a
// showdown: every other seat folded.
func (g GameState) concludeByFold() (GameState, error) {
	next := g
	winners := next.contenders()
	if len(winners) != 1 {
		return next, fmt.Errorf("%w: concludeByFold requires exactly one contender", ErrUnknown)
	}
	winner := winners[0]

	contributions, folded, allIn := next.contributionVectors()
	partition := PartitionPots(contributions, folded, allIn)

	result := &ShowdownResult{HandID: next.HandID, Awards: nil}
	for _, pot := range partition.Pots {
		next.Table.Seats[winner].Stack += pot.Amount
		result.Awards = append(result.Awards, PotAward{Seats: []int{winner}, Amount: pot.Amount})
		next.appendHistory(next.Stage, winner, ActionNone, pot.Amount, "uncontested pot")
	}
	next.LastResult = result
	next.Stage = StageFinished
	next.HandActive = false
	next.Betting.ActionOn = InvalidSeatIndex
	return next, nil
}

// contributionVectors builds the per-seat total-contribution, folded, and
// all-in vectors PartitionPots needs, indexed by seat.
func (g GameState) contributionVectors() (contributions []int64, folded, allIn []bool) {
	n := len(g.Table.Seats)
	contributions = make([]int64, n)
	folded = make([]bool, n)
	allIn = make([]bool, n)
	for i, p := range g.Table.Seats {
		if p == nil {
			continue
		}
		contributions[i] = p.TotalCommitted
		folded[i] = p.Status == StatusFolded
		allIn[i] = p.Status == StatusAllIn
	}
	return
}
