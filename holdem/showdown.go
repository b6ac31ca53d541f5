package holdem

import (
	"sort"

	"holdemcore/card"
)

// PotAward records one seat's share of one pot: a pot split between tied
// winners produces one PotAward per winning seat, each with that seat's
// amount.
type PotAward struct {
	Seats  []int
	Amount int64
}

// ShowdownResult is the outcome of a completed hand, kept on GameState
// until the next StartHand so clients can render it.
type ShowdownResult struct {
	HandID  string
	Awards  []PotAward
	Results map[int]HandResult // seat -> best hand, contenders only
}

// runShowdown evaluates every remaining contender's best hand, partitions
// the pot, and distributes each layer to its winner(s), splitting odd
// chips starting with the seat immediately left of the button.
func (g GameState) runShowdown() (GameState, error) {
	next := g
	next.Stage = StageShowdown

	contenders := next.contenders()
	hands := make(map[int]HandResult, len(contenders))
	for _, seat := range contenders {
		p := next.Table.Seats[seat]
		cards := make([]card.Card, 0, 7)
		cards = append(cards, p.HoleCards...)
		cards = append(cards, next.Board...)
		result, err := EvaluateBest(cards)
		if err != nil {
			return g, err
		}
		hands[seat] = result
	}

	contributions, folded, allIn := next.contributionVectors()
	partition := PartitionPots(contributions, folded, allIn)

	result := &ShowdownResult{HandID: next.HandID, Results: hands}
	for _, pot := range partition.Pots {
		winners := bestHandSeats(pot.Eligible, hands)
		shares, remainder := splitPot(pot.Amount, len(winners))
		rotation := seatsByButtonRotation(next.Table, winners)
		for i, seat := range rotation {
			amt := shares
			if int64(i) < remainder {
				amt++
			}
			next.Table.Seats[seat].Stack += amt
			result.Awards = append(result.Awards, PotAward{Seats: []int{seat}, Amount: amt})
		}
		next.appendHistory(StageShowdown, InvalidSeatIndex, ActionNone, pot.Amount, "pot awarded")
	}

	next.LastResult = result
	next.Stage = StageFinished
	next.HandActive = false
	next.Betting.ActionOn = InvalidSeatIndex
	return next, nil
}

// bestHandSeats returns every seat in eligible whose hand key ties for
// best, in ascending seat order.
func bestHandSeats(eligible []int, hands map[int]HandResult) []int {
	var best uint32
	first := true
	for _, seat := range eligible {
		k := hands[seat].Key
		if first || k > best {
			best = k
			first = false
		}
	}
	var winners []int
	for _, seat := range eligible {
		if hands[seat].Key == best {
			winners = append(winners, seat)
		}
	}
	return winners
}

// splitPot divides amount evenly among n winners, returning the per-seat
// share and the leftover chip(s) that don't divide evenly.
func splitPot(amount int64, n int) (share, remainder int64) {
	if n <= 0 {
		return 0, amount
	}
	return amount / int64(n), amount % int64(n)
}

// seatsByButtonRotation orders candidates by distance clockwise from the
// button (nearest first), the order residual chips are handed out in: one
// extra chip per seat, starting with the seat closest to the left of the
// button, until the remainder is exhausted.
func seatsByButtonRotation(t Table, candidates []int) []int {
	n := len(t.Seats)
	dist := func(seat int) int {
		d := (seat - t.ButtonIndex + n) % n
		if d == 0 {
			d = n
		}
		return d
	}
	ordered := append([]int(nil), candidates...)
	sort.Slice(ordered, func(i, j int) bool { return dist(ordered[i]) < dist(ordered[j]) })
	return ordered
}
