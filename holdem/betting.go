package holdem

import "fmt"

// LegalActionSet is what ApplyAction will accept from the seat currently
// on action.
type LegalActionSet struct {
	Seat           int
	Actions        []ActionType
	CallAmount     int64 // chips needed to call, 0 if already matched
	MinRaiseAmount int64 // minimum legal raise increment, 0 if raise isn't legal
	MaxRaiseAmount int64 // raise increment that puts the seat all-in
}

func countActable(t Table) int {
	n := 0
	for _, p := range t.Seats {
		if p != nil && p.Status == StatusActive && p.Stack > 0 {
			n++
		}
	}
	return n
}

// LegalActions computes what the seat on action may legally do.
func (g GameState) LegalActions(seat int) (LegalActionSet, error) {
	if !g.HandActive {
		return LegalActionSet{}, ErrGameNotStarted
	}
	if seat < 0 || seat >= len(g.Table.Seats) || g.Table.Seats[seat] == nil {
		return LegalActionSet{}, ErrInvalidSeat
	}
	if g.Betting.ActionOn != seat {
		return LegalActionSet{}, ErrNotPlayersTurn
	}
	p := g.Table.Seats[seat]
	if p.Status != StatusActive {
		return LegalActionSet{}, fmt.Errorf("%w: seat %d is not active", ErrInvalidAction, seat)
	}

	toCall := g.Betting.CurrentBet - g.Betting.Contributions[seat]
	if toCall < 0 {
		toCall = 0
	}
	set := LegalActionSet{Seat: seat, CallAmount: toCall}
	set.Actions = append(set.Actions, ActionFold)

	if toCall == 0 {
		set.Actions = append(set.Actions, ActionCheck)
	} else if p.Stack >= toCall {
		// A stack shorter than toCall cannot call; it can only go all-in.
		set.Actions = append(set.Actions, ActionCall)
	}

	if p.Stack > toCall {
		canRaise := g.Betting.CurrentBet == 0 || g.Betting.ActedSinceRaise[seat] == false
		if canRaise {
			remaining := p.Stack - toCall
			minRaise := g.Betting.MinRaise
			if minRaise > remaining {
				minRaise = remaining
			}
			set.MinRaiseAmount = minRaise
			set.MaxRaiseAmount = remaining
			if g.Betting.CurrentBet == 0 {
				set.Actions = append(set.Actions, ActionBet)
			} else {
				set.Actions = append(set.Actions, ActionRaise)
			}
		}
	}

	if p.Stack > 0 {
		set.Actions = append(set.Actions, ActionAllIn)
	}

	return set, nil
}

// ApplyAction validates and applies one seat's action, returning the
// resulting state. amount is the raise/bet increment on top of the call
// ("raise by", not "raise to").
func (g GameState) ApplyAction(seat int, action ActionType, amount int64) (GameState, error) {
	legal, err := g.LegalActions(seat)
	if err != nil {
		return g, err
	}
	if !containsAction(legal.Actions, action) {
		return g, fmt.Errorf("%w: %s not legal for seat %d", ErrInvalidAction, action, seat)
	}

	next := g.Clone()
	p := next.Table.Seats[seat]
	bet := &next.Betting

	switch action {
	case ActionFold:
		p.Status = StatusFolded
		next.appendHistory(next.Stage, seat, ActionFold, 0, "fold")
		bet.Acted[seat] = true

	case ActionCheck:
		bet.Acted[seat] = true
		next.appendHistory(next.Stage, seat, ActionCheck, 0, "check")

	case ActionCall:
		if amount != legal.CallAmount {
			return g, fmt.Errorf("%w: call amount must be exactly %d, got %d", ErrInvalidAction, legal.CallAmount, amount)
		}
		amt := p.contribute(legal.CallAmount)
		bet.Contributions[seat] += amt
		bet.Acted[seat] = true
		next.appendHistory(next.Stage, seat, ActionCall, amt, "call")

	case ActionBet, ActionRaise:
		if amount > legal.MaxRaiseAmount {
			return g, fmt.Errorf("%w: raise increment %d exceeds stack (max %d)", ErrInsufficientStack, amount, legal.MaxRaiseAmount)
		}
		if amount < legal.MinRaiseAmount {
			return g, fmt.Errorf("%w: raise increment %d below minimum %d", ErrInvalidAction, amount, legal.MinRaiseAmount)
		}
		total := legal.CallAmount + amount
		amt := p.contribute(total)
		bet.Contributions[seat] += amt
		full := amount >= bet.MinRaise
		if full {
			bet.MinRaise = amount
			bet.LastAggressor = seat
			for i := range bet.ActedSinceRaise {
				bet.ActedSinceRaise[i] = false
			}
		} else {
			logIncompleteRaise(seat, amount, bet.MinRaise)
		}
		bet.CurrentBet = bet.Contributions[seat]
		bet.Acted[seat] = true
		bet.ActedSinceRaise[seat] = true
		next.appendHistory(next.Stage, seat, action, amt, "raise")

	case ActionAllIn:
		toCall := legal.CallAmount
		amt := p.contribute(p.Stack)
		bet.Contributions[seat] += amt
		raiseIncrement := amt - toCall
		if raiseIncrement > 0 && bet.Contributions[seat] > bet.CurrentBet {
			full := raiseIncrement >= bet.MinRaise
			if full {
				bet.MinRaise = raiseIncrement
				bet.LastAggressor = seat
				for i := range bet.ActedSinceRaise {
					bet.ActedSinceRaise[i] = false
				}
			} else {
				logIncompleteRaise(seat, raiseIncrement, bet.MinRaise)
			}
			bet.CurrentBet = bet.Contributions[seat]
		}
		bet.Acted[seat] = true
		bet.ActedSinceRaise[seat] = true
		next.appendHistory(next.Stage, seat, ActionAllIn, amt, "all-in")
	}

	if foldedToOne(next) {
		return next.concludeByFold()
	}

	if isRoundComplete(next) {
		return next.advanceStreet()
	}

	next.Betting.ActionOn = nextActionSeat(next)
	return next, nil
}

func containsAction(actions []ActionType, a ActionType) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}

func foldedToOne(g GameState) bool {
	return len(g.contenders()) <= 1
}

// isRoundComplete reports whether every contender still able to act has
// acted and matched the current bet (or is all-in for less).
func isRoundComplete(g GameState) bool {
	for i, p := range g.Table.Seats {
		if p == nil || p.Status != StatusActive {
			continue
		}
		if !g.Betting.Acted[i] {
			return false
		}
		if g.Betting.Contributions[i] != g.Betting.CurrentBet {
			return false
		}
	}
	return true
}

// nextActionSeat finds the next active, un-acted-out seat able to act.
func nextActionSeat(g GameState) int {
	seat := g.Betting.ActionOn
	n := len(g.Table.Seats)
	for step := 1; step <= n; step++ {
		idx := (seat + step) % n
		p := g.Table.Seats[idx]
		if p != nil && p.Status == StatusActive && p.Stack > 0 {
			return idx
		}
	}
	return InvalidSeatIndex
}
