package holdem

import (
	"fmt"

	"github.com/google/uuid"
	"holdemcore/card"
)

// StartHand begins a new hand: resets seats, moves the button, shuffles,
// deals hole cards, posts antes and blinds, and opens the action for
// preflop betting. It returns a new GameState; g is left untouched.
func (g GameState) StartHand(opts StartHandOptions) (GameState, error) {
	if g.HandActive {
		return g, ErrHandInProgress
	}
	if err := validateDeckOverride(opts.DeckOverride); err != nil {
		return g, err
	}

	next := g.Clone()

	for _, p := range next.Table.Seats {
		if p != nil {
			p.resetForNewHand()
		}
	}

	inPlay := 0
	for _, p := range next.Table.Seats {
		if p != nil && p.Status == StatusActive {
			inPlay++
		}
	}
	if inPlay < next.Table.MinPlayers {
		return g, ErrMinPlayersNotMet
	}

	if opts.ForcedButton != nil {
		idx := *opts.ForcedButton
		if idx < 0 || idx >= len(next.Table.Seats) || next.Table.Seats[idx] == nil || next.Table.Seats[idx].Status != StatusActive {
			return g, fmt.Errorf("%w: forced button seat %d is not in play", ErrInvalidSeat, idx)
		}
		next.Table.ButtonIndex = idx
	} else if next.HandsPlayed > 0 {
		next.Table.MoveButton()
	} else if next.Table.Seats[next.Table.ButtonIndex] == nil || next.Table.Seats[next.Table.ButtonIndex].Status != StatusActive {
		first := next.Table.NextInPlaySeat(next.Table.ButtonIndex - 1)
		if first < 0 {
			return g, ErrMinPlayersNotMet
		}
		next.Table.ButtonIndex = first
	}

	sb, bb, err := next.Table.BlindPositions()
	if err != nil {
		return g, err
	}

	if len(opts.DeckOverride) > 0 {
		next.Deck = opts.DeckOverride.Clone()
	} else if opts.Seed != "" {
		next.Deck = card.NewShuffledDeck(opts.Seed)
	} else {
		deck := card.CanonicalDeck()
		card.ShuffleRandom(deck)
		next.Deck = deck
	}

	next.HandID = uuid.NewString()
	next.HandsPlayed++
	next.HandActive = true
	next.Stage = StagePreflop
	next.Board = nil
	next.History = nil
	next.LastResult = nil
	next.appendHistory(StagePreflop, InvalidSeatIndex, ActionNone, 0, "hand started")

	dealOrder := next.dealOrderFrom(next.Table.ButtonIndex)
	for pass := 0; pass < 2; pass++ {
		for _, seat := range dealOrder {
			c, ok := next.dealCard()
			if !ok {
				return g, fmt.Errorf("%w: deck exhausted dealing hole cards", ErrUnknown)
			}
			next.Table.Seats[seat].HoleCards = append(next.Table.Seats[seat].HoleCards, c)
		}
	}

	if next.Table.Ante > 0 {
		for _, seat := range dealOrder {
			p := next.Table.Seats[seat]
			amt := p.contribute(next.Table.Ante)
			next.appendHistory(StagePreflop, seat, ActionNone, amt, "ante")
		}
	}

	next.Betting = newBettingRound(len(next.Table.Seats))
	sbAmt := next.Table.Seats[sb].contribute(next.Table.SmallBlind)
	next.Betting.Contributions[sb] = sbAmt
	next.appendHistory(StagePreflop, sb, ActionBet, sbAmt, "small blind")

	bbAmt := next.Table.Seats[bb].contribute(next.Table.BigBlind)
	next.Betting.Contributions[bb] = bbAmt
	next.appendHistory(StagePreflop, bb, ActionBet, bbAmt, "big blind")

	// The current bet is the nominal big blind even if the BB posted short
	// (stack < BigBlind): a short blind is a dead amount, never a size that
	// other players merely have to match.
	next.Betting.CurrentBet = next.Table.BigBlind
	next.Betting.MinRaise = next.Table.BigBlind
	next.Betting.LastAggressor = bb

	first := next.Table.NextActiveSeat(bb)
	if first < 0 {
		first = bb
	}
	next.Betting.ActionOn = first

	if countActable(next.Table) <= 1 {
		return next.advanceStreet()
	}

	return next, nil
}

// dealOrderFrom lists contenders starting immediately left of the
// button, the order hole cards are dealt in.
func (g GameState) dealOrderFrom(button int) []int {
	var order []int
	seat := g.Table.NextActiveSeat(button)
	if seat < 0 {
		return order
	}
	start := seat
	for {
		order = append(order, seat)
		seat = g.Table.NextActiveSeat(seat)
		if seat == start || seat < 0 {
			break
		}
	}
	return order
}

// dealCard pops the next card off the top of the deck.
func (g *GameState) dealCard() (card.Card, bool) {
	if len(g.Deck) == 0 {
		return card.CardInvalid, false
	}
	c := g.Deck[0]
	g.Deck = g.Deck[1:]
	return c, true
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
