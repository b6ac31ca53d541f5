package holdem

import "fmt"

// Table holds the seats: a fixed-length array scanned cyclically. Seat
// topology needs no graph or pointer structure — a plain slice with
// index arithmetic is sufficient and is what every traversal below uses.
type Table struct {
	Seats       []*Player // length == MaxPlayers; nil entry = empty seat
	ButtonIndex int
	SmallBlind  int64
	BigBlind    int64
	Ante        int64
	MinPlayers  int
	MaxPlayers  int
}

// NewTable builds an empty table with MaxPlayers empty seats.
func NewTable(cfg TableConfig) Table {
	return Table{
		Seats:       make([]*Player, cfg.MaxPlayers),
		ButtonIndex: cfg.ButtonIndex,
		SmallBlind:  cfg.SmallBlind,
		BigBlind:    cfg.BigBlind,
		Ante:        cfg.Ante,
		MinPlayers:  cfg.MinPlayers,
		MaxPlayers:  cfg.MaxPlayers,
	}
}

func (t Table) clone() Table {
	cp := t
	cp.Seats = make([]*Player, len(t.Seats))
	for i, p := range t.Seats {
		cp.Seats[i] = p.clone()
	}
	return cp
}

func (t Table) findByPlayerID(id string) int {
	for i, p := range t.Seats {
		if p != nil && p.ID == id {
			return i
		}
	}
	return -1
}

func (t Table) firstEmptySeat() int {
	for i, p := range t.Seats {
		if p == nil {
			return i
		}
	}
	return -1
}

// Join seats a player: reconnects in place if the player id is already
// seated, otherwise takes the requested seat (if empty) or the
// lowest-indexed empty seat.
func (t *Table) Join(cfg JoinConfig) (int, error) {
	if existing := t.findByPlayerID(cfg.PlayerID); existing >= 0 {
		t.Seats[existing].Connected = true
		return existing, nil
	}

	if cfg.SeatIndex != nil {
		idx := *cfg.SeatIndex
		if idx < 0 || idx >= len(t.Seats) {
			return -1, fmt.Errorf("%w: seat %d", ErrInvalidSeat, idx)
		}
		if t.Seats[idx] != nil {
			return -1, fmt.Errorf("%w: seat %d", ErrSeatTaken, idx)
		}
		t.Seats[idx] = &Player{
			ID: cfg.PlayerID, Name: cfg.PlayerName, Stack: cfg.BuyIn,
			Status: StatusWaiting, Connected: true, SeatIndex: idx,
		}
		return idx, nil
	}

	idx := t.firstEmptySeat()
	if idx < 0 {
		return -1, ErrGameFull
	}
	t.Seats[idx] = &Player{
		ID: cfg.PlayerID, Name: cfg.PlayerName, Stack: cfg.BuyIn,
		Status: StatusWaiting, Connected: true, SeatIndex: idx,
	}
	return idx, nil
}

// Leave removes or folds a player. handActive reports
// whether a hand is currently running; inHand reports whether this seat
// was dealt into that hand and hasn't already folded or busted out.
func (t *Table) Leave(playerID string, handActive, inHand bool) error {
	idx := t.findByPlayerID(playerID)
	if idx < 0 {
		return ErrPlayerNotFound
	}
	if handActive && inHand {
		t.Seats[idx].Status = StatusFolded
		t.Seats[idx].Connected = false
		return nil
	}
	t.Seats[idx] = nil
	return nil
}

// nextSeat scans seats cyclically starting at from+1 until pred matches,
// wrapping at most once around the table. Returns -1 if none match.
func (t Table) nextSeat(from int, pred func(*Player) bool) int {
	n := len(t.Seats)
	if n == 0 {
		return -1
	}
	for step := 1; step <= n; step++ {
		idx := (from + step) % n
		p := t.Seats[idx]
		if p != nil && pred(p) {
			return idx
		}
	}
	return -1
}

// NextActiveSeat finds the next seat (strictly after i) holding a
// connected, active (still in the hand, not folded/all-in) player.
func (t Table) NextActiveSeat(i int) int {
	return t.nextSeat(i, func(p *Player) bool {
		return p.Status == StatusActive && p.Connected
	})
}

// NextContenderSeat finds the next seat after i holding a player still in
// the hand (active or all-in, i.e. not folded and not sitting out).
func (t Table) NextContenderSeat(i int) int {
	return t.nextSeat(i, func(p *Player) bool {
		return p.Status == StatusActive || p.Status == StatusAllIn
	})
}

// NextInPlaySeat finds the next seat after i eligible to hold the button:
// connected, seated, and not out (waiting or active both qualify).
func (t Table) NextInPlaySeat(i int) int {
	return t.nextSeat(i, func(p *Player) bool {
		return p.Connected && (p.Status == StatusWaiting || p.Status == StatusActive)
	})
}

func (t Table) activeSeatIndices() []int {
	var out []int
	for i, p := range t.Seats {
		if p != nil && p.Status == StatusActive {
			out = append(out, i)
		}
	}
	return out
}

// BlindPositions computes small/big blind seats from the current button:
// heads-up posts button=SB, otherwise SB is the next active seat after
// the button and BB is the one after that.
func (t Table) BlindPositions() (sb, bb int, err error) {
	active := t.activeSeatIndices()
	if len(active) < 2 {
		return 0, 0, ErrBlindsUnresolvable
	}
	if len(active) == 2 {
		if t.Seats[t.ButtonIndex] == nil || t.Seats[t.ButtonIndex].Status != StatusActive {
			return 0, 0, ErrBlindsUnresolvable
		}
		sb = t.ButtonIndex
		bb = t.NextActiveSeat(sb)
		if bb < 0 {
			return 0, 0, ErrBlindsUnresolvable
		}
		return sb, bb, nil
	}
	sb = t.NextActiveSeat(t.ButtonIndex)
	if sb < 0 {
		return 0, 0, ErrBlindsUnresolvable
	}
	bb = t.NextActiveSeat(sb)
	if bb < 0 {
		return 0, 0, ErrBlindsUnresolvable
	}
	return sb, bb, nil
}

// MoveButton rotates the button to the next in-play seat.
func (t *Table) MoveButton() {
	next := t.NextInPlaySeat(t.ButtonIndex)
	if next >= 0 {
		t.ButtonIndex = next
	}
}
