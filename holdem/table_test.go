package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T, maxPlayers int) Table {
	t.Helper()
	return NewTable(TableConfig{
		GameID: "g1", SmallBlind: 1, BigBlind: 2,
		MaxPlayers: maxPlayers, MinPlayers: 2, ButtonIndex: 0,
	})
}

func seatPlayer(tb *Table, id string, seat int, stack int64) {
	idx := seat
	_, _ = tb.Join(JoinConfig{PlayerID: id, PlayerName: id, BuyIn: stack, SeatIndex: &idx})
	tb.Seats[seat].Status = StatusActive
}

func TestTable_JoinTakesRequestedOrLowestEmptySeat(t *testing.T) {
	tb := newTestTable(t, 6)
	idx2 := 2
	seat, err := tb.Join(JoinConfig{PlayerID: "p1", PlayerName: "P1", BuyIn: 100, SeatIndex: &idx2})
	require.NoError(t, err)
	assert.Equal(t, 2, seat)

	seat2, err := tb.Join(JoinConfig{PlayerID: "p2", PlayerName: "P2", BuyIn: 100})
	require.NoError(t, err)
	assert.Equal(t, 0, seat2)
}

func TestTable_JoinRejectsTakenAndInvalidSeats(t *testing.T) {
	tb := newTestTable(t, 2)
	idx0 := 0
	_, err := tb.Join(JoinConfig{PlayerID: "p1", BuyIn: 100, SeatIndex: &idx0})
	require.NoError(t, err)

	_, err = tb.Join(JoinConfig{PlayerID: "p2", BuyIn: 100, SeatIndex: &idx0})
	assert.ErrorIs(t, err, ErrSeatTaken)

	bad := 9
	_, err = tb.Join(JoinConfig{PlayerID: "p3", BuyIn: 100, SeatIndex: &bad})
	assert.ErrorIs(t, err, ErrInvalidSeat)
}

func TestTable_JoinFailsWhenFull(t *testing.T) {
	tb := newTestTable(t, 1)
	_, err := tb.Join(JoinConfig{PlayerID: "p1", BuyIn: 100})
	require.NoError(t, err)
	_, err = tb.Join(JoinConfig{PlayerID: "p2", BuyIn: 100})
	assert.ErrorIs(t, err, ErrGameFull)
}

func TestTable_JoinReconnectsExistingPlayerInPlace(t *testing.T) {
	tb := newTestTable(t, 6)
	seat, err := tb.Join(JoinConfig{PlayerID: "p1", BuyIn: 100})
	require.NoError(t, err)
	tb.Seats[seat].Connected = false

	seat2, err := tb.Join(JoinConfig{PlayerID: "p1", BuyIn: 999})
	require.NoError(t, err)
	assert.Equal(t, seat, seat2)
	assert.True(t, tb.Seats[seat].Connected)
	assert.Equal(t, int64(100), tb.Seats[seat].Stack, "reconnect must not re-buy")
}

func TestTable_LeaveEmptiesSeatWhenNoHandActive(t *testing.T) {
	tb := newTestTable(t, 6)
	seatPlayer(&tb, "p1", 0, 100)
	require.NoError(t, tb.Leave("p1", false, false))
	assert.Nil(t, tb.Seats[0])
}

func TestTable_LeaveFoldsInPlaceDuringActiveHand(t *testing.T) {
	tb := newTestTable(t, 6)
	seatPlayer(&tb, "p1", 0, 100)
	require.NoError(t, tb.Leave("p1", true, true))
	require.NotNil(t, tb.Seats[0])
	assert.Equal(t, StatusFolded, tb.Seats[0].Status)
	assert.False(t, tb.Seats[0].Connected)
}

func TestTable_BlindPositions_HeadsUp(t *testing.T) {
	tb := newTestTable(t, 6)
	seatPlayer(&tb, "p1", 0, 100)
	seatPlayer(&tb, "p2", 1, 100)
	tb.ButtonIndex = 0

	sb, bb, err := tb.BlindPositions()
	require.NoError(t, err)
	assert.Equal(t, 0, sb, "heads-up: button is small blind")
	assert.Equal(t, 1, bb)
}

func TestTable_BlindPositions_ThreeHanded(t *testing.T) {
	tb := newTestTable(t, 6)
	seatPlayer(&tb, "p1", 0, 100)
	seatPlayer(&tb, "p2", 1, 100)
	seatPlayer(&tb, "p3", 2, 100)
	tb.ButtonIndex = 0

	sb, bb, err := tb.BlindPositions()
	require.NoError(t, err)
	assert.Equal(t, 1, sb)
	assert.Equal(t, 2, bb)
}

func TestTable_NextActiveSeat_SkipsDisconnectedAndFolded(t *testing.T) {
	tb := newTestTable(t, 6)
	seatPlayer(&tb, "p1", 0, 100)
	seatPlayer(&tb, "p2", 1, 100)
	seatPlayer(&tb, "p3", 2, 100)
	tb.Seats[1].Connected = false

	next := tb.NextActiveSeat(0)
	assert.Equal(t, 2, next, "disconnected seat 1 must be skipped")

	seatPlayer(&tb, "p4", 3, 100)
	tb.Seats[2].Status = StatusFolded
	assert.Equal(t, 3, tb.NextActiveSeat(0), "folded seat 2 must be skipped")
}

func TestTable_MoveButton_SkipsOutSeats(t *testing.T) {
	tb := newTestTable(t, 6)
	seatPlayer(&tb, "p1", 0, 100)
	seatPlayer(&tb, "p2", 1, 100)
	tb.Seats[1].Status = StatusOut
	seatPlayer(&tb, "p3", 2, 100)
	tb.ButtonIndex = 0

	tb.MoveButton()
	assert.Equal(t, 2, tb.ButtonIndex, "busted seat 1 must be skipped for the button")
}
