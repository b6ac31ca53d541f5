package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newThreeHandedPreflop(t *testing.T, stacks [3]int64) GameState {
	t.Helper()
	gs, err := NewGameState(TableConfig{
		GameID: "g1", SmallBlind: 5, BigBlind: 10,
		MaxPlayers: 3, MinPlayers: 2, ButtonIndex: 0,
	})
	require.NoError(t, err)

	for i, id := range []string{"p1", "p2", "p3"} {
		gs, _, err = gs.Join(JoinConfig{PlayerID: id, PlayerName: id, BuyIn: stacks[i]})
		require.NoError(t, err)
	}

	gs, err = gs.StartHand(StartHandOptions{Seed: "betting-test"})
	require.NoError(t, err)
	return gs
}

// TestApplyAction_ShortAllInDoesNotReopenRaise mirrors scenario S5: a
// short all-in raise must not let P1 re-raise, only call or fold.
func TestApplyAction_ShortAllInDoesNotReopenRaise(t *testing.T) {
	gs := newThreeHandedPreflop(t, [3]int64{1000, 1000, 45})
	// button=p1(seat0), sb=p2(seat1), bb=p3(seat2); first to act preflop is p1.
	require.Equal(t, 0, gs.Betting.ActionOn)

	gs, err := gs.ApplyAction(0, ActionRaise, 20) // raise to 30 (increment 20)
	require.NoError(t, err)
	require.Equal(t, int64(30), gs.Betting.CurrentBet)
	require.Equal(t, 1, gs.Betting.ActionOn)

	gs, err = gs.ApplyAction(1, ActionFold, 0)
	require.NoError(t, err)
	require.Equal(t, 2, gs.Betting.ActionOn)

	// p3 (seat2) goes all-in for 45 total, an increment of 15 < minRaise 20.
	legal, err := gs.LegalActions(2)
	require.NoError(t, err)
	require.Contains(t, legal.Actions, ActionAllIn)
	gs, err = gs.ApplyAction(2, ActionAllIn, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(45), gs.Betting.CurrentBet)
	assert.Equal(t, 0, gs.Betting.ActionOn, "action returns to p1")

	p1Legal, err := gs.LegalActions(0)
	require.NoError(t, err)
	assert.Contains(t, p1Legal.Actions, ActionCall)
	assert.Contains(t, p1Legal.Actions, ActionFold)
	assert.NotContains(t, p1Legal.Actions, ActionRaise, "short all-in must not reopen betting for p1")
	assert.Equal(t, int64(15), p1Legal.CallAmount)
}

// TestApplyAction_FullRaiseOverTopReopensAction is the second half of S5:
// "if P3 instead chose to raise to 80, that would reopen for P1" — a full
// (not short) raise over the top does reopen the betting.
func TestApplyAction_FullRaiseOverTopReopensAction(t *testing.T) {
	gs := newThreeHandedPreflop(t, [3]int64{1000, 1000, 1000})
	gs, err := gs.ApplyAction(0, ActionRaise, 20) // p1 raises to 30
	require.NoError(t, err)
	gs, err = gs.ApplyAction(1, ActionFold, 0)
	require.NoError(t, err)

	// p3 faces toCall=20 (30-10), raises by 50 more (a full raise, to 80).
	gs, err = gs.ApplyAction(2, ActionRaise, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(80), gs.Betting.CurrentBet)

	legal, err := gs.LegalActions(0)
	require.NoError(t, err)
	assert.Contains(t, legal.Actions, ActionRaise, "a full raise over the top must reopen p1's option to raise")
}

func TestApplyAction_RejectsOutOfTurn(t *testing.T) {
	gs := newThreeHandedPreflop(t, [3]int64{1000, 1000, 1000})
	_, err := gs.ApplyAction(1, ActionFold, 0)
	assert.ErrorIs(t, err, ErrNotPlayersTurn)
}

func TestApplyAction_RejectsCallWithWrongAmount(t *testing.T) {
	gs := newThreeHandedPreflop(t, [3]int64{1000, 1000, 1000})
	_, err := gs.ApplyAction(0, ActionCall, 999)
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestApplyAction_RaiseBeyondStackIsInsufficientStack(t *testing.T) {
	gs := newThreeHandedPreflop(t, [3]int64{1000, 1000, 1000})
	_, err := gs.ApplyAction(0, ActionRaise, 100000)
	assert.ErrorIs(t, err, ErrInsufficientStack)
	assert.NotErrorIs(t, err, ErrInvalidAction)
}

func TestApplyAction_RaiseBelowMinimumIsInvalidAction(t *testing.T) {
	gs := newThreeHandedPreflop(t, [3]int64{1000, 1000, 1000})
	_, err := gs.ApplyAction(0, ActionRaise, 1)
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestApplyAction_BigBlindOptionKeepsRoundOpenAfterAllCalls(t *testing.T) {
	gs := newThreeHandedPreflop(t, [3]int64{1000, 1000, 1000})
	gs, err := gs.ApplyAction(0, ActionCall, 10)
	require.NoError(t, err)
	gs, err = gs.ApplyAction(1, ActionCall, 5)
	require.NoError(t, err)
	// Action must come back to the big blind (seat 2) for their option,
	// even though everyone has matched the big blind.
	assert.Equal(t, 2, gs.Betting.ActionOn)
	assert.Equal(t, StagePreflop, gs.Stage)

	gs, err = gs.ApplyAction(2, ActionCheck, 0)
	require.NoError(t, err)
	assert.Equal(t, StageFlop, gs.Stage)
}

func TestApplyAction_FoldToLastEndsHandUncontested(t *testing.T) {
	gs := newThreeHandedPreflop(t, [3]int64{1000, 1000, 1000})
	gs, err := gs.ApplyAction(0, ActionFold, 0)
	require.NoError(t, err)
	gs, err = gs.ApplyAction(1, ActionFold, 0)
	require.NoError(t, err)

	assert.False(t, gs.HandActive)
	assert.Equal(t, StageFinished, gs.Stage)
	require.NotNil(t, gs.LastResult)
	require.Len(t, gs.LastResult.Awards, 1)
	assert.Equal(t, 2, gs.LastResult.Awards[0].Seats[0])
	assert.Equal(t, int64(15), gs.LastResult.Awards[0].Amount)
}
