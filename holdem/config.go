package holdem

import (
	"fmt"

	"holdemcore/card"
)

// TableConfig configures a table at creation time.
type TableConfig struct {
	GameID      string
	SmallBlind  int64
	BigBlind    int64
	Ante        int64 // optional, 0 disables antes
	MaxPlayers  int
	MinPlayers  int
	ButtonIndex int
}

func (c TableConfig) validate() error {
	if c.MaxPlayers < 2 || c.MaxPlayers > 9 {
		return fmt.Errorf("%w: MaxPlayers must be in [2,9], got %d", ErrInvalidSeat, c.MaxPlayers)
	}
	if c.MinPlayers < 2 {
		return fmt.Errorf("%w: MinPlayers must be >= 2, got %d", ErrMinPlayersNotMet, c.MinPlayers)
	}
	if c.MinPlayers > c.MaxPlayers {
		return fmt.Errorf("MinPlayers (%d) must be <= MaxPlayers (%d)", c.MinPlayers, c.MaxPlayers)
	}
	if c.SmallBlind <= 0 || c.BigBlind <= 0 {
		return fmt.Errorf("blinds must be positive: sb=%d bb=%d", c.SmallBlind, c.BigBlind)
	}
	if c.Ante < 0 {
		return fmt.Errorf("Ante must be >= 0, got %d", c.Ante)
	}
	if c.ButtonIndex < 0 || c.ButtonIndex >= c.MaxPlayers {
		return fmt.Errorf("%w: ButtonIndex %d out of range", ErrInvalidSeat, c.ButtonIndex)
	}
	return nil
}

// JoinConfig is the input to Join.
type JoinConfig struct {
	PlayerID   string
	PlayerName string
	BuyIn      int64
	SeatIndex  *int // optional requested seat
}

func (c JoinConfig) validate() error {
	if c.PlayerID == "" {
		return fmt.Errorf("%w: PlayerID required", ErrInvalidAction)
	}
	if c.BuyIn <= 0 {
		return fmt.Errorf("%w: BuyIn must be positive", ErrInvalidAction)
	}
	return nil
}

// StartHandOptions configures a single StartHand call. Seed drives the
// deterministic shuffle; DeckOverride and ForcedButton support deterministic
// reconstruction of a previously recorded hand for conformance testing.
type StartHandOptions struct {
	Seed         string
	DeckOverride card.CardList // must be a 52-card permutation if set
	ForcedButton *int
}

func validateDeckOverride(deck card.CardList) error {
	if len(deck) == 0 {
		return nil
	}
	canonical := card.CanonicalDeck()
	if len(deck) != len(canonical) {
		return fmt.Errorf("deck override must contain %d cards, got %d", len(canonical), len(deck))
	}
	valid := make(map[card.Card]struct{}, len(canonical))
	for _, c := range canonical {
		valid[c] = struct{}{}
	}
	seen := make(map[card.Card]struct{}, len(deck))
	for i, c := range deck {
		if _, ok := valid[c]; !ok {
			return fmt.Errorf("deck override contains invalid card at index %d: %v", i, c)
		}
		if _, ok := seen[c]; ok {
			return fmt.Errorf("deck override contains duplicate card at index %d: %v", i, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}
