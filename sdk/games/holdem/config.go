package holdem

import (
	"fmt"

	"github.com/lox/cfrsolver/poker"
	"github.com/lox/cfrsolver/sdk/engine"
	"github.com/lox/cfrsolver/sdk/notation"
)

// Config describes one constrained postflop subgame: both players' ranges,
// the flop board play starts on, the pot/stack sizes, and the bet/raise
// menu offered on each remaining street. Loaded in practice by
// internal/config's HCL scenario loader.
type Config struct {
	IPRange        *notation.Range
	OOPRange       *notation.Range
	Board          []poker.Card
	InitialPot     float64
	EffectiveStack float64
	FlopSizes      []engine.Bet
	TurnSizes      []engine.Bet
	RiverSizes     []engine.Bet
}

// Validate reports the first structural problem with the config, if any.
func (c *Config) Validate() error {
	if len(c.Board) != 3 {
		return fmt.Errorf("holdem: flop board must have exactly 3 cards, got %d", len(c.Board))
	}
	if c.IPRange == nil || c.IPRange.Size() == 0 {
		return fmt.Errorf("holdem: IP range must not be empty")
	}
	if c.OOPRange == nil || c.OOPRange.Size() == 0 {
		return fmt.Errorf("holdem: OOP range must not be empty")
	}
	if c.InitialPot <= 0 {
		return fmt.Errorf("holdem: initial pot must be positive, got %v", c.InitialPot)
	}
	if c.EffectiveStack <= 0 {
		return fmt.Errorf("holdem: effective stack must be positive, got %v", c.EffectiveStack)
	}
	return nil
}

// DefaultConfig is a small worked scenario for local experimentation: IP
// holds {AA, QQ}, OOP holds {KK}, on a flop of Ad Kc 2h with a pot of 53
// and an effective stack of 74.
func DefaultConfig() *Config {
	ipRange, err := notation.ParseRange("AA;QQ")
	if err != nil {
		panic(err)
	}
	oopRange, err := notation.ParseRange("KK")
	if err != nil {
		panic(err)
	}

	return &Config{
		IPRange:  ipRange,
		OOPRange: oopRange,
		Board: []poker.Card{
			poker.NewCard(poker.Ace, poker.Diamonds),
			poker.NewCard(poker.King, poker.Clubs),
			poker.NewCard(poker.Two, poker.Hearts),
		},
		InitialPot:     53.0,
		EffectiveStack: 74.0,
		FlopSizes:      []engine.Bet{engine.PotPercent(25)},
		TurnSizes:      []engine.Bet{engine.PotPercent(125)},
		RiverSizes:     []engine.Bet{engine.PotPercent(200)},
	}
}
