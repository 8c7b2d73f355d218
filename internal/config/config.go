// Package config loads PostflopHoldem scenario definitions from HCL files
// using hashicorp/hcl's hclparse.NewParser + gohcl.DecodeBody.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/cfrsolver/poker"
	"github.com/lox/cfrsolver/sdk/engine"
	"github.com/lox/cfrsolver/sdk/games/holdem"
	"github.com/lox/cfrsolver/sdk/notation"
)

// ScenarioFile is the top-level HCL document: zero or more named
// PostflopHoldem spots.
type ScenarioFile struct {
	Scenarios []ScenarioBlock `hcl:"scenario,block"`
}

// ScenarioBlock describes one PostflopHoldem spot: both players' ranges,
// the flop board, the starting pot/stack, and a bet-size menu per street.
type ScenarioBlock struct {
	Name           string   `hcl:"name,label"`
	IPRange        string   `hcl:"ip_range"`
	OOPRange       string   `hcl:"oop_range"`
	Board          string   `hcl:"board"`
	InitialPot     float64  `hcl:"initial_pot"`
	EffectiveStack float64  `hcl:"effective_stack"`
	FlopSizes      []string `hcl:"flop_sizes,optional"`
	TurnSizes      []string `hcl:"turn_sizes,optional"`
	RiverSizes     []string `hcl:"river_sizes,optional"`
}

// LoadScenarios reads every scenario block in the HCL file at path, keyed
// by name. A missing file isn't an error: it returns the single built-in
// "default" scenario from holdem.DefaultConfig, since a scenario file is
// optional input, not required state.
func LoadScenarios(path string) (map[string]*holdem.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return map[string]*holdem.Config{"default": holdem.DefaultConfig()}, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parsing %s: %s", path, diags.Error())
	}

	var doc ScenarioFile
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("config: decoding %s: %s", path, diags.Error())
	}

	out := make(map[string]*holdem.Config, len(doc.Scenarios))
	for _, b := range doc.Scenarios {
		cfg, err := b.toHoldemConfig()
		if err != nil {
			return nil, fmt.Errorf("config: scenario %q: %w", b.Name, err)
		}
		out[b.Name] = cfg
	}
	return out, nil
}

func (b ScenarioBlock) toHoldemConfig() (*holdem.Config, error) {
	ipRange, err := notation.ParseRange(b.IPRange)
	if err != nil {
		return nil, fmt.Errorf("ip_range: %w", err)
	}
	oopRange, err := notation.ParseRange(b.OOPRange)
	if err != nil {
		return nil, fmt.Errorf("oop_range: %w", err)
	}
	board, err := parseBoard(b.Board)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	flopSizes, err := parseBetSizes(b.FlopSizes)
	if err != nil {
		return nil, fmt.Errorf("flop_sizes: %w", err)
	}
	turnSizes, err := parseBetSizes(b.TurnSizes)
	if err != nil {
		return nil, fmt.Errorf("turn_sizes: %w", err)
	}
	riverSizes, err := parseBetSizes(b.RiverSizes)
	if err != nil {
		return nil, fmt.Errorf("river_sizes: %w", err)
	}

	cfg := &holdem.Config{
		IPRange:        ipRange,
		OOPRange:       oopRange,
		Board:          board,
		InitialPot:     b.InitialPot,
		EffectiveStack: b.EffectiveStack,
		FlopSizes:      flopSizes,
		TurnSizes:      turnSizes,
		RiverSizes:     riverSizes,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseBoard(s string) ([]poker.Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("board string %q has an odd number of characters", s)
	}
	cards := make([]poker.Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := poker.ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func parseBetSizes(specs []string) ([]engine.Bet, error) {
	sizes := make([]engine.Bet, 0, len(specs))
	for _, s := range specs {
		bet, err := parseBetSize(s)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, bet)
	}
	return sizes, nil
}

// parseBetSize parses a one-letter-prefixed size spec: "p25" for 25% pot,
// "c4" for an absolute 4-chip bet.
func parseBetSize(s string) (engine.Bet, error) {
	if len(s) < 2 {
		return engine.Bet{}, fmt.Errorf("invalid bet size %q", s)
	}
	n, err := strconv.ParseUint(s[1:], 10, 32)
	if err != nil {
		return engine.Bet{}, fmt.Errorf("invalid bet size %q: %w", s, err)
	}
	switch s[0] {
	case 'p', 'P':
		return engine.PotPercent(uint32(n)), nil
	case 'c', 'C':
		return engine.Chips(uint32(n)), nil
	default:
		return engine.Bet{}, fmt.Errorf("invalid bet size %q: expected 'p<percent>' or 'c<chips>'", s)
	}
}
