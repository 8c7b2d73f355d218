package solver

import (
	"sort"
	"strings"
)

// Report is a snapshot of a GameTree's average strategies, ordered by
// (player, hole cards, history length, history) for stable, diff-friendly
// printing. There is no on-disk persistence here — a Report only exists
// to drive the CLI's output for the lifetime of one process.
type Report struct {
	Iterations int
	RootUtil   float64
	Entries    []ReportEntry
}

// ReportEntry is one InfoState's averaged strategy, keyed by the parsed
// fields of InfoState.Key() so the caller can sort and label entries
// without re-parsing the key string.
type ReportEntry struct {
	Key      string
	Info     parsedKey
	Strategy []float64
}

// parsedKey splits an engine.InfoState.Key() string ("player|cards|history")
// back into its three display fields.
type parsedKey struct {
	Player  string
	Cards   string
	History string
}

func parseInfoStateKey(key string) parsedKey {
	parts := strings.SplitN(key, "|", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return parsedKey{Player: parts[0], Cards: parts[1], History: parts[2]}
}

// BuildReport walks every InfoState tree has seen and returns their
// average strategies in the canonical display order.
func BuildReport(tree *GameTree, iterations int, rootUtil float64) Report {
	keys := tree.Keys()
	entries := make([]ReportEntry, 0, len(keys))
	for _, key := range keys {
		avg, ok := tree.AverageStrategy(key)
		if !ok {
			continue
		}
		entries = append(entries, ReportEntry{
			Key:      key,
			Info:     parseInfoStateKey(key),
			Strategy: avg,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Info, entries[j].Info
		if a.Player != b.Player {
			return a.Player < b.Player
		}
		if a.Cards != b.Cards {
			return a.Cards < b.Cards
		}
		if len(a.History) != len(b.History) {
			return len(a.History) < len(b.History)
		}
		return a.History < b.History
	})

	return Report{Iterations: iterations, RootUtil: rootUtil, Entries: entries}
}
