package engine

import "fmt"

// InfoState identifies a decision point from one player's point of view:
// their own hole cards plus the public history. Two decision situations
// with identical player, own cards, and history share one info-state —
// deliberately excluding the opponent's cards. Key() is the map key used by
// GameTree; equality/hash must exclude opponent information, which holds
// here since InfoState never stores it.
type InfoState struct {
	Player  Player
	Cards   HoleCards
	History History
}

// Key renders a stable string key for this info-state: player, own hole
// cards, then history. Used both as the GameTree map key and (per spec
// §4.I) as the diagnostic printer's natural sort prefix.
func (i InfoState) Key() string {
	return fmt.Sprintf("%s|%s|%s", i.Player, i.Cards, i.History)
}
