package gamestate

import "fmt"

// PlayerState is the player-level state during gameplay. Teleport and
// CollectPotion are transient: they last until the start of the next step.
type PlayerState uint8

const (
	PlayerIdle PlayerState = iota
	PlayerMoving
	PlayerTeleport
	PlayerCollectPotion
)

var playerStateNames = [...]string{
	PlayerIdle:          "idle",
	PlayerMoving:        "moving",
	PlayerTeleport:      "teleport",
	PlayerCollectPotion: "collect_potion",
}

func (s PlayerState) String() string {
	if int(s) < len(playerStateNames) {
		return playerStateNames[s]
	}
	return fmt.Sprintf("PlayerState(%d)", uint8(s))
}

// Transient reports whether the state resolves on its own at the next step.
func (s PlayerState) Transient() bool {
	return s == PlayerTeleport || s == PlayerCollectPotion
}
