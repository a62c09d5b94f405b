// Package climb implements contextual wall climbing on top of ordinary ground
// movement: detecting a climbable wall ahead, committing the character onto it,
// and re-projecting move input onto the wall's surface.
package climb

// Mode is the character's locomotion mode. Exactly one is active at a time.
type Mode int

const (
	Grounded Mode = iota
	Airborne
	OnWall
)

// String returns the mode name used in logs and scenarios.
func (m Mode) String() string {
	switch m {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	case OnWall:
		return "on_wall"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name back to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "grounded":
		return Grounded, true
	case "airborne":
		return Airborne, true
	case "on_wall":
		return OnWall, true
	default:
		return Grounded, false
	}
}
