package climb

import "github.com/Faultbox/wallclimb/pkg/math"

// Movement is the authoritative locomotion state of the character.
type Movement struct {
	Mode     Mode
	Velocity math.Vec3

	// OrientToMovement lets the base movement system turn the character
	// toward its velocity. Off while on a wall so orientation stays fixed.
	OrientToMovement bool

	// Flying disables gravity. Set only while on a wall.
	Flying bool

	input math.Vec3
}

// AddInput accumulates a movement request of dir scaled by scale.
func (m *Movement) AddInput(dir math.Vec3, scale float32) {
	if scale == 0 {
		return
	}
	m.input = m.input.Add(dir.Scale(scale))
}

// PendingInput returns the accumulated input without consuming it.
func (m *Movement) PendingInput() math.Vec3 {
	return m.input
}

// TakeInput returns and clears the accumulated input.
func (m *Movement) TakeInput() math.Vec3 {
	in := m.input
	m.input = math.Vec3{}
	return in
}

// StopImmediately zeroes velocity and drops pending input.
func (m *Movement) StopImmediately() {
	m.Velocity = math.Vec3{}
	m.input = math.Vec3{}
}

// apply sets the per-mode flags. It is the only writer of OrientToMovement and Flying.
func (m *Movement) apply(mode Mode) {
	m.Mode = mode
	switch mode {
	case OnWall:
		m.OrientToMovement = false
		m.Flying = true
	default:
		m.OrientToMovement = true
		m.Flying = false
	}
}
