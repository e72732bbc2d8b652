package falling

import "github.com/vovakirdan/falling/internal/core"

// Faller is a falling square obstacle. It only ever moves straight down.
type Faller struct {
	Pos      core.Vec // Top-left corner
	Velocity float64  // Pixels per second, downward
	Size     float64
	Dead     bool
}

// newFaller creates a faller whose bottom edge sits on the top of the playfield.
func newFaller(x, size, velocity float64) Faller {
	return Faller{
		Pos:      core.Vec{X: x, Y: -size},
		Velocity: velocity,
		Size:     size,
	}
}

// Advance moves the faller down by velocity*dt and marks it dead once its
// top edge is strictly below the playfield.
func (f *Faller) Advance(dt, fieldH float64) {
	if dt <= 0 {
		return
	}
	f.Pos.Y += f.Velocity * dt
	if f.Pos.Y > fieldH {
		f.Dead = true
	}
}

// Square returns the faller's collision square.
func (f Faller) Square() core.Square {
	return core.Square{Pos: f.Pos, Size: f.Size}
}
