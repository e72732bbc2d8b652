package falling

import (
	"github.com/vovakirdan/falling/internal/config"
	"github.com/vovakirdan/falling/internal/core"
)

// Direction is the player's current horizontal heading.
type Direction int

const (
	DirStill Direction = iota
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirStill:
		return "Still"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Player is the block at the bottom of the playfield.
// Its direction is always derived from the two press flags.
type Player struct {
	pos          core.Vec
	dir          Direction
	size         float64
	speed        float64 // Pixels per second
	leftPressed  bool
	rightPressed bool
	dead         bool
	fieldW       float64
}

// NewPlayer places a player horizontally centered, bottomOffset above the
// bottom edge of the playfield.
func NewPlayer(cfg config.PlayerConfig, field Playfield) *Player {
	return &Player{
		pos: core.Vec{
			X: field.Width/2 - cfg.Size/2,
			Y: field.Height - cfg.Size - cfg.BottomOffset,
		},
		dir:    DirStill,
		size:   cfg.Size,
		speed:  cfg.Speed,
		fieldW: field.Width,
	}
}

// HandleButton updates press state for the two movement keys.
// Other keys are ignored.
func (p *Player) HandleButton(key core.Key, tr core.Transition) {
	switch key {
	case core.KeyLeft:
		p.leftPressed = tr == core.Press
		if tr == core.Press {
			p.dir = DirLeft
		} else {
			p.recomputeDirection()
		}
	case core.KeyRight:
		p.rightPressed = tr == core.Press
		if tr == core.Press {
			p.dir = DirRight
		} else {
			p.recomputeDirection()
		}
	}
}

// recomputeDirection applies the release rule: left wins, then right.
func (p *Player) recomputeDirection() {
	switch {
	case p.leftPressed:
		p.dir = DirLeft
	case p.rightPressed:
		p.dir = DirRight
	default:
		p.dir = DirStill
	}
}

// Advance moves the player by speed*dt in its direction. Leaving the
// playfield wraps to the opposite edge instead of stopping at the wall.
func (p *Player) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	step := p.speed * dt

	switch p.dir {
	case DirRight:
		if p.pos.X+step > p.fieldW-p.size {
			p.pos.X = 0
		} else {
			p.pos.X += step
		}
	case DirLeft:
		if p.pos.X-step < 0 {
			p.pos.X = p.fieldW - p.size
		} else {
			p.pos.X -= step
		}
	case DirStill:
	}
}

// MarkCollided kills the player. Calling it again has no further effect.
func (p *Player) MarkCollided() {
	p.dead = true
}

// Pos returns the top-left corner.
func (p *Player) Pos() core.Vec { return p.pos }

// Size returns the side length.
func (p *Player) Size() float64 { return p.size }

// Direction returns the current heading.
func (p *Player) Direction() Direction { return p.dir }

// Dead reports whether the player has been hit.
func (p *Player) Dead() bool { return p.dead }

// Square returns the player's collision square.
func (p *Player) Square() core.Square {
	return core.Square{Pos: p.pos, Size: p.size}
}
