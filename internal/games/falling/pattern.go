package falling

import (
	"math"

	"github.com/vovakirdan/falling/internal/config"
)

// Step is one tick of a Pattern: either Wait or Spawn.
type Step interface {
	isStep()
}

// Wait spawns nothing for one tick.
type Wait struct{}

// Spawn injects pre-positioned fallers for one tick.
type Spawn struct {
	Fallers []Faller
}

func (Wait) isStep()  {}
func (Spawn) isStep() {}

// Pattern is a precomputed choreography consumed one step per tick.
// Steps never change after construction; only the cursor advances.
type Pattern struct {
	steps  []Step
	cursor int
}

// NewWavePattern builds the twin-faller sweep: for every index i a Spawn of
// two fallers at x = i/spread*size and x+gap, followed by a Wait. The index
// range covers the playfield width spread times over.
func NewWavePattern(w config.WaveConfig, fieldW float64) *Pattern {
	perRow := math.Round(fieldW / w.FallerSize)
	count := int(math.Round(perRow * w.Spread))

	steps := make([]Step, 0, count*2)
	for i := 0; i < count; i++ {
		x := float64(i) / w.Spread * w.FallerSize
		steps = append(steps,
			Spawn{Fallers: []Faller{
				newFaller(x, w.FallerSize, w.FallerVelocity),
				newFaller(x+w.Gap, w.FallerSize, w.FallerVelocity),
			}},
			Wait{},
		)
	}
	return &Pattern{steps: steps}
}

// Next removes and returns the next step. ok is false once the pattern is exhausted.
func (p *Pattern) Next() (step Step, ok bool) {
	if p.cursor >= len(p.steps) {
		return nil, false
	}
	step = p.steps[p.cursor]
	p.cursor++
	return step, true
}

// Remaining returns the number of unconsumed steps.
func (p *Pattern) Remaining() int {
	return len(p.steps) - p.cursor
}

// Len returns the total number of steps.
func (p *Pattern) Len() int {
	return len(p.steps)
}
