package falling

import (
	"testing"

	"github.com/vovakirdan/falling/internal/config"
	"github.com/vovakirdan/falling/internal/core"
)

func newTestPlayer() *Player {
	cfg := config.DefaultFallingConfig()
	return NewPlayer(cfg.Player, Playfield{Width: 700, Height: 700})
}

func TestNewPlayerCentered(t *testing.T) {
	p := newTestPlayer()

	want := core.Vec{X: 335, Y: 660}
	if p.Pos() != want {
		t.Errorf("initial pos = %+v, want %+v", p.Pos(), want)
	}
	if p.Size() != 30 {
		t.Errorf("size = %v, want 30", p.Size())
	}
	if p.Direction() != DirStill {
		t.Errorf("direction = %v, want Still", p.Direction())
	}
	if p.Dead() {
		t.Error("new player should be alive")
	}
}

func TestDirectionPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		events []core.ButtonEvent
		want   Direction
	}{
		{
			name:   "press right",
			events: []core.ButtonEvent{core.Pressed(core.KeyRight)},
			want:   DirRight,
		},
		{
			name:   "latest press wins while both held",
			events: []core.ButtonEvent{core.Pressed(core.KeyLeft), core.Pressed(core.KeyRight)},
			want:   DirRight,
		},
		{
			name: "both held then release right",
			events: []core.ButtonEvent{
				core.Pressed(core.KeyLeft), core.Pressed(core.KeyRight), core.Released(core.KeyRight),
			},
			want: DirLeft,
		},
		{
			name: "both held then release left",
			events: []core.ButtonEvent{
				core.Pressed(core.KeyLeft), core.Pressed(core.KeyRight), core.Released(core.KeyLeft),
			},
			want: DirRight,
		},
		{
			name: "both released",
			events: []core.ButtonEvent{
				core.Pressed(core.KeyLeft), core.Pressed(core.KeyRight),
				core.Released(core.KeyLeft), core.Released(core.KeyRight),
			},
			want: DirStill,
		},
		{
			name:   "release without press",
			events: []core.ButtonEvent{core.Released(core.KeyLeft)},
			want:   DirStill,
		},
		{
			name:   "other keys ignored",
			events: []core.ButtonEvent{core.Pressed(core.KeyLeft), core.Pressed(core.KeyPause)},
			want:   DirLeft,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			for _, ev := range tt.events {
				p.HandleButton(ev.Key, ev.Transition)
			}
			if got := p.Direction(); got != tt.want {
				t.Errorf("direction = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayerWrapsRight(t *testing.T) {
	p := newTestPlayer()
	p.HandleButton(core.KeyRight, core.Press)

	p.Advance(0.5) // 335 + 250
	if p.Pos().X != 585 {
		t.Fatalf("x after first step = %v, want 585", p.Pos().X)
	}

	p.Advance(0.5) // would overshoot 670
	if p.Pos().X != 0 {
		t.Errorf("x after crossing the right wall = %v, want 0", p.Pos().X)
	}
}

func TestPlayerWrapsLeft(t *testing.T) {
	p := newTestPlayer()
	p.HandleButton(core.KeyLeft, core.Press)

	p.Advance(0.5) // 335 - 250
	if p.Pos().X != 85 {
		t.Fatalf("x after first step = %v, want 85", p.Pos().X)
	}

	p.Advance(0.5)
	if p.Pos().X != 670 {
		t.Errorf("x after crossing the left wall = %v, want 670", p.Pos().X)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	steps := []float64{0.001, 0.016, 0.033, 0.1, 0.25, 0.7, 1.3}

	for _, dir := range []core.Key{core.KeyLeft, core.KeyRight} {
		p := newTestPlayer()
		p.HandleButton(dir, core.Press)
		for i := 0; i < 500; i++ {
			p.Advance(steps[i%len(steps)])
			x := p.Pos().X
			if x < 0 || x > 700-30 {
				t.Fatalf("%v: x = %v out of [0, 670] after %d steps", dir, x, i+1)
			}
		}
	}
}

func TestPlayerNonPositiveDt(t *testing.T) {
	for _, dt := range []float64{0, -0.5} {
		p := newTestPlayer()
		p.HandleButton(core.KeyRight, core.Press)
		p.Advance(dt)
		if p.Pos().X != 335 {
			t.Errorf("dt=%v moved player to %v", dt, p.Pos().X)
		}
	}
}

func TestPlayerStillDoesNotMove(t *testing.T) {
	p := newTestPlayer()
	p.Advance(1)
	if p.Pos().X != 335 {
		t.Errorf("still player moved to %v", p.Pos().X)
	}
}

func TestMarkCollidedIdempotent(t *testing.T) {
	p := newTestPlayer()
	p.MarkCollided()
	p.MarkCollided()
	if !p.Dead() {
		t.Error("player should be dead")
	}
}
