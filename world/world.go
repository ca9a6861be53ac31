package world

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var ErrNoBalls = errors.New("world: at least one ball is required")

// Options describes the initial scene.
type Options struct {
	Balls    int
	Radius   float64
	Step     float64
	Bounds   Bounds
	SpawnMin int // inclusive integer range for random x and z start coordinates
	SpawnMax int

	SphereSlices int
	SphereStacks int

	BoardCells    int
	BoardCellSize float64
	BoardColors   [2]Color

	Eye        Location
	CameraStep float64
}

// DefaultOptions reproduces the classic demo: seven balls over an 8x8 red/white board.
func DefaultOptions() Options {
	return Options{
		Balls:         7,
		Radius:        0.5,
		Step:          0.05,
		Bounds:        Bounds{Lower: 0.5, Upper: 2},
		SpawnMin:      1,
		SpawnMax:      7,
		SphereSlices:  16,
		SphereStacks:  16,
		BoardCells:    8,
		BoardCellSize: 1,
		BoardColors:   [2]Color{Red, White},
		Eye:           NewLocation(0, 5, 10),
		CameraStep:    0.2,
	}
}

// World is the whole simulation state, passed explicitly to update and render code.
type World struct {
	Balls  []*Ball
	Camera *Camera
	Board  *Checkerboard
}

// New builds a world. Ball start coordinates are drawn from rng in x, z, y order: x and z
// are integers in [SpawnMin, SpawnMax], y lies strictly inside the bounce bounds so the
// first update already moves every ball.
func New(o Options, rng *rand.Rand) (*World, error) {
	if o.Balls <= 0 {
		return nil, ErrNoBalls
	}
	if o.Bounds.Lower < o.Radius {
		return nil, fmt.Errorf("%w: floor %g is below the ball radius %g", ErrInvalidBounds, o.Bounds.Lower, o.Radius)
	}
	if o.SpawnMin > o.SpawnMax {
		return nil, fmt.Errorf("world: spawn range [%d, %d] is empty", o.SpawnMin, o.SpawnMax)
	}

	board, err := NewCheckerboard(o.BoardCells, o.BoardCellSize, o.BoardColors[0], o.BoardColors[1])
	if err != nil {
		return nil, err
	}
	board.Create()

	span := o.SpawnMax - o.SpawnMin + 1
	draw := func() float64 { return float64(o.SpawnMin + rng.IntN(span)) }
	height := func() float64 {
		u := rng.Float64()
		for u == 0 {
			u = rng.Float64()
		}
		return o.Bounds.Lower + u*(o.Bounds.Upper-o.Bounds.Lower)
	}

	balls := make([]*Ball, 0, o.Balls)
	for i := 0; i < o.Balls; i++ {
		x := draw()
		z := draw()
		y := height()
		b, err := NewBall(NewLocation(x, y, z), Palette[i%len(Palette)], o.Radius, o.Bounds, o.Step)
		if err != nil {
			return nil, fmt.Errorf("ball %d: %w", i, err)
		}
		if o.SphereSlices > 0 && o.SphereStacks > 0 {
			b.SetDetail(o.SphereSlices, o.SphereStacks)
		}
		balls = append(balls, b)
	}

	return &World{
		Balls:  balls,
		Camera: NewCamera(o.Eye, o.CameraStep),
		Board:  board,
	}, nil
}

// LookAt returns the camera eye and its target, the board centre on the y=0 plane.
func (w *World) LookAt() (eye, target Location) {
	return w.Camera.Eye(), NewLocation(w.Board.CenterX(), 0, w.Board.CenterZ())
}

// Render draws the board and then updates and draws every ball. It returns the number
// of balls that reflected.
func (w *World) Render(p Painter) int {
	w.Board.Draw(p)
	bounced := 0
	for _, b := range w.Balls {
		if b.Update(p) {
			bounced++
		}
	}
	return bounced
}
