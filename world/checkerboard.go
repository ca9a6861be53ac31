package world

import (
	"errors"
	"fmt"

	"bouncer/fixedgl"
)

var ErrInvalidBoard = errors.New("world: invalid checkerboard")

type boardCell struct {
	x0, z0 float32
	color  Color
}

// Checkerboard is a flat grid of alternating colors on the y=0 plane, starting at the origin.
type Checkerboard struct {
	cells    int
	cellSize float64
	colors   [2]Color

	grid []boardCell
}

func NewCheckerboard(cells int, cellSize float64, even, odd Color) (*Checkerboard, error) {
	if cells <= 0 {
		return nil, fmt.Errorf("%w: %d cells", ErrInvalidBoard, cells)
	}
	if !(cellSize > 0) {
		return nil, fmt.Errorf("%w: cell size %g", ErrInvalidBoard, cellSize)
	}
	return &Checkerboard{cells: cells, cellSize: cellSize, colors: [2]Color{even, odd}}, nil
}

// Create builds the grid. Later calls are no-ops.
func (b *Checkerboard) Create() {
	if b.grid != nil {
		return
	}
	b.grid = make([]boardCell, 0, b.cells*b.cells)
	for i := 0; i < b.cells; i++ {
		for j := 0; j < b.cells; j++ {
			b.grid = append(b.grid, boardCell{
				x0:    float32(float64(i) * b.cellSize),
				z0:    float32(float64(j) * b.cellSize),
				color: b.colors[(i+j)%2],
			})
		}
	}
}

func (b *Checkerboard) Created() bool { return b.grid != nil }

// Draw issues one quad per cell. It draws nothing before Create.
func (b *Checkerboard) Draw(p Painter) {
	if !b.Created() {
		return
	}
	s := float32(b.cellSize)
	p.Begin(fixedgl.Quads)
	p.Normal(0, 1, 0)
	for _, c := range b.grid {
		p.MaterialAmbientAndDiffuse(glColor(c.color))
		p.Vertex(c.x0, 0, c.z0)
		p.Vertex(c.x0+s, 0, c.z0)
		p.Vertex(c.x0+s, 0, c.z0+s)
		p.Vertex(c.x0, 0, c.z0+s)
	}
	p.End()
}

// Extent returns the board bounds on the x and z axes.
func (b *Checkerboard) Extent() (minX, maxX, minZ, maxZ float64) {
	size := float64(b.cells) * b.cellSize
	return 0, size, 0, size
}

func (b *Checkerboard) CenterX() float64 {
	minX, maxX, _, _ := b.Extent()
	return (minX + maxX) / 2
}

func (b *Checkerboard) CenterZ() float64 {
	_, _, minZ, maxZ := b.Extent()
	return (minZ + maxZ) / 2
}

func (b *Checkerboard) Cells() int { return b.cells }

// ColorAt returns the color of cell (i, j).
func (b *Checkerboard) ColorAt(i, j int) Color { return b.colors[(i+j)%2] }
