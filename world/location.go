package world

import "fmt"

// Location is a mutable point in world space.
type Location struct {
	x, y, z float64
}

func NewLocation(x, y, z float64) Location { return Location{x: x, y: y, z: z} }

func (l *Location) Set(x, y, z float64) { l.x, l.y, l.z = x, y, z }
func (l *Location) SetX(x float64)      { l.x = x }
func (l *Location) SetY(y float64)      { l.y = y }
func (l *Location) SetZ(z float64)      { l.z = z }

func (l Location) X() float64 { return l.x }
func (l Location) Y() float64 { return l.y }
func (l Location) Z() float64 { return l.z }

func (l Location) String() string { return fmt.Sprintf("(%.2f, %.2f, %.2f)", l.x, l.y, l.z) }
