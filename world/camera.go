package world

// Camera is the eye position, moved in whole steps from its origin.
//
// Keeping integer step counts makes opposite moves cancel exactly.
type Camera struct {
	origin Location
	step   float64
	dx, dy int
}

func NewCamera(origin Location, step float64) *Camera {
	return &Camera{origin: origin, step: step}
}

func (c *Camera) MoveLeft()  { c.dx-- }
func (c *Camera) MoveRight() { c.dx++ }
func (c *Camera) MoveUp()    { c.dy++ }
func (c *Camera) MoveDown()  { c.dy-- }

func (c *Camera) X() float64 { return c.origin.X() + float64(c.dx)*c.step }
func (c *Camera) Y() float64 { return c.origin.Y() + float64(c.dy)*c.step }
func (c *Camera) Z() float64 { return c.origin.Z() }

func (c *Camera) Eye() Location { return NewLocation(c.X(), c.Y(), c.Z()) }

func (c *Camera) Step() float64 { return c.step }
