package frame

// State is the driver's position in the redraw cycle.
type State uint8

const (
	Idle State = iota
	Rendering
	HandlingInput
)

func (s State) Name() string {
	switch s {
	case Idle:
		return "idle"
	case Rendering:
		return "rendering"
	case HandlingInput:
		return "handling-input"
	default:
		return "unknown"
	}
}

func (s State) String() string { return s.Name() }
