package trafficlight

// Phase is the signal shown by a traffic light.
type Phase int32

const (
	Red Phase = iota
	Green
)

func (p Phase) String() string {
	switch p {
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return "unknown"
	}
}

// Toggle returns the phase that follows p.
func (p Phase) Toggle() Phase {
	if p == Red {
		return Green
	}
	return Red
}
