package algodft

// Direction selects between the forward and inverse transform.
type Direction uint8

const (
	// Forward computes the unnormalized DFT.
	Forward Direction = iota
	// Inverse computes the inverse DFT, normalized by 1/N.
	Inverse
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return "unknown"
	}
}
