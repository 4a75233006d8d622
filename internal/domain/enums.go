package domain

// Outcome classifies one propagation pass.
type Outcome int

const (
	NoChange   Outcome = iota // fixed point, nothing eliminated
	Consistent                // progress made, worth another pass
	Conflict                  // two cells in one unit fixed to the same digit
)

func (o Outcome) String() string {
	switch o {
	case Consistent:
		return "consistent"
	case Conflict:
		return "conflict"
	default:
		return "no-change"
	}
}

// merge combines outcomes with precedence Conflict > Consistent > NoChange.
func (o Outcome) merge(other Outcome) Outcome {
	if other > o {
		return other
	}
	return o
}
