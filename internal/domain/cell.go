package domain

// Cell is one board position: a candidate set plus a flag marking
// original clues.
type Cell struct {
	given      bool
	candidates CandidateSet
}

// NewGiven creates a clue cell fixed to digit d.
func NewGiven(d int) Cell {
	return Cell{given: true, candidates: SingleCandidate(d)}
}

// NewBlank creates an undetermined cell holding all nine candidates.
func NewBlank() Cell {
	return Cell{candidates: allNine}
}

// IsGiven reports whether the cell is an original clue.
func (c Cell) IsGiven() bool { return c.given }

// Unique reports whether exactly one candidate remains.
func (c Cell) Unique() bool { return c.candidates.Count() == 1 }

// Value returns the cell's digit. It reports false unless exactly one
// candidate remains.
func (c Cell) Value() (int, bool) {
	if !c.Unique() {
		return 0, false
	}
	set := c.candidates
	d, _ := set.Take()
	return d, true
}

// Candidates returns the cell's remaining candidate set.
func (c Cell) Candidates() CandidateSet { return c.candidates }

// Set forces the cell to the singleton {d}. Used for clues and for
// trial guesses during search.
func (c *Cell) Set(d int) {
	c.candidates = SingleCandidate(d)
}

// Remove clears every candidate in mask from a non-unique cell and
// returns the number of bits actually cleared. Unique cells are left
// untouched: a determined cell never loses its value through peer
// elimination.
func (c *Cell) Remove(mask CandidateSet) int {
	if c.Unique() {
		return 0
	}
	before := c.candidates.Count()
	c.candidates &^= mask
	return before - c.candidates.Count()
}
