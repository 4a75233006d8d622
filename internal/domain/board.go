package domain

import (
	"errors"
	"fmt"
	"strings"
)

// CellCount is the number of cells on a 9x9 board.
const CellCount = 81

// ErrShortPuzzle is returned by Parse when the input produces fewer
// than 81 cells.
var ErrShortPuzzle = errors.New("puzzle text too short")

// Board is an 81-cell Sudoku grid, addressed row-major
// (index = row*9 + col). Board is a plain value: assignment copies it,
// which is what the search relies on for snapshots.
type Board struct {
	cells [CellCount]Cell
}

// UnitCount is the number of constraint partitions: 9 rows, 9 columns,
// 9 non-overlapping 3x3 boxes.
const UnitCount = 27

// units lists the cell indices of each partition, rows first, then
// columns, then boxes.
var units [UnitCount][9]int

// Unit returns the cell indices of partition u (0-8 rows, 9-17 columns,
// 18-26 boxes).
func Unit(u int) [9]int { return units[u] }

func init() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			units[r][c] = r*9 + c
			units[9+c][r] = r*9 + c
		}
	}
	for b := 0; b < 9; b++ {
		start := (b/3)*27 + (b%3)*3
		for i := 0; i < 9; i++ {
			units[18+b][i] = start + (i/3)*9 + i%3
		}
	}
}

// Parse builds a Board from puzzle text. Digits '1'-'9' become given
// cells, 'x' and '0' become blanks, and every other character (spaces,
// newlines, separators) is skipped, so row-formatted sources load as-is.
// Value characters beyond the 81st are ignored.
func Parse(text string) (Board, error) {
	var b Board
	n := 0
	for _, ch := range text {
		if n == CellCount {
			break
		}
		switch {
		case ch >= '1' && ch <= '9':
			b.cells[n] = NewGiven(int(ch - '0'))
			n++
		case ch == 'x' || ch == '0':
			b.cells[n] = NewBlank()
			n++
		}
	}
	if n < CellCount {
		return Board{}, fmt.Errorf("%w: got %d of %d cells", ErrShortPuzzle, n, CellCount)
	}
	return b, nil
}

// Empty returns a board of 81 blank cells.
func Empty() Board {
	var b Board
	for i := range b.cells {
		b.cells[i] = NewBlank()
	}
	return b
}

// Cell returns the cell at index i.
func (b *Board) Cell(i int) Cell { return b.cells[i] }

// SetCell forces the cell at index i to digit d.
func (b *Board) SetCell(i, d int) { b.cells[i].Set(d) }

// ClearCell resets the cell at index i to an undetermined blank.
func (b *Board) ClearCell(i int) { b.cells[i] = NewBlank() }

// MarkGivens flags every uniquely determined cell as a given, so the
// rendering layer can tell original clues from solver-filled values.
func (b *Board) MarkGivens() {
	for i := range b.cells {
		b.cells[i].given = b.cells[i].Unique()
	}
}

// FirstUnsolved returns the index of the first cell in row-major order
// that is not uniquely determined. The scan order is a deliberate
// deterministic tie-break: generated boards and search traces for a
// fixed seed depend on it.
func (b *Board) FirstUnsolved() (int, bool) {
	for i := range b.cells {
		if !b.cells[i].Unique() {
			return i, true
		}
	}
	return 0, false
}

// Solved reports whether every cell is uniquely determined.
func (b *Board) Solved() bool {
	_, ok := b.FirstUnsolved()
	return !ok
}

// deduceUnit runs one elimination pass over a single unit. It collects
// the digits already claimed by unique cells, reports Conflict when two
// cells claim the same digit, and otherwise strips the claimed digits
// from every remaining cell in the unit.
func (b *Board) deduceUnit(unit *[9]int) Outcome {
	var claimed CandidateSet
	for _, i := range unit {
		if d, ok := b.cells[i].Value(); ok {
			s := SingleCandidate(d)
			if claimed&s != 0 {
				return Conflict
			}
			claimed |= s
		}
	}
	removed := 0
	for _, i := range unit {
		removed += b.cells[i].Remove(claimed)
	}
	if removed == 0 {
		return NoChange
	}
	return Consistent
}

// Deduce propagates constraints to saturation: it sweeps all 27 units,
// repeating until a full sweep eliminates nothing, and stops immediately
// on Conflict. This is the naked-single rule applied to a fixed point.
func (b *Board) Deduce() Outcome {
	result := NoChange
	for {
		sweep := NoChange
		for u := range units {
			switch b.deduceUnit(&units[u]) {
			case Conflict:
				return Conflict
			case Consistent:
				sweep = Consistent
			}
		}
		if sweep == NoChange {
			return result
		}
		result = result.merge(sweep)
	}
}

// String returns the board as an 81-character line: '1'-'9' for
// determined cells, 'x' for blanks. Parse accepts the result unchanged.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)
	for i := range b.cells {
		if d, ok := b.cells[i].Value(); ok {
			sb.WriteByte('0' + byte(d))
		} else {
			sb.WriteByte('x')
		}
	}
	return sb.String()
}
