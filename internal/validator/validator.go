package validator

import (
	"context"

	"svw.info/sudokugen/internal/domain"
)

// FastValidator checks the row/column/box constraints directly, without
// touching the propagation machinery.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports whether the determined cells of b respect the Sudoku
// constraints. Every cell that repeats an earlier digit within a unit is
// returned as a conflict; undetermined cells are ignored.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for u := 0; u < domain.UnitCount; u++ {
		var seen domain.CandidateSet
		for _, i := range domain.Unit(u) {
			d, ok := b.Cell(i).Value()
			if !ok {
				continue
			}
			if seen.Contains(d) {
				conf = append(conf, domain.Coord(i))
				continue
			}
			seen = seen.Insert(d)
		}
	}
	return len(conf) == 0, conf, nil
}

// Complete reports whether every row, column, and box of b contains
// each digit 1-9 exactly once.
func (v *FastValidator) Complete(b *domain.Board) bool {
	for u := 0; u < domain.UnitCount; u++ {
		var seen domain.CandidateSet
		for _, i := range domain.Unit(u) {
			d, ok := b.Cell(i).Value()
			if !ok {
				return false
			}
			if seen.Contains(d) {
				return false
			}
			seen = seen.Insert(d)
		}
	}
	return true
}
