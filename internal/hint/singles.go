package hint

import (
	"context"
	"fmt"

	"svw.info/sudokugen/internal/domain"
)

// Singles implements a minimal Hinter that suggests naked singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first cell whose candidates collapse to a single
// digit once the digits of its determined peers are eliminated.
func (h *Singles) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	for i := 0; i < domain.CellCount; i++ {
		c := b.Cell(i)
		if c.Unique() {
			continue
		}
		left := c.Candidates() &^ peerDigits(b, i)
		if left.Count() == 1 {
			d, _ := left.Take()
			return domain.Hint{
				Message: fmt.Sprintf("Single: only %d fits here", d),
				Digit:   d,
				Cell:    domain.Coord(i),
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

// peerDigits collects the digits already fixed in the row, column, and
// box containing cell idx.
func peerDigits(b *domain.Board, idx int) domain.CandidateSet {
	r, c := idx/9, idx%9
	var claimed domain.CandidateSet
	for _, u := range [3]int{r, 9 + c, 18 + (r/3)*3 + c/3} {
		for _, i := range domain.Unit(u) {
			if i == idx {
				continue
			}
			if d, ok := b.Cell(i).Value(); ok {
				claimed = claimed.Insert(d)
			}
		}
	}
	return claimed
}
