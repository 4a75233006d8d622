// Package render draws boards as plain text. It is a collaborator of
// the core, not part of it: it only reads cells through Value and
// IsGiven.
package render

import (
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"

	"svw.info/sudokugen/internal/domain"
)

// Renderer formats boards for a terminal. With Color set, givens are
// bold blue, deduced values green, and candidate counts yellow.
type Renderer struct {
	Color bool
}

func New(color bool) *Renderer { return &Renderer{Color: color} }

// Grid renders the board values: digits for determined cells, '_' for
// blanks, box separators every three columns and rows.
func (r *Renderer) Grid(b *domain.Board) string {
	return r.render(b, func(c domain.Cell) string {
		d, ok := c.Value()
		if !ok {
			return "_"
		}
		s := strconv.Itoa(d)
		if r.Color && c.IsGiven() {
			return aurora.Blue(s).Bold().String()
		}
		return s
	})
}

// Candidates renders the working state of a board mid-deduction:
// determined cells show their digit, undetermined cells the number of
// candidates they still hold.
func (r *Renderer) Candidates(b *domain.Board) string {
	return r.render(b, func(c domain.Cell) string {
		if d, ok := c.Value(); ok {
			s := strconv.Itoa(d)
			if !r.Color {
				return s
			}
			if c.IsGiven() {
				return aurora.Blue(s).Bold().String()
			}
			return aurora.Green(s).String()
		}
		s := strconv.Itoa(c.Candidates().Count())
		if r.Color {
			return aurora.Yellow(s).String()
		}
		return s
	})
}

func (r *Renderer) render(b *domain.Board, cell func(domain.Cell) string) string {
	var sb strings.Builder
	for i := 0; i < domain.CellCount; i++ {
		sb.WriteString(" " + cell(b.Cell(i)) + " ")
		switch {
		case i == domain.CellCount-1:
		case (i+1)%27 == 0:
			sb.WriteString("\n" + strings.Repeat("-", 33) + "\n")
		case (i+1)%9 == 0:
			sb.WriteString("\n")
		case (i+1)%3 == 0:
			sb.WriteString(" | ")
		}
	}
	return sb.String()
}
