package generator

import (
	"context"
	"errors"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
	"svw.info/sudokugen/internal/random"
)

// ErrExhausted signals a broken internal invariant: clue insertion ran
// out of legal digits for a cell even though the board still had a
// solution. It should never surface from a consistent diagonal fill.
var ErrExhausted = errors.New("clue insertion exhausted all legal digits")

// UniqueGenerator builds puzzles with a provably unique solution. It is
// fully deterministic: the same seed produces a bit-identical board. It
// never retries on its own; picking a fresh seed is the caller's call.
type UniqueGenerator struct {
	Solver ports.Solver
}

// NewUniqueGenerator wires a generator that uses the given solver for
// uniqueness checks.
func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

// The three diagonal 3x3 boxes share no row, column, or box with each
// other, so they can be filled with independent permutations without
// ever conflicting.
var diagonalStarts = [3]int{0, 30, 60}

var boxOffsets = [9]int{0, 1, 2, 9, 10, 11, 18, 19, 20}

// Generate builds a puzzle in four phases: fill the diagonal boxes with
// random permutations, insert random clues until the board is uniquely
// solvable, greedily blank clues that uniqueness can spare, then mark
// the survivors as givens.
func (g *UniqueGenerator) Generate(ctx context.Context, seed uint64) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	rng := random.New(seed)
	nodes := 0

	b := domain.Empty()
	for _, boxStart := range diagonalStarts {
		perm := rng.Perm(9)
		for k, off := range boxOffsets {
			b.SetCell(boxStart+off, perm[k]+1)
		}
	}
	b.Deduce()

	// Phase 2: randomized clue insertion. Every visited cell either gets
	// a clue that keeps the board solvable, or the board collapses to a
	// single solution and the phase ends early.
	for _, idx := range rng.Perm(domain.CellCount) {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if b.Cell(idx).Unique() {
			continue
		}
		digits := make([]int, 0, 9)
		for set := b.Cell(idx).Candidates(); ; {
			d, ok := set.Take()
			if !ok {
				break
			}
			digits = append(digits, d)
		}
		rng.Shuffle(digits)

		solved, placed := false, false
		for _, d := range digits {
			saved := b
			b.SetCell(idx, d)
			sols, st, err := g.Solver.Search(ctx, &b, 2)
			nodes += st.Nodes
			if err != nil {
				return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
			}
			switch len(sols) {
			case 0:
				// Contradiction: this digit kills the board. Revert and
				// try the next one.
				b = saved
			case 1:
				b = sols[0]
				solved = true
			default:
				b.Deduce()
				placed = true
			}
			if solved || placed {
				break
			}
		}
		if solved {
			break
		}
		if !placed {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrExhausted
		}
	}

	// Phase 3: minimization. Blank each clue in a fresh random order and
	// keep the blank only while the puzzle stays uniquely solvable. The
	// result is minimal with respect to the visitation order, not
	// globally minimal.
	for _, idx := range rng.Perm(domain.CellCount) {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		d, ok := b.Cell(idx).Value()
		if !ok {
			continue
		}
		b.ClearCell(idx)
		sols, st, err := g.Solver.Search(ctx, &b, 2)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if len(sols) != 1 {
			b.SetCell(idx, d)
		}
	}

	b.MarkGivens()
	return &b, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
