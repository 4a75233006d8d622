package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// ErrNoSolution is returned by Solve when the search space is exhausted
// without a solution.
var ErrNoSolution = errors.New("no solution")

// Backtracking is a depth-first solver layered on constraint
// propagation: every guess is followed by a full Deduce, and a Conflict
// abandons the branch. Each recursive frame works on a private copy of
// the board, so losing branches never have to undo anything.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

// Search collects up to cutoff solutions. The cutoff is global across
// the whole search tree: once reached, every pending frame unwinds
// without exploring remaining candidates. Branching always picks the
// first unsolved cell in row-major order and tries its candidates in
// ascending digit order, so the result sequence is exactly reproducible.
func (s *Backtracking) Search(ctx context.Context, b *domain.Board, cutoff int) ([]domain.Board, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	var found []domain.Board

	var dfs func(cur domain.Board)
	dfs = func(cur domain.Board) {
		if ctx.Err() != nil || len(found) >= cutoff {
			return
		}
		i, ok := cur.FirstUnsolved()
		if !ok {
			found = append(found, cur)
			return
		}
		for set := cur.Cell(i).Candidates(); ; {
			d, more := set.Take()
			if !more {
				return
			}
			nodes++
			trial := cur
			trial.SetCell(i, d)
			if trial.Deduce() != domain.Conflict {
				dfs(trial)
			}
			if ctx.Err() != nil || len(found) >= cutoff {
				return
			}
		}
	}

	root := *b
	if root.Deduce() != domain.Conflict {
		dfs(root)
	}
	return found, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}

// Solve returns the first solution in search order.
func (s *Backtracking) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	sols, st, err := s.Search(ctx, b, 1)
	if err != nil {
		return nil, st, err
	}
	if len(sols) == 0 {
		return nil, st, ErrNoSolution
	}
	return &sols[0], st, nil
}

// Unique counts solutions up to 2 and reports whether exactly one
// exists. Cutoff 2 is enough to tell "unique" from "multiple" without
// enumerating the rest of the space.
func (s *Backtracking) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	sols, st, err := s.Search(ctx, b, 2)
	if err != nil {
		return false, st, err
	}
	return len(sols) == 1, st, nil
}
