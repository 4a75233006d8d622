package ports

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver runs backtracking search over a board.
type Solver interface {
	// Search collects up to cutoff solutions in deterministic order.
	// A full result (len == cutoff) does not imply further solutions
	// were ruled out.
	Search(ctx context.Context, b *domain.Board, cutoff int) ([]domain.Board, Stats, error)
	// Solve returns the first solution, or an error when none exists.
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	// Unique reports whether the board has exactly one solution.
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Generator creates puzzles with a unique solution from a seed.
type Generator interface {
	Generate(ctx context.Context, seed uint64) (*domain.Board, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step, if one is visible.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error)
}

// Storage reads and writes single puzzles as text files.
type Storage interface {
	Load(ctx context.Context, path string) (domain.Board, error)
	Save(ctx context.Context, path string, b *domain.Board) error
}
