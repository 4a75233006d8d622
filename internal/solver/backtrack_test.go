package solver

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/validator"
)

// A classic solvable puzzle and its (unique) solution.
const (
	classicPuzzle = "53xx7xxxx6xx195xxxx98xxxx6x8xxx6xxx34xx8x3xx17xxx2xxx6x6xxxx28xxxx419xx5xxxx8xx79"
	classicSolved = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	// classicSolved with the digits 1 and 3 blanked at rows 4-5,
	// columns 6 and 9: the four cells form a swappable rectangle, so
	// exactly two completions exist.
	twoSolutions = "53467891267219534819834256785976x42x42685x79x713924856961537284287419635345286179"
)

func mustParse(t *testing.T, text string) domain.Board {
	t.Helper()
	b, err := domain.Parse(text)
	require.NoError(t, err)
	return b
}

func TestSolveClassicPuzzle(t *testing.T) {
	b := mustParse(t, classicPuzzle)
	s := NewBacktracking()

	out, st, err := s.Solve(context.Background(), &b)
	require.NoError(t, err)
	require.Equal(t, classicSolved, out.String())
	require.True(t, out.Solved())
	require.True(t, validator.New().Complete(out))
	t.Logf("solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestSolvePreservesGivens(t *testing.T) {
	b := mustParse(t, classicPuzzle)
	s := NewBacktracking()

	out, _, err := s.Solve(context.Background(), &b)
	require.NoError(t, err)
	for i := 0; i < domain.CellCount; i++ {
		if !b.Cell(i).IsGiven() {
			continue
		}
		want, _ := b.Cell(i).Value()
		got, ok := out.Cell(i).Value()
		require.True(t, ok)
		require.Equalf(t, want, got, "given at cell %d changed", i)
		require.True(t, out.Cell(i).IsGiven())
	}
}

func TestSearchRespectsCutoff(t *testing.T) {
	s := NewBacktracking()
	cases := []struct {
		name   string
		cutoff int
		want   int
	}{
		{"cutoff one", 1, 1},
		{"cutoff two", 2, 2},
		{"cutoff beyond solution count", 5, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustParse(t, twoSolutions)
			sols, _, err := s.Search(context.Background(), &b, tc.cutoff)
			require.NoError(t, err)
			require.Len(t, sols, tc.want)
		})
	}
}

func TestSearchOrderIsReproducible(t *testing.T) {
	s := NewBacktracking()
	b1 := mustParse(t, twoSolutions)
	b2 := mustParse(t, twoSolutions)

	first, _, err := s.Search(context.Background(), &b1, 2)
	require.NoError(t, err)
	second, _, err := s.Search(context.Background(), &b2, 2)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestUnique(t *testing.T) {
	s := NewBacktracking()

	b := mustParse(t, classicPuzzle)
	unique, _, err := s.Unique(context.Background(), &b)
	require.NoError(t, err)
	require.True(t, unique)

	b = mustParse(t, twoSolutions)
	unique, _, err = s.Unique(context.Background(), &b)
	require.NoError(t, err)
	require.False(t, unique)
}

func TestSolveUnsatisfiable(t *testing.T) {
	b := mustParse(t, "55xxxxxxx"+strings.Repeat("x", 72))
	s := NewBacktracking()
	_, _, err := s.Solve(context.Background(), &b)
	require.ErrorIs(t, err, ErrNoSolution)
}

func TestSearchHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := mustParse(t, strings.Repeat("x", 81))
	s := NewBacktracking()
	_, _, err := s.Search(ctx, &b, 1)
	require.ErrorIs(t, err, context.Canceled)
}
