package hint

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	// Row 1 has eight givens; only 9 fits the remaining cell.
	b, err := domain.Parse("12345678x" + strings.Repeat("x", 72))
	require.NoError(t, err)

	h, found, err := NewSingles().Hint(context.Background(), &b)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 9, h.Digit)
	require.Equal(t, domain.CellCoord{Row: 0, Col: 8}, h.Cell)
	require.Contains(t, h.Message, "9")
}

func TestHintNoneVisible(t *testing.T) {
	b, err := domain.Parse(strings.Repeat("x", 81))
	require.NoError(t, err)

	_, found, err := NewSingles().Hint(context.Background(), &b)
	require.NoError(t, err)
	require.False(t, found)
}
