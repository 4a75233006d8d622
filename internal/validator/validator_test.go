package validator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
)

const solvedText = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func TestValidateCleanBoard(t *testing.T) {
	b, err := domain.Parse(solvedText)
	require.NoError(t, err)

	ok, conflicts, err := New().Validate(context.Background(), &b)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, conflicts)
}

func TestValidateFlagsDuplicates(t *testing.T) {
	b, err := domain.Parse("5xxx5xxxx" + strings.Repeat("x", 72))
	require.NoError(t, err)

	ok, conflicts, err := New().Validate(context.Background(), &b)
	require.NoError(t, err)
	require.False(t, ok)
	require.Contains(t, conflicts, domain.CellCoord{Row: 0, Col: 4})
}

func TestComplete(t *testing.T) {
	full, err := domain.Parse(solvedText)
	require.NoError(t, err)
	require.True(t, New().Complete(&full))

	partial, err := domain.Parse("53xx7xxxx" + strings.Repeat("x", 72))
	require.NoError(t, err)
	require.False(t, New().Complete(&partial))
}
