package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
)

func TestGridPlain(t *testing.T) {
	b, err := domain.Parse("53xx7xxxx" + strings.Repeat("x", 72))
	require.NoError(t, err)

	out := New(false).Grid(&b)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 11, "9 rows plus 2 separator rules")
	require.Equal(t, " 5  3  _  |  _  7  _  |  _  _  _ ", lines[0])
	require.Equal(t, strings.Repeat("-", 33), lines[3])
	require.NotContains(t, out, "\x1b[", "plain mode must not emit escape codes")
}

func TestGridColorMarksGivens(t *testing.T) {
	b, err := domain.Parse("5" + strings.Repeat("x", 80))
	require.NoError(t, err)

	out := New(true).Grid(&b)
	require.Contains(t, out, "\x1b[", "color mode must emit escape codes")
}

func TestCandidatesViewShowsCounts(t *testing.T) {
	b, err := domain.Parse("5" + strings.Repeat("x", 80))
	require.NoError(t, err)
	b.Deduce()

	out := New(false).Candidates(&b)
	// Peers of the lone given lost one candidate each.
	require.Contains(t, out, "8")
	require.Contains(t, out, "9")
	require.NotContains(t, out, "_")
}
