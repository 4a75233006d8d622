package storage

import (
	"context"
	"fmt"
	"os"

	"svw.info/sudokugen/internal/domain"
)

// Files reads and writes single puzzles as plain text. The core never
// touches the filesystem itself; this adapter hands it already-read
// text and persists what it produces.
type Files struct{}

func NewFiles() *Files { return &Files{} }

// Load reads a puzzle file and parses it. Short or unreadable files
// fail here, at the I/O boundary.
func (s *Files) Load(ctx context.Context, path string) (domain.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Board{}, fmt.Errorf("read puzzle: %w", err)
	}
	b, err := domain.Parse(string(data))
	if err != nil {
		return domain.Board{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return b, nil
}

// Save writes the board as a single 81-character line that Load accepts
// back unchanged.
func (s *Files) Save(ctx context.Context, path string, b *domain.Board) error {
	return os.WriteFile(path, []byte(b.String()+"\n"), 0o644)
}
