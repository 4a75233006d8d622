package domain

// CellCoord identifies a cell by row and column.
type CellCoord struct {
	Row int
	Col int
}

// Coord converts a row-major cell index to a CellCoord.
func Coord(i int) CellCoord {
	return CellCoord{Row: i / 9, Col: i % 9}
}

// Index converts the coordinate back to a row-major cell index.
func (c CellCoord) Index() int {
	return c.Row*9 + c.Col
}

// Hint describes a suggested next step.
type Hint struct {
	Message string
	Digit   int
	Cell    CellCoord
}
