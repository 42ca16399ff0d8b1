package engine

// Line - an ordered triple of cells; a side holding all three wins.
type Line [Size]Cell

// Lines - the eight winning lines: three rows, three columns and both
// diagonals. Built once from the grid size and never mutated.
var Lines = winningLines()

func winningLines() []Line {
	lines := make([]Line, 0, 2*Size+2)

	for i := 0; i < Size; i++ {
		var row Line
		for j := 0; j < Size; j++ {
			row[j] = Cell{Row: i, Col: j}
		}
		lines = append(lines, row)
	}

	for i := 0; i < Size; i++ {
		var col Line
		for j := 0; j < Size; j++ {
			col[j] = Cell{Row: j, Col: i}
		}
		lines = append(lines, col)
	}

	var main, anti Line
	for i := 0; i < Size; i++ {
		main[i] = Cell{Row: i, Col: i}
		anti[i] = Cell{Row: i, Col: Size - 1 - i}
	}

	return append(lines, main, anti)
}
