package invaders

import "github.com/vovakirdan/tui-invaders/internal/games/invaders/levels"

// LevelSource returns the marker grid of a stage. Missing or malformed
// stages are expected to come back empty rather than fail.
type LevelSource interface {
	Grid(stage int) [][]int
}

// GridPos is a formation cell.
type GridPos struct {
	Col, Row int
}

// Formation is the ordered list of marked cells of a stage.
type Formation []GridPos

// FormationFromGrid scans the grid row by row and keeps the marked cells.
func FormationFromGrid(grid [][]int) Formation {
	var f Formation
	for row, cells := range grid {
		for col, v := range cells {
			if v == levels.Marker {
				f = append(f, GridPos{Col: col, Row: row})
			}
		}
	}
	return f
}

// Placement maps grid cells to world coordinates.
type Placement struct {
	OriginX, OriginY float64
	ColStep, RowStep float64
}

// At returns the world position of a cell. Rows grow downwards.
func (p Placement) At(pos GridPos) (x, y float64) {
	return p.OriginX + p.ColStep*float64(pos.Col), p.OriginY - p.RowStep*float64(pos.Row)
}
