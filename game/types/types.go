package types

// Cell is a single grid position. X grows rightwards, Y grows downwards.
type Cell struct {
	X, Y int
}

// Grid represents the game grid dimensions
type Grid struct {
	Cols int
	Rows int
}

// Contains reports whether c lies inside the grid bounds.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Center returns the cell at the middle of the grid.
func (g Grid) Center() Cell {
	return Cell{X: g.Cols / 2, Y: g.Rows / 2}
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var dirOffsets = [4]Cell{
	DirUp:    {X: 0, Y: -1},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
	DirRight: {X: 1, Y: 0},
}

var dirOpposites = [4]Direction{
	DirUp:    DirDown,
	DirDown:  DirUp,
	DirLeft:  DirRight,
	DirRight: DirLeft,
}

var dirNames = [4]string{
	DirUp:    "Up",
	DirDown:  "Down",
	DirLeft:  "Left",
	DirRight: "Right",
}

// Offset returns the unit displacement for one move in this direction.
func (d Direction) Offset() Cell {
	return dirOffsets[d]
}

// Opposite returns the 180-degree reverse of this direction.
func (d Direction) Opposite() Direction {
	return dirOpposites[d]
}

func (d Direction) String() string {
	if d < DirUp || d > DirRight {
		return "Unknown"
	}
	return dirNames[d]
}

// Game constants
const (
	GridCols = 32 // 640px viewport / 20px cells
	GridRows = 24 // 480px viewport / 20px cells
	CellSize = 20 // Pixel size of one cell in the windowed front-end

	InitialMoveDelay = 150 // Milliseconds between moves at score 0
	SpeedupStep      = 2   // Delay reduction in ms per food eaten
	MinMoveDelay     = 50  // Delay floor in ms
)
