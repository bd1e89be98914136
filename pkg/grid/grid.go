package grid

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{0, -1}
	Down  = Direction{0, 1}
	Left  = Direction{-1, 0}
	Right = Direction{1, 0}
)

// Directions lists the four cardinal steps in a stable order.
var Directions = []Direction{Up, Down, Left, Right}

// Cell is a coordinate on the grid.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away in the given direction.
func (c Cell) Add(d Direction) Cell {
	return Cell{c.X + d.DX, c.Y + d.DY}
}

// Distance returns the Manhattan distance between two cells.
func (c Cell) Distance(other Cell) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Grid is a rectangular maze: every cell is either a wall or open floor.
type Grid struct {
	Width  int
	Height int
	walls  []bool // row-major, true = wall
}

// New creates a grid of the given size with every cell walled.
func New(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		walls:  make([]bool, width*height),
	}
	for i := range g.walls {
		g.walls[i] = true
	}
	return g
}

// Index packs a cell into a row-major index. Callers must pass
// in-bounds coordinates.
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// CellAt unpacks a row-major index back into a cell.
func (g *Grid) CellAt(index int) Cell {
	return Cell{X: index % g.Width, Y: index / g.Width}
}

// InBounds reports whether the coordinates lie on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsWall reports whether the cell is a wall. Out-of-bounds counts as wall.
func (g *Grid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.walls[g.Index(x, y)]
}

// IsOpen reports whether the cell can be entered.
func (g *Grid) IsOpen(x, y int) bool {
	return !g.IsWall(x, y)
}

// SetWall marks a cell as wall or floor. Out-of-bounds is ignored.
func (g *Grid) SetWall(x, y int, wall bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.walls[g.Index(x, y)] = wall
}

// Neighbors returns the open cells reachable one step from c.
func (g *Grid) Neighbors(c Cell) []Cell {
	neighbors := make([]Cell, 0, 4)
	for _, d := range Directions {
		n := c.Add(d)
		if g.IsOpen(n.X, n.Y) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// OpenCells returns every floor cell, in row-major order.
func (g *Grid) OpenCells() []Cell {
	var cells []Cell
	for i, wall := range g.walls {
		if !wall {
			cells = append(cells, g.CellAt(i))
		}
	}
	return cells
}
