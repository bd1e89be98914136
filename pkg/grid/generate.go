package grid

// Rand is the randomness the generator needs. *rand.Rand and the
// game's PRNG service both satisfy it.
type Rand interface {
	Intn(n int) int
}

// Entrance is where carving starts; it is always open after Generate.
var Entrance = Cell{1, 1}

// Generate carves a maze into a fresh width x height grid using
// iterative recursive backtracking: walk to a random unvisited cell two
// steps away, knocking out the wall between, and backtrack when stuck.
// Carving on odd cells keeps the outer border and the lattice walls
// intact. The exit corner is opened afterwards so it is always
// reachable.
func Generate(width, height int, rng Rand) *Grid {
	g := New(width, height)

	stack := []Cell{Entrance}
	g.SetWall(Entrance.X, Entrance.Y, false)

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var candidates []Cell
		for _, d := range Directions {
			next := Cell{current.X + d.DX*2, current.Y + d.DY*2}
			if next.X > 0 && next.X < width-1 && next.Y > 0 && next.Y < height-1 &&
				g.IsWall(next.X, next.Y) {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		between := Cell{(current.X + next.X) / 2, (current.Y + next.Y) / 2}
		g.SetWall(between.X, between.Y, false)
		g.SetWall(next.X, next.Y, false)
		stack = append(stack, next)
	}

	// The exit sits at the bottom-right corner; force it open together
	// with the cell before it so the carve always connects.
	g.SetWall(width-2, height-2, false)
	g.SetWall(width-3, height-2, false)

	return g
}

// Exit returns the exit cell for a grid of the given size.
func Exit(width, height int) Cell {
	return Cell{width - 2, height - 2}
}
