package grid

import (
	"container/heap"

	"github.com/kamstrup/intmap"
)

// FindPath returns the shortest open-cell path from start to goal,
// including both endpoints, or nil when no path exists. A* with the
// Manhattan distance as heuristic; bookkeeping is keyed by packed cell
// indexes so the hot maps stay allocation-light.
func FindPath(start, goal Cell, g *Grid) []Cell {
	if !g.IsOpen(start.X, start.Y) || !g.IsOpen(goal.X, goal.Y) {
		return nil
	}

	startIdx := int32(g.Index(start.X, start.Y))
	goalIdx := int32(g.Index(goal.X, goal.Y))

	costSoFar := intmap.New[int32, int32](64)
	cameFrom := intmap.New[int32, int32](64)
	costSoFar.Put(startIdx, 0)

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &node{index: startIdx, priority: 0})

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*node)
		if current.index == goalIdx {
			return reconstructPath(g, cameFrom, startIdx, goalIdx)
		}

		cell := g.CellAt(int(current.index))
		baseCost, _ := costSoFar.Get(current.index)
		for _, neighbor := range g.Neighbors(cell) {
			neighborIdx := int32(g.Index(neighbor.X, neighbor.Y))
			newCost := baseCost + 1
			if old, seen := costSoFar.Get(neighborIdx); seen && newCost >= old {
				continue
			}
			costSoFar.Put(neighborIdx, newCost)
			cameFrom.Put(neighborIdx, current.index)
			priority := int(newCost) + neighbor.Distance(goal)
			heap.Push(pq, &node{index: neighborIdx, priority: priority})
		}
	}
	return nil // no path
}

func reconstructPath(g *Grid, cameFrom *intmap.Map[int32, int32], startIdx, goalIdx int32) []Cell {
	var path []Cell
	for idx := goalIdx; ; {
		path = append(path, g.CellAt(int(idx)))
		if idx == startIdx {
			break
		}
		parent, ok := cameFrom.Get(idx)
		if !ok {
			return nil
		}
		idx = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type node struct {
	index    int32
	priority int
}

// priorityQueue for A*
type priorityQueue []*node

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].priority < pq[j].priority }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*node))
}
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}
