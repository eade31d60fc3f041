package game

import (
	"container/heap"

	"github.com/napolitain/microciv/internal/terrain"
)

// pathNode is a priority-queue entry for the shortest-path search.
type pathNode struct {
	dist int // scaled cost from the start
	seq  int // insertion order, breaks equal-distance ties deterministically
	x, y int
}

// pathHeap is a min-heap of pathNodes ordered by (dist, seq). Costs are
// scaled integers, so ordering is exact; the sequence number keeps pops
// stable when distances tie, which keeps the chosen path identical across
// runs regardless of neighbour visit order.
type pathHeap []pathNode

func (h pathHeap) Len() int { return len(h) }

func (h pathHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].seq < h[j].seq
}

func (h pathHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pathHeap) Push(x any) { *h = append(*h, x.(pathNode)) }

func (h *pathHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	*h = old[:n-1]
	return node
}

// neighbour offsets, 4-connected. Fixed order feeds the deterministic
// tie-break.
var neighbours = [4]terrain.Point{{X: 0, Y: -1}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}

// findPath runs Dijkstra over the grid from (sx, sy) to (tx, ty). It returns
// the path (start exclusive, target inclusive) and the total scaled cost.
// Mountains are impassable; the target tile's own entry cost counts.
func findPath(grid *terrain.Grid, sx, sy, tx, ty int) ([]terrain.Point, int, error) {
	if !grid.InBounds(sx, sy) || !grid.InBounds(tx, ty) {
		return nil, 0, ErrNoPath
	}

	const unvisited = -1
	w := grid.Width
	dist := make([]int, w*grid.Height)
	prev := make([]int, w*grid.Height)
	for i := range dist {
		dist[i] = unvisited
		prev[i] = -1
	}

	h := &pathHeap{{dist: 0, seq: 0, x: sx, y: sy}}
	dist[sy*w+sx] = 0
	seq := 1

	for h.Len() > 0 {
		cur := heap.Pop(h).(pathNode)
		idx := cur.y*w + cur.x
		if cur.dist > dist[idx] {
			continue // stale entry
		}
		if cur.x == tx && cur.y == ty {
			return reconstruct(prev, w, sx, sy, tx, ty), cur.dist, nil
		}
		for _, d := range neighbours {
			nx, ny := cur.x+d.X, cur.y+d.Y
			if !grid.InBounds(nx, ny) {
				continue
			}
			step := grid.At(nx, ny).MoveCost()
			if step < 0 {
				continue
			}
			nidx := ny*w + nx
			nd := cur.dist + step
			if dist[nidx] != unvisited && nd >= dist[nidx] {
				continue
			}
			dist[nidx] = nd
			prev[nidx] = idx
			heap.Push(h, pathNode{dist: nd, seq: seq, x: nx, y: ny})
			seq++
		}
	}

	return nil, 0, ErrNoPath
}

// reconstruct walks the prev chain back from the target and reverses it.
func reconstruct(prev []int, w, sx, sy, tx, ty int) []terrain.Point {
	var rev []terrain.Point
	idx := ty*w + tx
	start := sy*w + sx
	for idx != start && idx >= 0 {
		rev = append(rev, terrain.Point{X: idx % w, Y: idx / w})
		idx = prev[idx]
	}
	path := make([]terrain.Point, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}

// travelTurns converts a scaled path cost into whole turns of travel,
// rounding up, minimum one turn.
func travelTurns(scaledCost int) int {
	turns := (scaledCost + terrain.CostScale - 1) / terrain.CostScale
	if turns < 1 {
		turns = 1
	}
	return turns
}
