package eurorails

import (
	"container/heap"
	"errors"
	"fmt"
)

// ErrNoPosition reports a snapshot with neither built track nor a train
// position to build from.
var ErrNoPosition = errors.New("no network and no train position to build from")

// pathItem is one frontier entry in the build search.
type pathItem struct {
	coord Coordinate
	dist  int
}

// pathHeap is a min-heap of frontier entries by accumulated cost.
type pathHeap []pathItem

func (h pathHeap) Len() int            { return len(h) }
func (h pathHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h pathHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pathHeap) Push(x any)         { *h = append(*h, x.(pathItem)) }
func (h *pathHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// ComputeBuildSegments proposes the cheapest run of new track from the
// player's existing network (or train position, if no track is built yet)
// to the target milepost, under the given spending budget.
//
// The search is a multi-source Dijkstra seeded at cost 0 on every node the
// player already owns. Edges are priced by EdgeCost; edges owned
// exclusively by another player are not buildable and are skipped. Any
// frontier whose accumulated cost exceeds the budget is pruned.
//
// Only the new edges of the winning path are returned, in order from the
// network outward, each carrying its priced cost. An empty result with a
// nil error means either the target is already in the network or it cannot
// be reached within budget.
func ComputeBuildSegments(snap *WorldSnapshot, targetRow, targetCol int, budget int) ([]TrackSegment, error) {
	target := snap.Map.At(targetRow, targetCol)
	if target == nil {
		return nil, fmt.Errorf("build target (%d,%d): %w", targetRow, targetCol, ErrUnknownPoint)
	}
	if target.Terrain == Water {
		return nil, fmt.Errorf("build target %s: %w", target.Coord(), ErrWaterEdge)
	}
	goal := target.Coord()

	// Seed the whole network at distance 0; new construction with no track
	// yet must originate from the train's location.
	seeds := snap.Network.Nodes()
	if len(seeds) == 0 {
		if snap.Position == nil {
			return nil, ErrNoPosition
		}
		if snap.Map.PointAt(*snap.Position) == nil {
			return nil, fmt.Errorf("train position %s: %w", *snap.Position, ErrUnknownPoint)
		}
		seeds = map[Coordinate]bool{*snap.Position: true}
	}
	if seeds[goal] {
		return nil, nil // already connected, nothing to build
	}

	union := snap.unionEdges()

	dist := make(map[Coordinate]int)
	prev := make(map[Coordinate]Coordinate)
	stepCost := make(map[Coordinate]int) // priced cost of the edge arriving at a node
	done := make(map[Coordinate]bool)

	h := &pathHeap{}
	heap.Init(h)
	for c := range seeds {
		dist[c] = 0
		heap.Push(h, pathItem{coord: c, dist: 0})
	}

	for h.Len() > 0 {
		cur := heap.Pop(h).(pathItem)
		if done[cur.coord] {
			continue
		}
		done[cur.coord] = true

		if cur.coord == goal {
			return collectNewSegments(snap, prev, stepCost, goal, seeds), nil
		}

		p := snap.Map.PointAt(cur.coord)
		for _, n := range snap.Map.Neighbors(p) {
			nc := n.Coord()
			if done[nc] {
				continue
			}
			// Another player's edge cannot be built over.
			key := NewEdgeKey(cur.coord, nc)
			if union[key] && !snap.Network.Has(cur.coord, nc) {
				continue
			}
			cost, err := EdgeCost(snap, cur.coord, nc)
			if err != nil {
				continue
			}
			nd := cur.dist + cost
			if nd > budget {
				continue
			}
			if best, seen := dist[nc]; seen && nd >= best {
				continue
			}
			dist[nc] = nd
			prev[nc] = cur.coord
			stepCost[nc] = cost
			heap.Push(h, pathItem{coord: nc, dist: nd})
		}
	}

	return nil, nil // unreachable within budget
}

// collectNewSegments walks the predecessor chain from the goal back to a
// seed node and emits the edges not already owned, ordered seed-first.
func collectNewSegments(snap *WorldSnapshot, prev map[Coordinate]Coordinate, stepCost map[Coordinate]int, goal Coordinate, seeds map[Coordinate]bool) []TrackSegment {
	var reversed []TrackSegment
	for at := goal; !seeds[at]; {
		from := prev[at]
		if !snap.Network.Has(from, at) {
			reversed = append(reversed, TrackSegment{From: from, To: at, Cost: stepCost[at]})
		}
		at = from
	}
	out := make([]TrackSegment, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		out = append(out, reversed[i])
	}
	return out
}
