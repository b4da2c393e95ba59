package eurorails

import (
	"fmt"
	"sort"
)

// ReachableCity is a city milepost the train can reach this turn, with its
// hop distance from the current position.
type ReachableCity struct {
	Name     string     `json:"name"`
	Coord    Coordinate `json:"coord"`
	Distance int        `json:"distance"`
}

// ComputeReachableCities runs a hop-bounded breadth-first search from the
// train's position over the union of every player's track (movement may use
// anyone's rails, unlike building) and returns each reachable city milepost
// at its minimal hop distance. With maxMovement 0 the result holds only the
// start point, and only if it is itself a city. A snapshot without a
// position yields an empty result.
func ComputeReachableCities(snap *WorldSnapshot, maxMovement int) ([]ReachableCity, error) {
	if snap.Position == nil {
		return nil, nil
	}
	start := *snap.Position
	if snap.Map.PointAt(start) == nil {
		return nil, fmt.Errorf("train position %s: %w", start, ErrUnknownPoint)
	}

	// Union adjacency: every built segment is traversable in both directions.
	adj := make(map[Coordinate][]Coordinate)
	for _, seg := range snap.AllSegments {
		adj[seg.From] = append(adj[seg.From], seg.To)
		adj[seg.To] = append(adj[seg.To], seg.From)
	}

	type visit struct {
		coord Coordinate
		hops  int
	}
	seen := map[Coordinate]int{start: 0}
	queue := []visit{{coord: start, hops: 0}}

	var out []ReachableCity
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if p := snap.Map.PointAt(cur.coord); p != nil && p.IsCity() {
			out = append(out, ReachableCity{Name: p.City.Name, Coord: cur.coord, Distance: cur.hops})
		}
		if cur.hops == maxMovement {
			continue
		}
		for _, n := range adj[cur.coord] {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = cur.hops + 1
			queue = append(queue, visit{coord: n, hops: cur.hops + 1})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		if out[i].Coord.Row != out[j].Coord.Row {
			return out[i].Coord.Row < out[j].Coord.Row
		}
		return out[i].Coord.Col < out[j].Coord.Col
	})
	return out, nil
}

// CityReachable reports whether any milepost of the named city appears in
// the reachable set.
func CityReachable(cities []ReachableCity, name string) bool {
	for _, c := range cities {
		if c.Name == name {
			return true
		}
	}
	return false
}
