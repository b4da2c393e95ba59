package eurorails

import "sort"

// GameMap holds the full milepost grid, the city index, ferry connections,
// and the static per-edge surcharge table for river and estuary crossings.
type GameMap struct {
	points     map[Coordinate]*GridPoint
	cityPoints map[string][]*GridPoint // city name -> member mileposts
	ferries    []*FerryConnection
	surcharges map[EdgeKey]int
}

// NewGameMap builds a map from a point list. City membership and ferry
// records are read off the points themselves.
func NewGameMap(points []*GridPoint) *GameMap {
	m := &GameMap{
		points:     make(map[Coordinate]*GridPoint, len(points)),
		cityPoints: make(map[string][]*GridPoint),
		surcharges: make(map[EdgeKey]int),
	}
	seenFerry := make(map[*FerryConnection]bool)
	for _, p := range points {
		m.points[p.Coord()] = p
		if p.City != nil {
			m.cityPoints[p.City.Name] = append(m.cityPoints[p.City.Name], p)
		}
		if p.Ferry != nil && !seenFerry[p.Ferry] {
			seenFerry[p.Ferry] = true
			m.ferries = append(m.ferries, p.Ferry)
		}
	}
	return m
}

// SetSurcharge registers an extra build cost for one undirected edge
// (a designated water crossing). Direction does not matter.
func (m *GameMap) SetSurcharge(a, b Coordinate, extra int) {
	m.surcharges[NewEdgeKey(a, b)] = extra
}

// Surcharge returns the extra cost for building the given edge, 0 if none.
func (m *GameMap) Surcharge(a, b Coordinate) int {
	return m.surcharges[NewEdgeKey(a, b)]
}

// At returns the milepost at (row, col), or nil if absent from the map.
func (m *GameMap) At(row, col int) *GridPoint {
	return m.points[Coordinate{Row: row, Col: col}]
}

// PointAt returns the milepost at the coordinate, or nil if absent.
func (m *GameMap) PointAt(c Coordinate) *GridPoint {
	return m.points[c]
}

// Points returns every milepost on the map in row/col order.
func (m *GameMap) Points() []*GridPoint {
	out := make([]*GridPoint, 0, len(m.points))
	for _, p := range m.points {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Ferries returns every ferry connection on the map.
func (m *GameMap) Ferries() []*FerryConnection {
	return m.ferries
}

// CityPoints returns the mileposts belonging to the named city
// (center plus outposts for a major city).
func (m *GameMap) CityPoints(name string) []*GridPoint {
	return m.cityPoints[name]
}

// CityCenter returns the representative milepost for a city: the MajorCity
// center for a major city, otherwise its single milepost. Nil if unknown.
func (m *GameMap) CityCenter(name string) *GridPoint {
	pts := m.cityPoints[name]
	if len(pts) == 0 {
		return nil
	}
	for _, p := range pts {
		if p.Terrain == MajorCity {
			return p
		}
	}
	return pts[0]
}

// MajorCities returns the distinct major cities on the map, sorted by name.
func (m *GameMap) MajorCities() []*City {
	seen := make(map[string]*City)
	for _, pts := range m.cityPoints {
		for _, p := range pts {
			if p.City.Type == CityMajor {
				seen[p.City.Name] = p.City
				break
			}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]*City, 0, len(names))
	for _, n := range names {
		out = append(out, seen[n])
	}
	return out
}

// MajorClusterAt returns the major city whose cluster (center or outpost)
// contains the coordinate, or nil.
func (m *GameMap) MajorClusterAt(c Coordinate) *City {
	p := m.points[c]
	if p == nil || p.City == nil || p.City.Type != CityMajor {
		return nil
	}
	return p.City
}

// hex grid offsets: same-row neighbors are (row, col±1); cross-row neighbors
// depend on row parity. Odd rows connect to (row±1, col) and (row±1, col+1),
// even rows to (row±1, col-1) and (row±1, col).
func hexOffsets(row int) [6][2]int {
	if row%2 != 0 {
		return [6][2]int{
			{0, -1}, {0, 1},
			{-1, 0}, {-1, 1},
			{1, 0}, {1, 1},
		}
	}
	return [6][2]int{
		{0, -1}, {0, 1},
		{-1, -1}, {-1, 0},
		{1, -1}, {1, 0},
	}
}

// Neighbors returns the buildable neighbors of a milepost: hex-adjacent
// mileposts that exist on the map, plus the partner port of a ferry
// connection. Water is excluded in both directions, and two ferry ports are
// never directly connected except through their own ferry record.
func (m *GameMap) Neighbors(p *GridPoint) []*GridPoint {
	if p == nil || p.Terrain == Water {
		return nil
	}
	var out []*GridPoint
	for _, off := range hexOffsets(p.Row) {
		n := m.At(p.Row+off[0], p.Col+off[1])
		if n == nil || n.Terrain == Water {
			continue
		}
		if p.Terrain == FerryPort && n.Terrain == FerryPort && !sameFerry(p, n) {
			continue
		}
		out = append(out, n)
	}
	if p.Terrain == FerryPort && p.Ferry != nil {
		if other, ok := p.Ferry.Other(p.Coord()); ok {
			if n := m.PointAt(other); n != nil && !containsPoint(out, n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// IsAdjacent reports whether two coordinates are connected for build
// purposes. It is symmetric and agrees with Neighbors.
func (m *GameMap) IsAdjacent(a, b Coordinate) bool {
	pa := m.points[a]
	if pa == nil {
		return false
	}
	for _, n := range m.Neighbors(pa) {
		if n.Coord() == b {
			return true
		}
	}
	return false
}

func sameFerry(a, b *GridPoint) bool {
	return a.Ferry != nil && a.Ferry == b.Ferry
}

func containsPoint(pts []*GridPoint, p *GridPoint) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}
