package eurorails

import "sync"

var (
	demoMapOnce sync.Once
	demoMapInst *GameMap
)

// DemoMap returns a small fixed board used by the offline tools and the
// engine tests. Built once and cached; callers must not mutate it.
//
// The board is a 7x8 grid: mostly clear ground, a mountain ridge in the
// north-east, a water channel in the west, the major city of Essen with its
// six-outpost cluster in the middle, the small city of Ulm to its east, the
// medium city of Bremen in the south-west, and a ferry across the southern
// strait with a surcharged river crossing beside it.
func DemoMap() *GameMap {
	demoMapOnce.Do(func() {
		demoMapInst = buildDemoMap()
	})
	return demoMapInst
}

func buildDemoMap() *GameMap {
	essen := &City{
		Type: CityMajor,
		Name: "essen",
		Outposts: []Coordinate{
			{Row: 3, Col: 2}, {Row: 3, Col: 4},
			{Row: 2, Col: 3}, {Row: 2, Col: 4},
			{Row: 4, Col: 3}, {Row: 4, Col: 4},
		},
	}
	ulm := &City{Type: CitySmall, Name: "ulm"}
	bremen := &City{Type: CityMedium, Name: "bremen"}
	ferry := &FerryConnection{
		A:    Coordinate{Row: 6, Col: 2},
		B:    Coordinate{Row: 6, Col: 5},
		Cost: 8,
	}

	var points []*GridPoint
	byCoord := map[Coordinate]*GridPoint{}
	pt := func(row, col int, t TerrainType) *GridPoint {
		p := &GridPoint{Row: row, Col: col, Terrain: t}
		points = append(points, p)
		byCoord[p.Coord()] = p
		return p
	}

	// Terrain overrides; everything else defaults to clear.
	override := map[Coordinate]TerrainType{
		{Row: 0, Col: 5}: Alpine,
		{Row: 1, Col: 4}: Mountain,
		{Row: 1, Col: 5}: Mountain,
		{Row: 1, Col: 1}: Water,
		{Row: 2, Col: 1}: Water,
		{Row: 3, Col: 3}: MajorCity,
		{Row: 3, Col: 6}: SmallCity,
		{Row: 5, Col: 1}: MediumCity,
		{Row: 6, Col: 2}: FerryPort,
		{Row: 6, Col: 3}: Water,
		{Row: 6, Col: 4}: Water,
		{Row: 6, Col: 5}: FerryPort,
	}

	for row := 0; row <= 6; row++ {
		for col := 0; col <= 7; col++ {
			t, ok := override[Coordinate{Row: row, Col: col}]
			if !ok {
				t = Clear
			}
			p := pt(row, col, t)
			switch {
			case p.Row == 3 && p.Col == 6:
				p.City = ulm
			case p.Row == 5 && p.Col == 1:
				p.City = bremen
			case p.Terrain == FerryPort:
				p.Ferry = ferry
			}
		}
	}

	// The Essen cluster: center plus outposts share one City record.
	byCoord[Coordinate{Row: 3, Col: 3}].City = essen
	for _, c := range essen.Outposts {
		byCoord[c].City = essen
	}

	m := NewGameMap(points)

	// River crossing south of the cluster.
	m.SetSurcharge(Coordinate{Row: 4, Col: 5}, Coordinate{Row: 5, Col: 5}, 2)
	return m
}
