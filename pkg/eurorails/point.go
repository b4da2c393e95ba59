package eurorails

import "fmt"

// Coordinate addresses a single milepost on the parity-offset hex grid.
type Coordinate struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// CityType classifies a city by size.
type CityType int

const (
	CitySmall CityType = iota
	CityMedium
	CityMajor
)

func (t CityType) String() string {
	switch t {
	case CitySmall:
		return "small"
	case CityMedium:
		return "medium"
	case CityMajor:
		return "major"
	default:
		return "unknown"
	}
}

// City describes the city a milepost belongs to. For major cities the same
// City value is shared by the center and every outpost in the cluster.
type City struct {
	Type     CityType
	Name     string
	Outposts []Coordinate // Cluster points around a major city center; empty otherwise
}

// FerryConnection links two ferry-port mileposts across water. The fixed
// cost is paid once, by whichever player first builds track touching either
// endpoint; every later connection to either endpoint is free.
type FerryConnection struct {
	A    Coordinate
	B    Coordinate
	Cost int
}

// Other returns the opposite endpoint of the connection, or false if the
// given coordinate is not an endpoint.
func (f *FerryConnection) Other(c Coordinate) (Coordinate, bool) {
	switch c {
	case f.A:
		return f.B, true
	case f.B:
		return f.A, true
	}
	return Coordinate{}, false
}

// GridPoint is one immutable milepost of the game map.
type GridPoint struct {
	Row     int
	Col     int
	Terrain TerrainType
	City    *City            // Non-nil for city mileposts (shared across a major cluster)
	Ferry   *FerryConnection // Non-nil for FerryPort mileposts
}

// Coord returns the point's coordinate.
func (p *GridPoint) Coord() Coordinate {
	return Coordinate{Row: p.Row, Col: p.Col}
}

// IsCity reports whether the milepost belongs to any city.
func (p *GridPoint) IsCity() bool {
	return p.City != nil
}
