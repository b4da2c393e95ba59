package eurorails

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// mapFile is the on-disk YAML shape of a board definition. Cities and
// ferries reference mileposts by coordinate; every referenced coordinate
// must appear in the points list.
type mapFile struct {
	Name   string `yaml:"name"`
	Points []struct {
		Row     int    `yaml:"row"`
		Col     int    `yaml:"col"`
		Terrain string `yaml:"terrain"`
	} `yaml:"points"`
	Cities []struct {
		Name     string       `yaml:"name"`
		Type     string       `yaml:"type"`
		Center   Coordinate   `yaml:"center"`
		Outposts []Coordinate `yaml:"outposts"`
	} `yaml:"cities"`
	Ferries []struct {
		A    Coordinate `yaml:"a"`
		B    Coordinate `yaml:"b"`
		Cost int        `yaml:"cost"`
	} `yaml:"ferries"`
	Surcharges []struct {
		A     Coordinate `yaml:"a"`
		B     Coordinate `yaml:"b"`
		Extra int        `yaml:"extra"`
	} `yaml:"surcharges"`
}

// ParseMap decodes a YAML board definition into a GameMap.
func ParseMap(data []byte) (*GameMap, error) {
	var mf mapFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("decode map: %w", err)
	}
	if len(mf.Points) == 0 {
		return nil, fmt.Errorf("map %q has no points", mf.Name)
	}

	points := make([]*GridPoint, 0, len(mf.Points))
	byCoord := make(map[Coordinate]*GridPoint, len(mf.Points))
	for _, raw := range mf.Points {
		t, err := parseTerrain(raw.Terrain)
		if err != nil {
			return nil, fmt.Errorf("point (%d,%d): %w", raw.Row, raw.Col, err)
		}
		c := Coordinate{Row: raw.Row, Col: raw.Col}
		if _, dup := byCoord[c]; dup {
			return nil, fmt.Errorf("duplicate point %s", c)
		}
		p := &GridPoint{Row: raw.Row, Col: raw.Col, Terrain: t}
		points = append(points, p)
		byCoord[c] = p
	}

	for _, raw := range mf.Cities {
		ct, err := parseCityType(raw.Type)
		if err != nil {
			return nil, fmt.Errorf("city %q: %w", raw.Name, err)
		}
		city := &City{Type: ct, Name: raw.Name, Outposts: raw.Outposts}
		center, ok := byCoord[raw.Center]
		if !ok {
			return nil, fmt.Errorf("city %q: center %s is not on the map", raw.Name, raw.Center)
		}
		center.City = city
		for _, oc := range raw.Outposts {
			op, ok := byCoord[oc]
			if !ok {
				return nil, fmt.Errorf("city %q: outpost %s is not on the map", raw.Name, oc)
			}
			op.City = city
		}
	}

	for _, raw := range mf.Ferries {
		ferry := &FerryConnection{A: raw.A, B: raw.B, Cost: raw.Cost}
		for _, c := range []Coordinate{raw.A, raw.B} {
			p, ok := byCoord[c]
			if !ok {
				return nil, fmt.Errorf("ferry %s-%s: port %s is not on the map", raw.A, raw.B, c)
			}
			if p.Terrain != FerryPort {
				return nil, fmt.Errorf("ferry %s-%s: %s is not a ferry port", raw.A, raw.B, c)
			}
			p.Ferry = ferry
		}
	}

	m := NewGameMap(points)
	for _, raw := range mf.Surcharges {
		if _, ok := byCoord[raw.A]; !ok {
			return nil, fmt.Errorf("surcharge %s-%s: %s is not on the map", raw.A, raw.B, raw.A)
		}
		if _, ok := byCoord[raw.B]; !ok {
			return nil, fmt.Errorf("surcharge %s-%s: %s is not on the map", raw.A, raw.B, raw.B)
		}
		m.SetSurcharge(raw.A, raw.B, raw.Extra)
	}
	return m, nil
}

func parseTerrain(s string) (TerrainType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clear", "":
		return Clear, nil
	case "mountain":
		return Mountain, nil
	case "alpine":
		return Alpine, nil
	case "small_city", "smallcity":
		return SmallCity, nil
	case "medium_city", "mediumcity":
		return MediumCity, nil
	case "major_city", "majorcity":
		return MajorCity, nil
	case "water":
		return Water, nil
	case "ferry_port", "ferryport":
		return FerryPort, nil
	}
	return 0, fmt.Errorf("unknown terrain %q", s)
}

func parseCityType(s string) (CityType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small":
		return CitySmall, nil
	case "medium":
		return CityMedium, nil
	case "major":
		return CityMajor, nil
	}
	return 0, fmt.Errorf("unknown city type %q", s)
}
