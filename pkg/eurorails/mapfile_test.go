package eurorails

import (
	"strings"
	"testing"
)

const sampleMapYAML = `
name: test-board
points:
  - {row: 0, col: 0, terrain: clear}
  - {row: 0, col: 1, terrain: mountain}
  - {row: 0, col: 2, terrain: small_city}
  - {row: 1, col: 0, terrain: ferry_port}
  - {row: 1, col: 1, terrain: water}
  - {row: 1, col: 2, terrain: ferry_port}
cities:
  - name: lille
    type: small
    center: {row: 0, col: 2}
ferries:
  - a: {row: 1, col: 0}
    b: {row: 1, col: 2}
    cost: 6
surcharges:
  - a: {row: 0, col: 0}
    b: {row: 0, col: 1}
    extra: 2
`

func TestParseMap(t *testing.T) {
	m, err := ParseMap([]byte(sampleMapYAML))
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}
	if len(m.Points()) != 6 {
		t.Errorf("expected 6 points, got %d", len(m.Points()))
	}
	if p := m.At(0, 1); p == nil || p.Terrain != Mountain {
		t.Errorf("(0,1) should be mountain, got %v", p)
	}
	if c := m.CityCenter("lille"); c == nil || c.Terrain != SmallCity {
		t.Errorf("lille center should be the small city milepost, got %v", c)
	}
	if len(m.Ferries()) != 1 || m.Ferries()[0].Cost != 6 {
		t.Errorf("expected one ferry with cost 6, got %v", m.Ferries())
	}
	if !m.IsAdjacent(Coordinate{Row: 1, Col: 0}, Coordinate{Row: 1, Col: 2}) {
		t.Error("ferry ports should be adjacent via the connection")
	}
	if got := m.Surcharge(Coordinate{Row: 0, Col: 1}, Coordinate{Row: 0, Col: 0}); got != 2 {
		t.Errorf("surcharge should be 2 in either orientation, got %d", got)
	}
}

func TestParseMapUnknownTerrain(t *testing.T) {
	_, err := ParseMap([]byte("points:\n  - {row: 0, col: 0, terrain: lava}\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown terrain") {
		t.Errorf("expected unknown terrain error, got %v", err)
	}
}

func TestParseMapDuplicatePoint(t *testing.T) {
	const dup = `
points:
  - {row: 0, col: 0}
  - {row: 0, col: 0}
`
	_, err := ParseMap([]byte(dup))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected duplicate point error, got %v", err)
	}
}

func TestParseMapCityOffBoard(t *testing.T) {
	const bad = `
points:
  - {row: 0, col: 0}
cities:
  - name: ghost
    type: small
    center: {row: 5, col: 5}
`
	_, err := ParseMap([]byte(bad))
	if err == nil || !strings.Contains(err.Error(), "not on the map") {
		t.Errorf("expected off-map city error, got %v", err)
	}
}

func TestParseMapFerryNeedsPorts(t *testing.T) {
	const bad = `
points:
  - {row: 0, col: 0, terrain: clear}
  - {row: 0, col: 2, terrain: ferry_port}
ferries:
  - a: {row: 0, col: 0}
    b: {row: 0, col: 2}
    cost: 4
`
	_, err := ParseMap([]byte(bad))
	if err == nil || !strings.Contains(err.Error(), "not a ferry port") {
		t.Errorf("expected ferry port error, got %v", err)
	}
}

func TestParseMapEmpty(t *testing.T) {
	if _, err := ParseMap([]byte("name: empty\n")); err == nil {
		t.Error("expected error for a map with no points")
	}
}
