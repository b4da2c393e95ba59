package eurorails

import (
	"encoding/json"
	"fmt"
)

// snapshotFile is the JSON shape of a world snapshot at the tool boundary.
// The map travels separately (it is static per game); track is split into
// the player's own segments and the union of everyone's.
type snapshotFile struct {
	PlayerID      string              `json:"player_id"`
	Position      *Coordinate         `json:"position,omitempty"`
	MovementLeft  int                 `json:"movement_left"`
	Money         int                 `json:"money"`
	Cargo         []string            `json:"cargo,omitempty"`
	Train         string              `json:"train"`
	Hand          []DemandCard        `json:"hand,omitempty"`
	OwnSegments   []TrackSegment      `json:"own_segments,omitempty"`
	TurnBuildCost int                 `json:"turn_build_cost"`
	AllSegments   []TrackSegment      `json:"all_segments,omitempty"`
	CitySupply    map[string][]string `json:"city_supply,omitempty"`
	CityDrops     map[string][]string `json:"city_drops,omitempty"`
	Crossgraded   bool                `json:"crossgraded,omitempty"`
}

// DecodeSnapshot unmarshals a snapshot and binds it to the given map. Own
// segments that are missing from the union are added to it, so a file may
// list only own_segments in a single-player setting.
func DecodeSnapshot(data []byte, m *GameMap) (*WorldSnapshot, error) {
	var sf snapshotFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	train, err := parseTrain(sf.Train)
	if err != nil {
		return nil, err
	}
	if sf.Position != nil && m.PointAt(*sf.Position) == nil {
		return nil, fmt.Errorf("snapshot position %s: %w", *sf.Position, ErrUnknownPoint)
	}

	net := NewPlayerNetwork()
	for _, seg := range sf.OwnSegments {
		for _, c := range []Coordinate{seg.From, seg.To} {
			if m.PointAt(c) == nil {
				return nil, fmt.Errorf("own segment %s: %s: %w", seg, c, ErrUnknownPoint)
			}
		}
		net.Add(seg)
	}
	net.TurnBuildCost = sf.TurnBuildCost

	all := sf.AllSegments
	union := make(map[EdgeKey]bool, len(all))
	for _, seg := range all {
		union[seg.Key()] = true
	}
	for _, seg := range sf.OwnSegments {
		if !union[seg.Key()] {
			all = append(all, seg)
		}
	}

	return &WorldSnapshot{
		PlayerID:     sf.PlayerID,
		Position:     sf.Position,
		MovementLeft: sf.MovementLeft,
		Money:        sf.Money,
		Cargo:        sf.Cargo,
		Train:        train,
		Hand:         sf.Hand,
		Map:          m,
		Network:      net,
		AllSegments:  all,
		CitySupply:   sf.CitySupply,
		CityDrops:    sf.CityDrops,
		Crossgraded:  sf.Crossgraded,
	}, nil
}

// EncodeSnapshot marshals a snapshot back to its JSON form, without the map.
func EncodeSnapshot(s *WorldSnapshot) ([]byte, error) {
	sf := snapshotFile{
		PlayerID:      s.PlayerID,
		Position:      s.Position,
		MovementLeft:  s.MovementLeft,
		Money:         s.Money,
		Cargo:         s.Cargo,
		Train:         string(s.Train),
		Hand:          s.Hand,
		OwnSegments:   s.Network.Segments(),
		TurnBuildCost: s.Network.TurnBuildCost,
		AllSegments:   s.AllSegments,
		CitySupply:    s.CitySupply,
		CityDrops:     s.CityDrops,
		Crossgraded:   s.Crossgraded,
	}
	return json.MarshalIndent(sf, "", "  ")
}

func parseTrain(s string) (TrainType, error) {
	switch s {
	case "", string(Freight):
		return Freight, nil
	case string(FastFreight):
		return FastFreight, nil
	case string(HeavyFreight):
		return HeavyFreight, nil
	case string(Superfreight):
		return Superfreight, nil
	}
	return "", fmt.Errorf("unknown train type %q", s)
}
