package eurorails

// Demand is one line of a demand card: deliver a resource to a city for a
// payment.
type Demand struct {
	City     string `json:"city"`
	Resource string `json:"resource"`
	Payment  int    `json:"payment"`
}

// DemandCard is one card in hand, carrying several alternative demands.
type DemandCard struct {
	Demands []Demand `json:"demands"`
}

// WorldSnapshot is the immutable point-in-time view the caller hands to the
// engine. The engine only reads it; the authoritative state lives elsewhere
// and must be re-validated at commit time.
type WorldSnapshot struct {
	PlayerID string

	Position     *Coordinate // Train location; nil before placement
	MovementLeft int         // Mileposts of movement left this turn
	Money        int
	Cargo        []string // Carried resource loads
	Train        TrainType
	Hand         []DemandCard

	Map     *GameMap
	Network *PlayerNetwork // This player's track; carries turnBuildCostSoFar

	// AllSegments is the union of every player's track. Movement may use any
	// player's rails; building may not.
	AllSegments []TrackSegment

	CitySupply map[string][]string // city name -> standing resource supply
	CityDrops  map[string][]string // city name -> dropped-cargo pool

	// Crossgraded is true once the player has crossgraded this turn, which
	// lowers the build ceiling for the rest of the turn.
	Crossgraded bool
}

// TurnBuildCost returns the build spending already committed this turn.
func (s *WorldSnapshot) TurnBuildCost() int {
	return s.Network.TurnBuildCost
}

// TurnBuildLimit returns the ceiling on this turn's total build spending:
// 20, or 15 once a crossgrade has happened.
func (s *WorldSnapshot) TurnBuildLimit() int {
	if s.Crossgraded {
		return PostCrossgradeTurnBuild
	}
	return MaxTurnBuild
}

// RemainingBuildBudget returns the build spending still allowed this turn,
// clamped at zero. A crossgrade can leave earlier spend above the lowered
// ceiling; that spend is not charged retroactively.
func (s *WorldSnapshot) RemainingBuildBudget() int {
	rem := s.TurnBuildLimit() - s.Network.TurnBuildCost
	if rem < 0 {
		return 0
	}
	return rem
}

// Carrying reports whether the named resource is among the carried cargo.
func (s *WorldSnapshot) Carrying(resource string) bool {
	for _, c := range s.Cargo {
		if c == resource {
			return true
		}
	}
	return false
}

// CityOffers reports whether a city can supply the resource right now,
// from its standing supply or its dropped-cargo pool.
func (s *WorldSnapshot) CityOffers(city, resource string) bool {
	for _, r := range s.CitySupply[city] {
		if r == resource {
			return true
		}
	}
	for _, r := range s.CityDrops[city] {
		if r == resource {
			return true
		}
	}
	return false
}

// unionEdges returns the undirected edge set of all players' track.
func (s *WorldSnapshot) unionEdges() map[EdgeKey]bool {
	edges := make(map[EdgeKey]bool, len(s.AllSegments))
	for _, seg := range s.AllSegments {
		edges[seg.Key()] = true
	}
	return edges
}

// ferryPaid reports whether any player's track already touches either
// endpoint of the ferry connection. The first such connection pays the
// ferry's fixed cost; every later one is free.
func (s *WorldSnapshot) ferryPaid(f *FerryConnection) bool {
	for _, seg := range s.AllSegments {
		k := seg.Key()
		if k.Touches(f.A) || k.Touches(f.B) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the snapshot. The map is shared (immutable
// per game); everything mutable is copied, which plan simulation relies on.
func (s *WorldSnapshot) Clone() *WorldSnapshot {
	c := &WorldSnapshot{
		PlayerID:     s.PlayerID,
		MovementLeft: s.MovementLeft,
		Money:        s.Money,
		Train:        s.Train,
		Map:          s.Map,
		Network:      s.Network.Clone(),
		Crossgraded:  s.Crossgraded,
	}
	if s.Position != nil {
		pos := *s.Position
		c.Position = &pos
	}
	if s.Cargo != nil {
		c.Cargo = make([]string, len(s.Cargo))
		copy(c.Cargo, s.Cargo)
	}
	if s.Hand != nil {
		c.Hand = make([]DemandCard, len(s.Hand))
		copy(c.Hand, s.Hand)
	}
	if s.AllSegments != nil {
		c.AllSegments = make([]TrackSegment, len(s.AllSegments))
		copy(c.AllSegments, s.AllSegments)
	}
	if s.CitySupply != nil {
		c.CitySupply = make(map[string][]string, len(s.CitySupply))
		for k, v := range s.CitySupply {
			c.CitySupply[k] = append([]string(nil), v...)
		}
	}
	if s.CityDrops != nil {
		c.CityDrops = make(map[string][]string, len(s.CityDrops))
		for k, v := range s.CityDrops {
			c.CityDrops[k] = append([]string(nil), v...)
		}
	}
	return c
}
