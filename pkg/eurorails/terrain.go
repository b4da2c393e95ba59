package eurorails

// TerrainType classifies a milepost on the board.
type TerrainType int

const (
	Clear      TerrainType = iota // Open ground
	Mountain                      // Foothills and low ranges
	Alpine                        // High mountain passes
	SmallCity                     // Single-milepost city
	MediumCity                    // Single-milepost city, larger demand pool
	MajorCity                     // Center of a multi-milepost city cluster
	Water                         // Open water, never buildable
	FerryPort                     // Endpoint of a ferry connection
)

func (t TerrainType) String() string {
	switch t {
	case Clear:
		return "clear"
	case Mountain:
		return "mountain"
	case Alpine:
		return "alpine"
	case SmallCity:
		return "small_city"
	case MediumCity:
		return "medium_city"
	case MajorCity:
		return "major_city"
	case Water:
		return "water"
	case FerryPort:
		return "ferry_port"
	default:
		return "unknown"
	}
}

// BaseBuildCost returns the cost of building track into a milepost of this
// terrain, before any special-case pricing. Building into Water is never
// permitted; the second return is false for it.
func (t TerrainType) BaseBuildCost() (int, bool) {
	switch t {
	case Clear:
		return 1, true
	case Mountain:
		return 2, true
	case Alpine:
		return 5, true
	case SmallCity, MediumCity:
		return 3, true
	case MajorCity:
		return 5, true
	case FerryPort:
		return 1, true
	case Water:
		return 0, false
	default:
		return 0, false
	}
}

// Per-turn build spending limits. A crossgrade lowers the ceiling for the
// remainder of that turn.
const (
	MaxTurnBuild            = 20
	PostCrossgradeTurnBuild = 15
)

// MajorCityConnectCost is the fixed price of a player's first edge into a
// major city cluster, regardless of the underlying terrain.
const MajorCityConnectCost = 5

// TrainType identifies a locomotive class.
type TrainType string

const (
	Freight      TrainType = "freight"
	FastFreight  TrainType = "fast_freight"
	HeavyFreight TrainType = "heavy_freight"
	Superfreight TrainType = "superfreight"
)

// TrainSpec holds the per-type capacity and movement allowance.
type TrainSpec struct {
	Capacity int // Cargo loads carried at once
	Speed    int // Mileposts per turn
}

var trainSpecs = map[TrainType]TrainSpec{
	Freight:      {Capacity: 2, Speed: 9},
	FastFreight:  {Capacity: 2, Speed: 12},
	HeavyFreight: {Capacity: 3, Speed: 9},
	Superfreight: {Capacity: 3, Speed: 12},
}

// SpecFor returns the capacity/speed spec for a train type.
// Unknown types get the base Freight spec.
func SpecFor(t TrainType) TrainSpec {
	if s, ok := trainSpecs[t]; ok {
		return s
	}
	return trainSpecs[Freight]
}

// TrainTransition is one legal upgrade or crossgrade step.
type TrainTransition struct {
	From       TrainType
	To         TrainType
	Cost       int
	Crossgrade bool // Sideways trade; lowers the turn build ceiling to 15
}

// trainTransitions is the fixed transition table. Superfreight is terminal.
var trainTransitions = []TrainTransition{
	{From: Freight, To: FastFreight, Cost: 20},
	{From: Freight, To: HeavyFreight, Cost: 20},
	{From: FastFreight, To: HeavyFreight, Cost: 5, Crossgrade: true},
	{From: HeavyFreight, To: FastFreight, Cost: 5, Crossgrade: true},
	{From: FastFreight, To: Superfreight, Cost: 20},
	{From: HeavyFreight, To: Superfreight, Cost: 20},
}

// TransitionsFrom returns every legal transition for the given train type,
// in table order. Returns nil for Superfreight.
func TransitionsFrom(t TrainType) []TrainTransition {
	var out []TrainTransition
	for _, tr := range trainTransitions {
		if tr.From == t {
			out = append(out, tr)
		}
	}
	return out
}

// TransitionTo looks up the transition from one train type to another.
// The second return is false if no such row exists in the table.
func TransitionTo(from, to TrainType) (TrainTransition, bool) {
	for _, tr := range trainTransitions {
		if tr.From == from && tr.To == to {
			return tr, true
		}
	}
	return TrainTransition{}, false
}
