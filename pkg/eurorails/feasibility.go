package eurorails

import "fmt"

// Feasibility is the verdict of a single-action check: either feasible, or
// not with a human-readable reason. Infeasibility is a normal, expected
// outcome, never an error.
type Feasibility struct {
	Feasible bool
	Reason   string
}

func feasible() Feasibility {
	return Feasibility{Feasible: true}
}

func infeasible(format string, args ...any) Feasibility {
	return Feasibility{Reason: fmt.Sprintf(format, args...)}
}

// ValidateDeliveryFeasibility checks whether the demand line at
// (cardIndex, demandIndex) in hand can be delivered this turn: the resource
// must be carried and the destination city reachable within the remaining
// movement.
func ValidateDeliveryFeasibility(snap *WorldSnapshot, cardIndex, demandIndex int) Feasibility {
	if cardIndex < 0 || cardIndex >= len(snap.Hand) {
		return infeasible("no demand card at index %d", cardIndex)
	}
	card := snap.Hand[cardIndex]
	if demandIndex < 0 || demandIndex >= len(card.Demands) {
		return infeasible("card %d has no demand at index %d", cardIndex, demandIndex)
	}
	demand := card.Demands[demandIndex]

	if !snap.Carrying(demand.Resource) {
		return infeasible("not carrying %s", demand.Resource)
	}
	if snap.Position == nil {
		return infeasible("train has no position")
	}
	cities, err := ComputeReachableCities(snap, snap.MovementLeft)
	if err != nil {
		return infeasible("reachability: %v", err)
	}
	if !CityReachable(cities, demand.City) {
		return infeasible("%s not reachable within %d movement", demand.City, snap.MovementLeft)
	}
	return feasible()
}

// ValidatePickupFeasibility checks whether the resource can be picked up at
// the city this turn: the train must have spare capacity, the city must
// offer the resource (standing supply or dropped cargo), and the city must
// be reachable within the remaining movement.
func ValidatePickupFeasibility(snap *WorldSnapshot, resource, city string) Feasibility {
	capacity := SpecFor(snap.Train).Capacity
	if len(snap.Cargo) >= capacity {
		return infeasible("train is full (%d/%d loads)", len(snap.Cargo), capacity)
	}
	if !snap.CityOffers(city, resource) {
		return infeasible("%s has no %s available", city, resource)
	}
	if snap.Position == nil {
		return infeasible("train has no position")
	}
	cities, err := ComputeReachableCities(snap, snap.MovementLeft)
	if err != nil {
		return infeasible("reachability: %v", err)
	}
	if !CityReachable(cities, city) {
		return infeasible("%s not reachable within %d movement", city, snap.MovementLeft)
	}
	return feasible()
}

// ValidateBuildTrackFeasibility checks whether the priced segment list can
// be built this turn: segments must be non-empty with positive costs, and
// the total must fit both the remaining turn build budget and the player's
// money.
func ValidateBuildTrackFeasibility(snap *WorldSnapshot, segments []TrackSegment) Feasibility {
	if len(segments) == 0 {
		return infeasible("no segments to build")
	}
	total := 0
	for _, s := range segments {
		if s.Cost <= 0 {
			return infeasible("segment %s has non-positive cost", s)
		}
		total += s.Cost
	}
	if rem := snap.RemainingBuildBudget(); total > rem {
		return infeasible("build cost %d exceeds remaining turn budget %d", total, rem)
	}
	if total > snap.Money {
		return infeasible("build cost %d exceeds available money %d", total, snap.Money)
	}
	return feasible()
}

// ValidateTrainTransitionFeasibility checks whether the train can upgrade
// or crossgrade to the target type: the transition must exist in the fixed
// table and its cost must fit the remaining turn budget and money.
func ValidateTrainTransitionFeasibility(snap *WorldSnapshot, target TrainType) Feasibility {
	if target == snap.Train {
		return infeasible("already a %s", target)
	}
	tr, ok := TransitionTo(snap.Train, target)
	if !ok {
		return infeasible("no transition from %s to %s", snap.Train, target)
	}
	if rem := snap.RemainingBuildBudget(); tr.Cost > rem {
		return infeasible("transition cost %d exceeds remaining turn budget %d", tr.Cost, rem)
	}
	if tr.Cost > snap.Money {
		return infeasible("transition cost %d exceeds available money %d", tr.Cost, snap.Money)
	}
	return feasible()
}

// ValidateAction dispatches to the per-kind feasibility check. Pass is
// always feasible.
func ValidateAction(snap *WorldSnapshot, a Action) Feasibility {
	switch a.Kind {
	case ActionPass:
		return feasible()
	case ActionDeliver:
		return ValidateDeliveryFeasibility(snap, a.CardIndex, a.DemandIndex)
	case ActionPickupDeliver:
		return ValidatePickupFeasibility(snap, a.Resource, a.City)
	case ActionBuildTrack:
		return ValidateBuildTrackFeasibility(snap, a.Segments)
	case ActionUpgradeTrain:
		return ValidateTrainTransitionFeasibility(snap, a.TargetTrain)
	default:
		return infeasible("unknown action kind %d", a.Kind)
	}
}
