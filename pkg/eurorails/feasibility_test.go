package eurorails

import (
	"strings"
	"testing"
)

// Helper building a snapshot with track laid to ulm and a demand for beer
// there.
func feasSnap() *WorldSnapshot {
	snap := reachSnap()
	snap.Money = 50
	snap.MovementLeft = 9
	snap.Cargo = []string{"beer"}
	snap.Hand = []DemandCard{
		{Demands: []Demand{
			{City: "ulm", Resource: "beer", Payment: 12},
			{City: "bremen", Resource: "cheese", Payment: 8},
		}},
	}
	snap.CitySupply = map[string][]string{
		"ulm":    {"wine"},
		"bremen": {"cheese"},
	}
	return snap
}

func TestDeliveryFeasible(t *testing.T) {
	snap := feasSnap()
	if f := ValidateDeliveryFeasibility(snap, 0, 0); !f.Feasible {
		t.Errorf("delivery should be feasible, got: %s", f.Reason)
	}
}

func TestDeliveryNotCarrying(t *testing.T) {
	snap := feasSnap()
	snap.Cargo = nil
	f := ValidateDeliveryFeasibility(snap, 0, 0)
	if f.Feasible {
		t.Fatal("delivery without the cargo should be infeasible")
	}
	if !strings.Contains(f.Reason, "not carrying") {
		t.Errorf("reason should mention missing cargo, got: %s", f.Reason)
	}
}

func TestDeliveryCityUnreachable(t *testing.T) {
	snap := feasSnap()
	snap.MovementLeft = 2 // ulm is 3 hops out
	f := ValidateDeliveryFeasibility(snap, 0, 0)
	if f.Feasible {
		t.Fatal("delivery beyond movement range should be infeasible")
	}
	if !strings.Contains(f.Reason, "not reachable") {
		t.Errorf("reason should mention reachability, got: %s", f.Reason)
	}
}

func TestDeliveryBadIndexes(t *testing.T) {
	snap := feasSnap()
	if f := ValidateDeliveryFeasibility(snap, 5, 0); f.Feasible {
		t.Error("out-of-range card index should be infeasible")
	}
	if f := ValidateDeliveryFeasibility(snap, 0, 9); f.Feasible {
		t.Error("out-of-range demand index should be infeasible")
	}
}

func TestPickupFeasible(t *testing.T) {
	snap := feasSnap()
	snap.Cargo = nil
	if f := ValidatePickupFeasibility(snap, "wine", "ulm"); !f.Feasible {
		t.Errorf("pickup should be feasible, got: %s", f.Reason)
	}
}

func TestPickupTrainFull(t *testing.T) {
	snap := feasSnap()
	snap.Cargo = []string{"beer", "coal"} // Freight carries 2
	f := ValidatePickupFeasibility(snap, "wine", "ulm")
	if f.Feasible {
		t.Fatal("pickup with a full train should be infeasible")
	}
	if !strings.Contains(f.Reason, "full") {
		t.Errorf("reason should mention the full train, got: %s", f.Reason)
	}
}

func TestPickupCityHasNoSupply(t *testing.T) {
	snap := feasSnap()
	snap.Cargo = nil
	if f := ValidatePickupFeasibility(snap, "coal", "ulm"); f.Feasible {
		t.Error("pickup of a resource the city lacks should be infeasible")
	}
}

func TestPickupFromDroppedCargo(t *testing.T) {
	snap := feasSnap()
	snap.Cargo = nil
	snap.CityDrops = map[string][]string{"ulm": {"coal"}}
	if f := ValidatePickupFeasibility(snap, "coal", "ulm"); !f.Feasible {
		t.Errorf("dropped cargo should be pickable, got: %s", f.Reason)
	}
}

func TestBuildWithinBudgetAndMoney(t *testing.T) {
	snap := demoSnap()
	snap.Money = 100
	segs := []TrackSegment{
		{From: coord(0, 0), To: coord(0, 1), Cost: 10},
		{From: coord(0, 1), To: coord(0, 2), Cost: 10},
	}
	if f := ValidateBuildTrackFeasibility(snap, segs); !f.Feasible {
		t.Errorf("build at exactly the turn limit should be feasible, got: %s", f.Reason)
	}
}

func TestBuildExceedsTurnBudget(t *testing.T) {
	snap := demoSnap()
	snap.Money = 100
	segs := []TrackSegment{
		{From: coord(0, 0), To: coord(0, 1), Cost: 11},
		{From: coord(0, 1), To: coord(0, 2), Cost: 10},
	}
	f := ValidateBuildTrackFeasibility(snap, segs)
	if f.Feasible {
		t.Fatal("build over the turn limit should be infeasible even with money to spare")
	}
	if !strings.Contains(f.Reason, "turn budget") {
		t.Errorf("reason should name the turn budget, got: %s", f.Reason)
	}
}

func TestBuildExceedsMoney(t *testing.T) {
	snap := demoSnap()
	snap.Money = 4
	segs := []TrackSegment{{From: coord(0, 0), To: coord(0, 1), Cost: 5}}
	f := ValidateBuildTrackFeasibility(snap, segs)
	if f.Feasible {
		t.Fatal("build beyond available money should be infeasible")
	}
	if !strings.Contains(f.Reason, "money") {
		t.Errorf("reason should name money, got: %s", f.Reason)
	}
}

func TestBuildBudgetCheckedBeforeMoney(t *testing.T) {
	snap := demoSnap()
	snap.Money = 4
	segs := []TrackSegment{{From: coord(0, 0), To: coord(0, 1), Cost: 21}}
	f := ValidateBuildTrackFeasibility(snap, segs)
	if f.Feasible {
		t.Fatal("expected infeasible")
	}
	if !strings.Contains(f.Reason, "turn budget") {
		t.Errorf("turn budget violation should be reported first, got: %s", f.Reason)
	}
}

func TestBuildLoweredCeilingAfterCrossgrade(t *testing.T) {
	snap := demoSnap()
	snap.Money = 100
	snap.Crossgraded = true
	over := []TrackSegment{{From: coord(0, 0), To: coord(0, 1), Cost: 16}}
	if f := ValidateBuildTrackFeasibility(snap, over); f.Feasible {
		t.Error("post-crossgrade ceiling is 15; cost 16 should be infeasible")
	}
	at := []TrackSegment{{From: coord(0, 0), To: coord(0, 1), Cost: 15}}
	if f := ValidateBuildTrackFeasibility(snap, at); !f.Feasible {
		t.Errorf("cost 15 should fit the lowered ceiling, got: %s", f.Reason)
	}
}

func TestBuildCountsEarlierTurnSpending(t *testing.T) {
	snap := demoSnap()
	snap.Money = 100
	snap.Network.TurnBuildCost = 18
	segs := []TrackSegment{{From: coord(0, 0), To: coord(0, 1), Cost: 3}}
	if f := ValidateBuildTrackFeasibility(snap, segs); f.Feasible {
		t.Error("18 already spent leaves only 2; cost 3 should be infeasible")
	}
}

func TestBuildEmptySegments(t *testing.T) {
	snap := demoSnap()
	if f := ValidateBuildTrackFeasibility(snap, nil); f.Feasible {
		t.Error("empty segment list should be infeasible")
	}
}

func TestTransitionUpgrade(t *testing.T) {
	snap := demoSnap()
	snap.Money = 25
	if f := ValidateTrainTransitionFeasibility(snap, FastFreight); !f.Feasible {
		t.Errorf("freight to fast freight should be feasible, got: %s", f.Reason)
	}
}

func TestTransitionSkippingTiers(t *testing.T) {
	snap := demoSnap()
	snap.Money = 100
	f := ValidateTrainTransitionFeasibility(snap, Superfreight)
	if f.Feasible {
		t.Fatal("freight cannot jump straight to superfreight")
	}
	if !strings.Contains(f.Reason, "no transition") {
		t.Errorf("reason should say no such transition, got: %s", f.Reason)
	}
}

func TestTransitionTooExpensive(t *testing.T) {
	snap := demoSnap()
	snap.Money = 19
	if f := ValidateTrainTransitionFeasibility(snap, FastFreight); f.Feasible {
		t.Error("upgrade cost 20 with money 19 should be infeasible")
	}
}

func TestTransitionNeedsTurnBudget(t *testing.T) {
	snap := demoSnap()
	snap.Money = 100
	snap.Network.TurnBuildCost = 16
	snap.Train = FastFreight
	// Crossgrade costs 5; only 4 of the turn budget remains.
	if f := ValidateTrainTransitionFeasibility(snap, HeavyFreight); f.Feasible {
		t.Error("crossgrade should not fit the remaining turn budget")
	}
}

func TestTransitionToSameType(t *testing.T) {
	snap := demoSnap()
	snap.Money = 100
	if f := ValidateTrainTransitionFeasibility(snap, Freight); f.Feasible {
		t.Error("transition to the current type should be infeasible")
	}
}

func TestValidateActionPass(t *testing.T) {
	snap := demoSnap()
	if f := ValidateAction(snap, Action{Kind: ActionPass}); !f.Feasible {
		t.Errorf("pass should always be feasible, got: %s", f.Reason)
	}
}
