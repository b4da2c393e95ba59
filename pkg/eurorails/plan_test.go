package eurorails

import (
	"strings"
	"testing"
)

func buildAction(cost int) Action {
	return Action{
		Kind:     ActionBuildTrack,
		Segments: []TrackSegment{{From: coord(0, 0), To: coord(0, 1), Cost: cost}},
	}
}

func TestValidatePlanEmpty(t *testing.T) {
	snap := demoSnap()
	res := ValidatePlan(nil, snap)
	if !res.Valid || len(res.Errors) != 0 {
		t.Errorf("empty plan should be valid, got %v", res)
	}
}

func TestValidatePlanOverBudgetBuild(t *testing.T) {
	snap := demoSnap()
	snap.Money = 100
	res := ValidatePlan(TurnPlan{buildAction(25)}, snap)
	if res.Valid {
		t.Fatal("plan with a 25-cost build should be invalid")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", res.Errors)
	}
	if !strings.Contains(res.Errors[0], "action 1") || !strings.Contains(res.Errors[0], "turn budget") {
		t.Errorf("error should name the action and the turn budget, got: %s", res.Errors[0])
	}
}

func TestValidatePlanAccumulatesErrors(t *testing.T) {
	snap := demoSnap()
	snap.Money = 100
	plan := TurnPlan{
		buildAction(25),
		{Kind: ActionUpgradeTrain, TargetTrain: Superfreight},
	}
	res := ValidatePlan(plan, snap)
	if res.Valid {
		t.Fatal("plan with two violations should be invalid")
	}
	if len(res.Errors) != 2 {
		t.Fatalf("expected both violations reported, got %v", res.Errors)
	}
	if !strings.Contains(res.Errors[1], "action 2") {
		t.Errorf("second error should name action 2, got: %s", res.Errors[1])
	}
}

func TestValidatePlanLaterActionsSeeEarlierEffects(t *testing.T) {
	snap := demoSnap()
	snap.Money = 100
	plan := TurnPlan{
		buildAction(12),
		{Kind: ActionBuildTrack, Segments: []TrackSegment{{From: coord(0, 1), To: coord(0, 2), Cost: 12}}},
	}
	res := ValidatePlan(plan, snap)
	if res.Valid {
		t.Fatal("two 12-cost builds exceed the turn limit together")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "action 2") {
		t.Errorf("only the second build should fail, got %v", res.Errors)
	}
}

func TestValidatePlanCrossgradeLowersCeiling(t *testing.T) {
	snap := demoSnap()
	snap.Money = 100
	snap.Train = FastFreight

	over := TurnPlan{
		{Kind: ActionUpgradeTrain, TargetTrain: HeavyFreight}, // crossgrade, cost 5
		buildAction(11),                                       // 5 spent of a 15 ceiling leaves 10
	}
	res := ValidatePlan(over, snap)
	if res.Valid {
		t.Fatal("build past the lowered ceiling should be invalid")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "action 2") {
		t.Errorf("only the build should fail, got %v", res.Errors)
	}

	within := TurnPlan{
		{Kind: ActionUpgradeTrain, TargetTrain: HeavyFreight},
		buildAction(10),
	}
	if res := ValidatePlan(within, snap); !res.Valid {
		t.Errorf("build at the lowered ceiling should be valid, got %v", res.Errors)
	}
}

func TestValidatePlanNegativeMoney(t *testing.T) {
	snap := demoSnap()
	snap.Money = 5
	res := ValidatePlan(TurnPlan{buildAction(10)}, snap)
	if res.Valid {
		t.Fatal("plan spending past the bank should be invalid")
	}
	// Both the per-action money check and the final balance check fire.
	if len(res.Errors) != 2 {
		t.Fatalf("expected two errors, got %v", res.Errors)
	}
	if !strings.Contains(res.Errors[1], "negative") {
		t.Errorf("final error should report the negative balance, got: %s", res.Errors[1])
	}
}

func TestValidatePlanDeliveryConsumesCargo(t *testing.T) {
	snap := feasSnap()
	plan := TurnPlan{
		{Kind: ActionDeliver, CardIndex: 0, DemandIndex: 0},
		{Kind: ActionDeliver, CardIndex: 0, DemandIndex: 0},
	}
	res := ValidatePlan(plan, snap)
	if res.Valid {
		t.Fatal("second delivery of the same single load should be invalid")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "not carrying") {
		t.Errorf("second delivery should fail on missing cargo, got %v", res.Errors)
	}
}

func TestValidatePlanDoesNotMutateSnapshot(t *testing.T) {
	snap := feasSnap()
	moneyBefore := snap.Money
	cargoBefore := len(snap.Cargo)
	netBefore := snap.Network.Size()
	segsBefore := len(snap.AllSegments)

	ValidatePlan(TurnPlan{
		{Kind: ActionDeliver, CardIndex: 0, DemandIndex: 0},
		buildAction(5),
		{Kind: ActionUpgradeTrain, TargetTrain: FastFreight},
	}, snap)

	if snap.Money != moneyBefore {
		t.Errorf("snapshot money changed: %d -> %d", moneyBefore, snap.Money)
	}
	if len(snap.Cargo) != cargoBefore {
		t.Errorf("snapshot cargo changed: %d -> %d", cargoBefore, len(snap.Cargo))
	}
	if snap.Network.Size() != netBefore {
		t.Errorf("snapshot network changed: %d -> %d", netBefore, snap.Network.Size())
	}
	if len(snap.AllSegments) != segsBefore {
		t.Errorf("snapshot union track changed: %d -> %d", segsBefore, len(snap.AllSegments))
	}
}

func TestValidatePlanValidSequence(t *testing.T) {
	snap := feasSnap()
	plan := TurnPlan{
		{Kind: ActionDeliver, CardIndex: 0, DemandIndex: 0},
		{Kind: ActionPickupDeliver, Resource: "wine", City: "ulm"},
		buildAction(5),
		{Kind: ActionPass},
	}
	res := ValidatePlan(plan, snap)
	if !res.Valid {
		t.Errorf("expected a valid plan, got %v", res.Errors)
	}
}
