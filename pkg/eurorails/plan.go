package eurorails

import "fmt"

// TurnPlan is an ordered list of actions chosen for execution this turn.
type TurnPlan []Action

// ValidationResult is the outcome of validating a whole plan. All
// violations are collected; the plan is valid only if none were found.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ValidatePlan simulates applying the plan's actions in order against a
// copy of the snapshot. Each action is re-checked against the current
// simulated state (not the stale original), its violation recorded if any,
// and its effects applied unconditionally so later actions see them. After
// all actions, a final non-negative money check runs. An empty plan is
// trivially valid.
func ValidatePlan(plan TurnPlan, snap *WorldSnapshot) ValidationResult {
	if len(plan) == 0 {
		return ValidationResult{Valid: true}
	}

	sim := snap.Clone()
	var errs []string
	for i := range plan {
		a := &plan[i]
		if f := ValidateAction(sim, *a); !f.Feasible {
			errs = append(errs, fmt.Sprintf("action %d (%s): %s", i+1, a.Describe(), f.Reason))
		}
		applyAction(sim, a)
	}
	if sim.Money < 0 {
		errs = append(errs, fmt.Sprintf("plan leaves money negative (%d)", sim.Money))
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// applyAction mutates the simulated state with the action's effects,
// whether or not the action validated. Violations were already recorded;
// applying anyway keeps later checks honest about the state the plan
// assumes.
func applyAction(sim *WorldSnapshot, a *Action) {
	switch a.Kind {
	case ActionDeliver:
		if a.CardIndex < 0 || a.CardIndex >= len(sim.Hand) {
			return
		}
		card := sim.Hand[a.CardIndex]
		if a.DemandIndex < 0 || a.DemandIndex >= len(card.Demands) {
			return
		}
		removeCargo(sim, card.Demands[a.DemandIndex].Resource)

	case ActionPickupDeliver:
		// Pick up and deliver is modeled as one atomic action: the load is
		// added and immediately removed, so carried cargo is unchanged.

	case ActionBuildTrack:
		cost := a.BuildCost()
		sim.Money -= cost
		sim.Network.TurnBuildCost += cost
		for _, s := range a.Segments {
			if !sim.Network.Has(s.From, s.To) {
				sim.Network.segments[s.Key()] = s
				sim.Network.TotalCost += s.Cost
			}
			sim.AllSegments = append(sim.AllSegments, s)
		}

	case ActionUpgradeTrain:
		if tr, ok := TransitionTo(sim.Train, a.TargetTrain); ok {
			sim.Money -= tr.Cost
			sim.Network.TurnBuildCost += tr.Cost
			if tr.Crossgrade {
				sim.Crossgraded = true
			}
		}
		sim.Train = a.TargetTrain
	}
}

// removeCargo drops the first occurrence of the resource from carried cargo.
func removeCargo(sim *WorldSnapshot, resource string) {
	for i, c := range sim.Cargo {
		if c == resource {
			sim.Cargo = append(sim.Cargo[:i], sim.Cargo[i+1:]...)
			return
		}
	}
}
