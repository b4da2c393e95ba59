package eurorails

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ActionKind identifies the kind of turn action.
type ActionKind int

const (
	ActionPass          ActionKind = iota // End the turn without further action
	ActionDeliver                         // Deliver carried cargo against a demand
	ActionPickupDeliver                   // Pick up a resource and deliver it later this turn
	ActionBuildTrack                      // Build new track segments
	ActionUpgradeTrain                    // Upgrade or crossgrade the train
)

// MarshalJSON encodes the kind as its string name.
func (k ActionKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON accepts the string names used by plan files.
func (k *ActionKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "pass":
		*k = ActionPass
	case "deliver":
		*k = ActionDeliver
	case "pickup_deliver":
		*k = ActionPickupDeliver
	case "build_track":
		*k = ActionBuildTrack
	case "upgrade_train":
		*k = ActionUpgradeTrain
	default:
		return fmt.Errorf("unknown action kind %q", s)
	}
	return nil
}

func (k ActionKind) String() string {
	switch k {
	case ActionPass:
		return "pass"
	case ActionDeliver:
		return "deliver"
	case ActionPickupDeliver:
		return "pickup_deliver"
	case ActionBuildTrack:
		return "build_track"
	case ActionUpgradeTrain:
		return "upgrade_train"
	default:
		return "unknown"
	}
}

// Action is one step of a turn plan: a tagged descriptor whose relevant
// fields depend on Kind.
type Action struct {
	Kind ActionKind `json:"kind"`

	// Deliver: which demand line in hand is being satisfied.
	CardIndex   int `json:"card_index,omitempty"`
	DemandIndex int `json:"demand_index,omitempty"`

	// PickupDeliver: what to pick up and where. City also names the build
	// destination of a proposed track build.
	Resource string `json:"resource,omitempty"`
	City     string `json:"city,omitempty"`

	// BuildTrack: the priced segments to build.
	Segments []TrackSegment `json:"segments,omitempty"`

	// UpgradeTrain: the train type to transition to.
	TargetTrain TrainType `json:"target_train,omitempty"`
}

// BuildCost returns the summed segment cost of a build action.
func (a *Action) BuildCost() int {
	total := 0
	for _, s := range a.Segments {
		total += s.Cost
	}
	return total
}

// Describe returns a human-readable rendering of the action.
func (a *Action) Describe() string {
	switch a.Kind {
	case ActionPass:
		return "pass"
	case ActionDeliver:
		return fmt.Sprintf("deliver card %d demand %d", a.CardIndex, a.DemandIndex)
	case ActionPickupDeliver:
		return fmt.Sprintf("pick up %s at %s", a.Resource, a.City)
	case ActionBuildTrack:
		parts := make([]string, len(a.Segments))
		for i, s := range a.Segments {
			parts[i] = s.String()
		}
		return fmt.Sprintf("build %d segments [%s] for %d", len(a.Segments), strings.Join(parts, ", "), a.BuildCost())
	case ActionUpgradeTrain:
		return fmt.Sprintf("transition to %s", a.TargetTrain)
	default:
		return "unknown action"
	}
}
