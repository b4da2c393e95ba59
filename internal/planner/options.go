package planner

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jeffgabriel/eurorails-ai-sub001/pkg/eurorails"
)

// Option is one candidate action for the current turn, tagged with a unique
// id so a caller can refer back to it when assembling a plan.
type Option struct {
	ID     string
	Action eurorails.Action
	Reason string // why the option is infeasible; empty when feasible
	Value  int    // demand payment for delivery options, 0 otherwise

	// MajorConnect marks a build proposed to connect an untouched major
	// city cluster, as opposed to one serving a demand card.
	MajorConnect bool
}

// Describe renders the option for logs and CLI output.
func (o *Option) Describe() string {
	s := o.Action.Describe()
	if o.MajorConnect {
		s = fmt.Sprintf("%s connecting %s", s, o.Action.City)
	}
	if o.Reason != "" {
		return fmt.Sprintf("%s (infeasible: %s)", s, o.Reason)
	}
	return s
}

// Options is the full enumeration for one snapshot, split by feasibility.
// Infeasible candidates are kept with their reasons; a caller deciding what
// to do next often cares as much about why something is off the table.
type Options struct {
	Feasible   []Option
	Infeasible []Option
}

// Generate enumerates every candidate action for the snapshot's player:
// deliveries for carried cargo, pickup-and-deliver runs for demands not yet
// carried, track builds toward unreachable demand cities and untouched
// major city clusters, train transitions, and a pass. Every candidate is
// validated against the snapshot; pass is always present and feasible.
func Generate(snap *eurorails.WorldSnapshot) Options {
	var candidates []Option

	candidates = append(candidates, demandOptions(snap)...)
	candidates = append(candidates, buildOptions(snap)...)
	candidates = append(candidates, transitionOptions(snap)...)
	candidates = append(candidates, Option{
		ID:     uuid.NewString(),
		Action: eurorails.Action{Kind: eurorails.ActionPass},
	})

	var out Options
	for _, c := range candidates {
		if c.Reason == "" {
			if f := eurorails.ValidateAction(snap, c.Action); !f.Feasible {
				c.Reason = f.Reason
			}
		}
		if c.Reason == "" {
			out.Feasible = append(out.Feasible, c)
		} else {
			out.Infeasible = append(out.Infeasible, c)
		}
	}

	// Highest-paying options first; pass sorts last among the rest.
	sort.SliceStable(out.Feasible, func(i, j int) bool {
		if out.Feasible[i].Value != out.Feasible[j].Value {
			return out.Feasible[i].Value > out.Feasible[j].Value
		}
		return out.Feasible[i].Action.Kind > out.Feasible[j].Action.Kind
	})

	log.Debug().
		Str("player", snap.PlayerID).
		Int("feasible", len(out.Feasible)).
		Int("infeasible", len(out.Infeasible)).
		Msg("generated turn options")
	return out
}

// demandOptions proposes a delivery for every demand whose resource is
// already carried, and a pickup-and-deliver for every demand whose resource
// some city can supply.
func demandOptions(snap *eurorails.WorldSnapshot) []Option {
	var out []Option
	for ci, card := range snap.Hand {
		for di, d := range card.Demands {
			if snap.Carrying(d.Resource) {
				out = append(out, Option{
					ID: uuid.NewString(),
					Action: eurorails.Action{
						Kind:        eurorails.ActionDeliver,
						CardIndex:   ci,
						DemandIndex: di,
					},
					Value: d.Payment,
				})
				continue
			}
			for _, city := range supplyCities(snap, d.Resource) {
				out = append(out, Option{
					ID: uuid.NewString(),
					Action: eurorails.Action{
						Kind:     eurorails.ActionPickupDeliver,
						Resource: d.Resource,
						City:     city,
					},
					Value: d.Payment,
				})
			}
		}
	}
	return out
}

// buildOptions proposes track builds toward demand cities the train cannot
// reach yet, and toward major city clusters the player's network does not
// touch. Routes are priced by the cheapest-path search under whichever of
// the turn budget and the bank is tighter.
func buildOptions(snap *eurorails.WorldSnapshot) []Option {
	budget := snap.RemainingBuildBudget()
	if snap.Money < budget {
		budget = snap.Money
	}

	reachable, err := eurorails.ComputeReachableCities(snap, eurorails.SpecFor(snap.Train).Speed)
	if err != nil {
		log.Warn().Err(err).Str("player", snap.PlayerID).Msg("reachability scan failed")
	}

	var out []Option
	seen := map[string]bool{}
	for _, card := range snap.Hand {
		for _, d := range card.Demands {
			if seen[d.City] || eurorails.CityReachable(reachable, d.City) {
				continue
			}
			seen[d.City] = true
			out = append(out, buildTowardCity(snap, d.City, budget))
		}
	}

	for _, city := range snap.Map.MajorCities() {
		touched := false
		for _, p := range snap.Map.CityPoints(city.Name) {
			if snap.Network.Touches(p.Coord()) {
				touched = true
				break
			}
		}
		if touched || seen[city.Name] {
			continue
		}
		opt := buildTowardCity(snap, city.Name, budget)
		opt.MajorConnect = true
		out = append(out, opt)
	}
	return out
}

// buildTowardCity prices a build toward the city's representative milepost.
// A city with no affordable route becomes an infeasible option with a
// reason rather than being dropped.
func buildTowardCity(snap *eurorails.WorldSnapshot, city string, budget int) Option {
	opt := Option{ID: uuid.NewString()}
	center := snap.Map.CityCenter(city)
	if center == nil {
		opt.Action = eurorails.Action{Kind: eurorails.ActionBuildTrack, City: city}
		opt.Reason = fmt.Sprintf("unknown city %s", city)
		return opt
	}

	segs, err := eurorails.ComputeBuildSegments(snap, center.Row, center.Col, budget)
	opt.Action = eurorails.Action{
		Kind:     eurorails.ActionBuildTrack,
		City:     city,
		Segments: segs,
	}
	switch {
	case err != nil:
		opt.Reason = err.Error()
	case len(segs) == 0:
		opt.Reason = fmt.Sprintf("no route to %s within budget %d", city, budget)
	}
	return opt
}

// transitionOptions proposes every legal upgrade or crossgrade for the
// current train.
func transitionOptions(snap *eurorails.WorldSnapshot) []Option {
	var out []Option
	for _, tr := range eurorails.TransitionsFrom(snap.Train) {
		out = append(out, Option{
			ID: uuid.NewString(),
			Action: eurorails.Action{
				Kind:        eurorails.ActionUpgradeTrain,
				TargetTrain: tr.To,
			},
		})
	}
	return out
}

// supplyCities returns the cities that can provide the resource, from
// standing supply or dropped cargo, sorted for stable output.
func supplyCities(snap *eurorails.WorldSnapshot, resource string) []string {
	set := map[string]bool{}
	for city, goods := range snap.CitySupply {
		for _, r := range goods {
			if r == resource {
				set[city] = true
			}
		}
	}
	for city, goods := range snap.CityDrops {
		for _, r := range goods {
			if r == resource {
				set[city] = true
			}
		}
	}
	out := make([]string, 0, len(set))
	for city := range set {
		out = append(out, city)
	}
	sort.Strings(out)
	return out
}
