package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/jeffgabriel/eurorails-ai-sub001/internal/config"
	"github.com/jeffgabriel/eurorails-ai-sub001/internal/logger"
	"github.com/jeffgabriel/eurorails-ai-sub001/internal/planner"
	"github.com/jeffgabriel/eurorails-ai-sub001/pkg/eurorails"
)

func main() {
	logger.Init()

	cfg := config.Load()

	var (
		mapFile  string
		snapFile string
		planFile string
		jsonOut  bool
	)

	flag.StringVar(&mapFile, "map", cfg.MapFile, "YAML board definition (empty = built-in demo board)")
	flag.StringVar(&snapFile, "snapshot", cfg.SnapshotFile, "JSON world snapshot")
	flag.StringVar(&planFile, "plan", "", "JSON turn plan to validate (optional)")
	flag.BoolVar(&jsonOut, "json", false, "Output as JSON")

	flag.Parse()

	m, err := loadMap(mapFile)
	if err != nil {
		log.Fatal().Err(err).Str("map", mapFile).Msg("Failed to load board")
	}

	if snapFile == "" {
		log.Fatal().Msg("A snapshot is required (-snapshot or RAILPLAN_SNAPSHOT)")
	}
	data, err := os.ReadFile(snapFile)
	if err != nil {
		log.Fatal().Err(err).Str("snapshot", snapFile).Msg("Failed to read snapshot")
	}
	snap, err := eurorails.DecodeSnapshot(data, m)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to decode snapshot")
	}

	if planFile != "" {
		validatePlanFile(planFile, snap, jsonOut)
		return
	}

	reportOptions(snap, jsonOut)
}

func loadMap(path string) (*eurorails.GameMap, error) {
	if path == "" {
		return eurorails.DemoMap(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return eurorails.ParseMap(data)
}

// reportOptions prints the reachable cities and the full option enumeration
// for the snapshot.
func reportOptions(snap *eurorails.WorldSnapshot, jsonOut bool) {
	cities, err := eurorails.ComputeReachableCities(snap, snap.MovementLeft)
	if err != nil {
		log.Fatal().Err(err).Msg("Reachability scan failed")
	}
	opts := planner.Generate(snap)

	if jsonOut {
		out := struct {
			ReachableCities []eurorails.ReachableCity `json:"reachable_cities"`
			Feasible        []optionJSON              `json:"feasible"`
			Infeasible      []optionJSON              `json:"infeasible"`
		}{
			ReachableCities: cities,
			Feasible:        toOptionJSON(opts.Feasible),
			Infeasible:      toOptionJSON(opts.Infeasible),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatal().Err(err).Msg("Failed to encode output")
		}
		return
	}

	fmt.Printf("Reachable cities (movement %d):\n", snap.MovementLeft)
	if len(cities) == 0 {
		fmt.Println("  none")
	}
	for _, c := range cities {
		fmt.Printf("  %-12s %s  %d hops\n", c.Name, c.Coord, c.Distance)
	}

	fmt.Printf("\nFeasible options (%d):\n", len(opts.Feasible))
	for _, o := range opts.Feasible {
		fmt.Printf("  [%s] %s\n", o.ID[:8], o.Describe())
	}

	fmt.Printf("\nInfeasible options (%d):\n", len(opts.Infeasible))
	for _, o := range opts.Infeasible {
		fmt.Printf("  [%s] %s\n", o.ID[:8], o.Describe())
	}
}

type optionJSON struct {
	ID           string `json:"id"`
	Action       string `json:"action"`
	Reason       string `json:"reason,omitempty"`
	Value        int    `json:"value,omitempty"`
	Cost         int    `json:"cost,omitempty"`
	MajorConnect bool   `json:"major_connect,omitempty"`
}

func toOptionJSON(opts []planner.Option) []optionJSON {
	out := make([]optionJSON, 0, len(opts))
	for i := range opts {
		o := &opts[i]
		out = append(out, optionJSON{
			ID:           o.ID,
			Action:       o.Action.Describe(),
			Reason:       o.Reason,
			Value:        o.Value,
			Cost:         o.Action.BuildCost(),
			MajorConnect: o.MajorConnect,
		})
	}
	return out
}

// validatePlanFile runs full plan simulation against the snapshot and
// reports every violation found.
func validatePlanFile(path string, snap *eurorails.WorldSnapshot, jsonOut bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("plan", path).Msg("Failed to read plan")
	}
	var plan eurorails.TurnPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		log.Fatal().Err(err).Msg("Failed to decode plan")
	}

	res := eurorails.ValidatePlan(plan, snap)

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Fatal().Err(err).Msg("Failed to encode output")
		}
	} else if res.Valid {
		fmt.Printf("Plan valid (%d actions)\n", len(plan))
	} else {
		fmt.Printf("Plan invalid (%d violations):\n", len(res.Errors))
		for _, e := range res.Errors {
			fmt.Printf("  %s\n", e)
		}
	}

	if !res.Valid {
		os.Exit(1)
	}
}
