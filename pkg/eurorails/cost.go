package eurorails

import (
	"errors"
	"fmt"
)

// ErrUnknownPoint reports a coordinate that is not on the game map. This is
// a caller contract violation, not a normal infeasibility.
var ErrUnknownPoint = errors.New("coordinate not on map")

// ErrWaterEdge reports an attempt to price an edge into open water.
var ErrWaterEdge = errors.New("cannot build into water")

// EdgeCost prices building the directed step from -> to for the snapshot's
// player. The special cases apply in order:
//
//  1. first edge entering a major city cluster from outside it: fixed cost
//     regardless of terrain (edges within the cluster price normally)
//  2. edge into a ferry port: the connection's fixed cost, paid once by the
//     first player to touch either endpoint; crossing from the partner port
//     and all later connections are free
//  3. edge already in the player's own network: free reuse
//  4. base terrain cost plus any water-crossing surcharge
func EdgeCost(snap *WorldSnapshot, from, to Coordinate) (int, error) {
	src := snap.Map.PointAt(from)
	dst := snap.Map.PointAt(to)
	if src == nil {
		return 0, fmt.Errorf("edge cost %s: %w", from, ErrUnknownPoint)
	}
	if dst == nil {
		return 0, fmt.Errorf("edge cost %s: %w", to, ErrUnknownPoint)
	}
	if dst.Terrain == Water {
		return 0, fmt.Errorf("edge %s-%s: %w", from, to, ErrWaterEdge)
	}

	if cluster := snap.Map.MajorClusterAt(to); cluster != nil &&
		snap.Map.MajorClusterAt(from) != cluster && !snap.touchesCluster(cluster) {
		return MajorCityConnectCost, nil
	}

	if dst.Terrain == FerryPort && dst.Ferry != nil {
		if other, ok := dst.Ferry.Other(to); ok && other == from {
			return 0, nil // the crossing itself is free once a port is reached
		}
		if snap.ferryPaid(dst.Ferry) {
			return 0, nil
		}
		return dst.Ferry.Cost, nil
	}

	if snap.Network.Has(from, to) {
		return 0, nil
	}

	base, ok := dst.Terrain.BaseBuildCost()
	if !ok {
		return 0, fmt.Errorf("edge %s-%s: %w", from, to, ErrWaterEdge)
	}
	return base + snap.Map.Surcharge(from, to), nil
}

// touchesCluster reports whether the player's own network already has a
// segment incident to any milepost of the major city cluster.
func (s *WorldSnapshot) touchesCluster(cluster *City) bool {
	for _, p := range s.Map.CityPoints(cluster.Name) {
		if s.Network.Touches(p.Coord()) {
			return true
		}
	}
	return false
}
