package eurorails

import "fmt"

// TrackSegment is one undirected edge of built track. Cost is fixed at
// build time and never recomputed.
type TrackSegment struct {
	From Coordinate `json:"from"`
	To   Coordinate `json:"to"`
	Cost int        `json:"cost"`
}

func (s TrackSegment) String() string {
	return fmt.Sprintf("%s-%s @%d", s.From, s.To, s.Cost)
}

// Key returns the canonical undirected key for the segment.
func (s TrackSegment) Key() EdgeKey {
	return NewEdgeKey(s.From, s.To)
}

// EdgeKey identifies an undirected edge: (A,B) and (B,A) map to the same key.
type EdgeKey struct {
	lo Coordinate
	hi Coordinate
}

// NewEdgeKey canonicalizes an endpoint pair into an EdgeKey.
func NewEdgeKey(a, b Coordinate) EdgeKey {
	if b.Row < a.Row || (b.Row == a.Row && b.Col < a.Col) {
		a, b = b, a
	}
	return EdgeKey{lo: a, hi: b}
}

// Endpoints returns the canonical endpoint pair.
func (k EdgeKey) Endpoints() (Coordinate, Coordinate) {
	return k.lo, k.hi
}

// Touches reports whether the edge is incident to the coordinate.
func (k EdgeKey) Touches(c Coordinate) bool {
	return k.lo == c || k.hi == c
}

// PlayerNetwork is the undirected graph of one player's track, plus the
// per-turn and lifetime spending counters. Only successful build and
// transition actions mutate it; the turn counter resets at turn start.
type PlayerNetwork struct {
	segments      map[EdgeKey]TrackSegment
	TurnBuildCost int
	TotalCost     int
}

// NewPlayerNetwork returns an empty network.
func NewPlayerNetwork() *PlayerNetwork {
	return &PlayerNetwork{segments: make(map[EdgeKey]TrackSegment)}
}

// Has reports whether the edge between the two coordinates is in the
// network, in either orientation.
func (n *PlayerNetwork) Has(a, b Coordinate) bool {
	_, ok := n.segments[NewEdgeKey(a, b)]
	return ok
}

// Add inserts a segment and updates the spending counters. Re-adding an
// existing edge is a no-op: an owned edge is never re-charged.
func (n *PlayerNetwork) Add(s TrackSegment) {
	key := s.Key()
	if _, ok := n.segments[key]; ok {
		return
	}
	n.segments[key] = s
	n.TurnBuildCost += s.Cost
	n.TotalCost += s.Cost
}

// Size returns the number of segments in the network.
func (n *PlayerNetwork) Size() int {
	return len(n.segments)
}

// Empty reports whether the player has built any track.
func (n *PlayerNetwork) Empty() bool {
	return len(n.segments) == 0
}

// Segments returns all segments in the network (order unspecified).
func (n *PlayerNetwork) Segments() []TrackSegment {
	out := make([]TrackSegment, 0, len(n.segments))
	for _, s := range n.segments {
		out = append(out, s)
	}
	return out
}

// Nodes returns the set of coordinates touched by the network.
func (n *PlayerNetwork) Nodes() map[Coordinate]bool {
	nodes := make(map[Coordinate]bool, len(n.segments)*2)
	for k := range n.segments {
		nodes[k.lo] = true
		nodes[k.hi] = true
	}
	return nodes
}

// Touches reports whether any segment in the network is incident to the
// coordinate.
func (n *PlayerNetwork) Touches(c Coordinate) bool {
	for k := range n.segments {
		if k.Touches(c) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the network. Needed by plan simulation,
// which speculatively appends segments.
func (n *PlayerNetwork) Clone() *PlayerNetwork {
	c := &PlayerNetwork{
		segments:      make(map[EdgeKey]TrackSegment, len(n.segments)),
		TurnBuildCost: n.TurnBuildCost,
		TotalCost:     n.TotalCost,
	}
	for k, s := range n.segments {
		c.segments[k] = s
	}
	return c
}
