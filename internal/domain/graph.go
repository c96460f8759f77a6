package domain

import "sort"

// NodeStats holds the per-number traffic counters maintained by the
// popularity graph. All counters are monotonically non-decreasing.
type NodeStats struct {
	IncomingCount    int
	OutgoingCount    int
	IncomingDuration int // seconds
	OutgoingDuration int // seconds
	UniqueCallers    map[string]struct{}
	UniqueCallees    map[string]struct{}
}

func newNodeStats() *NodeStats {
	return &NodeStats{
		UniqueCallers: make(map[string]struct{}),
		UniqueCallees: make(map[string]struct{}),
	}
}

func (s *NodeStats) clone() *NodeStats {
	out := newNodeStats()
	out.IncomingCount = s.IncomingCount
	out.OutgoingCount = s.OutgoingCount
	out.IncomingDuration = s.IncomingDuration
	out.OutgoingDuration = s.OutgoingDuration
	for k := range s.UniqueCallers {
		out.UniqueCallers[k] = struct{}{}
	}
	for k := range s.UniqueCallees {
		out.UniqueCallees[k] = struct{}{}
	}
	return out
}

// EdgeKey identifies the directed (caller, callee) aggregate.
type EdgeKey struct {
	Caller string
	Callee string
}

// EdgeStats aggregates all calls for one ordered (caller, callee) pair.
type EdgeStats struct {
	Count    int
	Duration int // seconds
}

// RankedNumber is one entry of a top-N ranking.
type RankedNumber struct {
	Number string
	Stats  NodeStats
}

// PopularityGraph is the directed traffic aggregate: one node per number
// seen as caller or callee, one edge per ordered (caller, callee) pair.
// It is maintained incrementally, one call at a time.
type PopularityGraph struct {
	nodes map[string]*NodeStats
	edges map[EdgeKey]*EdgeStats
}

// NewPopularityGraph creates an empty graph.
func NewPopularityGraph() *PopularityGraph {
	return &PopularityGraph{
		nodes: make(map[string]*NodeStats),
		edges: make(map[EdgeKey]*EdgeStats),
	}
}

// UpdateOnCall folds one call into the graph. It must be called exactly
// once per call; there is no deduplication, so a second invocation for the
// same call double-counts.
func (g *PopularityGraph) UpdateOnCall(call *Call) {
	caller := g.node(call.Caller)
	callee := g.node(call.Callee)

	caller.OutgoingCount++
	caller.OutgoingDuration += call.Duration
	caller.UniqueCallees[call.Callee] = struct{}{}

	callee.IncomingCount++
	callee.IncomingDuration += call.Duration
	callee.UniqueCallers[call.Caller] = struct{}{}

	key := EdgeKey{Caller: call.Caller, Callee: call.Callee}
	edge, ok := g.edges[key]
	if !ok {
		edge = &EdgeStats{}
		g.edges[key] = edge
	}
	edge.Count++
	edge.Duration += call.Duration
}

func (g *PopularityGraph) node(number string) *NodeStats {
	n, ok := g.nodes[number]
	if !ok {
		n = newNodeStats()
		g.nodes[number] = n
	}
	return n
}

// Stats returns a copy of a node's counters.
func (g *PopularityGraph) Stats(number string) (NodeStats, bool) {
	n, ok := g.nodes[number]
	if !ok {
		return NodeStats{}, false
	}
	return *n.clone(), true
}

// Edge returns a copy of the (caller, callee) edge aggregate.
func (g *PopularityGraph) Edge(caller, callee string) (EdgeStats, bool) {
	e, ok := g.edges[EdgeKey{Caller: caller, Callee: callee}]
	if !ok {
		return EdgeStats{}, false
	}
	return *e, true
}

// NodeCount returns the number of nodes.
func (g *PopularityGraph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *PopularityGraph) EdgeCount() int {
	return len(g.edges)
}

// Score derives the popularity score of a number. Received traffic weighs
// more than placed traffic: many long incoming calls imply demand.
// Unknown numbers score 0.
func (g *PopularityGraph) Score(number string) float64 {
	n, ok := g.nodes[number]
	if !ok {
		return 0.0
	}
	return float64(n.IncomingCount)*2.0 +
		float64(n.IncomingDuration)/60.0 +
		float64(n.OutgoingCount)*0.5
}

// TopIncoming returns up to n numbers ordered by incoming call count
// descending. Equal counts break ties by ascending number so the ranking
// is deterministic.
func (g *PopularityGraph) TopIncoming(n int) []RankedNumber {
	return g.top(n, func(s *NodeStats) int { return s.IncomingCount })
}

// TopOutgoing returns up to n numbers ordered by outgoing call count
// descending, with the same tie-break as TopIncoming.
func (g *PopularityGraph) TopOutgoing(n int) []RankedNumber {
	return g.top(n, func(s *NodeStats) int { return s.OutgoingCount })
}

func (g *PopularityGraph) top(n int, count func(*NodeStats) int) []RankedNumber {
	ranked := make([]RankedNumber, 0, len(g.nodes))
	for number, stats := range g.nodes {
		ranked = append(ranked, RankedNumber{Number: number, Stats: *stats.clone()})
	}
	sort.Slice(ranked, func(i, j int) bool {
		ci, cj := count(&ranked[i].Stats), count(&ranked[j].Stats)
		if ci != cj {
			return ci > cj
		}
		return ranked[i].Number < ranked[j].Number
	})
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Rebuild discards all state and replays the given calls, skipping any
// call that touches a number in exclude. The result is identical to
// folding the calls into a fresh graph.
func (g *PopularityGraph) Rebuild(calls []*Call, exclude map[string]struct{}) {
	g.nodes = make(map[string]*NodeStats)
	g.edges = make(map[EdgeKey]*EdgeStats)
	for _, c := range calls {
		if exclude != nil {
			if _, ok := exclude[c.Caller]; ok {
				continue
			}
			if _, ok := exclude[c.Callee]; ok {
				continue
			}
		}
		g.UpdateOnCall(c)
	}
}
