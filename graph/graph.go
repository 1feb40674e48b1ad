package graph

import (
	"math"
	"sort"
	"sync"
)

// Option configures a Graph before first use.
type Option func(*Graph)

// WithLoops permits self-loop edges (u == v). Off by default.
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected graph with float64 node and edge weights.
//
// Adjacency is stored both ways ([u][v] and [v][u]) so neighbor queries are
// O(deg). A single RWMutex guards all state; reading methods take the read
// lock, mutating methods the write lock.
type Graph struct {
	mu         sync.RWMutex
	allowLoops bool

	weights map[string]float64            // node weight per ID
	adj     map[string]map[string]float64 // adj[u][v] = edge weight
}

// New constructs an empty Graph with the given options.
func New(opts ...Option) *Graph {
	g := &Graph{
		weights: make(map[string]float64),
		adj:     make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddNode inserts a node with weight 0. Idempotent: re-adding an existing
// node keeps its weight and edges. Returns ErrEmptyNodeID on "".
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(id)

	return nil
}

// ensureNode creates bookkeeping for id if absent. Caller holds the write lock.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.adj[id] = make(map[string]float64)
	g.weights[id] = 0
}

// AddEdge inserts the undirected edge u—v with weight w, creating missing
// endpoints. A duplicate edge overwrites the stored weight (last write wins).
//
// Returns ErrEmptyNodeID, ErrSelfLoopNotAllowed (u == v without WithLoops),
// or ErrBadEdgeWeight (NaN/±Inf).
func (g *Graph) AddEdge(u, v string, w float64) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if u == v && !g.allowLoops {
		return ErrSelfLoopNotAllowed
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrBadEdgeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(u)
	g.ensureNode(v)
	g.adj[u][v] = w
	g.adj[v][u] = w // undirected mirror (no-op for loops)

	return nil
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]

	return ok
}

// Order returns the number of nodes.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Nodes returns all node IDs sorted ascending, for deterministic iteration.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns the IDs adjacent to id, sorted ascending.
// Returns ErrNodeNotFound for an unknown node.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of distinct neighbors of id.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(nbrs), nil
}

// EdgeWeight returns the weight of the edge u—v.
// Returns ErrNodeNotFound for unknown endpoints, ErrEdgeNotFound when the
// nodes exist but are not adjacent.
func (g *Graph) EdgeWeight(u, v string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[u]
	if !ok {
		return 0, ErrNodeNotFound
	}
	if _, ok = g.adj[v]; !ok {
		return 0, ErrNodeNotFound
	}
	w, ok := nbrs[v]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[u]
	if !ok {
		return false
	}
	_, ok = nbrs[v]

	return ok
}

// NodeWeight returns the weight stored for id.
func (g *Graph) NodeWeight(id string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.weights[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return w, nil
}

// SetNodeWeight stores weight w for id.
func (g *Graph) SetNodeWeight(id string, w float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.weights[id]; !ok {
		return ErrNodeNotFound
	}
	g.weights[id] = w

	return nil
}
