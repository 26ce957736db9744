package dgraph

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors, checked with errors.Is and wrapped with context via
// fmt.Errorf("%w: ..."), never stringified at the definition site — same
// policy lvlath/core uses throughout.
var (
	ErrEmptyNodeID  = errors.New("dgraph: empty node id")
	ErrNodeNotFound = errors.New("dgraph: node not found")
	ErrNodeExists   = errors.New("dgraph: node already exists")
	ErrEdgeNotFound = errors.New("dgraph: edge not found")
	ErrParallelEdge = errors.New("dgraph: parallel edge")
	ErrSelfLoop     = errors.New("dgraph: self loop")
	ErrHasCycle     = errors.New("dgraph: graph has a cycle")
)

// Node is a single graph node: an opaque identifier plus a caller-supplied
// payload. Identifiers are always strings, regardless of what domain value
// T carries — closure elements, concept pointers, or condensation members
// all flow through the same node catalog.
type Node[T any] struct {
	ID      string
	Content T
}

// Edge is a directed edge between two node IDs, with an optional payload of
// its own (unweighted edges use Content = nil, spelled any(nil)).
type Edge struct {
	ID      string
	From    string
	To      string
	Content any
}

// Option configures a DGraph at construction time, following lvlath's
// functional-option pattern (core.WithDirected, core.WithWeighted, ...).
type Option func(*config)

type config struct {
	allowSelfLoops bool
}

// WithSelfLoops permits edges whose From equals To. Disallowed by default:
// a closure system's precedence graph and a lattice's covering relation
// never have self-loops, so rejecting them catches construction bugs early.
func WithSelfLoops() Option {
	return func(c *config) { c.allowSelfLoops = true }
}

// DGraph is a directed graph over nodes of content type T. It makes no
// promise of acyclicity; see DAGraph for the acyclic-guaranteed variant.
//
// Concurrency: muNodes guards the node catalog; muEdges guards edges and
// both adjacency maps. Two separate locks (rather than one graph-wide lock)
// let concurrent node metadata reads proceed while an unrelated edge
// mutation is in flight — the same split lvlath/core uses for
// muVert/muEdgeAdj.
type DGraph[T any] struct {
	cfg config

	muNodes sync.RWMutex
	nodes   map[string]*Node[T]

	muEdges sync.RWMutex
	edges   map[string]*Edge
	out     map[string]map[string][]string // from -> to -> edgeIDs (one per distinct content)
	in      map[string]map[string][]string // to -> from -> edgeIDs (mirrors out)

	nextEdgeID uint64
}

// New returns an empty DGraph configured by opts.
func New[T any](opts ...Option) *DGraph[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &DGraph[T]{
		cfg:   cfg,
		nodes: make(map[string]*Node[T]),
		edges: make(map[string]*Edge),
		out:   make(map[string]map[string][]string),
		in:    make(map[string]map[string][]string),
	}
}

func (g *DGraph[T]) nextID() string {
	g.nextEdgeID++
	return fmt.Sprintf("e%d", g.nextEdgeID)
}
