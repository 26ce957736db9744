package dgraph_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/thegalactic-go/lconcept/dgraph"
)

// MustGraph builds a *dgraph.DGraph[string] with the given nodes (content
// equal to their own ID) and edges, failing the test on any construction
// error. Mirrors core_test's MustGraph/MustAddEdge convention.
func MustGraph(t *testing.T, nodes []string, edges [][2]string) *dgraph.DGraph[string] {
	t.Helper()
	g := dgraph.New[string]()
	for _, n := range nodes {
		if err := g.AddNode(n, n); err != nil {
			t.Fatalf("AddNode(%q): %v", n, err)
		}
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e[0], e[1], nil); err != nil {
			t.Fatalf("AddEdge(%q, %q): %v", e[0], e[1], err)
		}
	}

	return g
}

func TestAddNodeDuplicate(t *testing.T) {
	g := dgraph.New[string]()
	if err := g.AddNode("a", "a"); err != nil {
		t.Fatalf("AddNode(a): %v", err)
	}
	if err := g.AddNode("a", "a"); !errors.Is(err, dgraph.ErrNodeExists) {
		t.Fatalf("AddNode(a) again: got %v, want ErrNodeExists", err)
	}
}

func TestAddEdgeRejectsSelfLoopAndParallel(t *testing.T) {
	g := MustGraph(t, []string{"a", "b"}, nil)

	if _, err := g.AddEdge("a", "a", nil); !errors.Is(err, dgraph.ErrSelfLoop) {
		t.Fatalf("AddEdge(a,a): got %v, want ErrSelfLoop", err)
	}
	if _, err := g.AddEdge("a", "b", nil); err != nil {
		t.Fatalf("AddEdge(a,b): %v", err)
	}
	if _, err := g.AddEdge("a", "b", nil); !errors.Is(err, dgraph.ErrParallelEdge) {
		t.Fatalf("AddEdge(a,b) again with the same content: got %v, want ErrParallelEdge", err)
	}
}

func TestAddEdgeAllowsDistinctContentOnSamePair(t *testing.T) {
	g := MustGraph(t, []string{"a", "b"}, nil)

	if _, err := g.AddEdge("a", "b", "first"); err != nil {
		t.Fatalf("AddEdge(a,b,first): %v", err)
	}
	if _, err := g.AddEdge("a", "b", "second"); err != nil {
		t.Fatalf("AddEdge(a,b,second): got %v, want nil since content differs", err)
	}
	if !g.ContainsEdge("a", "b") {
		t.Fatal("ContainsEdge(a,b) should report true")
	}
	if g.EdgeCount() != 2 {
		t.Fatalf("EdgeCount() = %d, want 2 distinct-content edges on the same pair", g.EdgeCount())
	}

	if _, err := g.AddEdge("a", "b", "first"); !errors.Is(err, dgraph.ErrParallelEdge) {
		t.Fatalf("AddEdge(a,b,first) again: got %v, want ErrParallelEdge", err)
	}

	if err := g.RemoveEdge("a", "b"); err != nil {
		t.Fatalf("RemoveEdge(a,b): %v", err)
	}
	if g.ContainsEdge("a", "b") {
		t.Fatal("RemoveEdge(a,b) should remove every edge on the pair")
	}
}

func TestRemoveNodeCascadesEdges(t *testing.T) {
	g := MustGraph(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})

	if err := g.RemoveNode("b"); err != nil {
		t.Fatalf("RemoveNode(b): %v", err)
	}
	if g.ContainsEdge("a", "b") || g.ContainsEdge("b", "c") {
		t.Fatal("removing b should remove both incident edges")
	}
	if g.EdgeCount() != 0 {
		t.Fatalf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}

func TestSourcesAndSinks(t *testing.T) {
	// a -> b -> c, a -> c
	g := MustGraph(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}})

	srcs := g.Sources()
	if len(srcs) != 1 || srcs[0] != "a" {
		t.Fatalf("Sources() = %v, want [a]", srcs)
	}
	sinks := g.Sinks()
	if len(sinks) != 1 || sinks[0] != "c" {
		t.Fatalf("Sinks() = %v, want [c]", sinks)
	}
}

func TestTransitiveClosure(t *testing.T) {
	g := MustGraph(t, []string{"a", "b", "c", "d"}, [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "d"},
	})

	tc := g.TransitiveClosure()
	want := [][2]string{{"a", "b"}, {"a", "c"}, {"a", "d"}, {"b", "c"}, {"b", "d"}, {"c", "d"}}
	for _, e := range want {
		if !tc.ContainsEdge(e[0], e[1]) {
			t.Errorf("TransitiveClosure missing edge %q -> %q", e[0], e[1])
		}
	}
	if tc.EdgeCount() != len(want) {
		t.Fatalf("TransitiveClosure has %d edges, want %d", tc.EdgeCount(), len(want))
	}
}

func TestTopologicalSortDetectsCycle(t *testing.T) {
	g := MustGraph(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})

	if _, err := g.TopologicalSort(); !errors.Is(err, dgraph.ErrHasCycle) {
		t.Fatalf("TopologicalSort on cyclic graph: got %v, want ErrHasCycle", err)
	}
}

func TestTopologicalSortOrdersEdgesForward(t *testing.T) {
	g := MustGraph(t, []string{"a", "b", "c", "d"}, [][2]string{
		{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"},
	})

	order, err := g.TopologicalSort()
	if err != nil {
		t.Fatalf("TopologicalSort: %v", err)
	}
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range g.Edges() {
		if pos[e.From] >= pos[e.To] {
			t.Fatalf("topological order violates edge %q -> %q: positions %d, %d", e.From, e.To, pos[e.From], pos[e.To])
		}
	}
}

func TestStronglyConnectedComponents(t *testing.T) {
	// Two cycles {a,b,c} and {d,e}, bridged a->d (wait: must originate from
	// within a cycle to keep the bridge acyclic at the condensation level).
	g := MustGraph(t,
		[]string{"a", "b", "c", "d", "e"},
		[][2]string{
			{"a", "b"}, {"b", "c"}, {"c", "a"}, // cycle 1
			{"d", "e"}, {"e", "d"}, // cycle 2
			{"a", "d"}, // bridge
		})

	dag := g.StronglyConnectedComponents()

	if dag.NodeCount() != 2 {
		t.Fatalf("expected 2 condensed components, got %d", dag.NodeCount())
	}
	var cycle1ID, cycle2ID string
	for _, n := range dag.Nodes() {
		if n.Content.Contains("a") {
			cycle1ID = n.ID
		}
		if n.Content.Contains("d") {
			cycle2ID = n.ID
		}
	}
	if cycle1ID == "" || cycle2ID == "" {
		t.Fatalf("could not locate condensed components in %v", dag.Nodes())
	}
	if !dag.ContainsEdge(cycle1ID, cycle2ID) {
		t.Fatal("expected a bridge edge between the two condensed components")
	}
	if _, err := dag.TopologicalSort(); err != nil {
		t.Fatalf("condensation must be acyclic: %v", err)
	}
}

func TestTransitiveReductionRecoversHasseDiagram(t *testing.T) {
	// a -> b -> c plus the redundant shortcut a -> c.
	g := MustGraph(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}})
	dag, err := dgraph.AsDAG(g)
	if err != nil {
		t.Fatalf("AsDAG: %v", err)
	}

	reduced := dag.TransitiveReduction()
	if reduced.ContainsEdge("a", "c") {
		t.Fatal("transitive reduction should drop the redundant a -> c edge")
	}
	if !reduced.ContainsEdge("a", "b") || !reduced.ContainsEdge("b", "c") {
		t.Fatal("transitive reduction should keep the direct edges a -> b and b -> c")
	}
}

func TestFilterAndIdeal(t *testing.T) {
	g := MustGraph(t, []string{"a", "b", "c", "d"}, [][2]string{
		{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"},
	})
	dag, err := dgraph.AsDAG(g)
	if err != nil {
		t.Fatalf("AsDAG: %v", err)
	}

	filterA := dag.Filter("a")
	if len(filterA) != 4 {
		t.Fatalf("Filter(a) = %v, want all 4 nodes reachable from a", filterA)
	}

	idealD := dag.Ideal("d")
	if len(idealD) != 4 {
		t.Fatalf("Ideal(d) = %v, want all 4 nodes from which d is reachable", idealD)
	}
}

func TestTransitiveReductionDivisorLatticeS2(t *testing.T) {
	nodes := []string{"1", "2", "3", "4", "6", "12"}
	divides := func(a, b int) bool { return b%a == 0 }

	var edges [][2]string
	for _, a := range nodes {
		for _, b := range nodes {
			if a == b {
				continue
			}
			var ai, bi int
			fmt.Sscanf(a, "%d", &ai)
			fmt.Sscanf(b, "%d", &bi)
			if divides(ai, bi) {
				edges = append(edges, [2]string{a, b})
			}
		}
	}

	g := MustGraph(t, nodes, edges)
	dag, err := dgraph.AsDAG(g)
	if err != nil {
		t.Fatalf("AsDAG: %v", err)
	}

	reduced := dag.TransitiveReduction()
	want := [][2]string{{"1", "2"}, {"1", "3"}, {"2", "4"}, {"2", "6"}, {"3", "6"}, {"4", "12"}, {"6", "12"}}
	if reduced.EdgeCount() != len(want) {
		t.Fatalf("TransitiveReduction has %d edges, want %d: got %v", reduced.EdgeCount(), len(want), reduced.Edges())
	}
	for _, e := range want {
		if !reduced.ContainsEdge(e[0], e[1]) {
			t.Errorf("expected reduced edge %q -> %q", e[0], e[1])
		}
	}
}

func TestSubgraph(t *testing.T) {
	g := MustGraph(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}})

	sub := g.Subgraph([]string{"a", "b"})
	if sub.NodeCount() != 2 {
		t.Fatalf("Subgraph NodeCount = %d, want 2", sub.NodeCount())
	}
	if !sub.ContainsEdge("a", "b") {
		t.Fatal("Subgraph should keep edge a -> b")
	}
	if sub.ContainsEdge("a", "c") || sub.ContainsEdge("b", "c") {
		t.Fatal("Subgraph should drop edges touching excluded node c")
	}
}
