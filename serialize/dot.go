package serialize

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/thegalactic-go/lconcept/dgraph"
)

// WriteDOT writes g in Graphviz DOT format:
//
//	digraph G {
//	Graph [rankdir=BT]
//	<id> [label="..."]
//	<src>-><tgt> [label="..."]
//	}
//
// Node labels are fmt.Sprintf("%v", content); edge labels are emitted only
// when the edge carries non-nil Content. Quotes inside a label are escaped
// as \". rankdir=BT is bottom-to-top, matching how concept lattices are
// conventionally drawn with the bottom concept at the bottom of the page.
func WriteDOT[T any](w io.Writer, g *dgraph.DGraph[T]) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "digraph G {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw, "Graph [rankdir=BT]"); err != nil {
		return err
	}

	for _, n := range g.Nodes() {
		label := escapeDotLabel(fmt.Sprintf("%v", n.Content))
		if _, err := fmt.Fprintf(bw, "%s [label=\"%s\"]\n", n.ID, label); err != nil {
			return err
		}
	}

	for _, e := range g.Edges() {
		if e.Content != nil {
			label := escapeDotLabel(fmt.Sprintf("%v", e.Content))
			if _, err := fmt.Fprintf(bw, "%s->%s [label=\"%s\"]\n", e.From, e.To, label); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s->%s\n", e.From, e.To); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(bw, "}"); err != nil {
		return err
	}

	return bw.Flush()
}

func escapeDotLabel(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// DotWriter adapts WriteDOT to the Writer[*dgraph.DGraph[T]] interface, so
// it can be registered in a Registry alongside other writers.
type DotWriter[T any] struct{}

// Write implements Writer[*dgraph.DGraph[T]].
func (DotWriter[T]) Write(w io.Writer, g *dgraph.DGraph[T]) error {
	return WriteDOT(w, g)
}
