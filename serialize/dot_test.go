package serialize_test

import (
	"strings"
	"testing"

	"github.com/thegalactic-go/lconcept/dgraph"
	"github.com/thegalactic-go/lconcept/serialize"
)

func TestWriteDOTGrammar(t *testing.T) {
	g := dgraph.New[string]()
	if err := g.AddNode("a", "a"); err != nil {
		t.Fatalf("AddNode(a): %v", err)
	}
	if err := g.AddNode("b", `b"2"`); err != nil {
		t.Fatalf("AddNode(b): %v", err)
	}
	if _, err := g.AddEdge("a", "b", "weight=3"); err != nil {
		t.Fatalf("AddEdge(a,b): %v", err)
	}

	var buf strings.Builder
	if err := serialize.WriteDOT(&buf, g); err != nil {
		t.Fatalf("WriteDOT: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "digraph G {\nGraph [rankdir=BT]\n") {
		t.Fatalf("unexpected DOT header: %q", out)
	}
	if !strings.Contains(out, `a [label="a"]`) {
		t.Fatalf("missing node a label: %q", out)
	}
	if !strings.Contains(out, `b [label="b\"2\""]`) {
		t.Fatalf("quotes in node b's label should be escaped: %q", out)
	}
	if !strings.Contains(out, `a->b [label="weight=3"]`) {
		t.Fatalf("missing edge label: %q", out)
	}
	if !strings.HasSuffix(strings.TrimRight(out, "\n"), "}") {
		t.Fatalf("DOT output should end with a closing brace: %q", out)
	}
}

func TestWriteDOTOmitsLabelForEdgeWithoutContent(t *testing.T) {
	g := dgraph.New[string]()
	_ = g.AddNode("a", "a")
	_ = g.AddNode("b", "b")
	if _, err := g.AddEdge("a", "b", nil); err != nil {
		t.Fatalf("AddEdge(a,b): %v", err)
	}

	var buf strings.Builder
	if err := serialize.WriteDOT(&buf, g); err != nil {
		t.Fatalf("WriteDOT: %v", err)
	}
	if !strings.Contains(buf.String(), "a->b\n") {
		t.Fatalf("edge without content should have no [label=...]: %q", buf.String())
	}
}
