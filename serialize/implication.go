package serialize

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/thegalactic-go/lconcept/implication"
	"github.com/thegalactic-go/lconcept/order"
)

// ImplicationReader reads the implicational system text format: one rule
// per non-blank line, "premise1 premise2 ... -> conclusion1 conclusion2 ...".
// The element vocabulary is the union of every token across every line;
// there is no separate header.
type ImplicationReader struct{}

// Read implements Reader[*implication.System[string]].
func (ImplicationReader) Read(r io.Reader) (*implication.System[string], error) {
	sys := implication.New[string](order.StringLess)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lhs, rhs, found := strings.Cut(line, "->")
		if !found {
			return nil, fmt.Errorf("%w: missing '->' in %q", ErrMalformedLine, line)
		}
		premise := order.NewOrderedSet(order.StringLess)
		for _, tok := range strings.Fields(lhs) {
			premise.Add(tok)
		}
		conclusion := order.NewOrderedSet(order.StringLess)
		for _, tok := range strings.Fields(rhs) {
			conclusion.Add(tok)
		}
		if err := sys.AddRule(premise, conclusion); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return sys, nil
}

// ImplicationWriter writes a *implication.System[string] in the format
// ImplicationReader parses.
type ImplicationWriter struct{}

// Write implements Writer[*implication.System[string]].
func (ImplicationWriter) Write(w io.Writer, sys *implication.System[string]) error {
	bw := bufio.NewWriter(w)

	for _, r := range sys.Rules() {
		premise := strings.Join(r.Premise.Slice(), " ")
		conclusion := strings.Join(r.Conclusion.Slice(), " ")
		if _, err := fmt.Fprintf(bw, "%s -> %s\n", premise, conclusion); err != nil {
			return err
		}
	}

	return bw.Flush()
}
