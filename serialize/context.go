package serialize

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/thegalactic-go/lconcept/fcontext"
	"github.com/thegalactic-go/lconcept/order"
)

// ContextReader reads the context text format:
//
//	Observations: o1 o2 o3 ...
//	Attributes:   a1 a2 a3 ...
//	o1 : a1 a3
//	o2 : a1 a2
//
// Line 1 must begin with the literal "Observations:", line 2 with the
// literal "Attributes:", both followed by whitespace-separated tokens.
// Every subsequent non-blank line is "<observation> : <attr> <attr> ...".
// Tokens that were not declared on line 1 or 2 are silently ignored
// rather than rejected.
type ContextReader struct{}

// Read implements Reader[*fcontext.Context[string]].
func (ContextReader) Read(r io.Reader) (*fcontext.Context[string], error) {
	sc := bufio.NewScanner(r)

	obsLine, ok := nextNonEmpty(sc)
	if !ok {
		return nil, fmt.Errorf("%w: expected Observations: line", ErrMissingHeader)
	}
	obsTokens, err := headerTokens(obsLine, "Observations:")
	if err != nil {
		return nil, err
	}

	attrLine, ok := nextNonEmpty(sc)
	if !ok {
		return nil, fmt.Errorf("%w: expected Attributes: line", ErrMissingHeader)
	}
	attrTokens, err := headerTokens(attrLine, "Attributes:")
	if err != nil {
		return nil, err
	}

	ctx := fcontext.New[string](order.StringLess)
	obsSet := make(map[string]bool, len(obsTokens))
	attrSet := make(map[string]bool, len(attrTokens))
	for _, o := range obsTokens {
		if err := ctx.AddObservation(o); err != nil {
			return nil, fmt.Errorf("%w: duplicate observation %q", ErrMalformedLine, o)
		}
		obsSet[o] = true
	}
	for _, a := range attrTokens {
		if err := ctx.AddAttribute(a); err != nil {
			return nil, fmt.Errorf("%w: duplicate attribute %q", ErrMalformedLine, a)
		}
		attrSet[a] = true
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		o, rest, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("%w: relation line missing ':': %q", ErrMalformedLine, line)
		}
		o = strings.TrimSpace(o)
		if !obsSet[o] {
			continue
		}
		for _, a := range strings.Fields(rest) {
			if !attrSet[a] {
				continue
			}
			if err := ctx.AddRelation(o, a); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return ctx, nil
}

func nextNonEmpty(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			return line, true
		}
	}

	return "", false
}

func headerTokens(line, prefix string) ([]string, error) {
	if !strings.HasPrefix(line, prefix) {
		return nil, fmt.Errorf("%w: expected %q, got %q", ErrMissingHeader, prefix, line)
	}

	return strings.Fields(strings.TrimPrefix(line, prefix)), nil
}

// ContextWriter writes a *fcontext.Context[string] in the format
// ContextReader parses.
type ContextWriter struct{}

// Write implements Writer[*fcontext.Context[string]].
func (ContextWriter) Write(w io.Writer, ctx *fcontext.Context[string]) error {
	bw := bufio.NewWriter(w)

	obs := ctx.Observations().Slice()
	attrs := ctx.Attributes().Slice()

	if _, err := fmt.Fprintf(bw, "Observations: %s\n", strings.Join(obs, " ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "Attributes: %s\n", strings.Join(attrs, " ")); err != nil {
		return err
	}

	for _, o := range obs {
		intent := ctx.Intent(o).Slice()
		if _, err := fmt.Fprintf(bw, "%s : %s\n", o, strings.Join(intent, " ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}
