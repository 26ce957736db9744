package order

import (
	"fmt"
	"strings"
)

// writeAny formats a single element into b using default fmt verbs. Kept in
// its own tiny file since it is the only place in this package that reaches
// for fmt, and callers scanning types.go for the set algebra shouldn't trip
// over it.
func writeAny[E any](b *strings.Builder, e E) {
	fmt.Fprintf(b, "%v", e)
}
