package order

// StringLess is the natural byte-wise comparator for string elements —
// the overwhelmingly common case for attributes and observations read from
// the text formats in package serialize.
func StringLess(a, b string) bool { return a < b }

// IntLess is the natural comparator for int elements.
func IntLess(a, b int) bool { return a < b }
