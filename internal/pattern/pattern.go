// Package pattern provides the named cell-activation patterns used to seed
// the two state buffers. A pattern decides, per linear cell index, whether
// the cell starts active. The shader only distinguishes zero from nonzero,
// so fills write exactly 0 or 1.
package pattern

// Func reports whether the cell at linear index i starts active.
type Func func(i int) bool

var patterns = map[string]Func{}

// Register adds a pattern under the provided name.
func Register(name string, f Func) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Lookup returns the named pattern, or false when it is not registered.
func Lookup(name string) (Func, bool) {
	f, ok := patterns[name]
	return f, ok
}

// Names returns the registered pattern names in unspecified order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	return names
}

// Fill writes 1 for every active index and 0 otherwise.
func Fill(dst []uint32, f Func) {
	for i := range dst {
		if f(i) {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}

func init() {
	Register("thirds", func(i int) bool { return i%3 == 0 })
	Register("stripes", func(i int) bool { return i%2 == 1 })
	// solid keeps every cell active. It matches the legacy buffer-B
	// seeding, whose parity check degenerated to a constant.
	Register("solid", func(i int) bool { return true })
}
