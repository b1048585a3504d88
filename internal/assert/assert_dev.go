//go:build !release

package assert

import "fmt"

// That panics with a formatted message if cond is false. Build with the
// release tag to compile it out entirely.
func That(cond bool, format string, args ...any) { //nolint:goprintffuncname // it's ok
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
