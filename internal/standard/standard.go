// Package standard enumerates the C++ language standards accepted by the CLI.
package standard

import "slices"

// Default is the sentinel meaning "use the standard from the stored config".
// It is valid as a command-line value only and is never persisted.
const Default = "cfg"

var concrete = []string{"c++98", "c++03", "c++11", "c++14", "c++17", "c++20", "c++23"}

// Real returns the concrete standards in ascending order.
func Real() []string {
	return slices.Clone(concrete)
}

// All returns the concrete standards followed by the Default sentinel.
func All() []string {
	return append(Real(), Default)
}

// IsValid reports whether s is a concrete standard or the sentinel.
func IsValid(s string) bool {
	return s == Default || IsReal(s)
}

// IsReal reports whether s is a concrete standard.
func IsReal(s string) bool {
	return slices.Contains(concrete, s)
}
