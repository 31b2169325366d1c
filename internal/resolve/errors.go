package resolve

import "errors"

// Validation failures. Each is wrapped with the offending value or path.
var (
	ErrInvalidStandard      = errors.New("invalid standard")
	ErrMissingToolchainPath = errors.New("missing toolchain path")
	ErrToolchainNotFound    = errors.New("toolchain not found")
	ErrDestinationExists    = errors.New("destination already exists")
)
