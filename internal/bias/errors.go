package bias

import "errors"

// Configuration errors, all surfaced at construction time. Query and deposit
// paths perform no validation and rely on these checks having passed.
var (
	// ErrInvalidRange indicates degenerate grid bounds or a non-positive bin count.
	ErrInvalidRange = errors.New("bias: invalid grid range")

	// ErrInvalidConfig indicates an unusable biasing parameter.
	ErrInvalidConfig = errors.New("bias: invalid configuration")
)
