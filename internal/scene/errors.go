package scene

import "errors"

var (
	// ErrInvalidParams indicates composition parameters outside their valid range.
	ErrInvalidParams = errors.New("scene: invalid parameters")

	// ErrUnknownShape indicates a shape name that is neither circle nor square.
	ErrUnknownShape = errors.New("scene: unknown shape")
)
