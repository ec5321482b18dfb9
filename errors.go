// errors.go
package pipkit

import (
	"fmt"

	"github.com/snakeyard/pipkit/pkg/platform"
	"github.com/snakeyard/pipkit/pkg/pyversion"
	"github.com/snakeyard/pipkit/pkg/tags"
)

var (
	// ErrUnsupportedImplementation indicates tags cannot be generated for
	// the Python implementation
	ErrUnsupportedImplementation = tags.ErrUnsupportedImplementation

	// ErrUnsupportedPlatform indicates tags cannot be generated for the
	// platform
	ErrUnsupportedPlatform = tags.ErrUnsupportedPlatform

	// ErrUnknownTriple indicates the target triple is not recognized
	ErrUnknownTriple = platform.ErrUnknownTriple

	// ErrInvalidVersion indicates the Python version string is invalid
	ErrInvalidVersion = pyversion.ErrInvalidVersion
)

// Error wraps an error with additional context
type Error struct {
	Op     string // Operation that failed
	Target string // Target description if applicable
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
