package render

import (
	"errors"
	"fmt"

	"github.com/zoobzio/relsql/internal/types"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrUnsupported   = errors.New("unsupported construct")
	ErrInvalidSource = errors.New("invalid source")
	ErrPagination    = errors.New("invalid pagination bound")
)

// UnsupportedError indicates a construct the dialect cannot express.
type UnsupportedError struct {
	Dialect   string
	Construct string
	Name      string
	Hint      string
}

func (e UnsupportedError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s '%s' is not supported: %s", e.Dialect, e.Construct, e.Name, e.Hint)
	}
	return fmt.Sprintf("%s: %s '%s' is not supported", e.Dialect, e.Construct, e.Name)
}

// Is reports whether target is ErrUnsupported.
func (e UnsupportedError) Is(target error) bool { return target == ErrUnsupported }

// NewUnsupportedError creates a new unsupported construct error.
func NewUnsupportedError(dialect, construct, name string, hint ...string) error {
	err := UnsupportedError{Dialect: dialect, Construct: construct, Name: name}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// SourceError indicates a FROM position holding something other than a
// table, select or join. It points at a malformed tree.
type SourceError struct {
	Kind types.NodeKind
}

func (e SourceError) Error() string {
	return fmt.Sprintf("invalid source: %s is not a table, select or join", e.Kind)
}

// Is reports whether target is ErrInvalidSource.
func (e SourceError) Is(target error) bool { return target == ErrInvalidSource }

// PaginationError indicates a skip or take bound that does not fold to a
// non-negative integer constant.
type PaginationError struct {
	Clause string
	Reason string
}

func (e PaginationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Clause, e.Reason)
}

// Is reports whether target is ErrPagination.
func (e PaginationError) Is(target error) bool { return target == ErrPagination }
