// File: pkg/cat/errors.go
package cat

import "fmt"

// Op identifies the step of source processing that failed.
type Op string

const (
	OpOpen  Op = "open"
	OpRead  Op = "read"
	OpWrite Op = "write"
	OpCopy  Op = "copy"
	OpClose Op = "close"
)

// SourceError reports a failure tied to one input source.
type SourceError struct {
	Op   Op     // Failing step.
	Path string // Source path as given; "-" for standard input.
	Line int    // 1-based line being processed, 0 when not line oriented.
	Err  error  // Underlying cause.
}

func (e *SourceError) Error() string {
	switch {
	case e.Op == OpOpen:
		return fmt.Sprintf("'%s' is not a file: %v", e.Path, e.Err)
	case e.Op == OpRead && e.Line > 0:
		return fmt.Sprintf("could not read line %d from %s: %v", e.Line, e.Path, e.Err)
	case e.Op == OpWrite && e.Line > 0:
		return fmt.Sprintf("could not write line %d of %s: %v", e.Line, e.Path, e.Err)
	default:
		return fmt.Sprintf("could not %s %s: %v", e.Op, e.Path, e.Err)
	}
}

func (e *SourceError) Unwrap() error { return e.Err }
