// File: pkg/cat/state.go
package cat

import (
	"bytes"
	"strconv"

	"gocat/pkg/config"
)

// numberWidth is the minimum width of the right-aligned line number field.
const numberWidth = 5

// State is the per-source transformation state. A fresh State is used for
// every file and for every standard input session.
type State struct {
	opts       config.Options
	line       int    // Next number to print.
	suppressed bool   // Previous line was blank and has already been emitted.
	out        []byte // Output buffer reused between lines.
}

// NewState returns the initial state for one source.
func NewState(opts config.Options) *State {
	return &State{
		opts: opts,
		line: 1,
	}
}

// Line returns the number the next numbered line will receive.
func (s *State) Line() int {
	return s.line
}

// Transform applies the configured rules to one input line, which may or
// may not end in '\n'. The returned slice is only valid until the next call.
// An empty result means the line is dropped.
func (s *State) Transform(line []byte) []byte {
	blank := isBlank(line)

	// Squeezing only runs when no numbering mode claims the line.
	if s.opts.SqueezeBlank() && s.opts.Numbering() == config.NumberNone {
		if blank {
			if s.suppressed {
				return nil
			}
			s.suppressed = true
		} else {
			s.suppressed = false
		}
	}

	body, eol := splitEOL(line)
	out := s.out[:0]

	switch s.opts.Numbering() {
	case config.NumberAll:
		out = s.appendNumber(out)
	case config.NumberNonBlank:
		if !blank {
			out = s.appendNumber(out)
		}
	}

	if s.opts.ShowTabs() && len(body) > 0 && body[0] == '\t' {
		out = append(out, '^', 'I')
		body = body[1:]
	}
	out = append(out, body...)
	if s.opts.ShowEnds() {
		out = append(out, '$')
	}
	out = append(out, eol...)

	s.out = out
	return out
}

// appendNumber writes the number field and advances the counter.
func (s *State) appendNumber(dst []byte) []byte {
	var digits [20]byte
	n := strconv.AppendInt(digits[:0], int64(s.line), 10)
	for i := len(n); i < numberWidth; i++ {
		dst = append(dst, ' ')
	}
	dst = append(dst, n...)
	dst = append(dst, ' ', ' ')
	s.line++
	return dst
}

// isBlank reports whether line has no content besides whitespace.
func isBlank(line []byte) bool {
	return len(bytes.TrimSpace(line)) == 0
}

// splitEOL separates the trailing newline, if any, from the line content.
func splitEOL(line []byte) (body, eol []byte) {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		return line[:n-1], line[n-1:]
	}
	return line, nil
}
