// File: pkg/cat/engine.go
package cat

import (
	"bufio"
	"errors"
	"io"

	"go.uber.org/zap"
)

// Stats summarizes one processed source.
type Stats struct {
	Lines int   // Lines read from the source.
	Bytes int64 // Bytes written for the source.
}

// transform feeds r through st line by line, writing every transformed
// line to w before the next one is read. With peek set the first sniffLen
// bytes are inspected up front; otherwise only the first line is, so that
// slow pipes and terminals are not held back.
func transform(r io.Reader, w io.Writer, name string, st *State, peek bool, logger *zap.Logger) (Stats, error) {
	var stats Stats
	br := bufio.NewReader(r)

	if peek {
		// Short sources end in io.EOF; read errors resurface in ReadBytes.
		head, _ := br.Peek(sniffLen)
		warnIfBinary(head, name, logger)
	}

	for {
		line, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return stats, &SourceError{Op: OpRead, Path: name, Line: stats.Lines + 1, Err: err}
		}

		if len(line) > 0 {
			stats.Lines++
			if stats.Lines == 1 && !peek {
				head := line
				if len(head) > sniffLen {
					head = head[:sniffLen]
				}
				warnIfBinary(head, name, logger)
			}

			if out := st.Transform(line); len(out) > 0 {
				n, werr := w.Write(out)
				stats.Bytes += int64(n)
				if werr != nil {
					return stats, &SourceError{Op: OpWrite, Path: name, Line: stats.Lines, Err: werr}
				}
			}
		}

		if err != nil {
			return stats, nil // io.EOF
		}
	}
}

func warnIfBinary(head []byte, name string, logger *zap.Logger) {
	if looksBinary(head) {
		logger.Warn("Source looks binary, line rules may garble it", zap.String("source", name))
	}
}
