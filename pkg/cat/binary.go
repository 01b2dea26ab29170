// File: pkg/cat/binary.go
package cat

import "bytes"

// sniffLen is how many leading bytes of a source are inspected.
const sniffLen = 512

// looksBinary checks if content is likely to be binary by looking for null
// bytes or a high ratio of non-printable characters.
func looksBinary(head []byte) bool {
	if len(head) == 0 {
		return false // Empty sources are text
	}
	if bytes.IndexByte(head, 0) >= 0 {
		return true
	}

	nonPrintable := 0
	for _, b := range head {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	// More than 30% non-printable bytes
	return float64(nonPrintable)/float64(len(head)) > 0.3
}

// isPrintable checks if a byte is printable ASCII, a line break or a tab.
// Bytes of multi-byte UTF-8 sequences count as printable.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b >= 0x80 || b == '\n' || b == '\r' || b == '\t'
}
