package sniff

import (
	"fmt"
	"io"
)

// sniffLen is the number of bytes inspected at most. Trailing bytes never
// influence the result, so a caller streaming from disk or network only
// needs to supply this much.
const sniffLen = 512

// DefaultType is returned when no signature recognizes the content.
const DefaultType = "application/octet-stream"

// Detect returns the MIME type of data, examining at most its first 512
// bytes. It always returns a non-empty string and never modifies data.
// A nil or empty buffer yields DefaultType.
func Detect(data []byte) string {
	header := data
	if len(header) > sniffLen {
		header = header[:sniffLen]
	}

	for _, sig := range signatures {
		if ct := sig.match(header); ct != "" {
			return ct
		}
	}

	// Unreachable: the table ends with an unconditional entry.
	return DefaultType
}

// DetectReader reads at most 512 bytes from r and returns the MIME type of
// the content. A short or empty stream is fine; an error is returned only
// when the read itself fails.
func DetectReader(r io.Reader) (string, error) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("sniff: failed to read header: %w", err)
	}
	return Detect(buf[:n]), nil
}

// isBinaryByte reports whether b is a control byte that rules content out
// of being plain text: 0x00-0x08, 0x0B, 0x0E-0x1A, 0x1C-0x1F. Note that
// TAB, LF, FF, CR and ESC are deliberately excluded.
func isBinaryByte(b byte) bool {
	return b <= 0x08 ||
		b == 0x0B ||
		(b >= 0x0E && b <= 0x1A) ||
		(b >= 0x1C && b <= 0x1F)
}

// isWhitespaceByte reports whether b is ASCII whitespace as defined by the
// sniffing algorithm: TAB, LF, FF, CR or SPACE.
func isWhitespaceByte(b byte) bool {
	switch b {
	case '\t', '\n', '\x0c', '\r', ' ':
		return true
	}
	return false
}

// skipWhitespace returns data with leading whitespace bytes removed.
func skipWhitespace(data []byte) []byte {
	for len(data) > 0 && isWhitespaceByte(data[0]) {
		data = data[1:]
	}
	return data
}
