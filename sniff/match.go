package sniff

import "bytes"

// wildcard is the pattern byte that matches any content byte in a masked
// signature.
const wildcard = '_'

// signature matches a truncated header against one known pattern and
// reports the MIME type, or "" when the header does not match.
type signature interface {
	match(header []byte) string
}

// exactSig matches when the header equals the pattern byte for byte.
// This is whole-buffer equality, not a prefix check: a header carrying
// anything beyond the pattern does not match.
type exactSig struct {
	sig []byte
	ct  string
}

func (e *exactSig) match(header []byte) string {
	if bytes.Equal(header, e.sig) {
		return e.ct
	}
	return ""
}

// maskedSig matches when the header starts with the pattern, with
// wildcard positions accepting any byte. A header shorter than the
// pattern never matches; trailing header bytes are ignored.
type maskedSig struct {
	pat []byte
	ct  string
}

func (m *maskedSig) match(header []byte) string {
	if len(header) < len(m.pat) {
		return ""
	}
	for i, p := range m.pat {
		if p != wildcard && header[i] != p {
			return ""
		}
	}
	return m.ct
}

// htmlSig matches when the header, after leading whitespace, opens with
// one of the known tags in "<tag " or "<tag>" form, ASCII
// case-insensitively. Tags must be stored lower-case.
type htmlSig struct {
	tags []string
	ct   string
}

func (h *htmlSig) match(header []byte) string {
	header = skipWhitespace(header)
	for _, tag := range h.tags {
		// "<" + tag + (" " or ">")
		if len(header) < len(tag)+2 {
			continue
		}
		if matchTagFold(header[:len(tag)+2], tag) {
			return h.ct
		}
	}
	return ""
}

// matchTagFold compares data against "<tag " and "<tag>", lower-casing
// only the bytes under comparison. len(data) must be len(tag)+2.
func matchTagFold(data []byte, tag string) bool {
	if data[0] != '<' {
		return false
	}
	for i := 0; i < len(tag); i++ {
		if lowerASCII(data[i+1]) != tag[i] {
			return false
		}
	}
	end := data[len(data)-1]
	return end == ' ' || end == '>'
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// textSig matches when no byte of the header is a binary control byte.
// Every byte is checked: a single binary byte anywhere in the header
// disqualifies the content. An empty header matches.
type textSig struct {
	ct string
}

func (t *textSig) match(header []byte) string {
	for _, b := range header {
		if isBinaryByte(b) {
			return ""
		}
	}
	return t.ct
}

// mp4Sig is a placeholder for MP4 box-structure detection. Probing the
// ftyp box requires walking the container structure, which is not
// implemented; the signature never matches rather than guessing from a
// naive byte pattern.
type mp4Sig struct {
	ct string
}

func (m *mp4Sig) match(header []byte) string {
	return ""
}

// anySig matches unconditionally. Only used as the terminal table entry.
type anySig struct {
	ct string
}

func (a *anySig) match(header []byte) string {
	return a.ct
}
