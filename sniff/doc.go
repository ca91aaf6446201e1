// Package sniff determines the MIME type of a byte buffer by inspecting
// its content, following the signature-matching approach of the WHATWG
// MIME Sniffing specification. Only the first 512 bytes of the input are
// ever examined, so detection cost is constant regardless of input size.
//
// Sniff is part of [SniffKit] but can be used as a standalone package with
// zero external dependencies.
//
// [SniffKit]: https://github.com/gobeaver/sniffkit
//
// # Quick Start
//
//	mimeType := sniff.Detect(data)
//	// "image/webp", "text/html", "application/zip", ...
//
// Or from a stream, reading at most 512 bytes:
//
//	mimeType, err := sniff.DetectReader(file)
//
// # How It Works
//
// Detection walks a fixed, ordered table of signatures and returns the
// result of the first one that matches. Earlier entries are more specific
// and take precedence: HTML tag detection runs before the generic
// "printable text" check, which in turn runs before the terminal
// application/octet-stream fallback. Every input produces a result; Detect
// never fails and never returns an empty string.
//
// Matching is anchored at the start of the buffer. This is content
// sniffing, not pattern search: a magic number occurring mid-buffer is
// never found.
//
// # Caveats
//
// Signatures without wildcard positions compare the entire truncated
// header against the pattern, so they only fire on inputs that consist of
// exactly the magic bytes. Two result strings contain historical
// misspellings of "application". Both behaviors are kept for
// compatibility with existing consumers of the table; see the package
// tests for the exact semantics.
//
// Detect is safe for concurrent use: the signature table is immutable and
// the input buffer is never written to.
package sniff
