package sniffkit

import (
	"io"

	"github.com/gobeaver/sniffkit/sniff"
)

// Result describes one inspected piece of content.
type Result struct {
	// MIME is the detected content type.
	MIME string

	// Category is a coarse grouping of the MIME type (image, text, ...).
	Category string

	// Allowed reports whether the type passed the inspector's filter.
	// Always true when no filter is configured.
	Allowed bool
}

// Inspector combines content detection with optional result caching and
// type filtering. The zero configuration (NewInspector with no options)
// is a plain pass-through to sniff.Detect.
//
// An Inspector is safe for concurrent use.
type Inspector struct {
	detector *CachingDetector
	filter   *Filter
}

// InspectorOption is a functional option for configuring an Inspector.
type InspectorOption func(*Inspector)

// WithFilter sets the type filter applied to detection results.
func WithFilter(filter *Filter) InspectorOption {
	return func(i *Inspector) {
		i.filter = filter
	}
}

// WithCachingDetector routes detection through the given caching detector.
func WithCachingDetector(detector *CachingDetector) InspectorOption {
	return func(i *Inspector) {
		i.detector = detector
	}
}

// NewInspector creates an Inspector.
func NewInspector(opts ...InspectorOption) *Inspector {
	inspector := &Inspector{}
	for _, opt := range opts {
		opt(inspector)
	}
	return inspector
}

// InspectBytes detects the type of data and applies the filter.
// The returned error is non-nil only when a filter is configured and the
// type is not allowed; the Result is populated either way.
func (i *Inspector) InspectBytes(data []byte) (*Result, error) {
	var mimeType string
	if i.detector != nil {
		mimeType = i.detector.Detect(data)
	} else {
		mimeType = sniff.Detect(data)
	}

	result := &Result{
		MIME:     mimeType,
		Category: GetMIMECategory(mimeType),
		Allowed:  true,
	}

	if i.filter != nil {
		if err := i.filter.Check(mimeType); err != nil {
			result.Allowed = false
			return result, err
		}
	}
	return result, nil
}

// Inspect reads at most 512 bytes from r and inspects them.
func (i *Inspector) Inspect(r io.Reader) (*Result, error) {
	header, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	return i.InspectBytes(header)
}

// readHeader pulls one detection window from r, tolerating short streams.
func readHeader(r io.Reader) ([]byte, error) {
	buf := make([]byte, 512)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, WrapSniffError(ErrorTypeRead, "failed to read content header", err)
	}
	return buf[:n], nil
}
