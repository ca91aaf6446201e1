// Package sniffkit provides content-based MIME type detection for Go with
// supporting tooling for the places detection gets used: extension
// fallbacks, type filtering, and result caching.
//
// The detection core lives in the [sniff] subpackage and has zero external
// dependencies. This package layers the operational conveniences on top.
//
// # Detecting Types
//
// For raw bytes or streams, use the core directly:
//
//	mimeType := sniff.Detect(data)
//	mimeType, err := sniff.DetectReader(file)
//
// When a filename is available, GuessContentType prefers the extension and
// falls back to sniffing:
//
//	mimeType := sniffkit.GuessContentType("report.pdf", data)
//
// # Filtering
//
// Filters accept glob patterns over MIME types, in the same spirit as
// upload allow-lists:
//
//	filter, err := sniffkit.NewFilter(
//	    []string{"image/*", "application/pdf"}, // allowed
//	    []string{"image/svg+xml"},              // blocked
//	)
//	ok := filter.Allowed("image/png") // true
//
// # Inspection Pipeline
//
// An Inspector ties detection, caching and filtering together:
//
//	inspector := sniffkit.NewInspector(
//	    sniffkit.WithFilter(filter),
//	    sniffkit.WithCachingDetector(
//	        sniffkit.NewCachingDetector(sniffkit.NewMemoryCache()),
//	    ),
//	)
//
//	result, err := inspector.Inspect(upload)
//	// result.MIME, result.Category, result.Allowed
//
// Inspectors can also be assembled from environment configuration via
// NewInspectorFromConfig; see Config for the recognized variables.
package sniffkit
