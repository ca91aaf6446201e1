package sniffkit

import "testing"

func TestGuessContentType(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		data     []byte
		expected string
	}{
		{
			name:     "known extension wins",
			path:     "photo.JPG",
			data:     []byte("not a jpeg at all"),
			expected: "image/jpeg",
		},
		{
			name:     "unknown extension sniffs content",
			path:     "page.tpl",
			data:     []byte("<!DOCTYPE html><html>"),
			expected: "text/html",
		},
		{
			name:     "unknown extension with masked signature",
			path:     "asset.blob",
			data:     []byte("RIFF\x00\x00\x00\x00WEBPVP8 data"),
			expected: "image/webp",
		},
		{
			name:     "no extension no data",
			path:     "README",
			data:     nil,
			expected: "application/octet-stream",
		},
		{
			name:     "markdown extension",
			path:     "notes.md",
			data:     nil,
			expected: "text/markdown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GuessContentType(tt.path, tt.data)
			if got != tt.expected {
				t.Errorf("GuessContentType(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestMIMEPredicates(t *testing.T) {
	tests := []struct {
		name      string
		predicate func(string) bool
		yes       []string
		no        []string
	}{
		{
			name:      "text",
			predicate: IsTextFile,
			yes:       []string{"text/plain", "text/html", "application/json"},
			no:        []string{"image/png", "application/zip"},
		},
		{
			name:      "image",
			predicate: IsImageFile,
			yes:       []string{"image/png", "image/webp"},
			no:        []string{"text/plain", "video/avi"},
		},
		{
			name:      "audio",
			predicate: IsAudioFile,
			yes:       []string{"audio/wave", "audio/basic"},
			no:        []string{"video/webm"},
		},
		{
			name:      "video",
			predicate: IsVideoFile,
			yes:       []string{"video/avi", "video/webm"},
			no:        []string{"audio/aiff"},
		},
		{
			name:      "font",
			predicate: IsFontFile,
			yes:       []string{"font/woff", "application/font-woff", "application/vnd.ms-fontobject"},
			no:        []string{"application/pdf"},
		},
		{
			name:      "compressed",
			predicate: IsCompressedFile,
			yes:       []string{"application/zip", "application/x-gzip"},
			no:        []string{"text/plain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, mimeType := range tt.yes {
				if !tt.predicate(mimeType) {
					t.Errorf("%s predicate rejected %q", tt.name, mimeType)
				}
			}
			for _, mimeType := range tt.no {
				if tt.predicate(mimeType) {
					t.Errorf("%s predicate accepted %q", tt.name, mimeType)
				}
			}
		})
	}
}

func TestGetMIMECategory(t *testing.T) {
	tests := []struct {
		mimeType string
		expected string
	}{
		{"image/gif", "image"},
		{"video/webm", "video"},
		{"audio/midi", "audio"},
		{"text/html", "text"},
		{"application/font-woff", "font"},
		{"application/zip", "archive"},
		{"application/x-gzip", "archive"},
		{"applicaiton/x-rar-compressed", "archive"}, // sic, matches the sniff table
		{"application/pdf", "document"},
		{"application/postscript", "document"},
		{"application/octet-stream", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			if got := GetMIMECategory(tt.mimeType); got != tt.expected {
				t.Errorf("GetMIMECategory(%q) = %q, want %q", tt.mimeType, got, tt.expected)
			}
		})
	}
}

func TestGetFileExtensionForMIME(t *testing.T) {
	tests := []struct {
		mimeType string
		expected string
	}{
		{"text/html", ".html"},
		{"text/html; charset=utf-8", ".html"},
		{"image/png", ".png"},
		{"application/zip", ".zip"},
		{"x-invented/nonsense", ".bin"},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			if got := GetFileExtensionForMIME(tt.mimeType); got != tt.expected {
				t.Errorf("GetFileExtensionForMIME(%q) = %q, want %q", tt.mimeType, got, tt.expected)
			}
		})
	}
}
