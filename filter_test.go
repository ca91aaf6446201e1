package sniffkit

import "testing"

func TestNewFilter(t *testing.T) {
	t.Run("valid patterns", func(t *testing.T) {
		filter, err := NewFilter([]string{"image/*", "application/pdf"}, []string{"image/svg+xml"})
		if err != nil {
			t.Fatalf("NewFilter() error: %v", err)
		}
		if got := filter.AllowedPatterns(); len(got) != 2 {
			t.Errorf("AllowedPatterns() = %v", got)
		}
		if got := filter.BlockedPatterns(); len(got) != 1 {
			t.Errorf("BlockedPatterns() = %v", got)
		}
	})

	t.Run("blank patterns are dropped", func(t *testing.T) {
		filter, err := NewFilter([]string{" ", "", "text/*"}, nil)
		if err != nil {
			t.Fatalf("NewFilter() error: %v", err)
		}
		if got := filter.AllowedPatterns(); len(got) != 1 || got[0] != "text/*" {
			t.Errorf("AllowedPatterns() = %v", got)
		}
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := NewFilter([]string{"image/["}, nil)
		if err == nil {
			t.Fatal("NewFilter() accepted an invalid pattern")
		}
		if !IsErrorOfType(err, ErrorTypePattern) {
			t.Errorf("error type = %v, want pattern error", GetErrorType(err))
		}
	})
}

func TestFilterAllowed(t *testing.T) {
	tests := []struct {
		name     string
		allowed  []string
		blocked  []string
		mimeType string
		expected bool
	}{
		{
			name:     "empty filter allows everything",
			mimeType: "application/octet-stream",
			expected: true,
		},
		{
			name:     "allow glob matches",
			allowed:  []string{"image/*"},
			mimeType: "image/png",
			expected: true,
		},
		{
			name:     "allow glob rejects others",
			allowed:  []string{"image/*"},
			mimeType: "text/plain",
			expected: false,
		},
		{
			name:     "glob does not cross the separator",
			allowed:  []string{"*"},
			mimeType: "image/png",
			expected: false,
		},
		{
			name:     "block wins over allow",
			allowed:  []string{"image/*"},
			blocked:  []string{"image/gif"},
			mimeType: "image/gif",
			expected: false,
		},
		{
			name:     "block without allow list",
			blocked:  []string{"application/x-msdownload"},
			mimeType: "application/x-msdownload",
			expected: false,
		},
		{
			name:     "case-insensitive match",
			allowed:  []string{"image/*"},
			mimeType: "IMAGE/PNG",
			expected: true,
		},
		{
			name:     "exact pattern",
			allowed:  []string{"applicaiton/pdf"}, // sic, as produced by the sniff table
			mimeType: "applicaiton/pdf",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := NewFilter(tt.allowed, tt.blocked)
			if err != nil {
				t.Fatalf("NewFilter() error: %v", err)
			}
			if got := filter.Allowed(tt.mimeType); got != tt.expected {
				t.Errorf("Allowed(%q) = %v, want %v", tt.mimeType, got, tt.expected)
			}
		})
	}
}

func TestFilterCheck(t *testing.T) {
	filter, err := NewFilter([]string{"text/*"}, nil)
	if err != nil {
		t.Fatalf("NewFilter() error: %v", err)
	}

	if err := filter.Check("text/plain"); err != nil {
		t.Errorf("Check(text/plain) = %v, want nil", err)
	}

	err = filter.Check("image/png")
	if err == nil {
		t.Fatal("Check(image/png) = nil, want filter error")
	}
	if !IsErrorOfType(err, ErrorTypeFilter) {
		t.Errorf("error type = %v, want filter error", GetErrorType(err))
	}
}
