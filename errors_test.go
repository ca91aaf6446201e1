package sniffkit

import (
	"errors"
	"fmt"
	"testing"
)

func TestSniffError(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		err := NewSniffError(ErrorTypeFilter, "type image/png is not allowed")
		want := "filter error: type image/png is not allowed"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("wrapped cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := WrapSniffError(ErrorTypeRead, "failed to read content header", cause)

		if !errors.Is(err, cause) {
			t.Error("wrapped cause not reachable via errors.Is")
		}
		if err.Error() != "read error: failed to read content header: boom" {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("predicates", func(t *testing.T) {
		err := NewSniffError(ErrorTypePattern, "invalid type pattern")
		wrapped := fmt.Errorf("building filter: %w", err)

		if !IsSniffError(wrapped) {
			t.Error("IsSniffError missed a wrapped SniffError")
		}
		if !IsErrorOfType(wrapped, ErrorTypePattern) {
			t.Error("IsErrorOfType missed the pattern type")
		}
		if IsErrorOfType(wrapped, ErrorTypeFilter) {
			t.Error("IsErrorOfType matched the wrong type")
		}
		if got := GetErrorType(wrapped); got != ErrorTypePattern {
			t.Errorf("GetErrorType() = %q", got)
		}

		plain := errors.New("plain")
		if IsSniffError(plain) {
			t.Error("IsSniffError matched a plain error")
		}
		if got := GetErrorType(plain); got != "" {
			t.Errorf("GetErrorType(plain) = %q, want empty", got)
		}
	})
}
