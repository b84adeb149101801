package ffi

import (
	"fmt"

	"github.com/singlestore-labs/to-wit/errors"
)

// Session carries the last-error slot for one caller. Every fallible
// boundary operation reports through its session: false means the
// operation failed and LastError describes why; true means it succeeded
// and any earlier error was cleared.
type Session struct {
	lastErr string
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// LastError returns the message of the most recent failed operation, or
// the empty string when the last operation succeeded.
func (s *Session) LastError() string {
	if s == nil {
		return ""
	}
	return s.lastErr
}

// ClearError resets the error slot without running an operation.
func (s *Session) ClearError() {
	if s != nil {
		s.lastErr = ""
	}
}

// capture runs one boundary operation: it contains panics, records
// failure on the session, and clears the error slot on success. A nil
// session fails every operation without recording anything.
func (s *Session) capture(op string, fn func() error) (ok bool) {
	if s == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			s.lastErr = errors.Internal(errors.PhaseBoundary, fmt.Sprintf("%s: panic: %v", op, r), nil).Error()
			ok = false
		}
	}()
	if err := fn(); err != nil {
		s.lastErr = err.Error()
		return false
	}
	s.lastErr = ""
	return true
}
