// Package testing provides test utilities for lenient.
package testing

import (
	"sync"

	"github.com/zoobzio/lenient"
	"github.com/zoobzio/lenient/fault"
	lenientjson "github.com/zoobzio/lenient/json"
)

// JSONCodec returns the JSON codec used by most tests.
func JSONCodec() lenient.Codec {
	return lenientjson.New()
}

// SimpleRecord is a test type with no policy tags.
type SimpleRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GuardedRecord is a test type demonstrating fallback and omit tags.
// Field types are kept codec-neutral (strings and string collections) so
// the same fixture round-trips through every codec provider.
type GuardedRecord struct {
	ID   string            `json:"id"`
	Tags []string          `json:"tags" fallback:"default"`
	Meta map[string]string `json:"meta" fallback:"default"`
	Note *string           `json:"note" fallback:"nil"`
	ETag string            `json:"etag" encode.omit:"true"`
}

// CaptureSink is a fault.Logger that records every emitted line.
// Safe for concurrent use.
type CaptureSink struct {
	mu       sync.Mutex
	messages []fault.LoggedMessage
}

// Emit implements fault.Logger.
func (s *CaptureSink) Emit(level fault.Level, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, fault.LoggedMessage{Level: level, Text: text})
}

// Messages returns a copy of the recorded lines.
func (s *CaptureSink) Messages() []fault.LoggedMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]fault.LoggedMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Reset clears the recorded lines.
func (s *CaptureSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}
