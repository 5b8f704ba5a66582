package fault

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Level classifies an emitted log line and selects its fixed prefix.
type Level string

const (
	LevelError Level = "ERROR"
	LevelWarn  Level = "WARN"
	LevelInfo  Level = "INFO"
)

// prefixes holds the fixed log-line prefix per level.
var prefixes = map[Level]string{
	LevelError: "ERROR:",
	LevelWarn:  "WARN:",
	LevelInfo:  "INFO:",
}

// Prefix returns the fixed prefix for the level.
func (l Level) Prefix() string {
	if p, ok := prefixes[l]; ok {
		return p
	}
	return prefixes[LevelInfo]
}

// LoggedMessage is one emitted log line.
type LoggedMessage struct {
	Level Level
	Text  string
}

// Logger is the log sink capability the pipeline emits through. It must
// tolerate concurrent calls; the pipeline never assumes exclusive access.
// Test harnesses substitute a capturing implementation.
type Logger interface {
	Emit(level Level, text string)
}

// Signals for logged messages.
var (
	SignalMessageLogged = capitan.NewSignal("fault.message.logged", "Error pipeline emitted a log line")
)

// Keys for typed event data.
var (
	KeyLevel = capitan.NewStringKey("level")
	KeyText  = capitan.NewStringKey("text")
)

// capitanLogger is the process-wide default sink. It forwards each line as
// a capitan event.
type capitanLogger struct{}

func (capitanLogger) Emit(level Level, text string) {
	fields := []capitan.Field{
		KeyLevel.Field(string(level)),
		KeyText.Field(text),
	}
	if level == LevelError {
		capitan.Error(context.Background(), SignalMessageLogged, fields...)
		return
	}
	capitan.Emit(context.Background(), SignalMessageLogged, fields...)
}

// DefaultLogger returns the capitan-backed default sink.
func DefaultLogger() Logger {
	return capitanLogger{}
}
