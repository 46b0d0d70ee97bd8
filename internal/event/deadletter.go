package event

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/osse101/fragrewards/internal/logger"
)

// DeadLetterSchemaVersion is the current version of the dead-letter log format
const DeadLetterSchemaVersion = "1.0"

// DeadLetterWriter appends notifications evicted from a queue to a JSON lines file
type DeadLetterWriter struct {
	file *os.File
	mu   sync.Mutex
	now  func() time.Time
}

// DeadLetterEntry is one line of the dead-letter file
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	PlayerID      string    `json:"player_id,omitempty"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// NewDeadLetterWriter opens path for appending
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, err
	}
	return &DeadLetterWriter{file: f, now: time.Now}, nil
}

// Write appends an evicted event. Its signature matches OverflowFunc.
func (dlw *DeadLetterWriter) Write(event Event, attempts int, lastError error) {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     dlw.now(),
		PlayerID:      event.PlayerID(),
		Event:         event,
		Attempts:      attempts,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	logger.Warn(LogMsgEventDeadLetter,
		"event_type", event.Type,
		"player_id", entry.PlayerID,
		"attempts", attempts,
		"error", entry.LastError)

	data, err := json.Marshal(entry)
	if err != nil {
		logger.Error("Failed to encode dead letter", "error", err)
		return
	}

	dlw.mu.Lock()
	defer dlw.mu.Unlock()
	if _, err := dlw.file.Write(append(data, '\n')); err != nil {
		logger.Error("Failed to write dead letter", "error", err)
	}
}

// Close closes the dead-letter file
func (dlw *DeadLetterWriter) Close() error {
	return dlw.file.Close()
}
