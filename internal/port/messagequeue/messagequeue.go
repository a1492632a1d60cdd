// Package messagequeue defines the message queue port (interface).
package messagequeue

import "context"

// Queue is the port interface for publishing task lifecycle events.
type Queue interface {
	// Publish sends a message to the given subject.
	Publish(ctx context.Context, subject string, data []byte) error

	// Close shuts down the queue connection.
	Close() error

	// IsConnected reports whether the queue is currently connected.
	IsConnected() bool
}

// Subjects published by the backend.
const (
	SubjectTaskExecuted = "tasks.executed" // one message per completed execution
	SubjectTasksCleared = "tasks.cleared"  // history wiped via the API
)

// Discard is a no-op Queue used when no broker is configured.
type Discard struct{}

// Publish drops the message.
func (Discard) Publish(context.Context, string, []byte) error { return nil }

// Close is a no-op.
func (Discard) Close() error { return nil }

// IsConnected always reports false.
func (Discard) IsConnected() bool { return false }
