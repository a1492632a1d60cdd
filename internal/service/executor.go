// Package service contains the business logic orchestrating the task
// execution core: the executor and the history query service.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/triniti-dev/triniti-backend/internal/adapter/otel"
	"github.com/triniti-dev/triniti-backend/internal/domain"
	"github.com/triniti-dev/triniti-backend/internal/domain/task"
	"github.com/triniti-dev/triniti-backend/internal/port/broadcast"
	"github.com/triniti-dev/triniti-backend/internal/port/journal"
	"github.com/triniti-dev/triniti-backend/internal/port/messagequeue"
)

// Executor runs simulated task executions and records every outcome in the
// journal. The journal is the only state it mutates.
type Executor struct {
	journal journal.Journal
	sim     *task.Simulator
	queue   messagequeue.Queue
	hub     broadcast.Broadcaster
	metrics *otel.Metrics
}

// NewExecutor creates an Executor.
func NewExecutor(j journal.Journal, sim *task.Simulator, queue messagequeue.Queue, hub broadcast.Broadcaster, metrics *otel.Metrics) *Executor {
	return &Executor{journal: j, sim: sim, queue: queue, hub: hub, metrics: metrics}
}

// Execute runs command through the simulator and appends the resulting
// record to the journal. A simulator failure becomes a record with
// success=false, never an error; the returned error is reserved for invalid
// input (blank command) and journal faults.
func (s *Executor) Execute(ctx context.Context, command string) (task.Record, error) {
	if strings.TrimSpace(command) == "" {
		return task.Record{}, fmt.Errorf("command must not be blank: %w", domain.ErrValidation)
	}

	start := time.Now()
	rec := task.Record{
		ID:        newTaskID(start),
		Task:      command,
		Timestamp: start.UnixMilli(),
		Tags:      task.ExtractTags(command), // tagging is independent of outcome
	}

	payload, err := s.sim.Run(ctx, command)
	if err != nil {
		rec.Success = false
		rec.Result = map[string]any{"error": err.Error()}
	} else {
		rec.Success = true
		rec.Result = payload
	}
	rec.DurationMs = time.Since(start).Milliseconds()

	if err := s.journal.Append(rec); err != nil {
		if rec.Success {
			return task.Record{}, fmt.Errorf("append record: %w", err)
		}
		// Losing a failure record must not turn into a failed request.
		slog.Error("journal append failed for failure record", "task_id", rec.ID, "error", err)
	}

	s.publish(ctx, rec)
	return rec, nil
}

// publish emits metrics, the websocket event and the queue message for a
// completed execution. All of it is best-effort.
func (s *Executor) publish(ctx context.Context, rec task.Record) {
	s.metrics.TasksExecuted.Add(ctx, 1)
	if !rec.Success {
		s.metrics.TasksFailed.Add(ctx, 1)
	}
	s.metrics.TaskDuration.Record(ctx, float64(rec.DurationMs))

	s.hub.BroadcastEvent(ctx, broadcast.EventTaskExecuted, rec)

	data, err := json.Marshal(messagequeue.TaskExecutedPayload{
		ID:         rec.ID,
		Task:       rec.Task,
		Success:    rec.Success,
		DurationMs: rec.DurationMs,
		Timestamp:  rec.Timestamp,
		Tags:       rec.Tags,
	})
	if err != nil {
		return
	}
	if err := s.queue.Publish(ctx, messagequeue.SubjectTaskExecuted, data); err != nil {
		slog.Error("failed to publish task event", "task_id", rec.ID, "error", err)
	}
}

// newTaskID builds an identifier unique across the process lifetime.
func newTaskID(t time.Time) string {
	return fmt.Sprintf("task_%d_%s", t.UnixMilli(), uuid.NewString()[:8])
}
