package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "triniti"

// Metrics holds the task execution metric instruments. Against the default
// no-op meter provider every instrument is a no-op, so callers never need a
// nil check.
type Metrics struct {
	TasksExecuted metric.Int64Counter
	TasksFailed   metric.Int64Counter
	TaskDuration  metric.Float64Histogram
}

// NewMetrics creates all metric instruments.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.TasksExecuted, err = meter.Int64Counter("triniti.tasks.executed",
		metric.WithDescription("Number of task executions recorded"))
	if err != nil {
		return nil, err
	}

	m.TasksFailed, err = meter.Int64Counter("triniti.tasks.failed",
		metric.WithDescription("Number of task executions that failed"))
	if err != nil {
		return nil, err
	}

	m.TaskDuration, err = meter.Float64Histogram("triniti.task.duration_ms",
		metric.WithDescription("Task execution duration in milliseconds"))
	if err != nil {
		return nil, err
	}

	return m, nil
}
