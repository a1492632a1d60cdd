package messagequeue

// TaskExecutedPayload is the schema for tasks.executed messages.
type TaskExecutedPayload struct {
	ID         string   `json:"id"`
	Task       string   `json:"task"`
	Success    bool     `json:"success"`
	DurationMs int64    `json:"duration_ms"`
	Timestamp  int64    `json:"timestamp"`
	Tags       []string `json:"tags"`
}

// TasksClearedPayload is the schema for tasks.cleared messages.
type TasksClearedPayload struct {
	ClearedAt int64 `json:"cleared_at"` // epoch milliseconds
}
