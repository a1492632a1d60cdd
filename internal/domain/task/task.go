// Package task defines the task execution domain: the record stored in the
// journal, the tag extractor and the rule-based execution simulator.
package task

// Record is one completed execution's persisted outcome. It is immutable
// after insertion into the journal.
type Record struct {
	ID         string         `json:"id"`
	Task       string         `json:"task"`
	Result     map[string]any `json:"result"`
	Success    bool           `json:"success"`
	DurationMs int64          `json:"duration_ms"`
	Timestamp  int64          `json:"timestamp"` // epoch milliseconds, set once at creation
	Tags       []string       `json:"tags"`
}
