package task

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// SimulationError is the discriminated failure outcome of a simulated
// execution. The executor converts it into a failed record; it never crosses
// the HTTP boundary as an error.
type SimulationError struct {
	Kind    string
	Message string
}

func (e *SimulationError) Error() string { return e.Message }

// KindInvalidInput marks a command the simulator refuses to process.
const KindInvalidInput = "invalid_input"

// Simulator produces deterministic canned results for task commands using an
// ordered rule table. It is the stand-in for real task execution.
type Simulator struct {
	// Latency models non-trivial processing time. Zero disables the delay,
	// which keeps tests deterministic.
	Latency time.Duration
	// MaxCommandLen bounds accepted command length in bytes. Zero means
	// unbounded.
	MaxCommandLen int
}

// simRule pairs trigger keywords with a result builder. Rules are evaluated
// in order and the first match wins; the ordering is part of the contract and
// must not change, or identical commands would classify differently across
// releases.
type simRule struct {
	keywords []string
	build    func(command string) map[string]any
}

var simRules = []simRule{
	{
		keywords: []string{"hello", "hi", "greet"},
		build: func(string) map[string]any {
			return map[string]any{
				"type":    "greeting",
				"status":  "completed",
				"message": "Hello! How can I help you today?",
			}
		},
	},
	{
		keywords: []string{"create file", "new file", "touch"},
		build: func(string) map[string]any {
			name := fmt.Sprintf("file_%d.txt", time.Now().Unix())
			return map[string]any{
				"type":     "file_operation",
				"status":   "completed",
				"filename": name,
				"message":  "Created " + name,
			}
		},
	},
	{
		keywords: []string{"list", "ls", "dir", "show files"},
		build: func(string) map[string]any {
			return map[string]any{
				"type":   "list_operation",
				"status": "completed",
				"files":  []any{"main.go", "go.mod", "README.md"},
			}
		},
	},
	{
		keywords: []string{"search", "find", "grep"},
		build: func(command string) map[string]any {
			return map[string]any{
				"type":   "search_operation",
				"status": "completed",
				"query":  command,
				"matches": []any{
					map[string]any{"file": "internal/service/executor.go", "line": 42},
					map[string]any{"file": "internal/adapter/http/handlers.go", "line": 107},
				},
			}
		},
	},
	{
		keywords: []string{"git", "commit", "push", "pull"},
		build: func(command string) map[string]any {
			return map[string]any{
				"type":    "git_operation",
				"status":  "completed",
				"command": command,
				"output":  "On branch main\nnothing to commit, working tree clean",
			}
		},
	},
	{
		keywords: []string{"generate", "create code", "write function"},
		build: func(string) map[string]any {
			return map[string]any{
				"type":     "code_generation",
				"status":   "completed",
				"language": "go",
				"code":     "func main() {\n\tfmt.Println(\"Hello, World!\")\n}",
			}
		},
	},
}

// Run classifies command against the rule table and returns the canned
// payload for the first matching rule, or a generic payload when no rule
// fires. It fails only for input exceeding MaxCommandLen.
func (s *Simulator) Run(ctx context.Context, command string) (map[string]any, error) {
	if s.MaxCommandLen > 0 && len(command) > s.MaxCommandLen {
		return nil, &SimulationError{
			Kind:    KindInvalidInput,
			Message: fmt.Sprintf("command exceeds %d bytes", s.MaxCommandLen),
		}
	}

	if s.Latency > 0 {
		select {
		case <-time.After(s.Latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	lower := strings.ToLower(command)
	for _, rule := range simRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.build(command), nil
			}
		}
	}

	return map[string]any{
		"type":    "general",
		"status":  "completed",
		"message": "Processed: " + command,
	}, nil
}
