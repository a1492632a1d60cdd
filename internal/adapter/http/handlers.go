package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/triniti-dev/triniti-backend/internal/service"
)

// Handlers holds the HTTP handler dependencies.
type Handlers struct {
	Executor *service.Executor
	History  *service.History
}

// NewHandlers creates the handler set for the task API.
func NewHandlers(executor *service.Executor, history *service.History) *Handlers {
	return &Handlers{Executor: executor, History: history}
}

type executeRequest struct {
	Command  string         `json:"command"`
	Task     string         `json:"task"`
	Metadata map[string]any `json:"metadata,omitempty"`
	// Timeout is accepted for wire compatibility but not enforced; the
	// simulator finishes in bounded time on its own.
	Timeout *int `json:"timeout,omitempty"`
}

// command returns whichever of the two accepted body keys carries the task.
func (req executeRequest) command() string {
	if req.Command != "" {
		return req.Command
	}
	return req.Task
}

type executeResponse struct {
	ID            string         `json:"id"`
	Success       bool           `json:"success"`
	Result        map[string]any `json:"result"`
	ExecutionTime int64          `json:"execution_time"`
	Timestamp     int64          `json:"timestamp"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// ExecuteTask handles POST /api/execute and POST /api/run-task.
func (h *Handlers) ExecuteTask(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[executeRequest](w, r)
	if !ok {
		return
	}

	rec, err := h.Executor.Execute(r.Context(), req.command())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := executeResponse{
		ID:            rec.ID,
		Success:       rec.Success,
		Result:        rec.Result,
		ExecutionTime: rec.DurationMs,
		Timestamp:     rec.Timestamp,
		Metadata:      req.Metadata,
	}
	if !rec.Success {
		if msg, ok := rec.Result["error"].(string); ok {
			resp.Error = msg
		} else {
			resp.Error = "unknown error"
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListTasks handles GET /api/tasks.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit", service.DefaultPageLimit)
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset", 0)
	if !ok {
		return
	}

	page, err := h.History.List(limit, offset)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// TaskStats handles GET /api/tasks/stats.
func (h *Handlers) TaskStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.History.Stats())
}

// ClearTasks handles DELETE /api/tasks.
func (h *Handlers) ClearTasks(w http.ResponseWriter, r *http.Request) {
	h.History.Clear(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Task history cleared successfully",
	})
}

// APIHealth handles GET /api/health.
func (h *Handlers) APIHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "healthy",
		"service":       "triniti-task-runner",
		"timestamp":     time.Now().Format(time.RFC3339),
		"journal_ready": true,
		"journal_size":  h.History.Size(),
	})
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent. A non-integer value is a client error.
func queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, name+" must be an integer")
		return 0, false
	}
	return v, true
}
