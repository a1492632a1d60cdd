package http

import (
	"net/http"
	"time"
)

// The platform surface below returns canned payloads so the frontend can run
// against this backend without any of the heavyweight platform services.

const serviceVersion = "1.0.0"

// Root handles GET /.
func (h *Handlers) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "TRINITI Backend Server",
		"status":  "running",
		"version": serviceVersion,
		"endpoints": map[string]any{
			"task_execution":  "/api/execute",
			"task_history":    "/api/tasks",
			"task_statistics": "/api/tasks/stats",
			"health_check":    "/api/health",
		},
	})
}

// Health handles GET /health.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "triniti-backend",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// APIStatus handles GET /api/status.
func (h *Handlers) APIStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"backend":     "running",
		"frontend":    "http://localhost:3001",
		"ready":       true,
		"task_runner": "available",
	})
}

// OptionsConfig handles GET /api/options/config.
func (h *Handlers) OptionsConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"APP_MODE":           "oss",
		"GITHUB_CLIENT_ID":   "",
		"POSTHOG_CLIENT_KEY": "",
		"FEATURE_FLAGS": map[string]any{
			"ENABLE_BILLING":    false,
			"HIDE_LLM_SETTINGS": false,
		},
	})
}

// OptionsModels handles GET /api/options/models.
func (h *Handlers) OptionsModels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"providers": map[string]any{
			"openai":    []string{"gpt-4o", "gpt-3.5-turbo"},
			"anthropic": []string{"claude-3-haiku"},
		},
	})
}

// OptionsAgents handles GET /api/options/agents.
func (h *Handlers) OptionsAgents(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []string{"CodeActAgent"})
}

// OptionsSecurityAnalyzers handles GET /api/options/security-analyzers.
func (h *Handlers) OptionsSecurityAnalyzers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []string{"bandit", "semgrep", "safety"})
}

// OptionsSettings handles GET /api/options/settings.
func (h *Handlers) OptionsSettings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"orgName":         "TRINITI-Dev",
		"defaultProvider": "openai",
	})
}

// Settings handles GET /api/settings.
func (h *Handlers) Settings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"llm_model":                      "anthropic/claude-sonnet-4-20250514",
		"llm_base_url":                   "",
		"agent":                          "CodeActAgent",
		"language":                       "en",
		"llm_api_key_set":                false,
		"search_api_key_set":             false,
		"confirmation_mode":              false,
		"security_analyzer":              "",
		"remote_runtime_resource_factor": 1,
		"provider_tokens_set": map[string]any{
			"github":    nil,
			"gitlab":    nil,
			"bitbucket": nil,
		},
		"enable_default_condenser":                 true,
		"enable_sound_notifications":               false,
		"enable_proactive_conversation_starters":   false,
		"user_consents_to_analytics":               false,
		"search_api_key":                           "",
		"max_budget_per_task":                      nil,
		"email":                                    "",
		"email_verified":                           true,
		"mcp_config": map[string]any{
			"sse_servers":   []any{},
			"stdio_servers": []any{},
		},
	})
}

// UserInfo handles GET /api/user/info.
func (h *Handlers) UserInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"id":         1,
		"login":      "demo-user",
		"avatar_url": "https://avatars.githubusercontent.com/u/1?v=4",
		"company":    "TRINITI-Dev",
		"name":       "Demo User",
		"email":      "demo@triniti.dev",
	})
}

// demoRepository is the single canned repository served to the frontend.
var demoRepository = map[string]any{
	"id":             1,
	"name":           "demo-repo",
	"full_name":      "demo-user/demo-repo",
	"private":        false,
	"html_url":       "https://github.com/demo-user/demo-repo",
	"description":    "A demo repository",
	"fork":           false,
	"created_at":     "2024-01-01T00:00:00Z",
	"updated_at":     "2024-01-01T00:00:00Z",
	"pushed_at":      "2024-01-01T00:00:00Z",
	"language":       "Go",
	"default_branch": "main",
}

// UserRepositories handles GET /api/user/repositories.
func (h *Handlers) UserRepositories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []any{demoRepository})
}

// SearchUserRepositories handles GET /api/user/search/repositories.
func (h *Handlers) SearchUserRepositories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []any{demoRepository})
}

// RepositoryBranches handles GET /api/user/repository/branches.
func (h *Handlers) RepositoryBranches(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []any{
		map[string]any{
			"name": "main",
			"commit": map[string]any{
				"sha": "abc123",
				"url": "https://api.github.com/repos/demo-user/demo-repo/commits/abc123",
			},
			"protected": false,
		},
		map[string]any{
			"name": "develop",
			"commit": map[string]any{
				"sha": "def456",
				"url": "https://api.github.com/repos/demo-user/demo-repo/commits/def456",
			},
			"protected": false,
		},
	})
}

// Secrets handles GET /api/secrets.
func (h *Handlers) Secrets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"secrets": []any{},
		"total":   0,
	})
}

// SecurityPolicy handles GET /api/security/policy.
func (h *Handlers) SecurityPolicy(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"enabled": false,
		"rules":   []any{},
	})
}

// SecuritySettings handles GET /api/security/settings.
func (h *Handlers) SecuritySettings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"enabled":   false,
		"analyzers": []any{},
	})
}

// SuggestedTasks handles GET /api/user/suggested-tasks.
func (h *Handlers) SuggestedTasks(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tasks": []any{}})
}

// ListConversations handles GET /api/conversations.
func (h *Handlers) ListConversations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []any{})
}
