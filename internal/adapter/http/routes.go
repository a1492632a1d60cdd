package http

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers all API routes on the given chi router.
func MountRoutes(r chi.Router, h *Handlers) {
	r.Get("/", h.Root)
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", h.APIStatus)
		r.Get("/health", h.APIHealth)

		// Task execution core. /run-task is the legacy alias for /execute.
		r.Post("/execute", h.ExecuteTask)
		r.Post("/run-task", h.ExecuteTask)
		r.Get("/tasks", h.ListTasks)
		r.Get("/tasks/stats", h.TaskStats)
		r.Delete("/tasks", h.ClearTasks)

		// Canned platform surface.
		r.Get("/options/config", h.OptionsConfig)
		r.Get("/options/models", h.OptionsModels)
		r.Get("/options/agents", h.OptionsAgents)
		r.Get("/options/security-analyzers", h.OptionsSecurityAnalyzers)
		r.Get("/options/settings", h.OptionsSettings)
		r.Get("/settings", h.Settings)
		r.Get("/user/info", h.UserInfo)
		r.Get("/user/repositories", h.UserRepositories)
		r.Get("/user/search/repositories", h.SearchUserRepositories)
		r.Get("/user/repository/branches", h.RepositoryBranches)
		r.Get("/user/suggested-tasks", h.SuggestedTasks)
		r.Get("/secrets", h.Secrets)
		r.Get("/security/policy", h.SecurityPolicy)
		r.Get("/security/settings", h.SecuritySettings)
		r.Get("/conversations", h.ListConversations)
	})
}
