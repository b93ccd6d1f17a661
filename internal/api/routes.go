package api

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all API endpoints on the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Post("/sessions", h.CreateSession)
		r.Get("/sessions/{id}", h.GetSession)
		r.Get("/sessions/{id}/messages", h.GetMessages)
		r.Post("/chat", h.Chat)

		r.Get("/questions", h.ListQuestions)
		r.Post("/questions", h.CreateQuestion)
		r.Get("/knowledge", h.ListKnowledge)
		r.Post("/knowledge", h.CreateKnowledge)

		r.Get("/subjects", h.ListSubjects)
		r.Get("/subjects/{subject}/topics", h.ListTopics)
	})
}
