package handlers

import (
	"github.com/avvvet/playhub-services/internal/rest"
	"github.com/go-chi/chi"
)

func (h *Handler) SetRoutes(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/play", h.StartGame)
		r.Get("/", h.SearchGames)
		r.Get("/{id}", h.GetGameDetails)
		r.Put("/{id}/play", h.UpdateGameStatus)
		r.Delete("/{id}", h.DeleteGame)
	})

	r.Route("/v1", func(r chi.Router) {
		// Secure routes
		rest.Secure(r, h.tokenAuth, func(r chi.Router) {
			r.Get("/health", rest.Health("game"))
		})
	})
}
