package handlers

import (
	"github.com/avvvet/playhub-services/internal/rest"
	"github.com/go-chi/chi"
)

func (h *Handler) SetRoutes(r chi.Router) {
	r.Route("/player", func(r chi.Router) {
		r.Post("/register", h.RegisterPlayer)
		r.Put("/games/{id}", h.RemoveGame)
		r.Get("/{id}", h.GetPlayerDetails)
		r.Delete("/{id}", h.DeletePlayer)
		r.Patch("/{id}", h.UpdatePlayerGame)
		r.Get("/{name}/games", h.GetGamesByPlayerName)
	})

	r.Route("/v1", func(r chi.Router) {
		// Secure routes
		rest.Secure(r, h.tokenAuth, func(r chi.Router) {
			r.Get("/health", rest.Health("player"))
		})
	})
}
