package routes

import (
	"github.com/avvvet/playhub-services/internal/rest"
	"github.com/avvvet/playhub-services/internal/socketsvc/handlers"
	"github.com/avvvet/playhub-services/internal/socketsvc/ws"
	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
)

func SetRoutes(r chi.Router, ws *ws.Ws, tokenAuth *jwtauth.JWTAuth) {
	h := handlers.NewHandler(ws)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/ws", h.HandleWebSocket)
		// Secure routes
		rest.Secure(r, tokenAuth, func(r chi.Router) {
			r.Get("/health", rest.Health("socket"))
		})
	})
}
