package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/avvvet/playhub-services/internal/apperr"
	"github.com/avvvet/playhub-services/internal/gamesvc/models"
	"github.com/avvvet/playhub-services/internal/gamesvc/service"
	"github.com/avvvet/playhub-services/internal/rest"
	"github.com/go-chi/jwtauth"
)

type GameService interface {
	GetByID(ctx context.Context, gameID int64) (*models.Game, error)
	UpdateStatus(ctx context.Context, gameID int64, status models.Status) (*models.Game, error)
	DeleteGame(ctx context.Context, gameID int64) error
	Search(ctx context.Context, filter models.SearchFilter) ([]models.Game, error)
	StartGame(ctx context.Context, req service.StartGameRequest) (*models.Game, error)
}

type Handler struct {
	games     GameService
	tokenAuth *jwtauth.JWTAuth
}

func NewHandler(games GameService, tokenAuth *jwtauth.JWTAuth) *Handler {
	return &Handler{games: games, tokenAuth: tokenAuth}
}

type StartGameRequest struct {
	Name     *string `json:"name" validate:"required"`
	PlayerID *int64  `json:"playerId"`
}

type UpdateGameStatusRequest struct {
	Status *models.Status `json:"status" validate:"required,oneof=NEW FINISHED DROPPED"`
}

type StartGameResponse struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Status    models.Status `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type GameDetails struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Status    models.Status `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func toStartGameResponse(g *models.Game) StartGameResponse {
	return StartGameResponse{ID: g.ID, Name: g.Name, Status: g.Status, CreatedAt: g.CreatedAt, UpdatedAt: g.UpdatedAt}
}

func toGameDetails(g *models.Game) GameDetails {
	return GameDetails{ID: g.ID, Name: g.Name, Status: g.Status, CreatedAt: g.CreatedAt, UpdatedAt: g.UpdatedAt}
}

// POST /game/play
func (h *Handler) StartGame(w http.ResponseWriter, r *http.Request) {
	var req StartGameRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.Error(w, r, err)
		return
	}

	game, err := h.games.StartGame(r.Context(), service.StartGameRequest{Name: *req.Name, PlayerID: req.PlayerID})
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusCreated, toStartGameResponse(game))
}

// GET /game/{id}
func (h *Handler) GetGameDetails(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ParseID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	game, err := h.games.GetByID(r.Context(), id)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, toGameDetails(game))
}

// PUT /game/{id}/play
func (h *Handler) UpdateGameStatus(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ParseID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	var req UpdateGameStatusRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.Error(w, r, err)
		return
	}

	game, err := h.games.UpdateStatus(r.Context(), id, *req.Status)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, toGameDetails(game))
}

// DELETE /game/{id}
func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ParseID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	if err := h.games.DeleteGame(r.Context(), id); err != nil {
		rest.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /game?status=&name=&playerName=
func (h *Handler) SearchGames(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSearchFilter(r)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	games, err := h.games.Search(r.Context(), filter)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	details := make([]GameDetails, 0, len(games))
	for i := range games {
		details = append(details, toGameDetails(&games[i]))
	}
	rest.JSON(w, http.StatusOK, details)
}

// parseSearchFilter reads the optional query parameters; empty values count
// as absent.
func parseSearchFilter(r *http.Request) (models.SearchFilter, error) {
	q := r.URL.Query()
	var filter models.SearchFilter

	if v := q.Get("status"); v != "" {
		status := models.Status(v)
		if !status.Valid() {
			return filter, apperr.Invalid("status", "must be one of "+models.StatusOneOf)
		}
		filter.Status = &status
	}
	if v := q.Get("name"); v != "" {
		filter.Name = &v
	}
	if v := q.Get("playerName"); v != "" {
		filter.PlayerName = &v
	}
	return filter, nil
}
