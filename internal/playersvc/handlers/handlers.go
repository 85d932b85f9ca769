package handlers

import (
	"context"
	"net/http"

	"github.com/avvvet/playhub-services/internal/comm"
	"github.com/avvvet/playhub-services/internal/playersvc/models"
	"github.com/avvvet/playhub-services/internal/playersvc/service"
	"github.com/avvvet/playhub-services/internal/rest"
	"github.com/go-chi/jwtauth"
)

type PlayerService interface {
	RegisterPlayer(ctx context.Context, req service.RegisterPlayerRequest) (*models.Player, error)
	GetByID(ctx context.Context, playerID int64) (*models.Player, error)
	DeletePlayer(ctx context.Context, playerID int64) error
	FindByName(ctx context.Context, name string) ([]models.Player, error)
	UpdatePlayerGame(ctx context.Context, playerID, gameID int64) (*models.Player, error)
	RemoveGameForPlayers(ctx context.Context, gameID int64) error
}

type Handler struct {
	players   PlayerService
	tokenAuth *jwtauth.JWTAuth
}

func NewHandler(players PlayerService, tokenAuth *jwtauth.JWTAuth) *Handler {
	return &Handler{players: players, tokenAuth: tokenAuth}
}

type RegisterPlayerResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	GameID *int64 `json:"gameId"`
}

type PlayerDetails struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	GameID *int64 `json:"gameId"`
}

func toRegisterPlayerResponse(p *models.Player) RegisterPlayerResponse {
	return RegisterPlayerResponse{ID: p.ID, Name: p.Name, GameID: p.GameID}
}

func toPlayerDetails(p *models.Player) PlayerDetails {
	return PlayerDetails{ID: p.ID, Name: p.Name, GameID: p.GameID}
}

// POST /player/register
func (h *Handler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	var req comm.RegisterPlayerRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.Error(w, r, err)
		return
	}

	player, err := h.players.RegisterPlayer(r.Context(), service.RegisterPlayerRequest{Name: *req.Name, GameID: req.GameID})
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusCreated, toRegisterPlayerResponse(player))
}

// GET /player/{id}
func (h *Handler) GetPlayerDetails(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ParseID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	player, err := h.players.GetByID(r.Context(), id)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, toPlayerDetails(player))
}

// DELETE /player/{id}
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ParseID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	if err := h.players.DeletePlayer(r.Context(), id); err != nil {
		rest.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PATCH /player/{id}
func (h *Handler) UpdatePlayerGame(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ParseID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	var req comm.UpdatePlayerGameRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.Error(w, r, err)
		return
	}

	player, err := h.players.UpdatePlayerGame(r.Context(), id, *req.GameID)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rest.JSON(w, http.StatusOK, toPlayerDetails(player))
}

// GET /player/{name}/games
func (h *Handler) GetGamesByPlayerName(w http.ResponseWriter, r *http.Request) {
	name, err := rest.PathParam(r, "name")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	players, err := h.players.FindByName(r.Context(), name)
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	rsp := comm.GameSearchResponse{Games: []int64{}}
	for _, p := range players {
		if p.GameID != nil {
			rsp.Games = append(rsp.Games, *p.GameID)
		}
	}
	rest.JSON(w, http.StatusOK, rsp)
}

// PUT /player/games/{id}
func (h *Handler) RemoveGame(w http.ResponseWriter, r *http.Request) {
	id, err := rest.ParseID(r, "id")
	if err != nil {
		rest.Error(w, r, err)
		return
	}

	if err := h.players.RemoveGameForPlayers(r.Context(), id); err != nil {
		rest.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
