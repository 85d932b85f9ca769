package service

import (
	"context"

	"github.com/avvvet/playhub-services/internal/playersvc/models"
	log "github.com/sirupsen/logrus"
)

type PlayerStore interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, playerID int64) (*models.Player, error)
	Delete(ctx context.Context, playerID int64) error
	FindByName(ctx context.Context, name string) ([]models.Player, error)
	UpdateGame(ctx context.Context, playerID int64, gameID *int64) (*models.Player, error)
	ClearGame(ctx context.Context, gameID int64) (int64, error)
}

type RegisterPlayerRequest struct {
	Name   string
	GameID *int64
}

type PlayerService struct {
	playerStore PlayerStore
}

func NewPlayerService(playerStore PlayerStore) *PlayerService {
	return &PlayerService{playerStore: playerStore}
}

func (s *PlayerService) RegisterPlayer(ctx context.Context, req RegisterPlayerRequest) (*models.Player, error) {
	player := &models.Player{Name: req.Name, GameID: req.GameID}
	if err := s.playerStore.Create(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *PlayerService) GetByID(ctx context.Context, playerID int64) (*models.Player, error) {
	return s.playerStore.GetByID(ctx, playerID)
}

func (s *PlayerService) DeletePlayer(ctx context.Context, playerID int64) error {
	return s.playerStore.Delete(ctx, playerID)
}

// FindByName returns every player whose name matches exactly.
func (s *PlayerService) FindByName(ctx context.Context, name string) ([]models.Player, error) {
	return s.playerStore.FindByName(ctx, name)
}

func (s *PlayerService) UpdatePlayerGame(ctx context.Context, playerID, gameID int64) (*models.Player, error) {
	return s.playerStore.UpdateGame(ctx, playerID, &gameID)
}

// RemoveGameForPlayers detaches every player from a deleted game.
func (s *PlayerService) RemoveGameForPlayers(ctx context.Context, gameID int64) error {
	cleared, err := s.playerStore.ClearGame(ctx, gameID)
	if err != nil {
		return err
	}
	if cleared > 0 {
		log.Infof("game %d removed from %d players", gameID, cleared)
	}
	return nil
}
