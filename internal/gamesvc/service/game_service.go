package service

import (
	"context"
	"fmt"

	"github.com/avvvet/playhub-services/internal/apperr"
	"github.com/avvvet/playhub-services/internal/comm"
	"github.com/avvvet/playhub-services/internal/gamesvc/models"
	log "github.com/sirupsen/logrus"
)

type GameStore interface {
	Create(ctx context.Context, game *models.Game) error
	GetGameByID(ctx context.Context, gameID int64) (*models.Game, error)
	UpdateStatus(ctx context.Context, gameID int64, status models.Status) (*models.Game, error)
	Delete(ctx context.Context, gameID int64) (*models.Game, error)
	Search(ctx context.Context, q models.GameQuery) ([]models.Game, error)
}

// PlayerClient is the player service as seen from the game service.
type PlayerClient interface {
	RegisterPlayer(ctx context.Context, gameID int64) error
	UpdatePlayerGame(ctx context.Context, playerID, gameID int64) error
	GetGamesByPlayerName(ctx context.Context, name string) ([]int64, error)
	RemoveGame(ctx context.Context, gameID int64) error
}

type EventPublisher interface {
	PublishGameEvent(ctx context.Context, eventType string, game *models.Game)
}

// StartGameRequest is the input of StartGame.
type StartGameRequest struct {
	Name     string
	PlayerID *int64
}

// GameService owns game rows and keeps the player service informed.
//
// Calls to the player service happen after the local write has committed
// and are not compensated: if one fails the error is returned but the game
// row stays as written.
type GameService struct {
	gameStore GameStore
	players   PlayerClient
	events    EventPublisher
}

func NewGameService(gameStore GameStore, players PlayerClient, events EventPublisher) *GameService {
	return &GameService{gameStore: gameStore, players: players, events: events}
}

func (s *GameService) GetByID(ctx context.Context, gameID int64) (*models.Game, error) {
	return s.gameStore.GetGameByID(ctx, gameID)
}

func (s *GameService) UpdateStatus(ctx context.Context, gameID int64, status models.Status) (*models.Game, error) {
	if !status.Valid() {
		return nil, apperr.Invalid("status", "must be one of "+models.StatusOneOf)
	}

	game, err := s.gameStore.UpdateStatus(ctx, gameID, status)
	if err != nil {
		return nil, err
	}

	s.events.PublishGameEvent(ctx, comm.EventGameStatusUpdated, game)
	return game, nil
}

// DeleteGame removes the game, then asks the player service to clear it
// from every player.
func (s *GameService) DeleteGame(ctx context.Context, gameID int64) error {
	game, err := s.gameStore.Delete(ctx, gameID)
	if err != nil {
		return err
	}
	s.events.PublishGameEvent(ctx, comm.EventGameDeleted, game)

	if err := s.players.RemoveGame(ctx, gameID); err != nil {
		log.Warnf("game %d deleted locally but player service was not updated: %v", gameID, err)
		return fmt.Errorf("remove game %d from players: %w", gameID, err)
	}
	return nil
}

// Search resolves a player name to game ids first; when a name is given the
// status and name filters are ignored.
func (s *GameService) Search(ctx context.Context, filter models.SearchFilter) ([]models.Game, error) {
	q := models.GameQuery{Status: filter.Status, Name: filter.Name}

	if filter.PlayerName != nil {
		ids, err := s.players.GetGamesByPlayerName(ctx, *filter.PlayerName)
		if err != nil {
			return nil, fmt.Errorf("resolve games of player %q: %w", *filter.PlayerName, err)
		}
		if len(ids) == 0 {
			return []models.Game{}, nil
		}
		q = models.GameQuery{IDs: ids}
	}

	return s.gameStore.Search(ctx, q)
}

// StartGame creates a NEW game and attaches it to req.PlayerID, or to a
// freshly registered anonymous player when no id is given.
func (s *GameService) StartGame(ctx context.Context, req StartGameRequest) (*models.Game, error) {
	game := &models.Game{Name: req.Name, Status: models.StatusNew}
	if err := s.gameStore.Create(ctx, game); err != nil {
		return nil, err
	}
	s.events.PublishGameEvent(ctx, comm.EventGameStarted, game)

	if req.PlayerID != nil {
		if err := s.players.UpdatePlayerGame(ctx, *req.PlayerID, game.ID); err != nil {
			log.Warnf("game %d created but player %d was not attached: %v", game.ID, *req.PlayerID, err)
			return nil, fmt.Errorf("attach player %d to game %d: %w", *req.PlayerID, game.ID, err)
		}
		return game, nil
	}

	if err := s.players.RegisterPlayer(ctx, game.ID); err != nil {
		log.Warnf("game %d created but no player was registered: %v", game.ID, err)
		return nil, fmt.Errorf("register player for game %d: %w", game.ID, err)
	}
	return game, nil
}
