package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avvvet/playhub-services/internal/apperr"
	"github.com/avvvet/playhub-services/internal/gamesvc/models"
	"gorm.io/gorm"
)

type GameStore struct {
	db *gorm.DB
}

func NewGameStore(db *gorm.DB) *GameStore {
	return &GameStore{db: db}
}

// Create inserts game and fills its id and timestamps.
func (s *GameStore) Create(ctx context.Context, game *models.Game) error {
	if err := s.db.WithContext(ctx).Create(game).Error; err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

func (s *GameStore) GetGameByID(ctx context.Context, gameID int64) (*models.Game, error) {
	return findGame(s.db.WithContext(ctx), gameID)
}

// UpdateStatus loads the game, sets status and saves it in one transaction.
func (s *GameStore) UpdateStatus(ctx context.Context, gameID int64, status models.Status) (*models.Game, error) {
	var game *models.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		g, err := findGame(tx, gameID)
		if err != nil {
			return err
		}

		g.Status = status
		if err := tx.Save(g).Error; err != nil {
			return fmt.Errorf("failed to update game status: %w", err)
		}
		game = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

// Delete removes the game and returns the row as it was before removal.
func (s *GameStore) Delete(ctx context.Context, gameID int64) (*models.Game, error) {
	var game *models.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		g, err := findGame(tx, gameID)
		if err != nil {
			return err
		}

		if err := tx.Delete(&models.Game{}, g.ID).Error; err != nil {
			return fmt.Errorf("failed to delete game: %w", err)
		}
		game = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

// Search returns the games matching q ordered by id.
func (s *GameStore) Search(ctx context.Context, q models.GameQuery) ([]models.Game, error) {
	games := []models.Game{}
	err := s.db.WithContext(ctx).
		Scopes(searchScope(q)).
		Order("id").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search games: %w", err)
	}
	return games, nil
}

// searchScope applies the optional predicates in order, ANDed. An id list
// short-circuits the rest.
func searchScope(q models.GameQuery) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if q.IDs != nil {
			return tx.Where("id IN ?", q.IDs)
		}
		if q.Status != nil {
			tx = tx.Where("status = ?", *q.Status)
		}
		if q.Name != nil {
			tx = tx.Where("name = ?", *q.Name)
		}
		return tx
	}
}

func findGame(tx *gorm.DB, gameID int64) (*models.Game, error) {
	game := &models.Game{}
	err := tx.First(game, gameID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("game %d: %w", gameID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get game by ID: %w", err)
	}
	return game, nil
}
