package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avvvet/playhub-services/internal/apperr"
	"github.com/avvvet/playhub-services/internal/playersvc/models"
	"gorm.io/gorm"
)

type PlayerStore struct {
	db *gorm.DB
}

func NewPlayerStore(db *gorm.DB) *PlayerStore {
	return &PlayerStore{db: db}
}

func (s *PlayerStore) Create(ctx context.Context, player *models.Player) error {
	if err := s.db.WithContext(ctx).Create(player).Error; err != nil {
		return fmt.Errorf("could not create player: %w", err)
	}
	return nil
}

func (s *PlayerStore) GetByID(ctx context.Context, id int64) (*models.Player, error) {
	return findPlayer(s.db.WithContext(ctx), id)
}

func (s *PlayerStore) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := findPlayer(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.Player{}, p.ID).Error; err != nil {
			return fmt.Errorf("could not delete player: %w", err)
		}
		return nil
	})
}

// FindByName returns every player called exactly name, ordered by id.
func (s *PlayerStore) FindByName(ctx context.Context, name string) ([]models.Player, error) {
	players := []models.Player{}
	err := s.db.WithContext(ctx).Where("name = ?", name).Order("id").Find(&players).Error
	if err != nil {
		return nil, fmt.Errorf("could not find players by name: %w", err)
	}
	return players, nil
}

// UpdateGame loads the player, sets its game and saves it in one transaction.
func (s *PlayerStore) UpdateGame(ctx context.Context, id int64, gameID *int64) (*models.Player, error) {
	var player *models.Player
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := findPlayer(tx, id)
		if err != nil {
			return err
		}

		p.GameID = gameID
		if err := tx.Save(p).Error; err != nil {
			return fmt.Errorf("could not update player game: %w", err)
		}
		player = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return player, nil
}

// ClearGame sets game_id to null on every player referencing gameID and
// reports how many rows changed. No matching player is not an error.
func (s *PlayerStore) ClearGame(ctx context.Context, gameID int64) (int64, error) {
	var cleared int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Player{}).
			Where("game_id = ?", gameID).
			Update("game_id", nil)
		if res.Error != nil {
			return fmt.Errorf("could not clear game from players: %w", res.Error)
		}
		cleared = res.RowsAffected
		return nil
	})
	return cleared, err
}

func findPlayer(tx *gorm.DB, id int64) (*models.Player, error) {
	p := &models.Player{}
	if err := tx.First(p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("player %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get player: %w", err)
	}
	return p, nil
}
