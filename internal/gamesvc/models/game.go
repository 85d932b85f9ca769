package models

import (
	"time"
)

// Status is the lifecycle state of a game.
type Status string

const (
	StatusNew      Status = "NEW"
	StatusFinished Status = "FINISHED"
	StatusDropped  Status = "DROPPED"
)

// StatusOneOf lists the accepted values in validator oneof syntax.
const StatusOneOf = "NEW FINISHED DROPPED"

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusFinished, StatusDropped:
		return true
	}
	return false
}

type Game struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"not null;index"`
	Status    Status    `gorm:"type:varchar(16);not null;index"`
	CreatedAt time.Time // set by gorm on insert
	UpdatedAt time.Time // set by gorm on every save
}

// SearchFilter narrows a game search. Nil fields are not applied.
type SearchFilter struct {
	Status     *Status
	Name       *string
	PlayerName *string
}

// GameQuery is the store-level form of a search. When IDs is non-nil only
// those ids match and Status and Name are ignored.
type GameQuery struct {
	IDs    []int64
	Status *Status
	Name   *string
}
