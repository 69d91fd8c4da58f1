package models

import "time"

// Base is the base model for all entities.
type Base struct {
	ID        uint      `json:"id"      gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created"`
}
