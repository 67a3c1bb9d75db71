package models

import "time"

type Counter struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Count     int       `gorm:"not null;default:1" json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
