package models

import "time"

type Pet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint   `gorm:"index" json:"customer_id"`
	Name       string `gorm:"size:100;not null" json:"name"`
	Breed      string `gorm:"size:100" json:"breed"`
	Size       string `gorm:"size:20" json:"size"`
	Notes      string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
