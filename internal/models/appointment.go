package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Lista de serviços gravada como JSON (nomes vindos do catálogo do POS)
type ServiceList []string

func (s ServiceList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *ServiceList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("services: unsupported column type")
	}
}

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	StaffID uint  `gorm:"index:idx_appointments_staff_date" json:"staff_id"`
	Staff   Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	PetID uint `json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"pet"`

	Services ServiceList `gorm:"type:text" json:"services"`

	// Data e hora locais do salão: "2006-01-02" + "HH:MM"
	Date        string `gorm:"size:10;index:idx_appointments_staff_date" json:"date"`
	StartTime   string `gorm:"size:5" json:"start_time"`
	DurationMin int    `json:"duration_min"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Preenchido somente enquanto a ordem externa existir no POS
	PosOrderID *string `gorm:"size:64" json:"pos_order_id"`

	TotalCents int64  `json:"total_cents"`
	Notes      string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
