package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is a JSON-encoded list column (jsonb on Postgres).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("type assertion to []byte failed")
}

type Service struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	// Price and duration are display strings ("$49.99", "30 mins"),
	// snapshotted into bookings by name. Not used for arithmetic.
	Price    string `gorm:"not null" json:"price"`
	Duration string `gorm:"not null" json:"duration"`
	IconName string `gorm:"default:'Wrench'" json:"iconName"`

	LongDescription string     `gorm:"type:text;not null" json:"longDescription"`
	Included        StringList `gorm:"type:jsonb" json:"included"`
	Benefits        StringList `gorm:"type:jsonb" json:"benefits"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
