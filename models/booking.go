package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusApproved  BookingStatus = "Approved"
	StatusCompleted BookingStatus = "Completed"
	StatusRejected  BookingStatus = "Rejected"
)

// Valid reports whether s is one of the four booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	// ServiceName is the legacy single-service label; ServiceNames carries
	// multi-service bookings. Both are snapshots of catalog names, and
	// ServiceIDs is informational only: catalog edits and deletes never
	// touch existing bookings.
	ServiceName  string     `gorm:"not null" json:"serviceName"`
	ServiceNames StringList `gorm:"type:jsonb" json:"serviceNames"`
	ServiceIDs   StringList `gorm:"type:jsonb" json:"serviceIds"`

	Date time.Time `gorm:"not null" json:"date"`
	Time string    `gorm:"not null" json:"time"`

	VehicleMake  string `gorm:"not null" json:"vehicleMake"`
	VehicleModel string `gorm:"not null" json:"vehicleModel"`
	VehicleYear  string `gorm:"not null" json:"vehicleYear"`
	LicensePlate string `gorm:"not null" json:"licensePlate"`

	CustomerName string `gorm:"not null" json:"customerName"`
	Email        string `gorm:"index;not null" json:"email"`
	Phone        string `gorm:"not null" json:"phone"`
	Address      string `gorm:"not null" json:"address"`
	Notes        string `json:"notes"`

	Status BookingStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
