package services

import (
	"strings"
	"time"

	"autocare-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBookingInput is the customer-facing submission. There is no status
// field: new bookings always start out Pending.
type CreateBookingInput struct {
	ServiceName  string   `json:"serviceName"`
	ServiceNames []string `json:"serviceNames"`
	ServiceIDs   []string `json:"serviceIds"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	VehicleMake  string   `json:"vehicleMake"`
	VehicleModel string   `json:"vehicleModel"`
	VehicleYear  string   `json:"vehicleYear"`
	LicensePlate string   `json:"licensePlate"`
	CustomerName string   `json:"customerName"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	Notes        string   `json:"notes"`
}

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

var bookingDateLayouts = []string{"2006-01-02", time.RFC3339}

func parseBookingDate(raw string) (time.Time, error) {
	for _, layout := range bookingDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, newValidationError("invalid date: %q", raw)
}

// Create persists a new booking with status forced to Pending.
func (s *BookingService) Create(input CreateBookingInput) (*models.Booking, error) {
	required := []struct {
		field, value string
	}{
		{"serviceName", input.ServiceName},
		{"date", input.Date},
		{"time", input.Time},
		{"vehicleMake", input.VehicleMake},
		{"vehicleModel", input.VehicleModel},
		{"vehicleYear", input.VehicleYear},
		{"licensePlate", input.LicensePlate},
		{"customerName", input.CustomerName},
		{"email", input.Email},
		{"phone", input.Phone},
		{"address", input.Address},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, newValidationError("%s is required", r.field)
		}
	}

	date, err := parseBookingDate(input.Date)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		ServiceName:  input.ServiceName,
		ServiceNames: models.StringList(input.ServiceNames),
		ServiceIDs:   models.StringList(input.ServiceIDs),
		Date:         date,
		Time:         input.Time,
		VehicleMake:  input.VehicleMake,
		VehicleModel: input.VehicleModel,
		VehicleYear:  input.VehicleYear,
		LicensePlate: input.LicensePlate,
		CustomerName: input.CustomerName,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		Notes:        input.Notes,
		Status:       models.StatusPending,
	}

	if err := s.db.Create(&booking).Error; err != nil {
		return nil, err
	}

	return &booking, nil
}

func (s *BookingService) Get(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &booking, nil
}

// List returns all bookings, newest-created-first.
func (s *BookingService) List() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListByEmail returns the bookings whose email matches exactly, newest
// first. No match is an empty list, not an error.
func (s *BookingService) ListByEmail(email string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Where("email = ?", email).Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus overwrites the booking status. Any status may move to any
// other status; only membership in the four-value set is checked.
func (s *BookingService) UpdateStatus(id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, newValidationError("invalid status: %q", status)
	}

	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}

	booking.Status = status
	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}

	return &booking, nil
}

// Delete removes the booking permanently.
func (s *BookingService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Booking{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
