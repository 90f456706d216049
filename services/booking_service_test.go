package services_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"autocare-backend/models"
	"autocare-backend/services"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func memdb(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&models.Admin{}, &models.Service{}, &models.Booking{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func validBookingInput() services.CreateBookingInput {
	return services.CreateBookingInput{
		ServiceName:  "Oil Change",
		ServiceNames: []string{"Oil Change", "Tire Rotation"},
		Date:         "2026-09-15",
		Time:         "09:00 AM",
		VehicleMake:  "Toyota",
		VehicleModel: "Corolla",
		VehicleYear:  "2018",
		LicensePlate: "ABC-1234",
		CustomerName: "Jane Smith",
		Email:        "jane@example.com",
		Phone:        "+15550001111",
		Address:      "42 Elm Street",
		Notes:        "Squeaky brakes",
	}
}

func TestCreateBooking_ForcesPendingStatus(t *testing.T) {
	svc := services.NewBookingService(memdb(t))

	booking, err := svc.Create(validBookingInput())
	if err != nil {
		t.Fatal(err)
	}
	if booking.Status != models.StatusPending {
		t.Fatalf("want status Pending, got %q", booking.Status)
	}
	if booking.ID == uuid.Nil {
		t.Fatal("want generated id")
	}
	if booking.CreatedAt.IsZero() || booking.UpdatedAt.IsZero() {
		t.Fatal("want timestamps populated")
	}
}

func TestCreateBooking_MissingMandatoryField(t *testing.T) {
	db := memdb(t)
	svc := services.NewBookingService(db)

	input := validBookingInput()
	input.LicensePlate = ""

	_, err := svc.Create(input)
	var ve *services.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 0 {
		t.Fatalf("want no record persisted, got %d", count)
	}
}

func TestCreateBooking_InvalidDate(t *testing.T) {
	svc := services.NewBookingService(memdb(t))

	input := validBookingInput()
	input.Date = "next tuesday"

	_, err := svc.Create(input)
	var ve *services.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestCreateBooking_RoundTrip(t *testing.T) {
	svc := services.NewBookingService(memdb(t))

	input := validBookingInput()
	created, err := svc.Create(input)
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ServiceName != input.ServiceName ||
		got.VehicleMake != input.VehicleMake ||
		got.VehicleModel != input.VehicleModel ||
		got.VehicleYear != input.VehicleYear ||
		got.LicensePlate != input.LicensePlate ||
		got.CustomerName != input.CustomerName ||
		got.Email != input.Email ||
		got.Phone != input.Phone ||
		got.Address != input.Address ||
		got.Notes != input.Notes {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if len(got.ServiceNames) != 2 || got.ServiceNames[0] != "Oil Change" {
		t.Fatalf("want service names preserved, got %v", got.ServiceNames)
	}
}

func TestGetBooking_NotFound(t *testing.T) {
	svc := services.NewBookingService(memdb(t))

	_, err := svc.Get(uuid.New())
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestListBookings_NewestFirst(t *testing.T) {
	db := memdb(t)
	svc := services.NewBookingService(db)

	older, err := svc.Create(validBookingInput())
	if err != nil {
		t.Fatal(err)
	}
	newer, err := svc.Create(validBookingInput())
	if err != nil {
		t.Fatal(err)
	}
	// Push the first booking a day into the past to make the order unambiguous
	yesterday := time.Now().AddDate(0, 0, -1)
	if err := db.Model(&models.Booking{}).Where("id = ?", older.ID).
		Update("created_at", yesterday).Error; err != nil {
		t.Fatal(err)
	}

	bookings, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(bookings) != 2 {
		t.Fatalf("want 2 bookings, got %d", len(bookings))
	}
	if bookings[0].ID != newer.ID || bookings[1].ID != older.ID {
		t.Fatalf("want newest first, got %v then %v", bookings[0].ID, bookings[1].ID)
	}
}

func TestListBookingsByEmail(t *testing.T) {
	svc := services.NewBookingService(memdb(t))

	first := validBookingInput()
	if _, err := svc.Create(first); err != nil {
		t.Fatal(err)
	}
	other := validBookingInput()
	other.Email = "someone.else@example.com"
	if _, err := svc.Create(other); err != nil {
		t.Fatal(err)
	}

	matched, err := svc.ListByEmail("jane@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 1 || matched[0].Email != "jane@example.com" {
		t.Fatalf("want exactly the matching booking, got %+v", matched)
	}

	// No match is an empty list, not an error
	none, err := svc.ListByEmail("nobody@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Fatalf("want empty list, got %d", len(none))
	}

	// Matching is case-sensitive as stored
	upper, err := svc.ListByEmail("JANE@EXAMPLE.COM")
	if err != nil {
		t.Fatal(err)
	}
	if len(upper) != 0 {
		t.Fatalf("want case-sensitive match, got %d", len(upper))
	}
}

func TestUpdateStatus_InvalidValue(t *testing.T) {
	svc := services.NewBookingService(memdb(t))

	booking, err := svc.Create(validBookingInput())
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.UpdateStatus(booking.ID, "Cancelled")
	var ve *services.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}

	got, err := svc.Get(booking.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.StatusPending {
		t.Fatalf("stored status must be unchanged, got %q", got.Status)
	}
}

func TestUpdateStatus_AnyTransitionAllowed(t *testing.T) {
	svc := services.NewBookingService(memdb(t))

	booking, err := svc.Create(validBookingInput())
	if err != nil {
		t.Fatal(err)
	}

	// There is no transition graph: Completed may be re-opened to Pending.
	sequence := []models.BookingStatus{
		models.StatusApproved,
		models.StatusCompleted,
		models.StatusPending,
		models.StatusRejected,
	}
	for _, status := range sequence {
		updated, err := svc.UpdateStatus(booking.ID, status)
		if err != nil {
			t.Fatalf("transition to %q: %v", status, err)
		}
		if updated.Status != status {
			t.Fatalf("want %q, got %q", status, updated.Status)
		}
	}

	got, err := svc.Get(booking.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.StatusRejected {
		t.Fatalf("last write must win, got %q", got.Status)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := services.NewBookingService(memdb(t))

	_, err := svc.UpdateStatus(uuid.New(), models.StatusApproved)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDeleteBooking(t *testing.T) {
	svc := services.NewBookingService(memdb(t))

	booking, err := svc.Create(validBookingInput())
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(booking.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(booking.ID); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(uuid.New()); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound for unknown id, got %v", err)
	}
}
