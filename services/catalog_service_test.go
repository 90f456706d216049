package services_test

import (
	"errors"
	"testing"

	"autocare-backend/services"

	"github.com/google/uuid"
)

func validServiceInput() services.CreateServiceInput {
	return services.CreateServiceInput{
		Name:            "Oil Change",
		Description:     "Complete oil and filter change",
		Price:           "$49.99",
		Duration:        "30 mins",
		IconName:        "Droplets",
		LongDescription: "Premium oil, a new filter, and a thorough inspection.",
		Included:        []string{"Up to 5 quarts of premium oil", "New oil filter installation"},
		Benefits:        []string{"Extended engine life"},
	}
}

func TestCreateService_MissingMandatoryField(t *testing.T) {
	svc := services.NewCatalogService(memdb(t))

	input := validServiceInput()
	input.Price = ""

	_, err := svc.Create(input)
	var ve *services.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestCreateService_DefaultIcon(t *testing.T) {
	svc := services.NewCatalogService(memdb(t))

	input := validServiceInput()
	input.IconName = ""

	created, err := svc.Create(input)
	if err != nil {
		t.Fatal(err)
	}
	if created.IconName != "Wrench" {
		t.Fatalf("want fallback icon Wrench, got %q", created.IconName)
	}
}

func TestUpdateService_PartialUpdateKeepsPriorValues(t *testing.T) {
	svc := services.NewCatalogService(memdb(t))

	created, err := svc.Create(validServiceInput())
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.Update(created.ID, services.UpdateServiceInput{Price: "$59.99"})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Price != "$59.99" {
		t.Fatalf("want updated price, got %q", updated.Price)
	}
	if updated.Name != created.Name ||
		updated.Description != created.Description ||
		updated.Duration != created.Duration ||
		updated.IconName != created.IconName ||
		updated.LongDescription != created.LongDescription {
		t.Fatalf("other fields must keep prior values: %+v", updated)
	}
	if len(updated.Included) != len(created.Included) {
		t.Fatalf("included list must keep prior value, got %v", updated.Included)
	}
}

func TestUpdateService_ListOverwrite(t *testing.T) {
	svc := services.NewCatalogService(memdb(t))

	created, err := svc.Create(validServiceInput())
	if err != nil {
		t.Fatal(err)
	}

	empty := []string{}
	updated, err := svc.Update(created.ID, services.UpdateServiceInput{Included: &empty})
	if err != nil {
		t.Fatal(err)
	}
	if len(updated.Included) != 0 {
		t.Fatalf("present list must overwrite, got %v", updated.Included)
	}
	if len(updated.Benefits) != 1 {
		t.Fatalf("absent list must keep prior value, got %v", updated.Benefits)
	}
}

func TestCatalog_NotFound(t *testing.T) {
	svc := services.NewCatalogService(memdb(t))

	if _, err := svc.Get(uuid.New()); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, err := svc.Update(uuid.New(), services.UpdateServiceInput{Price: "$1"}); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := svc.Delete(uuid.New()); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDeleteService_KeepsExistingBookings(t *testing.T) {
	db := memdb(t)
	catalog := services.NewCatalogService(db)
	bookings := services.NewBookingService(db)

	created, err := catalog.Create(validServiceInput())
	if err != nil {
		t.Fatal(err)
	}

	input := validBookingInput()
	input.ServiceIDs = []string{created.ID.String()}
	booking, err := bookings.Create(input)
	if err != nil {
		t.Fatal(err)
	}

	if err := catalog.Delete(created.ID); err != nil {
		t.Fatal(err)
	}

	// Bookings snapshot service names by value; catalog deletes never cascade
	got, err := bookings.Get(booking.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ServiceName != "Oil Change" {
		t.Fatalf("booking must keep its snapshot, got %q", got.ServiceName)
	}
}
