package services

import (
	"strings"

	"autocare-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateServiceInput struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           string   `json:"price"`
	Duration        string   `json:"duration"`
	IconName        string   `json:"iconName"`
	LongDescription string   `json:"longDescription"`
	Included        []string `json:"included"`
	Benefits        []string `json:"benefits"`
}

// UpdateServiceInput carries partial updates. Empty text fields keep the
// stored value; list fields overwrite only when present in the request.
type UpdateServiceInput struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           string    `json:"price"`
	Duration        string    `json:"duration"`
	IconName        string    `json:"iconName"`
	LongDescription string    `json:"longDescription"`
	Included        *[]string `json:"included"`
	Benefits        *[]string `json:"benefits"`
}

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) Create(input CreateServiceInput) (*models.Service, error) {
	required := []struct {
		field, value string
	}{
		{"name", input.Name},
		{"description", input.Description},
		{"price", input.Price},
		{"duration", input.Duration},
		{"longDescription", input.LongDescription},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, newValidationError("%s is required", r.field)
		}
	}

	service := models.Service{
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price,
		Duration:        input.Duration,
		IconName:        input.IconName,
		LongDescription: input.LongDescription,
		Included:        models.StringList(input.Included),
		Benefits:        models.StringList(input.Benefits),
	}
	if service.IconName == "" {
		service.IconName = "Wrench"
	}

	if err := s.db.Create(&service).Error; err != nil {
		return nil, err
	}

	return &service, nil
}

func (s *CatalogService) Get(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	if err := s.db.First(&service, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &service, nil
}

func (s *CatalogService) List() ([]models.Service, error) {
	var services []models.Service
	if err := s.db.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (s *CatalogService) Update(id uuid.UUID, input UpdateServiceInput) (*models.Service, error) {
	var service models.Service
	if err := s.db.First(&service, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}

	if input.Name != "" {
		service.Name = input.Name
	}
	if input.Description != "" {
		service.Description = input.Description
	}
	if input.Price != "" {
		service.Price = input.Price
	}
	if input.Duration != "" {
		service.Duration = input.Duration
	}
	if input.IconName != "" {
		service.IconName = input.IconName
	}
	if input.LongDescription != "" {
		service.LongDescription = input.LongDescription
	}
	if input.Included != nil {
		service.Included = models.StringList(*input.Included)
	}
	if input.Benefits != nil {
		service.Benefits = models.StringList(*input.Benefits)
	}

	if err := s.db.Save(&service).Error; err != nil {
		return nil, err
	}

	return &service, nil
}

func (s *CatalogService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Service{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
