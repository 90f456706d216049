// controllers/service.go
package controllers

import (
	"net/http"

	"autocare-backend/config"
	"autocare-backend/services"
	"autocare-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateService creates a new catalog entry
func CreateService(c *gin.Context) {
	var input services.CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := services.NewCatalogService(config.DB).Create(input)
	if err != nil {
		respondServiceError(c, err, "Service not found")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves the full service catalog
func GetServices(c *gin.Context) {
	list, err := services.NewCatalogService(config.DB).List()
	if err != nil {
		utils.RespondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	service, err := services.NewCatalogService(config.DB).Get(serviceUUID)
	if err != nil {
		respondServiceError(c, err, "Service not found")
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService applies a partial update; absent fields keep prior values
func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input services.UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := services.NewCatalogService(config.DB).Update(serviceUUID, input)
	if err != nil {
		respondServiceError(c, err, "Service not found")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes a catalog entry. Existing bookings keep their
// snapshotted service names.
func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	if err := services.NewCatalogService(config.DB).Delete(serviceUUID); err != nil {
		respondServiceError(c, err, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service removed"})
}
