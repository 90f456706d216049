package controllers

import (
	"net/http"

	"autocare-backend/config"
	"autocare-backend/services"
	"autocare-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns the booking counters for the admin dashboard
func GetDashboardStats(c *gin.Context) {
	stats, err := services.NewStatsService(config.DB).DashboardStats()
	if err != nil {
		utils.RespondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
