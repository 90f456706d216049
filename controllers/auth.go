package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"autocare-backend/config"
	"autocare-backend/models"
	"autocare-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new admin account and issues a token
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing models.Admin
	result := config.DB.Where("username = ?", input.Username).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Admin already exists")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondServerError(c, result.Error)
		return
	}

	admin := models.Admin{
		Username: input.Username,
		Password: input.Password, // Hashed in BeforeCreate hook
		Role:     "admin",
	}

	if err := config.DB.Create(&admin).Error; err != nil {
		utils.RespondServerError(c, err)
		return
	}

	token, err := utils.GenerateToken(admin.ID.String(), admin.Role)
	if err != nil {
		utils.RespondServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
		"role":     admin.Role,
		"token":    token,
	})
}

// Login validates admin credentials and issues a token
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	username := strings.TrimSpace(input.Username)

	var admin models.Admin
	result := config.DB.Where("username = ?", username).First(&admin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid username or password")
		} else {
			utils.RespondServerError(c, result.Error)
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, admin.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := utils.GenerateToken(admin.ID.String(), admin.Role)
	if err != nil {
		utils.RespondServerError(c, err)
		return
	}

	now := time.Now()
	config.DB.Model(&admin).Update("last_login", &now)

	c.JSON(http.StatusOK, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
		"role":     admin.Role,
		"token":    token,
	})
}
