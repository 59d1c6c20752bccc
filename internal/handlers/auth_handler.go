package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fitreni/coach-scheduler/internal/config"
	"github.com/fitreni/coach-scheduler/internal/models"
	"github.com/fitreni/coach-scheduler/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	StudioName    string `json:"studio_name" binding:"required"`
	StudioSlug    string `json:"studio_slug" binding:"required"`
	StudioPhone   string `json:"studio_phone"`
	StudioAddress string `json:"studio_address"`
	StudioLocale  string `json:"studio_locale"`

	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.StudioSlug))

	var count int64
	h.db.Model(&models.Studio{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug_already_exists"})
		return
	}

	if !validators.IsEmailDomainValid(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
		return
	}

	locale := req.StudioLocale
	if locale == "" {
		locale = "hu"
	}

	shop := models.Studio{
		Name:          req.StudioName,
		Slug:          slug,
		Phone:         req.StudioPhone,
		Address:       req.StudioAddress,
		DefaultLocale: locale,
	}

	if err := h.db.Create(&shop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_studio"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	coach := models.Coach{
		StudioID:     shop.ID,
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         "owner",
	}

	if err := h.db.Create(&coach).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_coach"})
		return
	}

	token, err := h.signToken(&coach)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_sign_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"coach": gin.H{
			"id":        coach.ID,
			"name":      coach.Name,
			"email":     coach.Email,
			"studio_id": coach.StudioID,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var coach models.Coach
	if err := h.db.Where("email = ?", email).First(&coach).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(coach.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.signToken(&coach)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_sign_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AuthHandler) signToken(coach *models.Coach) (string, error) {
	claims := jwt.MapClaims{
		"sub":      float64(coach.ID),
		"studioId": float64(coach.StudioID),
		"role":     coach.Role,
		"exp":      time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
