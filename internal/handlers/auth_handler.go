package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/lily-salon/internal/config"
	"github.com/BruksfildServices01/lily-salon/internal/dto"
	"github.com/BruksfildServices01/lily-salon/internal/models"
)

const tokenTTL = 24 * time.Hour

const invalidCredentials = "Invalid username or password"

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	log    *zap.Logger
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, log: log}
}

// --------- Handlers ---------

// Login answers every credential problem with the same 400 body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidCredentials})
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidCredentials})
		return
	}

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("username = ?", username).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalidCredentials})
			return
		}
		h.log.Error("login lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidCredentials})
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		h.log.Error("sign token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  user.DTO(),
	})
}

// Logout exists for clients that call it; tokens are stateless and simply
// expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  now.Add(tokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
