package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gorent/backend-rental/booking"
	"github.com/gorent/backend-rental/config"
	"github.com/gorent/backend-rental/middleware"
	"github.com/gorent/backend-rental/models"
	"github.com/gorent/backend-rental/store"
)

type AuthHandler struct {
	users  store.UserStore
	config *config.Config
}

func NewAuthHandler(users store.UserStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		users:  users,
		config: cfg,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Reject duplicate emails
	if _, err := h.users.GetUserByEmail(c.Request.Context(), email); err == nil {
		c.JSON(http.StatusConflict, models.Response{
			Success: false,
			Error:   "An account with this email already exists",
		})
		return
	} else {
		var nf *booking.NotFoundError
		if !errors.As(err, &nf) {
			fmt.Printf("[Register] Lookup error: %v\n", err)
			c.JSON(http.StatusInternalServerError, models.Response{
				Success: false,
				Error:   "Database query failed",
			})
			return
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to process password",
		})
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), &models.User{
		ID:           uuid.NewString(),
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         "customer",
	})
	if err != nil {
		fmt.Printf("[Register] Insert error: %v\n", err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to create account",
		})
		return
	}

	token, err := h.generateToken(*user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Account created but failed to generate token",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Registration successful",
		Data: models.LoginResponse{
			Token: token,
			User:  user,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		var nf *booking.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Error:   "Invalid email or password",
			})
			return
		}
		fmt.Printf("[Login] Lookup error: %v\n", err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Database query failed",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Invalid email or password",
		})
		return
	}

	token, err := h.generateToken(*user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data: models.LoginResponse{
			Token: token,
			User:  user,
		},
	})
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, _ := c.Get("user_id")

	user, err := h.users.GetUserByID(c.Request.Context(), userID.(string))
	if err != nil {
		var nf *booking.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "User not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Database query failed",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    user,
	})
}

func (h *AuthHandler) generateToken(user models.User) (string, error) {
	claims := middleware.Claims{
		UserID:   user.ID,
		Email:    user.Email,
		Role:     user.Role,
		FullName: user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
