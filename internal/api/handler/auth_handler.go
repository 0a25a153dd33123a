package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/applytrack/applytrack-be/internal/api/domain"
	"github.com/applytrack/applytrack-be/internal/api/dto"
	"github.com/applytrack/applytrack-be/internal/api/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Signup handles POST /api/v1/auth/signup
// Registers a new user with a bcrypt-hashed password
func (h *AuthHandler) Signup(c *gin.Context) {
	h.logger.Info("Signup called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
	)

	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid signup request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"message": "All fields are required",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		h.logger.Error("Failed to hash password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"message": "Server error",
		})
		return
	}

	now := time.Now()
	user := model.User{
		UserID:       uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.users.CreateUser(c.Request.Context(), &user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{
				"ok":      false,
				"message": "Email already registered",
			})
			return
		}

		h.logger.Error("Failed to create user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":      true,
		"message": "User created successfully",
	})
}

// Login handles POST /api/v1/auth/login
// Unknown email and wrong password return the same generic failure so the
// response does not reveal which one was wrong
func (h *AuthHandler) Login(c *gin.Context) {
	h.logger.Info("Login called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
	)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid login request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"message": "Email and password are required",
		})
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"ok":      false,
				"message": "Invalid email or password",
			})
			return
		}

		h.logger.Error("Failed to look up user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"message": "Server error",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"ok":      false,
			"message": "Invalid email or password",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"user": dto.UserDTO{
			Name:  user.Name,
			Email: user.Email,
		},
	})
}
