package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type authUser struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func mintToken(userID int64, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(jwtSecret)
}

type loginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	users := repositories.UserRepository{DB: intconfig.DB}
	user, err := users.GetByLogin(c.Request.Context(), req.Login)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(c, http.StatusUnauthorized, "unauthorized", "wrong login or password")
			return
		}
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "unauthorized", "wrong login or password")
		return
	}

	token, err := mintToken(user.ID, user.Role)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to create token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": authUser{
			ID:       user.ID,
			Name:     user.Name,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
	})
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	ctx := c.Request.Context()

	users := repositories.UserRepository{DB: intconfig.DB}
	exists, err := users.Exists(ctx, req.Email, req.Username)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
		return
	}
	if exists {
		respondError(c, http.StatusConflict, "conflict", "email or username already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to hash password")
		return
	}

	id, err := users.Create(ctx, models.User{
		Name:         utils.NormalizeSpace(req.Name),
		Username:     utils.TrimOrEmpty(req.Username),
		Email:        utils.TrimOrEmpty(req.Email),
		PasswordHash: string(hash),
		Role:         "user",
	})
	if err != nil {
		if repositories.IsDuplicateEntry(err) {
			respondError(c, http.StatusConflict, "conflict", "email or username already registered")
			return
		}
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to save user")
		return
	}

	// profile is created up front so GET /profile never 404s
	profiles := repositories.ProfileRepository{DB: intconfig.DB}
	if _, err := profiles.GetOrCreate(ctx, id); err != nil {
		utils.LogEvent("", "auth", "register", "profile create failed: "+err.Error())
	}

	token, err := mintToken(id, "user")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to create token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user": authUser{
			ID:       id,
			Name:     req.Name,
			Username: req.Username,
			Email:    req.Email,
			Role:     "user",
		},
	})
}
