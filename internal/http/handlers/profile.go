package handlers

import (
	"net/http"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/profile
func GetProfile(c *gin.Context) {
	rc, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	profiles := repositories.ProfileRepository{DB: intconfig.DB}
	profile, err := profiles.GetOrCreate(c.Request.Context(), rc.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to load profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

type updateProfileRequest struct {
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth"`
}

// PUT /api/profile
func UpdateProfile(c *gin.Context) {
	rc, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	var req updateProfileRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if req.DateOfBirth != "" {
		if _, err := utils.ParseDate(req.DateOfBirth); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "dateOfBirth must be YYYY-MM-DD")
			return
		}
	}

	ctx := c.Request.Context()
	profiles := repositories.ProfileRepository{DB: intconfig.DB}
	if _, err := profiles.GetOrCreate(ctx, rc.UserID); err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to load profile")
		return
	}
	if err := profiles.Update(ctx, rc.UserID, models.UserProfile{
		Phone:       utils.TrimOrEmpty(req.Phone),
		Address:     utils.TrimOrEmpty(req.Address),
		DateOfBirth: req.DateOfBirth,
	}); err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to update profile")
		return
	}

	profile, err := profiles.GetOrCreate(ctx, rc.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to load profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}
