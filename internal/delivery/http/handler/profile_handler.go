package handler

import (
	"context"
	"net/http"

	"github.com/gdugdh24/healthlog-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

type ProfileService interface {
	GetMyProfile(ctx context.Context, userID int) (*profile.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int, req *profile.UpdateProfileRequest) (*profile.ProfileResponse, error)
}

type ProfileHandler struct {
	profileService ProfileService
}

func NewProfileHandler(profileService ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetMyProfile handles GET /profile/me
// @Summary Get my profile
// @Description Get current user's profile with BMI and BMI status
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} profile.ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateMyProfile handles PUT /profile/me
// @Summary Update my profile
// @Description Update names, email and body measurements
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.UpdateProfileRequest true "Profile update data"
// @Success 200 {object} profile.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, resp)
}
