package handler

import (
	"context"
	"net/http"

	"github.com/gdugdh24/healthlog-backend/internal/usecase/coach"
	"github.com/gin-gonic/gin"
)

type CoachService interface {
	GetNarrative(ctx context.Context, userID int) (*coach.CoachResponse, error)
}

type CoachHandler struct {
	coachService CoachService
}

func NewCoachHandler(coachService CoachService) *CoachHandler {
	return &CoachHandler{
		coachService: coachService,
	}
}

// GetAnalysis handles GET /coach
// @Summary AI coach analysis
// @Description Narrative over the 7 newest entries. Model failures are returned in the error field with status 200.
// @Tags coach
// @Security BearerAuth
// @Produce json
// @Success 200 {object} coach.CoachResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /coach [get]
func (h *CoachHandler) GetAnalysis(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := h.coachService.GetNarrative(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to load coach analysis")
		return
	}

	c.JSON(http.StatusOK, resp)
}
