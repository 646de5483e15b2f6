package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
	"github.com/gdugdh24/healthlog-backend/internal/usecase/healthlog"
	"github.com/gin-gonic/gin"
)

type HealthLogService interface {
	Create(ctx context.Context, userID int, in *healthlog.HealthLogInput) (*domain.HealthLog, error)
	Update(ctx context.Context, userID, logID int, in *healthlog.HealthLogInput) (*domain.HealthLog, error)
	Get(ctx context.Context, userID, logID int) (*domain.HealthLog, error)
	Delete(ctx context.Context, userID, logID int) error
	List(ctx context.Context, userID, limit, offset int) ([]*domain.HealthLog, error)
}

type HealthLogHandler struct {
	logService HealthLogService
}

func NewHealthLogHandler(logService HealthLogService) *HealthLogHandler {
	return &HealthLogHandler{
		logService: logService,
	}
}

// logIDParam parses :id; on failure it writes a 400 and returns false.
func logIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid log id"})
		return 0, false
	}
	return id, true
}

// CreateLog handles POST /logs
// @Summary Create health log
// @Description Save an entry; the response carries its health score and suggestion
// @Tags logs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body healthlog.HealthLogInput true "Entry data"
// @Success 201 {object} domain.HealthLog
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /logs [post]
func (h *HealthLogHandler) CreateLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req healthlog.HealthLogInput
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.logService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to create health log")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListLogs handles GET /logs?limit=&offset=
// @Summary List health logs
// @Tags logs
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} domain.HealthLog
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /logs [get]
func (h *HealthLogHandler) ListLogs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	logs, err := h.logService.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondError(c, err, "failed to list health logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// GetLog handles GET /logs/:id
// @Summary Get health log
// @Tags logs
// @Security BearerAuth
// @Produce json
// @Param id path int true "Log ID"
// @Success 200 {object} domain.HealthLog
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /logs/{id} [get]
func (h *HealthLogHandler) GetLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	logID, ok := logIDParam(c)
	if !ok {
		return
	}

	entry, err := h.logService.Get(c.Request.Context(), userID, logID)
	if err != nil {
		respondError(c, err, "failed to get health log")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateLog handles PUT /logs/:id
// @Summary Update health log
// @Description Rewrite an entry; it is rescored with the current BMI status
// @Tags logs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Log ID"
// @Param request body healthlog.HealthLogInput true "Entry data"
// @Success 200 {object} domain.HealthLog
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /logs/{id} [put]
func (h *HealthLogHandler) UpdateLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	logID, ok := logIDParam(c)
	if !ok {
		return
	}

	var req healthlog.HealthLogInput
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.logService.Update(c.Request.Context(), userID, logID, &req)
	if err != nil {
		respondError(c, err, "failed to update health log")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteLog handles DELETE /logs/:id
// @Summary Delete health log
// @Tags logs
// @Security BearerAuth
// @Produce json
// @Param id path int true "Log ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /logs/{id} [delete]
func (h *HealthLogHandler) DeleteLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	logID, ok := logIDParam(c)
	if !ok {
		return
	}

	if err := h.logService.Delete(c.Request.Context(), userID, logID); err != nil {
		respondError(c, err, "failed to delete health log")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "health log deleted"})
}
