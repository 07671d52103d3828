package api

import (
	"errors"
	"net/http"

	reqdto "snoozetax/internal/handler/dto/request"
	resdto "snoozetax/internal/handler/dto/response"
	"snoozetax/internal/handler/middleware"
	"snoozetax/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AlarmHandler struct {
	alarmUseCase  usecase.AlarmUseCase
	snoozeUseCase usecase.SnoozeUseCase
}

func NewAlarmHandler(alarmUseCase usecase.AlarmUseCase, snoozeUseCase usecase.SnoozeUseCase) *AlarmHandler {
	return &AlarmHandler{
		alarmUseCase:  alarmUseCase,
		snoozeUseCase: snoozeUseCase,
	}
}

// @Summary Create alarm
// @Description Create an alarm and arm its trigger burst
// @Tags alarms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAlarmRequest true "Alarm"
// @Success 201 {object} resdto.AlarmResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /alarms [post]
func (h *AlarmHandler) CreateAlarm(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.CreateAlarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rm, status, err := h.alarmUseCase.CreateAlarm(c.Request.Context(), req.ToInput(), userID)
	if err != nil {
		h.respondAlarmError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAlarmRM(rm, status))
}

// @Summary List alarms
// @Description List the authenticated user's alarms ordered by ring time
// @Tags alarms
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.AlarmResponse
// @Failure 401 {object} map[string]string
// @Router /alarms [get]
func (h *AlarmHandler) ListAlarms(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	rms, err := h.alarmUseCase.ListAlarms(c.Request.Context(), userID)
	if err != nil {
		h.respondAlarmError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAlarmRMs(rms))
}

// @Summary Get alarm
// @Tags alarms
// @Security BearerAuth
// @Produce json
// @Param id path string true "Alarm ID"
// @Success 200 {object} resdto.AlarmResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /alarms/{id} [get]
func (h *AlarmHandler) GetAlarm(c *gin.Context) {
	userID, alarmID, ok := h.authAndID(c)
	if !ok {
		return
	}

	rm, err := h.alarmUseCase.GetAlarm(c.Request.Context(), alarmID, userID)
	if err != nil {
		h.respondAlarmError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAlarmRM(rm, ""))
}

// @Summary Update alarm
// @Description Replace the alarm configuration and re-arm its burst
// @Tags alarms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Alarm ID"
// @Param request body reqdto.UpdateAlarmRequest true "Alarm"
// @Success 200 {object} resdto.AlarmResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /alarms/{id} [put]
func (h *AlarmHandler) UpdateAlarm(c *gin.Context) {
	userID, alarmID, ok := h.authAndID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateAlarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rm, status, err := h.alarmUseCase.UpdateAlarm(c.Request.Context(), alarmID, req.ToInput(), userID)
	if err != nil {
		h.respondAlarmError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAlarmRM(rm, status))
}

// @Summary Toggle alarm
// @Description Activate or deactivate the alarm; deactivation cancels the burst
// @Tags alarms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Alarm ID"
// @Param request body reqdto.ToggleAlarmRequest true "Toggle"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /alarms/{id}/toggle [patch]
func (h *AlarmHandler) ToggleAlarm(c *gin.Context) {
	userID, alarmID, ok := h.authAndID(c)
	if !ok {
		return
	}

	var req reqdto.ToggleAlarmRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	status, err := h.alarmUseCase.ToggleActive(c.Request.Context(), alarmID, *req.IsActive, userID)
	if err != nil {
		h.respondAlarmError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scheduling": string(status)})
}

// @Summary Delete alarm
// @Tags alarms
// @Security BearerAuth
// @Param id path string true "Alarm ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /alarms/{id} [delete]
func (h *AlarmHandler) DeleteAlarm(c *gin.Context) {
	userID, alarmID, ok := h.authAndID(c)
	if !ok {
		return
	}

	if err := h.alarmUseCase.DeleteAlarm(c.Request.Context(), alarmID, userID); err != nil {
		h.respondAlarmError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Snooze alarm
// @Description Charge the snooze penalty and push the ring out by the offset
// @Tags alarms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Alarm ID"
// @Param request body reqdto.SnoozeRequest false "Snooze options"
// @Success 200 {object} resdto.SnoozeResponse
// @Failure 404 {object} map[string]string
// @Router /alarms/{id}/snooze [post]
func (h *AlarmHandler) SnoozeAlarm(c *gin.Context) {
	userID, alarmID, ok := h.authAndID(c)
	if !ok {
		return
	}

	var req reqdto.SnoozeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	outcome, err := h.snoozeUseCase.Snooze(c.Request.Context(), usecase.SnoozeInput{
		AlarmID:       alarmID,
		UserID:        userID,
		OffsetMinutes: req.OffsetMinutes,
	})
	if err != nil {
		h.respondAlarmError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.SnoozeResponse{
		SnoozedUntil:    outcome.SnoozedUntil,
		PenaltyCents:    outcome.PenaltyCents,
		TotalSnoozes:    outcome.Stats.TotalSnoozes(),
		TotalLostCents:  outcome.Stats.TotalLostCents(),
		DisciplineScore: outcome.Stats.DisciplineScore(),
		Scheduling:      string(outcome.Scheduling),
	})
}

// @Summary Dismiss alarm
// @Description Record a wake-up; one-shot alarms deactivate, repeating re-arm
// @Tags alarms
// @Security BearerAuth
// @Produce json
// @Param id path string true "Alarm ID"
// @Success 200 {object} resdto.DismissResponse
// @Failure 404 {object} map[string]string
// @Router /alarms/{id}/dismiss [post]
func (h *AlarmHandler) DismissAlarm(c *gin.Context) {
	userID, alarmID, ok := h.authAndID(c)
	if !ok {
		return
	}

	outcome, err := h.snoozeUseCase.Dismiss(c.Request.Context(), alarmID, userID)
	if err != nil {
		h.respondAlarmError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.DismissResponse{
		Deactivated:     outcome.Deactivated,
		DisciplineScore: outcome.Stats.DisciplineScore(),
		Scheduling:      string(outcome.Scheduling),
	})
}

func (h *AlarmHandler) authAndID(c *gin.Context) (userID, alarmID uuid.UUID, ok bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, uuid.Nil, false
	}

	alarmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid alarm ID"})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, alarmID, true
}

func (h *AlarmHandler) respondAlarmError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrAlarmNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Alarm not found"})
	case errors.Is(err, usecase.ErrAlarmNotOwned):
		// Hide other users' alarms rather than acknowledging them.
		c.JSON(http.StatusNotFound, gin.H{"error": "Alarm not found"})
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, usecase.ErrInvalidAlarmInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
