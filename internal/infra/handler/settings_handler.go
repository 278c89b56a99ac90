package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/app"
)

type SettingsHandler struct {
	useCase app.SettingsUseCase
}

func NewSettingsHandler(useCase app.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{
		useCase: useCase,
	}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	output, err := h.useCase.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromSettingsOutput(output))
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	slog.Info("handling update settings request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)

		return
	}

	output, err := h.useCase.UpdateSettings(c.Request.Context(), app.UpdateSettingsInput{
		Enabled:            *req.Enabled,
		IntervalMinutes:    req.IntervalMinutes,
		QuietStartHour:     *req.QuietStartHour,
		QuietEndHour:       *req.QuietEndHour,
		Mode:               req.Mode,
		DailyTargetMl:      req.DailyTargetMl,
		QuickActionAmounts: req.QuickActionAmounts,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	slog.Info("settings updated successfully",
		"enabled", output.Enabled,
		"interval_minutes", output.IntervalMinutes,
	)
	c.JSON(http.StatusOK, FromSettingsOutput(output))
}

func (h *SettingsHandler) ReminderStatus(c *gin.Context) {
	output, err := h.useCase.ReminderStatus(c.Request.Context())
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromReminderStatusOutput(output))
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/settings", h.GetSettings)
	router.PUT("/settings", h.UpdateSettings)
	router.GET("/reminder", h.ReminderStatus)
}
