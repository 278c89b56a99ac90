package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/app"
)

type StatsHandler struct {
	useCase app.StatsUseCase
}

func NewStatsHandler(useCase app.StatsUseCase) *StatsHandler {
	return &StatsHandler{
		useCase: useCase,
	}
}

func (h *StatsHandler) DailySums(c *gin.Context) {
	var req DailySumsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindingError(c, err)

		return
	}

	output, err := h.useCase.DailySums(c.Request.Context(), app.DailySumsInput{
		From:     req.Start,
		To:       req.End,
		TimeZone: req.TZ,
		Dense:    req.Dense,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDailySumsOutput(output))
}

func (h *StatsHandler) Summary(c *gin.Context) {
	var req SummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindingError(c, err)

		return
	}

	output, err := h.useCase.Summary(c.Request.Context(), app.SummaryInput{
		Period:   req.Period,
		Days:     req.Days,
		TimeZone: req.TZ,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromSummaryOutput(output))
}

func (h *StatsHandler) Streak(c *gin.Context) {
	var req StreakRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindingError(c, err)

		return
	}

	output, err := h.useCase.Streak(c.Request.Context(), app.StreakInput{TimeZone: req.TZ})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromStreakOutput(output))
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	stats := router.Group("/stats")
	{
		stats.GET("/daily", h.DailySums)
		stats.GET("/summary", h.Summary)
		stats.GET("/streak", h.Streak)
	}
}
