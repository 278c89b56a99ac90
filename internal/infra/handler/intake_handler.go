package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/app"
)

type IntakeHandler struct {
	useCase app.IntakeUseCase
}

func NewIntakeHandler(useCase app.IntakeUseCase) *IntakeHandler {
	return &IntakeHandler{
		useCase: useCase,
	}
}

func (h *IntakeHandler) RecordIntake(c *gin.Context) {
	slog.Info("handling record intake request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req RecordIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)

		return
	}

	input := app.RecordIntakeInput{
		AmountMl: req.AmountMl,
	}
	if req.Timestamp != nil {
		input.Timestamp = *req.Timestamp
	}

	output, err := h.useCase.RecordIntake(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)

		return
	}

	slog.Info("intake recorded successfully",
		"intake_id", output.ID,
		"amount_ml", output.AmountMl,
	)
	c.JSON(http.StatusCreated, FromIntakeOutput(output))
}

func (h *IntakeHandler) ListIntakes(c *gin.Context) {
	slog.Info("handling list intakes request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req ListIntakesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindingError(c, err)

		return
	}

	output, err := h.useCase.ListIntakes(c.Request.Context(), app.ListIntakesInput{
		Start: req.Start,
		End:   req.End,
		Order: req.Order,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	slog.Info("intakes retrieved successfully",
		"count", output.Count,
		"start", req.Start,
		"end", req.End,
	)
	c.JSON(http.StatusOK, FromIntakesOutput(output))
}

func (h *IntakeHandler) TodayIntakes(c *gin.Context) {
	output, err := h.useCase.TodayIntakes(c.Request.Context())
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromTodayIntakesOutput(output))
}

func (h *IntakeHandler) CorrectIntake(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling correct intake request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"intake_id", id,
	)

	var req CorrectIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)

		return
	}

	output, err := h.useCase.CorrectIntake(c.Request.Context(), app.CorrectIntakeInput{
		ID:       id,
		AmountMl: req.AmountMl,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	slog.Info("intake corrected successfully",
		"intake_id", output.ID,
		"amount_ml", output.AmountMl,
	)
	c.JSON(http.StatusOK, FromIntakeOutput(output))
}

func (h *IntakeHandler) DeleteIntake(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling delete intake request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"intake_id", id,
	)

	if err := h.useCase.DeleteIntake(c.Request.Context(), app.DeleteIntakeInput{ID: id}); err != nil {
		respondError(c, err)

		return
	}

	slog.Info("intake deleted successfully",
		"intake_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *IntakeHandler) RegisterRoutes(router *gin.RouterGroup) {
	intakes := router.Group("/intakes")
	{
		intakes.POST("", h.RecordIntake)
		intakes.GET("", h.ListIntakes)
		intakes.GET("/today", h.TodayIntakes)
		intakes.PATCH("/:id", h.CorrectIntake)
		intakes.DELETE("/:id", h.DeleteIntake)
	}
}
