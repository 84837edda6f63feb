package controller

import (
	"net/http"

	"haru-weather/internal/domain/model"
	"haru-weather/internal/domain/usecase/feedback"

	"github.com/labstack/echo/v4"
)

type FeedbackController struct {
	api     *echo.Group
	useCase feedback.UseCase
}

func NewFeedbackController(api *echo.Group, useCase feedback.UseCase) *FeedbackController {
	return &FeedbackController{api: api, useCase: useCase}
}

// InitFeedbackRoutes initializes feedback routes
func (controller *FeedbackController) InitFeedbackRoutes() {
	controller.api.POST("/feedback", controller.Create)
	controller.api.GET("/feedback", controller.FindAll)
}

// Create godoc
// @Summary Submit feedback
// @Description Store a feedback entry. The message is required, contact is optional.
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body model.CreateFeedbackDTO true "Feedback entry"
// @Success 201 {object} entity.Feedback "Stored entry"
// @Failure 400 {object} map[string]string "Missing message"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /feedback [post]
func (controller *FeedbackController) Create(c echo.Context) error {
	var dto model.CreateFeedbackDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if dto.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}

	entry, err := controller.useCase.CreateFeedback(dto)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, entry)
}

// FindAll godoc
// @Summary List feedback
// @Description Return every stored feedback entry, newest first
// @Tags feedback
// @Produce json
// @Success 200 {array} entity.Feedback "Stored entries"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /feedback [get]
func (controller *FeedbackController) FindAll(c echo.Context) error {
	entries, err := controller.useCase.FindAllFeedback()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, entries)
}
