package controller

import (
	"net/http"

	"haru-weather/internal/domain/usecase/theme"

	"github.com/labstack/echo/v4"
)

type ThemeController struct {
	api     *echo.Group
	useCase theme.UseCase
}

func NewThemeController(api *echo.Group, useCase theme.UseCase) *ThemeController {
	return &ThemeController{api: api, useCase: useCase}
}

// InitThemeRoutes initializes theme routes
func (controller *ThemeController) InitThemeRoutes() {
	controller.api.GET("/theme", controller.GetTheme)
	controller.api.POST("/theme/toggle", controller.ToggleTheme)
}

// GetTheme godoc
// @Summary Get the active theme
// @Description Report whether dark mode is active
// @Tags theme
// @Produce json
// @Success 200 {object} themeResponse "Active theme"
// @Router /theme [get]
func (controller *ThemeController) GetTheme(c echo.Context) error {
	return c.JSON(http.StatusOK, themeResponse{DarkMode: controller.useCase.IsDarkMode()})
}

// ToggleTheme godoc
// @Summary Toggle dark mode
// @Description Flip the theme and persist the choice
// @Tags theme
// @Produce json
// @Success 200 {object} themeResponse "Theme after the toggle"
// @Router /theme/toggle [post]
func (controller *ThemeController) ToggleTheme(c echo.Context) error {
	return c.JSON(http.StatusOK, themeResponse{DarkMode: controller.useCase.ToggleDarkMode()})
}

type themeResponse struct {
	DarkMode bool `json:"darkMode"`
}
