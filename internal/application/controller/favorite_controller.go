package controller

import (
	"net/http"

	"haru-weather/internal/domain/usecase/session"

	"github.com/labstack/echo/v4"
)

type FavoriteController struct {
	api     *echo.Group
	useCase session.UseCase
}

func NewFavoriteController(api *echo.Group, useCase session.UseCase) *FavoriteController {
	return &FavoriteController{api: api, useCase: useCase}
}

// InitFavoriteRoutes initializes favorite routes
func (controller *FavoriteController) InitFavoriteRoutes() {
	controller.api.GET("/favorites", controller.FindAll)
	controller.api.POST("/favorites", controller.AddCurrent)
	controller.api.DELETE("/favorites/:id", controller.Remove)
	controller.api.POST("/favorites/:id/weather", controller.LoadWeather)
}

// FindAll godoc
// @Summary Get favorites
// @Description Reload and return the stored favorites, newest first
// @Tags favorite
// @Produce json
// @Success 200 {array} model.Favorite "Stored favorites"
// @Router /favorites [get]
func (controller *FavoriteController) FindAll(c echo.Context) error {
	controller.useCase.LoadFavorites()
	return c.JSON(http.StatusOK, controller.useCase.Snapshot().Favorites)
}

// AddCurrent godoc
// @Summary Save the current weather as a favorite
// @Description Add the currently loaded weather to the favorites. Adding the same coordinates twice changes nothing.
// @Tags favorite
// @Produce json
// @Success 200 {array} model.Favorite "Favorites after the add"
// @Failure 409 {object} map[string]string "No weather loaded"
// @Router /favorites [post]
func (controller *FavoriteController) AddCurrent(c echo.Context) error {
	snapshot := controller.useCase.Snapshot()
	if snapshot.CurrentWeather == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "no weather loaded"})
	}

	controller.useCase.AddToFavorites(snapshot.CurrentWeather)
	return c.JSON(http.StatusOK, controller.useCase.Snapshot().Favorites)
}

// Remove godoc
// @Summary Remove a favorite
// @Description Drop the favorite with the given coordinate key
// @Tags favorite
// @Produce json
// @Param id path string true "Favorite id"
// @Success 200 {array} model.Favorite "Favorites after the removal"
// @Router /favorites/{id} [delete]
func (controller *FavoriteController) Remove(c echo.Context) error {
	controller.useCase.RemoveFromFavorites(c.Param("id"))
	return c.JSON(http.StatusOK, controller.useCase.Snapshot().Favorites)
}

// LoadWeather godoc
// @Summary Load weather for a favorite
// @Description Load current weather and forecast for a stored favorite
// @Tags favorite
// @Produce json
// @Param id path string true "Favorite id"
// @Success 200 {object} model.SessionSnapshot "Session state after the load"
// @Failure 404 {object} map[string]string "Favorite not found"
// @Router /favorites/{id}/weather [post]
func (controller *FavoriteController) LoadWeather(c echo.Context) error {
	id := c.Param("id")
	for _, favorite := range controller.useCase.Snapshot().Favorites {
		if favorite.ID == id {
			controller.useCase.LoadFavoriteWeather(favorite)
			return c.JSON(http.StatusOK, controller.useCase.Snapshot())
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "favorite not found"})
}
