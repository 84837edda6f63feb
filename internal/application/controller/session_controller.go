package controller

import (
	"net/http"

	"haru-weather/internal/domain/model"
	"haru-weather/internal/domain/usecase/session"
	"haru-weather/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type SessionController struct {
	api     *echo.Group
	useCase session.UseCase
}

func NewSessionController(api *echo.Group, useCase session.UseCase) *SessionController {
	return &SessionController{api: api, useCase: useCase}
}

// InitSessionRoutes initializes weather session routes
func (controller *SessionController) InitSessionRoutes() {
	controller.api.GET("/session", controller.GetSnapshot)
	controller.api.POST("/session/location", controller.GetCurrentLocation)
	controller.api.POST("/session/weather", controller.LoadWeatherByCoords)
	controller.api.POST("/session/search", controller.SearchWeather)
	controller.api.POST("/session/search/input", controller.OnSearchInput)
	controller.api.POST("/session/search/select", controller.SelectSuggestion)
}

// GetSnapshot godoc
// @Summary Get session state
// @Description Retrieve the current weather session state
// @Tags session
// @Produce json
// @Success 200 {object} model.SessionSnapshot "Session state"
// @Router /session [get]
func (controller *SessionController) GetSnapshot(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.Snapshot())
}

// GetCurrentLocation godoc
// @Summary Load weather for the current location
// @Description Resolve the device position and load current weather and forecast for it
// @Tags session
// @Produce json
// @Success 200 {object} model.SessionSnapshot "Session state after the load"
// @Router /session/location [post]
func (controller *SessionController) GetCurrentLocation(c echo.Context) error {
	controller.useCase.GetCurrentLocation()
	return c.JSON(http.StatusOK, controller.useCase.Snapshot())
}

// LoadWeatherByCoords godoc
// @Summary Load weather for coordinates
// @Description Load current weather and forecast for a coordinate pair
// @Tags session
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} model.SessionSnapshot "Session state after the load"
// @Failure 400 {object} map[string]string "Missing coordinates"
// @Router /session/weather [post]
func (controller *SessionController) LoadWeatherByCoords(c echo.Context) error {
	latParam := c.QueryParam("lat")
	lonParam := c.QueryParam("lon")
	if latParam == "" || lonParam == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "lat and lon are required"})
	}

	coord := model.Coord{
		Lat: numberutils.ToFloat64WithDefault(latParam, 0),
		Lon: numberutils.ToFloat64WithDefault(lonParam, 0),
	}

	controller.useCase.LoadWeatherByCoords(coord)
	return c.JSON(http.StatusOK, controller.useCase.Snapshot())
}

// SearchWeather godoc
// @Summary Search weather by city name
// @Description Resolve the query to its first matching city and load that city's weather
// @Tags session
// @Accept json
// @Produce json
// @Param request body searchRequest true "Search query"
// @Success 200 {object} model.SessionSnapshot "Session state after the search"
// @Router /session/search [post]
func (controller *SessionController) SearchWeather(c echo.Context) error {
	var request searchRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	controller.useCase.SetSearchQuery(request.Query)
	controller.useCase.SearchWeather()
	return c.JSON(http.StatusOK, controller.useCase.Snapshot())
}

// OnSearchInput godoc
// @Summary Autocomplete city search
// @Description Refresh autocomplete suggestions for the typed query
// @Tags session
// @Accept json
// @Produce json
// @Param request body searchRequest true "Typed query"
// @Success 200 {array} model.CitySuggestion "Suggestions"
// @Router /session/search/input [post]
func (controller *SessionController) OnSearchInput(c echo.Context) error {
	var request searchRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	controller.useCase.SetSearchQuery(request.Query)
	controller.useCase.OnSearchInput()
	return c.JSON(http.StatusOK, controller.useCase.Snapshot().SearchSuggestions)
}

// SelectSuggestion godoc
// @Summary Select an autocomplete suggestion
// @Description Load weather for the chosen suggestion
// @Tags session
// @Accept json
// @Produce json
// @Param request body model.CitySuggestion true "Chosen suggestion"
// @Success 200 {object} model.SessionSnapshot "Session state after the load"
// @Router /session/search/select [post]
func (controller *SessionController) SelectSuggestion(c echo.Context) error {
	var suggestion model.CitySuggestion
	if err := c.Bind(&suggestion); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	controller.useCase.SelectSuggestion(suggestion)
	return c.JSON(http.StatusOK, controller.useCase.Snapshot())
}

type searchRequest struct {
	Query string `json:"query"`
}
