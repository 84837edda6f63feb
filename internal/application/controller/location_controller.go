package controller

import (
	"net/http"

	"haru-weather/internal/domain/apperr"
	"haru-weather/internal/domain/usecase/location"

	"github.com/labstack/echo/v4"
)

type LocationController struct {
	api     *echo.Group
	useCase location.UseCase
}

func NewLocationController(api *echo.Group, useCase location.UseCase) *LocationController {
	return &LocationController{api: api, useCase: useCase}
}

// InitLocationRoutes initializes location routes
func (controller *LocationController) InitLocationRoutes() {
	controller.api.GET("/location/permission", controller.CheckPermission)
	controller.api.GET("/location/ip", controller.LocationByIP)
	controller.api.GET("/location/resolve", controller.Resolve)
}

// CheckPermission godoc
// @Summary Get geolocation permission state
// @Description Report the geolocation permission state without triggering a prompt
// @Tags location
// @Produce json
// @Success 200 {object} map[string]string "Permission state"
// @Router /location/permission [get]
func (controller *LocationController) CheckPermission(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"state": string(controller.useCase.CheckPermission())})
}

// LocationByIP godoc
// @Summary Resolve location from IP
// @Description Resolve an approximate location from the caller's public IP
// @Tags location
// @Produce json
// @Success 200 {object} model.ResolvedLocation "Approximate location"
// @Failure 502 {object} map[string]string "Lookup failed"
// @Router /location/ip [get]
func (controller *LocationController) LocationByIP(c echo.Context) error {
	resolved, err := controller.useCase.LocationByIP()
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": apperr.UserMessage(err)})
	}
	return c.JSON(http.StatusOK, resolved)
}

// Resolve godoc
// @Summary Resolve the current location
// @Description Try the precise device position first, falling back to the IP lookup
// @Tags location
// @Produce json
// @Success 200 {object} model.ResolvedLocation "Resolved location with its source"
// @Failure 502 {object} map[string]string "Both resolutions failed"
// @Router /location/resolve [get]
func (controller *LocationController) Resolve(c echo.Context) error {
	resolved, err := controller.useCase.Resolve()
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": apperr.UserMessage(err)})
	}
	return c.JSON(http.StatusOK, resolved)
}
