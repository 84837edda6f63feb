package controller

import (
	"net/http"

	"haru-weather/internal/domain/gateway/store"
	"haru-weather/pkg/msg"

	"github.com/labstack/echo/v4"
)

type StorageController struct {
	api           *echo.Group
	settingsStore store.SettingsStore
}

func NewStorageController(api *echo.Group, settingsStore store.SettingsStore) *StorageController {
	return &StorageController{api: api, settingsStore: settingsStore}
}

// InitStorageRoutes initializes storage routes
func (controller *StorageController) InitStorageRoutes() {
	controller.api.GET("/storage/usage", controller.Usage)
	controller.api.GET("/storage/last-location", controller.LastLocation)
	controller.api.DELETE("/storage", controller.ClearAll)
}

// Usage godoc
// @Summary Get storage usage
// @Description Report the stored byte size of each logical key
// @Tags storage
// @Produce json
// @Success 200 {object} model.UsageReport "Usage per key"
// @Router /storage/usage [get]
func (controller *StorageController) Usage(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.settingsStore.UsageReport())
}

// LastLocation godoc
// @Summary Get the last saved location
// @Description Return the last coordinate a weather load succeeded for
// @Tags storage
// @Produce json
// @Success 200 {object} model.LastLocation "Last saved location"
// @Failure 404 {object} map[string]string "Nothing saved yet"
// @Router /storage/last-location [get]
func (controller *StorageController) LastLocation(c echo.Context) error {
	location := controller.settingsStore.GetLastLocation()
	if location == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no saved location"})
	}
	return c.JSON(http.StatusOK, location)
}

// ClearAll godoc
// @Summary Clear the storage
// @Description Remove all stored favorites, theme preference and last location
// @Tags storage
// @Produce json
// @Success 200 {object} map[string]string "Cleared"
// @Failure 500 {object} map[string]string "Storage unavailable"
// @Router /storage [delete]
func (controller *StorageController) ClearAll(c echo.Context) error {
	if err := controller.settingsStore.ClearAll(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msg.GetMessage("storage.error.unavailable")})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "cleared"})
}
