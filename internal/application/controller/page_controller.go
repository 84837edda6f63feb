package controller

import (
	"net/http"
	"strings"

	"haru-weather/internal/domain/model"
	"haru-weather/pkg/msg"

	"github.com/labstack/echo/v4"
)

// pages is the routing surface, in navigation order. Titles come from the
// message catalog so they stay consistent with the rest of the Korean copy.
func pages() []model.PageMeta {
	return []model.PageMeta{
		{Name: "Home", Path: "/", Title: msg.GetMessage("page.home.title")},
		{Name: "About", Path: "/about", Title: msg.GetMessage("page.about.title")},
		{Name: "ApiDocs", Path: "/api-docs", Title: msg.GetMessage("page.api-docs.title")},
		{Name: "Usage", Path: "/usage", Title: msg.GetMessage("page.usage.title")},
		{Name: "Feedback", Path: "/feedback", Title: msg.GetMessage("page.feedback.title")},
	}
}

type PageController struct {
	api *echo.Group
}

func NewPageController(api *echo.Group) *PageController {
	return &PageController{api: api}
}

// InitPageRoutes initializes page metadata routes
func (controller *PageController) InitPageRoutes() {
	controller.api.GET("/pages", controller.FindAll)
	controller.api.GET("/pages/*", controller.FindByPath)
}

// FindAll godoc
// @Summary List pages
// @Description Return every navigable page with its path and title
// @Tags page
// @Produce json
// @Success 200 {array} model.PageMeta "Pages in navigation order"
// @Router /pages [get]
func (controller *PageController) FindAll(c echo.Context) error {
	return c.JSON(http.StatusOK, pages())
}

// FindByPath godoc
// @Summary Get page metadata by path
// @Description Return the page matching the given path. Unknown paths redirect to the home page entry.
// @Tags page
// @Produce json
// @Success 200 {object} model.PageMeta "Page metadata"
// @Success 302 {string} string "Redirect to the home page entry"
// @Router /pages/{path} [get]
func (controller *PageController) FindByPath(c echo.Context) error {
	wildcard := c.Param("*")
	requested := "/" + strings.Trim(wildcard, "/")

	for _, page := range pages() {
		if page.Path == requested {
			return c.JSON(http.StatusOK, page)
		}
	}

	// unmatched paths land on home
	home := strings.TrimSuffix(c.Request().URL.Path, wildcard)
	return c.Redirect(http.StatusFound, home)
}
