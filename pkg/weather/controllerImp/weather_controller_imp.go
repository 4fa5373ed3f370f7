package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kisan/pkg/weather"
)

type WeatherCtrl struct{ svc *weather.Service }

func New(svc *weather.Service) *WeatherCtrl { return &WeatherCtrl{svc} }

func (h *WeatherCtrl) Get(c echo.Context) error {
	location := c.QueryParam("location")
	w, err := h.svc.Current(c.Request().Context(), location)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"weather":     w,
		"region_note": weather.RegionNote(location),
	})
}
