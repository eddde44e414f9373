package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kisan/pkg/weather"
)

type WeatherCtrl struct{ resolver weather.Resolver }

func New(r weather.Resolver) *WeatherCtrl { return &WeatherCtrl{r} }

func (h *WeatherCtrl) Get(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if errLat != nil || errLon != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing lat/lon"})
	}
	return c.JSON(http.StatusOK, h.resolver.Current(c.Request().Context(), lat, lon))
}
