package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"kisan/pkg/recommend/service"
	"kisan/pkg/recommend/types"
)

type RecommendCtrl struct{ svc service.RecommendService }

func New(svc service.RecommendService) *RecommendCtrl { return &RecommendCtrl{svc} }

func (h *RecommendCtrl) Recommend(c echo.Context) error {
	var req types.Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	var userID *uint
	if v, ok := c.Get("uid").(uint); ok {
		userID = &v
	}

	result, err := h.svc.Recommend(c.Request().Context(), userID, req)
	if err != nil {
		var lowConf *service.LowConfidenceSoilError
		switch {
		case errors.Is(err, service.ErrMissingCoordinates):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.As(err, &lowConf):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": lowConf.Error(), "status": "error"})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, result)
}

func (h *RecommendCtrl) History(c echo.Context) error {
	uid, ok := c.Get("uid").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
	}
	items, err := h.svc.History(uid)
	if err != nil {
		// History is best-effort for the client; mirror an empty list.
		return c.JSON(http.StatusOK, []types.HistoryItem{})
	}
	return c.JSON(http.StatusOK, items)
}
