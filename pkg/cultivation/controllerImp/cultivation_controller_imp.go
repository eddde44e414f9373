package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kisan/pkg/cultivation/service"
)

type CultivationCtrl struct{ svc service.CultivationService }

func New(svc service.CultivationService) *CultivationCtrl { return &CultivationCtrl{svc} }

func uid(c echo.Context) (uint, bool) {
	v, ok := c.Get("uid").(uint)
	return v, ok
}

func (h *CultivationCtrl) Start(c echo.Context) error {
	userID, ok := uid(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
	}
	var body struct {
		CropName string `json:"crop_name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	res, err := h.svc.Start(c.Request().Context(), userID, body.CropName)
	if err != nil {
		if errors.Is(err, service.ErrCropNameRequired) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Crop name required"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "success",
		"message": fmt.Sprintf("Started %s", body.CropName),
		"tasks":   res.Tasks,
	})
}

func (h *CultivationCtrl) Active(c echo.Context) error {
	userID, ok := uid(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
	}
	view, err := h.svc.Active(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if view == nil {
		return c.JSON(http.StatusOK, map[string]string{"status": "none"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "active",
		"cultivation": view.Cultivation,
		"schedules":   view.Schedules,
		"ledgers":     view.Ledgers,
	})
}

func (h *CultivationCtrl) UpdateTask(c echo.Context) error {
	if _, ok := uid(c); !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
	}
	taskID, err := strconv.Atoi(c.Param("task_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad task id"})
	}
	body := struct {
		Completed *bool `json:"completed"`
	}{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	completed := true
	if body.Completed != nil {
		completed = *body.Completed
	}
	if err := h.svc.UpdateTask(uint(taskID), completed); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

func (h *CultivationCtrl) AddLedger(c echo.Context) error {
	userID, ok := uid(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
	}
	var in service.LedgerInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.svc.AddLedger(userID, in); err != nil {
		if errors.Is(err, service.ErrNoActiveCultivation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "No active cultivation"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

func (h *CultivationCtrl) Finish(c echo.Context) error {
	userID, ok := uid(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
	}
	if err := h.svc.Finish(userID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success", "message": "Cultivation marked as completed."})
}

func (h *CultivationCtrl) History(c echo.Context) error {
	userID, ok := uid(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
	}
	items, err := h.svc.History(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CultivationCtrl) HistoryDetail(c echo.Context) error {
	userID, ok := uid(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	view, err := h.svc.HistoryDetail(userID, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Cultivation not found or unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "success",
		"cultivation": view.Cultivation,
		"schedules":   view.Schedules,
		"ledgers":     view.Ledgers,
	})
}
