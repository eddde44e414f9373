package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kisan/pkg/chat/serviceImp"
)

type ChatCtrl struct{ svc *serviceImp.ChatSvc }

func New(svc *serviceImp.ChatSvc) *ChatCtrl { return &ChatCtrl{svc} }

func (h *ChatCtrl) Chat(c echo.Context) error {
	var body struct {
		Message  string `json:"message"`
		Language string `json:"language"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if body.Language == "" {
		body.Language = "en"
	}

	var userID *uint
	if v, ok := c.Get("uid").(uint); ok {
		userID = &v
	}

	reply, err := h.svc.Reply(c.Request().Context(), userID, body.Message, body.Language)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"reply": reply})
}

func (h *ChatCtrl) History(c echo.Context) error {
	userID, ok := c.Get("uid").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
	}
	items, err := h.svc.History(userID)
	if err != nil {
		return c.JSON(http.StatusOK, []serviceImp.HistoryItem{})
	}
	return c.JSON(http.StatusOK, items)
}
