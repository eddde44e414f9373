package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"kisan/entities"
	"kisan/pkg/auth"
	"kisan/pkg/auth/repository"
)

type AuthCtrl struct {
	users  repository.UserRepository
	issuer *auth.TokenIssuer
}

func New(users repository.UserRepository, issuer *auth.TokenIssuer) *AuthCtrl {
	return &AuthCtrl{users: users, issuer: issuer}
}

type registerReq struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Location string `json:"location"`
}

func (h *AuthCtrl) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"status": "error", "message": "bad json"})
	}
	if req.Name == "" || req.Phone == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"status": "error", "message": "Missing fields"})
	}

	if _, err := h.users.FindByPhone(req.Phone); err == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"status": "error", "message": "Phone already registered"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusInternalServerError, map[string]string{"status": "error", "message": err.Error()})
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"status": "error", "message": err.Error()})
	}
	u := &entities.User{Name: req.Name, Phone: req.Phone, PasswordHash: hashed, Location: req.Location}
	if err := h.users.Create(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"status": "error", "message": err.Error()})
	}

	token, err := h.issuer.Issue(u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"status": "error", "message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status": "success",
		"token":  token,
		"user":   map[string]string{"name": u.Name, "phone": u.Phone, "location": u.Location},
	})
}

type loginReq struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (h *AuthCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"status": "error", "message": "bad json"})
	}

	u, err := h.users.FindByPhone(req.Phone)
	if err != nil || u.PasswordHash == "" || !auth.CheckPassword(req.Password, u.PasswordHash) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"status": "error", "message": "Invalid Login"})
	}

	token, err := h.issuer.Issue(u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"status": "error", "message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status": "success",
		"token":  token,
		"user": map[string]string{
			"name": u.Name, "phone": u.Phone, "location": u.Location, "profile_pic": u.ProfilePic,
		},
	})
}

func (h *AuthCtrl) GetProfile(c echo.Context) error {
	userID, ok := c.Get("uid").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
	}
	u, err := h.users.FindByID(userID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "User not found"})
	}
	return c.JSON(http.StatusOK, u)
}

type profileReq struct {
	Name       string `json:"name"`
	Location   string `json:"location"`
	ProfilePic string `json:"profile_pic"`
}

func (h *AuthCtrl) UpdateProfile(c echo.Context) error {
	userID, ok := c.Get("uid").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
	}
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "bad json"})
	}
	if err := h.users.UpdateProfile(userID, req.Name, req.Location, req.ProfilePic); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	u, err := h.users.FindByID(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "success", "user": u})
}
