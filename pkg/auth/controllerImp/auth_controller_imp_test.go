package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kisan/entities"
	"kisan/pkg/auth"
	"kisan/pkg/auth/repositoryImp"
)

func testCtrl(t *testing.T) (*AuthCtrl, *auth.TokenIssuer) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))
	issuer := auth.NewTokenIssuer("test-secret", 30)
	return New(repositoryImp.New(db), issuer), issuer
}

func post(t *testing.T, h echo.HandlerFunc, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func TestRegisterAndLogin(t *testing.T) {
	ctrl, issuer := testCtrl(t)

	rec, out := post(t, ctrl.Register, `{"name":"Ravi","phone":"9000000001","password":"pass123","location":"Guntur"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", out["status"])
	require.NotEmpty(t, out["token"])

	uid, err := issuer.Verify(out["token"].(string))
	require.NoError(t, err)
	assert.NotZero(t, uid)

	rec, out = post(t, ctrl.Login, `{"phone":"9000000001","password":"pass123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", out["status"])
	assert.NotEmpty(t, out["token"])
}

func TestRegisterMissingFields(t *testing.T) {
	ctrl, _ := testCtrl(t)
	rec, out := post(t, ctrl.Register, `{"name":"Ravi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing fields", out["message"])
}

func TestRegisterDuplicatePhone(t *testing.T) {
	ctrl, _ := testCtrl(t)
	_, _ = post(t, ctrl.Register, `{"name":"Ravi","phone":"9000000001","password":"pass123"}`)
	rec, out := post(t, ctrl.Register, `{"name":"Someone","phone":"9000000001","password":"other"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Phone already registered", out["message"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctrl, _ := testCtrl(t)
	_, _ = post(t, ctrl.Register, `{"name":"Ravi","phone":"9000000001","password":"pass123"}`)

	rec, out := post(t, ctrl.Login, `{"phone":"9000000001","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid Login", out["message"])

	rec, out = post(t, ctrl.Login, `{"phone":"0000000000","password":"pass123"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid Login", out["message"])
}
