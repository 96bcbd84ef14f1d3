package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/overlaylab/rtsp-overlay/internal/models"
	"github.com/overlaylab/rtsp-overlay/internal/repo"
	"github.com/overlaylab/rtsp-overlay/internal/service"
	"github.com/overlaylab/rtsp-overlay/internal/transport"
)

const testDefaultStreamURL = "https://test-streams.mux.dev/x36xhzz/x36xhzz.m3u8"

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Overlay{}, &models.StreamSettings{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	jwtSecret := []byte("test-jwt-secret")
	refreshSecret := []byte("test-refresh-secret")
	gormRepo := &repo.GormRepo{DB: db}

	e := echo.New()
	Register(e, &Deps{
		AuthHandler: &AuthHTTP{Svc: &service.AuthService{
			Repo:          gormRepo,
			JWTSecret:     jwtSecret,
			RefreshSecret: refreshSecret,
		}},
		OverlayHandler: &OverlayHTTP{Svc: &service.OverlayService{
			Repo: gormRepo,
		}},
		SettingsHandler: &SettingsHTTP{Svc: &service.SettingsService{
			Repo:             gormRepo,
			DefaultStreamURL: testDefaultStreamURL,
		}},
		JWTSecret: jwtSecret,
	})

	return &testEnv{T: t, E: e, DB: db}
}

func (env *testEnv) doJSON(method, path string, body any, token string) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// signup registers a user through the API and returns the serialized user
// plus both tokens.
func (env *testEnv) signup(email, username string) (map[string]any, string, string) {
	env.T.Helper()

	rec := env.doJSON(http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    email,
		"password": "secret1",
		"username": username,
	}, "")
	require.Equal(env.T, http.StatusCreated, rec.Code, rec.Body.String())

	var resp transport.AuthResponse
	var raw map[string]any
	decodeJSON(env.T, rec, &resp)
	decodeJSON(env.T, rec, &raw)

	user, _ := raw["user"].(map[string]any)
	return user, resp.AccessToken, resp.RefreshToken
}
