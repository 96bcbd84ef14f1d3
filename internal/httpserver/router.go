package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/overlaylab/rtsp-overlay/internal/middleware"
	"github.com/overlaylab/rtsp-overlay/internal/service"
)

type Deps struct {
	AuthHandler     *AuthHTTP
	OverlayHandler  *OverlayHTTP
	SettingsHandler *SettingsHTTP
	JWTSecret       []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = errorHandler

	authMw := middleware.NewSimpleAuth(d.JWTSecret)

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":  "healthy",
			"message": "RTSP Overlay API is running",
		})
	})

	api.POST("/auth/signup", d.AuthHandler.Signup)
	api.POST("/auth/signin", d.AuthHandler.Signin)
	// refresh authenticates itself against the refresh secret, so it is
	// not behind the access-token middleware
	api.POST("/auth/refresh", d.AuthHandler.Refresh)

	private := api.Group("", authMw.RequireAuth)

	private.GET("/auth/me", d.AuthHandler.Me)

	private.POST("/overlays", d.OverlayHandler.Create)
	private.GET("/overlays", d.OverlayHandler.List)
	private.GET("/overlays/search", d.OverlayHandler.Search)
	private.GET("/overlays/:id", d.OverlayHandler.Get)
	private.PUT("/overlays/:id", d.OverlayHandler.Update)
	private.DELETE("/overlays/:id", d.OverlayHandler.Delete)

	private.GET("/settings/stream", d.SettingsHandler.Get)
	private.PUT("/settings/stream", d.SettingsHandler.Update)
}

// errorHandler renders every failure as {"error": message}.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}

	_ = c.JSON(code, echo.Map{"error": msg})
}

// httpError maps service sentinels onto the response taxonomy. Ownership
// mismatches surface as plain 404s, never as 403s.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrMissingCredentials),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrShortPassword),
		errors.Is(err, service.ErrShortUsername),
		errors.Is(err, service.ErrInvalidOverlayType),
		errors.Is(err, service.ErrMissingContent),
		errors.Is(err, service.ErrMissingStreamURL),
		errors.Is(err, service.ErrInvalidStreamType):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidRefreshToken):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrOverlayNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSearchUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func userID(c echo.Context) string {
	id, _ := c.Get(middleware.CtxUserID).(string)
	return id
}
