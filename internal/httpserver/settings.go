package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/overlaylab/rtsp-overlay/internal/logging"
	"github.com/overlaylab/rtsp-overlay/internal/service"
	"github.com/overlaylab/rtsp-overlay/internal/transport"
)

type SettingsHTTP struct {
	Svc *service.SettingsService
}

func (h *SettingsHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()

	settings, err := h.Svc.Get(ctx, userID(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.StreamSettingsResponse{
		StreamURL:  settings.StreamURL,
		StreamType: settings.StreamType,
	})
}

func (h *SettingsHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "settings_update")

	var req transport.StreamSettingsRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("settings_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	settings, err := h.Svc.Update(ctx, userID(c), req.StreamURL, req.StreamType)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Stream settings updated successfully",
		"stream_url":  settings.StreamURL,
		"stream_type": settings.StreamType,
	})
}
