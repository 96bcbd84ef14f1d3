package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/overlaylab/rtsp-overlay/internal/logging"
	"github.com/overlaylab/rtsp-overlay/internal/service"
	"github.com/overlaylab/rtsp-overlay/internal/transport"
	"github.com/overlaylab/rtsp-overlay/internal/util"
)

type OverlayHTTP struct {
	Svc *service.OverlayService
}

func (h *OverlayHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "overlay_create")

	var req transport.CreateOverlayRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	overlay, err := h.Svc.Create(ctx, userID(c), req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Overlay created successfully",
		"overlay": overlay,
	})
}

func (h *OverlayHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()

	overlays, err := h.Svc.ListByUser(ctx, userID(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"overlays": overlays,
		"count":    len(overlays),
	})
}

func (h *OverlayHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()

	overlay, err := h.Svc.GetByID(ctx, c.Param("id"), userID(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"overlay": overlay})
}

func (h *OverlayHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "overlay_update")

	var req transport.UpdateOverlayRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	overlay, err := h.Svc.Update(ctx, c.Param("id"), userID(c), req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Overlay updated successfully",
		"overlay": overlay,
	})
}

func (h *OverlayHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.Svc.Delete(ctx, c.Param("id"), userID(c)); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Overlay deleted successfully"})
}

func (h *OverlayHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	total, overlays, err := h.Svc.Search(ctx, userID(c), q, from, size)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total":    total,
		"overlays": overlays,
	})
}
