package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Tracks lists the track registry, active rows first.
func (h *Handler) Tracks(c echo.Context) error {
	tracks, err := h.pipe.Tracks(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, tracks)
}
