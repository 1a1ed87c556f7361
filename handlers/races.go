package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Races lists race cards for a date (?date=YYYY-MM-DD), defaulting to the
// most recent date on record.
func (h *Handler) Races(c echo.Context) error {
	races, err := h.pipe.Races(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, races)
}

// RaceEntries returns the field for one race in post position order.
func (h *Handler) RaceEntries(c echo.Context) error {
	entries, err := h.pipe.RaceEntries(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "race not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, entries)
}
