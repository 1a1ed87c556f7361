package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"caballosapi/models"
)

// Horses lists horse profiles. With ?stale=1 only horses never scraped, or
// not scraped within the refresh window, are returned.
func (h *Handler) Horses(c echo.Context) error {
	var staleBefore *time.Time
	if c.QueryParam("stale") == "1" {
		cutoff := time.Now().Add(-h.refresh)
		staleBefore = &cutoff
	}

	horses, err := h.pipe.Horses(c.Request().Context(), staleBefore)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, horses)
}

type horseDetail struct {
	*models.Horse
	Pedigree *models.Pedigree `json:"pedigree,omitempty"`
}

// Horse returns one profile with its pedigree when present.
func (h *Handler) Horse(c echo.Context) error {
	horse, ped, err := h.pipe.Horse(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "horse not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, horseDetail{Horse: horse, Pedigree: ped})
}
