package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"caballosapi/pipeline"
)

// IngestRaces merges a batch of scraped race cards. Always 200: per-race
// and per-participant failures are reported in the body, not as an HTTP
// error, so a scraper run never loses the rest of its batch.
func (h *Handler) IngestRaces(c echo.Context) error {
	var races []pipeline.ScrapedRace
	if err := c.Bind(&races); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(races) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty batch")
	}

	res := h.pipe.MergeRaces(c.Request().Context(), races)
	return c.JSON(http.StatusOK, res)
}

// IngestHorse merges one scraped horse profile into the store.
func (h *Handler) IngestHorse(c echo.Context) error {
	horseID := c.Param("id")

	var prof pipeline.HorseProfile
	if err := c.Bind(&prof); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.pipe.MergeHorseProfile(c.Request().Context(), horseID, prof); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusOK)
}

// BackfillPedigree creates placeholder horse rows for pedigree ancestors
// that have no profile yet.
func (h *Handler) BackfillPedigree(c echo.Context) error {
	added, err := h.pipe.BackfillPedigreeHorses(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]int{"added": added})
}
