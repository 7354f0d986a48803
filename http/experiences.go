package http

import (
	"fmt"
	"net/http"

	"adventurelane/catalog"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"
)

func (h handler) ListExperiences(c echo.Context) error {
	experiences, err := h.catalog.ListExperiences(c.Request().Context())
	if err != nil {
		return &echo.HTTPError{
			Code:     http.StatusInternalServerError,
			Message:  "Failed to load experiences",
			Internal: fmt.Errorf("listing experiences: %w", err),
		}
	}

	return c.JSON(http.StatusOK, catalog.SearchExperiences(c.QueryParam("q"), experiences))
}

func (h handler) GetExperienceDetails(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return badRequest(c, "Experience ID is required")
	}

	ctx := c.Request().Context()

	details, err := h.catalog.Details(ctx, id)
	if err != nil {
		log.FromContext(ctx).WithError(err).Error("Error fetching experience details")
		return badRequest(c, "Failed to fetch experience details")
	}

	return c.JSON(http.StatusOK, details)
}
