package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"roadinspect/internal/adapter/http/dto/response"
	"roadinspect/internal/domain/entities"
	"roadinspect/internal/usecase"
)

// TimelineHandler serves the derived progress views of a phase.

type TimelineHandler struct {
	usecase usecase.ITimelineUseCase
}

func NewTimelineHandler(uc usecase.ITimelineUseCase) *TimelineHandler {
	return &TimelineHandler{usecase: uc}
}

// GetTimeline returns the phase timeline in the shape matching its measure:
// per-side segments for LINEAR phases, discrete markers for POINT phases.
//
// @Summary      Phase timeline
// @Tags         inspections
// @Produce      json
// @Param        road_id   path  string  true  "Road section ID"
// @Param        phase_id  path  string  true  "Phase ID"
// @Success      200  {object}  response.LinearTimelineResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /roads/{road_id}/phases/{phase_id}/timeline [get]
func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	roadID := c.Param("road_id")
	phaseID := c.Param("phase_id")

	linear, err := h.usecase.LinearTimeline(c.Request.Context(), roadID, phaseID)
	if err == nil {
		c.JSON(http.StatusOK, response.FromLinearTimeline(linear.Timeline))
		return
	}
	if !errors.Is(err, usecase.ErrMeasureMismatch) {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	point, err := h.usecase.PointTimeline(c.Request.Context(), roadID, phaseID)
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPointTimeline(point.Timeline))
}

// GetProgress returns the per-check completion of a phase range.
//
// @Summary      Phase progress
// @Tags         inspections
// @Produce      json
// @Param        road_id   path   string  true   "Road section ID"
// @Param        phase_id  path   string  true   "Phase ID"
// @Param        side      query  string  false  "LEFT, RIGHT or BOTH"
// @Param        start     query  number  false  "Range start PK"
// @Param        end       query  number  false  "Range end PK"
// @Param        layers    query  string  false  "Comma-separated layer filter"
// @Success      200  {object}  response.ProgressResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /roads/{road_id}/phases/{phase_id}/progress [get]
func (h *TimelineHandler) GetProgress(c *gin.Context) {
	q := usecase.ProgressQuery{
		RoadSectionID: c.Param("road_id"),
		PhaseID:       c.Param("phase_id"),
		Side:          entities.ParseSide(c.Query("side")),
		StartPK:       queryFloat(c, "start"),
		EndPK:         queryFloat(c, "end"),
		Layers:        splitCSV(c.Query("layers")),
	}

	res, err := h.usecase.Progress(c.Request.Context(), q)
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProgress(res))
}

func queryFloat(c *gin.Context, key string) float64 {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil {
		return 0
	}
	return v
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
