package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "roadinspect/internal/adapter/http/dto/request"
	response "roadinspect/internal/adapter/http/dto/response"
	"roadinspect/internal/usecase"
	"roadinspect/pkg"
)

var errInvalidSelectionPayload = pkg.NewDomainErrorSimple("INVALID_SELECTION_INPUT", "Invalid selection payload", http.StatusBadRequest)

// SelectionHandler evaluates a layer/check selection against the workflow
// rules and current bookings.

type SelectionHandler struct {
	usecase usecase.ISelectionUseCase
}

func NewSelectionHandler(uc usecase.ISelectionUseCase) *SelectionHandler {
	return &SelectionHandler{usecase: uc}
}

// EvaluateSelection computes the advisory selection state for a candidate
// range: which layers can be toggled, which are locked, the allowed checks
// and the offered inspection types.
//
// @Summary      Evaluate a layer/check selection
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Param        road_id   path  string                    true  "Road section ID"
// @Param        phase_id  path  string                    true  "Phase ID"
// @Param        payload   body  request.SelectionRequest  true  "Current selection"
// @Success      200  {object}  response.SelectionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /roads/{road_id}/phases/{phase_id}/selection [post]
func (h *SelectionHandler) EvaluateSelection(c *gin.Context) {
	var payload request.SelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelectionPayload.HTTPStatus, errInvalidSelectionPayload.ToHTTPError())
		return
	}

	start, end := payload.ResolveRange()
	cmd := usecase.EvaluateSelectionCommand{
		RoadSectionID:  c.Param("road_id"),
		PhaseID:        c.Param("phase_id"),
		Side:           payload.ResolveSide(),
		StartPK:        start,
		EndPK:          end,
		Layers:         payload.Layers,
		Checks:         payload.Checks,
		ExcludedChecks: payload.ExcludedChecks,
	}

	view, err := h.usecase.Evaluate(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSelectionView(view))
}
