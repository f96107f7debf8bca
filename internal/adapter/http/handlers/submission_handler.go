package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "roadinspect/internal/adapter/http/dto/request"
	response "roadinspect/internal/adapter/http/dto/response"
	"roadinspect/internal/usecase"
	"roadinspect/pkg"
)

var (
	errInvalidSubmissionPayload = pkg.NewDomainErrorSimple("INVALID_SUBMISSION_INPUT", "Invalid submission payload", http.StatusBadRequest)
	errInvalidAppointment       = pkg.NewDomainErrorSimple("APPOINTMENT_INVALID", "Appointment date is not a valid date", http.StatusBadRequest)
)

// SubmissionHandler accepts inspection submissions and forwards the expanded
// atomic entries to the write collaborator.

type SubmissionHandler struct {
	usecase usecase.ISubmissionUseCase
}

func NewSubmissionHandler(uc usecase.ISubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{usecase: uc}
}

// CreateSubmission validates and batches a selection, then submits the
// resulting entries as one atomic write.
//
// @Summary      Submit inspections for a range
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Param        road_id   path  string                     true  "Road section ID"
// @Param        phase_id  path  string                     true  "Phase ID"
// @Param        payload   body  request.SubmissionRequest  true  "Submission"
// @Success      201  {object}  response.SubmissionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /roads/{road_id}/phases/{phase_id}/submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var payload request.SubmissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubmissionPayload.HTTPStatus, errInvalidSubmissionPayload.ToHTTPError())
		return
	}

	appointment, err := payload.ResolveAppointment()
	if err != nil {
		c.JSON(errInvalidAppointment.HTTPStatus, errInvalidAppointment.ToHTTPError())
		return
	}

	start, end := payload.ResolveRange()
	cmd := usecase.SubmissionCommand{
		RoadSectionID:    c.Param("road_id"),
		PhaseID:          c.Param("phase_id"),
		Side:             payload.ResolveSide(),
		StartPK:          start,
		EndPK:            end,
		Layers:           payload.Layers,
		Checks:           payload.Checks,
		Types:            payload.Types,
		Remark:           payload.Remark,
		AppointmentDate:  appointment,
		SubmissionNumber: payload.SubmissionNumber,
	}

	res, err := h.usecase.Submit(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSubmissionResult(res))
}
