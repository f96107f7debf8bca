package handlers

import (
	"errors"
	"net/http"

	"roadinspect/internal/usecase"
	"roadinspect/pkg"
)

func mapInspectionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRoadSectionNotFound):
		return pkg.NewDomainErrorSimple("ROAD_SECTION_NOT_FOUND", "Road section not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPhaseNotFound):
		return pkg.NewDomainErrorSimple("PHASE_NOT_FOUND", "Phase not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "No workflow template for this phase", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMeasureMismatch):
		return pkg.NewDomainErrorSimple("MEASURE_MISMATCH", "Requested view does not match the phase measure", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRangeInvalid):
		return pkg.NewDomainErrorSimple("RANGE_INVALID", "Inspection range is missing or not numeric", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLayerMissing):
		return pkg.NewDomainErrorSimple("LAYER_MISSING", "Select at least one layer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckMissing):
		return pkg.NewDomainErrorSimple("CHECK_MISSING", "Select at least one check", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTypeMissing):
		return pkg.NewDomainErrorSimple("TYPE_MISSING", "No inspection types remain after filtering", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentMissing):
		return pkg.NewDomainErrorSimple("APPOINTMENT_MISSING", "Appointment date is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionNumberInvalid):
		return pkg.NewDomainErrorSimple("SUBMISSION_NUMBER_INVALID", "Submission number must be numeric", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmitRejected):
		return pkg.NewDomainError("SUBMIT_REJECTED", err.Error(), err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
