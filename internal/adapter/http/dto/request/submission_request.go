package request

import (
	"errors"
	"strings"
	"time"

	"roadinspect/internal/domain/entities"
)

var ErrInvalidAppointmentDate = errors.New("invalid appointment date")

// SubmissionRequest is the payload for submitting a batch of inspections
// over one interval range.
type SubmissionRequest struct {
	Side             string   `json:"side"`
	StartPK          *float64 `json:"start_pk"`
	EndPK            *float64 `json:"end_pk"`
	Layers           []string `json:"layers"`
	Checks           []string `json:"checks"`
	Types            []string `json:"types"`
	Remark           string   `json:"remark"`
	AppointmentDate  string   `json:"appointment_date"`
	SubmissionNumber string   `json:"submission_number"`
}

func (r SubmissionRequest) ResolveSide() entities.Side {
	return entities.ParseSide(r.Side)
}

// ResolveRange returns the submission range; an absent bound resolves to
// NaN so the use case rejects it as an invalid range rather than treating
// it as PK 0.
func (r SubmissionRequest) ResolveRange() (float64, float64) {
	return derefPK(r.StartPK, missingPK()), derefPK(r.EndPK, missingPK())
}

// ResolveAppointment parses the appointment date, accepting a plain day or
// an RFC3339 timestamp. An empty value resolves to nil (missing, not
// invalid).
func (r SubmissionRequest) ResolveAppointment() (*time.Time, error) {
	raw := strings.TrimSpace(r.AppointmentDate)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, ErrInvalidAppointmentDate
}
