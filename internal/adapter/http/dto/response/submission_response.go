package response

import (
	"roadinspect/internal/domain/inspection"
	"roadinspect/internal/usecase"
)

type BatchResponse struct {
	Side   string   `json:"side"`
	Layers []string `json:"layers"`
	Checks []string `json:"checks"`
}

type SubmissionResponse struct {
	SubmissionID string          `json:"submission_id"`
	EntryCount   int             `json:"entry_count"`
	Batches      []BatchResponse `json:"batches"`
}

type ProgressResponse struct {
	Percent         float64 `json:"percent"`
	CompletedChecks int     `json:"completed_checks"`
	TotalChecks     int     `json:"total_checks"`
}

func FromSubmissionResult(res usecase.SubmissionResult) SubmissionResponse {
	out := SubmissionResponse{
		SubmissionID: res.SubmissionID,
		EntryCount:   res.EntryCount,
	}
	for _, b := range res.Batches {
		out.Batches = append(out.Batches, BatchResponse{
			Side:   string(b.Side),
			Layers: b.Layers,
			Checks: b.Checks,
		})
	}
	return out
}

func FromProgress(res inspection.ProgressResult) ProgressResponse {
	return ProgressResponse{
		Percent:         res.Percent,
		CompletedChecks: res.CompletedChecks,
		TotalChecks:     res.TotalChecks,
	}
}
