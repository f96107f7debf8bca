package response

import (
	"github.com/shopspring/decimal"

	"roadinspect/internal/domain/entities"
	"roadinspect/internal/domain/timeline"
)

type SegmentResponse struct {
	Start         float64          `json:"start"`
	End           float64          `json:"end"`
	Status        string           `json:"status"`
	Spec          string           `json:"spec,omitempty"`
	BillQuantity  *decimal.Decimal `json:"bill_quantity,omitempty"`
	PointHasSides bool             `json:"point_has_sides,omitempty"`
}

type LinearTimelineResponse struct {
	Measure string            `json:"measure"`
	Total   float64           `json:"total"`
	Left    []SegmentResponse `json:"left"`
	Right   []SegmentResponse `json:"right"`
}

type PointMarkerResponse struct {
	SegmentResponse
	Side string `json:"side"`
}

type PointTimelineResponse struct {
	Measure string                `json:"measure"`
	Min     float64               `json:"min"`
	Max     float64               `json:"max"`
	Points  []PointMarkerResponse `json:"points"`
}

func FromLinearTimeline(tl timeline.LinearTimeline) LinearTimelineResponse {
	return LinearTimelineResponse{
		Measure: string(entities.MeasureLinear),
		Total:   tl.Total,
		Left:    fromSegments(tl.Left),
		Right:   fromSegments(tl.Right),
	}
}

func FromPointTimeline(tl timeline.PointTimeline) PointTimelineResponse {
	out := PointTimelineResponse{
		Measure: string(entities.MeasurePoint),
		Min:     tl.Min,
		Max:     tl.Max,
	}
	for _, p := range tl.Points {
		out.Points = append(out.Points, PointMarkerResponse{
			SegmentResponse: fromSegment(p.Segment),
			Side:            string(p.Side),
		})
	}
	return out
}

func fromSegments(segs []entities.Segment) []SegmentResponse {
	out := make([]SegmentResponse, 0, len(segs))
	for _, s := range segs {
		out = append(out, fromSegment(s))
	}
	return out
}

func fromSegment(s entities.Segment) SegmentResponse {
	return SegmentResponse{
		Start:         s.Start,
		End:           s.End,
		Status:        string(s.Status),
		Spec:          s.Spec,
		BillQuantity:  s.BillQuantity,
		PointHasSides: s.PointHasSides,
	}
}
