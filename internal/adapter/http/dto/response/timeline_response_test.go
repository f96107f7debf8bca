package response

import (
	"encoding/json"
	"testing"

	"roadinspect/internal/domain/entities"
	"roadinspect/internal/domain/inspection"
	"roadinspect/internal/domain/timeline"
	"roadinspect/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromLinearTimeline(t *testing.T) {
	qty := decimal.NewFromFloat(125.5)
	tl := timeline.LinearTimeline{
		Total: 1000,
		Left: []entities.Segment{
			{Start: 0, End: 400, Status: entities.StatusApproved, Spec: "CBR 15", BillQuantity: &qty},
			{Start: 400, End: 1000, Status: entities.StatusNonDesign},
		},
		Right: []entities.Segment{{Start: 0, End: 1000, Status: entities.StatusPending}},
	}

	got := FromLinearTimeline(tl)
	if got.Measure != "LINEAR" || got.Total != 1000 {
		t.Fatalf("unexpected response: %+v", got)
	}
	if len(got.Left) != 2 || got.Left[0].Status != "approved" || got.Left[1].Status != "non_design" {
		t.Fatalf("unexpected left segments: %+v", got.Left)
	}

	raw, err := json.Marshal(got.Left[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	_ = json.Unmarshal(raw, &m)
	if m["spec"] != "CBR 15" || m["bill_quantity"] != "125.5" {
		t.Fatalf("unexpected segment json: %v", m)
	}
	// Empty optional fields stay out of the payload.
	raw, _ = json.Marshal(got.Left[1])
	m = map[string]any{}
	_ = json.Unmarshal(raw, &m)
	if _, ok := m["spec"]; ok {
		t.Fatalf("expected omitted spec, got %v", m)
	}
}

func TestFromPointTimeline(t *testing.T) {
	tl := timeline.PointTimeline{
		Min: 150, Max: 300,
		Points: []timeline.PointMarker{{
			Segment: entities.Segment{Start: 150, End: 150, Status: entities.StatusScheduled, PointHasSides: true},
			Side:    entities.SideLeft,
		}},
	}
	got := FromPointTimeline(tl)
	if got.Measure != "POINT" || got.Min != 150 || got.Max != 300 {
		t.Fatalf("unexpected response: %+v", got)
	}
	if len(got.Points) != 1 || got.Points[0].Side != "LEFT" || !got.Points[0].PointHasSides {
		t.Fatalf("unexpected points: %+v", got.Points)
	}
}

func TestFromSubmissionResult(t *testing.T) {
	got := FromSubmissionResult(usecase.SubmissionResult{
		SubmissionID: "sub-1",
		EntryCount:   4,
		Batches: []inspection.Batch{
			{Side: entities.SideRight, Layers: []string{"wall"}, Checks: []string{"rebar"}},
		},
	})
	if got.SubmissionID != "sub-1" || got.EntryCount != 4 {
		t.Fatalf("unexpected response: %+v", got)
	}
	if len(got.Batches) != 1 || got.Batches[0].Side != "RIGHT" {
		t.Fatalf("unexpected batches: %+v", got.Batches)
	}
}
