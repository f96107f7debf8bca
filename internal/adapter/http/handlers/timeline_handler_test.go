package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"roadinspect/internal/adapter/http/handlers/mocks"
	"roadinspect/internal/domain/entities"
	"roadinspect/internal/domain/inspection"
	"roadinspect/internal/domain/timeline"
	"roadinspect/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func timelineRouter(h *TimelineHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/roads/:road_id/phases/:phase_id/timeline", h.GetTimeline)
	r.GET("/v1/roads/:road_id/phases/:phase_id/progress", h.GetProgress)
	return r
}

func TestTimelineHandler_GetTimeline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("linear phase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)

		uc.EXPECT().LinearTimeline(gomock.Any(), "rd-1", "ph-1").Return(usecase.LinearTimelineResult{
			Timeline: timeline.LinearTimeline{
				Total: 1000,
				Left:  []entities.Segment{{Start: 0, End: 400, Status: entities.StatusPending}},
				Right: []entities.Segment{{Start: 0, End: 400, Status: entities.StatusPending}},
			},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/roads/rd-1/phases/ph-1/timeline", nil)
		timelineRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["measure"] != "LINEAR" || body["total"] != float64(1000) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("point phase falls back to the point view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)

		uc.EXPECT().LinearTimeline(gomock.Any(), "rd-1", "ph-2").Return(usecase.LinearTimelineResult{}, usecase.ErrMeasureMismatch)
		uc.EXPECT().PointTimeline(gomock.Any(), "rd-1", "ph-2").Return(usecase.PointTimelineResult{
			Timeline: timeline.PointTimeline{
				Min: 150, Max: 300,
				Points: []timeline.PointMarker{{
					Segment: entities.Segment{Start: 150, End: 150, Status: entities.StatusApproved},
					Side:    entities.SideLeft,
				}},
			},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/roads/rd-1/phases/ph-2/timeline", nil)
		timelineRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["measure"] != "POINT" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("phase not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)

		uc.EXPECT().LinearTimeline(gomock.Any(), "rd-1", "ph-x").Return(usecase.LinearTimelineResult{}, usecase.ErrPhaseNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/roads/rd-1/phases/ph-x/timeline", nil)
		timelineRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PHASE_NOT_FOUND" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)

		uc.EXPECT().LinearTimeline(gomock.Any(), "rd-1", "ph-1").Return(usecase.LinearTimelineResult{}, errors.New("db down"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/roads/rd-1/phases/ph-1/timeline", nil)
		timelineRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestTimelineHandler_GetProgress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes the parsed query through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)

		uc.EXPECT().Progress(gomock.Any(), usecase.ProgressQuery{
			RoadSectionID: "rd-1",
			PhaseID:       "ph-1",
			Side:          entities.SideLeft,
			StartPK:       100,
			EndPK:         400,
			Layers:        []string{"compaction", "spreading"},
		}).Return(inspection.ProgressResult{Percent: 50, CompletedChecks: 2, TotalChecks: 4}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/v1/roads/rd-1/phases/ph-1/progress?side=left&start=100&end=400&layers=compaction,%20spreading", nil)
		timelineRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["percent"] != float64(50) || body["total_checks"] != float64(4) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("road section not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)

		uc.EXPECT().Progress(gomock.Any(), gomock.Any()).Return(inspection.ProgressResult{}, usecase.ErrRoadSectionNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/roads/rd-x/phases/ph-1/progress", nil)
		timelineRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
