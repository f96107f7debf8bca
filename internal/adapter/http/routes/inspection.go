package routes

import (
	"roadinspect/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRoads = "/roads"
)

func addInspectionRoutes(
	rg *gin.RouterGroup,
	timelineHandler *handlers.TimelineHandler,
	selectionHandler *handlers.SelectionHandler,
	submissionHandler *handlers.SubmissionHandler,
) {
	phases := rg.Group(PathRoads + "/:road_id/phases/:phase_id")
	{
		phases.GET("/timeline", timelineHandler.GetTimeline)
		phases.GET("/progress", timelineHandler.GetProgress)
		phases.POST("/selection", selectionHandler.EvaluateSelection)
		phases.POST("/submissions", submissionHandler.CreateSubmission)
	}
}
