package inspection

import (
	"roadinspect/internal/domain/entities"
	"roadinspect/internal/domain/workflow"
)

// ProgressResult is the per-check completion summary of a phase range.
type ProgressResult struct {
	Percent         float64
	CompletedChecks int
	TotalChecks     int
}

// PercentComplete counts, for every check of the (optionally layer-filtered)
// workflow, whether any snapshot on a candidate side of the range is exactly
// approved. Side candidacy is looser than booking: a BOTH query accepts
// single-side evidence and a single-side query accepts BOTH evidence.
func PercentComplete(tpl workflow.WorkflowTemplate, snapshots []entities.InspectionSnapshot, side entities.Side, start, end float64, allowedLayers []string) ProgressResult {
	filter := map[string]bool{}
	for _, name := range allowedLayers {
		filter[entities.NormalizeName(name)] = true
	}

	res := ProgressResult{}
	for _, layer := range tpl.Layers {
		if len(filter) > 0 && !filter[entities.NormalizeName(layer.Name)] {
			continue
		}
		for _, check := range layer.Checks {
			res.TotalChecks++
			if checkApproved(layer, check, snapshots, side, start, end) {
				res.CompletedChecks++
			}
		}
	}

	if res.TotalChecks > 0 {
		res.Percent = float64(res.CompletedChecks) / float64(res.TotalChecks) * 100
	}
	return res
}

func checkApproved(layer workflow.WorkflowLayer, check workflow.WorkflowCheck, snapshots []entities.InspectionSnapshot, side entities.Side, start, end float64) bool {
	for _, sn := range snapshots {
		if sn.Status != entities.StatusApproved {
			continue
		}
		if !progressSideMatch(sn.Side, side) {
			continue
		}
		if !workflow.RangesOverlap(sn.StartPK, sn.EndPK, start, end) {
			continue
		}
		if !workflow.SnapshotMatchesCheck(sn, check) {
			continue
		}
		if (sn.LayerID != 0 || sn.LayerName != "") && !workflow.SnapshotMatchesLayer(sn, layer) {
			continue
		}
		return true
	}
	return false
}

func progressSideMatch(snapSide, querySide entities.Side) bool {
	if querySide == entities.SideBoth || snapSide == entities.SideBoth {
		return true
	}
	return snapSide == querySide
}
