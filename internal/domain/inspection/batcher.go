package inspection

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"roadinspect/internal/domain/entities"
	"roadinspect/internal/domain/workflow"
)

// Batch is one side-correct slice of a submission: the layers and checks
// that share a single target side.
type Batch struct {
	Side   entities.Side
	Layers []string
	Checks []string
}

// EntryMeta is the data shared by every atomic entry expanded from one
// submission.
type EntryMeta struct {
	RoadSectionID    string
	PhaseID          string
	StartPK          float64
	EndPK            float64
	Types            []string
	Remark           string
	AppointmentDate  time.Time
	SubmissionNumber string
}

// BuildBatches splits a selection into side-correct batches.
//
// A layer is split by side only when the query side is BOTH and its existing
// commitments are asymmetric (one side booked, the other not); the split
// layer then targets the still-uncommitted side. Checks follow their owning
// layer's bucket. When any check's owning layer cannot be resolved within
// the selection the bucketing is abandoned for a single fallback batch
// carrying everything on the query side: over-submitting one side is safer
// than silently dropping a check.
func BuildBatches(tpl workflow.WorkflowTemplate, querySide entities.Side, start, end float64, layers, checks []string, snapshots []entities.InspectionSnapshot) []Batch {
	type bucketID int
	const (
		bucketLeft bucketID = iota
		bucketRight
		bucketBoth
	)

	layerBucket := make(map[string]bucketID, len(layers))
	buckets := map[bucketID]*Batch{
		bucketLeft:  {Side: entities.SideLeft},
		bucketRight: {Side: entities.SideRight},
		bucketBoth:  {Side: querySide},
	}

	for _, name := range layers {
		id := bucketBoth
		if layer, ok := tpl.LayerByName(name); ok && querySide == entities.SideBoth {
			if target, split := resolveSplitTargetSide(layer, start, end, snapshots); split {
				if target == entities.SideLeft {
					id = bucketLeft
				} else {
					id = bucketRight
				}
			}
		}
		layerBucket[entities.NormalizeName(name)] = id
		buckets[id].Layers = append(buckets[id].Layers, name)
	}

	hasMissingMeta := false
	for _, name := range checks {
		owner, ok := checkOwnerInSelection(tpl, name, layers)
		if !ok {
			hasMissingMeta = true
			break
		}
		id := layerBucket[entities.NormalizeName(owner)]
		buckets[id].Checks = append(buckets[id].Checks, name)
	}

	if hasMissingMeta {
		return []Batch{{Side: querySide, Layers: layers, Checks: checks}}
	}

	var out []Batch
	for _, id := range []bucketID{bucketLeft, bucketRight, bucketBoth} {
		if b := buckets[id]; len(b.Layers) > 0 {
			out = append(out, *b)
		}
	}
	return out
}

// resolveSplitTargetSide reports whether a layer queried as BOTH must be
// narrowed to a single side, and which one. True only for an asymmetric
// commitment; the returned side is the uncommitted one still needing
// inspection.
func resolveSplitTargetSide(layer workflow.WorkflowLayer, start, end float64, snapshots []entities.InspectionSnapshot) (entities.Side, bool) {
	left := layerSideCommitted(layer, entities.SideLeft, start, end, snapshots)
	right := layerSideCommitted(layer, entities.SideRight, start, end, snapshots)
	if left == right {
		return entities.SideBoth, false
	}
	if left {
		return entities.SideRight, true
	}
	return entities.SideLeft, true
}

func layerSideCommitted(layer workflow.WorkflowLayer, side entities.Side, start, end float64, snapshots []entities.InspectionSnapshot) bool {
	for _, sn := range snapshots {
		if !sn.Status.Committed() || !sn.Side.Matches(side) {
			continue
		}
		if !workflow.RangesOverlap(sn.StartPK, sn.EndPK, start, end) {
			continue
		}
		if snapshotForLayer(sn, layer) {
			return true
		}
	}
	return false
}

// snapshotForLayer relates a snapshot to a layer by the layer identity when
// the record carries one, else through the layer's own checks.
func snapshotForLayer(sn entities.InspectionSnapshot, layer workflow.WorkflowLayer) bool {
	if sn.LayerID != 0 || sn.LayerName != "" {
		return workflow.SnapshotMatchesLayer(sn, layer)
	}
	for _, c := range layer.Checks {
		if workflow.SnapshotMatchesCheck(sn, c) {
			return true
		}
	}
	return false
}

func checkOwnerInSelection(tpl workflow.WorkflowTemplate, checkName string, selectedLayers []string) (string, bool) {
	if owner, ok := tpl.CheckOwner(checkName); ok {
		for _, name := range selectedLayers {
			if entities.NormalizeName(name) == entities.NormalizeName(owner.Name) {
				return name, true
			}
		}
	}

	// Fallback: walk the selected layers' own check sets.
	n := entities.NormalizeName(checkName)
	for _, name := range selectedLayers {
		layer, ok := tpl.LayerByName(name)
		if !ok {
			continue
		}
		for _, c := range layer.Checks {
			if entities.NormalizeName(c.Name) == n {
				return name, true
			}
		}
	}
	return "", false
}

// ExpandEntries turns one batch into its atomic entries: the cross product
// of de-duplicated layer and check names, each carrying the shared metadata
// and the initial scheduled status.
func ExpandEntries(b Batch, meta EntryMeta) []entities.InspectionEntry {
	layers := dedupNames(b.Layers)
	checks := dedupNames(b.Checks)
	remark := strings.TrimSpace(meta.Remark)

	out := make([]entities.InspectionEntry, 0, len(layers)*len(checks))
	for _, layer := range layers {
		for _, check := range checks {
			out = append(out, entities.InspectionEntry{
				ID:               uuid.NewString(),
				RoadSectionID:    meta.RoadSectionID,
				PhaseID:          meta.PhaseID,
				Side:             b.Side,
				StartPK:          meta.StartPK,
				EndPK:            meta.EndPK,
				LayerName:        layer,
				CheckName:        check,
				Types:            append([]string(nil), meta.Types...),
				Remark:           remark,
				AppointmentDate:  meta.AppointmentDate,
				Status:           entities.StatusScheduled,
				SubmissionNumber: meta.SubmissionNumber,
			})
		}
	}
	return out
}

func dedupNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, n := range names {
		key := entities.NormalizeName(n)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}
