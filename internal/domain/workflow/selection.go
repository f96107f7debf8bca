package workflow

import "roadinspect/internal/domain/entities"

// SelectionState is the caller's current pick of layers and checks for one
// submission. ExcludedChecks remembers checks the user explicitly removed,
// so re-selecting a layer does not resurrect them.
type SelectionState struct {
	Layers         []string
	Checks         []string
	ExcludedChecks map[string]bool
}

func (s SelectionState) hasLayer(tpl WorkflowTemplate, name string) bool {
	n := entities.NormalizeName(name)
	for _, l := range s.Layers {
		if entities.NormalizeName(l) == n {
			return true
		}
	}
	return false
}

func (s SelectionState) excluded(name string) bool {
	return s.ExcludedChecks[entities.NormalizeName(name)]
}

// LayerSelectable decides whether a candidate layer can be toggled on given
// the current selection.
//
// With nothing selected every layer is a valid starting point. Otherwise the
// candidate's stage must sit in the window {minSelectedStage,
// minSelectedStage+1}; a candidate outside the window is only allowed when
// it is explicitly compatible (same layer, lock-stepped or parallel, in
// either direction) with something already selected. Inside the window, a
// selection that contains lock-step group members refuses candidates
// unrelated to the group, so locked groups are chosen together or not mixed.
func LayerSelectable(tpl WorkflowTemplate, selected []string, candidate string) bool {
	cand, ok := tpl.LayerByName(candidate)
	if !ok {
		return false
	}

	sel := resolveLayers(tpl, selected)
	if len(sel) == 0 {
		return true
	}

	minStage := sel[0].Stage
	for _, l := range sel[1:] {
		if l.Stage < minStage {
			minStage = l.Stage
		}
	}

	compatible := false
	lockGrouped := false
	for _, l := range sel {
		if layersCompatible(cand, l) {
			compatible = true
		}
		if len(l.LockStepWith) > 0 {
			lockGrouped = true
		}
	}

	if cand.Stage != minStage && cand.Stage != minStage+1 {
		return compatible
	}
	if lockGrouped && !compatible {
		return false
	}
	return true
}

// ToggleLayer flips a layer in the selection. Selecting one member of a
// lock-step group selects the whole group; deselecting any member drops the
// group. Checks that lose their owning layer are silently removed, except
// those the user already excluded stay excluded.
func ToggleLayer(tpl WorkflowTemplate, st SelectionState, name string) SelectionState {
	layer, ok := tpl.LayerByName(name)
	if !ok {
		return st
	}

	group := map[string]bool{entities.NormalizeName(layer.Name): true}
	for _, id := range layer.LockStepWith {
		if member, ok := tpl.LayerByID(id); ok {
			group[entities.NormalizeName(member.Name)] = true
		}
	}

	out := cloneState(st)
	if st.hasLayer(tpl, name) {
		kept := out.Layers[:0]
		for _, l := range out.Layers {
			if !group[entities.NormalizeName(l)] {
				kept = append(kept, l)
			}
		}
		out.Layers = kept
	} else {
		for _, l := range tpl.Layers {
			n := entities.NormalizeName(l.Name)
			if group[n] && !out.hasLayer(tpl, l.Name) {
				out.Layers = append(out.Layers, l.Name)
			}
		}
	}

	return dropDisallowedChecks(tpl, out)
}

// ToggleCheck flips a check. Toggling off records an explicit exclusion;
// toggling on clears it. A check outside the allowed set cannot be toggled
// on.
func ToggleCheck(tpl WorkflowTemplate, st SelectionState, name string) SelectionState {
	out := cloneState(st)
	n := entities.NormalizeName(name)

	for i, c := range out.Checks {
		if entities.NormalizeName(c) == n {
			out.Checks = append(out.Checks[:i], out.Checks[i+1:]...)
			out.ExcludedChecks[n] = true
			return out
		}
	}

	for _, c := range AllowedChecks(tpl, out.Layers) {
		if entities.NormalizeName(c.Name) == n {
			out.Checks = append(out.Checks, c.Name)
			delete(out.ExcludedChecks, n)
			return out
		}
	}
	return st
}

// AllowedChecks is the union of checks belonging to the selected layers, in
// template order.
func AllowedChecks(tpl WorkflowTemplate, selectedLayers []string) []WorkflowCheck {
	var out []WorkflowCheck
	for _, l := range resolveLayers(tpl, selectedLayers) {
		out = append(out, l.Checks...)
	}
	return out
}

// OfferedTypes intersects the template's default inspection types with the
// union of types declared on the selected checks. An empty intersection
// falls back to the full default list so a type picker is never empty.
func OfferedTypes(tpl WorkflowTemplate, selectedChecks []string) []string {
	declared := map[string]bool{}
	for _, name := range selectedChecks {
		n := entities.NormalizeName(name)
		for _, c := range tpl.AllChecks() {
			if entities.NormalizeName(c.Name) != n {
				continue
			}
			for _, typ := range c.Types {
				declared[entities.NormalizeName(typ)] = true
			}
		}
	}

	var out []string
	for _, typ := range tpl.DefaultTypes {
		if declared[entities.NormalizeName(typ)] {
			out = append(out, typ)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), tpl.DefaultTypes...)
	}
	return out
}

// LayerLocked reports whether a layer is read-only for the side in view: it
// is locked once every one of its checks has a committed snapshot on a
// matching side overlapping the booking range.
func LayerLocked(layer WorkflowLayer, side entities.Side, start, end float64, snapshots []entities.InspectionSnapshot) bool {
	if len(layer.Checks) == 0 {
		return false
	}
	for _, check := range layer.Checks {
		if !checkBooked(layer, check, side, start, end, snapshots) {
			return false
		}
	}
	return true
}

func checkBooked(layer WorkflowLayer, check WorkflowCheck, side entities.Side, start, end float64, snapshots []entities.InspectionSnapshot) bool {
	for _, sn := range snapshots {
		if !sn.Status.Committed() || !sn.Side.Matches(side) {
			continue
		}
		if !RangesOverlap(sn.StartPK, sn.EndPK, start, end) {
			continue
		}
		if !SnapshotMatchesCheck(sn, check) {
			continue
		}
		if (sn.LayerID != 0 || sn.LayerName != "") && !SnapshotMatchesLayer(sn, layer) {
			continue
		}
		return true
	}
	return false
}

// RangesOverlap is the closed-interval overlap test used for booking
// decisions: touching endpoints count as overlap.
func RangesOverlap(aStart, aEnd, bStart, bEnd float64) bool {
	alo, ahi := orderRange(aStart, aEnd)
	blo, bhi := orderRange(bStart, bEnd)
	return !(ahi < blo || alo > bhi)
}

func orderRange(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}

func layersCompatible(a, b WorkflowLayer) bool {
	if a.ID == b.ID {
		return true
	}
	return refersTo(a.LockStepWith, b.ID) || refersTo(b.LockStepWith, a.ID) ||
		refersTo(a.ParallelWith, b.ID) || refersTo(b.ParallelWith, a.ID)
}

func refersTo(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func resolveLayers(tpl WorkflowTemplate, names []string) []WorkflowLayer {
	var out []WorkflowLayer
	for _, name := range names {
		if l, ok := tpl.LayerByName(name); ok {
			out = append(out, l)
		}
	}
	return out
}

func dropDisallowedChecks(tpl WorkflowTemplate, st SelectionState) SelectionState {
	allowed := map[string]bool{}
	for _, c := range AllowedChecks(tpl, st.Layers) {
		allowed[entities.NormalizeName(c.Name)] = true
	}
	kept := st.Checks[:0]
	for _, c := range st.Checks {
		if allowed[entities.NormalizeName(c)] {
			kept = append(kept, c)
		}
	}
	st.Checks = kept
	return st
}

func cloneState(st SelectionState) SelectionState {
	out := SelectionState{
		Layers:         append([]string(nil), st.Layers...),
		Checks:         append([]string(nil), st.Checks...),
		ExcludedChecks: make(map[string]bool, len(st.ExcludedChecks)),
	}
	for k, v := range st.ExcludedChecks {
		out.ExcludedChecks[k] = v
	}
	return out
}
