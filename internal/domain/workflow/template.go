package workflow

import "roadinspect/internal/domain/entities"

// SideRulePerSide on a template means every point of a phase built from it
// carries an explicit carriageway side.
const SideRulePerSide = "per_side"

// WorkflowTemplate is the static description of one phase workflow: its
// construction layers, their checks, and the dependency/lock rules between
// them. Templates are catalog data, never persisted per-instance.
type WorkflowTemplate struct {
	ID           string
	PhaseName    string
	Measure      entities.Measure
	SideRule     string
	DefaultTypes []string
	Layers       []WorkflowLayer
}

// WorkflowLayer is one construction sub-step. Stage gates ordering;
// Dependencies name layers that must have started first; LockStepWith names
// layers that must be selected as a unit with this one; ParallelWith names
// layers that may proceed independently but are compatible in one
// submission.
type WorkflowLayer struct {
	ID           int64
	Name         string
	Stage        int
	Dependencies []int64
	LockStepWith []int64
	ParallelWith []int64
	Checks       []WorkflowCheck
}

// WorkflowCheck is one inspection item belonging to a layer. Types are the
// inspection kinds (site/survey/lab) the check can be booked as.
type WorkflowCheck struct {
	ID    int64
	Name  string
	Types []string
	Notes string
}

// LayerByID resolves a layer id within the template.
func (t WorkflowTemplate) LayerByID(id int64) (WorkflowLayer, bool) {
	for _, l := range t.Layers {
		if l.ID == id {
			return l, true
		}
	}
	return WorkflowLayer{}, false
}

// LayerByName resolves a layer by normalized name.
func (t WorkflowTemplate) LayerByName(name string) (WorkflowLayer, bool) {
	n := entities.NormalizeName(name)
	for _, l := range t.Layers {
		if entities.NormalizeName(l.Name) == n {
			return l, true
		}
	}
	return WorkflowLayer{}, false
}

// CheckOwner resolves which layer a check name belongs to.
func (t WorkflowTemplate) CheckOwner(checkName string) (WorkflowLayer, bool) {
	n := entities.NormalizeName(checkName)
	for _, l := range t.Layers {
		for _, c := range l.Checks {
			if entities.NormalizeName(c.Name) == n {
				return l, true
			}
		}
	}
	return WorkflowLayer{}, false
}

// TopStageLayer returns the highest-stage layer; declaration order breaks
// ties in favor of the later layer.
func (t WorkflowTemplate) TopStageLayer() (WorkflowLayer, bool) {
	var top WorkflowLayer
	found := false
	for _, l := range t.Layers {
		if !found || l.Stage >= top.Stage {
			top = l
			found = true
		}
	}
	return top, found
}

// AllChecks returns every check in the template, in layer order.
func (t WorkflowTemplate) AllChecks() []WorkflowCheck {
	var out []WorkflowCheck
	for _, l := range t.Layers {
		out = append(out, l.Checks...)
	}
	return out
}

// SnapshotMatchesLayer reports whether a snapshot references the given
// layer, trying the numeric id first and the normalized name as fallback. A
// snapshot with no layer reference matches nothing.
func SnapshotMatchesLayer(sn entities.InspectionSnapshot, l WorkflowLayer) bool {
	if sn.LayerID != 0 {
		return sn.LayerID == l.ID
	}
	if sn.LayerName != "" {
		return entities.NormalizeName(sn.LayerName) == entities.NormalizeName(l.Name)
	}
	return false
}

// SnapshotMatchesCheck reports whether a snapshot references the given
// check, with the same id-then-name fallback as layers.
func SnapshotMatchesCheck(sn entities.InspectionSnapshot, c WorkflowCheck) bool {
	if sn.CheckID != 0 {
		return sn.CheckID == c.ID
	}
	if sn.CheckName != "" {
		return entities.NormalizeName(sn.CheckName) == entities.NormalizeName(c.Name)
	}
	return false
}
