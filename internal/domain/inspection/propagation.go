package inspection

import (
	"roadinspect/internal/domain/entities"
	"roadinspect/internal/domain/workflow"
)

// ExpandDerived appends the snapshots implied by the registry's propagation
// rules: a committed snapshot on a source phase yields approved snapshots
// for every check of the target phase's top-stage layer at the same
// range/side. Derived snapshots feed merge, booking and progress like real
// ones but are flagged so they never reach the write collaborator.
func ExpandDerived(reg *workflow.Registry, phases []entities.Phase, snapshots []entities.InspectionSnapshot) []entities.InspectionSnapshot {
	out := snapshots
	for _, rule := range reg.PropagationRules() {
		sources := phasesByName(phases, rule.SourcePhaseName)
		targets := phasesByName(phases, rule.TargetPhaseName)
		if len(sources) == 0 || len(targets) == 0 {
			continue
		}

		tpl, ok := reg.TemplateByPhaseName(rule.TargetPhaseName)
		if !ok {
			continue
		}
		top, ok := tpl.TopStageLayer()
		if !ok {
			continue
		}

		for _, sn := range snapshots {
			if sn.Derived || !sn.Status.Committed() {
				continue
			}
			if !snapshotBelongsToAny(sn, sources) {
				continue
			}
			for _, target := range targets {
				for _, check := range top.Checks {
					out = append(out, entities.InspectionSnapshot{
						RoadSectionID: sn.RoadSectionID,
						PhaseID:       target.ID,
						PhaseName:     target.Name,
						StartPK:       sn.StartPK,
						EndPK:         sn.EndPK,
						Side:          sn.Side,
						Status:        entities.StatusApproved,
						LayerID:       top.ID,
						LayerName:     top.Name,
						CheckID:       check.ID,
						CheckName:     check.Name,
						UpdatedAt:     sn.UpdatedAt,
						Derived:       true,
					})
				}
			}
		}
	}
	return out
}

// SnapshotBelongsToPhase matches a snapshot to a phase instance, preferring
// the phase id and falling back to the normalized phase name, because some
// records reference the phase by name only.
func SnapshotBelongsToPhase(sn entities.InspectionSnapshot, phase entities.Phase) bool {
	if sn.PhaseID != "" {
		if sn.PhaseID == phase.ID {
			return true
		}
		if sn.PhaseName == "" {
			return false
		}
	}
	return sn.PhaseName != "" &&
		entities.NormalizeName(sn.PhaseName) == entities.NormalizeName(phase.Name)
}

// FilterPhase keeps the snapshots belonging to one phase.
func FilterPhase(snapshots []entities.InspectionSnapshot, phase entities.Phase) []entities.InspectionSnapshot {
	var out []entities.InspectionSnapshot
	for _, sn := range snapshots {
		if SnapshotBelongsToPhase(sn, phase) {
			out = append(out, sn)
		}
	}
	return out
}

func phasesByName(phases []entities.Phase, name string) []entities.Phase {
	n := entities.NormalizeName(name)
	var out []entities.Phase
	for _, p := range phases {
		if entities.NormalizeName(p.Name) == n {
			out = append(out, p)
		}
	}
	return out
}

func snapshotBelongsToAny(sn entities.InspectionSnapshot, phases []entities.Phase) bool {
	for _, p := range phases {
		if SnapshotBelongsToPhase(sn, p) {
			return true
		}
	}
	return false
}
