package workflow

import (
	"fmt"

	"roadinspect/internal/domain/entities"
)

// PropagationRule declares that a committed snapshot on the source phase
// implies an approved snapshot on the top layer of the target phase at the
// same range/side. Rules are explicit catalog data, never inferred.
type PropagationRule struct {
	SourcePhaseName string
	TargetPhaseName string
}

// Registry is the immutable catalog of workflow templates. It is constructed
// once at process start and injected into every engine call; template
// configuration violations are fatal at load time, not runtime.
type Registry struct {
	templates   map[string]WorkflowTemplate
	byPhaseName map[string]string
	propagation []PropagationRule
}

// NewRegistry validates and indexes the given templates. Every
// dependency/lock-step/parallel reference must resolve to another layer in
// the same template, and a layer can only depend on strictly earlier stages.
func NewRegistry(templates []WorkflowTemplate, rules []PropagationRule) (*Registry, error) {
	r := &Registry{
		templates:   make(map[string]WorkflowTemplate, len(templates)),
		byPhaseName: make(map[string]string, len(templates)),
		propagation: rules,
	}

	for _, tpl := range templates {
		if tpl.ID == "" {
			return nil, fmt.Errorf("workflow template with empty id (phase %q)", tpl.PhaseName)
		}
		if _, dup := r.templates[tpl.ID]; dup {
			return nil, fmt.Errorf("duplicate workflow template id %q", tpl.ID)
		}
		if err := validateTemplate(tpl); err != nil {
			return nil, fmt.Errorf("template %q: %w", tpl.ID, err)
		}
		r.templates[tpl.ID] = tpl
		r.byPhaseName[entities.NormalizeName(tpl.PhaseName)] = tpl.ID
	}

	for _, rule := range rules {
		if _, ok := r.TemplateByPhaseName(rule.SourcePhaseName); !ok {
			return nil, fmt.Errorf("propagation rule references unknown source phase %q", rule.SourcePhaseName)
		}
		tgt, ok := r.TemplateByPhaseName(rule.TargetPhaseName)
		if !ok {
			return nil, fmt.Errorf("propagation rule references unknown target phase %q", rule.TargetPhaseName)
		}
		if len(tgt.Layers) == 0 {
			return nil, fmt.Errorf("propagation target phase %q has no layers", rule.TargetPhaseName)
		}
	}

	return r, nil
}

// MustNewRegistry is NewRegistry for process startup: a configuration error
// in the catalog is not recoverable at request time.
func MustNewRegistry(templates []WorkflowTemplate, rules []PropagationRule) *Registry {
	r, err := NewRegistry(templates, rules)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Template(id string) (WorkflowTemplate, bool) {
	tpl, ok := r.templates[id]
	return tpl, ok
}

func (r *Registry) TemplateByPhaseName(name string) (WorkflowTemplate, bool) {
	id, ok := r.byPhaseName[entities.NormalizeName(name)]
	if !ok {
		return WorkflowTemplate{}, false
	}
	return r.templates[id], true
}

// TemplateForPhase resolves a phase's template by definition template id
// first, falling back to the phase name.
func (r *Registry) TemplateForPhase(templateID, phaseName string) (WorkflowTemplate, bool) {
	if templateID != "" {
		if tpl, ok := r.Template(templateID); ok {
			return tpl, true
		}
	}
	return r.TemplateByPhaseName(phaseName)
}

func (r *Registry) PropagationRules() []PropagationRule {
	return r.propagation
}

func validateTemplate(tpl WorkflowTemplate) error {
	byID := make(map[int64]WorkflowLayer, len(tpl.Layers))
	for _, l := range tpl.Layers {
		if l.ID == 0 {
			return fmt.Errorf("layer %q has no id", l.Name)
		}
		if l.Stage <= 0 {
			return fmt.Errorf("layer %q has non-positive stage %d", l.Name, l.Stage)
		}
		if _, dup := byID[l.ID]; dup {
			return fmt.Errorf("duplicate layer id %d", l.ID)
		}
		byID[l.ID] = l
	}

	for _, l := range tpl.Layers {
		for _, dep := range l.Dependencies {
			target, err := resolveRef(byID, l, dep, "dependency")
			if err != nil {
				return err
			}
			if target.Stage >= l.Stage {
				return fmt.Errorf("layer %q (stage %d) depends on later-or-equal stage layer %q (stage %d)",
					l.Name, l.Stage, target.Name, target.Stage)
			}
		}
		for _, id := range l.LockStepWith {
			if _, err := resolveRef(byID, l, id, "lock-step"); err != nil {
				return err
			}
		}
		for _, id := range l.ParallelWith {
			if _, err := resolveRef(byID, l, id, "parallel"); err != nil {
				return err
			}
		}
	}
	return nil
}

func resolveRef(byID map[int64]WorkflowLayer, from WorkflowLayer, id int64, kind string) (WorkflowLayer, error) {
	if id == from.ID {
		return WorkflowLayer{}, fmt.Errorf("layer %q has a self %s reference", from.Name, kind)
	}
	target, ok := byID[id]
	if !ok {
		return WorkflowLayer{}, fmt.Errorf("layer %q references unknown %s layer id %d", from.Name, kind, id)
	}
	return target, nil
}
