package workflow

import (
	"strings"
	"testing"

	"roadinspect/internal/domain/entities"
)

func validTemplate() WorkflowTemplate {
	return WorkflowTemplate{
		ID:        "wf-test",
		PhaseName: "test phase",
		Measure:   entities.MeasureLinear,
		Layers: []WorkflowLayer{
			{ID: 1, Name: "first", Stage: 1, Checks: []WorkflowCheck{{ID: 11, Name: "check a"}}},
			{ID: 2, Name: "second", Stage: 2, Dependencies: []int64{1}},
		},
	}
}

func TestNewRegistry(t *testing.T) {
	t.Run("builtin catalog is valid", func(t *testing.T) {
		if _, err := NewRegistry(Catalog(), DefaultPropagationRules()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty template id", func(t *testing.T) {
		tpl := validTemplate()
		tpl.ID = ""
		assertRegistryError(t, tpl, nil, "empty id")
	})

	t.Run("duplicate template id", func(t *testing.T) {
		_, err := NewRegistry([]WorkflowTemplate{validTemplate(), validTemplate()}, nil)
		if err == nil || !strings.Contains(err.Error(), "duplicate workflow template id") {
			t.Fatalf("expected duplicate id error, got %v", err)
		}
	})

	t.Run("layer without id", func(t *testing.T) {
		tpl := validTemplate()
		tpl.Layers[0].ID = 0
		assertRegistryError(t, tpl, nil, "has no id")
	})

	t.Run("non-positive stage", func(t *testing.T) {
		tpl := validTemplate()
		tpl.Layers[0].Stage = 0
		assertRegistryError(t, tpl, nil, "non-positive stage")
	})

	t.Run("duplicate layer id", func(t *testing.T) {
		tpl := validTemplate()
		tpl.Layers[1].ID = 1
		assertRegistryError(t, tpl, nil, "duplicate layer id")
	})

	t.Run("unknown dependency reference", func(t *testing.T) {
		tpl := validTemplate()
		tpl.Layers[1].Dependencies = []int64{99}
		assertRegistryError(t, tpl, nil, "unknown dependency layer id 99")
	})

	t.Run("self lock-step reference", func(t *testing.T) {
		tpl := validTemplate()
		tpl.Layers[0].LockStepWith = []int64{1}
		assertRegistryError(t, tpl, nil, "self lock-step reference")
	})

	t.Run("dependency on a later stage", func(t *testing.T) {
		tpl := validTemplate()
		tpl.Layers[0].Dependencies = []int64{2}
		assertRegistryError(t, tpl, nil, "later-or-equal stage")
	})

	t.Run("propagation rule with unknown phase", func(t *testing.T) {
		rules := []PropagationRule{{SourcePhaseName: "test phase", TargetPhaseName: "nowhere"}}
		_, err := NewRegistry([]WorkflowTemplate{validTemplate()}, rules)
		if err == nil || !strings.Contains(err.Error(), "unknown target phase") {
			t.Fatalf("expected unknown target phase error, got %v", err)
		}
	})
}

func assertRegistryError(t *testing.T, tpl WorkflowTemplate, rules []PropagationRule, substr string) {
	t.Helper()
	_, err := NewRegistry([]WorkflowTemplate{tpl}, rules)
	if err == nil || !strings.Contains(err.Error(), substr) {
		t.Fatalf("expected error containing %q, got %v", substr, err)
	}
}

func TestTemplateLookup(t *testing.T) {
	r := MustNewRegistry(Catalog(), DefaultPropagationRules())

	t.Run("by id", func(t *testing.T) {
		if _, ok := r.Template("wf-culvert"); !ok {
			t.Fatalf("expected wf-culvert")
		}
	})

	t.Run("by normalized phase name", func(t *testing.T) {
		tpl, ok := r.TemplateByPhaseName("  Sub-Base   Course ")
		if !ok || tpl.ID != "wf-sub-base" {
			t.Fatalf("expected wf-sub-base, got %+v ok=%v", tpl, ok)
		}
	})

	t.Run("template id wins over phase name", func(t *testing.T) {
		tpl, ok := r.TemplateForPhase("wf-earthworks", "culvert")
		if !ok || tpl.ID != "wf-earthworks" {
			t.Fatalf("expected wf-earthworks, got %+v ok=%v", tpl, ok)
		}
	})

	t.Run("phase name fallback on unknown template id", func(t *testing.T) {
		tpl, ok := r.TemplateForPhase("wf-missing", "earthworks")
		if !ok || tpl.ID != "wf-earthworks" {
			t.Fatalf("expected phase-name fallback, got %+v ok=%v", tpl, ok)
		}
	})
}

func TestTopStageLayer(t *testing.T) {
	r := MustNewRegistry(Catalog(), nil)
	tpl, _ := r.Template("wf-earthworks")
	top, ok := tpl.TopStageLayer()
	if !ok || top.Name != "top formation" {
		t.Fatalf("expected top formation, got %+v ok=%v", top, ok)
	}

	// Declaration order breaks a stage tie in favor of the later layer.
	tie := WorkflowTemplate{Layers: []WorkflowLayer{
		{ID: 1, Name: "a", Stage: 2},
		{ID: 2, Name: "b", Stage: 2},
	}}
	top, _ = tie.TopStageLayer()
	if top.Name != "b" {
		t.Fatalf("expected later-declared layer to win the tie, got %q", top.Name)
	}
}
