package workflow

import "roadinspect/internal/domain/entities"

// Catalog returns the built-in workflow templates. The catalog is plain
// data; NewRegistry validates it at startup.
func Catalog() []WorkflowTemplate {
	return []WorkflowTemplate{
		{
			ID:           "wf-earthworks",
			PhaseName:    "earthworks",
			Measure:      entities.MeasureLinear,
			DefaultTypes: []string{"site", "survey", "lab"},
			Layers: []WorkflowLayer{
				{
					ID: 101, Name: "clearing and grubbing", Stage: 1,
					Checks: []WorkflowCheck{
						{ID: 1011, Name: "ground clearance", Types: []string{"site", "survey"}},
					},
				},
				{
					ID: 102, Name: "subgrade preparation", Stage: 2, Dependencies: []int64{101},
					Checks: []WorkflowCheck{
						{ID: 1021, Name: "proof rolling", Types: []string{"site"}},
						{ID: 1022, Name: "compaction test", Types: []string{"lab"}},
					},
				},
				{
					ID: 103, Name: "embankment fill", Stage: 3, Dependencies: []int64{102}, ParallelWith: []int64{104},
					Checks: []WorkflowCheck{
						{ID: 1031, Name: "layer thickness", Types: []string{"survey", "site"}},
						{ID: 1032, Name: "field density test", Types: []string{"lab"}},
					},
				},
				{
					ID: 104, Name: "rock fill", Stage: 3, Dependencies: []int64{102}, ParallelWith: []int64{103},
					Checks: []WorkflowCheck{
						{ID: 1041, Name: "rock grading", Types: []string{"lab"}},
					},
				},
				{
					ID: 105, Name: "top formation", Stage: 4, Dependencies: []int64{103},
					Checks: []WorkflowCheck{
						{ID: 1051, Name: "level survey", Types: []string{"survey"}},
						{ID: 1052, Name: "surface compaction", Types: []string{"site", "lab"}},
					},
				},
			},
		},
		{
			ID:           "wf-sub-base",
			PhaseName:    "sub-base course",
			Measure:      entities.MeasureLinear,
			DefaultTypes: []string{"site", "survey", "lab"},
			Layers: []WorkflowLayer{
				{
					ID: 201, Name: "material approval", Stage: 1,
					Checks: []WorkflowCheck{
						{ID: 2011, Name: "source gradation", Types: []string{"lab"}},
					},
				},
				{
					ID: 202, Name: "spreading", Stage: 2, Dependencies: []int64{201},
					Checks: []WorkflowCheck{
						{ID: 2021, Name: "loose thickness", Types: []string{"site", "survey"}},
					},
				},
				{
					ID: 203, Name: "compaction", Stage: 3, Dependencies: []int64{202},
					Checks: []WorkflowCheck{
						{ID: 2031, Name: "density test", Types: []string{"lab"}},
						{ID: 2032, Name: "finished level", Types: []string{"survey"}},
					},
				},
			},
		},
		{
			ID:           "wf-culvert",
			PhaseName:    "culvert",
			Measure:      entities.MeasurePoint,
			SideRule:     SideRulePerSide,
			DefaultTypes: []string{"site", "survey", "lab"},
			Layers: []WorkflowLayer{
				{
					ID: 301, Name: "excavation", Stage: 1,
					Checks: []WorkflowCheck{
						{ID: 3011, Name: "formation level", Types: []string{"survey", "site"}},
					},
				},
				{
					ID: 302, Name: "foundation", Stage: 2, Dependencies: []int64{301},
					Checks: []WorkflowCheck{
						{ID: 3021, Name: "blinding concrete", Types: []string{"site"}},
					},
				},
				{
					ID: 303, Name: "base slab", Stage: 3, Dependencies: []int64{302},
					Checks: []WorkflowCheck{
						{ID: 3031, Name: "slab rebar", Types: []string{"site"}},
						{ID: 3032, Name: "slab concrete pour", Types: []string{"site", "lab"}},
					},
				},
				{
					ID: 304, Name: "wall", Stage: 4, Dependencies: []int64{303}, LockStepWith: []int64{305, 306, 307},
					Checks: []WorkflowCheck{
						{ID: 3041, Name: "rebar", Types: []string{"site"}},
						{ID: 3042, Name: "shuttering", Types: []string{"site"}},
						{ID: 3043, Name: "wall concrete pour", Types: []string{"site", "lab"}},
					},
				},
				{
					ID: 305, Name: "wing", Stage: 4, Dependencies: []int64{303}, LockStepWith: []int64{304, 306, 307},
					Checks: []WorkflowCheck{
						{ID: 3051, Name: "wing rebar", Types: []string{"site"}},
					},
				},
				{
					ID: 306, Name: "roof", Stage: 4, Dependencies: []int64{303}, LockStepWith: []int64{304, 305, 307},
					Checks: []WorkflowCheck{
						{ID: 3061, Name: "roof rebar", Types: []string{"site"}},
						{ID: 3062, Name: "roof concrete pour", Types: []string{"site", "lab"}},
					},
				},
				{
					ID: 307, Name: "cap", Stage: 4, Dependencies: []int64{303}, LockStepWith: []int64{304, 305, 306},
					Checks: []WorkflowCheck{
						{ID: 3071, Name: "cap finish", Types: []string{"site"}},
					},
				},
				{
					ID: 308, Name: "waterproofing", Stage: 5, Dependencies: []int64{304}, ParallelWith: []int64{309},
					Checks: []WorkflowCheck{
						{ID: 3081, Name: "membrane application", Types: []string{"site"}},
					},
				},
				{
					ID: 309, Name: "backfill", Stage: 5, Dependencies: []int64{304}, ParallelWith: []int64{308},
					Checks: []WorkflowCheck{
						{ID: 3091, Name: "backfill compaction", Types: []string{"site", "lab"}},
					},
				},
			},
		},
	}
}

// DefaultPropagationRules: finishing the sub-base inherently satisfies the
// final earthwork layer at the same range/side.
func DefaultPropagationRules() []PropagationRule {
	return []PropagationRule{
		{SourcePhaseName: "sub-base course", TargetPhaseName: "earthworks"},
	}
}
