package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/pkg/config"
	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Initialize(t.TempDir())
	require.NoError(t, err)
	return cfg
}

func TestBuildPlan_FromTemplate(t *testing.T) {
	cfg := testConfig(t)

	plan, templateName, err := BuildPlan(cfg, &models.StartWorkflowRequest{
		TemplateName: "research_analysis_synthesis",
	})
	require.NoError(t, err)
	assert.Equal(t, "research_analysis_synthesis", templateName)
	require.Len(t, plan.Steps, 3)
	assert.Equal(t, "research_phase", plan.Steps[0].StepID)
	assert.Equal(t, []string{"research_phase"}, plan.Steps[1].DependsOn)
	assert.Equal(t, DefaultMaxRetries, plan.Steps[0].MaxRetries)
	assert.Equal(t, 4, plan.MaxParallel)
}

func TestBuildPlan_UnknownTemplate(t *testing.T) {
	cfg := testConfig(t)
	_, _, err := BuildPlan(cfg, &models.StartWorkflowRequest{TemplateName: "nope"})
	require.Error(t, err)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
}

func TestBuildPlan_MutuallyExclusive(t *testing.T) {
	cfg := testConfig(t)
	_, _, err := BuildPlan(cfg, &models.StartWorkflowRequest{
		TemplateName: "research_analysis_synthesis",
		Plan:         &models.PlanSpec{Steps: []models.StepSpec{{StepID: "a", AgentType: "research", TaskDescription: "x"}}},
	})
	require.Error(t, err)
	assert.Equal(t, fault.KindBadInput, fault.KindOf(err))

	_, _, err = BuildPlan(cfg, &models.StartWorkflowRequest{})
	require.Error(t, err)
	assert.Equal(t, fault.KindBadInput, fault.KindOf(err))
}

func TestBuildPlan_DynamicDefaults(t *testing.T) {
	cfg := testConfig(t)
	plan, templateName, err := BuildPlan(cfg, &models.StartWorkflowRequest{
		Plan: &models.PlanSpec{Steps: []models.StepSpec{
			{StepID: "only", AgentType: "research", TaskDescription: "look it up"},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.DynamicTemplateName, templateName)
	assert.Equal(t, cfg.WorkerPool.DefaultMaxParallel, plan.MaxParallel)
}

func TestValidatePlan(t *testing.T) {
	cfg := testConfig(t)

	valid := func() *models.PlanSpec {
		return &models.PlanSpec{Steps: []models.StepSpec{
			{StepID: "a", AgentType: "research", TaskDescription: "research"},
			{StepID: "b", AgentType: "analysis", TaskDescription: "analyse", DependsOn: []string{"a"}},
		}}
	}

	tests := []struct {
		name    string
		mutate  func(*models.PlanSpec)
		wantErr string
	}{
		{name: "valid", mutate: func(*models.PlanSpec) {}},
		{
			name:    "empty steps",
			mutate:  func(p *models.PlanSpec) { p.Steps = nil },
			wantErr: "invalid plan",
		},
		{
			name:    "bad step id characters",
			mutate:  func(p *models.PlanSpec) { p.Steps[0].StepID = "Phase One!" },
			wantErr: "invalid plan",
		},
		{
			name: "duplicate step id",
			mutate: func(p *models.PlanSpec) {
				p.Steps = append(p.Steps, models.StepSpec{StepID: "a", AgentType: "research", TaskDescription: "again"})
			},
			wantErr: "duplicate step id",
		},
		{
			name:    "unknown agent type",
			mutate:  func(p *models.PlanSpec) { p.Steps[0].AgentType = "clairvoyant" },
			wantErr: "unknown agent type",
		},
		{
			name:    "dangling depends_on",
			mutate:  func(p *models.PlanSpec) { p.Steps[1].DependsOn = []string{"ghost"} },
			wantErr: "unknown step",
		},
		{
			name:    "self dependency",
			mutate:  func(p *models.PlanSpec) { p.Steps[0].DependsOn = []string{"a"} },
			wantErr: "depends on itself",
		},
		{
			name: "cycle",
			mutate: func(p *models.PlanSpec) {
				p.Steps[0].DependsOn = []string{"b"}
			},
			wantErr: "cycle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := valid()
			tt.mutate(plan)
			err := ValidatePlan(cfg, plan)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, fault.KindBadInput, fault.KindOf(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClassifyHandoff(t *testing.T) {
	assert.Equal(t, models.HandoffResearchToAnalysis, classifyHandoff("research", "analysis"))
	assert.Equal(t, models.HandoffCodingToValidation, classifyHandoff("coding", "validation"))
	assert.Equal(t, models.HandoffMultiResearchSynthesis, classifyHandoff("research", "synthesis"))
	assert.Equal(t, models.HandoffIterativeRefinement, classifyHandoff("article_writer", "article_writer"))
}
