// Package workflow runs multi-agent workflows: plan materialisation,
// the per-workflow step scheduler, and the worker pool that claims
// persisted workflows off the database queue.
package workflow

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/scriptor-ai/scriptor/pkg/config"
	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

// planSchema shape-validates dynamic plans before the structural
// checks run, so a malformed request fails with a field-level message
// instead of a nil-pointer surprise deeper in.
const planSchema = `{
  "type": "object",
  "required": ["steps"],
  "properties": {
    "max_parallel": {"type": "integer", "minimum": 1, "maximum": 16},
    "steps": {
      "type": "array",
      "minItems": 1,
      "maxItems": 50,
      "items": {
        "type": "object",
        "required": ["step_id", "agent_type", "task_description"],
        "properties": {
          "step_id": {"type": "string", "minLength": 1, "pattern": "^[a-z0-9_-]+$"},
          "agent_type": {"type": "string", "minLength": 1},
          "task_description": {"type": "string", "minLength": 1},
          "input_requirements": {"type": "array", "items": {"type": "string"}},
          "output_specifications": {"type": "array", "items": {"type": "string"}},
          "depends_on": {"type": "array", "items": {"type": "string"}},
          "max_retries": {"type": "integer", "minimum": 0, "maximum": 5}
        }
      }
    }
  }
}`

var compiledPlanSchema = gojsonschema.NewStringLoader(planSchema)

// BuildPlan materialises the step graph for a start request: either a
// registered template or a validated dynamic plan. The returned
// template name is models.DynamicTemplateName for ad-hoc plans.
func BuildPlan(cfg *config.Config, req *models.StartWorkflowRequest) (*models.PlanSpec, string, error) {
	switch {
	case req.TemplateName != "" && req.Plan != nil:
		return nil, "", fault.New(fault.KindBadInput, "template_name and plan are mutually exclusive")
	case req.TemplateName != "":
		plan, err := planFromTemplate(cfg, req.TemplateName)
		if err != nil {
			return nil, "", err
		}
		return plan, req.TemplateName, nil
	case req.Plan != nil:
		if err := ValidatePlan(cfg, req.Plan); err != nil {
			return nil, "", err
		}
		plan := *req.Plan
		if plan.MaxParallel <= 0 {
			plan.MaxParallel = cfg.WorkerPool.DefaultMaxParallel
		}
		return &plan, models.DynamicTemplateName, nil
	default:
		return nil, "", fault.New(fault.KindBadInput, "either template_name or plan is required")
	}
}

func planFromTemplate(cfg *config.Config, name string) (*models.PlanSpec, error) {
	tmpl, err := cfg.Templates.Get(name)
	if err != nil {
		return nil, fault.New(fault.KindNotFound, "unknown workflow template %q", name)
	}

	plan := &models.PlanSpec{MaxParallel: tmpl.MaxParallel}
	if plan.MaxParallel <= 0 {
		plan.MaxParallel = cfg.WorkerPool.DefaultMaxParallel
	}
	for _, step := range tmpl.Steps {
		spec := models.StepSpec{
			StepID:               step.StepID,
			AgentType:            step.AgentType,
			TaskDescription:      step.TaskDescription,
			InputRequirements:    step.InputRequirements,
			OutputSpecifications: step.OutputSpecifications,
			DependsOn:            step.DependsOn,
			MaxRetries:           DefaultMaxRetries,
		}
		if step.MaxRetries != nil {
			spec.MaxRetries = *step.MaxRetries
		}
		plan.Steps = append(plan.Steps, spec)
	}
	return plan, nil
}

// ValidatePlan checks a dynamic plan: JSON shape, duplicate step ids,
// unknown agent types, dangling depends_on, and cycles. All failures
// are bad_input.
func ValidatePlan(cfg *config.Config, plan *models.PlanSpec) error {
	doc, err := json.Marshal(plan)
	if err != nil {
		return fault.Wrap(fault.KindBadInput, err, "plan is not serialisable")
	}
	result, err := gojsonschema.Validate(compiledPlanSchema, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fault.Wrap(fault.KindBadInput, err, "plan schema validation failed")
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fault.New(fault.KindBadInput, "invalid plan: %s", strings.Join(msgs, "; "))
	}

	ids := make(map[string]bool, len(plan.Steps))
	for _, step := range plan.Steps {
		if ids[step.StepID] {
			return fault.New(fault.KindBadInput, "duplicate step id %q", step.StepID)
		}
		ids[step.StepID] = true
		if !cfg.Agents.Has(step.AgentType) {
			return fault.New(fault.KindBadInput, "step %q references unknown agent type %q", step.StepID, step.AgentType)
		}
	}
	for _, step := range plan.Steps {
		for _, dep := range step.DependsOn {
			if !ids[dep] {
				return fault.New(fault.KindBadInput, "step %q depends on unknown step %q", step.StepID, dep)
			}
			if dep == step.StepID {
				return fault.New(fault.KindBadInput, "step %q depends on itself", step.StepID)
			}
		}
	}
	if err := checkAcyclic(plan.Steps); err != nil {
		return err
	}
	return nil
}

// checkAcyclic runs Kahn's algorithm over the dependency edges.
func checkAcyclic(steps []models.StepSpec) error {
	indegree := make(map[string]int, len(steps))
	dependents := make(map[string][]string, len(steps))
	for _, step := range steps {
		indegree[step.StepID] += 0
		for _, dep := range step.DependsOn {
			indegree[step.StepID]++
			dependents[dep] = append(dependents[dep], step.StepID)
		}
	}

	queue := make([]string, 0, len(steps))
	for id, deg := range indegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, next := range dependents[id] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
	if visited != len(steps) {
		cyclic := make([]string, 0)
		for id, deg := range indegree {
			if deg > 0 {
				cyclic = append(cyclic, id)
			}
		}
		return fault.New(fault.KindBadInput, "plan contains a dependency cycle involving: %s", strings.Join(cyclic, ", "))
	}
	return nil
}
