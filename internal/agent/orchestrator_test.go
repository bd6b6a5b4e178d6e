package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatehealth/health-plan-backend/internal/model"
)

// scriptedCompleter returns canned replies in order, or a fixed error.
type scriptedCompleter struct {
	replies []string
	err     error
	calls   int
	prompts []string
}

func (s *scriptedCompleter) Complete(_ context.Context, prompt string, _ int) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	i := s.calls
	s.calls++
	if i < len(s.replies) {
		return s.replies[i], nil
	}
	return "ok", nil
}

func TestGeneratePlanStructuredRequest(t *testing.T) {
	llm := &scriptedCompleter{replies: []string{"A thorough program overview."}}
	o := NewOrchestrator(llm)

	gen, err := o.GeneratePlan(context.Background(), model.PlanRequest{
		Population: "postpartum_reconditioning",
		Goals:      []string{"core_restoration", "pelvic_floor_recovery"},
	})
	require.NoError(t, err)

	assert.Equal(t, "postpartum_reconditioning_core_restoration_pelvic_floor_recovery", gen.PlanID)
	assert.Equal(t, "A thorough program overview.", gen.Plan.Overview)
	assert.Equal(t, "12_weeks", gen.Request.Timeline)
	assert.Equal(t, "beginner", gen.Request.FitnessLevel)

	require.Contains(t, gen.Plan.Days, "Foundation Phase")
	first := gen.Plan.Days["Foundation Phase"][0]
	assert.Equal(t, "1) Pelvic floor activation — 3×5-10 (Kegels, gentle contractions)", first)

	assert.NotEmpty(t, gen.Plan.WeeklySplit)
	assert.NotEmpty(t, gen.Plan.GlobalRules)
	assert.NotEmpty(t, gen.Plan.ExecutionChecklist)
	assert.Contains(t, gen.Plan.ExecutionChecklist, "Monitor abdominal separation weekly")
	assert.NotEmpty(t, gen.Plan.Nutrition.Calories)
	assert.Len(t, gen.Motivation.Milestones, 5)
}

func TestGeneratePlanSurvivesLLMFailure(t *testing.T) {
	o := NewOrchestrator(&scriptedCompleter{err: errors.New("provider down")})

	gen, err := o.GeneratePlan(context.Background(), model.PlanRequest{
		Population: "general",
		Goals:      []string{"weight_loss"},
	})
	require.NoError(t, err)
	assert.Contains(t, gen.Plan.Overview, "comprehensive")
	assert.Contains(t, gen.Plan.Overview, "weight_loss")
	assert.NotEmpty(t, gen.Plan.Days)
}

func TestGeneratePlanPromptPath(t *testing.T) {
	llm := &scriptedCompleter{replies: []string{
		"Enhanced: a mobility program for older adults.",
		"```json\n{\"population\": \"senior_fitness\", \"goals\": [\"mobility\", \"balance\"], \"timeline\": \"8_weeks\", \"fitness_level\": \"beginner\"}\n```",
		"Overview for seniors.",
	}}
	o := NewOrchestrator(llm)

	gen, err := o.GeneratePlan(context.Background(), model.PlanRequest{
		Prompt: "a plan for my grandmother",
	})
	require.NoError(t, err)

	assert.Equal(t, "senior_fitness_mobility_balance", gen.PlanID)
	assert.Equal(t, "8_weeks", gen.Request.Timeline)
	assert.Contains(t, gen.Plan.Days, "Mobility & Balance")
	// The first call enhances the prompt, the second extracts parameters.
	require.GreaterOrEqual(t, len(llm.prompts), 2)
	assert.Contains(t, llm.prompts[0], "a plan for my grandmother")
	assert.Contains(t, llm.prompts[1], "Enhanced: a mobility program for older adults.")
}

func TestGeneratePlanPromptPathFallsBackOnBadJSON(t *testing.T) {
	llm := &scriptedCompleter{replies: []string{
		"enhanced",
		"sorry, I cannot produce JSON today",
		"overview",
	}}
	o := NewOrchestrator(llm)

	gen, err := o.GeneratePlan(context.Background(), model.PlanRequest{Prompt: "anything"})
	require.NoError(t, err)
	assert.Equal(t, "general_general_fitness", gen.PlanID)
	assert.Equal(t, "12_weeks", gen.Request.Timeline)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
	assert.Equal(t, "", stripFences("```json\n```"))
}

func TestFormatDays(t *testing.T) {
	days := formatDays(map[string][]model.Exercise{
		"Day One": {
			{Name: "Squats", Sets: "4", Reps: "8-12", Notes: "focus on form"},
			{Name: "Plank", Sets: "3", Reps: "30-60s"},
		},
	})
	require.Len(t, days["Day One"], 2)
	assert.Equal(t, "1) Squats — 4×8-12 (focus on form)", days["Day One"][0])
	assert.Equal(t, "2) Plank — 3×30-60s", days["Day One"][1])
}

func TestExecutionChecklistRiskItems(t *testing.T) {
	base := executionChecklist(nil, SafetyReport{OverallSafety: SafetyLowRisk})
	elevated := executionChecklist(nil, SafetyReport{OverallSafety: SafetyModerateRisk})
	assert.Greater(t, len(elevated), len(base))
	assert.Contains(t, elevated, "Monitor for any concerning symptoms")

	withCore := executionChecklist([]string{"core_restoration"}, SafetyReport{OverallSafety: SafetyLowRisk})
	assert.Contains(t, withCore, "Avoid exercises that cause doming")
}

func TestFallbackCompleter(t *testing.T) {
	primary := &scriptedCompleter{err: errors.New("down")}
	secondary := &scriptedCompleter{replies: []string{"from secondary"}}
	f := &FallbackCompleter{Primary: primary, Secondary: secondary}

	out, err := f.Complete(context.Background(), "hi", 10)
	require.NoError(t, err)
	assert.Equal(t, "from secondary", out)

	lone := &FallbackCompleter{Primary: primary}
	_, err = lone.Complete(context.Background(), "hi", 10)
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "down"))
}
