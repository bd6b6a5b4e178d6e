package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/slatehealth/health-plan-backend/internal/model"
	"github.com/slatehealth/health-plan-backend/internal/utils"
)

// Orchestrator coordinates the generation stages into a complete plan.
type Orchestrator struct {
	LLM Completer
}

func NewOrchestrator(llm Completer) *Orchestrator {
	return &Orchestrator{LLM: llm}
}

// GeneratedPlan is the full output of one pipeline run: the plan document
// plus the supporting reports kept in metadata.
type GeneratedPlan struct {
	PlanID     string
	Plan       model.HealthPlan
	Safety     SafetyReport
	Motivation MotivationPlan
	Request    model.PlanRequest
}

// GeneratePlan runs the pipeline: parameter extraction (when the request is
// a free-text prompt), research, fitness, nutrition, motivation, safety
// validation, then integration into the frontend document.  LLM failures
// never abort the run; each LLM-backed step has a deterministic fallback.
func (o *Orchestrator) GeneratePlan(ctx context.Context, req model.PlanRequest) (GeneratedPlan, error) {
	if req.Prompt != "" {
		req = o.extractRequest(ctx, req)
	}
	req.Normalize()
	if req.Population == "" {
		req.Population = "general"
	}
	if len(req.Goals) == 0 {
		req.Goals = []string{"general_fitness"}
	}

	findings := Research(req.Population, req.Goals, req.Constraints)
	fitness := DesignFitness(findings, req.Goals, req.Constraints, req.Timeline, req.FitnessLevel)
	nutrition := DesignNutrition(req.Goals, req.Constraints, req.Preferences)
	motivation := DesignMotivation(req.Goals, req.Timeline, req.FitnessLevel)
	safety := ValidateSafety(fitness, nutrition, req.Constraints, findings)

	plan := model.HealthPlan{
		Overview:                o.overview(ctx, req),
		WeeklySplit:             fitness.WeeklySplit,
		GlobalRules:             fitness.GlobalRules,
		Days:                    formatDays(fitness.Days),
		ConditioningAndRecovery: conditioningAndRecovery(fitness),
		Nutrition: model.Nutrition{
			Goal:         nutrition.Goal,
			Calories:     nutrition.Calories,
			Protein:      nutrition.Protein,
			Carbohydrate: nutrition.Carbohydrate,
			Fat:          nutrition.Fat,
			Timing:       nutrition.MealTiming,
		},
		ExecutionChecklist: executionChecklist(req.Goals, safety),
	}

	return GeneratedPlan{
		PlanID:     utils.PlanSlug(req.Population, req.Goals),
		Plan:       plan,
		Safety:     safety,
		Motivation: motivation,
		Request:    req,
	}, nil
}

// extractRequest turns a free-text prompt into structured parameters: the
// prompt is first enhanced by the LLM, then the parameters are extracted as
// JSON.  Any failure along the way falls back to sensible defaults so a
// plan is always produced.
func (o *Orchestrator) extractRequest(ctx context.Context, req model.PlanRequest) model.PlanRequest {
	enhanced := o.enhancePrompt(ctx, req.Prompt)

	extractionPrompt := fmt.Sprintf(`You are an expert at analyzing health plan requests and extracting key parameters.

ENHANCED PROMPT: %q

Extract the following parameters and return them as a JSON object:

{
    "population": "specific population group (e.g., postpartum_mothers, senior_fitness, athletes)",
    "goals": ["goal1", "goal2", "goal3"],
    "constraints": ["constraint1", "constraint2"],
    "timeline": "8_weeks, 12_weeks, or 16_weeks",
    "fitness_level": "beginner, intermediate, or advanced",
    "preferences": ["preference1", "preference2"]
}

If any parameter is not clearly specified, make a reasonable assumption based on the context.
Return ONLY the JSON object, no other text.`, enhanced)

	fallback := model.PlanRequest{
		Population:   "general",
		Goals:        []string{"general_fitness"},
		Constraints:  []string{},
		Timeline:     "12_weeks",
		FitnessLevel: "beginner",
		Preferences:  []string{},
	}

	raw, err := o.LLM.Complete(ctx, extractionPrompt, 300)
	if err != nil {
		log.Printf("agent: parameter extraction failed: %v", err)
		return fallback
	}
	var extracted model.PlanRequest
	if err := json.Unmarshal([]byte(stripFences(raw)), &extracted); err != nil {
		log.Printf("agent: parameter extraction returned invalid JSON: %v", err)
		return fallback
	}
	extracted.Prompt = ""
	return extracted
}

func (o *Orchestrator) enhancePrompt(ctx context.Context, prompt string) string {
	enhancementPrompt := fmt.Sprintf(`You are an expert health and fitness consultant. A user has provided a simple request for a health plan:

USER REQUEST: %q

Your task is to enhance this into a comprehensive, detailed health plan specification that covers:

1. POPULATION: Who this plan is for (e.g., postpartum_mothers, senior_fitness, athletes, etc.)
2. GOALS: Specific fitness and health objectives
3. CONSTRAINTS: Any limitations, injuries, or considerations
4. TIMELINE: How long the plan should run (e.g., 8_weeks, 12_weeks, 16_weeks)
5. FITNESS_LEVEL: Beginner, intermediate, or advanced
6. PREFERENCES: Any specific preferences or requirements

Make the enhanced prompt comprehensive, specific, and actionable.

ENHANCED PROMPT:`, prompt)

	out, err := o.LLM.Complete(ctx, enhancementPrompt, 500)
	if err != nil {
		log.Printf("agent: prompt enhancement failed: %v", err)
		return fmt.Sprintf("Create a comprehensive health plan for: %s. Focus on evidence-based approaches, safety, and results.", prompt)
	}
	return strings.TrimSpace(out)
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag, from an LLM reply.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// overview asks the LLM for the plan introduction and falls back to a
// templated version on error.
func (o *Orchestrator) overview(ctx context.Context, req model.PlanRequest) string {
	prompt := fmt.Sprintf(`Create a comprehensive overview for a %s health plan.

Goals: %s
Timeline: %s
Fitness Level: %s
Constraints: %s

The overview should:
1. Explain the purpose and approach of the plan
2. Highlight key components (fitness, nutrition, motivation)
3. Emphasize safety and evidence-based approach
4. Set expectations for results and timeline
5. Be encouraging and motivating

Keep it concise but comprehensive (2-3 paragraphs).`,
		req.Population, strings.Join(req.Goals, ", "), req.Timeline,
		req.FitnessLevel, strings.Join(req.Constraints, ", "))

	out, err := o.LLM.Complete(ctx, prompt, 500)
	if err != nil {
		log.Printf("agent: overview generation failed: %v", err)
		return fmt.Sprintf(
			"This comprehensive %s health plan is designed to help you achieve your goals of %s over %s. "+
				"The plan integrates evidence-based fitness programming, personalized nutrition guidance, and motivational strategies to support your journey. "+
				"It is tailored for a %s fitness level and takes your constraints and preferences into account. "+
				"Safety comes first: built-in validation and modification protocols protect your well-being throughout the program.",
			req.Population, strings.Join(req.Goals, ", "), req.Timeline, req.FitnessLevel)
	}
	return strings.TrimSpace(out)
}

// formatDays renders each training day's exercises as numbered lines in the
// frontend format: "1) Squats — 4x8-12 (focus on form)".
func formatDays(days map[string][]model.Exercise) map[string][]string {
	out := make(map[string][]string, len(days))
	for day, exercises := range days {
		lines := make([]string, 0, len(exercises))
		for i, ex := range exercises {
			line := fmt.Sprintf("%d) %s — %s×%s", i+1, ex.Name, ex.Sets, ex.Reps)
			if ex.Notes != "" {
				line += fmt.Sprintf(" (%s)", ex.Notes)
			}
			lines = append(lines, line)
		}
		out[day] = lines
	}
	return out
}

// conditioningAndRecovery lists recovery guidance; plan days already embed
// conditioning work, so this section carries the constants plus anything the
// safety considerations surfaced.
func conditioningAndRecovery(fitness FitnessPlan) []string {
	out := []string{
		"Include 10-15 minutes of daily mobility work",
		"Prioritize sleep and stress management",
		"Listen to your body and rest when needed",
	}
	items := append([]string{}, fitness.SafetyConsiderations...)
	sort.Strings(items)
	return append(out, items...)
}

// executionChecklist assembles the pre-start and weekly checklists plus
// risk- and goal-dependent items.
func executionChecklist(goals []string, safety SafetyReport) []string {
	checklist := []string{
		"Obtain medical clearance if required",
		"Set up tracking systems for progress monitoring",
		"Prepare workout space and equipment",
		"Plan meals and grocery shopping",
		"Set up accountability systems",
		"Review and adjust plan based on progress",
		"Track key metrics and measurements",
		"Ensure adequate rest and recovery",
		"Stay hydrated and follow nutrition guidelines",
		"Celebrate small wins and progress",
	}
	if safety.OverallSafety != SafetyLowRisk {
		checklist = append(checklist,
			"Monitor for any concerning symptoms",
			"Have emergency contact information readily available",
			"Consider working with a qualified professional")
	}
	if contains(goals, "core_restoration") {
		checklist = append(checklist,
			"Monitor abdominal separation weekly",
			"Focus on proper breathing techniques",
			"Avoid exercises that cause doming")
	}
	return checklist
}
