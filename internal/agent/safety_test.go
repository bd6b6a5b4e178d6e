package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessRiskThresholds(t *testing.T) {
	// One high-risk condition alone stays below the moderate threshold.
	r := AssessRisk([]string{"diastasis_recti"}, nil, 100)
	assert.Equal(t, 3, r.RiskScore)
	assert.Equal(t, "low", r.RiskLevel)

	// High-risk plus an ordinary condition crosses into moderate.
	r = AssessRisk([]string{"diastasis_recti", "fatigue"}, nil, 100)
	assert.Equal(t, 4, r.RiskScore)
	assert.Equal(t, "moderate", r.RiskLevel)

	// Flagged exercises weigh two points each.
	flagged := []FlaggedExercise{
		{Exercise: "Sit-ups", Condition: "diastasis_recti", RiskLevel: "high"},
		{Exercise: "Russian twists", Condition: "diastasis_recti", RiskLevel: "high"},
		{Exercise: "Heavy lifting", Condition: "diastasis_recti", RiskLevel: "high"},
	}
	r = AssessRisk([]string{"diastasis_recti"}, flagged, 100)
	assert.Equal(t, 9, r.RiskScore)
	assert.Equal(t, "high", r.RiskLevel)

	// Low coherence adds two points.
	r = AssessRisk([]string{"fatigue", "knee_pain"}, nil, 60)
	assert.Equal(t, 4, r.RiskScore)
	assert.Equal(t, "moderate", r.RiskLevel)
}

func TestCoherenceScore(t *testing.T) {
	score, issues := CoherenceScore(FitnessPlan{}, NutritionPlan{})
	assert.Equal(t, 40, score)
	assert.Len(t, issues, 6)

	fitness := DesignFitness(ResearchFindings{}, []string{"general_fitness"}, nil, "12_weeks", "beginner")
	nutrition := DesignNutrition([]string{"general_fitness"}, nil, nil)
	score, issues = CoherenceScore(fitness, nutrition)
	assert.Equal(t, 100, score)
	assert.Empty(t, issues)
}

func TestCheckContraindications(t *testing.T) {
	flagged, alternatives := CheckContraindications(
		[]string{"Russian twists", "Squats", "Heavy lifting"},
		[]string{"diastasis_recti"},
	)
	require.Len(t, flagged, 2)
	assert.Equal(t, "Russian twists", flagged[0].Exercise)
	assert.Equal(t, "diastasis_recti", flagged[0].Condition)
	assert.NotEmpty(t, alternatives)

	flagged, alternatives = CheckContraindications([]string{"Squats"}, []string{"diastasis_recti"})
	assert.Empty(t, flagged)
	assert.Empty(t, alternatives)
}

func TestValidateSafetyLowRisk(t *testing.T) {
	findings := Research("general", []string{"general_fitness"}, nil)
	fitness := DesignFitness(findings, []string{"general_fitness"}, nil, "12_weeks", "beginner")
	nutrition := DesignNutrition([]string{"general_fitness"}, nil, nil)

	report := ValidateSafety(fitness, nutrition, nil, findings)
	assert.Equal(t, SafetyLowRisk, report.OverallSafety)
	assert.Equal(t, 100, report.ValidationScore)
	assert.Empty(t, report.FlaggedExercises)
	assert.NotEmpty(t, report.EmergencyProtocols)
}

func TestValidateSafetyFlagsGeneralPlanForDiastasisRecti(t *testing.T) {
	constraints := []string{"diastasis_recti"}
	findings := Research("general", []string{"general_fitness"}, constraints)
	// The general templates include Russian twists, which are
	// contraindicated for diastasis recti.
	fitness := DesignFitness(findings, []string{"general_fitness"}, constraints, "12_weeks", "beginner")
	nutrition := DesignNutrition([]string{"general_fitness"}, constraints, nil)

	report := ValidateSafety(fitness, nutrition, constraints, findings)
	require.NotEmpty(t, report.FlaggedExercises)
	assert.Equal(t, SafetyModerateRisk, report.OverallSafety)
	assert.NotEmpty(t, report.SafeAlternatives)
	assert.Contains(t, report.SafetyRecommendations, "Monitor abdominal separation weekly")
}

func TestSafetyRatingRequiresClearanceOnLowValidationScore(t *testing.T) {
	report := SafetyReport{
		RiskAssessment:  RiskAssessment{RiskLevel: "low"},
		ValidationScore: 40,
	}
	assert.Equal(t, SafetyMedicalClearance, safetyRating(report))
}
