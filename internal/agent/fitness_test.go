package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklySplitByPrimaryGoal(t *testing.T) {
	assert.Contains(t, weeklySplit([]string{"postpartum_recovery"})[0], "Foundation Phase")
	assert.Contains(t, weeklySplit([]string{"weight_loss"}), "Wed: Conditioning")
	assert.Contains(t, weeklySplit([]string{"strength_improvement"})[0], "Squat")
	assert.Contains(t, weeklySplit(nil)[0], "Full Body A")
}

func TestDayTemplatesSelection(t *testing.T) {
	senior := dayTemplates([]string{"senior_fitness"})
	require.Contains(t, senior, "Mobility & Balance")

	postpartum := dayTemplates([]string{"core_restoration"})
	require.Contains(t, postpartum, "Foundation Phase")
	require.Contains(t, postpartum, "Progressive Phase")
	require.Contains(t, postpartum, "Integration Phase")

	general := dayTemplates([]string{"muscle_gain"})
	require.Contains(t, general, "Full Body A")
	assert.NotEmpty(t, general["Full Body A"])
}

func TestTrainingRulesIncludeConstraintRules(t *testing.T) {
	findings := Research("postpartum_reconditioning", []string{"core_restoration"}, []string{"diastasis_recti"})
	rules := trainingRules(findings, []string{"diastasis_recti"})

	var titles []string
	for _, r := range rules {
		titles = append(titles, r.Title)
	}
	assert.Contains(t, titles, "Core Safety")
	assert.Contains(t, titles, "General Safety")
	assert.Contains(t, titles, "Progression")
	assert.Contains(t, titles, "Research-Based Recommendation")
}

func TestResearchMergesConstraintContraindications(t *testing.T) {
	f := Research("postpartum_reconditioning", []string{"core_restoration"}, []string{"diastasis_recti"})
	assert.Equal(t, "postpartum_reconditioning", f.Population)
	assert.Contains(t, f.Contraindications, "Traditional crunches")
	assert.Contains(t, f.Contraindications, "Unresolved diastasis recti >2cm")
	assert.Contains(t, f.Recommendations, "Begin exercise 6-8 weeks postpartum with medical clearance")
}

func TestResearchUnknownPopulationFallsBack(t *testing.T) {
	f := Research("office_workers", nil, nil)
	assert.Equal(t, []string{"Consult healthcare provider before starting"}, f.Recommendations)
	assert.Empty(t, f.Contraindications)
}
