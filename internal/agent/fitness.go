package agent

import (
	"strings"

	"github.com/slatehealth/health-plan-backend/internal/model"
)

// FitnessPlan is the training component of a health plan before it is
// formatted into the frontend document.
type FitnessPlan struct {
	WeeklySplit          []string
	Days                 map[string][]model.Exercise
	GlobalRules          []model.Rule
	SafetyConsiderations []string
}

// DesignFitness builds the training component: a weekly split, day templates
// matched to the population and goals, global training rules, and safety
// considerations carried over from research.
func DesignFitness(findings ResearchFindings, goals, constraints []string, timeline, fitnessLevel string) FitnessPlan {
	return FitnessPlan{
		WeeklySplit:          weeklySplit(goals),
		Days:                 dayTemplates(goals),
		GlobalRules:          trainingRules(findings, constraints),
		SafetyConsiderations: safetyConsiderations(findings, constraints),
	}
}

// weeklySplit picks a split matching the primary goal.
func weeklySplit(goals []string) []string {
	primary := ""
	if len(goals) > 0 {
		primary = goals[0]
	}
	switch {
	case strings.Contains(primary, "postpartum"):
		return []string{
			"Week 1-4: Foundation Phase",
			"Week 5-8: Progressive Phase",
			"Week 9-12: Integration Phase",
		}
	case strings.Contains(primary, "weight_loss"):
		return []string{
			"Mon: Upper A", "Tue: Lower A", "Wed: Conditioning",
			"Thu: Upper B", "Fri: Lower B", "Sat: Active Recovery", "Sun: Rest",
		}
	case strings.Contains(primary, "strength"):
		return []string{
			"Mon: Squat + Bench", "Tue: Deadlift + Press", "Wed: Rest",
			"Thu: Squat + Bench", "Fri: Deadlift + Accessories", "Sat: Rest", "Sun: Rest",
		}
	default:
		return []string{
			"Mon: Full Body A", "Tue: Rest", "Wed: Full Body B",
			"Thu: Rest", "Fri: Full Body C", "Sat: Active Recovery", "Sun: Rest",
		}
	}
}

func hasAny(goals []string, wanted ...string) bool {
	for _, g := range goals {
		for _, w := range wanted {
			if strings.Contains(g, w) {
				return true
			}
		}
	}
	return false
}

// dayTemplates returns training days keyed by day name.  Three template sets
// cover the main populations; everything else gets the general plan.
func dayTemplates(goals []string) map[string][]model.Exercise {
	switch {
	case hasAny(goals, "senior_fitness", "mobility", "balance"):
		return seniorDays()
	case hasAny(goals, "postpartum", "core_restoration"):
		return postpartumDays()
	default:
		return generalDays()
	}
}

func seniorDays() map[string][]model.Exercise {
	return map[string][]model.Exercise{
		"Full Body A": {
			{Name: "Gentle warm-up walk", Sets: "1", Reps: "5-10 min", Rest: "N/A", Notes: "Start slow, gradually increase pace"},
			{Name: "Bodyweight squats", Sets: "3", Reps: "8-12", Rest: "90s", Notes: "Focus on form, go as deep as comfortable"},
			{Name: "Wall push-ups", Sets: "3", Reps: "8-15", Rest: "90s", Notes: "Adjust distance from wall for difficulty"},
			{Name: "Seated rows with resistance band", Sets: "3", Reps: "10-15", Rest: "90s", Notes: "Keep back straight, pull elbows back"},
			{Name: "Heel raises", Sets: "3", Reps: "12-15", Rest: "60s", Notes: "Hold onto support if needed for balance"},
			{Name: "Gentle stretching", Sets: "1", Reps: "5-10 min", Rest: "N/A", Notes: "Focus on major muscle groups"},
		},
		"Mobility & Balance": {
			{Name: "Tai Chi warm-up", Sets: "1", Reps: "10-15 min", Rest: "N/A", Notes: "Slow, controlled movements"},
			{Name: "Single-leg balance", Sets: "3", Reps: "30s each leg", Rest: "60s", Notes: "Hold onto support initially"},
			{Name: "Hip circles", Sets: "2", Reps: "10 each direction", Rest: "30s", Notes: "Gentle circular movements"},
			{Name: "Shoulder rolls", Sets: "2", Reps: "10 forward, 10 backward", Rest: "30s", Notes: "Full range of motion"},
			{Name: "Ankle mobility", Sets: "2", Reps: "10 each foot", Rest: "30s", Notes: "Point and flex toes"},
			{Name: "Cool-down walk", Sets: "1", Reps: "5-10 min", Rest: "N/A", Notes: "Gradual slowdown"},
		},
		"Full Body B": {
			{Name: "Light cardio warm-up", Sets: "1", Reps: "8-10 min", Rest: "N/A", Notes: "Walking, cycling, or swimming"},
			{Name: "Step-ups", Sets: "3", Reps: "8-12 each leg", Rest: "90s", Notes: "Use low step, focus on control"},
			{Name: "Modified plank", Sets: "3", Reps: "20-40s", Rest: "90s", Notes: "Knees down if needed"},
			{Name: "Seated shoulder press", Sets: "3", Reps: "8-12", Rest: "90s", Notes: "Light weights, full range of motion"},
			{Name: "Seated leg extensions", Sets: "3", Reps: "10-15", Rest: "90s", Notes: "Slow and controlled"},
			{Name: "Gentle yoga flow", Sets: "1", Reps: "8-10 min", Rest: "N/A", Notes: "Sun salutation variations"},
		},
		"Active Recovery": {
			{Name: "Gentle walking", Sets: "1", Reps: "20-30 min", Rest: "N/A", Notes: "Conversational pace"},
			{Name: "Light stretching", Sets: "1", Reps: "10-15 min", Rest: "N/A", Notes: "Hold each stretch 20-30s"},
			{Name: "Deep breathing", Sets: "1", Reps: "5 min", Rest: "N/A", Notes: "4-7-8 breathing pattern"},
			{Name: "Foam rolling", Sets: "1", Reps: "10 min", Rest: "N/A", Notes: "Gentle pressure on major muscles"},
		},
		"Full Body C": {
			{Name: "Dynamic warm-up", Sets: "1", Reps: "8-10 min", Rest: "N/A", Notes: "Arm circles, hip swings, ankle rolls"},
			{Name: "Chair squats", Sets: "3", Reps: "10-15", Rest: "90s", Notes: "Sit and stand, use chair for safety"},
			{Name: "Standing rows", Sets: "3", Reps: "10-15", Rest: "90s", Notes: "Resistance band or light weights"},
			{Name: "Side leg raises", Sets: "3", Reps: "8-12 each leg", Rest: "90s", Notes: "Hold onto support for balance"},
			{Name: "Chest stretch", Sets: "3", Reps: "30s hold", Rest: "60s", Notes: "Doorway stretch or corner stretch"},
			{Name: "Cool-down stretches", Sets: "1", Reps: "8-10 min", Rest: "N/A", Notes: "Focus on tight areas"},
		},
		"Rest Day": {
			{Name: "Light walking", Sets: "1", Reps: "15-20 min", Rest: "N/A", Notes: "Optional, very light pace"},
			{Name: "Gentle stretching", Sets: "1", Reps: "10 min", Rest: "N/A", Notes: "Only if feeling good"},
			{Name: "Restorative activities", Sets: "1", Reps: "As desired", Rest: "N/A", Notes: "Reading, meditation, light hobbies"},
		},
	}
}

func postpartumDays() map[string][]model.Exercise {
	return map[string][]model.Exercise{
		"Foundation Phase": {
			{Name: "Pelvic floor activation", Sets: "3", Reps: "5-10", Rest: "60s", Notes: "Kegels, gentle contractions"},
			{Name: "Gentle walking", Sets: "1", Reps: "15-20 min", Rest: "N/A", Notes: "Flat surface, comfortable pace"},
			{Name: "Pelvic tilts", Sets: "3", Reps: "10-15", Rest: "60s", Notes: "Lie on back, gentle movements"},
			{Name: "Deep breathing", Sets: "1", Reps: "5 min", Rest: "N/A", Notes: "Diaphragmatic breathing"},
			{Name: "Gentle stretching", Sets: "1", Reps: "8-10 min", Rest: "N/A", Notes: "Focus on major muscle groups"},
		},
		"Progressive Phase": {
			{Name: "Pelvic floor exercises", Sets: "3", Reps: "10", Rest: "60s", Notes: "Progressive intensity"},
			{Name: "Bird dog", Sets: "3", Reps: "8-12", Rest: "90s", Notes: "Start on hands and knees"},
			{Name: "Modified plank", Sets: "3", Reps: "20-30s", Rest: "90s", Notes: "Knees down, build endurance"},
			{Name: "Gentle squats", Sets: "3", Reps: "8-12", Rest: "90s", Notes: "Use support if needed"},
			{Name: "Walking intervals", Sets: "3", Reps: "5 min", Rest: "2 min", Notes: "Gradually increase pace"},
		},
		"Integration Phase": {
			{Name: "Dead bug", Sets: "3", Reps: "10-15", Rest: "90s", Notes: "Core stability focus"},
			{Name: "Bodyweight squats", Sets: "3", Reps: "10-15", Rest: "90s", Notes: "Full range of motion"},
			{Name: "Modified push-ups", Sets: "3", Reps: "5-10", Rest: "90s", Notes: "Knees down or wall push-ups"},
			{Name: "Walking lunges", Sets: "2", Reps: "8-10 each leg", Rest: "90s", Notes: "Light and controlled"},
			{Name: "Core stabilization", Sets: "3", Reps: "30s hold", Rest: "60s", Notes: "Plank variations"},
		},
	}
}

func generalDays() map[string][]model.Exercise {
	return map[string][]model.Exercise{
		"Full Body A": {
			{Name: "Dynamic warm-up", Sets: "1", Reps: "8-10 min", Rest: "N/A", Notes: "Jumping jacks, arm circles, hip swings"},
			{Name: "Squats", Sets: "4", Reps: "8-12", Rest: "120s", Notes: "Focus on form, progressive overload"},
			{Name: "Push-ups", Sets: "3", Reps: "8-15", Rest: "90s", Notes: "Modify difficulty as needed"},
			{Name: "Rows", Sets: "3", Reps: "10-12", Rest: "90s", Notes: "Dumbbell or resistance band"},
			{Name: "Plank", Sets: "3", Reps: "30-60s", Rest: "60s", Notes: "Build core endurance"},
			{Name: "Cool-down stretches", Sets: "1", Reps: "8-10 min", Rest: "N/A", Notes: "Major muscle groups"},
		},
		"Cardio & Mobility": {
			{Name: "Light cardio", Sets: "1", Reps: "20-25 min", Rest: "N/A", Notes: "Walking, cycling, or swimming"},
			{Name: "Dynamic stretching", Sets: "1", Reps: "10-15 min", Rest: "N/A", Notes: "Hip swings, leg swings, arm circles"},
			{Name: "Mobility work", Sets: "1", Reps: "10-15 min", Rest: "N/A", Notes: "Shoulder, hip, and ankle mobility"},
		},
		"Full Body B": {
			{Name: "Warm-up", Sets: "1", Reps: "8-10 min", Rest: "N/A", Notes: "Light cardio and dynamic stretches"},
			{Name: "Lunges", Sets: "3", Reps: "10-12 each leg", Rest: "90s", Notes: "Forward, reverse, and walking variations"},
			{Name: "Dips", Sets: "3", Reps: "8-12", Rest: "90s", Notes: "Chair dips or parallel bars"},
			{Name: "Pull-ups/Assisted", Sets: "3", Reps: "5-10", Rest: "120s", Notes: "Use assistance if needed"},
			{Name: "Russian twists", Sets: "3", Reps: "20-30", Rest: "60s", Notes: "Core rotation work"},
			{Name: "Cool-down", Sets: "1", Reps: "8-10 min", Rest: "N/A", Notes: "Static stretching"},
		},
		"Active Recovery": {
			{Name: "Light walking", Sets: "1", Reps: "25-30 min", Rest: "N/A", Notes: "Conversational pace"},
			{Name: "Gentle stretching", Sets: "1", Reps: "15-20 min", Rest: "N/A", Notes: "Hold stretches 30-60s"},
			{Name: "Foam rolling", Sets: "1", Reps: "10-15 min", Rest: "N/A", Notes: "Major muscle groups"},
		},
		"Full Body C": {
			{Name: "Warm-up", Sets: "1", Reps: "8-10 min", Rest: "N/A", Notes: "Dynamic movements and light cardio"},
			{Name: "Deadlift variation", Sets: "3", Reps: "8-12", Rest: "120s", Notes: "Romanian or single-leg"},
			{Name: "Overhead press", Sets: "3", Reps: "8-12", Rest: "90s", Notes: "Dumbbell or barbell"},
			{Name: "Lat pulldowns", Sets: "3", Reps: "10-12", Rest: "90s", Notes: "Focus on lat engagement"},
			{Name: "Core circuit", Sets: "3", Reps: "30s each", Rest: "60s", Notes: "Plank, side plank, dead bug"},
			{Name: "Cool-down", Sets: "1", Reps: "8-10 min", Rest: "N/A", Notes: "Static stretching"},
		},
		"Rest Day": {
			{Name: "Light activity", Sets: "1", Reps: "15-20 min", Rest: "N/A", Notes: "Optional light walking or stretching"},
			{Name: "Recovery focus", Sets: "1", Reps: "As needed", Rest: "N/A", Notes: "Sleep, hydration, nutrition"},
		},
	}
}

// trainingRules builds the titled rule list shown on every day: research
// recommendations, constraint specific rules, then general safety rules.
func trainingRules(findings ResearchFindings, constraints []string) []model.Rule {
	var rules []model.Rule
	for _, rec := range findings.Recommendations {
		rules = append(rules, model.Rule{Title: "Research-Based Recommendation", Text: rec})
	}
	for _, c := range constraints {
		switch c {
		case "diastasis_recti":
			rules = append(rules, model.Rule{
				Title: "Core Safety",
				Text:  "Stop any exercise that causes doming or bulging in the abdominal area",
			})
		case "pelvic_organ_prolapse":
			rules = append(rules, model.Rule{
				Title: "Pelvic Floor Protection",
				Text:  "Avoid exercises that increase intra-abdominal pressure",
			})
		}
	}
	rules = append(rules,
		model.Rule{Title: "General Safety", Text: "Stop if you experience pain, dizziness, or unusual symptoms"},
		model.Rule{Title: "Progression", Text: "Only progress when current level feels comfortable and manageable"},
	)
	return rules
}

func safetyConsiderations(findings ResearchFindings, constraints []string) []string {
	out := append([]string{}, findings.Contraindications...)
	for _, c := range constraints {
		switch c {
		case "diastasis_recti":
			out = append(out, "Monitor abdominal separation weekly")
		case "pelvic_organ_prolapse":
			out = append(out, "Consider working with pelvic floor physical therapist")
		}
	}
	return out
}
