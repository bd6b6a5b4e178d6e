package agent

import (
	"fmt"
	"math"
	"strings"
)

// NutritionPlan is the dietary component before formatting.
type NutritionPlan struct {
	Goal                  string
	Calories              string
	Protein               string
	Carbohydrate          string
	Fat                   string
	MealTiming            []string
	Supplements           []string
	Hydration             map[string]string
	DietaryConsiderations []string
}

// Macros holds a computed daily macronutrient target.
type Macros struct {
	Calories int
	ProteinG int
	CarbsG   int
	FatG     int
}

// Profile assumed when a request carries no user biometrics.  The service
// does not collect body data, so all macro math runs on this reference
// profile; the plan text presents the results as starting targets.
const (
	defaultWeightKg = 70.0
	defaultAge      = 30
	defaultActivity = "moderately_active"
)

var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extremely_active":  1.9,
}

// CalculateMacros derives daily targets with the Mifflin-St Jeor equation at
// an assumed average height, an activity multiplier, and a goal adjustment
// (15% deficit for weight loss, 10% surplus for muscle gain).
func CalculateMacros(goal string, weightKg float64, activityLevel string, age int) Macros {
	// Female reference profile at 160cm; matches the original calculator.
	bmr := 10*weightKg + 6.25*160 - 5*float64(age) - 161

	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = 1.2
	}
	tdee := bmr * mult

	var (
		calories          float64
		proteinMultiplier float64
	)
	switch goal {
	case "weight_loss":
		calories = tdee * 0.85
		proteinMultiplier = 2.2
	case "muscle_gain":
		calories = tdee * 1.1
		proteinMultiplier = 1.8
	default:
		calories = tdee
		proteinMultiplier = 1.6
	}

	protein := weightKg * proteinMultiplier
	fat := calories * 0.25 / 9
	carbs := (calories - protein*4 - fat*9) / 4

	return Macros{
		Calories: int(math.Round(calories)),
		ProteinG: int(math.Round(protein)),
		CarbsG:   int(math.Round(carbs)),
		FatG:     int(math.Round(fat)),
	}
}

// NutritionGoal maps fitness goals to the primary dietary objective.
func NutritionGoal(goals []string) string {
	switch {
	case contains(goals, "weight_loss"):
		return "Create a moderate caloric deficit while preserving muscle mass"
	case contains(goals, "muscle_gain"):
		return "Create a moderate caloric surplus to support muscle growth"
	case contains(goals, "strength_improvement"):
		return "Maintain bodyweight while optimizing performance and recovery"
	case contains(goals, "endurance"):
		return "Optimize carbohydrate intake for performance and recovery"
	case contains(goals, "core_restoration"), contains(goals, "pelvic_floor_recovery"):
		return "Support recovery and healing with adequate protein and nutrients"
	default:
		return "Maintain current bodyweight while supporting overall health and fitness"
	}
}

// DesignNutrition builds the dietary component from the fitness goals,
// constraints and user preferences.
func DesignNutrition(goals, constraints, preferences []string) NutritionPlan {
	goal := NutritionGoal(goals)

	calcGoal := "maintenance"
	if strings.Contains(goal, "deficit") {
		calcGoal = "weight_loss"
	} else if strings.Contains(goal, "surplus") {
		calcGoal = "muscle_gain"
	}
	macros := CalculateMacros(calcGoal, defaultWeightKg, defaultActivity, defaultAge)

	return NutritionPlan{
		Goal:                  goal,
		Calories:              fmt.Sprintf("%d calories per day", macros.Calories),
		Protein:               fmt.Sprintf("%dg protein per day", macros.ProteinG),
		Carbohydrate:          fmt.Sprintf("%dg carbohydrates per day", macros.CarbsG),
		Fat:                   fmt.Sprintf("%dg fat per day", macros.FatG),
		MealTiming:            mealTiming(goal),
		Supplements:           supplements(goals, constraints),
		Hydration:             hydration(),
		DietaryConsiderations: dietaryConsiderations(constraints, preferences),
	}
}

func mealTiming(nutritionGoal string) []string {
	timing := []string{
		"2-3 hours before exercise: Balanced meal with protein and carbohydrates",
		"30-60 minutes before exercise: Light snack with carbohydrates if needed",
		"Within 2 hours after exercise: Protein and carbohydrates for recovery",
		"Eat every 3-4 hours to maintain stable energy levels",
		"Include protein with each meal to support muscle maintenance",
	}
	if strings.Contains(nutritionGoal, "deficit") {
		timing = append(timing, "Focus on high-fiber foods to promote satiety")
	} else if strings.Contains(nutritionGoal, "surplus") {
		timing = append(timing, "Consider additional meal or snack to meet caloric needs")
	}
	return timing
}

func supplements(goals, constraints []string) []string {
	out := []string{
		"Multivitamin: To ensure adequate micronutrient intake",
		"Vitamin D3: 1000-2000 IU daily (especially important for postpartum)",
	}
	if containsSubstr(goals, "strength") || containsSubstr(goals, "muscle_gain") {
		out = append(out,
			"Creatine monohydrate: 3-5g daily",
			"Whey protein: To meet protein targets")
	}
	if containsSubstr(goals, "endurance") {
		out = append(out, "Electrolyte supplement: For longer training sessions")
	}
	if containsSubstr(constraints, "postpartum") {
		out = append(out,
			"Omega-3 fatty acids: Support brain health and recovery",
			"Iron: If recommended by healthcare provider")
	}
	out = append(out, "Consult healthcare provider before starting any new supplements")
	return out
}

func hydration() map[string]string {
	return map[string]string{
		"daily_water":          "2-3 liters of water per day (adjust based on activity and climate)",
		"pre_exercise":         "500ml water 2-3 hours before exercise",
		"during_exercise":      "150-300ml every 15-20 minutes during exercise",
		"post_exercise":        "500ml water after exercise, plus electrolytes if needed",
		"signs_of_dehydration": "Monitor urine color (should be light yellow) and thirst levels",
	}
}

func dietaryConsiderations(constraints, preferences []string) []string {
	var out []string
	if containsSubstr(constraints, "postpartum") {
		out = append(out,
			"Ensure adequate calcium intake for bone health",
			"Include iron-rich foods to support recovery",
			"Consider breastfeeding nutrition if applicable")
	}
	if contains(constraints, "diastasis_recti") {
		out = append(out,
			"Focus on anti-inflammatory foods to support healing",
			"Ensure adequate protein for tissue repair")
	}
	if contains(preferences, "vegetarian") {
		out = append(out,
			"Include plant-based protein sources",
			"Consider B12 supplementation")
	}
	if contains(preferences, "gluten_free") {
		out = append(out, "Choose gluten-free grains and products")
	}
	out = append(out,
		"Focus on whole, minimally processed foods",
		"Include a variety of colorful fruits and vegetables",
		"Limit added sugars and processed foods")
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsSubstr(list []string, sub string) bool {
	for _, v := range list {
		if strings.Contains(v, sub) {
			return true
		}
	}
	return false
}
