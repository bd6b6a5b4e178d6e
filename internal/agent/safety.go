package agent

// SafetyReport is the validation output of the safety stage.  It drives the
// overall safety rating shown with every plan and the risk-dependent items
// in the execution checklist.
type SafetyReport struct {
	RiskAssessment        RiskAssessment    `json:"risk_assessment"`
	FlaggedExercises      []FlaggedExercise `json:"flagged_exercises"`
	SafeAlternatives      []Alternative     `json:"safe_alternatives"`
	SafetyRecommendations []string          `json:"safety_recommendations"`
	EmergencyProtocols    []string          `json:"emergency_protocols"`
	ValidationScore       int               `json:"validation_score"`
	OverallSafety         string            `json:"overall_safety"`
}

// RiskAssessment summarizes how risky a plan is for the requester.
type RiskAssessment struct {
	RiskScore   int      `json:"risk_score"`
	RiskLevel   string   `json:"risk_level"` // low, moderate, high
	RiskFactors []string `json:"risk_factors"`
}

// FlaggedExercise marks an exercise contraindicated by a condition.
type FlaggedExercise struct {
	Exercise  string `json:"exercise"`
	Condition string `json:"condition"`
	RiskLevel string `json:"risk_level"`
}

// Alternative suggests a safe replacement for a contraindicated movement.
type Alternative struct {
	Original    string `json:"original"`
	Alternative string `json:"alternative"`
}

// Safety ratings, ordered from safest to most restrictive.
const (
	SafetyLowRisk          = "low_risk"
	SafetyModerateRisk     = "moderate_risk"
	SafetyMedicalClearance = "requires_medical_clearance"
)

// Exercises contraindicated per condition.
var contraindicatedExercises = map[string][]string{
	"diastasis_recti": {
		"Traditional crunches", "Sit-ups", "Russian twists",
		"Planks (if separation >2cm)", "Heavy lifting",
	},
	"pelvic_organ_prolapse": {
		"Heavy lifting", "High-impact exercises", "Jumping",
		"Running", "Squats with heavy weights",
	},
	"pregnancy": {
		"Contact sports", "Scuba diving", "Hot yoga",
		"Exercises lying on back after 16 weeks", "High-impact activities",
	},
	"hypertension": {
		"Heavy lifting", "Isometric exercises", "High-intensity intervals",
		"Exercises with breath holding",
	},
}

var safeAlternatives = map[string][]Alternative{
	"diastasis_recti": {
		{Original: "Crunches", Alternative: "Pelvic tilts"},
		{Original: "Sit-ups", Alternative: "Dead bug"},
		{Original: "Planks", Alternative: "Bird dog"},
	},
	"pelvic_organ_prolapse": {
		{Original: "Heavy lifting", Alternative: "Light resistance training"},
		{Original: "Jumping", Alternative: "Walking"},
		{Original: "Running", Alternative: "Swimming"},
	},
}

// Conditions that individually raise the risk score by three points.
var highRiskConditions = map[string]bool{
	"diastasis_recti":       true,
	"pelvic_organ_prolapse": true,
	"pregnancy":             true,
	"hypertension":          true,
}

// CheckContraindications flags every plan exercise that appears in the
// contraindication table for one of the requester's conditions and collects
// safe alternatives when anything was flagged.
func CheckContraindications(exercises, conditions []string) ([]FlaggedExercise, []Alternative) {
	var flagged []FlaggedExercise
	for _, cond := range conditions {
		banned := contraindicatedExercises[cond]
		for _, ex := range exercises {
			if contains(banned, ex) {
				flagged = append(flagged, FlaggedExercise{
					Exercise:  ex,
					Condition: cond,
					RiskLevel: "high",
				})
			}
		}
	}
	var alternatives []Alternative
	if len(flagged) > 0 {
		for _, cond := range conditions {
			alternatives = append(alternatives, safeAlternatives[cond]...)
		}
	}
	return flagged, alternatives
}

// CoherenceScore validates the assembled components and returns a 0-100
// score; each detected issue deducts ten points.
func CoherenceScore(fitness FitnessPlan, nutrition NutritionPlan) (int, []string) {
	var issues []string
	if len(fitness.Days) < 2 {
		issues = append(issues, "Insufficient exercise frequency")
	}
	if len(fitness.WeeklySplit) == 0 {
		issues = append(issues, "Missing weekly split")
	}
	if nutrition.Calories == "" {
		issues = append(issues, "Missing calories information")
	}
	if nutrition.Protein == "" {
		issues = append(issues, "Missing protein information")
	}
	if nutrition.Carbohydrate == "" {
		issues = append(issues, "Missing carbohydrate information")
	}
	if nutrition.Fat == "" {
		issues = append(issues, "Missing fat information")
	}
	score := 100 - len(issues)*10
	if score < 0 {
		score = 0
	}
	return score, issues
}

// AssessRisk scores the plan: +3 per high-risk condition, +1 per other
// condition, +2 per flagged exercise, +2 when coherence is below 70.
// Scores of 8+ are high risk, 4+ moderate, everything else low.
func AssessRisk(constraints []string, flagged []FlaggedExercise, coherence int) RiskAssessment {
	var (
		score   int
		factors []string
	)
	for _, c := range constraints {
		if highRiskConditions[c] {
			factors = append(factors, "High-risk condition: "+c)
			score += 3
		} else {
			factors = append(factors, "Moderate-risk condition: "+c)
			score++
		}
	}
	if len(flagged) > 0 {
		factors = append(factors, "Contraindicated exercises present")
		score += len(flagged) * 2
	}
	if coherence < 70 {
		factors = append(factors, "Low plan coherence score")
		score += 2
	}

	level := "low"
	switch {
	case score >= 8:
		level = "high"
	case score >= 4:
		level = "moderate"
	}
	return RiskAssessment{RiskScore: score, RiskLevel: level, RiskFactors: factors}
}

// ValidateSafety runs the full safety stage: contraindication check,
// coherence scoring, risk assessment, recommendations, emergency protocols
// and the overall rating.
func ValidateSafety(fitness FitnessPlan, nutrition NutritionPlan, constraints []string, findings ResearchFindings) SafetyReport {
	exercises := exerciseNames(fitness)
	flagged, alternatives := CheckContraindications(exercises, constraints)
	coherence, _ := CoherenceScore(fitness, nutrition)
	risk := AssessRisk(constraints, flagged, coherence)

	report := SafetyReport{
		RiskAssessment:        risk,
		FlaggedExercises:      flagged,
		SafeAlternatives:      alternatives,
		SafetyRecommendations: safetyRecommendations(constraints, findings),
		EmergencyProtocols:    emergencyProtocols(constraints, risk),
		ValidationScore:       coherence,
	}
	report.OverallSafety = safetyRating(report)
	return report
}

func exerciseNames(fitness FitnessPlan) []string {
	var names []string
	for _, day := range fitness.Days {
		for _, ex := range day {
			names = append(names, ex.Name)
		}
	}
	return names
}

func safetyRecommendations(constraints []string, findings ResearchFindings) []string {
	recs := append([]string{}, findings.Recommendations...)
	if contains(constraints, "diastasis_recti") {
		recs = append(recs,
			"Monitor abdominal separation weekly",
			"Stop any exercise that causes doming",
			"Focus on transverse abdominis activation",
			"Consider working with a physical therapist")
	}
	if contains(constraints, "pelvic_organ_prolapse") {
		recs = append(recs,
			"Prioritize pelvic floor strengthening",
			"Avoid exercises that increase intra-abdominal pressure",
			"Consider working with a pelvic floor specialist",
			"Monitor for symptoms of prolapse")
	}
	if contains(constraints, "pregnancy") {
		recs = append(recs,
			"Get medical clearance before starting exercise",
			"Avoid exercises lying on back after 16 weeks",
			"Stay hydrated and avoid overheating",
			"Listen to your body and stop if needed")
	}
	recs = append(recs,
		"Start slowly and progress gradually",
		"Stop if you experience pain or unusual symptoms",
		"Stay hydrated during exercise",
		"Get adequate rest and recovery",
		"Consult healthcare provider with any concerns")
	return recs
}

func emergencyProtocols(constraints []string, risk RiskAssessment) []string {
	protocols := []string{
		"Stop exercise immediately if you experience chest pain, shortness of breath, or dizziness",
		"Seek medical attention for any severe pain or injury",
		"Call emergency services for any concerning symptoms",
	}
	if contains(constraints, "diastasis_recti") {
		protocols = append(protocols,
			"Stop immediately if you notice increased abdominal separation",
			"Seek medical attention if separation worsens or causes pain")
	}
	if contains(constraints, "pelvic_organ_prolapse") {
		protocols = append(protocols,
			"Stop exercise if you experience pelvic pressure or heaviness",
			"Seek medical attention for any prolapse symptoms")
	}
	if contains(constraints, "pregnancy") {
		protocols = append(protocols,
			"Stop exercise if you experience vaginal bleeding, contractions, or decreased fetal movement",
			"Seek immediate medical attention for any pregnancy-related concerns")
	}
	if contains(constraints, "hypertension") {
		protocols = append(protocols,
			"Stop exercise if you experience severe headache, chest pain, or vision changes",
			"Monitor blood pressure regularly and report significant changes")
	}
	if risk.RiskLevel == "high" {
		protocols = append(protocols,
			"Exercise with supervision when possible",
			"Have emergency contact information readily available",
			"Consider working with a qualified fitness professional")
	}
	return protocols
}

// safetyRating folds risk level, coherence and contraindication count into
// the overall rating.
func safetyRating(report SafetyReport) string {
	risk := report.RiskAssessment.RiskLevel
	switch {
	case risk == "high" || report.ValidationScore < 50 || len(report.FlaggedExercises) > 3:
		return SafetyMedicalClearance
	case risk == "moderate" || report.ValidationScore < 70 || len(report.FlaggedExercises) > 1:
		return SafetyModerateRisk
	default:
		return SafetyLowRisk
	}
}
