package agent

// MotivationPlan is the behavioral component of a health plan.  It is stored
// in plan metadata and feeds the execution checklist; only the goal setting
// section surfaces in API summaries.
type MotivationPlan struct {
	GoalSetting      GoalSetting      `json:"goal_setting"`
	ProgressTracking ProgressTracking `json:"progress_tracking"`
	Encouragement    Encouragement    `json:"encouragement"`
	KeystoneHabits   []string         `json:"keystone_habits"`
	HabitStacks      []string         `json:"habit_stacks"`
	Milestones       []Milestone      `json:"milestones"`
	CelebrationIdeas []string         `json:"celebration_ideas"`
}

// GoalSetting frames the primary goals plus supporting process and outcome
// goals.
type GoalSetting struct {
	PrimaryGoals []PrimaryGoal `json:"primary_goals"`
	ProcessGoals []string      `json:"process_goals"`
	OutcomeGoals []string      `json:"outcome_goals"`
}

// PrimaryGoal pairs a requested goal with its description and framing.
type PrimaryGoal struct {
	Goal        string `json:"goal"`
	Description string `json:"description"`
	Timeline    string `json:"timeline"`
	Difficulty  string `json:"difficulty"`
}

// ProgressTracking describes how adherence and results are measured.
type ProgressTracking struct {
	TrackingMethods    []string `json:"tracking_methods"`
	KeyMetrics         []string `json:"key_metrics"`
	AdjustmentTriggers []string `json:"adjustment_triggers"`
}

// Encouragement captures reinforcement strategies and support resources.
type Encouragement struct {
	PositiveReinforcement []string `json:"positive_reinforcement"`
	MotivationalMessages  []string `json:"motivational_messages"`
	SupportResources      []string `json:"support_resources"`
}

// Milestone marks a checkpoint within the program timeline.
type Milestone struct {
	Week      int    `json:"week"`
	Milestone string `json:"milestone"`
}

var goalDescriptions = map[string]string{
	"weight_loss":           "Sustainably reduce body weight while preserving muscle mass",
	"muscle_gain":           "Build lean muscle mass through progressive resistance training",
	"strength_improvement":  "Increase maximal strength in key movement patterns",
	"endurance":             "Improve cardiovascular fitness and work capacity",
	"core_restoration":      "Restore core function and abdominal wall integrity",
	"pelvic_floor_recovery": "Strengthen pelvic floor muscles and improve function",
	"flexibility":           "Improve joint mobility and muscle flexibility",
	"injury_prevention":     "Build resilience and reduce injury risk",
}

// GoalDescription explains a goal in one sentence; unknown goals get a
// generic description.
func GoalDescription(goal string) string {
	if d, ok := goalDescriptions[goal]; ok {
		return d
	}
	return "Improve overall health and fitness"
}

// DesignMotivation builds the behavioral component from the requested goals,
// program timeline and fitness level.
func DesignMotivation(goals []string, timeline, fitnessLevel string) MotivationPlan {
	plan := MotivationPlan{
		GoalSetting: GoalSetting{
			ProcessGoals: []string{
				"Complete 3 workout sessions per week",
				"Follow nutrition plan 80% of the time",
				"Get 7-9 hours of sleep per night",
				"Stay hydrated throughout the day",
			},
		},
		ProgressTracking: ProgressTracking{
			TrackingMethods: []string{
				"Weekly progress photos",
				"Body measurements",
				"Workout performance logs",
				"Nutrition adherence tracking",
				"Sleep and recovery monitoring",
			},
			AdjustmentTriggers: []string{
				"Plateau for 2+ weeks",
				"Injury or pain",
				"Life circumstances change",
				"Goals evolve",
			},
		},
		Encouragement: Encouragement{
			PositiveReinforcement: []string{
				"Celebrate small wins daily",
				"Acknowledge consistency over perfection",
				"Focus on progress, not perfection",
				"Reward effort, not just outcomes",
			},
			MotivationalMessages: []string{
				"Every workout makes you stronger",
				"Your future self will thank you",
				"Progress is progress, no matter how small",
				"You're building a healthier, stronger version of yourself",
			},
			SupportResources: []string{
				"Join online fitness communities",
				"Find an accountability partner",
				"Work with a personal trainer or coach",
				"Use fitness tracking apps for motivation",
			},
		},
		KeystoneHabits: []string{
			"Morning routine with exercise",
			"Meal planning and preparation",
			"Consistent sleep schedule",
			"Regular movement throughout the day",
		},
		HabitStacks: []string{
			"After morning coffee: 10 minutes of stretching",
			"After lunch: 5-minute walk",
			"Before dinner: 15 minutes of core work",
			"Before bed: 5 minutes of meditation",
		},
		CelebrationIdeas: []string{
			"Treat yourself to a massage or spa day",
			"Buy new workout clothes or equipment",
			"Share your progress with friends and family",
			"Take progress photos and reflect on changes",
			"Plan a fun active outing",
		},
	}

	for _, g := range goals {
		plan.GoalSetting.PrimaryGoals = append(plan.GoalSetting.PrimaryGoals, PrimaryGoal{
			Goal:        g,
			Description: GoalDescription(g),
			Timeline:    timeline,
			Difficulty:  fitnessLevel,
		})
	}

	if contains(goals, "weight_loss") {
		plan.GoalSetting.OutcomeGoals = append(plan.GoalSetting.OutcomeGoals, "Lose 0.5-1 kg per week")
		plan.ProgressTracking.KeyMetrics = append(plan.ProgressTracking.KeyMetrics,
			"Body weight", "Body measurements", "Progress photos")
	}
	if contains(goals, "strength_improvement") {
		plan.GoalSetting.OutcomeGoals = append(plan.GoalSetting.OutcomeGoals, "Increase strength by 5-10% over 12 weeks")
		plan.ProgressTracking.KeyMetrics = append(plan.ProgressTracking.KeyMetrics,
			"Lift progression", "Rep maxes", "Workout volume")
	}
	if contains(goals, "core_restoration") {
		plan.GoalSetting.OutcomeGoals = append(plan.GoalSetting.OutcomeGoals, "Reduce diastasis recti separation by 50%")
		plan.ProgressTracking.KeyMetrics = append(plan.ProgressTracking.KeyMetrics,
			"Diastasis measurement", "Core strength tests", "Functional movement")
	}

	plan.Milestones = milestones(timeline)
	return plan
}

func milestones(timeline string) []Milestone {
	if timeline == "12_weeks" {
		return []Milestone{
			{Week: 2, Milestone: "Establishing new habits"},
			{Week: 4, Milestone: "First month completed"},
			{Week: 6, Milestone: "Halfway point"},
			{Week: 8, Milestone: "Two-thirds complete"},
			{Week: 12, Milestone: "Program completion"},
		}
	}
	return []Milestone{
		{Week: 1, Milestone: "Getting started"},
		{Week: 2, Milestone: "Building momentum"},
		{Week: 4, Milestone: "One month strong"},
	}
}
