package model

import (
	"encoding/json"
	"time"
)

// PlanRecord mirrors a row of the `health_plans` table.  The generated plan
// itself and its metadata are stored as JSONB documents; the record only
// adds identity, a soft-delete flag and timestamps.
//
// Fields:
//
//	ID        – primary key (uuid).
//	PlanID    – unique human-readable slug, e.g. "postpartum_mothers_core_restoration".
//	PlanData  – the full plan document as produced by the agent pipeline.
//	Metadata  – free-form annotations (category, source, generation params).
//	IsActive  – soft-delete flag; deactivated plans are hidden from discovery.
//	CreatedAt – creation timestamp.
//	UpdatedAt – last update timestamp.
type PlanRecord struct {
	ID        string          // health_plans.id
	PlanID    string          // health_plans.plan_id
	PlanData  json.RawMessage // health_plans.plan_data (jsonb)
	Metadata  json.RawMessage // health_plans.metadata (jsonb)
	IsActive  bool            // health_plans.is_active
	CreatedAt time.Time       // health_plans.created_at
	UpdatedAt time.Time       // health_plans.updated_at
}

// HealthPlan is the frontend-compatible plan document assembled by the
// orchestrator.  Days maps a training day name ("Full Body A") to formatted
// exercise lines ("1) Squats — 4x8-12").
type HealthPlan struct {
	Overview                string              `json:"overview"`
	WeeklySplit             []string            `json:"weekly_split"`
	GlobalRules             []Rule              `json:"global_rules"`
	Days                    map[string][]string `json:"days"`
	ConditioningAndRecovery []string            `json:"conditioning_and_recovery"`
	Nutrition               Nutrition           `json:"nutrition"`
	ExecutionChecklist      []string            `json:"execution_checklist"`
}

// Rule is a titled guideline shown alongside every training day.
type Rule struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Nutrition is the dietary section of a plan.  Macro fields are
// human-readable strings ("120g protein per day") rather than numbers so the
// pipeline can express ranges and units freely.
type Nutrition struct {
	Goal         string   `json:"goal"`
	Calories     string   `json:"calories"`
	Protein      string   `json:"protein"`
	Carbohydrate string   `json:"carbohydrate"`
	Fat          string   `json:"fat"`
	Timing       []string `json:"timing_and_training_day_setup"`
}

// Exercise describes one movement inside a training day before formatting.
type Exercise struct {
	Name  string `json:"name"`
	Sets  string `json:"sets"`
	Reps  string `json:"reps"`
	Rest  string `json:"rest"`
	Notes string `json:"notes,omitempty"`
}
