package model

// PlanRequest is the payload of POST /api/v1/plans/generate.  Either the
// structured fields or the free-text Prompt must be provided; when Prompt is
// set the orchestrator extracts the structured parameters from it.
type PlanRequest struct {
	Population         string   `json:"population"`
	Goals              []string `json:"goals"`
	Constraints        []string `json:"constraints"`
	Timeline           string   `json:"timeline"`
	FitnessLevel       string   `json:"fitness_level"`
	Preferences        []string `json:"preferences"`
	EquipmentAvailable []string `json:"equipment_available"`
	Prompt             string   `json:"prompt,omitempty"`
}

// Normalize fills the defaults the generation pipeline assumes.  Population
// and goals stay empty on purpose when absent; the handler rejects requests
// that provide neither those nor a prompt.
func (r *PlanRequest) Normalize() {
	if r.Timeline == "" {
		r.Timeline = "12_weeks"
	}
	if r.FitnessLevel == "" {
		r.FitnessLevel = "beginner"
	}
	if r.Constraints == nil {
		r.Constraints = []string{}
	}
	if r.Preferences == nil {
		r.Preferences = []string{}
	}
	if r.EquipmentAvailable == nil {
		r.EquipmentAvailable = []string{}
	}
}
