// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into audit log lines.
package queue

// PlanGeneratedEvent is published after a plan has been generated and stored.
// It carries enough information for downstream consumers to log, notify, or
// feed analytics without querying the primary database.
type PlanGeneratedEvent struct {
	PlanID          string   `json:"plan_id"`
	Population      string   `json:"population"`
	Goals           []string `json:"goals"`
	Timeline        string   `json:"timeline"`
	FitnessLevel    string   `json:"fitness_level"`
	OverallSafety   string   `json:"overall_safety"`
	ValidationScore int      `json:"validation_score"`
	RequestedBy     string   `json:"requested_by,omitempty"`
	GeneratedAt     string   `json:"generated_at"`
}
