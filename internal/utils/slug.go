package utils // package utils provides small helpers shared across layers

import "strings"

// Slugify lowercases a value and replaces spaces and hyphens with
// underscores so it can be used inside a plan identifier.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// PlanSlug derives a plan identifier from the population and the first two
// goals, e.g. "postpartum_mothers_core_restoration_pelvic_floor_recovery".
func PlanSlug(population string, goals []string) string {
	parts := []string{Slugify(population)}
	for i, g := range goals {
		if i == 2 {
			break
		}
		parts = append(parts, Slugify(g))
	}
	return strings.Join(parts, "_")
}
