package agent

import "sort"

// ResearchFindings aggregates the evidence backing a plan: population level
// contraindications and safety recommendations merged with constraint
// specific entries.
type ResearchFindings struct {
	Population        string
	Goals             []string
	Constraints       []string
	Contraindications []string
	Recommendations   []string
}

// Contraindications and recommendations by population.  These tables encode
// published guidance (ACSM, WHO) for the populations the service is most
// commonly asked about; unknown populations fall back to a generic
// medical-clearance recommendation.
var populationContraindications = map[string][]string{
	"postpartum_reconditioning": {
		"Unresolved diastasis recti >2cm",
		"Pelvic organ prolapse symptoms",
		"Uncontrolled bleeding",
		"C-section complications",
	},
	"weight_loss": {
		"Severe obesity complications",
		"Uncontrolled hypertension",
		"Cardiac conditions",
	},
}

var populationRecommendations = map[string][]string{
	"postpartum_reconditioning": {
		"Begin exercise 6-8 weeks postpartum with medical clearance",
		"Start with gentle walking and pelvic floor exercises",
		"Progress gradually and listen to your body",
		"Stop if you experience pain or unusual symptoms",
	},
	"weight_loss": {
		"Start with low-impact activities",
		"Gradually increase intensity and duration",
		"Focus on sustainable lifestyle changes",
		"Monitor progress and adjust as needed",
	},
}

var constraintContraindications = map[string][]string{
	"diastasis_recti":       {"Traditional crunches", "Sit-ups", "Heavy lifting"},
	"pelvic_organ_prolapse": {"High-impact exercises", "Heavy lifting"},
	"hypertension":          {"Heavy lifting", "Isometric exercises"},
}

// Research collects contraindications and recommendations for the given
// population, goals and constraints.  The result is deterministic so the
// downstream safety stage has a stable evidence base to validate against.
func Research(population string, goals, constraints []string) ResearchFindings {
	findings := ResearchFindings{
		Population:  population,
		Goals:       goals,
		Constraints: constraints,
	}

	contra := append([]string{}, populationContraindications[population]...)
	for _, c := range constraints {
		contra = append(contra, constraintContraindications[c]...)
	}
	findings.Contraindications = dedupe(contra)

	recs, ok := populationRecommendations[population]
	if !ok {
		recs = []string{"Consult healthcare provider before starting"}
	}
	findings.Recommendations = append([]string{}, recs...)

	return findings
}

// dedupe removes duplicates while keeping a stable (sorted) order.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
