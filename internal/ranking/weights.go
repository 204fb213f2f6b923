// Package ranking combines four independent sub-scores into a weighted
// composite ranking score and orders job lists by it.
package ranking

// Default weights for the four ranking factors. Overrides replace individual
// entries before normalization, so callers can supply any magnitudes and the
// effective weights still sum to 1.0.
const (
	defaultSkillMatchWeight    = 0.4
	defaultExperienceFitWeight = 0.25
	defaultLocationWeight      = 0.2
	defaultRecencyWeight       = 0.15
)

// Weights holds optional per-factor weight overrides. A nil field keeps the
// default for that factor. An explicit struct (rather than a map) keeps the
// normalization step exhaustive.
type Weights struct {
	SkillMatch    *float64 `json:"skillMatch,omitempty"`
	ExperienceFit *float64 `json:"experienceFit,omitempty"`
	Location      *float64 `json:"location,omitempty"`
	Recency       *float64 `json:"recency,omitempty"`
}

// effectiveWeights holds the normalized weights actually used for scoring.
type effectiveWeights struct {
	skillMatch    float64
	experienceFit float64
	location      float64
	recency       float64
}

// resolveWeights applies overrides to the defaults and normalizes the result
// so the four weights sum to 1.0. Non-positive totals (e.g. all overrides
// zero) fall back to the defaults.
func resolveWeights(overrides Weights) effectiveWeights {
	w := effectiveWeights{
		skillMatch:    defaultSkillMatchWeight,
		experienceFit: defaultExperienceFitWeight,
		location:      defaultLocationWeight,
		recency:       defaultRecencyWeight,
	}

	if overrides.SkillMatch != nil {
		w.skillMatch = *overrides.SkillMatch
	}
	if overrides.ExperienceFit != nil {
		w.experienceFit = *overrides.ExperienceFit
	}
	if overrides.Location != nil {
		w.location = *overrides.Location
	}
	if overrides.Recency != nil {
		w.recency = *overrides.Recency
	}

	total := w.skillMatch + w.experienceFit + w.location + w.recency
	if total <= 0 {
		return effectiveWeights{
			skillMatch:    defaultSkillMatchWeight,
			experienceFit: defaultExperienceFitWeight,
			location:      defaultLocationWeight,
			recency:       defaultRecencyWeight,
		}
	}

	w.skillMatch /= total
	w.experienceFit /= total
	w.location /= total
	w.recency /= total

	return w
}
