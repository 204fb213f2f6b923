package skills

import "strings"

// Extract maps free-form job description text to the subset of vocabulary
// skills it mentions. Matching is case-insensitive substring containment with
// no word-boundary enforcement, so a vocabulary token that happens to be a
// substring of an unrelated word still matches (e.g. "java" inside
// "javascript"). That looseness is intentional: downstream thresholds and
// explanation text are tuned against it.
//
// The result preserves vocabulary order and contains no duplicates.
// Empty input yields an empty result.
func Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	normalized := strings.ToLower(text)

	var found []string
	for _, skill := range defaultVocabulary {
		if strings.Contains(normalized, skill) {
			found = append(found, skill)
		}
	}

	return found
}

// ExtractAgainst behaves like Extract but matches against a caller-supplied
// vocabulary instead of the default one, for callers that scope extraction to
// a known skill set (the answer improver checks which of a job's skills an
// answer mentions this way).
func ExtractAgainst(text string, vocabulary []string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	normalized := strings.ToLower(text)
	seen := make(map[string]bool)

	var found []string
	for _, skill := range vocabulary {
		lower := strings.ToLower(strings.TrimSpace(skill))
		if lower == "" || seen[lower] {
			continue
		}
		if strings.Contains(normalized, lower) {
			found = append(found, lower)
			seen[lower] = true
		}
	}

	return found
}
