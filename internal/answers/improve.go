// Package answers improves stored free-text application answers with light,
// deterministic text transforms: job-relevant sentences are moved to the
// front and whitespace is normalized. A safety check guarantees the improved
// text never contains a word the original did not.
package answers

import (
	"regexp"
	"strings"

	"github.com/jonathan/job-pilot/internal/skills"
	"github.com/jonathan/job-pilot/internal/types"
)

const (
	baseConfidence       = 50
	maxSkillBonus        = 20
	perSkillBonus        = 5
	reorderBonus         = 10
	highRelevanceBonus   = 15
	highRelevanceCeiling = 95
	lowRelevancePenalty  = 20
	lowRelevanceFloor    = 30
	safetyPenalty        = 30
	safetyFloor          = 20
)

var (
	// sentencePattern splits text on . ! ? boundaries. It is deliberately
	// naive about abbreviations ("Dr. Smith" becomes two sentences); the
	// safety check bounds the damage.
	sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)

	whitespaceRun = regexp.MustCompile(`\s+`)

	// missingSentenceSpace finds sentence-terminal punctuation glued to a
	// lowercase letter.
	missingSentenceSpace = regexp.MustCompile(`([.!?])([a-z])`)
)

// Improve runs the answer-improvement pipeline over a stored answer.
// It is total over its inputs: empty answers short-circuit with zero
// confidence, and every other input falls through the pipeline with no-op
// transforms where conditions do not apply. Callers always get a usable
// answer, never an error.
func Improve(originalAnswer, jobDescription string) types.AnswerImprovement {
	if strings.TrimSpace(originalAnswer) == "" {
		return types.AnswerImprovement{
			Original:   originalAnswer,
			Improved:   originalAnswer,
			Confidence: 0,
			Changes:    []string{},
		}
	}

	original := strings.TrimSpace(originalAnswer)
	improved := original
	changes := []string{}

	mentioned := mentionedSkills(original, jobDescription)

	confidence := baseConfidence + min(maxSkillBonus, perSkillBonus*len(mentioned))

	// Move sentences that mention job skills to the front.
	if reordered, ok := reorderSentences(improved, mentioned); ok {
		improved = reordered
		changes = append(changes, "Moved job-relevant sentences to the front")
		confidence += reorderBonus
	}

	// Normalize whitespace and sentence spacing.
	if cleaned := normalizeWhitespace(improved); cleaned != improved {
		improved = cleaned
		changes = append(changes, "Cleaned up formatting")
	}

	// Relevance adjustment.
	switch {
	case len(mentioned) == 0:
		confidence = max(lowRelevanceFloor, confidence-lowRelevancePenalty)
		changes = append(changes, "Answer does not mention skills from the job description")
	case len(mentioned) >= 3:
		confidence = min(highRelevanceCeiling, confidence+highRelevanceBonus)
		changes = append(changes, "Answer covers several skills from the job description")
	}

	// Safety check: the improved text must not introduce words absent from
	// the original. On violation, silently fall back to the original rather
	// than return fabricated content.
	if introducesNewWords(original, improved) {
		improved = original
		confidence = max(safetyFloor, confidence-safetyPenalty)
		changes = append(changes, "Reverted changes that failed the safety check")
	}

	if len(changes) == 0 {
		changes = append(changes, "Answer is already well-optimized")
		confidence += reorderBonus
	}

	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	return types.AnswerImprovement{
		Original:   originalAnswer,
		Improved:   improved,
		Confidence: confidence,
		Changes:    changes,
	}
}

// mentionedSkills returns the job's skills that also appear in the answer
// text, scoping extraction over the answer to the job's own vocabulary.
func mentionedSkills(answer, jobDescription string) []string {
	return skills.ExtractAgainst(answer, skills.Extract(jobDescription))
}

// reorderSentences moves sentences mentioning any of the given skills before
// the rest, stable within each partition. It reports false when there is
// nothing to reorder: no skill sentences, or every sentence mentions a skill.
func reorderSentences(text string, mentioned []string) (string, bool) {
	if len(mentioned) == 0 {
		return text, false
	}

	sentences := splitSentences(text)
	if len(sentences) < 2 {
		return text, false
	}

	var skillSentences, otherSentences []string
	for _, sentence := range sentences {
		if sentenceMentions(sentence, mentioned) {
			skillSentences = append(skillSentences, sentence)
		} else {
			otherSentences = append(otherSentences, sentence)
		}
	}

	if len(skillSentences) == 0 || len(otherSentences) == 0 {
		return text, false
	}

	combined := append(skillSentences, otherSentences...)
	return strings.Join(combined, " "), true
}

// splitSentences breaks text into trimmed sentences, keeping each sentence's
// terminal punctuation.
func splitSentences(text string) []string {
	raw := sentencePattern.FindAllString(text, -1)

	sentences := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func sentenceMentions(sentence string, mentioned []string) bool {
	lower := strings.ToLower(sentence)
	for _, skill := range mentioned {
		if strings.Contains(lower, skill) {
			return true
		}
	}
	return false
}

// normalizeWhitespace collapses whitespace runs to single spaces and inserts
// a space after sentence punctuation glued to a lowercase letter.
func normalizeWhitespace(text string) string {
	normalized := whitespaceRun.ReplaceAllString(text, " ")
	normalized = missingSentenceSpace.ReplaceAllString(normalized, "$1 $2")
	return strings.TrimSpace(normalized)
}

// introducesNewWords reports whether improved contains a token (length >= 2,
// punctuation-stripped, case-insensitive) that original does not.
func introducesNewWords(original, improved string) bool {
	originalTokens := make(map[string]bool)
	for _, token := range tokenize(original) {
		originalTokens[token] = true
	}

	for _, token := range tokenize(improved) {
		if !originalTokens[token] {
			return true
		}
	}
	return false
}

// tokenize splits raw text on whitespace and strips surrounding punctuation;
// tokens shorter than two characters are dropped. It must not reuse the
// pipeline's formatting transforms: the safety check compares improved tokens
// against the original's, and normalizing the original the same way would
// hide the exact fabrications the check exists to catch.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.Trim(field, ".,;:!?\"'()[]{}")
		if len(token) >= 2 {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
