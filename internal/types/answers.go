package types

// AnswerImprovement is the result of running a stored free-text answer
// through the answer improver. Improved never contains a word (length >= 2)
// that was not already present in Original; the improver reverts to the
// original text rather than violate that.
type AnswerImprovement struct {
	Original   string   `json:"original"`
	Improved   string   `json:"improved"`
	Confidence int      `json:"confidence"`
	Changes    []string `json:"changes"`
}
