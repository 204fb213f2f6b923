package types

// CandidateProfile represents a candidate's stored profile used as input to
// scoring and ranking. Skills keep insertion order; that order is the
// candidate's display priority.
type CandidateProfile struct {
	Skills            []string `json:"skills"`
	YearsOfExperience int      `json:"years_of_experience"`
	Location          string   `json:"location"`
}
