package types

// ResumeSections is the fixed section order of a stored resume.
// Reordering is currently descriptive only (recorded in the diff), the
// physical order stays [summary, skills, experience].
type ResumeSections struct {
	Summary    string `json:"summary"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
}

// RemodelDiff records what a resume remodel changed.
// SkillsRemodeled is always a permutation of SkillsOriginal: the remodeler
// never adds or removes a skill, only reorders.
type RemodelDiff struct {
	SkillsOriginal         []string `json:"skills_original"`
	SkillsRemodeled        []string `json:"skills_remodeled"`
	Reordered              bool     `json:"reordered"`
	Highlighted            []string `json:"highlighted"`
	SectionsOriginalOrder  []string `json:"sections_original_order"`
	SectionsRemodeledOrder []string `json:"sections_remodeled_order"`
	Summary                string   `json:"summary"`
}
