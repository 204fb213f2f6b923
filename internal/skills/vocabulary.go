// Package skills provides skill extraction from job description text against
// a fixed vocabulary of known skill keywords.
package skills

// defaultVocabulary is the fixed, ordered set of recognized skill tokens.
// Matching is case-insensitive; the list itself is stored lowercase and must
// stay free of duplicates. It is read-only after process start.
var defaultVocabulary = []string{
	"javascript",
	"typescript",
	"python",
	"java",
	"golang",
	"go",
	"rust",
	"ruby",
	"php",
	"c++",
	"c#",
	"swift",
	"kotlin",
	"scala",
	"react",
	"angular",
	"vue",
	"svelte",
	"next.js",
	"node",
	"node.js",
	"express",
	"django",
	"flask",
	"spring",
	"rails",
	"graphql",
	"rest",
	"grpc",
	"html",
	"css",
	"sass",
	"tailwind",
	"sql",
	"postgresql",
	"mysql",
	"mongodb",
	"redis",
	"elasticsearch",
	"kafka",
	"rabbitmq",
	"aws",
	"azure",
	"gcp",
	"docker",
	"kubernetes",
	"terraform",
	"ansible",
	"jenkins",
	"ci/cd",
	"git",
	"linux",
	"agile",
	"scrum",
	"machine learning",
	"data analysis",
	"pandas",
	"numpy",
	"tensorflow",
	"pytorch",
	"spark",
	"hadoop",
	"airflow",
	"microservices",
	"distributed systems",
	"system design",
	"testing",
	"tdd",
	"oauth",
	"security",
	"figma",
	"product management",
	"project management",
	"communication",
	"leadership",
}

// Vocabulary returns the process-wide skill vocabulary.
// Callers must not modify the returned slice.
func Vocabulary() []string {
	return defaultVocabulary
}
