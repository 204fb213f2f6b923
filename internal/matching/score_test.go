package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScore_PartialOverlap(t *testing.T) {
	// 1 of 2 distinct job skills matched -> round(100 * 1/2) = 50
	score := ComputeScore([]string{"react", "node"}, []string{"react", "python"})
	assert.Equal(t, 50, score)
}

func TestComputeScore_FullOverlap(t *testing.T) {
	score := ComputeScore([]string{"go", "sql"}, []string{"sql", "go", "docker"})
	assert.Equal(t, 100, score)
}

func TestComputeScore_NoOverlap(t *testing.T) {
	score := ComputeScore([]string{"rust"}, []string{"python"})
	assert.Equal(t, 0, score)
}

func TestComputeScore_EmptyInputs(t *testing.T) {
	assert.Equal(t, 0, ComputeScore(nil, []string{"go"}))
	assert.Equal(t, 0, ComputeScore([]string{"go"}, nil))
	assert.Equal(t, 0, ComputeScore(nil, nil))
}

func TestComputeScore_CaseInsensitive(t *testing.T) {
	score := ComputeScore([]string{"React", "NODE"}, []string{"react", "node"})
	assert.Equal(t, 100, score)
}

func TestComputeScore_DistinctDenominator(t *testing.T) {
	// Duplicate job skills collapse: denominator is distinct count (2), not 4.
	score := ComputeScore([]string{"react", "react", "node", "React"}, []string{"react"})
	assert.Equal(t, 50, score)
}

func TestComputeScore_Rounding(t *testing.T) {
	// 1 of 3 -> round(33.33) = 33; 2 of 3 -> round(66.67) = 67
	assert.Equal(t, 33, ComputeScore([]string{"a", "b", "c"}, []string{"a"}))
	assert.Equal(t, 67, ComputeScore([]string{"a", "b", "c"}, []string{"a", "b"}))
}

func TestComputeScore_Bounds(t *testing.T) {
	cases := [][2][]string{
		{{"a"}, {"a"}},
		{{"a", "b", "c", "d", "e"}, {"c", "e", "x"}},
		{{" go "}, {"go"}},
	}
	for _, c := range cases {
		score := ComputeScore(c[0], c[1])
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5))
	assert.Equal(t, 100, Clamp(150))
	assert.Equal(t, 42, Clamp(42))
}
