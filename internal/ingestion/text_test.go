package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
}

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	assert.Equal(t, "a\nb", CleanText("a\r\nb"))
	assert.Equal(t, "a\nb", CleanText("a\rb"))
}

func TestCleanText_CollapsesBlankLines(t *testing.T) {
	assert.Equal(t, "a\n\nb", CleanText("a\n\n\n\n\nb"))
}

func TestCleanText_NormalizesBullets(t *testing.T) {
	cleaned := CleanText("Requirements:\n• Go experience\n* SQL knowledge")

	assert.Contains(t, cleaned, "- Go experience")
	assert.Contains(t, cleaned, "- SQL knowledge")
}

func TestCleanText_KeepsHeadings(t *testing.T) {
	cleaned := CleanText("   ## About the role\ntext")

	assert.Contains(t, cleaned, "## About the role")
}

func TestCleanText_TrimsTrailingWhitespace(t *testing.T) {
	assert.Equal(t, "line", CleanText("line   \t\n\n"))
}
