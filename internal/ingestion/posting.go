package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/job-pilot/internal/fetch"
	"github.com/jonathan/job-pilot/internal/types"
)

// locationSelectors are CSS selectors commonly used by job boards for the
// posting location.
var locationSelectors = []string{
	".job-location",
	".location",
	"[data-testid='job-location']",
	"[itemprop='jobLocation']",
}

// companySelectors are CSS selectors commonly used for the hiring company name.
var companySelectors = []string{
	".company-name",
	".company",
	"[data-testid='company-name']",
	"[itemprop='hiringOrganization']",
}

// PostingFromHTML extracts a structured job posting from a posting page.
// Fields that cannot be located are left empty; the description always falls
// back to the page's main text so the posting stays scoreable.
func PostingFromHTML(html string) (types.Job, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return types.Job{}, fmt.Errorf("failed to parse posting HTML: %w", err)
	}

	job := types.Job{
		Title:    extractTitle(doc),
		Company:  firstText(doc, companySelectors),
		Location: firstText(doc, locationSelectors),
	}

	description, err := fetch.ExtractMainText(html, fetch.JobPostingSelectors())
	if err != nil {
		return job, fmt.Errorf("failed to extract posting text: %w", err)
	}
	job.Description = CleanText(description)

	return job, nil
}

// PostingFromText builds a posting record from raw pasted text. The first
// non-empty line doubles as the title when none is supplied.
func PostingFromText(text string) types.Job {
	cleaned := CleanText(text)

	title := ""
	for _, line := range strings.Split(cleaned, "\n") {
		if strings.TrimSpace(line) != "" {
			title = strings.TrimSpace(line)
			break
		}
	}

	return types.Job{
		Title:       title,
		Description: cleaned,
	}
}

// extractTitle tries og:title, then the first h1, then the document title.
func extractTitle(doc *goquery.Document) string {
	if content, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if title := strings.TrimSpace(content); title != "" {
			return title
		}
	}

	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}

	return strings.TrimSpace(doc.Find("title").First().Text())
}

// firstText returns the trimmed text of the first selector that matches.
func firstText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		if text := strings.TrimSpace(doc.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}
