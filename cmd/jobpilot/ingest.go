package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-pilot/internal/fetch"
	"github.com/jonathan/job-pilot/internal/ingestion"
	"github.com/jonathan/job-pilot/internal/skills"
	"github.com/jonathan/job-pilot/internal/types"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest URL [URL...]",
	Short: "Fetch job postings and extract structured jobs",
	Long:  "Fetches one or more posting URLs concurrently, extracts the posting text and emits structured jobs with their detected skills as JSON.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIngest,
}

var ingestUseBrowser bool

func init() {
	ingestCmd.Flags().BoolVar(&ingestUseBrowser, "browser", false, "Retry thin pages with a headless browser")
	rootCmd.AddCommand(ingestCmd)
}

// ingestedPosting is one line of ingest output.
type ingestedPosting struct {
	URL    string    `json:"url"`
	Job    types.Job `json:"job,omitempty"`
	Skills []string  `json:"skills,omitempty"`
	Error  string    `json:"error,omitempty"`
}

func runIngest(cmd *cobra.Command, urls []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results := fetch.Batch(ctx, urls, nil)

	postings := make([]ingestedPosting, 0, len(results))
	for _, result := range results {
		posting := ingestedPosting{URL: result.URL}

		switch {
		case result.Err != nil:
			posting.Error = result.Err.Error()
		default:
			text := result.Text
			if ingestUseBrowser && fetch.ShouldUseBrowser(text) {
				if rendered, err := fetch.BrowserSimple(ctx, result.URL, false); err == nil {
					if job, perr := ingestion.PostingFromHTML(rendered); perr == nil &&
						len(job.Description) > len(text) {
						posting.Job = job
						posting.Skills = skills.Extract(job.Description)
						postings = append(postings, posting)
						continue
					}
				}
			}
			posting.Job = ingestion.PostingFromText(text)
			posting.Skills = skills.Extract(posting.Job.Description)
		}

		postings = append(postings, posting)
	}

	output, err := json.MarshalIndent(postings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal postings to JSON: %w", err)
	}
	output = append(output, '\n')

	_, err = os.Stdout.Write(output)
	return err
}
