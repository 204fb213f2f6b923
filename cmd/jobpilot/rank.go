package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-pilot/internal/config"
	"github.com/jonathan/job-pilot/internal/observability"
	"github.com/jonathan/job-pilot/internal/ranking"
	"github.com/jonathan/job-pilot/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank jobs against a candidate profile",
	Long:  "Deterministically ranks a list of job postings against a candidate profile, producing a ranked JSON list sorted by composite score.",
	RunE:  runRank,
}

var (
	rankJobsPath      string
	rankCandidatePath string
	rankConfigPath    string
	rankOutput        string
	rankVerbose       bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankJobsPath, "jobs", "j", "", "Path to input jobs JSON file (required)")
	rankCmd.Flags().StringVarP(&rankCandidatePath, "candidate", "c", "", "Path to input candidate profile JSON file (required)")
	rankCmd.Flags().StringVar(&rankConfigPath, "config", "", "Path to JSON config file with weight overrides")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print formatted ranking tables")

	if err := rankCmd.MarkFlagRequired("jobs"); err != nil {
		panic(fmt.Sprintf("failed to mark jobs flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	jobs, err := loadJSONFile[[]types.Job](rankJobsPath)
	if err != nil {
		return fmt.Errorf("failed to load jobs: %w", err)
	}

	candidate, err := loadJSONFile[types.CandidateProfile](rankCandidatePath)
	if err != nil {
		return fmt.Errorf("failed to load candidate profile: %w", err)
	}

	var weights ranking.Weights
	if rankConfigPath != "" {
		cfg, err := config.LoadConfig(rankConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		weights = ranking.Weights{
			SkillMatch:    cfg.SkillMatchWeight,
			ExperienceFit: cfg.ExperienceFitWeight,
			Location:      cfg.LocationWeight,
			Recency:       cfg.RecencyWeight,
		}
	}

	ranked := ranking.RankJobs(jobs, candidate, candidate.Location, weights)

	if rankVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintCandidate(candidate)
		printer.PrintRankedJobs(ranked)
		printer.PrintExplanations(ranked)
	}

	output, err := json.MarshalIndent(ranked, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ranked jobs to JSON: %w", err)
	}
	output = append(output, '\n')

	if rankOutput == "" {
		_, err := os.Stdout.Write(output)
		return err
	}

	if dir := filepath.Dir(rankOutput); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(rankOutput, output, 0644); err != nil {
		return fmt.Errorf("failed to write ranked jobs to %s: %w", rankOutput, err)
	}
	return nil
}

// loadJSONFile reads and unmarshals a JSON file into T.
func loadJSONFile[T any](path string) (T, error) {
	var out T
	content, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(content, &out); err != nil {
		return out, fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return out, nil
}
