package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atlasai/atlas-backend/internal/scamshield"
)

var verifyJobCmd = &cobra.Command{
	Use:   "verify-job",
	Short: "Analyze a job posting JSON file for scam signals",
	Long:  "Run the trust analysis on a job posting (or an array of postings) read from a JSON file and print the report.",
	RunE:  runVerifyJob,
}

var verifyInputFile string

func init() {
	verifyJobCmd.Flags().StringVarP(&verifyInputFile, "in", "i", "", "Path to posting JSON file (required)")
	_ = verifyJobCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(verifyJobCmd)
}

func runVerifyJob(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(verifyInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var out any
	var postings []scamshield.Posting
	if err := json.Unmarshal(content, &postings); err == nil {
		reports, err := scamshield.AnalyzeBatch(context.Background(), postings)
		if err != nil {
			return fmt.Errorf("failed to analyze postings: %w", err)
		}
		out = reports
	} else {
		var posting scamshield.Posting
		if err := json.Unmarshal(content, &posting); err != nil {
			return fmt.Errorf("failed to parse posting JSON: %w", err)
		}
		out = scamshield.Analyze(posting)
	}

	jsonBytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
