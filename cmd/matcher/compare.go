package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/parser"
	"github.com/jonathan/resume-matcher/internal/types"
)

var compareCmd = &cobra.Command{
	Use:   "compare <resume-file>...",
	Short: "Run both parsers against resumes and report the winner",
	Long: "Runs the entity and pattern parsers against each resume and prints a\n" +
		"per-metric comparison report. With multiple resumes the reports are\n" +
		"aggregated into one.",
	Args: cobra.MinimumNArgs(1),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	dict, err := buildDictionary()
	if err != nil {
		return err
	}
	parserA := parser.NewEntityParser(dict)
	parserB := parser.NewPatternParser(dict)

	reports := make([]*types.ComparisonReport, 0, len(args))
	for _, path := range args {
		text, err := resumeText(path)
		if err != nil {
			return err
		}
		report, err := parser.RunComparison(parserA, parserB, text)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	if len(reports) == 1 {
		return printJSON(reports[0])
	}
	return printJSON(parser.AggregateReports(reports))
}
