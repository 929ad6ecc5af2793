package main

import (
	"github.com/spf13/cobra"
)

var parseParser string

var parseCmd = &cobra.Command{
	Use:   "parse <resume-file>",
	Short: "Parse a resume file into a structured profile",
	Long: "Extracts text from a resume (PDF, DOCX, HTML or plain text) and parses it\n" +
		"into a structured profile, printed as JSON on stdout.",
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseParser, "parser", "entity", "parser to use (entity or pattern)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	p, err := buildParser(parseParser)
	if err != nil {
		return err
	}

	text, err := resumeText(args[0])
	if err != nil {
		return err
	}

	profile, err := p.Parse(text)
	if err != nil {
		return err
	}
	return printJSON(profile)
}
