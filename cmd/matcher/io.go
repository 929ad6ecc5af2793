package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/parser"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/schemas"
)

// resumeText reads a resume file and extracts normalized text. The MIME
// type is inferred from the file extension.
func resumeText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume %s: %w", path, err)
	}

	var mimeType string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		mimeType = extract.MIMEPDF
	case ".docx":
		mimeType = extract.MIMEDocx
	case ".html", ".htm":
		mimeType = extract.MIMEHTML
	case ".txt", ".md", "":
		mimeType = extract.MIMEPlain
	default:
		return "", fmt.Errorf("unrecognized resume extension %q", filepath.Ext(path))
	}

	return extract.Text(extract.RawDocument{Data: data, MIMEType: mimeType})
}

// buildParser constructs the named parser, loading the dictionary from
// SKILL_DICTIONARY_PATH when set.
func buildParser(name string) (parser.ResumeParser, error) {
	dict, err := buildDictionary()
	if err != nil {
		return nil, err
	}

	switch name {
	case "", "entity":
		return parser.NewEntityParser(dict), nil
	case "pattern":
		return parser.NewPatternParser(dict), nil
	default:
		return nil, fmt.Errorf("unknown parser: %s", name)
	}
}

func buildDictionary() (*parser.Dictionary, error) {
	path := os.Getenv("SKILL_DICTIONARY_PATH")
	if path == "" {
		return parser.DefaultDictionary(), nil
	}
	return parser.LoadDictionary(path)
}

// loadJobRequirements reads and schema-validates a job requirements file.
func loadJobRequirements(path string) (types.JobRequirements, error) {
	var req types.JobRequirements

	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("failed to read job requirements %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemas.JobRequirements),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return req, fmt.Errorf("failed to validate job requirements %s: %w", path, err)
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			messages = append(messages, e.String())
		}
		return req, fmt.Errorf("invalid job requirements %s: %s", path, strings.Join(messages, "; "))
	}

	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("failed to parse job requirements %s: %w", path, err)
	}
	return req, nil
}

// loadJSON reads a JSON file into out.
func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
