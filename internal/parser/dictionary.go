package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-matcher/schemas"
)

// skillVariants maps common skill name variants to canonical names so that
// "golang" and "Go" land on the same dictionary entry.
var skillVariants = map[string]string{
	"golang":              "Go",
	"js":                  "JavaScript",
	"node":                "Node.js",
	"nodejs":              "Node.js",
	"node.js":             "Node.js",
	"reactjs":             "React",
	"react.js":            "React",
	"ts":                  "TypeScript",
	"k8s":                 "Kubernetes",
	"postgres":            "PostgreSQL",
	"ml":                  "Machine Learning",
	"ci/cd":               "CI/CD",
	"amazon web services": "AWS",
}

// defaultSkills is the curated built-in skill list used when no dictionary
// file is configured.
var defaultSkills = []string{
	"Python", "JavaScript", "TypeScript", "Java", "C++", "C#", "Go", "Ruby",
	"Rust", "PHP", "Swift", "Kotlin", "SQL", "R", "Scala", "MATLAB",
	"React", "Vue", "Angular", "Django", "FastAPI", "Flask", "Express",
	"Spring", "Ruby on Rails", "Laravel", "Node.js",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "Cassandra",
	"DynamoDB", "SQLite", "Oracle",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP", "Git", "Jenkins",
	"Terraform", "Ansible", "CI/CD", "Linux", "Kafka", "RabbitMQ", "GraphQL",
	"gRPC", "REST",
	"Machine Learning", "Data Science", "Deep Learning", "NLP",
	"Leadership", "Communication", "Project Management", "Agile", "Scrum",
}

// dictEntry is one matchable name (canonical or variant) in the dictionary.
type dictEntry struct {
	variant string // lowercased matchable text
	name    string // canonical skill name
	re      *regexp.Regexp
}

// Dictionary holds the curated skill list both parsers cross-reference,
// with precompiled word-boundary patterns for precise matching.
type Dictionary struct {
	skills    []string
	canonical map[string]string // lowercased name or variant -> canonical name
	entries   []dictEntry
}

// dictionaryFile is the on-disk JSON shape of a skill dictionary.
type dictionaryFile struct {
	Skills []string `json:"skills"`
}

// NewDictionary builds a dictionary from a skill list. Duplicate and empty
// entries are dropped; order is not significant.
func NewDictionary(skills []string) *Dictionary {
	d := &Dictionary{
		canonical: make(map[string]string, len(skills)+len(skillVariants)),
	}

	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		lower := strings.ToLower(s)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		d.skills = append(d.skills, s)
		d.canonical[lower] = s
		d.entries = append(d.entries, dictEntry{variant: lower, name: s, re: wordBoundaryPattern(lower)})
	}

	// Variants resolve only when their canonical name is itself listed.
	for variant, canon := range skillVariants {
		if _, ok := d.canonical[strings.ToLower(canon)]; ok {
			if _, taken := d.canonical[variant]; !taken {
				d.canonical[variant] = canon
				d.entries = append(d.entries, dictEntry{variant: variant, name: canon, re: wordBoundaryPattern(variant)})
			}
		}
	}

	return d
}

// DefaultDictionary returns the built-in curated skill dictionary.
func DefaultDictionary() *Dictionary {
	return NewDictionary(defaultSkills)
}

// LoadDictionary reads a skill dictionary from a JSON file, validating it
// against the dictionary schema first.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemas.SkillDictionary),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate dictionary file %s: %w", path, err)
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			messages = append(messages, e.String())
		}
		return nil, fmt.Errorf("invalid dictionary file %s: %s", path, strings.Join(messages, "; "))
	}

	var file dictionaryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary file %s: %w", path, err)
	}

	return NewDictionary(file.Skills), nil
}

// Skills returns the canonical skill names in the dictionary.
func (d *Dictionary) Skills() []string {
	out := make([]string, len(d.skills))
	copy(out, d.skills)
	return out
}

// MatchBounded returns dictionary skills present in the text using
// word-boundary anchored matching: "java" does not match inside
// "javascript" unless explicitly listed. Results are sorted and
// deduplicated.
func (d *Dictionary) MatchBounded(text string) []string {
	found := make(map[string]bool)
	for _, e := range d.entries {
		if e.re.MatchString(text) {
			found[e.name] = true
		}
	}
	return sortedKeys(found)
}

// MatchSubstring returns dictionary skills whose name or variant appears
// anywhere in the text, case-insensitively. Higher recall than
// MatchBounded at the cost of partial-word false positives. Names shorter
// than four characters ("Go", "R", "C#") still anchor to token boundaries;
// plain substring matching on those would hit on nearly every resume.
func (d *Dictionary) MatchSubstring(text string) []string {
	lower := strings.ToLower(text)
	found := make(map[string]bool)
	for _, e := range d.entries {
		if len(e.variant) < 4 {
			if e.re.MatchString(text) {
				found[e.name] = true
			}
			continue
		}
		if strings.Contains(lower, e.variant) {
			found[e.name] = true
		}
	}
	return sortedKeys(found)
}

// Canonical resolves a raw skill span to its canonical dictionary name.
// Unknown skills are returned trimmed but otherwise untouched.
func (d *Dictionary) Canonical(skill string) string {
	trimmed := strings.TrimSpace(skill)
	if canon, ok := d.canonical[strings.ToLower(trimmed)]; ok {
		return canon
	}
	return trimmed
}

// wordBoundaryPattern compiles a case-insensitive pattern that matches the
// skill only as a whole token. The boundary classes admit +, # and . so
// names like "C++", "C#" and "Node.js" anchor correctly.
func wordBoundaryPattern(skill string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(skill)
	return regexp.MustCompile(`(?i)(?:^|[^a-z0-9+#.])` + escaped + `(?:$|[^a-z0-9+#.])`)
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
