// Package schemas embeds the JSON Schemas used to validate external inputs:
// skill dictionary files and job requirements documents.
package schemas

import _ "embed"

// SkillDictionary validates skill dictionary JSON files.
//
//go:embed skill_dictionary.schema.json
var SkillDictionary string

// JobRequirements validates job requirements JSON documents.
//
//go:embed job_requirements.schema.json
var JobRequirements string
