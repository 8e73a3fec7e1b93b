// Package quizfile loads quiz definitions exported by the platform. A
// definition carries the server-issued quiz id, the time limit, and the
// question set; it is validated against a JSON schema before a session is
// allowed to start, so malformed files surface as configuration errors
// instead of mid-attempt surprises.
package quizfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/campusterm/campus/internal/assessment"
)

// ErrInvalidDefinition indicates the file does not describe a usable quiz.
var ErrInvalidDefinition = errors.New("invalid quiz definition")

// Quiz is a parsed, validated quiz definition.
type Quiz struct {
	ID               string                `json:"quiz_id"`
	Title            string                `json:"title"`
	TimeLimitMinutes int                   `json:"time_limit_minutes"`
	Questions        []assessment.Question `json:"questions"`
}

// TimeLimit returns the limit as a duration.
func (q *Quiz) TimeLimit() time.Duration {
	return time.Duration(q.TimeLimitMinutes) * time.Minute
}

const schemaDef = `{
	"type": "object",
	"required": ["quiz_id", "time_limit_minutes", "questions"],
	"properties": {
		"quiz_id": {"type": "string", "minLength": 1},
		"title": {"type": "string"},
		"time_limit_minutes": {"type": "integer", "minimum": 1},
		"questions": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["text", "options"],
				"properties": {
					"text": {"type": "string", "minLength": 1},
					"options": {
						"type": "array",
						"minItems": 2,
						"items": {"type": "string"}
					}
				}
			}
		}
	}
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(schemaDef), &def); err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://quiz.json", def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile("schema://quiz.json")
	})
	return schema, schemaErr
}

// Load reads and validates the quiz definition at path.
func Load(path string) (*Quiz, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz file: %w", err)
	}
	return Parse(raw)
}

// Parse validates raw JSON against the quiz schema and decodes it.
func Parse(raw []byte) (*Quiz, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}

	s, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile quiz schema: %w", err)
	}
	if err := s.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}

	var q Quiz
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return &q, nil
}
