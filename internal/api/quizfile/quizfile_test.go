package quizfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validQuiz = `{
	"quiz_id": "quiz-7",
	"title": "Module 3 check",
	"time_limit_minutes": 10,
	"questions": [
		{"text": "First?", "options": ["yes", "no"]},
		{"text": "Second?", "options": ["a", "b", "c"]}
	]
}`

func TestParse_Valid(t *testing.T) {
	q, err := Parse([]byte(validQuiz))
	require.NoError(t, err)
	assert.Equal(t, "quiz-7", q.ID)
	assert.Equal(t, 10*time.Minute, q.TimeLimit())
	require.Len(t, q.Questions, 2)
	assert.Equal(t, []string{"a", "b", "c"}, q.Questions[1].Options)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing quiz_id", `{"time_limit_minutes": 5, "questions": [{"text": "q", "options": ["a","b"]}]}`},
		{"zero limit", `{"quiz_id": "q", "time_limit_minutes": 0, "questions": [{"text": "q", "options": ["a","b"]}]}`},
		{"no questions", `{"quiz_id": "q", "time_limit_minutes": 5, "questions": []}`},
		{"single option", `{"quiz_id": "q", "time_limit_minutes": 5, "questions": [{"text": "q", "options": ["a"]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDefinition)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.json")
	require.NoError(t, os.WriteFile(path, []byte(validQuiz), 0o600))

	q, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "quiz-7", q.ID)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
