package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitQuiz(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/submit_quiz", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"attempt_id": 42}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	attemptID, err := c.SubmitQuiz(context.Background(), "quiz-7", map[int]int{0: 1})
	require.NoError(t, err)
	assert.Equal(t, "42", attemptID)
	assert.Equal(t, "quiz-7", gotBody["quiz_id"])
	assert.Equal(t, map[string]any{"0": float64(1)}, gotBody["answers"])
}

func TestCompleteLesson(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{"success", http.StatusOK, `{"success": true}`, false},
		{"rejected", http.StatusOK, `{"success": false}`, true},
		{"server error", http.StatusInternalServerError, `boom`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/complete_lesson/lesson-3", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := NewClient(srv.URL, "").CompleteLesson(context.Background(), "lesson-3", 12)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestEnroll_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("enrollment pending approval"))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "").Enroll(context.Background(), "course-1")
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusForbidden, se.Code)
	assert.Contains(t, se.Body, "pending approval")
}

func TestListDiscussions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/discussions/course-9", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id": 1, "title": "Welcome", "content": "hi", "author": "ana",
			 "created_at": "2025-06-01 09:00:00",
			 "replies": [{"id": 5, "content": "hello", "author": "bo", "created_at": "2025-06-01 09:05:00"}]}
		]`))
	}))
	defer srv.Close()

	ds, err := NewClient(srv.URL, "").ListDiscussions(context.Background(), "course-9")
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, "Welcome", ds[0].Title)
	require.Len(t, ds[0].Replies, 1)
	assert.Equal(t, "bo", ds[0].Replies[0].Author)
}

func TestPostDiscussion(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/discussions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "").PostDiscussion(context.Background(), "course-9", "Q", "body")
	require.NoError(t, err)
	assert.Equal(t, "course-9", gotBody["course_id"])
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	err := NewClient(srv.URL, "").Enroll(context.Background(), "c")
	require.Error(t, err)

	var te *TransportError
	assert.ErrorAs(t, err, &te)
}

func TestDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").SubmitQuiz(context.Background(), "q", nil)
	require.Error(t, err)

	var de *DecodeError
	assert.ErrorAs(t, err, &de)
}
