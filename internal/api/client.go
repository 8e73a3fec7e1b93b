// Package api is the HTTP boundary to the learning platform. It owns the
// wire shapes of the collaborator endpoints and converts every failure mode
// into a typed error; callers never see a raw transport fault.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// maxErrorBody caps how much of an error response is kept for messages.
const maxErrorBody = 512

// Discussion is a course discussion thread as served by the platform.
type Discussion struct {
	ID        json.Number `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Author    string      `json:"author"`
	CreatedAt string      `json:"created_at"`
	Replies   []Reply     `json:"replies"`
}

// Reply is a single reply within a discussion thread.
type Reply struct {
	ID        json.Number `json:"id"`
	Content   string      `json:"content"`
	Author    string      `json:"author"`
	CreatedAt string      `json:"created_at"`
}

// Client talks to one platform server. Safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewClient creates a client for the server at baseURL. token may be empty
// for servers that rely on ambient session auth.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
}

// SubmitQuiz sends the finalized answers for a quiz attempt and returns the
// server-issued attempt identifier.
func (c *Client) SubmitQuiz(ctx context.Context, quizID string, answers map[int]int) (string, error) {
	body := struct {
		QuizID  string      `json:"quiz_id"`
		Answers map[int]int `json:"answers"`
	}{QuizID: quizID, Answers: answers}

	var resp struct {
		AttemptID json.Number `json:"attempt_id"`
	}
	if err := c.postJSON(ctx, "/submit_quiz", body, &resp); err != nil {
		return "", err
	}
	return resp.AttemptID.String(), nil
}

// CompleteLesson reports the watch time for a lesson and requests its
// completion record.
func (c *Client) CompleteLesson(ctx context.Context, lessonID string, minutes int) error {
	body := struct {
		TimeSpentMinutes int `json:"time_spent_minutes"`
	}{TimeSpentMinutes: minutes}

	var resp struct {
		Success bool `json:"success"`
	}
	path := "/complete_lesson/" + url.PathEscape(lessonID)
	if err := c.postJSON(ctx, path, body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &StatusError{Code: http.StatusOK, Body: "server rejected completion"}
	}
	return nil
}

// Enroll requests enrollment in a course.
func (c *Client) Enroll(ctx context.Context, courseID string) error {
	return c.postJSON(ctx, "/enroll/"+url.PathEscape(courseID), struct{}{}, nil)
}

// ListDiscussions fetches the discussion threads for a course.
func (c *Client) ListDiscussions(ctx context.Context, courseID string) ([]Discussion, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/discussions/"+url.PathEscape(courseID), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	var out []Discussion
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PostDiscussion creates a new discussion thread in a course.
func (c *Client) PostDiscussion(ctx context.Context, courseID, title, content string) error {
	body := struct {
		CourseID string `json:"course_id"`
		Title    string `json:"title"`
		Content  string `json:"content"`
	}{CourseID: courseID, Title: title, Content: content}

	return c.postJSON(ctx, "/api/discussions", body, nil)
}

// postJSON sends body as JSON to path and decodes the response into out
// when out is non-nil.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// do executes the request and maps every failure to a typed error.
func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
