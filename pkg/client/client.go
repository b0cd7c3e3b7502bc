// Package client is a typed API client for the job tracker. It keeps the
// authenticated session (token + profile) in a local file, attaches the
// bearer token to every request, and treats a 401 as a forced logout.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrLoggedOut is returned when the server rejects the stored token.
	// The local session has already been cleared when this surfaces.
	ErrLoggedOut = errors.New("session expired, log in again")

	// ErrAPI wraps any non-2xx response that is not an auth failure.
	ErrAPI = errors.New("api error")
)

// User mirrors the public profile fields the API serves.
type User struct {
	ID     uint     `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Skills []string `json:"skills"`
}

// Job mirrors a job application record.
type Job struct {
	ID          uint      `json:"id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	AppliedDate time.Time `json:"applied_date"`
	Notes       string    `json:"notes"`
}

// JobFields is the payload for creating or updating a job.
type JobFields struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	AppliedDate string `json:"applied_date"`
	Notes       string `json:"notes,omitempty"`
}

// Analysis mirrors a persisted resume analysis.
type Analysis struct {
	ID            uint     `json:"id"`
	JobID         uint     `json:"job_id"`
	MatchScore    float64  `json:"match_score"`
	MissingSkills []string `json:"missing_skills"`
	Suggestions   []string `json:"suggestions"`
}

type Client struct {
	baseURL string
	http    *http.Client
	store   *SessionStore
	session *Session
}

// New builds a client rooted at baseURL, restoring any session previously
// saved at sessionPath.
func New(baseURL, sessionPath string) (*Client, error) {
	store := NewSessionStore(sessionPath)
	session, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
		session: session,
	}, nil
}

// LoggedIn reports whether a session is present locally. The token may
// still have expired server-side; any call will surface that as ErrLoggedOut.
func (c *Client) LoggedIn() bool {
	return c.session != nil && c.session.Token != ""
}

// Register creates an account and stores the resulting session.
func (c *Client) Register(ctx context.Context, name, email, password string, skills []string) (*User, error) {
	body := map[string]any{"name": name, "email": email, "password": password, "skills": skills}
	return c.authenticate(ctx, "/api/auth/register", body)
}

// Login authenticates and stores the resulting session.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]any{"email": email, "password": password}
	return c.authenticate(ctx, "/api/auth/login", body)
}

// Logout discards the local session. The token itself stays valid until it
// expires; the server keeps no revocation state.
func (c *Client) Logout() error {
	c.session = nil
	return c.store.Clear()
}

// Me fetches the authenticated profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListJobs returns the caller's job applications.
func (c *Client) ListJobs(ctx context.Context) ([]Job, error) {
	var jobs []Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// CreateJob adds a job application.
func (c *Client) CreateJob(ctx context.Context, fields JobFields) (*Job, error) {
	var job Job
	if err := c.do(ctx, http.MethodPost, "/api/jobs", fields, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob overwrites a job application.
func (c *Client) UpdateJob(ctx context.Context, id uint, fields JobFields) (*Job, error) {
	var job Job
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/jobs/%d", id), fields, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob removes a job application.
func (c *Client) DeleteJob(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/jobs/%d", id), nil, nil)
}

// AnalyzeResume requests an AI analysis of resume against jobDescription
// for the given job.
func (c *Client) AnalyzeResume(ctx context.Context, jobID uint, resume, jobDescription string) (*Analysis, error) {
	body := map[string]string{"resume": resume, "jobDescription": jobDescription}
	var analysis Analysis
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/ai/analyze-resume/%d", jobID), body, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// GenerateQuestions requests interview questions for a role.
func (c *Client) GenerateQuestions(ctx context.Context, jobRole string) ([]string, error) {
	body := map[string]string{"jobRole": jobRole}
	var questions []string
	if err := c.do(ctx, http.MethodPost, "/api/ai/generate-questions", body, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// StatusCounts reduces a job list to per-status totals for chart display.
// Aggregation happens here, not on the server.
func StatusCounts(jobs []Job) map[string]int {
	counts := make(map[string]int, 4)
	for _, job := range jobs {
		counts[job.Status]++
	}
	return counts
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (*User, error) {
	var resp struct {
		User
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}

	c.session = &Session{Token: resp.Token, User: resp.User}
	if err := c.store.Save(c.session); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.session != nil && c.session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Force logout: the stored token is no longer accepted.
		c.session = nil
		_ = c.store.Clear()
		return ErrLoggedOut
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = resp.Status
		}
		return fmt.Errorf("%w: %s", ErrAPI, apiErr.Error)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
