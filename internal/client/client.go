package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/justsurfingit/job-board/internal/models"
)

// JobFields is the body sent on create and update. Nil link or notes is sent as null.
type JobFields struct {
	Title    string         `json:"title"`
	Company  string         `json:"company"`
	Location string         `json:"location"`
	Link     *string        `json:"link"`
	Notes    *string        `json:"notes"`
	Status   *models.Status `json:"status,omitempty"`
}

// Client talks to the job board REST API. Failed requests are never retried.
type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: 30 * time.Second})
}

func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	r := resty.NewWithClient(hc).
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetRetryCount(0)

	return &Client{http: r}
}

func (c *Client) List(ctx context.Context) ([]models.JobApplication, error) {
	jobs := []models.JobApplication{}
	if err := c.do(ctx, http.MethodGet, "/job-applications", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) Create(ctx context.Context, fields JobFields) (*models.JobApplication, error) {
	var job models.JobApplication
	if err := c.do(ctx, http.MethodPost, "/job-applications", fields, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) Update(ctx context.Context, id uint64, fields JobFields) (*models.JobApplication, error) {
	var job models.JobApplication
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/job-applications/%d", id), fields, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id uint64, status models.Status) (*models.JobApplication, error) {
	var job models.JobApplication
	body := map[string]models.Status{"status": status}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/job-applications/%d/status", id), body, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) Delete(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/job-applications/%d", id), nil, nil)
}

// SignOut asks the server to shut down and returns its acknowledgement.
func (c *Client) SignOut(ctx context.Context) (string, error) {
	var ack ErrorBody
	if err := c.do(ctx, http.MethodPost, "/sign-out", nil, &ack); err != nil {
		return "", err
	}
	return ack.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return &Error{Message: msgUnreachable, Cause: err}
	}

	if !resp.IsSuccess() {
		return newResponseError(resp)
	}

	if out == nil || resp.StatusCode() == http.StatusNoContent || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &Error{Status: resp.StatusCode(), Message: msgRequestFailed, Cause: fmt.Errorf("decode %s %s: %w", method, path, err)}
	}
	return nil
}

func newResponseError(resp *resty.Response) *Error {
	e := &Error{
		Status:  resp.StatusCode(),
		Message: msgRequestFailed,
		Cause:   fmt.Errorf("%s %s: %s", resp.Request.Method, resp.Request.URL, resp.Status()),
	}

	if !strings.Contains(resp.Header().Get("Content-Type"), "application/json") {
		return e
	}
	var body ErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return e
	}
	e.Body = &body
	if body.Message != "" {
		e.Message = body.Message
	}
	return e
}
