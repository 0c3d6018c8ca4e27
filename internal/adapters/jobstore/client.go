// Package jobstore provides the HTTP client for the remote job store, a mock
// REST API that owns all durable job and reputation records.
package jobstore

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

	apperrors "github.com/suilance/suilance-ui-api/internal/errors"
	"github.com/suilance/suilance-ui-api/internal/domain/model"
)

const defaultTimeout = 10 * time.Second

// ClientOptions groups configuration for the job store client.
type ClientOptions struct {
	// BaseURL is the root of the store API (e.g. "https://mock-api.example.com").
	BaseURL string
	// Timeout bounds each request. Defaults to 10s when zero.
	Timeout time.Duration
	// HTTPClient overrides the underlying client, mainly for tests.
	HTTPClient *http.Client
}

// Client talks to the remote job store. It implements core.JobStore and
// core.ReputationStore.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a job store client.
func NewClient(opts ClientOptions) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("job store base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid job store base URL: %w", err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{baseURL: base, http: httpClient}, nil
}

// List returns all job records.
func (c *Client) List(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	if err := c.do(ctx, http.MethodGet, "/jobs", nil, &jobs); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// Create posts a new job record. The store assigns the record ID.
func (c *Client) Create(ctx context.Context, job model.Job) (*model.Job, error) {
	var created model.Job
	if err := c.do(ctx, http.MethodPost, "/jobs", job, &created); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return &created, nil
}

// Update applies a partial update to the job record with the given store ID.
// Only the fields set on upd are sent; the store merges them.
func (c *Client) Update(ctx context.Context, id string, upd model.JobUpdate) (*model.Job, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.Validation("job id is required")
	}
	var updated model.Job
	if err := c.do(ctx, http.MethodPut, "/jobs/"+url.PathEscape(id), upd, &updated); err != nil {
		return nil, fmt.Errorf("update job %s: %w", id, err)
	}
	return &updated, nil
}

// ListReputations returns all reputation records.
func (c *Client) ListReputations(ctx context.Context) ([]model.ReputationRecord, error) {
	var recs []model.ReputationRecord
	if err := c.do(ctx, http.MethodGet, "/reputations", nil, &recs); err != nil {
		return nil, fmt.Errorf("list reputations: %w", err)
	}
	return recs, nil
}

// CreateReputation posts a new reputation record.
func (c *Client) CreateReputation(ctx context.Context, rec model.ReputationRecord) (*model.ReputationRecord, error) {
	var created model.ReputationRecord
	if err := c.do(ctx, http.MethodPost, "/reputations", rec, &created); err != nil {
		return nil, fmt.Errorf("create reputation: %w", err)
	}
	return &created, nil
}

// do performs one request against the store, encoding body as JSON when
// non-nil and decoding a 2xx response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "job store request %s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.NotFoundf("job store: %s not found", path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return apperrors.Upstreamf("job store %s %s: status %d: %s",
			method, path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "decode job store response for %s", path)
	}
	return nil
}

// Reputations returns a view of the client scoped to reputation records.
func (c *Client) Reputations() *ReputationClient {
	return &ReputationClient{c: c}
}

// ReputationClient exposes the reputation subset of the store API as its own
// value so it can satisfy core.ReputationStore.
type ReputationClient struct {
	c *Client
}

// List returns all reputation records.
func (r *ReputationClient) List(ctx context.Context) ([]model.ReputationRecord, error) {
	return r.c.ListReputations(ctx)
}

// Create posts a new reputation record.
func (r *ReputationClient) Create(ctx context.Context, rec model.ReputationRecord) (*model.ReputationRecord, error) {
	return r.c.CreateReputation(ctx, rec)
}
