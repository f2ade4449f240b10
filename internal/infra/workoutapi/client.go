package workoutapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aalvaropc/workoutlog/internal/domain"
	"github.com/aalvaropc/workoutlog/internal/infra/httpclient"
	"github.com/aalvaropc/workoutlog/internal/ports"
)

const (
	defaultAddPath     = "/api/add"
	defaultSuccessPath = "$.success"

	// maxResponseBytes bounds the add response kept for the success lookup.
	maxResponseBytes = 4 << 20
)

// Client adds workouts through the backend's JSON API.
type Client struct {
	exec        *httpclient.Executor
	baseURL     string
	addPath     string
	successPath string
	newID       func() string
	log         *slog.Logger
}

type Option func(*Client)

func WithExecutor(e *httpclient.Executor) Option {
	return func(c *Client) { c.exec = e }
}

func WithAddPath(p string) Option {
	return func(c *Client) {
		if p != "" {
			c.addPath = p
		}
	}
}

// WithSuccessPath sets the JSONPath expression that locates the success flag.
func WithSuccessPath(expr string) Option {
	return func(c *Client) {
		if expr != "" {
			c.successPath = expr
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithRequestIDs replaces the request id generator.
func WithRequestIDs(gen func() string) Option {
	return func(c *Client) {
		if gen != nil {
			c.newID = gen
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		exec:        httpclient.NewExecutor(httpclient.WithMaxBodyBytes(maxResponseBytes)),
		baseURL:     baseURL,
		addPath:     defaultAddPath,
		successPath: defaultSuccessPath,
		newID:       uuid.NewString,
		log:         slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig wires a Client from workoutlog.yaml settings.
func NewFromConfig(cfg domain.Config, log *slog.Logger) *Client {
	hc := httpclient.DefaultConfig()
	hc.Timeout = cfg.HTTP.Timeout

	return New(cfg.Server.BaseURL,
		WithExecutor(httpclient.NewExecutor(
			httpclient.WithClient(httpclient.New(hc)),
			httpclient.WithTimeout(cfg.HTTP.Timeout),
			httpclient.WithMaxBodyBytes(maxResponseBytes),
		)),
		WithAddPath(cfg.Server.AddPath),
		WithSuccessPath(cfg.Response.SuccessPath),
		WithLogger(log),
	)
}

var _ ports.WorkoutAPI = (*Client)(nil)

// AddWorkout posts entry. Network errors, unreadable responses and non-2xx statuses are
// returned as KindTransport errors; a 2xx body reporting success=false sets Rejected.
// A body over the size limit is not inspected and counts as success with Truncated set.
func (c *Client) AddWorkout(ctx context.Context, entry domain.WorkoutEntry) (ports.AddResult, error) {
	id := c.newID()

	req, err := httpclient.BuildAddRequest(ctx, c.baseURL, c.addPath, entry, id)
	if err != nil {
		return ports.AddResult{RequestID: id}, err
	}

	c.log.Debug("workoutapi.add.request",
		"request_id", id,
		"url", req.URL.String(),
		"workout", entry.Workout,
		"weight", entry.Weight,
	)

	resp, err := c.exec.Do(ctx, req)
	result := ports.AddResult{
		StatusCode: resp.Status,
		RequestID:  id,
		LatencyMS:  resp.Duration.Milliseconds(),
	}
	if err != nil {
		return result, &domain.OpError{
			Op:   "workoutapi.add",
			Kind: domain.KindTransport,
			Err:  fmt.Errorf("%w: %w", domain.ErrTransport, err),
		}
	}

	if resp.Status < 200 || resp.Status > 299 {
		return result, &domain.OpError{
			Op:   "workoutapi.add",
			Kind: domain.KindTransport,
			Err:  fmt.Errorf("%w: unexpected status %d", domain.ErrTransport, resp.Status),
		}
	}

	if resp.Truncated {
		// The flag cannot be read from a partial document.
		result.Truncated = true
		c.log.Warn("workoutapi.add.truncated",
			"request_id", id,
			"status", resp.Status,
			"kept_bytes", len(resp.BodyBytes),
			"success_path", c.successPath,
		)
		return result, nil
	}

	result.Rejected = reportsFailure(resp.BodyBytes, c.successPath)
	return result, nil
}
