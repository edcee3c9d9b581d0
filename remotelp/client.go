// File: client.go
// Role: submit/poll/parse against a remote LP/NLP optimization service,
// per spec.md §6.
package remotelp

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Client talks to a remote optimization service over HTTP.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Config  Config
}

// New returns a Client against baseURL with the given Config (zero value
// uses the spec's default 1s poll / 50s timeout).
func New(baseURL string, cfg Config) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{},
		Config:  cfg.normalize(),
	}
}

// Solve submits job and polls until the remote service reports
// completion, the configured timeout elapses (returning Killed), or ctx
// is cancelled.
func (c *Client) Solve(ctx context.Context, job Job) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Config.Timeout)
	defer cancel()

	jobID, err := c.submit(ctx, job)
	if err != nil {
		return Result{Status: ConnectionError}, ErrConnection
	}
	log.Debug().Str("job_id", jobID).Msg("remotelp: job submitted")

	ticker := time.NewTicker(c.Config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return Result{Status: Killed}, nil
		case <-ticker.C:
			res, done, err := c.poll(ctx, jobID)
			if err != nil {
				return Result{Status: ConnectionError}, ErrConnection
			}
			if done {
				return res, nil
			}
		}
	}
}

func (c *Client) submit(ctx context.Context, job Job) (string, error) {
	payload, err := xml.Marshal(job)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/submit", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/xml")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("remotelp: submit returned %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(body)), nil
}

func (c *Client) poll(ctx context.Context, jobID string) (Result, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/status/"+jobID, nil)
	if err != nil {
		return Result{}, false, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Result{}, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusAccepted {
		return Result{}, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return Result{}, false, fmt.Errorf("remotelp: poll returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, false, err
	}
	obj, err := parseObjective(string(body))
	if err != nil {
		return Result{}, false, err
	}
	return Result{Status: Success, Objective: obj}, true, nil
}

var objectiveLine = regexp.MustCompile(`Objective\s+([-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?)`)

// parseObjective extracts the float from a "\nObjective <float>\n" line
// in the final result body (spec.md §6).
func parseObjective(body string) (float64, error) {
	m := objectiveLine.FindStringSubmatch(body)
	if m == nil {
		return 0, ErrNoObjective
	}
	return strconv.ParseFloat(m[1], 64)
}
