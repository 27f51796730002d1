package alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPClient implements ReminderService and TimerService against the
// platform's REST alerts API. Requests are authorized with the per-user
// consent token from the incoming event.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the platform alerts API.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// List implements ReminderService.
func (c *HTTPClient) List(ctx context.Context, token string) (ReminderList, error) {
	var out struct {
		TotalCount int `json:"totalCount"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/v1/alerts/reminders", nil, &out); err != nil {
		return ReminderList{}, err
	}
	return ReminderList{TotalCount: out.TotalCount}, nil
}

// Create implements ReminderService.
func (c *HTTPClient) Create(ctx context.Context, token string, req ReminderRequest) (string, error) {
	body := map[string]any{
		"requestId":       req.RequestID,
		"offsetInSeconds": int(req.DueIn.Seconds()),
		"timezone":        req.Timezone,
		"locale":          req.Locale,
		"text":            req.Text,
	}
	var out struct {
		AlertToken string `json:"alertToken"`
	}
	if err := c.do(ctx, token, http.MethodPost, "/v1/alerts/reminders", body, &out); err != nil {
		return "", err
	}
	return out.AlertToken, nil
}

// Delete implements ReminderService.
func (c *HTTPClient) Delete(ctx context.Context, token string, handle string) error {
	return c.do(ctx, token, http.MethodDelete, "/v1/alerts/reminders/"+handle, nil, nil)
}

// TimerClient implements TimerService against the platform alerts API.
type TimerClient struct {
	*HTTPClient
}

// NewTimerClient creates a timer client sharing the alerts API endpoint.
func NewTimerClient(baseURL string) *TimerClient {
	return &TimerClient{HTTPClient: NewHTTPClient(baseURL)}
}

// List implements TimerService.
func (c *TimerClient) List(ctx context.Context, token string) ([]Timer, error) {
	var out struct {
		Timers []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"timers"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/v1/alerts/timers", nil, &out); err != nil {
		return nil, err
	}
	timers := make([]Timer, 0, len(out.Timers))
	for _, t := range out.Timers {
		timers = append(timers, Timer{ID: t.ID, Status: TimerStatus(t.Status)})
	}
	return timers, nil
}

// Create implements TimerService.
func (c *TimerClient) Create(ctx context.Context, token string, req TimerRequest) (Timer, error) {
	body := map[string]any{
		"requestId": req.RequestID,
		"duration":  req.Duration,
		"locale":    req.Locale,
		"text":      req.Text,
	}
	var out struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := c.do(ctx, token, http.MethodPost, "/v1/alerts/timers", body, &out); err != nil {
		return Timer{}, err
	}
	return Timer{ID: out.ID, Status: TimerStatus(out.Status)}, nil
}

// Delete implements TimerService.
func (c *TimerClient) Delete(ctx context.Context, token string, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/v1/alerts/timers/"+id, nil, nil)
}

// DeleteAll implements TimerService.
func (c *TimerClient) DeleteAll(ctx context.Context, token string) error {
	return c.do(ctx, token, http.MethodDelete, "/v1/alerts/timers", nil, nil)
}

// Pause implements TimerService.
func (c *TimerClient) Pause(ctx context.Context, token string, id string) error {
	return c.do(ctx, token, http.MethodPost, "/v1/alerts/timers/"+id+"/pause", nil, nil)
}

// Resume implements TimerService.
func (c *TimerClient) Resume(ctx context.Context, token string, id string) error {
	return c.do(ctx, token, http.MethodPost, "/v1/alerts/timers/"+id+"/resume", nil, nil)
}

// do performs one API call and classifies the outcome into the package's
// error taxonomy before any raw fault can reach the dialogue layer.
func (c *HTTPClient) do(ctx context.Context, token, method, path string, body, out any) error {
	if token == "" {
		return ErrUnauthorized
	}

	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return ErrUnsupported
	case resp.StatusCode >= 400:
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
