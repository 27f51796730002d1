package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPClient implements Service against the platform's customer profile API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the platform profile API.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// GivenName implements Service.
func (c *HTTPClient) GivenName(ctx context.Context, token string) (string, error) {
	var name string
	if err := c.get(ctx, token, "/v2/accounts/~current/settings/Profile.givenName", &name); err != nil {
		return "", err
	}
	if name == "" {
		return "", ErrNotSet
	}
	return name, nil
}

// Email implements Service.
func (c *HTTPClient) Email(ctx context.Context, token string) (string, error) {
	var email string
	if err := c.get(ctx, token, "/v2/accounts/~current/settings/Profile.email", &email); err != nil {
		return "", err
	}
	if email == "" {
		return "", ErrNotSet
	}
	return email, nil
}

// MobileNumber implements Service.
func (c *HTTPClient) MobileNumber(ctx context.Context, token string) (Number, error) {
	var out struct {
		CountryCode string `json:"countryCode"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.get(ctx, token, "/v2/accounts/~current/settings/Profile.mobileNumber", &out); err != nil {
		return Number{}, err
	}
	if out.PhoneNumber == "" {
		return Number{}, ErrNotSet
	}
	return Number{CountryCode: out.CountryCode, National: out.PhoneNumber}, nil
}

// Timezone implements Service. No user consent is required, but the device
// may simply not have a timezone configured.
func (c *HTTPClient) Timezone(ctx context.Context, deviceID string) (string, error) {
	var tz string
	path := "/v2/devices/" + deviceID + "/settings/System.timeZone"
	if err := c.get(ctx, "", path, &tz); err != nil {
		return "", err
	}
	if tz == "" {
		return "", ErrNotSet
	}
	return tz, nil
}

// Address implements Service.
func (c *HTTPClient) Address(ctx context.Context, token, deviceID string) (Address, error) {
	var out struct {
		AddressLine1  string `json:"addressLine1"`
		StateOrRegion string `json:"stateOrRegion"`
		PostalCode    string `json:"postalCode"`
	}
	path := "/v1/devices/" + deviceID + "/settings/address"
	if err := c.get(ctx, token, path, &out); err != nil {
		return Address{}, err
	}
	if out.AddressLine1 == "" && out.StateOrRegion == "" {
		return Address{}, ErrNotSet
	}
	return Address{Line1: out.AddressLine1, Region: out.StateOrRegion, PostalCode: out.PostalCode}, nil
}

func (c *HTTPClient) get(ctx context.Context, token, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNoContent:
		return ErrNotSet
	case resp.StatusCode >= 400:
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
