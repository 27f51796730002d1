// Package profile reads user and device profile data from the platform's
// customer profile API.
package profile

import (
	"context"
	"errors"
)

// ErrUnauthorized means the user has not granted the permission the lookup
// requires. Callers answer it with a permissions-consent directive.
var ErrUnauthorized = errors.New("profile: unauthorized")

// ErrNotSet means the lookup succeeded but the user never provided a value.
var ErrNotSet = errors.New("profile: value not set")

// Number is a mobile number with its country prefix.
type Number struct {
	CountryCode string
	National    string
}

// Address is the device's configured street address.
type Address struct {
	Line1      string
	Region     string
	PostalCode string
}

// String renders the address the way it is spoken.
func (a Address) String() string {
	return a.Line1 + ", " + a.Region + ", " + a.PostalCode
}

// Service is the external customer-profile API. GivenName, Email and
// MobileNumber require user consent; Timezone does not. All lookups are
// best-effort from the dialogue's point of view.
type Service interface {
	GivenName(ctx context.Context, token string) (string, error)
	Email(ctx context.Context, token string) (string, error)
	MobileNumber(ctx context.Context, token string) (Number, error)
	Timezone(ctx context.Context, deviceID string) (string, error)
	Address(ctx context.Context, token, deviceID string) (Address, error)
}
