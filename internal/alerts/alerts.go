// Package alerts talks to the platform's reminder and timer scheduling
// services and owns the cached-handle lifecycle around them.
package alerts

import (
	"context"
	"errors"
	"time"
)

// Classified service errors. Anything else is treated as transient.
var (
	// ErrUnauthorized means the user has not granted the required consent.
	ErrUnauthorized = errors.New("alerts: unauthorized")
	// ErrUnsupported means the current device cannot manage this alert type.
	ErrUnsupported = errors.New("alerts: unsupported on this device")
)

// ReminderRequest describes a reminder to schedule.
type ReminderRequest struct {
	// RequestID is a client-side reference id for the create call.
	RequestID string
	// DueIn is the delay until the reminder fires.
	DueIn time.Duration
	// Timezone is the IANA zone the schedule is expressed in.
	Timezone string
	// Locale and Text drive the spoken announcement.
	Locale string
	Text   string
}

// ReminderList is the summary returned by listing reminders.
type ReminderList struct {
	TotalCount int
}

// ReminderService is the external reminder scheduling API.
type ReminderService interface {
	List(ctx context.Context, token string) (ReminderList, error)
	// Create schedules a reminder and returns its handle.
	Create(ctx context.Context, token string, req ReminderRequest) (string, error)
	Delete(ctx context.Context, token string, handle string) error
}

// TimerStatus is the scheduling state of a timer.
type TimerStatus string

const (
	TimerOn     TimerStatus = "ON"
	TimerPaused TimerStatus = "PAUSED"
	TimerOff    TimerStatus = "OFF"
)

// Timer is one scheduled timer as reported by the timer service.
type Timer struct {
	ID     string
	Status TimerStatus
}

// TimerRequest describes an announcement timer to create.
type TimerRequest struct {
	// RequestID is a client-side reference id for the create call.
	RequestID string
	// Duration is the ISO-8601 duration slot value, passed through verbatim.
	Duration string
	// Locale and Text drive the announcement when the timer fires.
	Locale string
	Text   string
}

// TimerService is the external timer scheduling API. DeleteAll is a separate
// operation so the delete-everything fallback can never be triggered by a
// handle-typed call.
type TimerService interface {
	List(ctx context.Context, token string) ([]Timer, error)
	Create(ctx context.Context, token string, req TimerRequest) (Timer, error)
	Delete(ctx context.Context, token string, id string) error
	DeleteAll(ctx context.Context, token string) error
	Pause(ctx context.Context, token string, id string) error
	Resume(ctx context.Context, token string, id string) error
}
