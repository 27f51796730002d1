package alerts

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Timers wraps a TimerService with the cached-handle lifecycle and the
// bulk pause/resume behavior the dialogue needs.
type Timers struct {
	svc TimerService
}

// NewTimers wraps the given timer service.
func NewTimers(svc TimerService) *Timers {
	return &Timers{svc: svc}
}

// Count returns how many timers the user currently has.
func (t *Timers) Count(ctx context.Context, token string) (int, error) {
	list, err := t.svc.List(ctx, token)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

// Status returns the status of the given timer, or of the most recent timer
// when no handle is cached.
func (t *Timers) Status(ctx context.Context, token, cachedID string) (total int, status TimerStatus, err error) {
	list, err := t.svc.List(ctx, token)
	if err != nil {
		return 0, "", err
	}
	if cachedID == "" {
		if len(list) == 0 {
			return 0, "", nil
		}
		cachedID = list[0].ID
	}
	for _, timer := range list {
		if timer.ID == cachedID {
			return len(list), timer.Status, nil
		}
	}
	return len(list), "", fmt.Errorf("timer %s not found", cachedID)
}

// Create schedules a new announcement timer and returns its id. The service
// must report the timer as running; anything else is a failed create.
func (t *Timers) Create(ctx context.Context, token string, req TimerRequest) (string, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	timer, err := t.svc.Create(ctx, token, req)
	if err != nil {
		return "", err
	}
	if timer.Status != TimerOn {
		return "", fmt.Errorf("timer %s did not start (status %s)", timer.ID, timer.Status)
	}
	return timer.ID, nil
}

// DeleteCachedOrAll deletes the cached timer when a handle is known.
// Without a handle it falls back to deleting every timer the user has —
// a deliberate and documented recovery default, isolated here so no handler
// can trip it by accident. Returns false when there was nothing to delete.
func (t *Timers) DeleteCachedOrAll(ctx context.Context, token, cachedID string) (bool, error) {
	list, err := t.svc.List(ctx, token)
	if err != nil {
		return false, err
	}
	if len(list) == 0 {
		return false, nil
	}
	if cachedID != "" {
		if err := t.svc.Delete(ctx, token, cachedID); err != nil {
			return false, err
		}
		return true, nil
	}
	if err := t.svc.DeleteAll(ctx, token); err != nil {
		return false, err
	}
	return true, nil
}

// PauseAll pauses every running timer. Returns false when the user has no
// timers at all.
func (t *Timers) PauseAll(ctx context.Context, token string) (bool, error) {
	list, err := t.svc.List(ctx, token)
	if err != nil {
		return false, err
	}
	if len(list) == 0 {
		return false, nil
	}
	for _, timer := range list {
		if timer.Status == TimerOn {
			if err := t.svc.Pause(ctx, token, timer.ID); err != nil {
				return false, err
			}
		}
	}
	return true, nil
}

// ResumeAll resumes every paused timer. Returns false when the user has no
// timers at all.
func (t *Timers) ResumeAll(ctx context.Context, token string) (bool, error) {
	list, err := t.svc.List(ctx, token)
	if err != nil {
		return false, err
	}
	if len(list) == 0 {
		return false, nil
	}
	for _, timer := range list {
		if timer.Status == TimerPaused {
			if err := t.svc.Resume(ctx, token, timer.ID); err != nil {
				return false, err
			}
		}
	}
	return true, nil
}
