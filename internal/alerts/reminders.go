package alerts

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Reminders wraps a ReminderService with the at-most-one-live-handle
// lifecycle: creating a reminder supersedes the previously cached one.
type Reminders struct {
	svc ReminderService
}

// NewReminders wraps the given reminder service.
func NewReminders(svc ReminderService) *Reminders {
	return &Reminders{svc: svc}
}

// Supersede deletes the previously cached reminder handle (when one exists
// and the service still reports reminders) and creates a new reminder,
// returning its handle. A failed delete is logged and swallowed: an expired
// or already-removed reminder is an expected race, and the new reminder must
// be created either way.
func (r *Reminders) Supersede(ctx context.Context, token, prevHandle string, req ReminderRequest) (string, error) {
	list, err := r.svc.List(ctx, token)
	if err != nil {
		return "", err
	}

	if prevHandle != "" && list.TotalCount > 0 {
		if err := r.svc.Delete(ctx, token, prevHandle); err != nil {
			slog.Warn("failed to delete previous reminder", "handle", prevHandle, "error", err)
		} else {
			slog.Info("deleted previous reminder", "handle", prevHandle)
		}
	}

	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	handle, err := r.svc.Create(ctx, token, req)
	if err != nil {
		return "", err
	}
	slog.Info("reminder created", "handle", handle)
	return handle, nil
}
