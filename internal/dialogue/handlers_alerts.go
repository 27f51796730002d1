package dialogue

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mfalcone/memoria/internal/alerts"
	"github.com/mfalcone/memoria/internal/domain"
	"github.com/mfalcone/memoria/internal/texts"
)

// handleRemindBirthday schedules the birthday reminder, superseding a
// previously cached one. Missing consent answers with a permissions card;
// devices without reminder support get a dedicated message instead of a
// generic failure.
func (c *Controller) handleRemindBirthday(ctx context.Context, ev domain.Event, state *domain.SessionState) domain.Response {
	if !ev.Intent.Confirmed() {
		return c.say(c.tr.T(texts.Cancel) + c.tr.T(texts.PostSayHelp))
	}

	decision := DecideNext(state, FieldTimezone)
	switch {
	case decision.Delegate != domain.KindUnknown:
		return c.delegateMissing(decision.Delegate)
	case decision.Unavailable:
		return domain.Response{Speech: c.tr.T(texts.NoTimezone)}
	}

	stats, err := domain.ComputeBirthdayStats(state.Day, state.Month, state.Year, state.Timezone, c.now())
	if err != nil {
		slog.Error("birthday computation failed", "error", err)
		return c.say(c.tr.T(texts.GenericError))
	}

	req := alerts.ReminderRequest{
		DueIn:    time.Duration(stats.DaysUntilBirthday) * 24 * time.Hour,
		Timezone: state.Timezone,
		Locale:   ev.Locale,
		Text:     ev.Intent.Slot("message"),
	}
	handle, err := c.reminders.Supersede(ctx, ev.ConsentToken, state.ReminderID, req)
	switch {
	case err == nil:
		state.ReminderID = handle
		return c.say(c.tr.T(texts.ReminderCreated, state.Name) + c.tr.T(texts.PreHelp))
	case errors.Is(err, alerts.ErrUnauthorized):
		resp := c.say(c.tr.T(texts.MissingPermission) + c.tr.T(texts.PostSayHelp))
		resp.Directives = append(resp.Directives, domain.PermissionsCardDirective{
			Scopes: []string{domain.PermissionReminders},
		})
		return resp
	case errors.Is(err, alerts.ErrUnsupported):
		return c.say(c.tr.T(texts.UnsupportedDevice) + c.tr.T(texts.PostSayHelp))
	default:
		slog.Error("reminder creation failed", "error", err)
		return c.say(c.tr.T(texts.ReminderError) + c.tr.T(texts.PostSayHelp))
	}
}

func (c *Controller) handleSetTimer(ctx context.Context, ev domain.Event, state *domain.SessionState) domain.Response {
	label := ev.Intent.Slot("tmessage")
	id, err := c.timers.Create(ctx, ev.ConsentToken, alerts.TimerRequest{
		Duration: ev.Intent.Slot("duration"),
		Locale:   c.tr.T(texts.AnnouncementLocale),
		Text:     c.tr.T(texts.AnnouncementText, label),
	})
	switch {
	case err == nil:
		state.LastTimerID = id
		return c.say(c.tr.T(texts.CreateTimerOK) + c.tr.T(texts.PostSayHelp))
	case errors.Is(err, alerts.ErrUnauthorized):
		return askTimerConsent()
	default:
		slog.Error("timer creation failed", "error", err)
		return c.say(c.tr.T(texts.CreateTimerError) + c.tr.T(texts.PostSayHelp))
	}
}

func (c *Controller) handleReadTimer(ctx context.Context, ev domain.Event, state *domain.SessionState) domain.Response {
	total, status, err := c.timers.Status(ctx, ev.ConsentToken, state.LastTimerID)
	switch {
	case errors.Is(err, alerts.ErrUnauthorized):
		return askTimerConsent()
	case err != nil:
		slog.Error("timer read failed", "error", err)
		return c.say(c.tr.T(texts.ReadTimerError) + c.tr.T(texts.PostSayHelp))
	}

	if total == 0 {
		return c.say(c.tr.T(texts.NoTimer) + c.tr.T(texts.PostSayHelp))
	}
	speech := c.tr.T(texts.TimerCount, total) +
		c.tr.T(texts.LastTimer, c.timerStatusText(status)) +
		c.tr.T(texts.PostSayHelp)
	return c.say(speech)
}

func (c *Controller) handleDeleteTimer(ctx context.Context, ev domain.Event, state *domain.SessionState) domain.Response {
	deleted, err := c.timers.DeleteCachedOrAll(ctx, ev.ConsentToken, state.LastTimerID)
	switch {
	case errors.Is(err, alerts.ErrUnauthorized):
		return askTimerConsent()
	case err != nil:
		slog.Error("timer delete failed", "error", err)
		return c.say(c.tr.T(texts.DeleteTimerError) + c.tr.T(texts.PostSayHelp))
	case !deleted:
		return c.say(c.tr.T(texts.NoTimer) + c.tr.T(texts.PostSayHelp))
	}
	return c.say(c.tr.T(texts.DeleteTimerOK) + c.tr.T(texts.PostSayHelp))
}

func (c *Controller) handlePauseTimer(ctx context.Context, ev domain.Event) domain.Response {
	paused, err := c.timers.PauseAll(ctx, ev.ConsentToken)
	switch {
	case errors.Is(err, alerts.ErrUnauthorized):
		return askTimerConsent()
	case err != nil:
		slog.Error("timer pause failed", "error", err)
		return c.say(c.tr.T(texts.PauseTimerError) + c.tr.T(texts.PostSayHelp))
	case !paused:
		return c.say(c.tr.T(texts.NoTimer) + c.tr.T(texts.PostSayHelp))
	}
	return c.say(c.tr.T(texts.PauseTimerOK) + c.tr.T(texts.PostSayHelp))
}

func (c *Controller) handleResumeTimer(ctx context.Context, ev domain.Event) domain.Response {
	resumed, err := c.timers.ResumeAll(ctx, ev.ConsentToken)
	switch {
	case errors.Is(err, alerts.ErrUnauthorized):
		return askTimerConsent()
	case err != nil:
		slog.Error("timer resume failed", "error", err)
		return c.say(c.tr.T(texts.ResumeTimerError) + c.tr.T(texts.PostSayHelp))
	case !resumed:
		return c.say(c.tr.T(texts.NoTimer) + c.tr.T(texts.PostSayHelp))
	}
	return c.say(c.tr.T(texts.ResumeTimerOK) + c.tr.T(texts.PostSayHelp))
}

// handleConsentResult processes the outcome of a voice permission request.
// A refusal without a consent card already on screen falls back to sending
// the card; server-side failures keep the session open for a retry, anything
// else says goodbye.
func (c *Controller) handleConsentResult(ev domain.Event, state *domain.SessionState) domain.Response {
	r := ev.Connections
	if r == nil {
		return c.say(c.tr.T(texts.GenericError))
	}

	switch r.StatusCode {
	case "200":
		if r.PayloadStatus == domain.ConsentAccepted {
			return c.say(c.tr.T(texts.VoicePermissionAccepted) + c.tr.T(texts.PostSayHelp))
		}
		if !r.CardThrown {
			return domain.Response{
				Speech: c.tr.T(texts.PermissionsCard),
				Directives: []domain.Directive{domain.PermissionsCardDirective{
					Scopes: []string{domain.PermissionTimers},
				}},
				EndSession: true,
			}
		}
		return domain.Response{
			Speech:     c.tr.T(texts.VoicePermissionDenied) + c.tr.T(texts.Goodbye, state.Name),
			EndSession: true,
		}
	case "500":
		return c.say(c.tr.T(texts.VoicePermissionError) + c.tr.T(texts.PostSayHelp))
	default:
		// A 400 means the permission is not declared in the skill manifest.
		slog.Error("voice permission request failed", "status", r.StatusCode, "name", r.Name)
		return domain.Response{
			Speech:     c.tr.T(texts.VoicePermissionError) + c.tr.T(texts.Goodbye, state.Name),
			EndSession: true,
		}
	}
}

func (c *Controller) timerStatusText(status alerts.TimerStatus) string {
	switch status {
	case alerts.TimerOn:
		return c.tr.T(texts.TimerStatusOn)
	case alerts.TimerPaused:
		return c.tr.T(texts.TimerStatusPause)
	default:
		return c.tr.T(texts.TimerStatusOff)
	}
}

// askTimerConsent starts the AskFor voice flow for the timers permission.
// The user's answer arrives on a later turn as a connections result.
func askTimerConsent() domain.Response {
	return domain.Response{
		Directives: []domain.Directive{domain.VoicePermissionDirective{
			Scope: domain.PermissionTimers,
		}},
	}
}
