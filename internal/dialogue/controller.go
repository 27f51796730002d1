package dialogue

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mfalcone/memoria/internal/alerts"
	"github.com/mfalcone/memoria/internal/domain"
	"github.com/mfalcone/memoria/internal/profile"
	"github.com/mfalcone/memoria/internal/store"
	"github.com/mfalcone/memoria/internal/texts"
)

// Controller runs one dialogue turn end to end: state hydration, profile
// enrichment, intent dispatch and end-of-session persistence.
type Controller struct {
	store     store.AttributeStore
	profile   profile.Service
	reminders *alerts.Reminders
	timers    *alerts.Timers
	tr        texts.Translator
	now       func() time.Time
}

// New creates a turn controller over the given collaborators.
func New(st store.AttributeStore, prof profile.Service, reminders alerts.ReminderService, timers alerts.TimerService, tr texts.Translator) *Controller {
	return &Controller{
		store:     st,
		profile:   prof,
		reminders: alerts.NewReminders(reminders),
		timers:    alerts.NewTimers(timers),
		tr:        tr,
		now:       time.Now,
	}
}

// HandleTurn processes one platform event and produces the spoken response.
// A panicking handler is contained to this turn: the user hears a generic
// error and the session attributes still round-trip.
func (c *Controller) HandleTurn(ctx context.Context, ev domain.Event) (resp domain.Response) {
	state := domain.SessionFromAttributes(ev.SessionAttributes)

	defer func() {
		if r := recover(); r != nil {
			slog.Error("turn handler panicked", "intent", ev.Intent.Name, "panic", r)
			resp = c.say(c.tr.T(texts.GenericError))
			resp.SessionAttributes = state.SessionAttributes()
		}
	}()

	c.hydrate(ctx, ev, state)
	pending := c.enrich(ctx, ev, state)

	resp = c.dispatch(ctx, ev, state)
	resp.Directives = append(pending, resp.Directives...)

	c.persist(ctx, ev, state, resp)
	resp.SessionAttributes = state.SessionAttributes()
	return resp
}

// hydrate overlays the durable profile onto the session state. The loaded
// check covers one-shot utterances that reach an auto-delegated intent: those
// lose the new-session flag, so the flag alone cannot be trusted.
func (c *Controller) hydrate(ctx context.Context, ev domain.Event, state *domain.SessionState) {
	if !ev.NewSession && state.Loaded {
		return
	}
	attrs, err := c.store.Load(ctx, ev.UserID)
	if err != nil {
		// Without a hydrated baseline an end-of-session save could wipe the
		// stored profile, so the loaded gate stays down and this session
		// stays ephemeral.
		slog.Error("failed to load attributes", "user_id", ev.UserID, "error", err)
		return
	}
	state.Hydrate(attrs)
}

// enrich fills the per-session name and timezone from the profile API. Both
// lookups are best-effort; a missing given-name consent yields a permissions
// card attached to whatever the turn's handler answers.
func (c *Controller) enrich(ctx context.Context, ev domain.Event, state *domain.SessionState) []domain.Directive {
	var directives []domain.Directive

	if state.Name == "" {
		if ev.ConsentToken == "" {
			directives = append(directives, domain.PermissionsCardDirective{
				Scopes: []string{domain.PermissionGivenName},
			})
		} else {
			name, err := c.profile.GivenName(ctx, ev.ConsentToken)
			switch {
			case err == nil:
				state.Name = name
			case errors.Is(err, profile.ErrUnauthorized):
				directives = append(directives, domain.PermissionsCardDirective{
					Scopes: []string{domain.PermissionGivenName},
				})
			case errors.Is(err, profile.ErrNotSet):
				// No name on the account; greetings stay nameless.
			default:
				slog.Warn("given name lookup failed", "error", err)
			}
		}
	}

	if state.Timezone == "" {
		tz, err := c.profile.Timezone(ctx, ev.DeviceID)
		switch {
		case err == nil:
			state.Timezone = tz
		case errors.Is(err, profile.ErrNotSet):
			// The device has no timezone configured; date-based intents
			// will answer that they cannot proceed.
		default:
			slog.Warn("timezone lookup failed", "device_id", ev.DeviceID, "error", err)
		}
	}

	return directives
}

// persist writes the allow-listed attributes when the session is ending.
// Only a session that hydrated may save, and the session counter advances
// exactly once per completed session.
func (c *Controller) persist(ctx context.Context, ev domain.Event, state *domain.SessionState, resp domain.Response) {
	ending := resp.EndSession || ev.Type == domain.RequestSessionEnded
	if !ending || !state.Loaded {
		return
	}
	state.SessionCounter++
	if err := c.store.Save(ctx, ev.UserID, state.PersistentAttributes()); err != nil {
		slog.Error("failed to persist attributes", "user_id", ev.UserID, "error", err)
	}
}

func (c *Controller) dispatch(ctx context.Context, ev domain.Event, state *domain.SessionState) domain.Response {
	switch ev.Type {
	case domain.RequestLaunch:
		return c.handleLaunch(state)
	case domain.RequestSessionEnded:
		slog.Info("session ended", "session_id", ev.SessionID, "reason", ev.EndedReason)
		return domain.Response{}
	case domain.RequestConnections:
		return c.handleConsentResult(ev, state)
	case domain.RequestIntent:
		return c.dispatchIntent(ctx, ev, state)
	default:
		slog.Warn("unhandled request type", "type", ev.Type)
		return c.say(c.tr.T(texts.GenericError))
	}
}

// dispatchIntent routes on the closed intent set. Every kind has exactly one
// arm; anything outside the set reflects the intent name back so a model or
// routing gap is audible instead of silent.
func (c *Controller) dispatchIntent(ctx context.Context, ev domain.Event, state *domain.SessionState) domain.Response {
	kind := ev.Intent.Kind()
	switch kind {
	case domain.KindRegisterBirthday:
		return c.handleRegisterBirthday(ev, state)
	case domain.KindSayBirthday:
		return c.handleSayBirthday(state)
	case domain.KindRemindBirthday:
		return c.handleRemindBirthday(ctx, ev, state)
	case domain.KindRegisterSonsNumber:
		return c.handleRegisterSonsNumber(ev, state)
	case domain.KindSaySonsNumber:
		return c.handleSaySonsNumber(state)
	case domain.KindRegisterSonsNames:
		return c.handleRegisterSonsNames(ev, state)
	case domain.KindSaySonsNames:
		return c.handleSaySonsNames(state)
	case domain.KindRegisterEmergencyContact:
		return c.handleRegisterEmergencyContact(ev, state)
	case domain.KindSayEmergencyContact:
		return c.handleSayEmergencyContact(state)

	case domain.KindDementiaInfo:
		return c.handleConfirmGated(ev, texts.Dementia)
	case domain.KindRelax:
		return c.say(c.tr.T(texts.Relax) + c.tr.T(texts.PostSayHelp))
	case domain.KindSupply:
		return c.handleConfirmGated(ev, texts.Supply)
	case domain.KindActivity:
		return c.handleConfirmGated(ev, texts.Activity)

	case domain.KindGoOut, domain.KindContinueYes:
		return c.handleGoOut(ev, state)
	case domain.KindActivityAdvice:
		return c.handleActivityAdvice(ev, state)
	case domain.KindFirstGame:
		return c.handleFirstGame(ev, state)
	case domain.KindRepeat:
		return c.handleRepeat(state)
	case domain.KindPoemPlayer:
		return c.handlePoem(ev, state)

	case domain.KindSecondGame:
		return c.handleSecondGame()
	case domain.KindQuestion1, domain.KindQuestion2, domain.KindQuestion3,
		domain.KindQuestion4, domain.KindQuestion5, domain.KindQuestion6,
		domain.KindQuestion7, domain.KindQuestion8, domain.KindQuestion9,
		domain.KindQuestion10:
		return c.handleQuestion(kind)

	case domain.KindAddress:
		return c.handleAddress(ctx, ev)
	case domain.KindNumber:
		return c.handleNumber(ctx, ev)
	case domain.KindEmail:
		return c.handleEmail(ctx, ev)

	case domain.KindSetTimer:
		return c.handleSetTimer(ctx, ev, state)
	case domain.KindReadTimer:
		return c.handleReadTimer(ctx, ev, state)
	case domain.KindDeleteTimer:
		return c.handleDeleteTimer(ctx, ev, state)
	case domain.KindPauseTimer:
		return c.handlePauseTimer(ctx, ev)
	case domain.KindResumeTimer:
		return c.handleResumeTimer(ctx, ev)

	case domain.KindHelp:
		return c.handleHelp(ev)
	case domain.KindContinueNo, domain.KindStop:
		return c.handleStop(state)
	case domain.KindFallback:
		return c.say(c.tr.T(texts.Fallback))

	case domain.KindUnknown:
		return c.handleReflect(ev)
	default:
		return c.handleReflect(ev)
	}
}

// say wraps speech in the standard open-ended response with the default
// reprompt, keeping the session alive.
func (c *Controller) say(speech string) domain.Response {
	return domain.Response{
		Speech:   speech,
		Reprompt: c.tr.T(texts.Reprompt),
	}
}

// delegateMissing tells the user data is missing and forces the collection
// sub-dialogue chosen by the policy.
func (c *Controller) delegateMissing(kind domain.IntentKind) domain.Response {
	return domain.Response{
		Speech:     c.tr.T(texts.Missing),
		Reprompt:   c.tr.T(texts.Reprompt),
		Directives: []domain.Directive{domain.Delegate(kind)},
	}
}
