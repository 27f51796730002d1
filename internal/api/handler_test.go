package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mfalcone/memoria/internal/alerts"
	"github.com/mfalcone/memoria/internal/dialogue"
	"github.com/mfalcone/memoria/internal/profile"
	"github.com/mfalcone/memoria/internal/store"
	"github.com/mfalcone/memoria/internal/texts"
)

type stubProfile struct{}

func (stubProfile) GivenName(context.Context, string) (string, error) { return "Maria", nil }
func (stubProfile) Email(context.Context, string) (string, error)     { return "", profile.ErrNotSet }
func (stubProfile) MobileNumber(context.Context, string) (profile.Number, error) {
	return profile.Number{}, profile.ErrNotSet
}
func (stubProfile) Timezone(context.Context, string) (string, error) { return "Europe/Rome", nil }
func (stubProfile) Address(context.Context, string, string) (profile.Address, error) {
	return profile.Address{}, profile.ErrNotSet
}

type stubReminders struct{}

func (stubReminders) List(context.Context, string) (alerts.ReminderList, error) {
	return alerts.ReminderList{}, nil
}
func (stubReminders) Create(context.Context, string, alerts.ReminderRequest) (string, error) {
	return "r-1", nil
}
func (stubReminders) Delete(context.Context, string, string) error { return nil }

type stubTimers struct{}

func (stubTimers) List(context.Context, string) ([]alerts.Timer, error) { return nil, nil }
func (stubTimers) Create(context.Context, string, alerts.TimerRequest) (alerts.Timer, error) {
	return alerts.Timer{ID: "t-1", Status: alerts.TimerOn}, nil
}
func (stubTimers) Delete(context.Context, string, string) error { return nil }
func (stubTimers) DeleteAll(context.Context, string) error      { return nil }
func (stubTimers) Pause(context.Context, string, string) error  { return nil }
func (stubTimers) Resume(context.Context, string, string) error { return nil }

func newTestRouter() chi.Router {
	ctrl := dialogue.New(store.NewMemory(), stubProfile{}, stubReminders{}, stubTimers{}, texts.Default())
	r := chi.NewRouter()
	NewHandler(ctrl).RegisterRoutes(r)
	return r
}

func postSkill(t *testing.T, r chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/skill", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestServeSkillLaunchForNewUser(t *testing.T) {
	r := newTestRouter()
	rec := postSkill(t, r, `{
		"version": "1.0",
		"session": {
			"new": true,
			"sessionId": "session-1",
			"user": {"userId": "user-1"}
		},
		"context": {"System": {
			"user": {"userId": "user-1", "permissions": {"consentToken": "token"}},
			"device": {"deviceId": "device-1"}
		}},
		"request": {"type": "LaunchRequest", "locale": "it-IT"}
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var env responseEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Response.OutputSpeech == nil || env.Response.OutputSpeech.Text == "" {
		t.Fatal("expected spoken output")
	}
	if env.Response.ShouldEndSession {
		t.Error("launch must keep the session open")
	}
	// A brand-new user has no birthdate, so the launch chains into the
	// registration sub-dialogue.
	raw, _ := json.Marshal(env.Response.Directives)
	if !strings.Contains(string(raw), "Dialog.Delegate") || !strings.Contains(string(raw), "RegisterBirthdayIntent") {
		t.Errorf("expected a delegate directive, got %s", raw)
	}
	if len(env.SessionAttributes) == 0 {
		t.Error("session attributes must round-trip")
	}
}

func TestServeSkillIntentWithSlots(t *testing.T) {
	r := newTestRouter()
	rec := postSkill(t, r, `{
		"version": "1.0",
		"session": {
			"new": true,
			"sessionId": "session-1",
			"attributes": {},
			"user": {"userId": "user-1"}
		},
		"context": {"System": {"device": {"deviceId": "device-1"}}},
		"request": {
			"type": "IntentRequest",
			"locale": "it-IT",
			"intent": {
				"name": "RegisterBirthdayIntent",
				"confirmationStatus": "CONFIRMED",
				"slots": {
					"day": {"value": "15"},
					"year": {"value": "1950"},
					"month": {
						"value": "giugno",
						"resolutions": {"resolutionsPerAuthority": [
							{"values": [{"value": {"name": "giugno", "id": "06"}}]}
						]}
					}
				}
			}
		}
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var env responseEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.SessionAttributes["month"] != "06" {
		t.Errorf("entity resolution lost: %v", env.SessionAttributes)
	}
}

func TestServeSkillRejectsMalformedEnvelope(t *testing.T) {
	r := newTestRouter()
	if rec := postSkill(t, r, `{not json`); rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d", rec.Code)
	}
	if rec := postSkill(t, r, `{"version":"1.0"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("missing request: status = %d", rec.Code)
	}
	if rec := postSkill(t, r, `{"version":"1.0","request":{"type":"LaunchRequest"}}`); rec.Code != http.StatusBadRequest {
		t.Errorf("missing user: status = %d", rec.Code)
	}
}
