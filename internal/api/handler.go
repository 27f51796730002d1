// Package api provides the HTTP surface: the skill webhook that translates
// platform request envelopes to dialogue events and back.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfalcone/memoria/internal/dialogue"
	"github.com/mfalcone/memoria/internal/domain"
)

// Handler serves the skill webhook.
type Handler struct {
	ctrl *dialogue.Controller
}

// NewHandler creates a webhook handler around the turn controller.
func NewHandler(ctrl *dialogue.Controller) *Handler {
	return &Handler{ctrl: ctrl}
}

// RegisterRoutes mounts the webhook.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/skill", h.ServeSkill)
}

// ServeSkill handles one request envelope. Malformed envelopes are the
// caller's fault and answered 400; everything past decoding is the
// controller's problem and always yields a spoken response.
func (h *Handler) ServeSkill(w http.ResponseWriter, r *http.Request) {
	var env requestEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		Error(w, http.StatusBadRequest, "malformed request envelope")
		return
	}

	ev, err := env.event()
	if err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := h.ctrl.HandleTurn(r.Context(), ev)
	JSON(w, http.StatusOK, encodeResponse(resp))
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// event maps the wire envelope onto the typed turn event.
func (e *requestEnvelope) event() (domain.Event, error) {
	if e.Request == nil {
		return domain.Event{}, errEnvelope("missing request")
	}

	ev := domain.Event{
		Type:        domain.RequestType(e.Request.Type),
		Locale:      e.Request.Locale,
		EndedReason: e.Request.Reason,
	}

	if e.Session != nil {
		ev.NewSession = e.Session.New
		ev.SessionID = e.Session.SessionID
		ev.SessionAttributes = e.Session.Attributes
		if e.Session.User != nil {
			ev.UserID = e.Session.User.UserID
		}
	}
	if e.Context != nil && e.Context.System != nil {
		sys := e.Context.System
		if sys.User != nil {
			if ev.UserID == "" {
				ev.UserID = sys.User.UserID
			}
			if sys.User.Permissions != nil {
				ev.ConsentToken = sys.User.Permissions.ConsentToken
			}
		}
		if sys.Device != nil {
			ev.DeviceID = sys.Device.DeviceID
		}
	}
	if ev.UserID == "" {
		return domain.Event{}, errEnvelope("missing user id")
	}

	switch ev.Type {
	case domain.RequestIntent:
		if e.Request.Intent == nil {
			return domain.Event{}, errEnvelope("intent request without intent")
		}
		ev.Intent = e.Request.Intent.domain()
	case domain.RequestConnections:
		ev.Connections = &domain.ConnectionsResult{Name: e.Request.Name}
		if e.Request.Status != nil {
			ev.Connections.StatusCode = e.Request.Status.Code
		}
		if e.Request.Payload != nil {
			ev.Connections.PayloadStatus = e.Request.Payload.Status
			ev.Connections.CardThrown = e.Request.Payload.IsCardThrown
		}
	case domain.RequestLaunch, domain.RequestSessionEnded:
	default:
		return domain.Event{}, errEnvelope("unsupported request type " + e.Request.Type)
	}

	return ev, nil
}

type errEnvelope string

func (e errEnvelope) Error() string { return string(e) }
