package domain

// Event is one parsed platform request: the input to a single turn.
// The transport (speech recognition, NLU, envelope verification) is owned by
// the host platform; by the time an Event reaches the core it is fully typed.
type Event struct {
	Type       RequestType
	UserID     string
	DeviceID   string
	SessionID  string
	NewSession bool
	Locale     string

	// Intent is set for RequestIntent events.
	Intent Intent

	// ConsentToken is empty when the user has granted no permissions.
	ConsentToken string

	// SessionAttributes is the transient per-conversation state the platform
	// carries between turns of the same session.
	SessionAttributes map[string]any

	// Connections is set for RequestConnections events (the result of a
	// voice permission request).
	Connections *ConnectionsResult

	// EndedReason is set for RequestSessionEnded events.
	EndedReason string
}

// ConnectionsResult is the outcome of an AskFor voice permission request.
type ConnectionsResult struct {
	Name          string
	StatusCode    string
	PayloadStatus string // ACCEPTED, DENIED or NOT_ANSWERED
	CardThrown    bool
}

// Consent payload statuses for ConnectionsResult.
const (
	ConsentAccepted    = "ACCEPTED"
	ConsentDenied      = "DENIED"
	ConsentNotAnswered = "NOT_ANSWERED"
)
