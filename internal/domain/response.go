package domain

// Response is the speech payload handed back to the platform for one turn.
type Response struct {
	Speech     string
	Reprompt   string
	EndSession bool
	Directives []Directive

	// SessionAttributes is the updated transient state for the platform to
	// carry into the next turn. Populated by the turn controller.
	SessionAttributes map[string]any
}

// Directive instructs the platform dispatcher to do something beyond
// rendering speech: delegate to a sub-dialogue, show a permissions card,
// or ask for a permission by voice.
type Directive interface {
	directive()
}

// DelegateDirective forces the platform to dispatch the named intent next,
// so the target sub-dialogue can collect its slots before control returns.
type DelegateDirective struct {
	IntentName string
}

// PermissionsCardDirective attaches a consent card for the given permission
// scopes to the companion app.
type PermissionsCardDirective struct {
	Scopes []string
}

// VoicePermissionDirective starts an AskFor voice consent flow for one
// permission scope. The outcome arrives later as a Connections.Response.
type VoicePermissionDirective struct {
	Scope string
}

func (DelegateDirective) directive()        {}
func (PermissionsCardDirective) directive() {}
func (VoicePermissionDirective) directive() {}

// Delegate appends a delegate directive for the intent kind's platform name.
func Delegate(kind IntentKind) Directive {
	return DelegateDirective{IntentName: intentName(kind)}
}

func intentName(kind IntentKind) string {
	for name, k := range intentKinds {
		if k == kind {
			return name
		}
	}
	return ""
}

// Permission scopes requested from the platform. The strings are part of the
// platform's wire contract and cannot be reworded.
const (
	PermissionGivenName = "alexa::profile:given_name:read"
	PermissionEmail     = "alexa::profile:email:read"
	PermissionNumber    = "alexa::profile:mobile_number:read"
	PermissionAddress   = "read::alexa:device:all:address"
	PermissionReminders = "alexa::alerts:reminders:skill:readwrite"
	PermissionTimers    = "alexa::alerts:timers:skill:readwrite"
)
