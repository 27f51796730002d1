// Package dialogue implements the multi-turn dialogue state machine: the
// per-turn controller, the registration-chain policy, the sequenced content
// engine and the questionnaire flow.
package dialogue

import "github.com/mfalcone/memoria/internal/domain"

// FieldID names a piece of profile data a handler may require.
type FieldID int

const (
	FieldBirthdate FieldID = iota
	FieldSonsNumber
	FieldSonsNames
	FieldEmergencyContact
	FieldTimezone
)

// Decision is the outcome of the dialogue policy for a required field.
// Exactly one of Proceed, Delegate or Unavailable applies.
type Decision struct {
	// Proceed means the required field and everything before it in the
	// registration chain is present.
	Proceed bool
	// Delegate names the collection sub-dialogue for the first missing
	// field, in chain order.
	Delegate domain.IntentKind
	// Unavailable means the field cannot be collected by any sub-dialogue
	// (timezone): the handler must render a cannot-proceed message instead
	// of looping.
	Unavailable bool
}

// registrationChain is the fixed collection order. A later field is never
// asked for while an earlier one is missing, regardless of which field the
// handler originally required.
var registrationChain = []struct {
	field   FieldID
	collect domain.IntentKind
}{
	{FieldBirthdate, domain.KindRegisterBirthday},
	{FieldSonsNumber, domain.KindRegisterSonsNumber},
	{FieldSonsNames, domain.KindRegisterSonsNames},
	{FieldEmergencyContact, domain.KindRegisterEmergencyContact},
}

// DecideNext is the pure dialogue policy: given the session state and the
// field a handler requires, it either proceeds or picks the sub-dialogue
// that collects the first missing field of the chain.
//
// The timezone is special: it sits outside the registration chain (only the
// birthdate is logically prior to it) and has no collection sub-dialogue,
// so a missing timezone is terminal for the requesting handler.
func DecideNext(s *domain.SessionState, required FieldID) Decision {
	if required == FieldTimezone {
		if !s.BirthdateAvailable() {
			return Decision{Delegate: domain.KindRegisterBirthday}
		}
		if s.Timezone == "" {
			return Decision{Unavailable: true}
		}
		return Decision{Proceed: true}
	}

	for _, link := range registrationChain {
		if !fieldPresent(s, link.field) {
			return Decision{Delegate: link.collect}
		}
		if link.field == required {
			break
		}
	}
	return Decision{Proceed: true}
}

func fieldPresent(s *domain.SessionState, field FieldID) bool {
	switch field {
	case FieldBirthdate:
		return s.BirthdateAvailable()
	case FieldSonsNumber:
		return s.SonsNumber != ""
	case FieldSonsNames:
		return s.SonsNames != ""
	case FieldEmergencyContact:
		return s.EmergencyContact != ""
	case FieldTimezone:
		return s.Timezone != ""
	default:
		return false
	}
}
