package domain

// RequestType identifies the kind of platform request delivered for a turn.
type RequestType string

const (
	RequestLaunch       RequestType = "LaunchRequest"
	RequestIntent       RequestType = "IntentRequest"
	RequestSessionEnded RequestType = "SessionEndedRequest"
	RequestConnections  RequestType = "Connections.Response"
)

// ConfirmationStatus reports whether the platform's confirmation dialog
// for an intent was accepted by the user.
type ConfirmationStatus string

const (
	ConfirmationNone      ConfirmationStatus = "NONE"
	ConfirmationConfirmed ConfirmationStatus = "CONFIRMED"
	ConfirmationDenied    ConfirmationStatus = "DENIED"
)

// Slot is a named parameter of an intent. ResolvedID carries the canonical
// entity-resolution id when the platform resolved the spoken value.
type Slot struct {
	Value      string `json:"value"`
	ResolvedID string `json:"resolved_id,omitempty"`
}

// Intent is a parsed user request: a name plus optional slot values.
type Intent struct {
	Name               string             `json:"name"`
	ConfirmationStatus ConfirmationStatus `json:"confirmation_status"`
	Slots              map[string]Slot    `json:"slots,omitempty"`
}

// Slot returns the named slot value, or "" when absent.
func (i Intent) Slot(name string) string {
	return i.Slots[name].Value
}

// SlotID returns the resolved entity id for the named slot, or "" when absent.
func (i Intent) SlotID(name string) string {
	return i.Slots[name].ResolvedID
}

// Confirmed reports whether the user accepted the intent's confirmation dialog.
func (i Intent) Confirmed() bool {
	return i.ConfirmationStatus == ConfirmationConfirmed
}

// IntentKind is the closed set of intents this skill handles. Dispatch is a
// single exhaustive switch over this type rather than a chain of
// claims-this-event predicates, so every intent is handled exactly once.
type IntentKind int

const (
	KindUnknown IntentKind = iota

	// Profile registration chain and read-back intents.
	KindRegisterBirthday
	KindSayBirthday
	KindRemindBirthday
	KindRegisterSonsNumber
	KindSaySonsNumber
	KindRegisterSonsNames
	KindSaySonsNames
	KindRegisterEmergencyContact
	KindSayEmergencyContact

	// Care and information intents.
	KindDementiaInfo
	KindRelax
	KindSupply
	KindActivity

	// Sequenced content.
	KindGoOut
	KindActivityAdvice
	KindFirstGame
	KindRepeat
	KindPoemPlayer

	// Ten-step questionnaire.
	KindSecondGame
	KindQuestion1
	KindQuestion2
	KindQuestion3
	KindQuestion4
	KindQuestion5
	KindQuestion6
	KindQuestion7
	KindQuestion8
	KindQuestion9
	KindQuestion10

	// Device profile lookups.
	KindAddress
	KindNumber
	KindEmail

	// Timers and reminders.
	KindSetTimer
	KindReadTimer
	KindDeleteTimer
	KindPauseTimer
	KindResumeTimer

	// Built-ins.
	KindContinueYes
	KindContinueNo
	KindHelp
	KindStop
	KindFallback
)

// ContinueSlot is the yes/no slot on the continue intent. Entity resolution
// maps affirmative answers to id "1" and negative answers to id "0".
const ContinueSlot = "responseYN"

var intentKinds = map[string]IntentKind{
	"RegisterBirthdayIntent":         KindRegisterBirthday,
	"SayBirthdayIntent":              KindSayBirthday,
	"RemindBirthdayIntent":           KindRemindBirthday,
	"RegisterSonsNumberIntent":       KindRegisterSonsNumber,
	"SaySonsNumberIntent":            KindSaySonsNumber,
	"RegisterSonsNamesIntent":        KindRegisterSonsNames,
	"SaySonsNamesIntent":             KindSaySonsNames,
	"RegisterEmergencyContactIntent": KindRegisterEmergencyContact,
	"SayEmergencyContactIntent":      KindSayEmergencyContact,
	"DementiaInfoIntent":             KindDementiaInfo,
	"RelaxIntent":                    KindRelax,
	"SupplyIntent":                   KindSupply,
	"ActivityIntent":                 KindActivity,
	"GoOutIntent":                    KindGoOut,
	"ActivityAdviceIntent":           KindActivityAdvice,
	"FirstGameIntent":                KindFirstGame,
	"AMAZON.RepeatIntent":            KindRepeat,
	"PoemPlayerIntent":               KindPoemPlayer,
	"SecondGameIntent":               KindSecondGame,
	"FirstQuestionIntent":            KindQuestion1,
	"SecondQuestionIntent":           KindQuestion2,
	"ThirdQuestionIntent":            KindQuestion3,
	"FourthQuestionIntent":           KindQuestion4,
	"FifthQuestionIntent":            KindQuestion5,
	"SixthQuestionIntent":            KindQuestion6,
	"SeventhQuestionIntent":          KindQuestion7,
	"EighthQuestionIntent":           KindQuestion8,
	"NinthQuestionIntent":            KindQuestion9,
	"TenthQuestionIntent":            KindQuestion10,
	"AddressIntent":                  KindAddress,
	"NumberIntent":                   KindNumber,
	"EmailIntent":                    KindEmail,
	"SetTimerIntent":                 KindSetTimer,
	"ReadTimerIntent":                KindReadTimer,
	"DeleteTimerIntent":              KindDeleteTimer,
	"PauseTimerIntent":               KindPauseTimer,
	"ResumeTimerIntent":              KindResumeTimer,
	"HelpIntent":                     KindHelp,
	"AMAZON.CancelIntent":            KindStop,
	"AMAZON.StopIntent":              KindStop,
	"AMAZON.FallbackIntent":          KindFallback,
}

// Kind maps the intent to its IntentKind. The continue intent routes on the
// resolved yes/no slot: "1" continues the go-out checklist, "0" stops the
// conversation. Unrecognized names map to KindUnknown, which the dispatcher
// answers by reflecting the intent name back rather than failing silently.
func (i Intent) Kind() IntentKind {
	if i.Name == "ContinueIntent" {
		switch i.SlotID(ContinueSlot) {
		case "1":
			return KindContinueYes
		case "0":
			return KindContinueNo
		default:
			return KindUnknown
		}
	}
	if k, ok := intentKinds[i.Name]; ok {
		return k
	}
	return KindUnknown
}
