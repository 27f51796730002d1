// Package texts provides message lookup for spoken responses. The dialogue
// core only refers to message keys; wording and localization belong to the
// Translator implementation.
package texts

import "fmt"

// Key names one spoken message template.
type Key string

// Message keys used by the dialogue handlers.
const (
	Welcome          Key = "WELCOME_MSG"
	WelcomeBack      Key = "WELCOME_BACK_MSG"
	PreHelp          Key = "PRE_HELP_MSG"
	PostSayHelp      Key = "POST_SAY_HELP_MSG"
	Missing          Key = "MISSING_MSG"
	Reprompt         Key = "REPROMPT_MSG"
	Rejected         Key = "REJECTED_MSG"
	Cancel           Key = "CANCEL_MSG"
	OK               Key = "OK_MSG"
	Goodbye          Key = "GOODBYE_MSG"
	Help             Key = "HELP_MSG"
	Fallback         Key = "FALLBACK_MSG"
	Reflector        Key = "REFLECTOR_MSG"
	GenericError     Key = "ERROR_MSG"
	Dementia         Key = "DEMENTIA_MSG"
	Relax            Key = "RELAX_MSG"
	Supply           Key = "SUPPLY_MSG"
	Activity         Key = "ACTIVITY_MSG"
	Birthdate        Key = "BIRTHDATE_MSG"
	DaysLeft         Key = "DAYS_LEFT_MSG"
	WillTurn         Key = "WILL_TURN_MSG"
	Greet            Key = "GREET_MSG"
	NowTurn          Key = "NOW_TURN_MSG"
	NoTimezone       Key = "NO_TIMEZONE_MSG"
	SonsCount        Key = "SONS_COUNT_MSG"
	SonsNames        Key = "SONS_NAMES_MSG"
	EmergencyContact Key = "EMERGENCY_CONTACT_MSG"

	ReminderCreated    Key = "REMINDER_CREATED_MSG"
	ReminderError      Key = "REMINDER_ERROR_MSG"
	MissingPermission  Key = "MISSING_PERMISSION_MSG"
	UnsupportedDevice  Key = "UNSUPPORTED_DEVICE_MSG"
	AnnouncementLocale Key = "ANNOUNCEMENT_LOCALE_MSG"
	AnnouncementText   Key = "ANNOUNCEMENT_TEXT_MSG"

	Address             Key = "ADDRESS_MSG"
	NoAddress           Key = "NO_ADDRESS_MSG"
	AddressPermission   Key = "ADDRESS_PERMISSION_MSG"
	MobileNumber        Key = "NUMBER_MSG"
	NoMobileNumber      Key = "NO_NUMBER_MSG"
	NumberPermission    Key = "NUMBER_PERMISSION_MSG"
	Email               Key = "EMAIL_MSG"
	NoEmail             Key = "NO_EMAIL_MSG"
	EmailPermission     Key = "EMAIL_PERMISSION_MSG"

	ChecklistFirst Key = "CHECKLIST_FIRST_MSG"
	ChecklistMore  Key = "CHECKLIST_MORE_MSG"
	ChecklistDone  Key = "CHECKLIST_DONE_MSG"

	FirstGame       Key = "FIRST_GAME_MSG"
	SecondGame      Key = "SECOND_GAME_MSG"
	SecondGameRecap Key = "SECOND_GAME_RECAP_MSG"
	GameInstruction Key = "GAME_INSTRUCTION_MSG"
	Story1          Key = "STORY1_MSG"
	Story2          Key = "STORY2_MSG"
	Story3          Key = "STORY3_MSG"
	Story4          Key = "STORY4_MSG"
	Story5          Key = "STORY5_MSG"
	Story6          Key = "STORY6_MSG"
	Answer1         Key = "FIRST_ANSWER_MSG"
	Answer2         Key = "SECOND_ANSWER_MSG"
	Answer3         Key = "THIRD_ANSWER_MSG"
	Answer4         Key = "FOURTH_ANSWER_MSG"
	Answer5         Key = "FIFTH_ANSWER_MSG"
	Answer6         Key = "SIXTH_ANSWER_MSG"
	Answer7         Key = "SEVENTH_ANSWER_MSG"
	Answer8         Key = "EIGHTH_ANSWER_MSG"
	Answer9         Key = "NINTH_ANSWER_MSG"
	Answer10        Key = "TENTH_ANSWER_MSG"
	EndGame         Key = "END_GAME_MSG"

	TimerCount       Key = "TIMER_COUNT_MSG"
	LastTimer        Key = "LAST_TIMER_MSG"
	TimerStatusOn    Key = "ON_TIMER_STATUS_MSG"
	TimerStatusOff   Key = "OFF_TIMER_STATUS_MSG"
	TimerStatusPause Key = "PAUSED_TIMER_STATUS_MSG"
	NoTimer          Key = "NO_TIMER_MSG"
	ReadTimerError   Key = "READ_TIMER_ERROR_MSG"
	CreateTimerOK    Key = "CREATE_TIMER_OK_MSG"
	CreateTimerError Key = "CREATE_TIMER_ERROR_MSG"
	DeleteTimerOK    Key = "DELETE_TIMER_OK_MSG"
	DeleteTimerError Key = "DELETE_TIMER_ERROR_MSG"
	PauseTimerOK     Key = "PAUSE_TIMER_OK_MSG"
	PauseTimerError  Key = "PAUSE_TIMER_ERROR_MSG"
	ResumeTimerOK    Key = "RESUME_TIMER_OK_MSG"
	ResumeTimerError Key = "RESUME_TIMER_ERROR_MSG"

	VoicePermissionAccepted Key = "VOICE_PERMISSION_ACCEPTED_MSG"
	VoicePermissionDenied   Key = "VOICE_PERMISSION_DENIED_MSG"
	VoicePermissionError    Key = "VOICE_PERMISSION_ERROR_MSG"
	PermissionsCard         Key = "PERMISSIONS_CARD_MSG"
)

// Translator renders a message key with its arguments into speech text.
// Implementations own wording and locale; the core never embeds phrases.
type Translator interface {
	T(key Key, args ...any) string
}

type table map[Key]string

// T renders the template for the key with fmt-style arguments. An unknown
// key renders as the key name so a missing phrase is audible in testing
// instead of producing dead air.
func (t table) T(key Key, args ...any) string {
	tmpl, ok := t[key]
	if !ok {
		return string(key)
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// Default returns the built-in Italian phrase set.
func Default() Translator {
	return defaultTable
}

var defaultTable = table{
	Welcome:          "Ciao %s, sono la tua compagna di memoria. ",
	WelcomeBack:      "Bentornato %s! ",
	PreHelp:          "Puoi chiedermi del tuo compleanno, dei tuoi figli, o di giocare insieme. ",
	PostSayHelp:      "Cosa vuoi fare adesso? ",
	Missing:          "Mi manca ancora qualche informazione su di te. ",
	Reprompt:         "Sono qui, dimmi pure. ",
	Rejected:         "Va bene, non registro la data. ",
	Cancel:           "D'accordo, annullato. ",
	OK:               "Ok! ",
	Goodbye:          "Arrivederci %s, a presto! ",
	Help:             "Posso ricordarti il compleanno, i nomi dei tuoi figli, il contatto di emergenza, impostare promemoria e timer, e proporti giochi di memoria. ",
	Fallback:         "Scusa, non ho capito. Puoi ripetere? ",
	Reflector:        "Hai appena attivato %s. ",
	GenericError:     "Scusa, c'è stato un problema. Riprova tra poco. ",
	Dementia:         "La demenza è un declino delle capacità cognitive. Mantenere la mente attiva e una routine regolare aiuta molto. ",
	Relax:            "Chiudi gli occhi e respira lentamente. Inspira... ed espira. ",
	Supply:           "Ricorda di bere acqua e di prendere le tue medicine come indicato dal medico. ",
	Activity:         "Muoversi un po' ogni giorno fa bene al corpo e alla mente. ",
	Birthdate:        "Sei nato il ",
	DaysLeft:         "%s, mancano %d giorni al tuo compleanno. ",
	WillTurn:         "Compirai %d anni. ",
	Greet:            "Tanti auguri %s! ",
	NowTurn:          "Oggi compi %d anni! ",
	NoTimezone:       "Non riesco a determinare il tuo fuso orario da questo dispositivo. ",
	SonsCount:        "Hai %s figli. ",
	SonsNames:        "I tuoi figli si chiamano ",
	EmergencyContact: "Il tuo contatto di emergenza è ",

	ReminderCreated:    "Perfetto %s, ti ricorderò il tuo compleanno. ",
	ReminderError:      "Non sono riuscita a creare il promemoria. ",
	MissingPermission:  "Per creare promemoria devi darmi il permesso nell'app companion. ",
	UnsupportedDevice:  "Questo dispositivo non supporta i promemoria. ",
	AnnouncementLocale: "it-IT",
	AnnouncementText:   "È ora di: %s",

	Address:           "Questo è il tuo indirizzo completo: %s. ",
	NoAddress:         "Non hai impostato un indirizzo per questo dispositivo. ",
	AddressPermission: "Per dirti l'indirizzo devi darmi il permesso nell'app companion. ",
	MobileNumber:      "Questo è il tuo numero di cellulare: %s %s. ",
	NoMobileNumber:    "Non hai impostato un numero di cellulare. ",
	NumberPermission:  "Per dirti il numero devi darmi il permesso nell'app companion. ",
	Email:             "Questo è il tuo indirizzo email: %s. ",
	NoEmail:           "Non hai impostato un indirizzo email. ",
	EmailPermission:   "Per dirti l'email devi darmi il permesso nell'app companion. ",

	ChecklistFirst: "hey, ",
	ChecklistMore:  " Vuoi che ti ricordi altro? ",
	ChecklistDone:  " Sei pronto per andare! Buona giornata, arrivederci! ",

	FirstGame:       "Ripeti dopo di me queste parole: ",
	SecondGame:      "Ti racconto una breve storia, poi ti farò qualche domanda. ",
	SecondGameRecap: "Molto bene! Ora continua la storia. ",
	GameInstruction: "Ascolta con attenzione e rispondi quando te lo chiedo. ",
	Story1:          "Maria esce di casa alle otto del mattino. ",
	Story2:          "Va al mercato e compra mele, pane e formaggio. ",
	Story3:          "Sulla strada del ritorno incontra la sua amica Lucia. ",
	Story4:          "Nel pomeriggio Maria prepara una torta di mele. ",
	Story5:          "Invita Lucia per il caffè alle quattro. ",
	Story6:          "Insieme guardano le foto del matrimonio di Maria. ",
	Answer1:         "Bene. Seconda domanda. A che ora esce Maria? ",
	Answer2:         "Ottimo. Dove va Maria? ",
	Answer3:         "Bravissimo. Cosa compra al mercato? ",
	Answer4:         "Bene. Chi incontra per strada? ",
	Answer5:         "Perfetto. ",
	Answer6:         "Bene. Cosa prepara Maria nel pomeriggio? ",
	Answer7:         "Ottimo. Chi invita per il caffè? ",
	Answer8:         "Bravissimo. A che ora arriva Lucia? ",
	Answer9:         "Bene. Cosa guardano insieme? ",
	Answer10:        "Molto bene, hai un'ottima memoria! ",
	EndGame:         "Il gioco è finito, grazie per aver giocato con me. ",

	TimerCount:       "Hai %d timer. ",
	LastTimer:        "L'ultimo timer è %s. ",
	TimerStatusOn:    "attivo",
	TimerStatusOff:   "spento",
	TimerStatusPause: "in pausa",
	NoTimer:          "Non hai nessun timer impostato. ",
	ReadTimerError:   "Non riesco a leggere i tuoi timer. ",
	CreateTimerOK:    "Timer impostato. ",
	CreateTimerError: "Non sono riuscita a impostare il timer. ",
	DeleteTimerOK:    "Timer cancellato. ",
	DeleteTimerError: "Non sono riuscita a cancellare il timer. ",
	PauseTimerOK:     "Timer in pausa. ",
	PauseTimerError:  "Non sono riuscita a mettere in pausa il timer. ",
	ResumeTimerOK:    "Timer ripreso. ",
	ResumeTimerError: "Non sono riuscita a riprendere il timer. ",

	VoicePermissionAccepted: "Grazie, ora posso gestire i tuoi timer. ",
	VoicePermissionDenied:   "Va bene, non userò i timer. ",
	VoicePermissionError:    "C'è stato un problema con la richiesta di permesso. ",
	PermissionsCard:         "Ti ho inviato una scheda nell'app companion per abilitare il permesso. ",
}
