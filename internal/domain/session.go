package domain

// Attribute keys shared between session state and the durable store.
const (
	AttrDay              = "day"
	AttrMonth            = "month"
	AttrMonthName        = "monthName"
	AttrYear             = "year"
	AttrSonsNumber       = "sonsNumber"
	AttrSonsNames        = "sonsNames"
	AttrEmergencyContact = "emergencyContact"
	AttrSessionCounter   = "sessionCounter"
	AttrReminderID       = "reminderId"
	AttrLastTimerID      = "lastTimerId"

	// Session-scoped keys, never persisted.
	AttrLoaded       = "loaded"
	AttrName         = "name"
	AttrTimezone     = "timezone"
	AttrCount        = "count"
	AttrLastWordList = "randomReminder"
	AttrAge          = "age"
	AttrDaysLeft     = "daysLeft"
)

// PersistentAttributeNames is the allow-list of keys written to the durable
// store at session end. Every other session key is dropped before the write.
var PersistentAttributeNames = []string{
	AttrDay, AttrMonth, AttrMonthName, AttrYear,
	AttrSonsNumber, AttrSonsNames, AttrEmergencyContact,
	AttrSessionCounter, AttrReminderID, AttrLastTimerID,
}

// SessionState is the accumulated state of one conversation. It is hydrated
// from the durable store at session start, mutated by intent handlers during
// the turn, and handed back to the platform as session attributes. The
// timezone and given name are re-fetched per session and never persisted.
type SessionState struct {
	// Loaded is set exactly once, right after hydration from the durable
	// store, and gates end-of-session persistence: a session that never
	// hydrated must never overwrite the stored profile.
	Loaded bool

	// Durable profile fields (the persistence allow-list).
	Day              string
	Month            string // two-digit month id, "01".."12"
	MonthName        string
	Year             string
	SonsNumber       string
	SonsNames        string
	EmergencyContact string
	SessionCounter   int
	ReminderID       string
	LastTimerID      string

	// Session-scoped fields.
	Name         string
	Timezone     string
	Count        int // shared progression counter for all sequenced content
	LastWordList string
	Age          int
	DaysLeft     int
}

// SessionFromAttributes rebuilds state from the attribute map the platform
// carried over from the previous turn. Missing keys default to zero values.
func SessionFromAttributes(attrs map[string]any) *SessionState {
	s := &SessionState{}
	if attrs == nil {
		return s
	}
	s.Loaded = attrBool(attrs, AttrLoaded)
	s.Day = attrString(attrs, AttrDay)
	s.Month = attrString(attrs, AttrMonth)
	s.MonthName = attrString(attrs, AttrMonthName)
	s.Year = attrString(attrs, AttrYear)
	s.SonsNumber = attrString(attrs, AttrSonsNumber)
	s.SonsNames = attrString(attrs, AttrSonsNames)
	s.EmergencyContact = attrString(attrs, AttrEmergencyContact)
	s.SessionCounter = attrInt(attrs, AttrSessionCounter)
	s.ReminderID = attrString(attrs, AttrReminderID)
	s.LastTimerID = attrString(attrs, AttrLastTimerID)
	s.Name = attrString(attrs, AttrName)
	s.Timezone = attrString(attrs, AttrTimezone)
	s.Count = attrInt(attrs, AttrCount)
	s.LastWordList = attrString(attrs, AttrLastWordList)
	s.Age = attrInt(attrs, AttrAge)
	s.DaysLeft = attrInt(attrs, AttrDaysLeft)
	return s
}

// Hydrate overlays durable attributes onto the state and marks it loaded.
// Only allow-listed keys can come from the store, so ephemeral fields keep
// their current values.
func (s *SessionState) Hydrate(attrs map[string]any) {
	s.Day = attrString(attrs, AttrDay)
	s.Month = attrString(attrs, AttrMonth)
	s.MonthName = attrString(attrs, AttrMonthName)
	s.Year = attrString(attrs, AttrYear)
	s.SonsNumber = attrString(attrs, AttrSonsNumber)
	s.SonsNames = attrString(attrs, AttrSonsNames)
	s.EmergencyContact = attrString(attrs, AttrEmergencyContact)
	s.SessionCounter = attrInt(attrs, AttrSessionCounter)
	s.ReminderID = attrString(attrs, AttrReminderID)
	s.LastTimerID = attrString(attrs, AttrLastTimerID)
	s.Loaded = true
}

// SessionAttributes renders the full state, ephemeral fields included, for
// the platform to carry into the next turn of this session.
func (s *SessionState) SessionAttributes() map[string]any {
	attrs := map[string]any{}
	if s.Loaded {
		attrs[AttrLoaded] = true
	}
	putString(attrs, AttrDay, s.Day)
	putString(attrs, AttrMonth, s.Month)
	putString(attrs, AttrMonthName, s.MonthName)
	putString(attrs, AttrYear, s.Year)
	putString(attrs, AttrSonsNumber, s.SonsNumber)
	putString(attrs, AttrSonsNames, s.SonsNames)
	putString(attrs, AttrEmergencyContact, s.EmergencyContact)
	if s.SessionCounter != 0 {
		attrs[AttrSessionCounter] = s.SessionCounter
	}
	putString(attrs, AttrReminderID, s.ReminderID)
	putString(attrs, AttrLastTimerID, s.LastTimerID)
	putString(attrs, AttrName, s.Name)
	putString(attrs, AttrTimezone, s.Timezone)
	if s.Count != 0 {
		attrs[AttrCount] = s.Count
	}
	putString(attrs, AttrLastWordList, s.LastWordList)
	if s.Age != 0 {
		attrs[AttrAge] = s.Age
	}
	if s.DaysLeft != 0 {
		attrs[AttrDaysLeft] = s.DaysLeft
	}
	return attrs
}

// PersistentAttributes renders only the allow-listed fields for the durable
// store. Ephemeral keys cannot appear here by construction.
func (s *SessionState) PersistentAttributes() map[string]any {
	attrs := map[string]any{}
	putString(attrs, AttrDay, s.Day)
	putString(attrs, AttrMonth, s.Month)
	putString(attrs, AttrMonthName, s.MonthName)
	putString(attrs, AttrYear, s.Year)
	putString(attrs, AttrSonsNumber, s.SonsNumber)
	putString(attrs, AttrSonsNames, s.SonsNames)
	putString(attrs, AttrEmergencyContact, s.EmergencyContact)
	if s.SessionCounter != 0 {
		attrs[AttrSessionCounter] = s.SessionCounter
	}
	putString(attrs, AttrReminderID, s.ReminderID)
	putString(attrs, AttrLastTimerID, s.LastTimerID)
	return attrs
}

// BirthdateAvailable reports whether all three birthdate parts are present.
func (s *SessionState) BirthdateAvailable() bool {
	return s.Day != "" && s.Month != "" && s.Year != ""
}

func putString(attrs map[string]any, key, value string) {
	if value != "" {
		attrs[key] = value
	}
}

func attrString(attrs map[string]any, key string) string {
	if v, ok := attrs[key].(string); ok {
		return v
	}
	return ""
}

func attrBool(attrs map[string]any, key string) bool {
	v, _ := attrs[key].(bool)
	return v
}

// attrInt tolerates float64 because attribute maps round-trip through JSON.
func attrInt(attrs map[string]any, key string) int {
	switch v := attrs[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
