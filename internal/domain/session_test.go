package domain

import "testing"

func TestIntentKindContinueRoutesOnResolvedSlot(t *testing.T) {
	yes := Intent{Name: "ContinueIntent", Slots: map[string]Slot{
		ContinueSlot: {Value: "sì", ResolvedID: "1"},
	}}
	if yes.Kind() != KindContinueYes {
		t.Errorf("yes answer: got %v", yes.Kind())
	}

	no := Intent{Name: "ContinueIntent", Slots: map[string]Slot{
		ContinueSlot: {Value: "no", ResolvedID: "0"},
	}}
	if no.Kind() != KindContinueNo {
		t.Errorf("no answer: got %v", no.Kind())
	}

	unresolved := Intent{Name: "ContinueIntent"}
	if unresolved.Kind() != KindUnknown {
		t.Errorf("unresolved answer: got %v", unresolved.Kind())
	}
}

func TestSessionStatePersistentAttributesAllowList(t *testing.T) {
	s := &SessionState{
		Loaded: true,
		Day:    "15", Month: "06", MonthName: "giugno", Year: "1950",
		SonsNumber: "2", SonsNames: "Anna", EmergencyContact: "Marco",
		SessionCounter: 5, ReminderID: "r-1", LastTimerID: "t-1",
		Name: "Maria", Timezone: "Europe/Rome", Count: 3,
		LastWordList: "topo", Age: 76, DaysLeft: 291,
	}

	attrs := s.PersistentAttributes()
	for key := range attrs {
		var allowed bool
		for _, name := range PersistentAttributeNames {
			if key == name {
				allowed = true
			}
		}
		if !allowed {
			t.Errorf("key %q escaped the persistence allow-list", key)
		}
	}
	if len(attrs) != len(PersistentAttributeNames) {
		t.Errorf("expected all %d durable keys, got %d", len(PersistentAttributeNames), len(attrs))
	}
}

func TestSessionRoundTripThroughAttributes(t *testing.T) {
	s := &SessionState{
		Loaded: true, Day: "15", Month: "06", Year: "1950",
		SessionCounter: 2, Count: 4, Name: "Maria",
	}

	got := SessionFromAttributes(s.SessionAttributes())
	if got.Day != "15" || got.Month != "06" || got.Year != "1950" {
		t.Errorf("birthdate lost in round trip: %+v", got)
	}
	if got.SessionCounter != 2 || got.Count != 4 || got.Name != "Maria" || !got.Loaded {
		t.Errorf("state lost in round trip: %+v", got)
	}
}

func TestSessionFromAttributesToleratesJSONNumbers(t *testing.T) {
	s := SessionFromAttributes(map[string]any{
		AttrSessionCounter: float64(7),
		AttrCount:          float64(2),
	})
	if s.SessionCounter != 7 || s.Count != 2 {
		t.Errorf("expected float64 attributes to decode, got %+v", s)
	}
}
