package dialogue

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mfalcone/memoria/internal/alerts"
	"github.com/mfalcone/memoria/internal/domain"
	"github.com/mfalcone/memoria/internal/profile"
	"github.com/mfalcone/memoria/internal/store"
	"github.com/mfalcone/memoria/internal/texts"
)

var testNow = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

type fakeProfile struct {
	name     string
	nameErr  error
	email    string
	emailErr error
	number   profile.Number
	numErr   error
	timezone string
	tzErr    error
	addr     profile.Address
	addrErr  error
}

func (f *fakeProfile) GivenName(context.Context, string) (string, error) {
	return f.name, f.nameErr
}
func (f *fakeProfile) Email(context.Context, string) (string, error) {
	return f.email, f.emailErr
}
func (f *fakeProfile) MobileNumber(context.Context, string) (profile.Number, error) {
	return f.number, f.numErr
}
func (f *fakeProfile) Timezone(context.Context, string) (string, error) {
	return f.timezone, f.tzErr
}
func (f *fakeProfile) Address(context.Context, string, string) (profile.Address, error) {
	return f.addr, f.addrErr
}

type fakeReminderService struct {
	listCount int
	listErr   error
	createErr error
	deleteErr error
	created   []alerts.ReminderRequest
	deleted   []string
}

func (f *fakeReminderService) List(context.Context, string) (alerts.ReminderList, error) {
	return alerts.ReminderList{TotalCount: f.listCount}, f.listErr
}
func (f *fakeReminderService) Create(_ context.Context, _ string, req alerts.ReminderRequest) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, req)
	return "reminder-1", nil
}
func (f *fakeReminderService) Delete(_ context.Context, _ string, handle string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, handle)
	return nil
}

type fakeTimerService struct {
	timers    []alerts.Timer
	listErr   error
	createErr error
	deleted   []string
	deleteAll int
	paused    []string
	resumed   []string
}

func (f *fakeTimerService) List(context.Context, string) ([]alerts.Timer, error) {
	return f.timers, f.listErr
}
func (f *fakeTimerService) Create(context.Context, string, alerts.TimerRequest) (alerts.Timer, error) {
	if f.createErr != nil {
		return alerts.Timer{}, f.createErr
	}
	return alerts.Timer{ID: "timer-1", Status: alerts.TimerOn}, nil
}
func (f *fakeTimerService) Delete(_ context.Context, _ string, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}
func (f *fakeTimerService) DeleteAll(context.Context, string) error {
	f.deleteAll++
	return nil
}
func (f *fakeTimerService) Pause(_ context.Context, _ string, id string) error {
	f.paused = append(f.paused, id)
	return nil
}
func (f *fakeTimerService) Resume(_ context.Context, _ string, id string) error {
	f.resumed = append(f.resumed, id)
	return nil
}

type failingStore struct {
	saves int
}

func (f *failingStore) Load(context.Context, string) (map[string]any, error) {
	return nil, errors.New("store unavailable")
}
func (f *failingStore) Save(context.Context, string, map[string]any) error {
	f.saves++
	return nil
}
func (f *failingStore) Ping(context.Context) error { return nil }
func (f *failingStore) Close() error               { return nil }

type testEnv struct {
	ctrl      *Controller
	store     *store.MemoryStore
	profile   *fakeProfile
	reminders *fakeReminderService
	timers    *fakeTimerService
	tr        texts.Translator
}

func newTestEnv() *testEnv {
	env := &testEnv{
		store:     store.NewMemory(),
		profile:   &fakeProfile{name: "Maria", timezone: "Europe/Rome"},
		reminders: &fakeReminderService{},
		timers:    &fakeTimerService{},
		tr:        texts.Default(),
	}
	env.ctrl = New(env.store, env.profile, env.reminders, env.timers, env.tr)
	env.ctrl.now = func() time.Time { return testNow }
	return env
}

func (e *testEnv) seedProfile(t *testing.T, userID string) {
	t.Helper()
	err := e.store.Save(context.Background(), userID, map[string]any{
		domain.AttrDay: "15", domain.AttrMonth: "06", domain.AttrMonthName: "giugno",
		domain.AttrYear: "1950", domain.AttrSonsNumber: "2",
		domain.AttrSonsNames: "Anna e Marco", domain.AttrEmergencyContact: "Anna",
		domain.AttrSessionCounter: 3,
	})
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
}

func intentEvent(name string, status domain.ConfirmationStatus, slots map[string]domain.Slot) domain.Event {
	return domain.Event{
		Type:         domain.RequestIntent,
		UserID:       "user-1",
		DeviceID:     "device-1",
		SessionID:    "session-1",
		NewSession:   true,
		Locale:       "it-IT",
		ConsentToken: "token",
		Intent: domain.Intent{
			Name:               name,
			ConfirmationStatus: status,
			Slots:              slots,
		},
	}
}

func delegateTarget(t *testing.T, resp domain.Response) string {
	t.Helper()
	for _, d := range resp.Directives {
		if dd, ok := d.(domain.DelegateDirective); ok {
			return dd.IntentName
		}
	}
	t.Fatalf("no delegate directive in %+v", resp.Directives)
	return ""
}

func TestLaunchWithoutBirthdateChainsIntoRegistration(t *testing.T) {
	env := newTestEnv()
	ev := domain.Event{
		Type: domain.RequestLaunch, UserID: "user-1", DeviceID: "device-1",
		NewSession: true, ConsentToken: "token",
	}

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	if got := delegateTarget(t, resp); got != "RegisterBirthdayIntent" {
		t.Errorf("expected birthdate registration, got %q", got)
	}
	if !strings.Contains(resp.Speech, env.tr.T(texts.Missing)) {
		t.Errorf("expected missing-data message, got %q", resp.Speech)
	}
}

func TestLaunchWelcomesBackReturningUser(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t, "user-1")
	ev := domain.Event{
		Type: domain.RequestLaunch, UserID: "user-1", DeviceID: "device-1",
		NewSession: true, ConsentToken: "token",
	}

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	if !strings.Contains(resp.Speech, env.tr.T(texts.WelcomeBack, "Maria")) {
		t.Errorf("expected welcome back greeting, got %q", resp.Speech)
	}
	if len(resp.Directives) != 0 {
		t.Errorf("complete profile must not delegate, got %+v", resp.Directives)
	}
}

func TestRegisterBirthdayContinuesChain(t *testing.T) {
	env := newTestEnv()
	ev := intentEvent("RegisterBirthdayIntent", domain.ConfirmationConfirmed, map[string]domain.Slot{
		"day":   {Value: "15"},
		"month": {Value: "giugno", ResolvedID: "06"},
		"year":  {Value: "1950"},
	})

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	if got := delegateTarget(t, resp); got != "RegisterSonsNumberIntent" {
		t.Errorf("expected sons number collection next, got %q", got)
	}
	if resp.SessionAttributes[domain.AttrMonth] != "06" {
		t.Errorf("month must store the resolved id, got %v", resp.SessionAttributes[domain.AttrMonth])
	}
	if resp.SessionAttributes[domain.AttrMonthName] != "giugno" {
		t.Errorf("month name must store the spoken value, got %v", resp.SessionAttributes[domain.AttrMonthName])
	}
}

func TestRegisterBirthdayDeclinedConfirmation(t *testing.T) {
	env := newTestEnv()
	ev := intentEvent("RegisterBirthdayIntent", domain.ConfirmationDenied, map[string]domain.Slot{
		"day": {Value: "15"},
	})

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	if resp.Speech != env.tr.T(texts.Rejected) {
		t.Errorf("expected rejection message, got %q", resp.Speech)
	}
	if _, ok := resp.SessionAttributes[domain.AttrDay]; ok {
		t.Error("declined confirmation must not store slots")
	}
}

func TestSaySonsNumberDelegatesBirthdateFirst(t *testing.T) {
	env := newTestEnv()
	ev := intentEvent("SaySonsNumberIntent", domain.ConfirmationNone, nil)

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	if got := delegateTarget(t, resp); got != "RegisterBirthdayIntent" {
		t.Errorf("incomplete birthdate must collect birthdate first, got %q", got)
	}
}

func TestSayBirthdayCountsDaysAndAge(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t, "user-1")
	ev := intentEvent("SayBirthdayIntent", domain.ConfirmationNone, nil)

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	// Born 15.06.1950, today 28.08.2026: 291 days to go, turning 77.
	if !strings.Contains(resp.Speech, env.tr.T(texts.DaysLeft, "Maria", 291)) {
		t.Errorf("expected days-left message, got %q", resp.Speech)
	}
	if !strings.Contains(resp.Speech, env.tr.T(texts.WillTurn, 77)) {
		t.Errorf("expected will-turn message, got %q", resp.Speech)
	}
}

func TestSayBirthdayOnTheDaySelectsGreeting(t *testing.T) {
	env := newTestEnv()
	err := env.store.Save(context.Background(), "user-1", map[string]any{
		domain.AttrDay: "28", domain.AttrMonth: "08", domain.AttrYear: "1946",
		domain.AttrSonsNumber: "2", domain.AttrSonsNames: "Anna e Marco",
		domain.AttrEmergencyContact: "Anna",
	})
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	ev := intentEvent("SayBirthdayIntent", domain.ConfirmationNone, nil)

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	// Born 28.08.1946, today 28.08.2026: the birthday greeting, not the
	// countdown.
	if !strings.Contains(resp.Speech, env.tr.T(texts.Greet, "Maria")) {
		t.Errorf("expected birthday greeting, got %q", resp.Speech)
	}
	if !strings.Contains(resp.Speech, env.tr.T(texts.NowTurn, 80)) {
		t.Errorf("expected now-turning message, got %q", resp.Speech)
	}
	if strings.Contains(resp.Speech, env.tr.T(texts.Birthdate)) {
		t.Errorf("birthday today must not speak the countdown, got %q", resp.Speech)
	}
}

func TestSayBirthdayWithoutTimezoneIsTerminal(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t, "user-1")
	env.profile.timezone = ""
	env.profile.tzErr = profile.ErrNotSet
	ev := intentEvent("SayBirthdayIntent", domain.ConfirmationNone, nil)

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	if resp.Speech != env.tr.T(texts.NoTimezone) {
		t.Errorf("expected no-timezone message, got %q", resp.Speech)
	}
	for _, d := range resp.Directives {
		if _, ok := d.(domain.DelegateDirective); ok {
			t.Error("missing timezone has no collection dialogue, must not delegate")
		}
	}
}

func TestUnknownIntentIsReflected(t *testing.T) {
	env := newTestEnv()
	ev := intentEvent("WeatherIntent", domain.ConfirmationNone, nil)

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	if resp.Speech != env.tr.T(texts.Reflector, "WeatherIntent") {
		t.Errorf("expected reflected intent name, got %q", resp.Speech)
	}
	if !resp.EndSession {
		t.Error("reflected intent should close the session")
	}
}

func TestContinueYesAdvancesChecklist(t *testing.T) {
	env := newTestEnv()
	ev := intentEvent("ContinueIntent", domain.ConfirmationNone, map[string]domain.Slot{
		domain.ContinueSlot: {Value: "sì", ResolvedID: "1"},
	})

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	if !strings.HasPrefix(resp.Speech, env.tr.T(texts.ChecklistFirst)) {
		t.Errorf("first checklist item should carry the opening prefix, got %q", resp.Speech)
	}
	if resp.SessionAttributes[domain.AttrCount] != 1 {
		t.Errorf("checklist must advance the shared counter, got %v", resp.SessionAttributes[domain.AttrCount])
	}
}

func TestContinueNoSaysGoodbye(t *testing.T) {
	env := newTestEnv()
	ev := intentEvent("ContinueIntent", domain.ConfirmationNone, map[string]domain.Slot{
		domain.ContinueSlot: {Value: "no", ResolvedID: "0"},
	})

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	if !resp.EndSession {
		t.Error("a negative continue answer must end the session")
	}
	if !strings.Contains(resp.Speech, env.tr.T(texts.Goodbye, "Maria")) {
		t.Errorf("expected goodbye, got %q", resp.Speech)
	}
}

func TestChecklistCompletionEndsSession(t *testing.T) {
	env := newTestEnv()
	ev := intentEvent("GoOutIntent", domain.ConfirmationNone, nil)
	ev.NewSession = false
	ev.SessionAttributes = map[string]any{
		domain.AttrLoaded: true,
		domain.AttrCount:  len(contentLists[ListGoOut]) - 1,
	}

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	if !resp.EndSession {
		t.Error("final checklist item must end the session")
	}
	if !strings.Contains(resp.Speech, env.tr.T(texts.ChecklistDone)) {
		t.Errorf("expected completion message, got %q", resp.Speech)
	}
}

func TestRepeatReplaysCachedWordList(t *testing.T) {
	env := newTestEnv()
	ev := intentEvent("AMAZON.RepeatIntent", domain.ConfirmationNone, nil)
	ev.NewSession = false
	ev.SessionAttributes = map[string]any{
		domain.AttrLoaded:       true,
		domain.AttrLastWordList: " topo . giallo . ",
	}

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	if resp.Speech != " topo . giallo . " {
		t.Errorf("repeat must replay the cached list verbatim, got %q", resp.Speech)
	}
	if resp.Reprompt != resp.Speech {
		t.Error("repeat reprompts with the same list")
	}
}

func TestQuestionnaireStepFiveContinuesStory(t *testing.T) {
	env := newTestEnv()
	ev := intentEvent("FifthQuestionIntent", domain.ConfirmationNone, map[string]domain.Slot{
		"response": {Value: "alle otto"},
	})

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	for _, key := range []texts.Key{texts.Answer5, texts.Story4, texts.Story5, texts.Story6, texts.GameInstruction} {
		if !strings.Contains(resp.Speech, env.tr.T(key)) {
			t.Errorf("step five speech missing %s", key)
		}
	}
	if got := delegateTarget(t, resp); got != "SixthQuestionIntent" {
		t.Errorf("expected question six next, got %q", got)
	}
}

func TestQuestionnaireFinalStepClosesGame(t *testing.T) {
	env := newTestEnv()
	ev := intentEvent("TenthQuestionIntent", domain.ConfirmationNone, nil)

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	if !strings.Contains(resp.Speech, env.tr.T(texts.EndGame)) {
		t.Errorf("expected end-of-game message, got %q", resp.Speech)
	}
	for _, d := range resp.Directives {
		if _, ok := d.(domain.DelegateDirective); ok {
			t.Error("final step must not delegate further")
		}
	}
}

func TestConfirmationGatedContentDeclined(t *testing.T) {
	env := newTestEnv()
	ev := intentEvent("DementiaInfoIntent", domain.ConfirmationDenied, nil)

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	if strings.Contains(resp.Speech, env.tr.T(texts.Dementia)) {
		t.Error("declined confirmation must not speak the content")
	}
	if !strings.Contains(resp.Speech, env.tr.T(texts.OK)) {
		t.Errorf("expected brief acknowledgement, got %q", resp.Speech)
	}
}

func TestRemindBirthdayUnauthorizedAttachesCard(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t, "user-1")
	env.reminders.listErr = alerts.ErrUnauthorized
	ev := intentEvent("RemindBirthdayIntent", domain.ConfirmationConfirmed, map[string]domain.Slot{
		"message": {Value: "è il tuo compleanno"},
	})

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	if !strings.Contains(resp.Speech, env.tr.T(texts.MissingPermission)) {
		t.Errorf("expected permission message, got %q", resp.Speech)
	}
	var found bool
	for _, d := range resp.Directives {
		if card, ok := d.(domain.PermissionsCardDirective); ok {
			for _, scope := range card.Scopes {
				if scope == domain.PermissionReminders {
					found = true
				}
			}
		}
	}
	if !found {
		t.Errorf("expected reminders permission card, got %+v", resp.Directives)
	}
}

func TestRemindBirthdaySupersedesPreviousReminder(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t, "user-1")
	env.reminders.listCount = 1
	ev := intentEvent("RemindBirthdayIntent", domain.ConfirmationConfirmed, map[string]domain.Slot{
		"message": {Value: "auguri"},
	})
	ev.NewSession = false
	ev.SessionAttributes = map[string]any{
		domain.AttrLoaded: true,
		domain.AttrDay:    "15", domain.AttrMonth: "06", domain.AttrYear: "1950",
		domain.AttrReminderID: "reminder-0",
	}

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	if len(env.reminders.deleted) != 1 || env.reminders.deleted[0] != "reminder-0" {
		t.Errorf("expected previous reminder deleted, got %v", env.reminders.deleted)
	}
	if resp.SessionAttributes[domain.AttrReminderID] != "reminder-1" {
		t.Errorf("expected new reminder handle cached, got %v", resp.SessionAttributes[domain.AttrReminderID])
	}
	if !strings.Contains(resp.Speech, env.tr.T(texts.ReminderCreated, "Maria")) {
		t.Errorf("expected creation message, got %q", resp.Speech)
	}
}

func TestSetTimerUnauthorizedAsksByVoice(t *testing.T) {
	env := newTestEnv()
	env.timers.createErr = alerts.ErrUnauthorized
	ev := intentEvent("SetTimerIntent", domain.ConfirmationNone, map[string]domain.Slot{
		"duration": {Value: "PT10M"},
		"tmessage": {Value: "prendere le medicine"},
	})

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	var found bool
	for _, d := range resp.Directives {
		if vp, ok := d.(domain.VoicePermissionDirective); ok && vp.Scope == domain.PermissionTimers {
			found = true
		}
	}
	if !found {
		t.Errorf("expected voice permission request, got %+v", resp.Directives)
	}
}

func TestDeleteTimerWithoutHandleDeletesAll(t *testing.T) {
	env := newTestEnv()
	env.timers.timers = []alerts.Timer{{ID: "a", Status: alerts.TimerOn}, {ID: "b", Status: alerts.TimerOn}}
	ev := intentEvent("DeleteTimerIntent", domain.ConfirmationNone, nil)

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	if env.timers.deleteAll != 1 {
		t.Errorf("expected the delete-all fallback, deleteAll = %d", env.timers.deleteAll)
	}
	if !strings.Contains(resp.Speech, env.tr.T(texts.DeleteTimerOK)) {
		t.Errorf("expected delete confirmation, got %q", resp.Speech)
	}
}

func TestStopPersistsAndIncrementsSessionCounter(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t, "user-1")
	ev := intentEvent("AMAZON.StopIntent", domain.ConfirmationNone, nil)

	resp := env.ctrl.HandleTurn(context.Background(), ev)
	if !resp.EndSession {
		t.Fatal("stop must end the session")
	}

	saved, err := env.store.Load(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("load after save: %v", err)
	}
	if got := saved[domain.AttrSessionCounter]; got != 4 {
		t.Errorf("session counter = %v, want 4", got)
	}
	for _, key := range []string{domain.AttrName, domain.AttrTimezone, domain.AttrCount, domain.AttrLoaded} {
		if _, ok := saved[key]; ok {
			t.Errorf("ephemeral key %q must never be persisted", key)
		}
	}
}

func TestSessionEndedPersistsLoadedSession(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t, "user-1")
	ev := domain.Event{
		Type: domain.RequestSessionEnded, UserID: "user-1", DeviceID: "device-1",
		NewSession: false, EndedReason: "USER_INITIATED", ConsentToken: "token",
		SessionAttributes: map[string]any{
			domain.AttrLoaded: true,
			domain.AttrDay:    "15", domain.AttrMonth: "06", domain.AttrYear: "1950",
			domain.AttrSessionCounter: 3,
		},
	}

	env.ctrl.HandleTurn(context.Background(), ev)

	saved, _ := env.store.Load(context.Background(), "user-1")
	if got := saved[domain.AttrSessionCounter]; got != 4 {
		t.Errorf("session counter = %v, want 4", got)
	}
}

func TestOpenEndedTurnDoesNotPersist(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t, "user-1")
	ev := intentEvent("SayBirthdayIntent", domain.ConfirmationNone, nil)

	env.ctrl.HandleTurn(context.Background(), ev)

	saved, _ := env.store.Load(context.Background(), "user-1")
	if got := saved[domain.AttrSessionCounter]; got != 3 {
		t.Errorf("mid-session turn must not save, counter = %v", got)
	}
}

func TestUnhydratedSessionNeverSaves(t *testing.T) {
	fs := &failingStore{}
	env := newTestEnv()
	ctrl := New(fs, env.profile, env.reminders, env.timers, env.tr)
	ctrl.now = func() time.Time { return testNow }

	ev := intentEvent("AMAZON.StopIntent", domain.ConfirmationNone, nil)
	resp := ctrl.HandleTurn(context.Background(), ev)

	if !resp.EndSession {
		t.Fatal("stop must still end the session")
	}
	if fs.saves != 0 {
		t.Errorf("a session that never hydrated must not save, saves = %d", fs.saves)
	}
}

func TestConsentResultAcceptedKeepsSessionOpen(t *testing.T) {
	env := newTestEnv()
	ev := domain.Event{
		Type: domain.RequestConnections, UserID: "user-1", DeviceID: "device-1",
		NewSession: false, ConsentToken: "token",
		SessionAttributes: map[string]any{domain.AttrLoaded: true},
		Connections: &domain.ConnectionsResult{
			Name: "AskFor", StatusCode: "200", PayloadStatus: domain.ConsentAccepted,
		},
	}

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	if resp.EndSession {
		t.Error("accepted consent keeps the session open")
	}
	if !strings.Contains(resp.Speech, env.tr.T(texts.VoicePermissionAccepted)) {
		t.Errorf("expected acceptance message, got %q", resp.Speech)
	}
}

func TestConsentResultDeniedWithoutCardSendsCard(t *testing.T) {
	env := newTestEnv()
	ev := domain.Event{
		Type: domain.RequestConnections, UserID: "user-1", DeviceID: "device-1",
		NewSession: false, ConsentToken: "token",
		SessionAttributes: map[string]any{domain.AttrLoaded: true},
		Connections: &domain.ConnectionsResult{
			Name: "AskFor", StatusCode: "200", PayloadStatus: domain.ConsentDenied,
		},
	}

	resp := env.ctrl.HandleTurn(context.Background(), ev)

	var found bool
	for _, d := range resp.Directives {
		if card, ok := d.(domain.PermissionsCardDirective); ok {
			for _, scope := range card.Scopes {
				if scope == domain.PermissionTimers {
					found = true
				}
			}
		}
	}
	if !found {
		t.Errorf("expected a timers consent card, got %+v", resp.Directives)
	}
}
