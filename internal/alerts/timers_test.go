package alerts

import (
	"context"
	"errors"
	"testing"
)

type scriptedTimerService struct {
	timers    []Timer
	listErr   error
	createRes Timer
	createErr error
	deleted   []string
	deleteAll int
	paused    []string
	resumed   []string
}

func (s *scriptedTimerService) List(context.Context, string) ([]Timer, error) {
	return s.timers, s.listErr
}
func (s *scriptedTimerService) Create(context.Context, string, TimerRequest) (Timer, error) {
	return s.createRes, s.createErr
}
func (s *scriptedTimerService) Delete(_ context.Context, _ string, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}
func (s *scriptedTimerService) DeleteAll(context.Context, string) error {
	s.deleteAll++
	return nil
}
func (s *scriptedTimerService) Pause(_ context.Context, _ string, id string) error {
	s.paused = append(s.paused, id)
	return nil
}
func (s *scriptedTimerService) Resume(_ context.Context, _ string, id string) error {
	s.resumed = append(s.resumed, id)
	return nil
}

func TestDeleteCachedOrAllPrefersCachedHandle(t *testing.T) {
	svc := &scriptedTimerService{timers: []Timer{{ID: "a"}, {ID: "b"}}}
	timers := NewTimers(svc)

	deleted, err := timers.DeleteCachedOrAll(context.Background(), "token", "a")
	if err != nil {
		t.Fatalf("DeleteCachedOrAll: %v", err)
	}
	if !deleted {
		t.Fatal("expected a deletion")
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != "a" {
		t.Errorf("expected single delete of cached handle, got %v", svc.deleted)
	}
	if svc.deleteAll != 0 {
		t.Error("cached handle must never trigger the delete-all fallback")
	}
}

func TestDeleteCachedOrAllFallsBackToDeleteAll(t *testing.T) {
	svc := &scriptedTimerService{timers: []Timer{{ID: "a"}, {ID: "b"}}}
	timers := NewTimers(svc)

	deleted, err := timers.DeleteCachedOrAll(context.Background(), "token", "")
	if err != nil {
		t.Fatalf("DeleteCachedOrAll: %v", err)
	}
	if !deleted || svc.deleteAll != 1 {
		t.Errorf("expected delete-all fallback, deleteAll = %d", svc.deleteAll)
	}
}

func TestDeleteCachedOrAllNothingToDelete(t *testing.T) {
	svc := &scriptedTimerService{}
	timers := NewTimers(svc)

	deleted, err := timers.DeleteCachedOrAll(context.Background(), "token", "")
	if err != nil {
		t.Fatalf("DeleteCachedOrAll: %v", err)
	}
	if deleted {
		t.Error("no timers means nothing deleted")
	}
	if svc.deleteAll != 0 {
		t.Error("empty list must not reach the service")
	}
}

func TestCreateRequiresRunningTimer(t *testing.T) {
	svc := &scriptedTimerService{createRes: Timer{ID: "t-1", Status: TimerOff}}
	timers := NewTimers(svc)

	if _, err := timers.Create(context.Background(), "token", TimerRequest{Duration: "PT5M"}); err == nil {
		t.Fatal("a timer that did not start must be reported as an error")
	}

	svc.createRes = Timer{ID: "t-1", Status: TimerOn}
	id, err := timers.Create(context.Background(), "token", TimerRequest{Duration: "PT5M"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != "t-1" {
		t.Errorf("id = %q, want t-1", id)
	}
}

func TestPauseAllSkipsNonRunningTimers(t *testing.T) {
	svc := &scriptedTimerService{timers: []Timer{
		{ID: "a", Status: TimerOn},
		{ID: "b", Status: TimerPaused},
		{ID: "c", Status: TimerOn},
	}}
	timers := NewTimers(svc)

	ok, err := timers.PauseAll(context.Background(), "token")
	if err != nil || !ok {
		t.Fatalf("PauseAll: ok=%v err=%v", ok, err)
	}
	if len(svc.paused) != 2 {
		t.Errorf("expected only running timers paused, got %v", svc.paused)
	}
}

func TestResumeAllOnlyTouchesPausedTimers(t *testing.T) {
	svc := &scriptedTimerService{timers: []Timer{
		{ID: "a", Status: TimerOn},
		{ID: "b", Status: TimerPaused},
	}}
	timers := NewTimers(svc)

	ok, err := timers.ResumeAll(context.Background(), "token")
	if err != nil || !ok {
		t.Fatalf("ResumeAll: ok=%v err=%v", ok, err)
	}
	if len(svc.resumed) != 1 || svc.resumed[0] != "b" {
		t.Errorf("expected only paused timer resumed, got %v", svc.resumed)
	}
}

func TestStatusFallsBackToMostRecentTimer(t *testing.T) {
	svc := &scriptedTimerService{timers: []Timer{{ID: "a", Status: TimerPaused}}}
	timers := NewTimers(svc)

	total, status, err := timers.Status(context.Background(), "token", "")
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if total != 1 || status != TimerPaused {
		t.Errorf("got total=%d status=%s", total, status)
	}
}

func TestStatusPropagatesListError(t *testing.T) {
	svc := &scriptedTimerService{listErr: ErrUnauthorized}
	timers := NewTimers(svc)

	_, _, err := timers.Status(context.Background(), "token", "")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
