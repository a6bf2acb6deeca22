package giveaway

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/PancyStudios/MysteryBoxGo/pkg/models"
	"github.com/PancyStudios/MysteryBoxGo/pkg/storage"
)

// recordingListener captures lifecycle events for assertions
type recordingListener struct {
	mu        sync.Mutex
	created   []*models.Giveaway
	joined    []string
	resolved  []*Resolution
	cancelled []*models.Giveaway
}

func (r *recordingListener) GiveawayCreated(g *models.Giveaway) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, g)
}

func (r *recordingListener) ParticipantJoined(g *models.Giveaway, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.joined = append(r.joined, userID)
}

func (r *recordingListener) GiveawayResolved(res *Resolution) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved = append(r.resolved, res)
}

func (r *recordingListener) GiveawayCancelled(g *models.Giveaway) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelled = append(r.cancelled, g)
}

func (r *recordingListener) resolvedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.resolved)
}

func (r *recordingListener) lastResolution() *Resolution {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.resolved) == 0 {
		return nil
	}
	return r.resolved[len(r.resolved)-1]
}

// newTestEngine creates an engine over a throwaway file store
func newTestEngine(t *testing.T) (*Engine, *recordingListener) {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() returned error: %v", err)
	}

	e, err := NewEngine(store)
	if err != nil {
		t.Fatalf("NewEngine() returned error: %v", err)
	}
	t.Cleanup(e.Stop)

	listener := &recordingListener{}
	e.AddListener(listener)
	return e, listener
}

func TestCreateRejectsInvalidDuration(t *testing.T) {
	e, _ := newTestEngine(t)

	_, err := e.Create("Test", "", 0, "creator", "guild", "channel")
	if !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Create() error = %v, want ErrInvalidDuration", err)
	}

	_, err = e.Create("Test", "", -time.Minute, "creator", "guild", "channel")
	if !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Create() error = %v, want ErrInvalidDuration", err)
	}
}

func TestJoinIsIdempotent(t *testing.T) {
	e, _ := newTestEngine(t)

	g, err := e.Create("Test", "desc", time.Hour, "creator", "guild", "channel")
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	if err := e.Join(g.ID, "user1"); err != nil {
		t.Fatalf("Join() returned error: %v", err)
	}

	if err := e.Join(g.ID, "user1"); !errors.Is(err, ErrAlreadyJoined) {
		t.Errorf("second Join() error = %v, want ErrAlreadyJoined", err)
	}

	got, err := e.Giveaway(g.ID)
	if err != nil {
		t.Fatalf("Giveaway() returned error: %v", err)
	}
	if len(got.Participants) != 1 {
		t.Errorf("Participants = %d, want 1", len(got.Participants))
	}
}

func TestJoinUnknownGiveaway(t *testing.T) {
	e, _ := newTestEngine(t)

	if err := e.Join("missing", "user1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Join() error = %v, want ErrNotFound", err)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	e, listener := newTestEngine(t)

	g, err := e.Create("Test", "desc", time.Hour, "creator", "guild", "channel")
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if err := e.Join(g.ID, "user1"); err != nil {
		t.Fatalf("Join() returned error: %v", err)
	}

	if err := e.EndEarly(g.ID); err != nil {
		t.Fatalf("EndEarly() returned error: %v", err)
	}

	if err := e.EndEarly(g.ID); !errors.Is(err, ErrAlreadyEnded) {
		t.Errorf("second EndEarly() error = %v, want ErrAlreadyEnded", err)
	}

	if got := listener.resolvedCount(); got != 1 {
		t.Errorf("resolved events = %d, want 1", got)
	}
}

func TestWinnerIsParticipant(t *testing.T) {
	e, listener := newTestEngine(t)

	g, err := e.Create("Test", "desc", time.Hour, "creator", "guild", "channel")
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	participants := map[string]bool{"a": true, "b": true, "c": true}
	for userID := range participants {
		if err := e.Join(g.ID, userID); err != nil {
			t.Fatalf("Join(%s) returned error: %v", userID, err)
		}
	}

	if err := e.EndEarly(g.ID); err != nil {
		t.Fatalf("EndEarly() returned error: %v", err)
	}

	res := listener.lastResolution()
	if res == nil {
		t.Fatal("no resolution event received")
	}
	if !participants[res.WinnerID] {
		t.Errorf("winner %q is not a participant", res.WinnerID)
	}
	if res.Outcome != models.OutcomeWon {
		t.Errorf("Outcome = %q, want %q", res.Outcome, models.OutcomeWon)
	}
}

func TestResolutionWithoutParticipants(t *testing.T) {
	e, listener := newTestEngine(t)

	g, err := e.Create("Test", "desc", time.Hour, "creator", "guild", "channel")
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	if err := e.EndEarly(g.ID); err != nil {
		t.Fatalf("EndEarly() returned error: %v", err)
	}

	res := listener.lastResolution()
	if res == nil {
		t.Fatal("no resolution event received")
	}
	if res.WinnerID != "" {
		t.Errorf("WinnerID = %q, want empty", res.WinnerID)
	}
	if res.Outcome != models.OutcomeNoWinner {
		t.Errorf("Outcome = %q, want %q", res.Outcome, models.OutcomeNoWinner)
	}
}

func TestPrizePrecedence(t *testing.T) {
	e, listener := newTestEngine(t)

	// Placeholder when nothing is configured
	g1, _ := e.Create("First", "", time.Hour, "creator", "guild1", "channel")
	e.Join(g1.ID, "user1")
	e.EndEarly(g1.ID)
	if res := listener.lastResolution(); res.Prize != DefaultPrize {
		t.Errorf("Prize = %q, want %q", res.Prize, DefaultPrize)
	}

	// Catalog prize when no assignment exists
	if err := e.AddPrize("1", "Catalog Prize"); err != nil {
		t.Fatalf("AddPrize() returned error: %v", err)
	}
	g2, _ := e.Create("Second", "", time.Hour, "creator", "guild2", "channel")
	e.Join(g2.ID, "user1")
	e.EndEarly(g2.ID)
	if res := listener.lastResolution(); res.Prize != "Catalog Prize" {
		t.Errorf("Prize = %q, want %q", res.Prize, "Catalog Prize")
	}

	// Assigned prizes win over the catalog
	if err := e.AddPrize("2", "Assigned Prize"); err != nil {
		t.Fatalf("AddPrize() returned error: %v", err)
	}
	g3, _ := e.Create("Third", "", time.Hour, "creator", "guild3", "channel")
	if _, _, err := e.AssignPrizes(g3.ID, "2"); err != nil {
		t.Fatalf("AssignPrizes() returned error: %v", err)
	}
	e.Join(g3.ID, "user1")
	e.EndEarly(g3.ID)
	if res := listener.lastResolution(); res.Prize != "Assigned Prize" {
		t.Errorf("Prize = %q, want %q", res.Prize, "Assigned Prize")
	}
}

func TestCancelIsNotNoWinner(t *testing.T) {
	e, listener := newTestEngine(t)

	g, err := e.Create("Test", "desc", time.Hour, "creator", "guild", "channel")
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	if err := e.Cancel(g.ID); err != nil {
		t.Fatalf("Cancel() returned error: %v", err)
	}

	if got := listener.resolvedCount(); got != 0 {
		t.Errorf("resolved events after cancel = %d, want 0", got)
	}
	listener.mu.Lock()
	cancelledEvents := len(listener.cancelled)
	listener.mu.Unlock()
	if cancelledEvents != 1 {
		t.Errorf("cancelled events = %d, want 1", cancelledEvents)
	}

	got, err := e.Giveaway(g.ID)
	if err != nil {
		t.Fatalf("Giveaway() returned error: %v", err)
	}
	if !got.Ended {
		t.Error("cancelled giveaway should be ended")
	}
	if got.Outcome != models.OutcomeCancelled {
		t.Errorf("Outcome = %q, want %q", got.Outcome, models.OutcomeCancelled)
	}

	if err := e.Cancel(g.ID); !errors.Is(err, ErrAlreadyEnded) {
		t.Errorf("second Cancel() error = %v, want ErrAlreadyEnded", err)
	}
}

func TestRescheduleEndedGiveawayFails(t *testing.T) {
	e, _ := newTestEngine(t)

	g, err := e.Create("Test", "desc", time.Hour, "creator", "guild", "channel")
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if err := e.EndEarly(g.ID); err != nil {
		t.Fatalf("EndEarly() returned error: %v", err)
	}

	before, _ := e.Giveaway(g.ID)

	err = e.Reschedule(g.ID, time.Now().Add(2*time.Hour))
	if !errors.Is(err, ErrAlreadyEnded) {
		t.Errorf("Reschedule() error = %v, want ErrAlreadyEnded", err)
	}

	after, _ := e.Giveaway(g.ID)
	if after.EndTime != before.EndTime {
		t.Errorf("EndTime changed from %d to %d after failed reschedule", before.EndTime, after.EndTime)
	}
}

func TestRescheduleRejectsPastTime(t *testing.T) {
	e, _ := newTestEngine(t)

	g, err := e.Create("Test", "desc", time.Hour, "creator", "guild", "channel")
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	err = e.Reschedule(g.ID, time.Now().Add(-time.Minute))
	if !errors.Is(err, ErrPastTimestamp) {
		t.Errorf("Reschedule() error = %v, want ErrPastTimestamp", err)
	}
}

func TestRescheduleMovesEndTime(t *testing.T) {
	e, _ := newTestEngine(t)

	g, err := e.Create("Test", "desc", time.Hour, "creator", "guild", "channel")
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	newEnd := time.Now().Add(3 * time.Hour)
	if err := e.Reschedule(g.ID, newEnd); err != nil {
		t.Fatalf("Reschedule() returned error: %v", err)
	}

	got, _ := e.Giveaway(g.ID)
	if got.EndTime != newEnd.Unix() {
		t.Errorf("EndTime = %d, want %d", got.EndTime, newEnd.Unix())
	}
}

func TestTimerFiresResolution(t *testing.T) {
	e, listener := newTestEngine(t)

	g, err := e.Create("Test", "desc", 50*time.Millisecond, "creator", "guild", "channel")
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if err := e.Join(g.ID, "user1"); err != nil {
		t.Fatalf("Join() returned error: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for listener.resolvedCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("timer did not resolve the giveaway")
		case <-time.After(10 * time.Millisecond):
		}
	}

	got, _ := e.Giveaway(g.ID)
	if !got.Ended {
		t.Error("giveaway should be ended after the timer fired")
	}
}

func TestRecoverResolvesMissedGiveaways(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() returned error: %v", err)
	}

	// Seed the store with one past-due and one future giveaway
	seed := map[string]*models.Giveaway{
		"guild-1": {
			ID:           "guild-1",
			Title:        "Missed",
			EndTime:      time.Now().Add(-time.Hour).Unix(),
			Participants: []string{"user1", "user2"},
		},
		"guild-2": {
			ID:           "guild-2",
			Title:        "Still open",
			EndTime:      time.Now().Add(time.Hour).Unix(),
			Participants: []string{},
		},
	}
	if err := store.Save(storage.CollectionGiveaways, seed); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	e, err := NewEngine(store)
	if err != nil {
		t.Fatalf("NewEngine() returned error: %v", err)
	}
	t.Cleanup(e.Stop)

	listener := &recordingListener{}
	e.AddListener(listener)

	e.Recover()

	if got := listener.resolvedCount(); got != 1 {
		t.Fatalf("resolved events after Recover() = %d, want 1", got)
	}

	res := listener.lastResolution()
	if res.Giveaway.ID != "guild-1" {
		t.Errorf("resolved giveaway = %s, want guild-1", res.Giveaway.ID)
	}
	if res.WinnerID != "user1" && res.WinnerID != "user2" {
		t.Errorf("winner %q is not a seeded participant", res.WinnerID)
	}

	open, err := e.Giveaway("guild-2")
	if err != nil {
		t.Fatalf("Giveaway() returned error: %v", err)
	}
	if open.Ended {
		t.Error("future giveaway should still be open after Recover()")
	}

	active := e.ActiveGiveaways()
	if len(active) != 1 || active[0].ID != "guild-2" {
		t.Errorf("ActiveGiveaways() = %v, want only guild-2", active)
	}
}

func TestStaleTimerFireSkipsRescheduledGiveaway(t *testing.T) {
	e, listener := newTestEngine(t)

	g, err := e.Create("Test", "desc", time.Hour, "creator", "guild", "channel")
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	// A timer fire that lost the race against a reschedule sees a future
	// end time and must leave the giveaway open
	e.resolve(g.ID, false)

	if got := listener.resolvedCount(); got != 0 {
		t.Errorf("resolved events after stale fire = %d, want 0", got)
	}
	got, err := e.Giveaway(g.ID)
	if err != nil {
		t.Fatalf("Giveaway() returned error: %v", err)
	}
	if got.Ended {
		t.Error("giveaway ended by a stale timer fire")
	}

	// A deliberate end still resolves ahead of the end time
	if err := e.EndEarly(g.ID); err != nil {
		t.Fatalf("EndEarly() returned error: %v", err)
	}
	if got := listener.resolvedCount(); got != 1 {
		t.Errorf("resolved events after EndEarly() = %d, want 1", got)
	}
}

func TestListenerRegistrationDuringEvents(t *testing.T) {
	e, listener := newTestEngine(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			e.AddListener(&recordingListener{})
		}
	}()

	for i := 0; i < 10; i++ {
		g, err := e.Create("Test", "", time.Hour, "creator", fmt.Sprintf("guild%d", i), "channel")
		if err != nil {
			t.Fatalf("Create() returned error: %v", err)
		}
		if err := e.EndEarly(g.ID); err != nil {
			t.Fatalf("EndEarly() returned error: %v", err)
		}
	}
	<-done

	if got := listener.resolvedCount(); got != 10 {
		t.Errorf("resolved events = %d, want 10", got)
	}
}

func TestLoadLegacyFractionalEndTime(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() returned error: %v", err)
	}

	// Older records carry fractional Unix timestamps
	raw := fmt.Sprintf(`{"guild-1": {"id":"guild-1","title":"Legacy","end_time":%.6f,"participants":["user1"]}}`,
		float64(time.Now().Add(-time.Hour).Unix())+0.123456)
	if err := os.WriteFile(filepath.Join(dir, "giveaways.json"), []byte(raw), 0644); err != nil {
		t.Fatalf("WriteFile() returned error: %v", err)
	}

	e, err := NewEngine(store)
	if err != nil {
		t.Fatalf("NewEngine() with legacy data returned error: %v", err)
	}
	t.Cleanup(e.Stop)

	listener := &recordingListener{}
	e.AddListener(listener)
	e.Recover()

	if got := listener.resolvedCount(); got != 1 {
		t.Fatalf("resolved events after Recover() = %d, want 1", got)
	}
	if res := listener.lastResolution(); res.WinnerID != "user1" {
		t.Errorf("winner = %q, want user1", res.WinnerID)
	}
}

func TestStateSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() returned error: %v", err)
	}

	e1, err := NewEngine(store)
	if err != nil {
		t.Fatalf("NewEngine() returned error: %v", err)
	}

	g, err := e1.Create("Persistent", "desc", time.Hour, "creator", "guild", "channel")
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if err := e1.Join(g.ID, "user1"); err != nil {
		t.Fatalf("Join() returned error: %v", err)
	}
	e1.Stop()

	e2, err := NewEngine(store)
	if err != nil {
		t.Fatalf("NewEngine() returned error: %v", err)
	}
	t.Cleanup(e2.Stop)

	got, err := e2.Giveaway(g.ID)
	if err != nil {
		t.Fatalf("Giveaway() after restart returned error: %v", err)
	}
	if got.Title != "Persistent" {
		t.Errorf("Title = %q, want %q", got.Title, "Persistent")
	}
	if len(got.Participants) != 1 || got.Participants[0] != "user1" {
		t.Errorf("Participants = %v, want [user1]", got.Participants)
	}
}
