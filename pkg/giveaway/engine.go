// Package giveaway implements the giveaway lifecycle engine: creation,
// participant accrual, scheduled and manual resolution, cancellation and
// rescheduling, backed by synchronous persistence and one cancellable
// timer per open giveaway.
package giveaway

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/PancyStudios/MysteryBoxGo/pkg/logger"
	"github.com/PancyStudios/MysteryBoxGo/pkg/models"
	"github.com/PancyStudios/MysteryBoxGo/pkg/storage"
)

// DefaultPrize is announced when neither the giveaway nor the global
// catalog has any prize configured.
const DefaultPrize = "Mystery Prize"

// Engine owns the in-memory mirrors of all persisted collections and the
// active-timer table. Every mutation persists synchronously before the
// operation acknowledges success. A single mutex serializes entry points;
// timer fires take the same path, so a concurrent cancel and fire resolve
// at most once through the ended guard.
type Engine struct {
	store storage.Store

	mu         sync.Mutex
	giveaways  map[string]*models.Giveaway
	prizes     map[string]string
	media      map[string]models.MediaItem
	prizeLists map[string]models.PrizeList
	timers     map[string]*time.Timer

	listeners []Listener
}

var (
	engine *Engine
	once   sync.Once
)

// Init initializes the global engine instance.
func Init(store storage.Store) (*Engine, error) {
	var err error
	once.Do(func() {
		engine, err = NewEngine(store)
	})
	return engine, err
}

// Get returns the global engine instance.
func Get() *Engine {
	return engine
}

// NewEngine loads all collections from the store. Timers for open
// giveaways are not armed until Recover is called, so listeners can be
// registered in between.
func NewEngine(store storage.Store) (*Engine, error) {
	e := &Engine{
		store:      store,
		giveaways:  make(map[string]*models.Giveaway),
		prizes:     make(map[string]string),
		media:      make(map[string]models.MediaItem),
		prizeLists: make(map[string]models.PrizeList),
		timers:     make(map[string]*time.Timer),
	}

	if err := store.Load(storage.CollectionGiveaways, &e.giveaways); err != nil {
		return nil, err
	}
	if err := store.Load(storage.CollectionPrizes, &e.prizes); err != nil {
		return nil, err
	}
	if err := store.Load(storage.CollectionMedia, &e.media); err != nil {
		return nil, err
	}
	if err := store.Load(storage.CollectionPrizeLists, &e.prizeLists); err != nil {
		return nil, err
	}

	logger.System(fmt.Sprintf("Loaded %d giveaways, %d prizes, %d media items, %d prize lists",
		len(e.giveaways), len(e.prizes), len(e.media), len(e.prizeLists)), "Giveaway")

	return e, nil
}

// AddListener registers a lifecycle event consumer.
func (e *Engine) AddListener(l Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, l)
}

// Recover restores the scheduling state after a restart: open giveaways
// with a future end time get their timer re-armed for the remaining
// delta, and those whose end time already passed resolve immediately.
// Correctness depends only on the persisted end_time and ended flag.
func (e *Engine) Recover() {
	now := time.Now().Unix()

	var missed []string
	e.mu.Lock()
	for id, g := range e.giveaways {
		if g.Ended {
			continue
		}
		if g.EndTime > now {
			remaining := time.Duration(g.EndTime-now) * time.Second
			e.armTimer(id, remaining)
			logger.Info(fmt.Sprintf("Restored giveaway %s with %s left", id, remaining), "Giveaway")
		} else {
			missed = append(missed, id)
		}
	}
	e.mu.Unlock()

	for _, id := range missed {
		logger.Info(fmt.Sprintf("Resolving missed giveaway %s", id), "Giveaway")
		e.resolve(id, true)
	}
}

// Stop cancels every armed timer. Used on shutdown; persisted state is
// enough for the next Recover to pick up where we left off.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for id, t := range e.timers {
		t.Stop()
		delete(e.timers, id)
	}
}

// armTimer schedules resolution. Caller must hold e.mu.
func (e *Engine) armTimer(id string, d time.Duration) {
	e.timers[id] = time.AfterFunc(d, func() {
		e.resolve(id, false)
	})
}

// stopTimer cancels and forgets the timer for id. Caller must hold e.mu.
func (e *Engine) stopTimer(id string) {
	if t, ok := e.timers[id]; ok {
		t.Stop()
		delete(e.timers, id)
	}
}

// Create constructs a new giveaway ending after duration, persists it and
// arms its timer. The id is formed from the guild and creation timestamp.
func (e *Engine) Create(title, description string, duration time.Duration, creatorID, guildID, channelID string) (*models.Giveaway, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	now := time.Now()
	id := fmt.Sprintf("%s-%d", guildID, now.UnixMilli())

	e.mu.Lock()
	if _, exists := e.giveaways[id]; exists {
		e.mu.Unlock()
		return nil, ErrDuplicateID
	}

	g := &models.Giveaway{
		ID:           id,
		Title:        title,
		Description:  description,
		CreatorID:    creatorID,
		GuildID:      guildID,
		ChannelID:    channelID,
		EndTime:      now.Add(duration).Unix(),
		Participants: []string{},
	}
	e.giveaways[id] = g

	if err := e.store.Save(storage.CollectionGiveaways, e.giveaways); err != nil {
		delete(e.giveaways, id)
		e.mu.Unlock()
		return nil, fmt.Errorf("persisting giveaway: %w", err)
	}

	e.armTimer(id, duration)
	out := g.Clone()
	e.mu.Unlock()

	logger.Info(fmt.Sprintf("Created giveaway %s ending in %s", id, duration), "Giveaway")
	e.notify(func(l Listener) { l.GiveawayCreated(out) })
	return out, nil
}

// SetMessage records the announcement message location once the
// presentation layer posted it, so the message can be edited on
// resolution.
func (e *Engine) SetMessage(id, channelID, messageID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, ok := e.giveaways[id]
	if !ok {
		return ErrNotFound
	}
	oldChannel, oldMessage := g.ChannelID, g.MessageID
	g.ChannelID, g.MessageID = channelID, messageID

	if err := e.store.Save(storage.CollectionGiveaways, e.giveaways); err != nil {
		g.ChannelID, g.MessageID = oldChannel, oldMessage
		return fmt.Errorf("persisting giveaway: %w", err)
	}
	return nil
}

// Join appends a participant. Joining twice is reported as
// ErrAlreadyJoined and leaves the list untouched; the state change is
// persisted before the caller is acknowledged.
func (e *Engine) Join(id, userID string) error {
	e.mu.Lock()

	g, ok := e.giveaways[id]
	if !ok {
		e.mu.Unlock()
		return ErrNotFound
	}
	if g.Ended {
		e.mu.Unlock()
		return ErrAlreadyEnded
	}
	if g.HasParticipant(userID) {
		e.mu.Unlock()
		return ErrAlreadyJoined
	}

	g.Participants = append(g.Participants, userID)
	if err := e.store.Save(storage.CollectionGiveaways, e.giveaways); err != nil {
		g.Participants = g.Participants[:len(g.Participants)-1]
		e.mu.Unlock()
		return fmt.Errorf("persisting participant: %w", err)
	}

	out := g.Clone()
	e.mu.Unlock()

	logger.Info(fmt.Sprintf("User %s joined giveaway %s", userID, id), "Giveaway")
	e.notify(func(l Listener) { l.ParticipantJoined(out, userID) })
	return nil
}

// EndEarly cancels the armed timer and resolves the giveaway now.
func (e *Engine) EndEarly(id string) error {
	e.mu.Lock()
	g, ok := e.giveaways[id]
	if !ok {
		e.mu.Unlock()
		return ErrNotFound
	}
	if g.Ended {
		e.mu.Unlock()
		return ErrAlreadyEnded
	}
	e.stopTimer(id)
	e.mu.Unlock()

	e.resolve(id, true)
	return nil
}

// Cancel terminates a giveaway without selecting a winner. Downstream
// consumers see a distinct cancellation event, not a no-winner result.
func (e *Engine) Cancel(id string) error {
	e.mu.Lock()

	g, ok := e.giveaways[id]
	if !ok {
		e.mu.Unlock()
		return ErrNotFound
	}
	if g.Ended {
		e.mu.Unlock()
		return ErrAlreadyEnded
	}

	e.stopTimer(id)
	g.Ended = true
	g.Outcome = models.OutcomeCancelled

	if err := e.store.Save(storage.CollectionGiveaways, e.giveaways); err != nil {
		g.Ended = false
		g.Outcome = models.OutcomeOpen
		e.armTimer(id, time.Until(g.EndsAt()))
		e.mu.Unlock()
		return fmt.Errorf("persisting cancellation: %w", err)
	}

	out := g.Clone()
	e.mu.Unlock()

	logger.Info(fmt.Sprintf("Cancelled giveaway %s", id), "Giveaway")
	e.notify(func(l Listener) { l.GiveawayCancelled(out) })
	return nil
}

// Reschedule moves the end time of an open giveaway and re-arms its
// timer. Past timestamps are rejected, not clamped.
func (e *Engine) Reschedule(id string, newEnd time.Time) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, ok := e.giveaways[id]
	if !ok {
		return ErrNotFound
	}
	if g.Ended {
		return ErrAlreadyEnded
	}
	if !newEnd.After(time.Now()) {
		return ErrPastTimestamp
	}

	oldEnd := g.EndTime
	g.EndTime = newEnd.Unix()

	if err := e.store.Save(storage.CollectionGiveaways, e.giveaways); err != nil {
		g.EndTime = oldEnd
		return fmt.Errorf("persisting new end time: %w", err)
	}

	e.stopTimer(id)
	e.armTimer(id, time.Until(newEnd))

	logger.Info(fmt.Sprintf("Rescheduled giveaway %s to %s", id, newEnd.Format("02.01.2006 15:04")), "Giveaway")
	return nil
}

// resolve ends a giveaway and selects a winner and prize. Idempotent: the
// ended guard means a timer fire racing a cancel or manual end produces
// at most one resolution. A persistence failure is logged and the
// giveaway still ends in memory, so a resolution is announced (degraded)
// rather than the record sticking around unresolved.
//
// force distinguishes a deliberate resolution (EndEarly, Recover) from a
// timer fire: a fire that waited on the lock while Reschedule moved the
// end time into the future is stale and skipped, leaving the re-armed
// timer in charge.
func (e *Engine) resolve(id string, force bool) {
	e.mu.Lock()

	g, ok := e.giveaways[id]
	if !ok {
		e.mu.Unlock()
		logger.Error(fmt.Sprintf("Giveaway %s not found at resolution time", id), "Giveaway")
		return
	}
	if g.Ended {
		e.mu.Unlock()
		return
	}
	if !force && g.EndTime > time.Now().Unix() {
		e.mu.Unlock()
		return
	}

	g.Ended = true

	res := &Resolution{Outcome: models.OutcomeNoWinner}
	if len(g.Participants) > 0 {
		res.Outcome = models.OutcomeWon
		res.WinnerID = g.Participants[rand.Intn(len(g.Participants))]
		res.Prize = e.pickPrize(g)
	}
	g.Outcome = res.Outcome

	if g.CelebrationMedia != "" {
		if item, ok := e.media[g.CelebrationMedia]; ok {
			res.MediaID = g.CelebrationMedia
			res.MediaName = item.Name
		}
	}

	if err := e.store.Save(storage.CollectionGiveaways, e.giveaways); err != nil {
		logger.Error(fmt.Sprintf("Failed to persist resolution of %s: %v", id, err), "Giveaway")
	}

	e.stopTimer(id)
	res.Giveaway = g.Clone()
	e.mu.Unlock()

	logger.Info(fmt.Sprintf("Resolved giveaway %s: winner=%q prize=%q", id, res.WinnerID, res.Prize), "Giveaway")
	e.notify(func(l Listener) { l.GiveawayResolved(res) })
}

// pickPrize applies the selection precedence: per-giveaway assigned
// prizes, then the global catalog, then the fixed placeholder. Caller
// must hold e.mu.
func (e *Engine) pickPrize(g *models.Giveaway) string {
	if len(g.AssignedPrizes) > 0 {
		return randomValue(g.AssignedPrizes)
	}
	if len(e.prizes) > 0 {
		return randomValue(e.prizes)
	}
	return DefaultPrize
}

func randomValue(m map[string]string) string {
	values := make([]string, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values[rand.Intn(len(values))]
}

// Giveaway returns a copy of the giveaway record.
func (e *Engine) Giveaway(id string) (*models.Giveaway, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, ok := e.giveaways[id]
	if !ok {
		return nil, ErrNotFound
	}
	return g.Clone(), nil
}

// ActiveGiveaways returns copies of all open giveaways, soonest-ending
// first.
func (e *Engine) ActiveGiveaways() []*models.Giveaway {
	e.mu.Lock()
	defer e.mu.Unlock()

	var active []*models.Giveaway
	for _, g := range e.giveaways {
		if !g.Ended {
			active = append(active, g.Clone())
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].EndTime < active[j].EndTime })
	return active
}
