package giveaway

import (
	"fmt"

	"github.com/PancyStudios/MysteryBoxGo/pkg/logger"
	"github.com/PancyStudios/MysteryBoxGo/pkg/models"
)

// Resolution is the outcome of a concluded giveaway, handed to listeners
// for announcement. WinnerID is empty when nobody participated.
type Resolution struct {
	Giveaway  *models.Giveaway
	WinnerID  string
	Prize     string
	MediaID   string
	MediaName string
	Outcome   models.Outcome
}

// Listener receives lifecycle events from the engine. Implementations
// must not block for long; delivery failures are theirs to log, not
// retry. The engine recovers listener panics so a bad consumer cannot
// kill a timer goroutine.
type Listener interface {
	GiveawayCreated(g *models.Giveaway)
	ParticipantJoined(g *models.Giveaway, userID string)
	GiveawayResolved(res *Resolution)
	GiveawayCancelled(g *models.Giveaway)
}

func (e *Engine) notify(fn func(Listener)) {
	e.mu.Lock()
	listeners := append([]Listener(nil), e.listeners...)
	e.mu.Unlock()

	for _, l := range listeners {
		func(l Listener) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error(fmt.Sprintf("Listener panic: %v", r), "Giveaway")
				}
			}()
			fn(l)
		}(l)
	}
}
