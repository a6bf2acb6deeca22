package mqtt

import (
	"fmt"
	"time"

	"github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/PancyStudios/MysteryBoxGo/pkg/logger"
	"github.com/PancyStudios/MysteryBoxGo/pkg/models"
	"github.com/google/uuid"
)

// Event is the envelope published for every mirrored lifecycle event.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// EventMirror publishes engine lifecycle events to the broker under
// mysterybox/events/<type>. Publishing is best effort; a broker outage
// never affects the giveaway itself.
type EventMirror struct {
	mc *MqttCommunicator
}

// NewEventMirror creates a mirror bound to the given communicator.
func NewEventMirror(mc *MqttCommunicator) *EventMirror {
	return &EventMirror{mc: mc}
}

func (m *EventMirror) publish(eventType string, data interface{}) {
	if m.mc == nil || !m.mc.IsConnected() {
		return
	}

	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Data:      data,
	}

	topic := fmt.Sprintf("mysterybox/events/%s", eventType)
	if err := m.mc.Publish(topic, event); err != nil {
		logger.Error(fmt.Sprintf("Failed to publish %s event: %v", eventType, err), "MQTT")
	}
}

// GiveawayCreated mirrors a creation event.
func (m *EventMirror) GiveawayCreated(g *models.Giveaway) {
	m.publish("created", g)
}

// ParticipantJoined mirrors a join event.
func (m *EventMirror) ParticipantJoined(g *models.Giveaway, userID string) {
	m.publish("joined", map[string]interface{}{
		"giveaway_id": g.ID,
		"user_id":     userID,
		"entries":     len(g.Participants),
	})
}

// GiveawayResolved mirrors a resolution event.
func (m *EventMirror) GiveawayResolved(res *giveaway.Resolution) {
	m.publish("resolved", map[string]interface{}{
		"giveaway_id": res.Giveaway.ID,
		"winner_id":   res.WinnerID,
		"prize":       res.Prize,
		"outcome":     res.Outcome,
	})
}

// GiveawayCancelled mirrors a cancellation event.
func (m *EventMirror) GiveawayCancelled(g *models.Giveaway) {
	m.publish("cancelled", g)
}

// RegisterQueries exposes read-only engine queries over the request
// topics, so external tooling can poll state without Discord access.
func RegisterQueries(mc *MqttCommunicator, engine *giveaway.Engine) {
	mc.On("giveaways/active", func(payload map[string]interface{}) (interface{}, error) {
		return engine.ActiveGiveaways(), nil
	})

	mc.On("giveaways/get", func(payload map[string]interface{}) (interface{}, error) {
		id, _ := payload["id"].(string)
		if id == "" {
			return nil, fmt.Errorf("missing giveaway id")
		}
		return engine.Giveaway(id)
	})
}
