// Package models defines the persisted data structures for the giveaway system.
package models

import (
	"time"

	"github.com/goccy/go-json"
)

// Outcome describes how a giveaway reached its terminal state.
// An empty outcome means the giveaway is still open.
type Outcome string

const (
	OutcomeOpen      Outcome = ""
	OutcomeWon       Outcome = "won"
	OutcomeNoWinner  Outcome = "no_winner"
	OutcomeCancelled Outcome = "cancelled"
)

// Giveaway is a time-boxed opt-in drawing, keyed by "<guildID>-<timestamp>".
// Once Ended flips to true no field other than informational ones is mutated.
type Giveaway struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	CreatorID    string   `json:"creator_id"`
	GuildID      string   `json:"guild_id"`
	ChannelID    string   `json:"channel_id"`
	MessageID    string   `json:"message_id"`
	EndTime      int64    `json:"end_time"`
	Participants []string `json:"participants"`
	Ended        bool     `json:"ended"`
	Outcome      Outcome  `json:"outcome,omitempty"`

	// AssignedPrizes overrides the global catalog for this giveaway.
	AssignedPrizes map[string]string `json:"assigned_prizes,omitempty"`
	PrizeListID    string            `json:"prize_list_id,omitempty"`

	// CelebrationMedia references a stored media item shown on win.
	CelebrationMedia string `json:"celebration_media,omitempty"`
}

// UnmarshalJSON accepts end_time as either an integer or a float. Older
// records carry fractional Unix timestamps; the fraction is dropped at
// load time, the same normalization MediaItem and PrizeList apply.
func (g *Giveaway) UnmarshalJSON(data []byte) error {
	type GiveawayAlias Giveaway
	aux := struct {
		EndTime float64 `json:"end_time"`
		*GiveawayAlias
	}{GiveawayAlias: (*GiveawayAlias)(g)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	g.EndTime = int64(aux.EndTime)
	return nil
}

// EndsAt returns the end time as a time.Time.
func (g *Giveaway) EndsAt() time.Time {
	return time.Unix(g.EndTime, 0)
}

// HasParticipant reports whether the user already joined.
func (g *Giveaway) HasParticipant(userID string) bool {
	for _, p := range g.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// Clone returns a shallow copy with its own participants slice, safe to hand
// out to callers while the engine keeps mutating the original.
func (g *Giveaway) Clone() *Giveaway {
	c := *g
	c.Participants = append([]string(nil), g.Participants...)
	if g.AssignedPrizes != nil {
		c.AssignedPrizes = make(map[string]string, len(g.AssignedPrizes))
		for k, v := range g.AssignedPrizes {
			c.AssignedPrizes[k] = v
		}
	}
	return &c
}
