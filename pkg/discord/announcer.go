// Package discord provides the announcer that renders giveaway lifecycle
// events into Discord messages.
package discord

import (
	"bytes"
	"fmt"

	"github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
	"github.com/PancyStudios/MysteryBoxGo/pkg/logger"
	"github.com/PancyStudios/MysteryBoxGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// JoinCustomIDPrefix is the routing prefix for the join button. The full
// custom id is "giveaway_join:<giveaway id>".
const JoinCustomIDPrefix = "giveaway_join"

// Announcer posts and edits giveaway messages as the engine emits
// lifecycle events. Delivery failures are logged, never retried; the
// engine state is already persisted by the time events arrive here.
type Announcer struct {
	client *ExtendedClient
	engine *giveaway.Engine
}

// NewAnnouncer creates an announcer bound to the client and engine.
func NewAnnouncer(client *ExtendedClient, engine *giveaway.Engine) *Announcer {
	return &Announcer{client: client, engine: engine}
}

// renderEmbed converts an announcement payload into a Discord embed.
func renderEmbed(a giveaway.Announcement) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       a.Title,
		Description: a.Description,
		Color:       a.Color,
		Footer:      &discordgo.MessageEmbedFooter{Text: a.Footer},
	}
}

// joinButton builds the entry button attached to the announcement.
func joinButton(giveawayID string, disabled bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Join 🎉",
					Style:    discordgo.PrimaryButton,
					CustomID: JoinCustomIDPrefix + ":" + giveawayID,
					Disabled: disabled,
				},
			},
		},
	}
}

// GiveawayCreated posts the public announcement with a join button and
// records the message location so it can be edited on resolution.
func (a *Announcer) GiveawayCreated(g *models.Giveaway) {
	embed := renderEmbed(giveaway.BuildCreationAnnouncement(g))

	msg, err := a.client.Session.ChannelMessageSendComplex(g.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: joinButton(g.ID, false),
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to announce giveaway %s: %v", g.ID, err), "Announcer")
		return
	}

	if err := a.engine.SetMessage(g.ID, msg.ChannelID, msg.ID); err != nil {
		logger.Error(fmt.Sprintf("Failed to record message for giveaway %s: %v", g.ID, err), "Announcer")
	}
}

// ParticipantJoined is acknowledged inline by the button handler, so the
// announcer has nothing to deliver.
func (a *Announcer) ParticipantJoined(g *models.Giveaway, userID string) {}

// GiveawayResolved edits the original announcement and posts the result,
// attaching the celebration media when one is stored.
func (a *Announcer) GiveawayResolved(res *giveaway.Resolution) {
	g := res.Giveaway

	if g.MessageID != "" {
		embed := renderEmbed(giveaway.BuildResolutionUpdate(res))
		components := joinButton(g.ID, true)
		_, err := a.client.Session.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel:    g.ChannelID,
			ID:         g.MessageID,
			Embeds:     &[]*discordgo.MessageEmbed{embed},
			Components: &components,
		})
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to edit announcement for %s: %v", g.ID, err), "Announcer")
		}
	}

	announcement := giveaway.BuildResolutionAnnouncement(res)
	send := &discordgo.MessageSend{
		Content: announcement.Content,
		Embeds:  []*discordgo.MessageEmbed{renderEmbed(announcement)},
	}

	if announcement.MediaID != "" {
		if data, err := a.engine.MediaBlob(announcement.MediaID); err == nil {
			send.Files = []*discordgo.File{{
				Name:        announcement.MediaName + ".gif",
				ContentType: "image/gif",
				Reader:      bytes.NewReader(data),
			}}
		} else {
			logger.Error(fmt.Sprintf("Failed to load media %s: %v", announcement.MediaID, err), "Announcer")
		}
	}

	if _, err := a.client.Session.ChannelMessageSendComplex(g.ChannelID, send); err != nil {
		logger.Error(fmt.Sprintf("Failed to announce result of %s: %v", g.ID, err), "Announcer")
	}
}

// GiveawayCancelled edits the original announcement to show the
// cancellation.
func (a *Announcer) GiveawayCancelled(g *models.Giveaway) {
	if g.MessageID == "" {
		return
	}

	embed := renderEmbed(giveaway.BuildCancellationUpdate(g))
	components := joinButton(g.ID, true)
	_, err := a.client.Session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    g.ChannelID,
		ID:         g.MessageID,
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to edit cancelled giveaway %s: %v", g.ID, err), "Announcer")
	}
}
