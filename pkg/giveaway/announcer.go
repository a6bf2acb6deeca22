package giveaway

import (
	"fmt"

	"github.com/PancyStudios/MysteryBoxGo/pkg/models"
)

// Embed colors used by announcement payloads.
const (
	ColorOpen      = 0x3498DB
	ColorWon       = 0x2ECC71
	ColorNoWinner  = 0xE74C3C
	ColorCancelled = 0xE74C3C
	ColorEnded     = 0x95A5A6
)

// Announcement is a presentation-agnostic message payload. The Discord
// layer renders it into an embed and delivers it; delivery is not this
// package's concern and failures are reported by the boundary, not
// retried.
type Announcement struct {
	Content     string
	Title       string
	Description string
	Color       int
	Footer      string

	// MediaID is set when a stored celebration animation should be
	// attached; the renderer loads the bytes through the engine.
	MediaID   string
	MediaName string
}

// BuildCreationAnnouncement is the public message posted when a giveaway
// opens. The relative-time marker uses Discord's timestamp rendering.
func BuildCreationAnnouncement(g *models.Giveaway) Announcement {
	return Announcement{
		Title:       "🎁 " + g.Title,
		Description: fmt.Sprintf("%s\n\n**Ends:** <t:%d:R>", g.Description, g.EndTime),
		Color:       ColorOpen,
		Footer:      "Giveaway ID: " + g.ID,
	}
}

// BuildResolutionAnnouncement is the public result message for a
// concluded giveaway, covering both the winner and no-winner outcomes.
func BuildResolutionAnnouncement(res *Resolution) Announcement {
	if res.WinnerID == "" {
		return Announcement{
			Title:       "🎁 Giveaway ended!",
			Description: "Unfortunately, nobody entered this giveaway.",
			Color:       ColorNoWinner,
			Footer:      "Giveaway ID: " + res.Giveaway.ID,
		}
	}

	mention := "<@" + res.WinnerID + ">"
	return Announcement{
		Content:     fmt.Sprintf("Congratulations %s! You won **%s**!", mention, res.Prize),
		Title:       "🎉 Giveaway ended! 🎉",
		Description: fmt.Sprintf("**Winner: %s**\n**Prize: %s**", mention, res.Prize),
		Color:       ColorWon,
		Footer:      "Giveaway ID: " + res.Giveaway.ID,
		MediaID:     res.MediaID,
		MediaName:   res.MediaName,
	}
}

// BuildResolutionUpdate is the edit applied to the original announcement
// message: same result content, rendered as an appendix to the original
// description.
func BuildResolutionUpdate(res *Resolution) Announcement {
	a := Announcement{
		Title:  "🎁 Giveaway ended!",
		Color:  ColorEnded,
		Footer: "Giveaway ID: " + res.Giveaway.ID,
	}
	if res.WinnerID == "" {
		a.Color = ColorNoWinner
		a.Description = fmt.Sprintf("%s\n\nUnfortunately, nobody entered this giveaway.", res.Giveaway.Description)
	} else {
		a.Description = fmt.Sprintf("%s\n\n**Winner: <@%s>**\n**Prize: %s**", res.Giveaway.Description, res.WinnerID, res.Prize)
	}
	return a
}

// BuildCancellationUpdate is the edit applied to the original message
// when an administrator cancels a giveaway. Distinguishable from a
// no-winner result by both text and outcome.
func BuildCancellationUpdate(g *models.Giveaway) Announcement {
	return Announcement{
		Title:       "🎁 Giveaway cancelled!",
		Description: g.Description + "\n\nThis giveaway was cancelled by an administrator.",
		Color:       ColorCancelled,
		Footer:      "Giveaway ID: " + g.ID,
	}
}
