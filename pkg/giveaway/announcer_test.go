package giveaway

import (
	"strings"
	"testing"

	"github.com/PancyStudios/MysteryBoxGo/pkg/models"
)

func TestBuildCreationAnnouncement(t *testing.T) {
	g := &models.Giveaway{
		ID:          "guild-1",
		Title:       "Holiday Box",
		Description: "Enter for a chance to win!",
		EndTime:     1767225600,
	}

	a := BuildCreationAnnouncement(g)

	if !strings.Contains(a.Title, "Holiday Box") {
		t.Errorf("Title = %q, want it to contain the giveaway title", a.Title)
	}
	if !strings.Contains(a.Description, "<t:1767225600:R>") {
		t.Errorf("Description = %q, want a relative timestamp marker", a.Description)
	}
	if a.Color != ColorOpen {
		t.Errorf("Color = %#x, want %#x", a.Color, ColorOpen)
	}
	if !strings.Contains(a.Footer, "guild-1") {
		t.Errorf("Footer = %q, want it to contain the giveaway id", a.Footer)
	}
}

func TestBuildResolutionAnnouncementWithWinner(t *testing.T) {
	res := &Resolution{
		Giveaway:  &models.Giveaway{ID: "guild-1"},
		WinnerID:  "user42",
		Prize:     "Gift Card",
		MediaID:   "party",
		MediaName: "Party Time",
		Outcome:   models.OutcomeWon,
	}

	a := BuildResolutionAnnouncement(res)

	if !strings.Contains(a.Content, "<@user42>") {
		t.Errorf("Content = %q, want a winner mention", a.Content)
	}
	if !strings.Contains(a.Description, "Gift Card") {
		t.Errorf("Description = %q, want the prize name", a.Description)
	}
	if a.Color != ColorWon {
		t.Errorf("Color = %#x, want %#x", a.Color, ColorWon)
	}
	if a.MediaID != "party" {
		t.Errorf("MediaID = %q, want %q", a.MediaID, "party")
	}
}

func TestBuildResolutionAnnouncementNoWinner(t *testing.T) {
	res := &Resolution{
		Giveaway: &models.Giveaway{ID: "guild-1"},
		Outcome:  models.OutcomeNoWinner,
	}

	a := BuildResolutionAnnouncement(res)

	if a.Content != "" {
		t.Errorf("Content = %q, want empty for a no-winner result", a.Content)
	}
	if !strings.Contains(a.Description, "nobody entered") {
		t.Errorf("Description = %q, want the no-winner text", a.Description)
	}
	if a.Color != ColorNoWinner {
		t.Errorf("Color = %#x, want %#x", a.Color, ColorNoWinner)
	}
	if a.MediaID != "" {
		t.Errorf("MediaID = %q, want empty", a.MediaID)
	}
}

func TestBuildResolutionUpdate(t *testing.T) {
	res := &Resolution{
		Giveaway: &models.Giveaway{ID: "guild-1", Description: "Original text"},
		WinnerID: "user42",
		Prize:    "Gift Card",
		Outcome:  models.OutcomeWon,
	}

	a := BuildResolutionUpdate(res)

	if !strings.Contains(a.Description, "Original text") {
		t.Errorf("Description = %q, want the original description preserved", a.Description)
	}
	if !strings.Contains(a.Description, "<@user42>") {
		t.Errorf("Description = %q, want the winner mention", a.Description)
	}
}

func TestBuildCancellationUpdateIsDistinct(t *testing.T) {
	g := &models.Giveaway{ID: "guild-1", Description: "Original text"}

	a := BuildCancellationUpdate(g)

	if !strings.Contains(a.Description, "cancelled") {
		t.Errorf("Description = %q, want cancellation text", a.Description)
	}
	if strings.Contains(a.Description, "nobody entered") {
		t.Error("cancellation text must not read like a no-winner result")
	}
}
