package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestMediaItemUnmarshalLegacyString(t *testing.T) {
	var m MediaItem
	if err := json.Unmarshal([]byte(`"Party Time"`), &m); err != nil {
		t.Fatalf("Unmarshal() returned error: %v", err)
	}
	if m.Name != "Party Time" {
		t.Errorf("Name = %q, want %q", m.Name, "Party Time")
	}
	if m.UploadedBy != "" || m.UploadedAt != 0 {
		t.Errorf("legacy entry should only carry a name, got %+v", m)
	}
}

func TestMediaItemUnmarshalStructured(t *testing.T) {
	var m MediaItem
	raw := `{"name":"Party Time","uploaded_by":"admin","uploaded_at":1767225600}`
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("Unmarshal() returned error: %v", err)
	}
	if m.Name != "Party Time" || m.UploadedBy != "admin" || m.UploadedAt != 1767225600 {
		t.Errorf("Unmarshal() = %+v, want full record", m)
	}
}

func TestMediaCollectionWithMixedEntries(t *testing.T) {
	raw := `{"old":"Legacy Gif","new":{"name":"Party Time","uploaded_by":"admin"}}`
	out := map[string]*MediaItem{}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("Unmarshal() returned error: %v", err)
	}
	if out["old"].Name != "Legacy Gif" {
		t.Errorf("old entry Name = %q, want %q", out["old"].Name, "Legacy Gif")
	}
	if out["new"].UploadedBy != "admin" {
		t.Errorf("new entry UploadedBy = %q, want %q", out["new"].UploadedBy, "admin")
	}
}

func TestPrizeListUnmarshalLegacyString(t *testing.T) {
	var p PrizeList
	if err := json.Unmarshal([]byte(`"Summer Prizes"`), &p); err != nil {
		t.Fatalf("Unmarshal() returned error: %v", err)
	}
	if p.Name != "Summer Prizes" {
		t.Errorf("Name = %q, want %q", p.Name, "Summer Prizes")
	}
	if p.PrizeCount != 0 {
		t.Errorf("PrizeCount = %d, want 0", p.PrizeCount)
	}
}

func TestPrizeListUnmarshalStructured(t *testing.T) {
	var p PrizeList
	raw := `{"name":"Summer Prizes","created_by":"admin","prize_count":7}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("Unmarshal() returned error: %v", err)
	}
	if p.Name != "Summer Prizes" || p.CreatedBy != "admin" || p.PrizeCount != 7 {
		t.Errorf("Unmarshal() = %+v, want full record", p)
	}
}

func TestGiveawayUnmarshalFractionalEndTime(t *testing.T) {
	raw := `{"guild-1": {"id":"guild-1","title":"Holiday Box","end_time":1724800000.123456,"participants":["user1"]}}`
	out := map[string]*Giveaway{}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("Unmarshal() returned error: %v", err)
	}

	g := out["guild-1"]
	if g == nil {
		t.Fatal("record guild-1 missing after load")
	}
	if g.EndTime != 1724800000 {
		t.Errorf("EndTime = %d, want fraction dropped to 1724800000", g.EndTime)
	}
	if g.Title != "Holiday Box" || len(g.Participants) != 1 {
		t.Errorf("Unmarshal() = %+v, want remaining fields intact", g)
	}
}

func TestGiveawayUnmarshalIntegerEndTime(t *testing.T) {
	var g Giveaway
	if err := json.Unmarshal([]byte(`{"id":"guild-1","end_time":1724800000}`), &g); err != nil {
		t.Fatalf("Unmarshal() returned error: %v", err)
	}
	if g.EndTime != 1724800000 {
		t.Errorf("EndTime = %d, want 1724800000", g.EndTime)
	}
}

func TestGiveawayEndsAt(t *testing.T) {
	g := &Giveaway{EndTime: 1767225600}
	if got := g.EndsAt(); !got.Equal(time.Unix(1767225600, 0)) {
		t.Errorf("EndsAt() = %v, want %v", got, time.Unix(1767225600, 0))
	}
}

func TestGiveawayHasParticipant(t *testing.T) {
	g := &Giveaway{Participants: []string{"user1", "user2"}}

	if !g.HasParticipant("user1") {
		t.Error("HasParticipant(user1) = false, want true")
	}
	if g.HasParticipant("user3") {
		t.Error("HasParticipant(user3) = true, want false")
	}
}

func TestGiveawayCloneIsIndependent(t *testing.T) {
	g := &Giveaway{
		ID:             "guild-1",
		Participants:   []string{"user1"},
		AssignedPrizes: map[string]string{"1": "Gift Card"},
	}

	c := g.Clone()
	c.Participants = append(c.Participants, "user2")
	c.AssignedPrizes["2"] = "T-Shirt"

	if len(g.Participants) != 1 {
		t.Errorf("original Participants = %v, want untouched", g.Participants)
	}
	if len(g.AssignedPrizes) != 1 {
		t.Errorf("original AssignedPrizes = %v, want untouched", g.AssignedPrizes)
	}
}
