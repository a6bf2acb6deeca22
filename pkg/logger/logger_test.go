package logger

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/goccy/go-json"
)

func TestNewLogger(t *testing.T) {
	l := NewLogger("", "")
	if l == nil {
		t.Fatal("Expected logger to be created, got nil")
	}
	defer l.Close()

	// Logging without webhooks must not panic
	l.System("File store ready", "Storage")
	l.Info("Created giveaway guild-1", "Giveaway")
	l.Success("MysteryBox Go started!", "Main")
	l.Warn("Broker unreachable", "MQTT")
	l.Debug("Interaction received", "Discord")
	l.Error("Failed to persist resolution", "Giveaway")
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level        LogLevel
		name         string
		discordColor int
	}{
		{LevelCritical, "CRITICAL", 0xFF0000},
		{LevelError, "ERROR", 0xFF0000},
		{LevelWarn, "WARN", 0xFFFF00},
		{LevelSuccess, "SUCCESS", 0x00FF00},
		{LevelInfo, "INFO", 0x0000FF},
		{LevelDebug, "DEBUG", 0x800080},
		{LevelSystem, "SYSTEM", 0x808080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.String(); got != tt.name {
				t.Errorf("LogLevel.String() = %v, want %v", got, tt.name)
			}
			if got := tt.level.Color(); got == "" {
				t.Error("LogLevel.Color() should not be empty")
			}
			if got := tt.level.DiscordColor(); got != tt.discordColor {
				t.Errorf("LogLevel.DiscordColor() = %#x, want %#x", got, tt.discordColor)
			}
		})
	}
}

func TestLogFileCreation(t *testing.T) {
	logsDir := filepath.Join(".", "logs")
	os.RemoveAll(logsDir)

	l := NewLogger("", "")
	defer l.Close()

	for _, path := range []string{
		logsDir,
		filepath.Join(logsDir, "combined.log"),
		filepath.Join(logsDir, "error.log"),
	} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("Expected %s to be created", path)
		}
	}
}

func TestWebhookPayload(t *testing.T) {
	type received struct {
		contentType string
		body        []byte
	}
	ch := make(chan received, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		ch <- received{contentType: r.Header.Get("Content-Type"), body: body}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	l := NewLogger(srv.URL, "")
	defer l.Close()

	l.sendToWebhook(LevelError, "Failed to persist resolution", "Giveaway")

	got := <-ch
	if got.contentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got.contentType)
	}

	var payload struct {
		Embeds []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Color       int    `json:"color"`
			Footer      struct {
				Text string `json:"text"`
			} `json:"footer"`
		} `json:"embeds"`
	}
	if err := json.Unmarshal(got.body, &payload); err != nil {
		t.Fatalf("decoding webhook payload: %v", err)
	}
	if len(payload.Embeds) != 1 {
		t.Fatalf("embeds = %d, want 1", len(payload.Embeds))
	}

	embed := payload.Embeds[0]
	if embed.Title != "[ERROR] Giveaway" {
		t.Errorf("embed title = %q, want %q", embed.Title, "[ERROR] Giveaway")
	}
	if embed.Description != "```Failed to persist resolution```" {
		t.Errorf("embed description = %q, want the message in a code block", embed.Description)
	}
	if embed.Color != LevelError.DiscordColor() {
		t.Errorf("embed color = %#x, want %#x", embed.Color, LevelError.DiscordColor())
	}
	if embed.Footer.Text != "🎁 MysteryBox Go" {
		t.Errorf("embed footer = %q, want %q", embed.Footer.Text, "🎁 MysteryBox Go")
	}
}

func TestWebhookRouting(t *testing.T) {
	hits := make(chan string, 2)
	errorSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits <- "error"
	}))
	defer errorSrv.Close()
	logsSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits <- "logs"
	}))
	defer logsSrv.Close()

	l := NewLogger(errorSrv.URL, logsSrv.URL)
	defer l.Close()

	l.sendToWebhook(LevelCritical, "engine stopped", "Main")
	if got := <-hits; got != "error" {
		t.Errorf("critical message hit the %s webhook, want error", got)
	}

	l.sendToWebhook(LevelInfo, "user joined", "Giveaway")
	if got := <-hits; got != "logs" {
		t.Errorf("info message hit the %s webhook, want logs", got)
	}
}

func TestGlobalLoggerInit(t *testing.T) {
	logger = nil
	once = sync.Once{}

	l := Init("", "")
	if l == nil {
		t.Fatal("Expected Init to return a logger")
	}
	defer l.Close()

	if l2 := Init("different", "different"); l != l2 {
		t.Error("Expected Init to return the same logger on subsequent calls")
	}
	if l3 := Get(); l != l3 {
		t.Error("Expected Get to return the same logger")
	}
}
