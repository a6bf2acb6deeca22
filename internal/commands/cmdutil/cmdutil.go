// Package cmdutil provides helpers shared by the command groups.
package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PancyStudios/MysteryBoxGo/pkg/giveaway"
)

// MaxAttachmentSize caps how much of an uploaded file the bot accepts.
const MaxAttachmentSize = 8 << 20

var downloadClient = &http.Client{Timeout: 15 * time.Second}

// ErrorMessage maps engine errors to user-facing replies.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, giveaway.ErrNotFound):
		return "❌ No record with that ID was found."
	case errors.Is(err, giveaway.ErrAlreadyEnded):
		return "❌ That giveaway has already ended."
	case errors.Is(err, giveaway.ErrAlreadyJoined):
		return "You are already participating in this giveaway! 🎉"
	case errors.Is(err, giveaway.ErrInvalidDuration):
		return "❌ The duration must be greater than zero."
	case errors.Is(err, giveaway.ErrPastTimestamp):
		return "❌ The given time is in the past."
	case errors.Is(err, giveaway.ErrDuplicateID):
		return "❌ That ID is already in use."
	case errors.Is(err, giveaway.ErrInvalidInput):
		return "❌ The input could not be parsed into anything usable."
	default:
		return fmt.Sprintf("❌ Something went wrong: %v", err)
	}
}

// DownloadAttachment fetches an uploaded file from Discord's CDN.
func DownloadAttachment(url string) ([]byte, error) {
	resp, err := downloadClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("downloading attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading attachment: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxAttachmentSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading attachment: %w", err)
	}
	if len(data) > MaxAttachmentSize {
		return nil, fmt.Errorf("attachment exceeds the %d MB limit", MaxAttachmentSize>>20)
	}
	return data, nil
}
