package giveaway

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestCreateCommandOptions(t *testing.T) {
	cmd := createCreateCommand()

	options := map[string]*discordgo.ApplicationCommandOption{}
	for _, opt := range cmd.Options {
		options[opt.Name] = opt
	}

	tests := []struct {
		name     string
		optType  discordgo.ApplicationCommandOptionType
		required bool
	}{
		{"title", discordgo.ApplicationCommandOptionString, true},
		{"hours", discordgo.ApplicationCommandOptionInteger, true},
		{"minutes", discordgo.ApplicationCommandOptionInteger, true},
		{"description", discordgo.ApplicationCommandOptionString, false},
	}

	for _, tt := range tests {
		opt, ok := options[tt.name]
		if !ok {
			t.Errorf("option %q missing", tt.name)
			continue
		}
		if opt.Type != tt.optType {
			t.Errorf("option %q type = %v, want %v", tt.name, opt.Type, tt.optType)
		}
		if opt.Required != tt.required {
			t.Errorf("option %q required = %v, want %v", tt.name, opt.Required, tt.required)
		}
	}

	if cmd.UserPermissions != discordgo.PermissionManageServer {
		t.Errorf("UserPermissions = %v, want %v", cmd.UserPermissions, discordgo.PermissionManageServer)
	}
}
