package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestCommandCreation verifies that commands can be created with the builder pattern
func TestCommandCreation(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("giveaway", "Manage giveaways", "giveaway", handler)

	if cmd == nil {
		t.Fatal("NewCommand returned nil")
	}

	if cmd.Name != "giveaway" {
		t.Errorf("Name = %v, want %v", cmd.Name, "giveaway")
	}

	if cmd.Description != "Manage giveaways" {
		t.Errorf("Description = %v, want %v", cmd.Description, "Manage giveaways")
	}

	if cmd.Category != "giveaway" {
		t.Errorf("Category = %v, want %v", cmd.Category, "giveaway")
	}

	if cmd.Run == nil {
		t.Error("Run function is nil")
	}
}

// TestCommandWithOptions verifies the WithOptions builder method
func TestCommandWithOptions(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "title",
		Description: "Giveaway title",
		Required:    true,
	}

	cmd := NewCommand("create", "Create a giveaway", "giveaway", handler).
		WithOptions(option)

	if cmd.Options == nil {
		t.Fatal("Options is nil")
	}

	if len(cmd.Options) != 1 {
		t.Fatalf("Options length = %v, want %v", len(cmd.Options), 1)
	}

	if cmd.Options[0].Name != "title" {
		t.Errorf("Option name = %v, want %v", cmd.Options[0].Name, "title")
	}
}

// TestCommandWithPermissions verifies the permission builder methods
func TestCommandWithPermissions(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("end", "End a giveaway", "giveaway", handler).
		WithUserPermissions(discordgo.PermissionManageServer).
		WithBotPermissions(discordgo.PermissionSendMessages)

	if cmd.UserPermissions != discordgo.PermissionManageServer {
		t.Errorf("UserPermissions = %v, want %v", cmd.UserPermissions, discordgo.PermissionManageServer)
	}

	if cmd.BotPermissions != discordgo.PermissionSendMessages {
		t.Errorf("BotPermissions = %v, want %v", cmd.BotPermissions, discordgo.PermissionSendMessages)
	}
}

// TestCommandAsDev verifies the AsDev builder method
func TestCommandAsDev(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("debug", "Debug command", "dev", handler).AsDev()

	if !cmd.IsDev {
		t.Error("IsDev should be true after calling AsDev()")
	}
}

// TestToApplicationCommand verifies conversion to Discord application command
func TestToApplicationCommand(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "title",
		Description: "Giveaway title",
		Required:    true,
	}

	cmd := NewCommand("create", "Create a giveaway", "giveaway", handler).
		WithOptions(option)

	appCmd := cmd.ToApplicationCommand()

	if appCmd == nil {
		t.Fatal("ToApplicationCommand returned nil")
	}

	if appCmd.Name != "create" {
		t.Errorf("ApplicationCommand Name = %v, want %v", appCmd.Name, "create")
	}

	if appCmd.Description != "Create a giveaway" {
		t.Errorf("ApplicationCommand Description = %v, want %v", appCmd.Description, "Create a giveaway")
	}

	if len(appCmd.Options) != 1 {
		t.Fatalf("ApplicationCommand Options length = %v, want %v", len(appCmd.Options), 1)
	}
}

// TestFindOptionNested verifies that options are resolved through subcommand nesting
func TestFindOptionNested(t *testing.T) {
	options := []*discordgo.ApplicationCommandInteractionDataOption{
		{
			Name: "create",
			Type: discordgo.ApplicationCommandOptionSubCommand,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "title", Type: discordgo.ApplicationCommandOptionString, Value: "Holiday Box"},
			},
		},
	}

	opt := findOption(options, "title")
	if opt == nil {
		t.Fatal("findOption() returned nil for a nested option")
	}
	if opt.StringValue() != "Holiday Box" {
		t.Errorf("StringValue() = %v, want %v", opt.StringValue(), "Holiday Box")
	}

	if findOption(options, "missing") != nil {
		t.Error("findOption() should return nil for an unknown name")
	}
}

func newMemberContext(permissions int64) *CommandContext {
	return &CommandContext{
		Interaction: &discordgo.InteractionCreate{
			Interaction: &discordgo.Interaction{
				Member: &discordgo.Member{
					User:        &discordgo.User{ID: "user1"},
					Permissions: permissions,
				},
			},
		},
	}
}

// TestHasPermissions verifies the permission gate used before admin commands
func TestHasPermissions(t *testing.T) {
	ctx := newMemberContext(discordgo.PermissionManageServer)
	if !ctx.HasPermissions(discordgo.PermissionManageServer) {
		t.Error("HasPermissions() = false for a member holding the permission")
	}

	ctx = newMemberContext(discordgo.PermissionSendMessages)
	if ctx.HasPermissions(discordgo.PermissionManageServer) {
		t.Error("HasPermissions() = true for a member missing the permission")
	}

	// Administrators pass every check
	ctx = newMemberContext(discordgo.PermissionAdministrator)
	if !ctx.HasPermissions(discordgo.PermissionManageServer) {
		t.Error("HasPermissions() = false for an administrator")
	}

	// DMs have no member and fail closed
	ctx = &CommandContext{Interaction: &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}}
	if ctx.HasPermissions(discordgo.PermissionManageServer) {
		t.Error("HasPermissions() = true without a guild member")
	}
}
