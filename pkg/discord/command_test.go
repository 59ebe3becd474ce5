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

	cmd := NewCommand("teste", "Comando de teste", "teste", handler)

	if cmd == nil {
		t.Fatal("NewCommand returned nil")
	}

	if cmd.Name != "teste" {
		t.Errorf("Name = %v, want %v", cmd.Name, "teste")
	}

	if cmd.Description != "Comando de teste" {
		t.Errorf("Description = %v, want %v", cmd.Description, "Comando de teste")
	}

	if cmd.Category != "teste" {
		t.Errorf("Category = %v, want %v", cmd.Category, "teste")
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
		Name:        "opcao",
		Description: "Opção de teste",
		Required:    true,
	}

	cmd := NewCommand("teste", "Comando de teste", "teste", handler).
		WithOptions(option)

	if cmd.Options == nil {
		t.Fatal("Options is nil")
	}

	if len(cmd.Options) != 1 {
		t.Fatalf("Options length = %v, want %v", len(cmd.Options), 1)
	}

	if cmd.Options[0].Name != "opcao" {
		t.Errorf("Option name = %v, want %v", cmd.Options[0].Name, "opcao")
	}
}

// TestCommandBuilders verifies the remaining builder methods
func TestCommandBuilders(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("teste", "Comando de teste", "teste", handler).
		WithUserPermissions(discordgo.PermissionAdministrator).
		WithBotPermissions(discordgo.PermissionSendMessages).
		AsDev().
		RequiresVoice().
		RequiresDatabase()

	if cmd.UserPermissions != discordgo.PermissionAdministrator {
		t.Errorf("UserPermissions = %v, want %v", cmd.UserPermissions, discordgo.PermissionAdministrator)
	}

	if cmd.BotPermissions != discordgo.PermissionSendMessages {
		t.Errorf("BotPermissions = %v, want %v", cmd.BotPermissions, discordgo.PermissionSendMessages)
	}

	if !cmd.IsDev {
		t.Error("IsDev should be true after calling AsDev()")
	}

	if !cmd.InVoiceChannel {
		t.Error("InVoiceChannel should be true after calling RequiresVoice()")
	}

	if !cmd.RequiresDB {
		t.Error("RequiresDB should be true after calling RequiresDatabase()")
	}
}

// TestToApplicationCommand verifies conversion to Discord application command
func TestToApplicationCommand(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("teste", "Comando de teste", "teste", handler)
	appCmd := cmd.ToApplicationCommand()

	if appCmd.Name != "teste" {
		t.Errorf("ApplicationCommand.Name = %v, want %v", appCmd.Name, "teste")
	}

	if appCmd.Description != "Comando de teste" {
		t.Errorf("ApplicationCommand.Description = %v, want %v", appCmd.Description, "Comando de teste")
	}
}

// TestCommandCollection verifies the thread-safe command collection
func TestCommandCollection(t *testing.T) {
	cc := NewCommandCollection()

	if cc.Size() != 0 {
		t.Errorf("Size() = %v, want 0", cc.Size())
	}

	cmd := NewCommand("teste", "Comando de teste", "teste", func(ctx *CommandContext) error { return nil })
	cc.Set("teste", cmd)

	if cc.Size() != 1 {
		t.Errorf("Size() = %v, want 1", cc.Size())
	}

	got, ok := cc.Get("teste")
	if !ok {
		t.Fatal("Get() should find the registered command")
	}
	if got != cmd {
		t.Error("Get() returned a different command")
	}

	if _, ok := cc.Get("inexistente"); ok {
		t.Error("Get() should not find an unregistered command")
	}

	all := cc.All()
	if len(all) != 1 {
		t.Errorf("All() length = %v, want 1", len(all))
	}
}

// TestCommandNameFromData verifies subcommand name resolution
func TestCommandNameFromData(t *testing.T) {
	tests := []struct {
		name     string
		data     discordgo.ApplicationCommandInteractionData
		expected string
	}{
		{
			name:     "comando simples",
			data:     discordgo.ApplicationCommandInteractionData{Name: "ping"},
			expected: "ping",
		},
		{
			name: "subcomando",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "mod",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "ban", Type: discordgo.ApplicationCommandOptionSubCommand},
				},
			},
			expected: "mod.ban",
		},
		{
			name: "grupo de subcomandos",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "config",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name: "niveis",
						Type: discordgo.ApplicationCommandOptionSubCommandGroup,
						Options: []*discordgo.ApplicationCommandInteractionDataOption{
							{Name: "cargo", Type: discordgo.ApplicationCommandOptionSubCommand},
						},
					},
				},
			},
			expected: "config.niveis.cargo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := commandNameFromData(tt.data); got != tt.expected {
				t.Errorf("commandNameFromData() = %v, want %v", got, tt.expected)
			}
		})
	}
}
