package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// createBanCommand creates the /mod ban subcommand
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Bane um usuário do servidor",
		"mod",
		banHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuário a banir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "motivo",
			Description: "Motivo do banimento",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "dias",
			Description: "Dias de mensagens a apagar (0-7)",
			Required:    false,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
			MaxValue:    7,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers)
}

// banHandler handles the /mod ban command
func banHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Você precisa indicar um usuário.")
	}

	reason := ctx.GetStringOption("motivo")
	if reason == "" {
		reason = "Sem motivo informado"
	}

	days := int(ctx.GetIntOption("dias"))

	err := ctx.Session.GuildBanCreateWithReason(
		ctx.Interaction.GuildID,
		user.ID,
		reason,
		days,
	)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Falha ao banir: %v", err))
	}

	return ctx.Reply(fmt.Sprintf("🔨 **%s** foi banido.\n**Motivo:** %s", user.Username, reason))
}
