package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// createLimparCommand creates the /mod limpar subcommand
func createLimparCommand() *discord.Command {
	return discord.NewCommand(
		"limpar",
		"Apaga as últimas mensagens do canal",
		"mod",
		limparHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "quantidade",
			Description: "Quantas mensagens apagar (1-100)",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
			MaxValue:    100,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages).
		WithBotPermissions(discordgo.PermissionManageMessages)
}

// limparHandler handles the /mod limpar command
func limparHandler(ctx *discord.CommandContext) error {
	amount := int(ctx.GetIntOption("quantidade"))
	if amount < 1 || amount > 100 {
		return ctx.ReplyEphemeral("❌ A quantidade deve estar entre 1 e 100.")
	}

	messages, err := ctx.Session.ChannelMessages(ctx.Interaction.ChannelID, amount, "", "", "")
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Falha ao listar mensagens: %v", err))
	}
	if len(messages) == 0 {
		return ctx.ReplyEphemeral("Não há mensagens para apagar.")
	}

	ids := make([]string, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}

	if err := ctx.Session.ChannelMessagesBulkDelete(ctx.Interaction.ChannelID, ids); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Falha ao apagar: %v", err))
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("🧹 **%d** mensagem(ns) apagada(s).", len(ids)))
}
