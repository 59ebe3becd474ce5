package economia

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/ignislabs/ignis-go/internal/economy"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// createSaldoCommand creates the /saldo command
func createSaldoCommand(svc *economy.Service) *discord.Command {
	return discord.NewCommand(
		"saldo",
		"Mostra o saldo de moedas de um usuário",
		"economia",
		saldoHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuário a consultar (padrão: você)",
			Required:    false,
		},
	).RequiresDatabase()
}

// saldoHandler handles the /saldo command
func saldoHandler(svc *economy.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		target := ctx.GetUserOption("usuario")
		if target == nil {
			target = ctx.User()
		}

		balance, err := svc.Balance(target.ID)
		if err != nil {
			return ctx.ReplyEphemeral("❌ Não consegui consultar o saldo agora.")
		}

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("💰 Carteira de %s", target.Username),
			Description: fmt.Sprintf("Saldo atual: **%d** moedas", balance),
			Color:       0xF1C40F,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: target.AvatarURL("128"),
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: "🔥 Ignis",
			},
		}

		return ctx.ReplyEmbed(embed)
	}
}
