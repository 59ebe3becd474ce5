package niveis

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/ignislabs/ignis-go/internal/leveling"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// createNivelCommand creates the /nivel command
func createNivelCommand(svc *leveling.Service) *discord.Command {
	return discord.NewCommand(
		"nivel",
		"Mostra o nível e o XP de um usuário",
		"niveis",
		nivelHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuário a consultar (padrão: você)",
			Required:    false,
		},
	).RequiresDatabase()
}

// nivelHandler handles the /nivel command
func nivelHandler(svc *leveling.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		target := ctx.GetUserOption("usuario")
		if target == nil {
			target = ctx.User()
		}
		if target.Bot {
			return ctx.ReplyEphemeral("❌ Bots não ganham XP.")
		}

		progress, err := svc.Ledger().GetOrCreate(target.ID)
		if err != nil {
			return ctx.ReplyEphemeral("❌ Não consegui carregar o progresso agora. Tente de novo em instantes.")
		}

		required := svc.Curve().RequiredXP(progress.Level)
		progressLine := fmt.Sprintf("**%d** XP de ~**%d** para o próximo nível", progress.XP, required)
		if progress.Level >= leveling.LevelCap {
			progressLine = "🏆 Nível máximo alcançado!"
		}

		name := progress.Username
		if name == "" {
			name = target.Username
		}

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("📈 Progresso de %s", name),
			Description: progressLine,
			Color:       0xE67E22,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Nível", Value: fmt.Sprintf("%d", progress.Level), Inline: true},
				{Name: "XP", Value: fmt.Sprintf("%d", progress.XP), Inline: true},
			},
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
