package lembrete

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/ignislabs/ignis-go/internal/reminders"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// createListarCommand creates the /lembrete listar subcommand
func createListarCommand(svc *reminders.Service) *discord.Command {
	return discord.NewCommand(
		"listar",
		"Lista seus lembretes pendentes",
		"lembrete",
		listarHandler(svc),
	).RequiresDatabase()
}

// listarHandler handles the /lembrete listar command
func listarHandler(svc *reminders.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		pending, err := svc.ListForUser(ctx.User().ID)
		if err != nil {
			return ctx.ReplyEphemeral("❌ Não consegui listar seus lembretes agora.")
		}
		if len(pending) == 0 {
			return ctx.ReplyEphemeral("Você não tem lembretes pendentes.")
		}

		var sb strings.Builder
		for _, r := range pending {
			text := r.Message
			if len(text) > 60 {
				text = text[:57] + "..."
			}
			sb.WriteString(fmt.Sprintf("`%s` — <t:%d:R>: %s\n", r.ID, r.FireAt.Unix(), text))
		}

		embed := &discordgo.MessageEmbed{
			Title:       "⏰ Seus lembretes",
			Description: sb.String(),
			Color:       0x3498DB,
			Footer: &discordgo.MessageEmbedFooter{
				Text: "Use /lembrete apagar com o código para cancelar",
			},
		}

		return ctx.ReplyEphemeralEmbed(embed)
	}
}
