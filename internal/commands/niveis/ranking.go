package niveis

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/ignislabs/ignis-go/internal/leveling"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// createRankingCommand creates the /ranking command
func createRankingCommand(svc *leveling.Service) *discord.Command {
	return discord.NewCommand(
		"ranking",
		"Mostra os 10 primeiros do ranking de níveis",
		"niveis",
		rankingHandler(svc),
	).RequiresDatabase()
}

// rankingHandler handles the /ranking command
func rankingHandler(svc *leveling.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		top, err := svc.Ledger().Top(10)
		if err != nil {
			return ctx.ReplyEphemeral("❌ Não consegui carregar o ranking agora.")
		}
		if len(top) == 0 {
			return ctx.Reply("📊 Ninguém ganhou XP ainda. Seja o primeiro!")
		}

		medals := []string{"🥇", "🥈", "🥉"}
		var sb strings.Builder
		for i, p := range top {
			marker := fmt.Sprintf("**%d.**", i+1)
			if i < len(medals) {
				marker = medals[i]
			}

			name := p.Username
			if name == "" {
				name = fmt.Sprintf("<@%s>", p.UserID)
			}

			sb.WriteString(fmt.Sprintf("%s %s — nível **%d** (%d XP)\n", marker, name, p.Level, p.XP))
		}

		embed := &discordgo.MessageEmbed{
			Title:       "🏆 Ranking de níveis",
			Description: sb.String(),
			Color:       0xF1C40F,
			Footer: &discordgo.MessageEmbedFooter{
				Text: "🔥 Ignis",
			},
		}

		return ctx.ReplyEmbed(embed)
	}
}
