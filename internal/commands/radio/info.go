package radio

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	radiosvc "github.com/ignislabs/ignis-go/internal/radio"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// createInfoCommand creates the /radio info subcommand
func createInfoCommand(manager *radiosvc.Manager) *discord.Command {
	return discord.NewCommand(
		"info",
		"Mostra o que a rádio está tocando",
		"radio",
		infoHandler(manager),
	)
}

// infoHandler handles the /radio info command
func infoHandler(manager *radiosvc.Manager) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		info := manager.Info(ctx.Interaction.GuildID)
		if info == nil {
			return ctx.ReplyEphemeral("📻 Nenhuma rádio tocando. Inicie uma com `/radio tocar`.")
		}

		uptime := time.Since(info.StartedAt).Round(time.Second)

		embed := &discordgo.MessageEmbed{
			Title:       "📻 Rádio Ignis",
			Description: fmt.Sprintf("Tocando **%s** em <#%s>", info.Station.Name, info.ChannelID),
			Color:       0x9B59B6,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Estação", Value: info.Station.Description, Inline: false},
				{Name: "Ouvintes", Value: fmt.Sprintf("%d", info.Listeners), Inline: true},
				{Name: "No ar há", Value: uptime.String(), Inline: true},
				{Name: "Iniciada por", Value: fmt.Sprintf("<@%s>", info.OwnerID), Inline: true},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: "🔥 Ignis",
			},
		}

		return ctx.ReplyEmbed(embed)
	}
}
