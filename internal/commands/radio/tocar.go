package radio

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	radiosvc "github.com/ignislabs/ignis-go/internal/radio"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// createTocarCommand creates the /radio tocar subcommand
func createTocarCommand(manager *radiosvc.Manager) *discord.Command {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(manager.Stations()))
	for _, st := range manager.Stations() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s — %s", st.Name, st.Description),
			Value: st.Name,
		})
	}

	return discord.NewCommand(
		"tocar",
		"Toca uma estação de rádio no seu canal de voz",
		"radio",
		tocarHandler(manager),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "estacao",
			Description: "Estação do catálogo",
			Required:    true,
			Choices:     choices,
		},
	).RequiresVoice()
}

// tocarHandler handles the /radio tocar command
func tocarHandler(manager *radiosvc.Manager) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		station := ctx.GetStringOption("estacao")
		voiceChannel := ctx.VoiceChannelID()

		if err := ctx.Defer(); err != nil {
			return err
		}

		info, err := manager.Start(ctx.Interaction.GuildID, voiceChannel, ctx.User().ID, station)
		if err != nil {
			if errors.Is(err, radiosvc.ErrUnknownStation) {
				return ctx.EditReply("❌ Estação desconhecida. Veja as opções em `/radio tocar`.")
			}
			return ctx.EditReply("❌ Não consegui iniciar a rádio agora. Tente de novo em instantes.")
		}

		return ctx.EditReplyEmbed(&discordgo.MessageEmbed{
			Title:       "📻 Rádio no ar!",
			Description: fmt.Sprintf("Tocando **%s** em <#%s>\n%s", info.Station.Name, info.ChannelID, info.Station.Description),
			Color:       0x9B59B6,
			Footer: &discordgo.MessageEmbedFooter{
				Text: "🔥 Ignis",
			},
		})
	}
}
