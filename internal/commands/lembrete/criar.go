package lembrete

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ignislabs/ignis-go/internal/reminders"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// createCriarCommand creates the /lembrete criar subcommand
func createCriarCommand(svc *reminders.Service) *discord.Command {
	return discord.NewCommand(
		"criar",
		"Cria um lembrete para daqui a alguns minutos",
		"lembrete",
		criarHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "minutos",
			Description: "Em quantos minutos avisar",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "mensagem",
			Description: "O que lembrar",
			Required:    true,
		},
	).RequiresDatabase()
}

// criarHandler handles the /lembrete criar command
func criarHandler(svc *reminders.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		minutes := ctx.GetIntOption("minutos")
		message := ctx.GetStringOption("mensagem")

		reminder, err := svc.Create(
			ctx.User().ID,
			ctx.Interaction.ChannelID,
			message,
			time.Duration(minutes)*time.Minute,
		)
		switch err {
		case nil:
		case reminders.ErrBadDelay:
			return ctx.ReplyEphemeral("❌ Prazo inválido. Use entre 1 minuto e 90 dias.")
		case reminders.ErrTooMany:
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ Você já tem %d lembretes pendentes. Apague algum com `/lembrete apagar`.", reminders.MaxPerUser))
		default:
			return ctx.ReplyEphemeral("❌ Não consegui criar o lembrete agora.")
		}

		return ctx.ReplyEphemeral(fmt.Sprintf("⏰ Lembrete criado! Aviso você <t:%d:R>.", reminder.FireAt.Unix()))
	}
}
