package lembrete

import (
	"github.com/bwmarrin/discordgo"
	"github.com/ignislabs/ignis-go/internal/reminders"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// createApagarCommand creates the /lembrete apagar subcommand
func createApagarCommand(svc *reminders.Service) *discord.Command {
	return discord.NewCommand(
		"apagar",
		"Cancela um lembrete pelo código",
		"lembrete",
		apagarHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "codigo",
			Description: "Código do lembrete (veja /lembrete listar)",
			Required:    true,
		},
	).RequiresDatabase()
}

// apagarHandler handles the /lembrete apagar command
func apagarHandler(svc *reminders.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		id := ctx.GetStringOption("codigo")

		err := svc.Delete(ctx.User().ID, id)
		switch err {
		case nil:
			return ctx.ReplyEphemeral("🗑️ Lembrete cancelado.")
		case reminders.ErrNotFound:
			return ctx.ReplyEphemeral("❌ Lembrete não encontrado. Confira o código em `/lembrete listar`.")
		default:
			return ctx.ReplyEphemeral("❌ Não consegui cancelar o lembrete agora.")
		}
	}
}
