package radio

import (
	radiosvc "github.com/ignislabs/ignis-go/internal/radio"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// createPararCommand creates the /radio parar subcommand
func createPararCommand(manager *radiosvc.Manager) *discord.Command {
	return discord.NewCommand(
		"parar",
		"Para a rádio do servidor",
		"radio",
		pararHandler(manager),
	)
}

// pararHandler handles the /radio parar command
func pararHandler(manager *radiosvc.Manager) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		err := manager.Stop(ctx.Interaction.GuildID, ctx.User().ID)
		switch err {
		case nil:
			return ctx.Reply("🛑 Rádio desligada. Até a próxima!")
		case radiosvc.ErrNoSession:
			return ctx.ReplyEphemeral("❌ Não há rádio tocando neste servidor.")
		case radiosvc.ErrNotOwner:
			return ctx.ReplyEphemeral("❌ Apenas quem iniciou a rádio pode pará-la.")
		default:
			return ctx.ReplyEphemeral("❌ Não consegui parar a rádio agora.")
		}
	}
}
