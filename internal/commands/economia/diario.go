package economia

import (
	"fmt"
	"time"

	"github.com/ignislabs/ignis-go/internal/economy"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// createDiarioCommand creates the /diario command
func createDiarioCommand(svc *economy.Service) *discord.Command {
	return discord.NewCommand(
		"diario",
		"Resgata sua recompensa diária de moedas",
		"economia",
		diarioHandler(svc),
	).RequiresDatabase()
}

// diarioHandler handles the /diario command
func diarioHandler(svc *economy.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		user := ctx.User()

		amount, balance, err := svc.ClaimDaily(user.ID)
		if err == economy.ErrDailyOnCooldown {
			next, nerr := svc.NextDaily(user.ID)
			if nerr != nil {
				return ctx.ReplyEphemeral("⏳ Você já resgatou hoje. Volte mais tarde!")
			}
			wait := time.Until(next).Round(time.Minute)
			return ctx.ReplyEphemeral(fmt.Sprintf("⏳ Você já resgatou hoje. Próximo resgate em **%s**.", wait))
		}
		if err != nil {
			return ctx.ReplyEphemeral("❌ Não consegui resgatar agora. Tente de novo em instantes.")
		}

		return ctx.Reply(fmt.Sprintf("🎁 Você resgatou **%d** moedas! Saldo atual: **%d**.", amount, balance))
	}
}
