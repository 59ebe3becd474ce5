package utils

import (
	"fmt"
	"runtime"
	"time"

	"github.com/ignislabs/ignis-go/pkg/database"
	"github.com/ignislabs/ignis-go/pkg/discord"
	"github.com/ignislabs/ignis-go/pkg/errors"
)

// createStatusCommand creates the /status command
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Mostra o estado do bot",
		"utils",
		statusHandler,
	)
}

// statusHandler handles the /status command
func statusHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		db := database.Get()
		dbStatus, _ := db.GetStatus()

		uptime := time.Since(ctx.Client.StartTime).Round(time.Second)

		ctx.Reply(fmt.Sprintf(
			"📊 **Estado do Bot**\n"+
				"• Bot: 🟢 Online há %s\n"+
				"• Banco de dados: %s\n"+
				"• Servidores: %d\n"+
				"• Goroutines: %d",
			uptime,
			dbStatus,
			ctx.Client.GuildCount(),
			runtime.NumGoroutine(),
		))
	}()
	return nil
}
