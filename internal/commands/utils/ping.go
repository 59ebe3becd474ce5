package utils

import (
	"fmt"

	"github.com/ignislabs/ignis-go/pkg/discord"
	"github.com/ignislabs/ignis-go/pkg/errors"
)

// createPingCommand creates the /ping command
func createPingCommand() *discord.Command {
	return discord.NewCommand(
		"ping",
		"Mede a latência do bot",
		"utils",
		pingHandler,
	)
}

// pingHandler handles the /ping command
func pingHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		latency := ctx.Client.Session.HeartbeatLatency().Milliseconds()
		ctx.Reply(fmt.Sprintf("🏓 Pong! Latência: %dms", latency))
	}()
	return nil
}
