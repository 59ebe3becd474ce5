// Package mod fornece os comandos de moderação agrupados sob /mod
package mod

import (
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// Register registers all moderation commands as /mod subcommands
func Register(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterGroup(
		"mod",
		"Comandos de moderação",
		false,
		createBanCommand(),
		createLimparCommand(),
	)
}
