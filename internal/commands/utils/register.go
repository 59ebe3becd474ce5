// Package utils fornece os comandos utilitários: /ping e /status
package utils

import (
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// Register registers the utility commands
func Register(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createPingCommand())
	client.CommandHandler.RegisterCommand(createStatusCommand())
}
