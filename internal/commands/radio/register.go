// Package radio fornece os comandos da rádio agrupados sob /radio
package radio

import (
	radiosvc "github.com/ignislabs/ignis-go/internal/radio"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// Register registers the radio commands as /radio subcommands
func Register(client *discord.ExtendedClient, manager *radiosvc.Manager) {
	client.CommandHandler.RegisterGroup(
		"radio",
		"Rádio do servidor",
		false,
		createTocarCommand(manager),
		createPararCommand(manager),
		createInfoCommand(manager),
	)
}
