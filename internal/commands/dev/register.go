// Package dev fornece os comandos de desenvolvimento agrupados sob
// /dev, registrados apenas na guild de desenvolvimento
package dev

import (
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// Register registers the dev commands as /dev subcommands
func Register(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterGroup(
		"dev",
		"Comandos de desenvolvimento",
		true,
		createEvalCommand(),
	)
}
