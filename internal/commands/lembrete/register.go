// Package lembrete fornece os comandos de lembretes agrupados sob
// /lembrete
package lembrete

import (
	"github.com/ignislabs/ignis-go/internal/reminders"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// Register registers the reminder commands as /lembrete subcommands
func Register(client *discord.ExtendedClient, svc *reminders.Service) {
	client.CommandHandler.RegisterGroup(
		"lembrete",
		"Lembretes agendados",
		false,
		createCriarCommand(svc),
		createListarCommand(svc),
		createApagarCommand(svc),
	)
}
