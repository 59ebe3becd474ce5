// Package economia fornece os comandos de moedas: /saldo e /diario.
package economia

import (
	"github.com/ignislabs/ignis-go/internal/economy"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// Register registers the economy commands
func Register(client *discord.ExtendedClient, svc *economy.Service) {
	client.CommandHandler.RegisterCommand(createSaldoCommand(svc))
	client.CommandHandler.RegisterCommand(createDiarioCommand(svc))
}
