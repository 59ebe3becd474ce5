// Package niveis fornece os comandos do sistema de níveis: /nivel e
// /ranking.
package niveis

import (
	"github.com/ignislabs/ignis-go/internal/leveling"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// Register registers the leveling commands
func Register(client *discord.ExtendedClient, svc *leveling.Service) {
	client.CommandHandler.RegisterCommand(createNivelCommand(svc))
	client.CommandHandler.RegisterCommand(createRankingCommand(svc))
}
