// Package commands amarra o registro de todos os comandos do bot,
// organizados em subpacotes por categoria.
package commands

import (
	"github.com/ignislabs/ignis-go/internal/commands/dev"
	"github.com/ignislabs/ignis-go/internal/commands/economia"
	"github.com/ignislabs/ignis-go/internal/commands/lembrete"
	"github.com/ignislabs/ignis-go/internal/commands/mod"
	"github.com/ignislabs/ignis-go/internal/commands/niveis"
	radiocmd "github.com/ignislabs/ignis-go/internal/commands/radio"
	"github.com/ignislabs/ignis-go/internal/commands/utils"
	"github.com/ignislabs/ignis-go/internal/economy"
	"github.com/ignislabs/ignis-go/internal/leveling"
	"github.com/ignislabs/ignis-go/internal/radio"
	"github.com/ignislabs/ignis-go/internal/reminders"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// Services agrupa os serviços que os comandos consomem
type Services struct {
	Leveling  *leveling.Service
	Economy   *economy.Service
	Radio     *radio.Manager
	Reminders *reminders.Service
}

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient, svcs Services) {
	utils.Register(client)
	niveis.Register(client, svcs.Leveling)
	economia.Register(client, svcs.Economy)
	mod.Register(client)
	radiocmd.Register(client, svcs.Radio)
	lembrete.Register(client, svcs.Reminders)
	dev.Register(client)
}
