// Package events registra os handlers de eventos do gateway: mensagens
// (XP e relay de auditoria), voz (acúmulo e ouvintes da rádio),
// membros e guilds.
package events

import (
	"github.com/ignislabs/ignis-go/internal/leveling"
	"github.com/ignislabs/ignis-go/internal/radio"
	"github.com/ignislabs/ignis-go/pkg/config"
	"github.com/ignislabs/ignis-go/pkg/discord"
	"github.com/ignislabs/ignis-go/pkg/logger"
)

// Deps agrupa os serviços que os handlers de evento consultam. Nada
// aqui é global: cada handler recebe o que usa.
type Deps struct {
	Client   *discord.ExtendedClient
	Leveling *leveling.Service
	Radio    *radio.Manager
	Config   *config.Config
}

// RegisterAll registers all events with the Discord client
func RegisterAll(deps Deps) {
	logger.System("📋 Registrando eventos do bot...", "Events")

	registerReadyEvents(deps)
	registerGuildEvents(deps)
	registerMemberEvents(deps)
	registerMessageEvents(deps)
	registerVoiceEvents(deps)
	registerShardEvents(deps)

	logger.Success("✅ Todos os eventos registrados", "Events")
}
