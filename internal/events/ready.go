package events

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/ignislabs/ignis-go/pkg/logger"
)

// registerReadyEvents registers the ready event handler
func registerReadyEvents(deps Deps) {
	deps.Client.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logger.Success(fmt.Sprintf("✅ Bot conectado: %s", r.User.Username), "Ready")
		logger.Info(fmt.Sprintf("📊 Conectado a %d servidor(es)", len(r.Guilds)), "Ready")

		if err := s.UpdateGameStatus(0, "🔥 /nivel | comunidade Ignis"); err != nil {
			logger.Error(fmt.Sprintf("Erro definindo o status: %v", err), "Ready")
		}
	})
}
