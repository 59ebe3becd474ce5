package events

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ignislabs/ignis-go/pkg/logger"
)

// registerGuildEvents registers all guild-related event handlers
func registerGuildEvents(deps Deps) {
	deps.Client.Session.AddHandler(onGuildCreate(deps))
	deps.Client.Session.AddHandler(onGuildDelete(deps))
}

// onGuildCreate is called when the bot joins a server
func onGuildCreate(deps Deps) func(*discordgo.Session, *discordgo.GuildCreate) {
	return func(s *discordgo.Session, g *discordgo.GuildCreate) {
		// GuildCreate também chega na sincronização inicial; só é uma
		// entrada nova quando o JoinedAt é recente
		if g.JoinedAt.Compare(time.Now().Add(-10*time.Second)) < 0 {
			return
		}

		logger.Info(fmt.Sprintf("➕ Bot adicionado à guild: %s (ID: %s)", g.Name, g.ID), "Guild")
		logger.Debug(fmt.Sprintf("   Membros: %d | Canais: %d", g.MemberCount, len(g.Channels)), "Guild")

		if g.SystemChannelID == "" {
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       "Obrigado por me adicionar! 🔥",
			Description: "Olá, eu sou o **Ignis**. Ganhe XP conversando e ouça música com a rádio do servidor.",
			Color:       0x2ECC71,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "📈 Níveis", Value: "Veja seu progresso com `/nivel`", Inline: true},
				{Name: "📻 Rádio", Value: "Toque uma estação com `/radio tocar`", Inline: true},
				{Name: "💰 Economia", Value: "Confira suas moedas com `/saldo`", Inline: true},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: "🔥 Ignis",
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		if _, err := s.ChannelMessageSendEmbed(g.SystemChannelID, embed); err != nil {
			logger.Error(fmt.Sprintf("Erro enviando apresentação: %v", err), "Guild")
		}
	}
}

// onGuildDelete is called when the bot is removed from a server
func onGuildDelete(deps Deps) func(*discordgo.Session, *discordgo.GuildDelete) {
	return func(s *discordgo.Session, g *discordgo.GuildDelete) {
		logger.Info(fmt.Sprintf("➖ Bot removido da guild ID: %s", g.ID), "Guild")
	}
}
