package events

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ignislabs/ignis-go/pkg/logger"
)

// registerMessageEvents registers all message-related event handlers
func registerMessageEvents(deps Deps) {
	deps.Client.Session.AddHandler(onMessageCreate(deps))
	deps.Client.Session.AddHandler(onMessageUpdate(deps))
	deps.Client.Session.AddHandler(onMessageDelete(deps))
}

// onMessageCreate alimenta o sistema de níveis e responde a menções
func onMessageCreate(deps Deps) func(*discordgo.Session, *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot {
			return
		}

		if deps.Leveling != nil {
			deps.Leveling.HandleMessage(m)
		}

		for _, mention := range m.Mentions {
			if mention.ID != s.State.User.ID {
				continue
			}

			embed := &discordgo.MessageEmbed{
				Title:       "👋 Olá!",
				Description: "Use comandos **slash (/)** para falar comigo.\nExperimente `/nivel` para ver seu progresso ou `/radio tocar` para ouvir música.",
				Color:       0x3498DB,
			}
			if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
				logger.Error(fmt.Sprintf("Erro enviando resposta à menção: %v", err), "Message")
			}
			break
		}
	}
}

// onMessageUpdate repassa edições para o canal de logs
func onMessageUpdate(deps Deps) func(*discordgo.Session, *discordgo.MessageUpdate) {
	return func(s *discordgo.Session, m *discordgo.MessageUpdate) {
		if m.Author == nil || m.Author.Bot {
			return
		}
		if deps.Config == nil || deps.Config.LogChannelID == "" || m.ChannelID == deps.Config.LogChannelID {
			return
		}

		before := "*não disponível*"
		if m.BeforeUpdate != nil && m.BeforeUpdate.Content != "" {
			before = m.BeforeUpdate.Content
		}

		embed := &discordgo.MessageEmbed{
			Title:       "✏️ Mensagem editada",
			Description: fmt.Sprintf("Autor: <@%s> em <#%s>", m.Author.ID, m.ChannelID),
			Color:       0xE67E22,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Antes", Value: truncateField(before)},
				{Name: "Depois", Value: truncateField(m.Content)},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		if _, err := s.ChannelMessageSendEmbed(deps.Config.LogChannelID, embed); err != nil {
			logger.Debug(fmt.Sprintf("Falha no relay de edição: %v", err), "Message")
		}
	}
}

// onMessageDelete repassa exclusões para o canal de logs. O conteúdo
// só aparece quando a mensagem ainda estava no cache de estado.
func onMessageDelete(deps Deps) func(*discordgo.Session, *discordgo.MessageDelete) {
	return func(s *discordgo.Session, m *discordgo.MessageDelete) {
		if deps.Config == nil || deps.Config.LogChannelID == "" || m.ChannelID == deps.Config.LogChannelID {
			return
		}

		author := "*desconhecido*"
		content := "*não disponível*"
		if m.BeforeDelete != nil {
			if m.BeforeDelete.Author != nil {
				if m.BeforeDelete.Author.Bot {
					return
				}
				author = fmt.Sprintf("<@%s>", m.BeforeDelete.Author.ID)
			}
			if m.BeforeDelete.Content != "" {
				content = m.BeforeDelete.Content
			}
		}

		embed := &discordgo.MessageEmbed{
			Title:       "🗑️ Mensagem apagada",
			Description: fmt.Sprintf("Autor: %s em <#%s>", author, m.ChannelID),
			Color:       0xE74C3C,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Conteúdo", Value: truncateField(content)},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		if _, err := s.ChannelMessageSendEmbed(deps.Config.LogChannelID, embed); err != nil {
			logger.Debug(fmt.Sprintf("Falha no relay de exclusão: %v", err), "Message")
		}
	}
}

// truncateField limita o valor ao tamanho máximo de um campo de embed
func truncateField(s string) string {
	const max = 1024
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
