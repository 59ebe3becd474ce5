package events

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ignislabs/ignis-go/pkg/logger"
)

// registerMemberEvents registers all member-related event handlers
func registerMemberEvents(deps Deps) {
	deps.Client.Session.AddHandler(onGuildMemberAdd(deps))
	deps.Client.Session.AddHandler(onGuildMemberRemove(deps))
}

// onGuildMemberAdd dá as boas-vindas no canal de sistema da guild
func onGuildMemberAdd(deps Deps) func(*discordgo.Session, *discordgo.GuildMemberAdd) {
	return func(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
		if m.User == nil || m.User.Bot {
			return
		}

		logger.Info(fmt.Sprintf("👋 Novo membro: %s na guild %s", m.User.Username, m.GuildID), "Member")

		guild, err := s.Guild(m.GuildID)
		if err != nil {
			logger.Error(fmt.Sprintf("Erro obtendo a guild: %v", err), "Member")
			return
		}

		if guild.SystemChannelID == "" {
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       "Boas-vindas! 🎉",
			Description: fmt.Sprintf("Deem as boas-vindas a <@%s>!\nAgora somos **%d** membros.", m.User.ID, guild.MemberCount),
			Color:       0x2ECC71,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: m.User.AvatarURL("128"),
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text:    guild.Name,
				IconURL: guild.IconURL("64"),
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		if _, err := s.ChannelMessageSendEmbed(guild.SystemChannelID, embed); err != nil {
			logger.Error(fmt.Sprintf("Erro enviando boas-vindas: %v", err), "Member")
		}
	}
}

// onGuildMemberRemove despede o membro e limpa o progresso de níveis
// dele na guild principal
func onGuildMemberRemove(deps Deps) func(*discordgo.Session, *discordgo.GuildMemberRemove) {
	return func(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
		if m.User == nil || m.User.Bot {
			return
		}

		logger.Info(fmt.Sprintf("👋 Saída: %s deixou a guild %s", m.User.Username, m.GuildID), "Member")

		if deps.Leveling != nil && deps.Config != nil && m.GuildID == deps.Config.PrimaryGuildID {
			if err := deps.Leveling.Ledger().Delete(m.User.ID); err != nil {
				logger.Warn(fmt.Sprintf("Falha ao remover progresso de %s: %v", m.User.ID, err), "Member")
			}
		}

		guild, err := s.Guild(m.GuildID)
		if err != nil || guild.SystemChannelID == "" {
			return
		}

		embed := &discordgo.MessageEmbed{
			Description: fmt.Sprintf("👋 **%s** saiu do servidor.\nAgora somos **%d** membros.", m.User.Username, guild.MemberCount),
			Color:       0xE74C3C,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: m.User.AvatarURL("64"),
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		if _, err := s.ChannelMessageSendEmbed(guild.SystemChannelID, embed); err != nil {
			logger.Error(fmt.Sprintf("Erro enviando despedida: %v", err), "Member")
		}
	}
}
