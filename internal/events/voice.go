package events

import (
	"github.com/bwmarrin/discordgo"
)

// registerVoiceEvents registers all voice-related event handlers
func registerVoiceEvents(deps Deps) {
	deps.Client.Session.AddHandler(onVoiceStateUpdate(deps))
}

// onVoiceStateUpdate alimenta o rastreador de voz do sistema de níveis
// e a contagem de ouvintes da rádio
func onVoiceStateUpdate(deps Deps) func(*discordgo.Session, *discordgo.VoiceStateUpdate) {
	return func(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
		if v.UserID == s.State.User.ID {
			return
		}

		if deps.Leveling != nil {
			deps.Leveling.Voice().HandleUpdate(v)
		}

		if deps.Radio == nil {
			return
		}

		radioChannel := deps.Radio.ChannelID(v.GuildID)
		if radioChannel == "" {
			return
		}

		previous := ""
		if v.BeforeUpdate != nil {
			previous = v.BeforeUpdate.ChannelID
		}

		if v.ChannelID == radioChannel && previous != radioChannel {
			deps.Radio.ListenerJoined(v.GuildID, v.UserID)
		} else if previous == radioChannel && v.ChannelID != radioChannel {
			deps.Radio.ListenerLeft(v.GuildID, v.UserID)
		}
	}
}
