package reminders

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// DiscordNotifier entrega lembretes como mensagens no canal de origem
type DiscordNotifier struct {
	session *discordgo.Session
}

// NewDiscordNotifier wraps a Discord session
func NewDiscordNotifier(session *discordgo.Session) *DiscordNotifier {
	return &DiscordNotifier{session: session}
}

// NotifyReminder menciona o usuário com o texto do lembrete
func (n *DiscordNotifier) NotifyReminder(channelID, userID, message string) error {
	_, err := n.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: fmt.Sprintf("<@%s>", userID),
		Embed: &discordgo.MessageEmbed{
			Title:       "⏰ Lembrete",
			Description: message,
			Color:       0x3498DB,
			Footer: &discordgo.MessageEmbedFooter{
				Text: "🔥 Ignis",
			},
		},
	})
	return err
}
