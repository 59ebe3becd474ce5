package leveling

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/ignislabs/ignis-go/pkg/logger"
)

const (
	rewardMin = 75
	rewardMax = 150
)

// CurrencyLedger é o colaborador de economia que credita a recompensa
type CurrencyLedger interface {
	Credit(userID string, amount int64) error
}

// Telemetry publica eventos de subida de nível para consumo externo
type Telemetry interface {
	PublishLevelUp(userID, username string, level int)
}

// Notifier anuncia subidas de nível e credita a recompensa em moedas.
// Uma subida de nível nunca propaga erro: falhas são registradas e
// engolidas, no máximo o anúncio deixa de aparecer.
type Notifier struct {
	session           *discordgo.Session
	economy           CurrencyLedger
	telemetry         Telemetry
	announceChannelID string
	mu                sync.Mutex
	rng               *rand.Rand
}

// NewNotifier creates a Notifier. telemetry may be nil.
func NewNotifier(session *discordgo.Session, economy CurrencyLedger, telemetry Telemetry, announceChannelID string, src rand.Source) *Notifier {
	return &Notifier{
		session:           session,
		economy:           economy,
		telemetry:         telemetry,
		announceChannelID: announceChannelID,
		rng:               rand.New(src),
	}
}

// rewardAmount sorteia a recompensa em moedas de uma subida de nível
func (n *Notifier) rewardAmount() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return int64(rewardMin + n.rng.Intn(rewardMax-rewardMin+1))
}

// LevelUp credita a recompensa e anuncia a subida no canal de anúncios
// configurado, caindo para o canal de origem quando não há um.
func (n *Notifier) LevelUp(userID, username, originChannelID string, newLevel int) {
	reward := n.rewardAmount()

	if n.economy != nil {
		if err := n.economy.Credit(userID, reward); err != nil {
			logger.Error(fmt.Sprintf("Falha ao creditar recompensa de nível para %s: %v", userID, err), "Niveis")
		}
	}

	if n.telemetry != nil {
		n.telemetry.PublishLevelUp(userID, username, newLevel)
	}

	display := username
	if display == "" {
		display = fmt.Sprintf("<@%s>", userID)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎉 Subida de nível!",
		Description: fmt.Sprintf("**%s** chegou ao nível **%d** e ganhou **%d** moedas!", display, newLevel, reward),
		Color:       0xF1C40F,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "🔥 Ignis",
		},
	}

	channelID := n.announceChannelID
	if channelID != "" {
		if _, err := n.session.ChannelMessageSendEmbed(channelID, embed); err == nil {
			return
		}
		logger.Warn(fmt.Sprintf("Falha ao anunciar no canal configurado %s, usando o canal de origem", channelID), "Niveis")
	}

	if originChannelID == "" {
		logger.Warn(fmt.Sprintf("Nenhum canal disponível para anunciar o nível %d de %s", newLevel, userID), "Niveis")
		return
	}

	if _, err := n.session.ChannelMessageSendEmbed(originChannelID, embed); err != nil {
		logger.Error(fmt.Sprintf("Falha ao anunciar subida de nível de %s: %v", userID, err), "Niveis")
	}
}
