package leveling

import (
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ignislabs/ignis-go/pkg/logger"
)

const (
	// VoiceTickInterval é o período do acúmulo de XP por voz
	VoiceTickInterval = 5 * time.Second
	// voiceMinDwell é a permanência mínima antes do primeiro grant
	voiceMinDwell = 30 * time.Second
	// voiceCooldown é o intervalo mínimo entre grants por usuário
	voiceCooldown = 15 * time.Second
	// voiceXPAmount é o XP fixo concedido por grant de voz
	voiceXPAmount = 8
)

// VoiceSession é o estado efêmero de um usuário conectado em voz.
// Nunca é persistido: reinício do processo perde as sessões (limitação
// aceita; a varredura inicial reconstrói o que der).
type VoiceSession struct {
	GuildID    string
	ChannelID  string
	JoinTime   time.Time
	LastXPTime time.Time
}

// VoiceGrant identifica um usuário elegível a XP neste tick
type VoiceGrant struct {
	UserID    string
	GuildID   string
	ChannelID string
	Amount    int
}

// VoiceTracker mantém as sessões de voz em memória. O relógio é
// injetável para os testes dirigirem os ticks.
type VoiceTracker struct {
	mu       sync.Mutex
	sessions map[string]*VoiceSession
	now      func() time.Time
}

// NewVoiceTracker creates a tracker with the given clock
func NewVoiceTracker(now func() time.Time) *VoiceTracker {
	if now == nil {
		now = time.Now
	}
	return &VoiceTracker{
		sessions: make(map[string]*VoiceSession),
		now:      now,
	}
}

// disqualified: mutado ou ensurdecido (por si ou pelo servidor) não acumula
func disqualified(v *discordgo.VoiceState) bool {
	return v.Mute || v.Deaf || v.SelfMute || v.SelfDeaf
}

// HandleUpdate aplica uma transição de estado de voz:
// entrada cria a sessão, saída ou desqualificação remove, e troca de
// canal só atualiza o canal sem zerar o tempo de entrada.
func (t *VoiceTracker) HandleUpdate(v *discordgo.VoiceStateUpdate) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if v.ChannelID == "" || disqualified(v.VoiceState) {
		delete(t.sessions, v.UserID)
		return
	}

	if session, ok := t.sessions[v.UserID]; ok {
		session.ChannelID = v.ChannelID
		session.GuildID = v.GuildID
		return
	}

	t.sessions[v.UserID] = &VoiceSession{
		GuildID:   v.GuildID,
		ChannelID: v.ChannelID,
		JoinTime:  t.now(),
	}
}

// Rescan reconstrói as sessões a partir dos estados de voz atuais dos
// servidores acompanhados. Falha em um servidor individual é pulada.
func (t *VoiceTracker) Rescan(s *discordgo.Session, guildIDs []string) {
	for _, guildID := range guildIDs {
		guild, err := s.State.Guild(guildID)
		if err != nil {
			logger.Warn(fmt.Sprintf("Varredura de voz pulou o servidor %s: %v", guildID, err), "Voz")
			continue
		}

		t.mu.Lock()
		for _, vs := range guild.VoiceStates {
			if vs.ChannelID == "" || disqualified(vs) {
				continue
			}
			if _, ok := t.sessions[vs.UserID]; ok {
				continue
			}
			t.sessions[vs.UserID] = &VoiceSession{
				GuildID:   guildID,
				ChannelID: vs.ChannelID,
				JoinTime:  t.now(),
			}
		}
		t.mu.Unlock()
	}

	logger.Info(fmt.Sprintf("Sessões de voz reconstruídas: %d", t.Count()), "Voz")
}

// DueGrants devolve os usuários elegíveis a XP neste tick, já marcando
// o horário do grant. Sessões sem servidor, com permanência curta ou
// em cooldown são puladas.
func (t *VoiceTracker) DueGrants() []VoiceGrant {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	var due []VoiceGrant

	for userID, session := range t.sessions {
		if session.GuildID == "" {
			continue
		}
		if now.Sub(session.JoinTime) < voiceMinDwell {
			continue
		}
		if !session.LastXPTime.IsZero() && now.Sub(session.LastXPTime) < voiceCooldown {
			continue
		}

		session.LastXPTime = now
		due = append(due, VoiceGrant{
			UserID:    userID,
			GuildID:   session.GuildID,
			ChannelID: session.ChannelID,
			Amount:    voiceXPAmount,
		})
	}

	return due
}

// Count devolve o número de sessões ativas
func (t *VoiceTracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

// Session devolve uma cópia da sessão de um usuário, se existir
func (t *VoiceTracker) Session(userID string) (VoiceSession, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.sessions[userID]; ok {
		return *s, true
	}
	return VoiceSession{}, false
}
