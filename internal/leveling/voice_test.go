package leveling

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

// fakeClock permite dirigir o relógio do rastreador nos testes
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func voiceUpdate(userID, guildID, channelID string) *discordgo.VoiceStateUpdate {
	return &discordgo.VoiceStateUpdate{
		VoiceState: &discordgo.VoiceState{
			UserID:    userID,
			GuildID:   guildID,
			ChannelID: channelID,
		},
	}
}

func TestVoiceAccrualTiming(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	tracker := NewVoiceTracker(clock.now)

	// t=0: usuário entra no canal
	tracker.HandleUpdate(voiceUpdate("user1", "guild1", "voz1"))

	// t=5s: permanência menor que a mínima, nada concedido
	clock.advance(5 * time.Second)
	if due := tracker.DueGrants(); len(due) != 0 {
		t.Fatalf("t=5s: %d grants, want 0 (permanência mínima)", len(due))
	}

	// t=35s: primeiro grant
	clock.advance(30 * time.Second)
	due := tracker.DueGrants()
	if len(due) != 1 {
		t.Fatalf("t=35s: %d grants, want 1", len(due))
	}
	if due[0].UserID != "user1" || due[0].Amount != voiceXPAmount {
		t.Errorf("grant = %+v inesperado", due[0])
	}

	// t=40s: dentro do cooldown, nada
	clock.advance(5 * time.Second)
	if due := tracker.DueGrants(); len(due) != 0 {
		t.Fatalf("t=40s: %d grants, want 0 (cooldown)", len(due))
	}

	// t=50s: cooldown vencido, novo grant
	clock.advance(10 * time.Second)
	if due := tracker.DueGrants(); len(due) != 1 {
		t.Fatalf("t=50s: %d grants, want 1", len(due))
	}
}

func TestVoiceLeaveRemovesSession(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	tracker := NewVoiceTracker(clock.now)

	tracker.HandleUpdate(voiceUpdate("user1", "guild1", "voz1"))
	if tracker.Count() != 1 {
		t.Fatal("sessão não foi criada")
	}

	tracker.HandleUpdate(voiceUpdate("user1", "guild1", ""))
	if tracker.Count() != 0 {
		t.Error("sessão não foi removida na saída")
	}
}

func TestVoiceMuteDisqualifies(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	tracker := NewVoiceTracker(clock.now)

	tracker.HandleUpdate(voiceUpdate("user1", "guild1", "voz1"))

	muted := voiceUpdate("user1", "guild1", "voz1")
	muted.SelfMute = true
	tracker.HandleUpdate(muted)

	if tracker.Count() != 0 {
		t.Error("sessão deveria ser removida ao mutar")
	}

	// Entrada já mutada nem cria sessão
	deafened := voiceUpdate("user2", "guild1", "voz1")
	deafened.Deaf = true
	tracker.HandleUpdate(deafened)

	if tracker.Count() != 0 {
		t.Error("entrada ensurdecida não deveria criar sessão")
	}
}

func TestVoiceChannelMoveKeepsJoinTime(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	tracker := NewVoiceTracker(clock.now)

	tracker.HandleUpdate(voiceUpdate("user1", "guild1", "voz1"))
	joined, _ := tracker.Session("user1")

	clock.advance(20 * time.Second)
	tracker.HandleUpdate(voiceUpdate("user1", "guild1", "voz2"))

	moved, ok := tracker.Session("user1")
	if !ok {
		t.Fatal("sessão sumiu na troca de canal")
	}
	if moved.ChannelID != "voz2" {
		t.Errorf("ChannelID = %q, want voz2", moved.ChannelID)
	}
	if !moved.JoinTime.Equal(joined.JoinTime) {
		t.Error("troca de canal não deve zerar o tempo de entrada")
	}

	// 20s no primeiro canal + 15s no segundo = 35s de permanência
	clock.advance(15 * time.Second)
	if due := tracker.DueGrants(); len(due) != 1 {
		t.Errorf("%d grants após a troca, want 1", len(due))
	}
}

func TestVoiceSessionWithoutGuildIsSkipped(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	tracker := NewVoiceTracker(clock.now)

	tracker.HandleUpdate(voiceUpdate("user1", "", "voz1"))
	clock.advance(time.Minute)

	if due := tracker.DueGrants(); len(due) != 0 {
		t.Errorf("%d grants para sessão sem servidor, want 0", len(due))
	}
}
