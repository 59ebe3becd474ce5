package radio

import (
	"testing"
	"time"

	"github.com/ignislabs/ignis-go/pkg/scheduler"
)

type fakePlayer struct {
	playing map[string]string
	failOn  string
}

func newFakePlayer() *fakePlayer {
	return &fakePlayer{playing: make(map[string]string)}
}

func (p *fakePlayer) Play(guildID, voiceChannelID, streamURL string) (string, error) {
	if p.failOn == streamURL {
		return "", ErrNoSession
	}
	p.playing[guildID] = streamURL
	return "Stream de Teste", nil
}

func (p *fakePlayer) Stop(guildID string) error {
	delete(p.playing, guildID)
	return nil
}

type stateEvent struct {
	station   string
	playing   bool
	listeners int
}

type fakeTelemetry struct {
	events []stateEvent
}

func (t *fakeTelemetry) PublishRadioState(guildID, station string, playing bool, listeners int) {
	t.events = append(t.events, stateEvent{station, playing, listeners})
}

func newTestManager() (*Manager, *fakePlayer, *fakeTelemetry) {
	player := newFakePlayer()
	telemetry := &fakeTelemetry{}
	sched := scheduler.New(nil)
	return New(player, telemetry, sched, func() time.Time { return time.Unix(1700000000, 0) }), player, telemetry
}

func TestStartAndInfo(t *testing.T) {
	m, player, telemetry := newTestManager()

	info, err := m.Start("guild1", "voz1", "dono", "lofi")
	if err != nil {
		t.Fatalf("Start falhou: %v", err)
	}

	if info.Station.Name != "lofi" {
		t.Errorf("estação = %q, esperado lofi", info.Station.Name)
	}
	if info.OwnerID != "dono" {
		t.Errorf("dono = %q, esperado dono", info.OwnerID)
	}
	if info.TrackTitle != "Stream de Teste" {
		t.Errorf("título = %q", info.TrackTitle)
	}
	if info.Listeners != 1 {
		t.Errorf("ouvintes = %d, esperado 1 (o dono)", info.Listeners)
	}
	if _, ok := player.playing["guild1"]; !ok {
		t.Error("player não foi acionado")
	}
	if len(telemetry.events) == 0 || !telemetry.events[0].playing {
		t.Error("telemetria de início não publicada")
	}
}

func TestStartUnknownStation(t *testing.T) {
	m, _, _ := newTestManager()

	if _, err := m.Start("guild1", "voz1", "dono", "inexistente"); err == nil {
		t.Error("estação fora do catálogo deveria falhar")
	}
}

func TestStopOnlyByOwner(t *testing.T) {
	m, player, _ := newTestManager()
	m.Start("guild1", "voz1", "dono", "rock")

	if err := m.Stop("guild1", "intruso"); err != ErrNotOwner {
		t.Errorf("Stop por não-dono = %v, esperado ErrNotOwner", err)
	}
	if err := m.Stop("guild1", "dono"); err != nil {
		t.Errorf("Stop pelo dono falhou: %v", err)
	}
	if _, ok := player.playing["guild1"]; ok {
		t.Error("player deveria ter parado")
	}
	if m.Info("guild1") != nil {
		t.Error("sessão deveria ter sido removida")
	}
}

func TestStopWithoutSession(t *testing.T) {
	m, _, _ := newTestManager()

	if err := m.Stop("guild1", "alguem"); err != ErrNoSession {
		t.Errorf("Stop sem sessão = %v, esperado ErrNoSession", err)
	}
}

func TestListenerTracking(t *testing.T) {
	m, _, _ := newTestManager()
	m.Start("guild1", "voz1", "dono", "chill")

	m.ListenerJoined("guild1", "ouvinte1")
	m.ListenerJoined("guild1", "ouvinte2")
	if got := m.Info("guild1").Listeners; got != 3 {
		t.Errorf("ouvintes = %d, esperado 3", got)
	}

	m.ListenerLeft("guild1", "ouvinte1")
	if got := m.Info("guild1").Listeners; got != 2 {
		t.Errorf("ouvintes = %d, esperado 2", got)
	}

	// Guild sem sessão é ignorada
	m.ListenerJoined("guild2", "ouvinte3")
	if m.Info("guild2") != nil {
		t.Error("guild sem rádio não deveria ganhar sessão")
	}
}

func TestIdleShutdownWhenEmpty(t *testing.T) {
	m, player, _ := newTestManager()
	m.Start("guild1", "voz1", "dono", "dance")

	m.ListenerLeft("guild1", "dono")
	m.shutdownIfIdle("guild1")

	if m.Info("guild1") != nil {
		t.Error("sessão vazia deveria ter sido desligada")
	}
	if _, ok := player.playing["guild1"]; ok {
		t.Error("player deveria ter parado no desligamento automático")
	}
}

func TestIdleShutdownSkippedWhenListenersReturn(t *testing.T) {
	m, _, _ := newTestManager()
	m.Start("guild1", "voz1", "dono", "dance")

	m.ListenerLeft("guild1", "dono")
	m.ListenerJoined("guild1", "dono")
	m.shutdownIfIdle("guild1")

	if m.Info("guild1") == nil {
		t.Error("sessão com ouvintes não deveria ser desligada")
	}
}

func TestStationsSorted(t *testing.T) {
	m, _, _ := newTestManager()

	stations := m.Stations()
	if len(stations) != len(DefaultStations) {
		t.Fatalf("catálogo com %d estações, esperado %d", len(stations), len(DefaultStations))
	}
	for i := 1; i < len(stations); i++ {
		if stations[i-1].Name > stations[i].Name {
			t.Errorf("catálogo fora de ordem: %q antes de %q", stations[i-1].Name, stations[i].Name)
		}
	}
}
