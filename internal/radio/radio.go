// Package radio implementa a rádio do servidor: estações de stream
// contínuo tocadas num canal de voz, com dono de sessão, contagem de
// ouvintes e desligamento automático quando o canal esvazia.
package radio

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ignislabs/ignis-go/pkg/logger"
	"github.com/ignislabs/ignis-go/pkg/scheduler"
)

// IdleTimeout é quanto tempo a rádio toca sozinha antes de desligar
const IdleTimeout = 5 * time.Minute

// Station é uma estação do catálogo
type Station struct {
	Name        string
	URL         string
	Description string
}

// DefaultStations é o catálogo embutido de estações
var DefaultStations = []Station{
	{Name: "lofi", URL: "https://streams.ilovemusic.de/iloveradio17.mp3", Description: "Lo-fi para estudar e relaxar"},
	{Name: "rock", URL: "https://streams.ilovemusic.de/iloveradio21.mp3", Description: "Rock clássico e moderno"},
	{Name: "dance", URL: "https://streams.ilovemusic.de/iloveradio2.mp3", Description: "Dance e eletrônica"},
	{Name: "hiphop", URL: "https://streams.ilovemusic.de/iloveradio3.mp3", Description: "Hip hop e rap"},
	{Name: "chill", URL: "https://streams.ilovemusic.de/iloveradio10.mp3", Description: "Chillout para o fim do dia"},
}

// Player é a camada de reprodução por trás da rádio. Devolve o título
// resolvido do stream ao iniciar.
type Player interface {
	Play(guildID, voiceChannelID, streamURL string) (string, error)
	Stop(guildID string) error
}

// Telemetry publica mudanças de estado da rádio
type Telemetry interface {
	PublishRadioState(guildID, station string, playing bool, listeners int)
}

// Session é uma sessão de rádio ativa numa guild
type Session struct {
	GuildID      string
	ChannelID    string
	Station      Station
	OwnerID      string
	TrackTitle   string
	StartedAt    time.Time
	listeners    map[string]struct{}
	idleShutdown *scheduler.TaskHandle
}

// SessionInfo é um retrato imutável de uma sessão para exibição
type SessionInfo struct {
	GuildID    string
	ChannelID  string
	Station    Station
	OwnerID    string
	TrackTitle string
	StartedAt  time.Time
	Listeners  int
}

// ErrNoSession indica que a guild não tem rádio tocando
var ErrNoSession = fmt.Errorf("nenhuma rádio tocando nesta guild")

// ErrNotOwner indica que quem pediu a parada não iniciou a sessão
var ErrNotOwner = fmt.Errorf("apenas quem iniciou a rádio pode pará-la")

// ErrUnknownStation indica uma estação fora do catálogo
var ErrUnknownStation = fmt.Errorf("estação desconhecida")

// Manager controla as sessões de rádio de todas as guilds
type Manager struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	stations  []Station
	player    Player
	telemetry Telemetry
	sched     *scheduler.Scheduler
	now       func() time.Time
}

// New creates a radio manager. telemetry and now may be nil.
func New(player Player, telemetry Telemetry, sched *scheduler.Scheduler, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{
		sessions:  make(map[string]*Session),
		stations:  DefaultStations,
		player:    player,
		telemetry: telemetry,
		sched:     sched,
		now:       now,
	}
}

// SetPlayer troca a camada de reprodução. Usado na inicialização: o
// player real só existe depois do login no Discord.
func (m *Manager) SetPlayer(player Player) {
	m.mu.Lock()
	m.player = player
	m.mu.Unlock()
}

// Stations devolve o catálogo em ordem alfabética
func (m *Manager) Stations() []Station {
	out := make([]Station, len(m.stations))
	copy(out, m.stations)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FindStation procura uma estação pelo nome
func (m *Manager) FindStation(name string) (Station, bool) {
	for _, st := range m.stations {
		if st.Name == name {
			return st, true
		}
	}
	return Station{}, false
}

// Start começa (ou troca) a rádio da guild no canal de voz informado.
// Quem inicia vira o dono da sessão.
func (m *Manager) Start(guildID, voiceChannelID, ownerID, stationName string) (*SessionInfo, error) {
	station, ok := m.FindStation(stationName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStation, stationName)
	}

	m.mu.Lock()
	player := m.player
	m.mu.Unlock()
	if player == nil {
		return nil, fmt.Errorf("o player da rádio ainda não está pronto")
	}

	title, err := player.Play(guildID, voiceChannelID, station.URL)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if existing, ok := m.sessions[guildID]; ok && existing.idleShutdown != nil {
		existing.idleShutdown.Stop()
	}

	session := &Session{
		GuildID:    guildID,
		ChannelID:  voiceChannelID,
		Station:    station,
		OwnerID:    ownerID,
		TrackTitle: title,
		StartedAt:  m.now(),
		listeners:  map[string]struct{}{ownerID: {}},
	}
	m.sessions[guildID] = session
	listeners := len(session.listeners)
	m.mu.Unlock()

	logger.Info(fmt.Sprintf("Rádio '%s' iniciada na guild %s por %s", station.Name, guildID, ownerID), "Radio")

	if m.telemetry != nil {
		m.telemetry.PublishRadioState(guildID, station.Name, true, listeners)
	}

	info := m.Info(guildID)
	return info, nil
}

// Stop encerra a sessão da guild. Só o dono pode parar; um userID
// vazio ignora a checagem (parada do próprio sistema).
func (m *Manager) Stop(guildID, userID string) error {
	m.mu.Lock()
	session, ok := m.sessions[guildID]
	if !ok {
		m.mu.Unlock()
		return ErrNoSession
	}
	if userID != "" && session.OwnerID != userID {
		m.mu.Unlock()
		return ErrNotOwner
	}

	if session.idleShutdown != nil {
		session.idleShutdown.Stop()
	}
	delete(m.sessions, guildID)
	station := session.Station.Name
	player := m.player
	m.mu.Unlock()

	if player != nil {
		if err := player.Stop(guildID); err != nil {
			logger.Warn(fmt.Sprintf("Falha ao parar o player da guild %s: %v", guildID, err), "Radio")
		}
	}

	logger.Info(fmt.Sprintf("Rádio '%s' encerrada na guild %s", station, guildID), "Radio")

	if m.telemetry != nil {
		m.telemetry.PublishRadioState(guildID, station, false, 0)
	}
	return nil
}

// Info devolve um retrato da sessão da guild, ou nil se não há rádio
func (m *Manager) Info(guildID string) *SessionInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[guildID]
	if !ok {
		return nil
	}
	return &SessionInfo{
		GuildID:    session.GuildID,
		ChannelID:  session.ChannelID,
		Station:    session.Station,
		OwnerID:    session.OwnerID,
		TrackTitle: session.TrackTitle,
		StartedAt:  session.StartedAt,
		Listeners:  len(session.listeners),
	}
}

// ListenerJoined registra um ouvinte entrando no canal da rádio e
// cancela o desligamento por inatividade, se armado
func (m *Manager) ListenerJoined(guildID, userID string) {
	m.mu.Lock()
	session, ok := m.sessions[guildID]
	if !ok {
		m.mu.Unlock()
		return
	}

	session.listeners[userID] = struct{}{}
	if session.idleShutdown != nil {
		session.idleShutdown.Stop()
		session.idleShutdown = nil
	}
	station := session.Station.Name
	listeners := len(session.listeners)
	m.mu.Unlock()

	if m.telemetry != nil {
		m.telemetry.PublishRadioState(guildID, station, true, listeners)
	}
}

// ListenerLeft registra a saída de um ouvinte. Quando o canal esvazia
// a sessão fica armada para desligar depois de IdleTimeout.
func (m *Manager) ListenerLeft(guildID, userID string) {
	m.mu.Lock()
	session, ok := m.sessions[guildID]
	if !ok {
		m.mu.Unlock()
		return
	}

	delete(session.listeners, userID)
	station := session.Station.Name
	listeners := len(session.listeners)

	if listeners == 0 && session.idleShutdown == nil && m.sched != nil {
		gid := guildID
		session.idleShutdown = m.sched.After(IdleTimeout, "radio-ociosa-"+gid, func() {
			m.shutdownIfIdle(gid)
		})
	}
	m.mu.Unlock()

	if m.telemetry != nil {
		m.telemetry.PublishRadioState(guildID, station, true, listeners)
	}
}

// shutdownIfIdle encerra a sessão se o canal continua vazio
func (m *Manager) shutdownIfIdle(guildID string) {
	m.mu.Lock()
	session, ok := m.sessions[guildID]
	if !ok || len(session.listeners) > 0 {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	logger.Info(fmt.Sprintf("Rádio da guild %s sem ouvintes, desligando", guildID), "Radio")
	if err := m.Stop(guildID, ""); err != nil && err != ErrNoSession {
		logger.Warn(fmt.Sprintf("Falha no desligamento automático da rádio: %v", err), "Radio")
	}
}

// ChannelID devolve o canal da sessão ativa, ou vazio
func (m *Manager) ChannelID(guildID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if session, ok := m.sessions[guildID]; ok {
		return session.ChannelID
	}
	return ""
}
