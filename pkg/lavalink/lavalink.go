// Package lavalink implementa o cliente Lavalink usado pela rádio do
// bot: conexão com o nó, carregamento de streams e controle de
// reprodução por guild.
package lavalink

import (
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/ignislabs/ignis-go/pkg/logger"
)

// NodeConfig holds configuration for a Lavalink node
type NodeConfig struct {
	Name     string
	Host     string
	Port     int
	Password string
	Secure   bool
}

// TrackInfo contains information about a track
type TrackInfo struct {
	Identifier string `json:"identifier"`
	IsSeekable bool   `json:"isSeekable"`
	Author     string `json:"author"`
	Length     int64  `json:"length"`
	IsStream   bool   `json:"isStream"`
	Position   int64  `json:"position"`
	Title      string `json:"title"`
	URI        string `json:"uri"`
	SourceName string `json:"sourceName"`
}

// Track represents a playable track
type Track struct {
	Encoded string    `json:"encoded"`
	Info    TrackInfo `json:"info"`
}

// LoadResult representa a resposta do endpoint loadtracks
type LoadResult struct {
	LoadType  string   `json:"loadType"`
	Tracks    []*Track `json:"tracks"`
	Exception *struct {
		Message  string `json:"message"`
		Severity string `json:"severity"`
	} `json:"exception"`
}

// GuildPlayer é o estado de reprodução de uma guild
type GuildPlayer struct {
	GuildID      string
	VoiceChannel string
	CurrentTrack *Track
	IsPlaying    bool
	Mu           sync.RWMutex
}

// Client gerencia a conexão com o nó Lavalink
type Client struct {
	session *discordgo.Session
	node    *Node
	players map[string]*GuildPlayer
	mu      sync.RWMutex
}

// Node represents a Lavalink node connection
type Node struct {
	config       NodeConfig
	conn         *websocket.Conn
	client       *Client
	connected    bool
	reconnecting bool
	mu           sync.RWMutex
}

var (
	lavalinkClient *Client
	once           sync.Once
)

// Init initializes the global Lavalink client
func Init(session *discordgo.Session, config NodeConfig) *Client {
	once.Do(func() {
		lavalinkClient = NewClient(session, config)
	})
	return lavalinkClient
}

// Get returns the global Lavalink client
func Get() *Client {
	return lavalinkClient
}

// NewClient creates a Lavalink client bound to a single node
func NewClient(session *discordgo.Session, config NodeConfig) *Client {
	logger.Debug("Inicializando cliente Lavalink", "Lavalink")

	client := &Client{
		session: session,
		players: make(map[string]*GuildPlayer),
	}
	client.node = &Node{
		config: config,
		client: client,
	}

	session.AddHandler(client.voiceStateUpdate)
	session.AddHandler(client.voiceServerUpdate)

	return client
}

// Connect connects to the Lavalink node
func (c *Client) Connect() {
	go c.node.connect()
}

// Connected reports whether the node connection is up
func (c *Client) Connected() bool {
	c.node.mu.RLock()
	defer c.node.mu.RUnlock()
	return c.node.connected
}

// connect establishes the websocket connection to the node
func (n *Node) connect() {
	n.mu.Lock()
	if n.connected || n.reconnecting {
		n.mu.Unlock()
		return
	}
	n.reconnecting = true
	n.mu.Unlock()

	scheme := "ws"
	if n.config.Secure {
		scheme = "wss"
	}

	endpoint := fmt.Sprintf("%s://%s:%d/v4/websocket", scheme, n.config.Host, n.config.Port)

	headers := http.Header{}
	headers.Set("Authorization", n.config.Password)
	headers.Set("User-Id", n.client.session.State.User.ID)
	headers.Set("Client-Name", "Ignis/1.0")

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, _, err := dialer.Dial(endpoint, headers)
	if err != nil {
		logger.Error(fmt.Sprintf("Falha ao conectar com o Lavalink %s: %v", n.config.Name, err), "Lavalink")
		n.mu.Lock()
		n.reconnecting = false
		n.mu.Unlock()

		go func() {
			time.Sleep(5 * time.Second)
			n.connect()
		}()
		return
	}

	n.mu.Lock()
	n.conn = conn
	n.connected = true
	n.reconnecting = false
	n.mu.Unlock()

	logger.Success(fmt.Sprintf("Conectado ao Lavalink: %s", n.config.Name), "Lavalink")

	go n.readMessages()
}

// readMessages reads messages from the Lavalink websocket
func (n *Node) readMessages() {
	for {
		_, message, err := n.conn.ReadMessage()
		if err != nil {
			logger.Warn(fmt.Sprintf("Erro lendo mensagem do Lavalink: %v", err), "Lavalink")
			n.handleDisconnect()
			return
		}

		var payload map[string]interface{}
		if err := json.Unmarshal(message, &payload); err != nil {
			continue
		}

		n.handleMessage(payload)
	}
}

// handleMessage processes incoming Lavalink messages
func (n *Node) handleMessage(payload map[string]interface{}) {
	op, ok := payload["op"].(string)
	if !ok {
		return
	}

	switch op {
	case "ready":
		logger.Info("Lavalink pronto", "Lavalink")
	case "event":
		n.handleEvent(payload)
	case "playerUpdate", "stats":
	}
}

// handleEvent handles Lavalink events
func (n *Node) handleEvent(payload map[string]interface{}) {
	eventType, ok := payload["type"].(string)
	if !ok {
		return
	}

	guildID, _ := payload["guildId"].(string)

	switch eventType {
	case "TrackStartEvent":
		logger.Info(fmt.Sprintf("Stream iniciado na guild %s", guildID), "Lavalink")
	case "TrackEndEvent":
		n.client.handleTrackEnd(guildID)
	case "TrackExceptionEvent":
		logger.Error(fmt.Sprintf("Exceção de stream na guild %s", guildID), "Lavalink")
		n.client.handleTrackEnd(guildID)
	case "TrackStuckEvent":
		logger.Warn(fmt.Sprintf("Stream travado na guild %s", guildID), "Lavalink")
	case "WebSocketClosedEvent":
		logger.Warn(fmt.Sprintf("WebSocket de voz fechado na guild %s", guildID), "Lavalink")
	}
}

// handleDisconnect handles node disconnection
func (n *Node) handleDisconnect() {
	n.mu.Lock()
	n.connected = false
	if n.conn != nil {
		n.conn.Close()
	}
	n.mu.Unlock()

	logger.Warn(fmt.Sprintf("Desconectado do Lavalink: %s. Tentando de novo...", n.config.Name), "Lavalink")

	time.Sleep(5 * time.Second)
	go n.connect()
}

// sendOp sends an operation to the Lavalink node
func (n *Node) sendOp(data map[string]interface{}) error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if !n.connected || n.conn == nil {
		return fmt.Errorf("nó Lavalink não conectado")
	}

	return n.conn.WriteJSON(data)
}

// player gets or creates the player for a guild
func (c *Client) player(guildID string) *GuildPlayer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, exists := c.players[guildID]; exists {
		return p
	}

	p := &GuildPlayer{GuildID: guildID}
	c.players[guildID] = p
	return p
}

// Player devolve o player da guild, ou nil se nunca tocou nada
func (c *Client) Player(guildID string) *GuildPlayer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.players[guildID]
}

// LoadStream resolve a URL de um stream em um Track reproduzível
func (c *Client) LoadStream(streamURL string) (*Track, error) {
	n := c.node
	if !c.Connected() {
		return nil, fmt.Errorf("nó Lavalink não conectado")
	}

	scheme := "http"
	if n.config.Secure {
		scheme = "https"
	}

	endpoint := fmt.Sprintf("%s://%s:%d/v4/loadtracks?identifier=%s",
		scheme, n.config.Host, n.config.Port, url.QueryEscape(streamURL))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", n.config.Password)

	httpClient := &http.Client{Timeout: 10 * time.Second}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result LoadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	if result.Exception != nil {
		return nil, fmt.Errorf("falha ao carregar stream: %s", result.Exception.Message)
	}
	if len(result.Tracks) == 0 {
		return nil, fmt.Errorf("nenhuma faixa encontrada para o stream")
	}

	return result.Tracks[0], nil
}

// Play conecta ao canal de voz e inicia a reprodução do track
func (c *Client) Play(guildID, voiceChannelID string, track *Track) error {
	p := c.player(guildID)
	p.Mu.Lock()
	p.VoiceChannel = voiceChannelID
	p.CurrentTrack = track
	p.IsPlaying = true
	p.Mu.Unlock()

	if err := c.session.ChannelVoiceJoinManual(guildID, voiceChannelID, false, true); err != nil {
		return fmt.Errorf("falha ao entrar no canal de voz: %w", err)
	}

	return c.node.sendOp(map[string]interface{}{
		"op":      "play",
		"guildId": guildID,
		"track":   track.Encoded,
	})
}

// Stop para a reprodução e sai do canal de voz
func (c *Client) Stop(guildID string) error {
	p := c.player(guildID)
	p.Mu.Lock()
	p.IsPlaying = false
	p.CurrentTrack = nil
	p.VoiceChannel = ""
	p.Mu.Unlock()

	if err := c.node.sendOp(map[string]interface{}{
		"op":      "stop",
		"guildId": guildID,
	}); err != nil {
		return err
	}

	return c.session.ChannelVoiceJoinManual(guildID, "", false, true)
}

// handleTrackEnd marca o player como parado quando o stream cai
func (c *Client) handleTrackEnd(guildID string) {
	c.mu.RLock()
	p, exists := c.players[guildID]
	c.mu.RUnlock()
	if !exists {
		return
	}

	p.Mu.Lock()
	p.IsPlaying = false
	p.CurrentTrack = nil
	p.Mu.Unlock()
}

func (c *Client) voiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	if v.UserID != s.State.User.ID {
		return
	}

	c.node.sendOp(map[string]interface{}{
		"op":        "voiceUpdate",
		"guildId":   v.GuildID,
		"sessionId": v.SessionID,
	})
}

func (c *Client) voiceServerUpdate(s *discordgo.Session, v *discordgo.VoiceServerUpdate) {
	c.node.sendOp(map[string]interface{}{
		"op":      "voiceUpdate",
		"guildId": v.GuildID,
		"event":   v,
	})
}

// Disconnect closes the node connection
func (c *Client) Disconnect() {
	c.node.mu.Lock()
	if c.node.conn != nil {
		c.node.conn.Close()
	}
	c.node.connected = false
	c.node.mu.Unlock()

	logger.System("Cliente Lavalink desconectado", "Lavalink")
}
