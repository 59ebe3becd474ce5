package radio

import "github.com/ignislabs/ignis-go/pkg/lavalink"

// LavalinkPlayer adapta o cliente Lavalink à camada de reprodução da
// rádio
type LavalinkPlayer struct {
	client *lavalink.Client
}

// NewLavalinkPlayer wraps a Lavalink client
func NewLavalinkPlayer(client *lavalink.Client) *LavalinkPlayer {
	return &LavalinkPlayer{client: client}
}

// Play resolve o stream e inicia a reprodução no canal de voz
func (p *LavalinkPlayer) Play(guildID, voiceChannelID, streamURL string) (string, error) {
	track, err := p.client.LoadStream(streamURL)
	if err != nil {
		return "", err
	}
	if err := p.client.Play(guildID, voiceChannelID, track); err != nil {
		return "", err
	}
	return track.Info.Title, nil
}

// Stop encerra a reprodução da guild
func (p *LavalinkPlayer) Stop(guildID string) error {
	return p.client.Stop(guildID)
}
