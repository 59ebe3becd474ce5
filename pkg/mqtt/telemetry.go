package mqtt

import (
	"fmt"
	"time"
)

// LevelUpEvent é o payload publicado quando um usuário sobe de nível
type LevelUpEvent struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Level     int    `json:"level"`
	Timestamp int64  `json:"timestamp"`
}

// RadioStateEvent é o payload publicado a cada mudança de estado da rádio
type RadioStateEvent struct {
	GuildID   string `json:"guildId"`
	Station   string `json:"station"`
	Playing   bool   `json:"playing"`
	Listeners int    `json:"listeners"`
	Timestamp int64  `json:"timestamp"`
}

// Telemetry publica os eventos do bot em tópicos ignis/*. Um
// communicator nulo vira no-op, então os serviços não precisam
// verificar se o MQTT está habilitado.
type Telemetry struct {
	mc *MqttCommunicator
}

// NewTelemetry wraps a communicator. mc may be nil.
func NewTelemetry(mc *MqttCommunicator) *Telemetry {
	return &Telemetry{mc: mc}
}

// PublishLevelUp publica uma subida de nível em ignis/niveis/levelup
func (t *Telemetry) PublishLevelUp(userID, username string, level int) {
	if t == nil || t.mc == nil {
		return
	}
	t.mc.Publish("ignis/niveis/levelup", LevelUpEvent{
		UserID:    userID,
		Username:  username,
		Level:     level,
		Timestamp: time.Now().UnixMilli(),
	})
}

// PublishRadioState publica o estado da rádio de uma guild
func (t *Telemetry) PublishRadioState(guildID, station string, playing bool, listeners int) {
	if t == nil || t.mc == nil {
		return
	}
	topic := fmt.Sprintf("ignis/radio/%s/estado", guildID)
	t.mc.Publish(topic, RadioStateEvent{
		GuildID:   guildID,
		Station:   station,
		Playing:   playing,
		Listeners: listeners,
		Timestamp: time.Now().UnixMilli(),
	})
}
