package models

import "time"

// Reminder representa um lembrete agendado na coleção "lembretes"
type Reminder struct {
	ID        string    `bson:"_id" json:"id"`                // UUID gerado na criação
	UserID    string    `bson:"userId" json:"userId"`         // Dono do lembrete
	ChannelID string    `bson:"channelId" json:"channelId"`   // Canal onde avisar
	Message   string    `bson:"message" json:"message"`       // Texto do lembrete
	FireAt    time.Time `bson:"dispararEm" json:"dispararEm"` // Quando disparar
	CreatedAt time.Time `bson:"criadoEm" json:"criadoEm"`
}
