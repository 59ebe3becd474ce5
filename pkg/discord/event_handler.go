// Package discord fornece o registrador de eventos do gateway.
package discord

import (
	"sync"

	"github.com/ignislabs/ignis-go/pkg/logger"
)

// EventHandler acompanha os handlers registrados na sessão
type EventHandler struct {
	client *ExtendedClient
	events []interface{}
	mu     sync.Mutex
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(client *ExtendedClient) *EventHandler {
	return &EventHandler{
		client: client,
		events: make([]interface{}, 0),
	}
}

// RegisterEvent adds an event handler to the Discord session
func (eh *EventHandler) RegisterEvent(handler interface{}) {
	eh.client.Session.AddHandler(handler)
	eh.mu.Lock()
	eh.events = append(eh.events, handler)
	eh.mu.Unlock()
	logger.Debug("Evento registrado", "EventHandler")
}

// Count returns how many event handlers were registered
func (eh *EventHandler) Count() int {
	eh.mu.Lock()
	defer eh.mu.Unlock()
	return len(eh.events)
}
