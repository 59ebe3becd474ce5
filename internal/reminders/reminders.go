// Package reminders implementa lembretes agendados: criação com
// persistência no Mongo, disparo pelo scheduler e recarga dos
// pendentes na inicialização.
package reminders

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ignislabs/ignis-go/pkg/database"
	"github.com/ignislabs/ignis-go/pkg/logger"
	"github.com/ignislabs/ignis-go/pkg/models"
	"github.com/ignislabs/ignis-go/pkg/scheduler"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	// MaxPerUser limita quantos lembretes pendentes um usuário pode ter
	MaxPerUser = 10
	// MaxDelay é o prazo máximo de um lembrete
	MaxDelay = 90 * 24 * time.Hour
)

// ErrTooMany indica que o usuário atingiu o limite de lembretes
var ErrTooMany = fmt.Errorf("limite de lembretes pendentes atingido")

// ErrBadDelay indica um prazo não positivo ou longo demais
var ErrBadDelay = fmt.Errorf("prazo do lembrete inválido")

// ErrNotFound indica um lembrete inexistente ou de outro usuário
var ErrNotFound = fmt.Errorf("lembrete não encontrado")

// Notifier entrega o aviso do lembrete no canal de origem
type Notifier interface {
	NotifyReminder(channelID, userID, message string) error
}

// Service gerencia os lembretes. O estado em memória é só o conjunto
// de timers armados; a fonte de verdade é a coleção "lembretes".
type Service struct {
	store    *database.DataManager[models.Reminder]
	notifier Notifier
	sched    *scheduler.Scheduler
	now      func() time.Time

	mu      sync.Mutex
	pending map[string]*scheduler.TaskHandle
}

// New creates the reminder service. now may be nil.
func New(store *database.DataManager[models.Reminder], notifier Notifier, sched *scheduler.Scheduler, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:    store,
		notifier: notifier,
		sched:    sched,
		now:      now,
		pending:  make(map[string]*scheduler.TaskHandle),
	}
}

// Create persiste um lembrete novo e arma seu disparo
func (s *Service) Create(userID, channelID, message string, delay time.Duration) (*models.Reminder, error) {
	if delay <= 0 || delay > MaxDelay {
		return nil, ErrBadDelay
	}

	existing, err := s.store.GetAll(bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	if len(existing) >= MaxPerUser {
		return nil, ErrTooMany
	}

	now := s.now()
	reminder := &models.Reminder{
		ID:        uuid.New().String(),
		UserID:    userID,
		ChannelID: channelID,
		Message:   message,
		FireAt:    now.Add(delay),
		CreatedAt: now,
	}

	if err := s.store.InsertOne(reminder); err != nil {
		return nil, err
	}

	s.arm(reminder)
	return reminder, nil
}

// ListForUser devolve os lembretes pendentes do usuário
func (s *Service) ListForUser(userID string) ([]*models.Reminder, error) {
	return s.store.GetAll(bson.M{"userId": userID})
}

// Delete cancela e remove um lembrete do próprio usuário
func (s *Service) Delete(userID, reminderID string) error {
	reminder, err := s.store.Get(bson.M{"_id": reminderID})
	if err != nil {
		return err
	}
	if reminder == nil || reminder.UserID != userID {
		return ErrNotFound
	}

	s.disarm(reminderID)
	return s.store.Delete(bson.M{"_id": reminderID})
}

// LoadPending recarrega os lembretes do banco na inicialização.
// Lembretes vencidos durante o downtime disparam de imediato.
func (s *Service) LoadPending() error {
	pending, err := s.store.GetAll(bson.M{})
	if err != nil {
		return err
	}

	for _, reminder := range pending {
		s.arm(reminder)
	}

	logger.Info(fmt.Sprintf("%d lembrete(s) pendente(s) recarregado(s)", len(pending)), "Lembretes")
	return nil
}

// arm agenda o disparo do lembrete
func (s *Service) arm(reminder *models.Reminder) {
	delay := reminder.FireAt.Sub(s.now())
	if delay < 0 {
		delay = 0
	}

	id := reminder.ID
	handle := s.sched.After(delay, "lembrete-"+id, func() {
		s.fire(id)
	})

	s.mu.Lock()
	s.pending[id] = handle
	s.mu.Unlock()
}

// disarm cancela o timer de um lembrete, se armado
func (s *Service) disarm(reminderID string) {
	s.mu.Lock()
	if handle, ok := s.pending[reminderID]; ok {
		handle.Stop()
		delete(s.pending, reminderID)
	}
	s.mu.Unlock()
}

// fire entrega o lembrete e o remove do banco. A releitura garante que
// um lembrete apagado entre o agendamento e o disparo não avisa.
func (s *Service) fire(reminderID string) {
	s.mu.Lock()
	delete(s.pending, reminderID)
	s.mu.Unlock()

	reminder, err := s.store.Get(bson.M{"_id": reminderID})
	if err != nil {
		logger.Error(fmt.Sprintf("Falha ao reler lembrete %s: %v", reminderID, err), "Lembretes")
		return
	}
	if reminder == nil {
		return
	}

	if err := s.notifier.NotifyReminder(reminder.ChannelID, reminder.UserID, reminder.Message); err != nil {
		logger.Error(fmt.Sprintf("Falha ao entregar lembrete %s: %v", reminderID, err), "Lembretes")
		return
	}

	if err := s.store.Delete(bson.M{"_id": reminderID}); err != nil {
		logger.Warn(fmt.Sprintf("Falha ao remover lembrete entregue %s: %v", reminderID, err), "Lembretes")
	}
}

// PendingCount devolve quantos timers estão armados
func (s *Service) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
