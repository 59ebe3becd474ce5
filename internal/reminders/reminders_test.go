package reminders

import (
	"testing"
	"time"

	"github.com/ignislabs/ignis-go/pkg/models"
	"github.com/ignislabs/ignis-go/pkg/scheduler"
)

type recordingNotifier struct {
	delivered []string
}

func (n *recordingNotifier) NotifyReminder(channelID, userID, message string) error {
	n.delivered = append(n.delivered, message)
	return nil
}

func TestCreateRejectsBadDelay(t *testing.T) {
	svc := New(nil, &recordingNotifier{}, scheduler.New(nil), nil)

	if _, err := svc.Create("user1", "canal1", "oi", 0); err != ErrBadDelay {
		t.Errorf("prazo zero: erro = %v, esperado ErrBadDelay", err)
	}
	if _, err := svc.Create("user1", "canal1", "oi", -time.Minute); err != ErrBadDelay {
		t.Errorf("prazo negativo: erro = %v, esperado ErrBadDelay", err)
	}
	if _, err := svc.Create("user1", "canal1", "oi", MaxDelay+time.Hour); err != ErrBadDelay {
		t.Errorf("prazo acima do máximo: erro = %v, esperado ErrBadDelay", err)
	}
}

func TestArmAndDisarm(t *testing.T) {
	sched := scheduler.New(nil)
	defer sched.StopAll()
	svc := New(nil, &recordingNotifier{}, sched, nil)

	reminder := &models.Reminder{
		ID:     "lembrete-1",
		UserID: "user1",
		FireAt: time.Now().Add(time.Hour),
	}

	svc.arm(reminder)
	if got := svc.PendingCount(); got != 1 {
		t.Fatalf("PendingCount = %d, esperado 1", got)
	}

	svc.disarm("lembrete-1")
	if got := svc.PendingCount(); got != 0 {
		t.Errorf("PendingCount após disarm = %d, esperado 0", got)
	}

	// disarm de id desconhecido é inofensivo
	svc.disarm("inexistente")
}
