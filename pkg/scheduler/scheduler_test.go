package scheduler

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestEvery(t *testing.T) {
	s := New(nil)

	var count int32
	h := s.Every(10*time.Millisecond, "teste", func() {
		atomic.AddInt32(&count, 1)
	})

	time.Sleep(55 * time.Millisecond)
	h.Stop()
	s.StopAll()

	got := atomic.LoadInt32(&count)
	if got < 3 {
		t.Errorf("tarefa executou %d vezes, esperava pelo menos 3", got)
	}

	// Depois de parada, não executa mais
	time.Sleep(30 * time.Millisecond)
	if after := atomic.LoadInt32(&count); after != got {
		t.Errorf("tarefa executou após Stop(): %d → %d", got, after)
	}
}

func TestAfter(t *testing.T) {
	s := New(nil)

	var fired int32
	s.After(10*time.Millisecond, "teste", func() {
		atomic.AddInt32(&fired, 1)
	})

	time.Sleep(40 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 1 {
		t.Errorf("tarefa adiada executou %d vezes, esperava 1", fired)
	}

	s.StopAll()
}

func TestAfterCancelled(t *testing.T) {
	s := New(nil)

	var fired int32
	h := s.After(50*time.Millisecond, "teste", func() {
		atomic.AddInt32(&fired, 1)
	})

	h.Stop()
	time.Sleep(80 * time.Millisecond)

	if atomic.LoadInt32(&fired) != 0 {
		t.Error("tarefa cancelada não deveria executar")
	}

	s.StopAll()
}

func TestStopAllIsIdempotent(t *testing.T) {
	s := New(nil)
	h := s.Every(10*time.Millisecond, "teste", func() {})

	h.Stop()
	h.Stop()
	s.StopAll()
	s.StopAll()
}

func TestRecoverIsolatesPanic(t *testing.T) {
	recovered := make(chan struct{}, 1)
	s := New(func() {
		if r := recover(); r != nil {
			select {
			case recovered <- struct{}{}:
			default:
			}
		}
	})

	s.After(5*time.Millisecond, "panico", func() {
		panic("boom")
	})

	select {
	case <-recovered:
	case <-time.After(time.Second):
		t.Fatal("panic não foi recuperado")
	}

	s.StopAll()
}
