// Package scheduler fornece tarefas periódicas e adiadas canceláveis.
// Substitui tickers soltos espalhados pelo código: cada tarefa devolve
// um handle que pode ser parado individualmente, e StopAll encerra
// tudo no desligamento do bot.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/ignislabs/ignis-go/pkg/logger"
)

// TaskHandle permite cancelar uma tarefa agendada
type TaskHandle struct {
	name string
	stop chan struct{}
	once sync.Once
}

// Stop cancels the task. Safe to call more than once.
func (h *TaskHandle) Stop() {
	h.once.Do(func() {
		close(h.stop)
	})
}

// Scheduler agenda e acompanha tarefas em segundo plano
type Scheduler struct {
	mu      sync.Mutex
	handles []*TaskHandle
	wg      sync.WaitGroup
	recover func()
}

// New creates a Scheduler. The recover function, when not nil, is
// deferred around every task execution (panic isolation).
func New(recoverFn func()) *Scheduler {
	return &Scheduler{recover: recoverFn}
}

func (s *Scheduler) track(h *TaskHandle) {
	s.mu.Lock()
	s.handles = append(s.handles, h)
	s.mu.Unlock()
}

func (s *Scheduler) run(fn func()) {
	if s.recover != nil {
		defer s.recover()
	}
	fn()
}

// Every executa fn a cada intervalo até o handle ser parado
func (s *Scheduler) Every(interval time.Duration, name string, fn func()) *TaskHandle {
	h := &TaskHandle{name: name, stop: make(chan struct{})}
	s.track(h)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.run(fn)
			case <-h.stop:
				logger.Debug(fmt.Sprintf("Tarefa periódica '%s' encerrada", name), "Scheduler")
				return
			}
		}
	}()

	return h
}

// After executa fn uma única vez após o atraso, salvo cancelamento
func (s *Scheduler) After(delay time.Duration, name string, fn func()) *TaskHandle {
	h := &TaskHandle{name: name, stop: make(chan struct{})}
	s.track(h)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			s.run(fn)
		case <-h.stop:
			logger.Debug(fmt.Sprintf("Tarefa adiada '%s' cancelada", name), "Scheduler")
		}
	}()

	return h
}

// StopAll cancela todas as tarefas e espera as goroutines terminarem
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	handles := make([]*TaskHandle, len(s.handles))
	copy(handles, s.handles)
	s.mu.Unlock()

	for _, h := range handles {
		h.Stop()
	}
	s.wg.Wait()
}
