package leveling

import (
	"math/rand"
	"testing"
	"time"
)

func TestMessageXPAmountRanges(t *testing.T) {
	svc := NewService(ServiceDeps{Rand: rand.NewSource(11)})

	tests := []struct {
		level    int
		min, max int
	}{
		{0, 10, 35},
		{29, 10, 35},
		{30, 8, 25},
		{59, 8, 25},
		{60, 5, 15},
		{79, 5, 15},
	}

	for _, tt := range tests {
		for i := 0; i < 200; i++ {
			got := svc.messageXPAmount(tt.level)
			if got < tt.min || got > tt.max {
				t.Fatalf("messageXPAmount(%d) = %d, fora de [%d, %d]", tt.level, got, tt.min, tt.max)
			}
		}
	}
}

func TestMessageCooldown(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	svc := NewService(ServiceDeps{Now: clock.now, Rand: rand.NewSource(2)})

	if svc.onMessageCooldown("user1") {
		t.Error("primeira mensagem não deve estar em cooldown")
	}

	clock.advance(5 * time.Second)
	if !svc.onMessageCooldown("user1") {
		t.Error("5s depois ainda deveria estar em cooldown")
	}

	clock.advance(11 * time.Second)
	if svc.onMessageCooldown("user1") {
		t.Error("16s depois o cooldown deveria ter vencido")
	}

	// Usuários independentes não compartilham cooldown
	if svc.onMessageCooldown("user2") {
		t.Error("cooldown de user1 não deve afetar user2")
	}
}

func TestRewardAmountRange(t *testing.T) {
	n := NewNotifier(nil, nil, nil, "", rand.NewSource(3))

	for i := 0; i < 500; i++ {
		got := n.rewardAmount()
		if got < rewardMin || got > rewardMax {
			t.Fatalf("rewardAmount() = %d, fora de [%d, %d]", got, rewardMin, rewardMax)
		}
	}
}
