package economy

import (
	"math/rand"
	"testing"
	"time"
)

func TestDailyAmountRange(t *testing.T) {
	svc := New(nil, nil, rand.NewSource(7))

	for i := 0; i < 500; i++ {
		got := svc.dailyAmount()
		if got < dailyMin || got > dailyMax {
			t.Fatalf("dailyAmount() = %d, fora de [%d, %d]", got, dailyMin, dailyMax)
		}
	}
}

func TestCreditRejectsNonPositive(t *testing.T) {
	svc := New(nil, nil, rand.NewSource(1))

	if err := svc.Credit("user1", 0); err == nil {
		t.Error("crédito zero deveria ser rejeitado")
	}
	if err := svc.Credit("user1", -50); err == nil {
		t.Error("crédito negativo deveria ser rejeitado")
	}
}

func TestDebitRejectsNonPositive(t *testing.T) {
	svc := New(nil, nil, rand.NewSource(1))

	if err := svc.Debit("user1", 0); err == nil {
		t.Error("débito zero deveria ser rejeitado")
	}
	if err := svc.Debit("user1", -10); err == nil {
		t.Error("débito negativo deveria ser rejeitado")
	}
}

func TestNewDefaultsClock(t *testing.T) {
	svc := New(nil, nil, nil)

	before := time.Now().Add(-time.Second)
	got := svc.now()
	after := time.Now().Add(time.Second)

	if got.Before(before) || got.After(after) {
		t.Errorf("relógio padrão devolveu %v, fora da janela atual", got)
	}
}
