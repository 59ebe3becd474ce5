package leveling

import (
	"math"
	"math/rand"
	"testing"
)

func TestRequiredXPBounds(t *testing.T) {
	curve := NewCurve(rand.NewSource(42))

	for level := 0; level < LevelCap; level++ {
		lower := int(math.Floor(200 + math.Pow(float64(level), 1.5)*12))
		upper := lower + 40 + 2*level

		// O limiar é aleatório; várias amostras por nível
		for i := 0; i < 50; i++ {
			got := curve.RequiredXP(level)
			if got < lower || got > upper {
				t.Fatalf("RequiredXP(%d) = %d, fora da faixa [%d, %d]", level, got, lower, upper)
			}
			if got <= 0 {
				t.Fatalf("RequiredXP(%d) = %d, deveria ser positivo", level, got)
			}
		}
	}
}

func TestRequiredXPVaries(t *testing.T) {
	curve := NewCurve(rand.NewSource(7))

	// A não-determinismo é intencional: em 100 amostras do mesmo nível
	// deve aparecer mais de um valor
	seen := make(map[int]bool)
	for i := 0; i < 100; i++ {
		seen[curve.RequiredXP(10)] = true
	}
	if len(seen) < 2 {
		t.Error("RequiredXP(10) devolveu sempre o mesmo valor; jitter ausente")
	}
}

func TestRequiredXPAtCap(t *testing.T) {
	curve := NewCurve(rand.NewSource(1))

	if got := curve.RequiredXP(LevelCap); got != Unreachable {
		t.Errorf("RequiredXP(%d) = %d, want Unreachable", LevelCap, got)
	}
	if got := curve.RequiredXP(LevelCap + 5); got != Unreachable {
		t.Errorf("RequiredXP(%d) = %d, want Unreachable", LevelCap+5, got)
	}
}
