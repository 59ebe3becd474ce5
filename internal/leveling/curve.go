// Package leveling implementa o sistema de níveis e XP do Ignis:
// curva de progressão, detecção de spam, acúmulo por voz, cargos por
// nível e os anúncios de subida de nível.
package leveling

import (
	"math"
	"math/rand"
	"sync"
)

// LevelCap é o nível máximo. A partir dele nenhum XP é concedido.
const LevelCap = 80

// Unreachable é o sentinela devolvido por RequiredXP no nível máximo
const Unreachable = math.MaxInt

// Curve calcula o XP necessário para subir de nível. O limiar tem um
// deslocamento aleatório proposital (anti-previsibilidade), então duas
// chamadas no mesmo nível podem devolver valores diferentes, sempre
// dentro da faixa [base, base+jitter).
type Curve struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewCurve creates a Curve backed by the given random source
func NewCurve(src rand.Source) *Curve {
	return &Curve{rng: rand.New(src)}
}

// baseXP é o piso determinístico do limiar de um nível
func baseXP(level int) float64 {
	return 200 + math.Pow(float64(level), 1.5)*12
}

// jitterRange é o tamanho da faixa aleatória somada ao piso
func jitterRange(level int) int {
	return 40 + 2*level
}

// RequiredXP devolve o XP necessário para sair do nível dado.
// No teto (e acima) devolve Unreachable.
func (c *Curve) RequiredXP(level int) int {
	if level >= LevelCap {
		return Unreachable
	}

	c.mu.Lock()
	jitter := c.rng.Intn(jitterRange(level))
	c.mu.Unlock()

	return int(math.Floor(baseXP(level))) + jitter
}
