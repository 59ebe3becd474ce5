package leveling

// RequiredFunc devolve o XP necessário para sair de um nível
type RequiredFunc func(level int) int

// ApplyResult descreve o resultado de uma concessão de XP
type ApplyResult struct {
	PreviousLevel int
	NewLevel      int
	NewXP         int
	LeveledUp     bool
}

// Evaluate aplica um delta de XP ao estado (level, xp) e rola o
// excedente em subidas de nível até satisfazer xp < required(level),
// respeitando o teto. Ao atingir o teto o XP é zerado em definitivo.
// Delta não positivo ou estado já no teto são no-ops.
func Evaluate(level, xp, delta int, required RequiredFunc) ApplyResult {
	result := ApplyResult{
		PreviousLevel: level,
		NewLevel:      level,
		NewXP:         xp,
	}

	if level >= LevelCap || delta <= 0 {
		return result
	}

	xp += delta
	for level < LevelCap {
		threshold := required(level)
		if xp < threshold {
			break
		}
		xp -= threshold
		level++
	}

	if level >= LevelCap {
		xp = 0
	}

	result.NewLevel = level
	result.NewXP = xp
	result.LeveledUp = level > result.PreviousLevel
	return result
}
