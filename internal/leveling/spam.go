package leveling

import (
	"strings"
	"unicode"
)

const (
	// minSpamLength: abaixo disso a mensagem nunca conta como spam
	minSpamLength = 5
	// maxCharRun: quantidade de caracteres idênticos seguidos tolerada
	maxCharRun = 4
	// wordRepeatLimit: repetições contíguas da mesma palavra
	wordRepeatLimit = 4
	// patternRepeatLimit: repetições contíguas de um sub-padrão interno
	patternRepeatLimit = 4
)

// IsSpam classifica uma mensagem como spam de farm de XP. Detecta
// caracteres repetidos em sequência, palavras repetidas em sequência e
// palavras compostas por um sub-padrão curto repetido.
func IsSpam(text string) bool {
	runes := []rune(text)
	if len(runes) < minSpamLength {
		return false
	}

	if hasCharRun(runes) {
		return true
	}

	words := tokenize(text)

	repeats := 1
	for i := 1; i < len(words); i++ {
		if words[i] == words[i-1] && words[i] != "" {
			repeats++
			if repeats >= wordRepeatLimit {
				return true
			}
		} else {
			repeats = 1
		}
	}

	for _, w := range words {
		if hasRepeatingPattern(w) {
			return true
		}
	}

	return false
}

// hasCharRun verifica sequências de mais de maxCharRun caracteres iguais
func hasCharRun(runes []rune) bool {
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run > maxCharRun {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// tokenize quebra o texto em palavras minúsculas sem pontuação
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, f)
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// hasRepeatingPattern procura um sub-padrão de tamanho 2 até len/4
// repetido patternRepeatLimit vezes contíguas dentro da palavra
func hasRepeatingPattern(word string) bool {
	n := len(word)
	for size := 2; size <= n/4; size++ {
		for start := 0; start+size*patternRepeatLimit <= n; start++ {
			pattern := word[start : start+size]
			repeats := 1
			for i := start + size; i+size <= n && word[i:i+size] == pattern; i += size {
				repeats++
				if repeats >= patternRepeatLimit {
					return true
				}
			}
		}
	}
	return false
}
