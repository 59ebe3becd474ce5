package leveling

import "testing"

func TestIsSpam(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"texto curto nunca é spam", "aaaa", false},
		{"vazio", "", false},
		{"caracteres repetidos", "aaaaaa", true},
		{"cinco caracteres repetidos", "aaaaa", true},
		{"quatro repetidos é tolerado", "aaaabc", false},
		{"conversa normal", "hello there friend", false},
		{"frase em português", "boa noite pessoal, tudo bem?", false},
		{"palavras repetidas", "lol lol lol lol ok", true},
		{"três repetições é tolerado", "lol lol lol ok certo", false},
		{"repetição com pontuação", "Kkj! kkj, KKJ. kkj?", true},
		{"padrão interno repetido", "hahahahahaha", true},
		{"padrão interno curto demais para disparar", "haha", false},
		{"padrão de tamanho três", "lolxlolxlolxlolx", true},
		{"risada longa de caractere único", "kkkkkkkk", true},
		{"link normal", "olha esse video https://example.com/abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSpam(tt.text); got != tt.want {
				t.Errorf("IsSpam(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("Olá, MUNDO! foo-bar 123")
	want := []string{"olá", "mundo", "foobar", "123"}

	if len(got) != len(want) {
		t.Fatalf("tokenize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tokenize()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
