package mqtt

import "testing"

func TestTopicMatch(t *testing.T) {
	tests := []struct {
		pattern string
		topic   string
		want    bool
	}{
		{"ignis/niveis/levelup", "ignis/niveis/levelup", true},
		{"ignis/niveis/levelup", "ignis/niveis/outro", false},
		{"ignis/radio/+/estado", "ignis/radio/123/estado", true},
		{"ignis/radio/+/estado", "ignis/radio/123/456/estado", false},
		{"ignis/#", "ignis/radio/123/estado", true},
		{"ignis/#", "ignis", true},
		{"ignis/radio/#", "ignis/niveis/levelup", false},
		{"+/niveis/levelup", "ignis/niveis/levelup", true},
		{"ignis/niveis", "ignis/niveis/levelup", false},
		{"ignis/niveis/levelup", "ignis/niveis", false},
	}

	for _, tt := range tests {
		if got := topicMatch(tt.pattern, tt.topic); got != tt.want {
			t.Errorf("topicMatch(%q, %q) = %v, esperado %v", tt.pattern, tt.topic, got, tt.want)
		}
	}
}

func TestTelemetryNilCommunicatorIsNoOp(t *testing.T) {
	var tel *Telemetry
	tel.PublishLevelUp("user1", "fulano", 5)

	tel = NewTelemetry(nil)
	tel.PublishLevelUp("user1", "fulano", 5)
	tel.PublishRadioState("guild1", "lofi", true, 3)
}
