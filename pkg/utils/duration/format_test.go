package duration

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"30m", 30 * time.Minute, false},
		{"1h30m", 90 * time.Minute, false},
		{"600", 10 * time.Minute, false},
		{"", 0, true},
		{"soon", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseOrDefault(t *testing.T) {
	if got := ParseOrDefault("nope", time.Hour); got != time.Hour {
		t.Errorf("ParseOrDefault fallback = %v, want 1h", got)
	}
	if got := ParseOrDefault("-5m", time.Hour); got != time.Hour {
		t.Errorf("ParseOrDefault negative = %v, want 1h", got)
	}
	if got := ParseOrDefault("2h", time.Hour); got != 2*time.Hour {
		t.Errorf("ParseOrDefault = %v, want 2h", got)
	}
}

func TestMinutes(t *testing.T) {
	if Minutes(time.Minute) != "1 minute" {
		t.Errorf("Minutes(1m) = %q", Minutes(time.Minute))
	}
	if Minutes(30*time.Minute) != "30 minutes" {
		t.Errorf("Minutes(30m) = %q", Minutes(30*time.Minute))
	}
}
