package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Galaxy S24 Ultra", "galaxy-s24-ultra"},
		{"punctuation", "Sony WH-1000XM5!", "sony-wh-1000xm5"},
		{"extra whitespace", "  MacBook   Air  ", "macbook-air"},
		{"already slugged", "iphone-15-pro", "iphone-15-pro"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generate(tt.input))
		})
	}
}
