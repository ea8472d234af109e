package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"Warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.in))
		})
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var console bytes.Buffer
	log := New(&console, nil, "warn")

	log.Info().Msg("quiet")
	log.Warn().Str("screen", "menu").Msg("loud")

	out := console.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
	assert.Contains(t, out, "screen=")
}

func TestNew_CopiesToFileWithoutColor(t *testing.T) {
	var console, file bytes.Buffer
	log := New(&console, &file, "debug")

	log.Debug().Msg("screen added")

	assert.Contains(t, console.String(), "screen added")
	assert.Contains(t, file.String(), "screen added")
	assert.NotContains(t, file.String(), "\x1b[")
}
