package main

import (
	"bytes"
	"testing"

	"github.com/etwoo/tunnel-go/internal/core"
)

func TestReportFinalScore(t *testing.T) {
	tests := []struct {
		name  string
		state core.GameState
		want  string
	}{
		{"zero score", core.GameState{Score: 0, GameOver: true}, "Final score: 0\n"},
		{"positive score", core.GameState{Score: 42, GameOver: true}, "Final score: 42\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportFinalScore(&buf, tt.state)
			if got := buf.String(); got != tt.want {
				t.Errorf("reportFinalScore output = %q, expected %q", got, tt.want)
			}
		})
	}
}
