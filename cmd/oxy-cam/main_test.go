package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-control/engine/replay"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Errorf("parseLevel failed: expected %v (err %v), got %v (%v)", tt.want, tt.wantErr, got, err)
			}
		})
	}
}

func TestFrameWriter(t *testing.T) {
	frame := replay.Frame{Tick: 3, Camera: [3]float32{1, 2, 3}, Scale: 1, Error: "boom"}
	tests := []struct {
		format string
		want   []string
	}{
		{"text", []string{"tick", "boom", "[1.000 2.000 3.000]"}},
		{"yaml", []string{"tick: 3", "error: boom"}},
		{"json", []string{`"tick":3`, `"error":"boom"`}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var out bytes.Buffer
			sink, flush, err := frameWriter(tt.format, &out)
			if err != nil {
				t.Fatalf("frameWriter failed: %v", err)
			}
			if err := sink(frame); err != nil {
				t.Fatalf("sink failed: %v", err)
			}
			if err := flush(); err != nil {
				t.Fatalf("flush failed: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("frameWriter failed: expected %q in %q", want, out.String())
				}
			}
		})
	}

	if _, _, err := frameWriter("xml", &bytes.Buffer{}); err == nil {
		t.Error("frameWriter failed: expected error for unknown format")
	}
}
