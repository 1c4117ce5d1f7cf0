package logger

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
		"INVALID": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitWithFileWritesLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.log")
	Init("debug", path)
	Log.Info("hello")
	Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file empty after write")
	}
}

func TestInitConsoleOnly(t *testing.T) {
	Init("info", "")
	if Log == nil {
		t.Fatal("Log nil after Init")
	}
	Log.Debug("suppressed at info level")
}
