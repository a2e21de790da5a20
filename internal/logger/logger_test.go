package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/cavemesh/internal/config"
)

func TestNamedLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: zapcore.DebugLevel, Console: &buf})

	l.Named("marching").Debug("outlines traced", zap.Int("outlines", 3))

	out := buf.String()
	for _, want := range []string{"marching", "outlines traced", `"outlines": 3`, "logger_test.go"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log output, got %q", want, out)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level    zapcore.Level
		expected []string
		excluded []string
	}{
		{zapcore.ErrorLevel, []string{"tracing failed"}, []string{"bad fill", "cave generated", "grid built"}},
		{zapcore.WarnLevel, []string{"tracing failed", "bad fill"}, []string{"cave generated", "grid built"}},
		{zapcore.InfoLevel, []string{"tracing failed", "bad fill", "cave generated"}, []string{"grid built"}},
		{zapcore.DebugLevel, []string{"tracing failed", "bad fill", "cave generated", "grid built"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			l := New(Options{Level: tt.level, Console: &buf}).Named("cave")

			l.Debug("grid built")
			l.Info("cave generated")
			l.Warn("bad fill")
			l.Error("tracing failed")

			out := buf.String()
			for _, exp := range tt.expected {
				if !strings.Contains(out, exp) {
					t.Errorf("expected %q at level %s", exp, tt.level)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(out, exc) {
					t.Errorf("unexpected %q at level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "cavegen.log")

	fileCfg := DefaultFileConfig(logFile)
	fileCfg.Compress = false
	l := New(Options{Level: zapcore.InfoLevel, File: fileCfg})

	l.Named("cave").Info("cave generated", zap.String("seed", "grotto"))
	_ = l.Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	out := string(content)
	for _, want := range []string{"INFO", "cave", "cave generated", `"seed": "grotto"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log file, got %q", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("log file should not contain color escapes")
	}
}

func TestNoOutputsIsNop(t *testing.T) {
	l := New(Options{Level: zapcore.DebugLevel})
	if l.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger without outputs should discard everything")
	}
}

func TestHelpersReportCaller(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(Set(New(Options{Level: zapcore.DebugLevel, Console: &buf})))

	Info("batch item written")
	Sugar.Infof("config: %d", 7)
	Sync()

	out := buf.String()
	if got := strings.Count(out, "logger_test.go"); got != 2 {
		t.Errorf("expected both entries to report logger_test.go, got %d in %q", got, out)
	}
	if !strings.Contains(out, "config: 7") {
		t.Errorf("expected sugared message in %q", out)
	}
}

func TestSetRestores(t *testing.T) {
	var first, second bytes.Buffer
	restoreFirst := Set(New(Options{Level: zapcore.InfoLevel, Console: &first}))
	defer restoreFirst()

	restore := Set(New(Options{Level: zapcore.InfoLevel, Console: &second}))
	Named("export").Info("written")
	restore()
	Named("export").Info("written again")

	if !strings.Contains(second.String(), "written") || strings.Contains(second.String(), "written again") {
		t.Errorf("unexpected output in replaced logger: %q", second.String())
	}
	if !strings.Contains(first.String(), "written again") {
		t.Errorf("expected restored logger to receive output, got %q", first.String())
	}
}

func TestInit(t *testing.T) {
	t.Cleanup(Set(zap.NewNop()))

	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		wantErr bool
	}{
		{"default level", config.LoggingConfig{Level: "info"}, false},
		{"empty level is info", config.LoggingConfig{}, false},
		{"debug with file", config.LoggingConfig{Level: "debug", LogFile: filepath.Join(t.TempDir(), "init.log")}, false},
		{"unknown level", config.LoggingConfig{Level: "chatty"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Init(%+v) error = %v, wantErr %v", tt.cfg, err, tt.wantErr)
			}
		})
	}
}
