package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInitDefaults(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	if err := Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	if GetLookbackWindow() != 3000 {
		t.Errorf("expected lookback 3000, got %d", GetLookbackWindow())
	}
	if GetOutputPath() != filepath.Join("data", "questions.json") {
		t.Errorf("unexpected output path %q", GetOutputPath())
	}
	if GetPDFPath() != "2026도전골든별문제은행.pdf" {
		t.Errorf("unexpected pdf path %q", GetPDFPath())
	}
	if C.LogMode != "dev" {
		t.Errorf("expected dev log mode, got %q", C.LogMode)
	}
}

func TestInitReadsEnvAndFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	yaml := "output_path: out/q.json\nlookback_window: 1500\n"
	if err := os.WriteFile(filepath.Join(dir, "goldenbell.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GOLDENBELL_LOG_MODE", "prod")

	if err := Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	if GetOutputPath() != "out/q.json" {
		t.Errorf("expected file value, got %q", GetOutputPath())
	}
	if GetLookbackWindow() != 1500 {
		t.Errorf("expected file value 1500, got %d", GetLookbackWindow())
	}
	if GetLogMode() != "prod" {
		t.Errorf("expected env value prod, got %q", GetLogMode())
	}
}

func TestSetters(t *testing.T) {
	viper.Reset()
	SetLookbackWindow(42)
	SetPDFPath("bank.pdf")

	if GetLookbackWindow() != 42 || C.LookbackWindow != 42 {
		t.Errorf("expected lookback 42, got %d", GetLookbackWindow())
	}
	if GetPDFPath() != "bank.pdf" {
		t.Errorf("expected bank.pdf, got %q", GetPDFPath())
	}
}

func TestExpandTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"data/q.json", "data/q.json"},
		{"~/bank.pdf", filepath.Join(home, "bank.pdf")},
	}
	for _, tt := range tests {
		if got := expandTilde(tt.in); got != tt.expected {
			t.Errorf("expandTilde(%q): expected %q, got %q", tt.in, tt.expected, got)
		}
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
