package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestGeometryCommand(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "missing.yaml")
	out, err := run(t, "geometry", "--config", cfg, "--modules", "21", "--width", "500")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Point size: 21") || !strings.Contains(out, "Margin    : 29") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if _, err := run(t, "geometry", "--config", cfg, "--modules", "21", "--width", "22"); err == nil {
		t.Fatal("expected error for a canvas too small for the grid")
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "missing.yaml")
	path := filepath.Join(dir, "hello.bmp")
	out, err := run(t, "render", "--config", cfg, "--text", "hello", "--out", path, "--backend", "boombuler")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Wrote:") || !strings.Contains(out, "bmp") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("output not written: %v", err)
	}

	out, err = run(t, "render", "--config", cfg, "--text", "hello", "--term")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(out, "\n") != 12 || !strings.Contains(out, "▀") {
		t.Fatalf("unexpected terminal output:\n%s", out)
	}
}

func TestConfigCommands(t *testing.T) {
	t.Setenv("QRPANEL_HOME", t.TempDir())
	cfg := filepath.Join(t.TempDir(), "qrpanel.yaml")
	if _, err := run(t, "config", "init", "--config", cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "config", "init", "--config", cfg); err == nil {
		t.Fatal("expected error when config exists")
	}
	out, err := run(t, "config", "show", "--config", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "centerDivisor: 4") || !strings.Contains(out, "render.log") {
		t.Fatalf("unexpected config:\n%s", out)
	}
}

func TestTOTPVerifyRejects(t *testing.T) {
	if _, err := run(t, "totp", "verify", "--secret", "JBSWY3DPEHPK3PXP", "--code", "000000x"); err == nil {
		t.Fatal("expected rejection")
	}
}
