package app

import (
	"os"
	"path/filepath"
)

const (
	ConfigFile = "config.yaml"
	AuditFile  = "render.log"
)

// ConfigDir is the per-user config directory, e.g. ~/.config/qrpanel.
func ConfigDir() string {
	if dir := os.Getenv("QRPANEL_HOME"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ".qrpanel"
	}
	return filepath.Join(base, "qrpanel")
}

func DefaultConfigPath() string { return filepath.Join(ConfigDir(), ConfigFile) }

func DefaultAuditPath() string { return filepath.Join(ConfigDir(), AuditFile) }
