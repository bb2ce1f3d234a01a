package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yuzeguitarist/qrpanel/internal/app"
	"github.com/yuzeguitarist/qrpanel/internal/audit"
	"github.com/yuzeguitarist/qrpanel/internal/config"
	"github.com/yuzeguitarist/qrpanel/internal/service"
)

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:           "qrpanel",
		Short:         "qrpanel - rasterize QR codes onto monochrome display panels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, app.Color("error:", app.Red), err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Lookup("level") != nil && flags.Changed("level") {
		cfg.Encoder.Level, _ = flags.GetString("level")
	}
	if flags.Lookup("backend") != nil && flags.Changed("backend") {
		cfg.Encoder.Backend, _ = flags.GetString("backend")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newService(cmd *cobra.Command) (*service.Service, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return service.New(cfg, audit.New(cfg.Audit.Path)), nil
}

func addEncoderFlags(cmd *cobra.Command) {
	cmd.Flags().String("level", "", "error correction level: L, M, Q or H (default from config)")
	cmd.Flags().String("backend", "", "encoder backend: skip2 or boombuler (default from config)")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", app.DefaultConfigPath(), "config file")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(geometryCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(totpCmd)
}
