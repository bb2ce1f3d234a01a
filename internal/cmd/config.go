package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yuzeguitarist/qrpanel/internal/app"
	"github.com/yuzeguitarist/qrpanel/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(configPath); err == nil && !force {
			return fmt.Errorf("%s exists (use --force to overwrite)", configPath)
		}
		cfg := config.Default()
		cfg.Audit.Path = app.DefaultAuditPath()
		b, err := cfg.Marshal()
		if err != nil {
			return err
		}
		if err := app.AtomicWriteFile(configPath, 0644, b); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote:", configPath)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		b, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configShowCmd)
	configInitCmd.Flags().Bool("force", false, "overwrite an existing config")
}
