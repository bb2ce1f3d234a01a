package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuzeguitarist/qrpanel/internal/app"
	"github.com/yuzeguitarist/qrpanel/internal/totp"
)

var totpCmd = &cobra.Command{
	Use:   "totp",
	Short: "TOTP helpers (render enrolment codes with `render totp`)",
}

var totpVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check a code against a TOTP secret",
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, _ := cmd.Flags().GetString("secret")
		code, _ := cmd.Flags().GetString("code")
		if secret == "" || code == "" {
			return fmt.Errorf("--secret and --code required")
		}
		if !totp.Verify(secret, code) {
			return fmt.Errorf("code rejected")
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Color("code accepted", app.Green))
		return nil
	},
}

func init() {
	totpCmd.AddCommand(totpVerifyCmd)
	totpVerifyCmd.Flags().String("secret", "", "base32 secret")
	totpVerifyCmd.Flags().String("code", "", "6 digit code")
}
