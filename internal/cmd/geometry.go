package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuzeguitarist/qrpanel/internal/qrdraw"
)

var geometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Show point size and margin for a grid and canvas width",
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")
		modules, _ := cmd.Flags().GetInt("modules")
		text, _ := cmd.Flags().GetString("text")

		var g qrdraw.Geometry
		var err error
		switch {
		case text != "":
			svc, err2 := newService(cmd)
			if err2 != nil {
				return err2
			}
			g, err = svc.Geometry(text, width)
		case modules > 0:
			if width == 0 {
				cfg, err2 := loadConfig(cmd)
				if err2 != nil {
					return err2
				}
				width = cfg.Canvas.Width
			}
			g, err = qrdraw.Layout(modules, width)
		default:
			return fmt.Errorf("--text or --modules required")
		}
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Modules   :", g.ModuleCount)
		fmt.Fprintln(out, "Width     :", g.Width)
		fmt.Fprintln(out, "Point size:", g.PointSize)
		fmt.Fprintln(out, "Margin    :", g.Margin)
		return nil
	},
}

func init() {
	geometryCmd.Flags().Int("modules", 0, "module count per side (e.g. 21 for version 1)")
	geometryCmd.Flags().String("text", "", "content to encode and measure")
	geometryCmd.Flags().Int("width", 0, "canvas width in pixels (default from config)")
	addEncoderFlags(geometryCmd)
}
