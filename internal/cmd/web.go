package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/yuzeguitarist/qrpanel/internal/netutil"
	"github.com/yuzeguitarist/qrpanel/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve rendered QR codes over HTTP (foreground)",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		listen, _ := cmd.Flags().GetString("listen")
		if listen == "" {
			listen = svc.Config().Web.Listen
		}
		if !netutil.TCPPortAvailable(listen) {
			return fmt.Errorf("cannot listen on %s: address in use", listen)
		}
		srv := web.NewServer(svc)

		httpSrv := &http.Server{
			Addr:              listen,
			Handler:           srv.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		url := netutil.BrowseURL(listen)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Listening:", listen)
		fmt.Fprintln(out, "Try:", url+"qr.png?text=hello")
		if lines, err := svc.Terminal(url + "healthz"); err == nil {
			printTerminal(out, lines)
		}
		return httpSrv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().String("listen", "", "listen address (default from config: 127.0.0.1:3334)")
	addEncoderFlags(serveCmd)
}
