package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"palspect/internal/daemon"
	"palspect/internal/render"
)

// DefaultDaemonPort is the loopback port the daemon binds by default.
const DefaultDaemonPort = 8326

// newDaemonCmd runs the TCP analysis daemon.
func newDaemonCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Serve analyse requests over a local TCP socket",
		Long: `Run a daemon on the loopback interface. Each connection sends one
command line and receives OK or ERR:

  analyse <scheme>://<data> <output-path>

with scheme hex (inline list), file (hex file) or img (image file).

Example:
  palspect daemon --port 8326 &
  printf 'analyse hex://000000,ffffff sheet.png\n' | nc 127.0.0.1 8326`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd)
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := daemon.New(render.NewPNG(log), log)
			err := srv.ListenAndServe(ctx, port)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", DefaultDaemonPort, "TCP port to listen on")
	return cmd
}
