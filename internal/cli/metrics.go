package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"palspect/internal/analyse"
)

// newMetricsCmd prints the numeric palette summary without rendering.
func newMetricsCmd() *cobra.Command {
	var (
		src    sourceFlags
		ill    illuminantFlags
		greyUI bool
	)

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print palette metrics",
		Long: `Compute palette metrics and print them one per line.

On a terminal the names are aligned for reading; when piped the output
is plain name,value pairs.

Examples:
  # Print the metrics of an inline palette
  palspect metrics -c 000000,5d275d,ffcd75,ffffff

  # Feed the similarity score to a script
  palspect metrics -f palette.hex | grep '^iss,'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd)
			colours, err := src.load(cmd.Context(), log)
			if err != nil {
				return err
			}
			t, err := ill.temperature()
			if err != nil {
				return err
			}
			metrics, err := analyse.Metrics(analyse.Request{
				Colours: colours, GreyUI: greyUI, Temperature: t,
			})
			if err != nil {
				return err
			}
			printMetrics(cmd, metrics)
			return nil
		},
	}

	src.register(cmd.Flags())
	ill.register(cmd.Flags())
	cmd.Flags().BoolVar(&greyUI, "grey-ui", false, "assign roles as if the sheet chrome were neutral grey")
	return cmd
}

func printMetrics(cmd *cobra.Command, metrics []analyse.Metric) {
	w := cmd.OutOrStdout()
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		width := 0
		for _, m := range metrics {
			if len(m.Name) > width {
				width = len(m.Name)
			}
		}
		for _, m := range metrics {
			fmt.Fprintf(w, "%-*s  %s\n", width, m.Name, m.Value)
		}
		return
	}
	for _, m := range metrics {
		fmt.Fprintf(w, "%s,%s\n", m.Name, m.Value)
	}
}
