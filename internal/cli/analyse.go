package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"palspect/internal/analyse"
	"palspect/internal/render"
)

// newAnalyseCmd renders the full analysis sheet for one palette.
func newAnalyseCmd() *cobra.Command {
	var (
		src    sourceFlags
		ill    illuminantFlags
		out    string
		greyUI bool
	)

	cmd := &cobra.Command{
		Use:   "analyse",
		Short: "Render a palette analysis sheet",
		Long: `Analyse a palette and render the full sheet of plots to a PNG file.

The palette comes from exactly one source: an inline hex list, a hex
file, an image, or a palette slug on lospec.com.

Examples:
  # Analyse an inline palette
  palspect analyse -c 1a1c2c,5d275d,b13e53,ef7d57,ffcd75

  # Analyse the distinct colours of a sprite sheet
  palspect analyse -i sprites.png -o sprites-analysis.png

  # Download a palette from lospec.com and analyse it under D65
  palspect analyse -l sweetie-16 --illuminant D65

  # Use neutral greys for the sheet chrome instead of palette roles
  palspect analyse -f palette.hex --grey-ui`,
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
			if !strings.HasSuffix(out, ".png") {
				out += ".png"
			}
			req := analyse.Request{Colours: colours, GreyUI: greyUI, Temperature: t}
			return analyse.Run(cmd.Context(), req, render.NewPNG(log), out, log)
		},
	}

	src.register(cmd.Flags())
	ill.register(cmd.Flags())
	cmd.Flags().StringVarP(&out, "out", "o", "plot.png", "output image path")
	cmd.Flags().BoolVar(&greyUI, "grey-ui", false, "draw sheet chrome in neutral greys")
	return cmd
}
