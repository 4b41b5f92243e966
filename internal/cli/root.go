// Package cli provides the command-line interface for palspect.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"palspect/internal/analyse"
	"palspect/internal/colour"
	"palspect/internal/loader"
	"palspect/internal/version"
)

// NewRootCmd assembles the command tree. Each call builds fresh commands so
// tests can execute them repeatedly without shared flag state.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "palspect",
		Short: "A colour palette analyser for pixel art",
		Long: `Palspect analyses fixed palettes of 2 to 256 colours and renders a
one-page PNG sheet of plots and measurements: perceptual spread,
hue and lightness coverage, colour temperature, close pairs and
useful mixes. All measurements run in the CAM16-UCS colour space.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newAnalyseCmd())
	rootCmd.AddCommand(newMetricsCmd())
	rootCmd.AddCommand(newDaemonCmd())
	return rootCmd
}

// newVersionCmd reports detailed build information.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// newLogger builds the command logger. All diagnostics go to stderr so
// stdout stays machine-readable.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "palspect",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
}

// sourceFlags are the palette source options shared by analyse and metrics.
// Exactly one source must be given.
type sourceFlags struct {
	colours string
	hexfile string
	image   string
	lospec  string
}

func (s *sourceFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&s.colours, "colours", "c", "", "comma-separated hex colour list")
	fs.StringVarP(&s.hexfile, "hexfile", "f", "", "palette file with one hex colour per line")
	fs.StringVarP(&s.image, "image", "i", "", "image file to take distinct colours from")
	fs.StringVarP(&s.lospec, "lospec", "l", "", "palette slug on lospec.com")
}

func (s *sourceFlags) load(ctx context.Context, log hclog.Logger) ([]colour.RGB255, error) {
	given := 0
	for _, v := range []string{s.colours, s.hexfile, s.image, s.lospec} {
		if v != "" {
			given++
		}
	}
	if given != 1 {
		return nil, fmt.Errorf("exactly one of --colours, --hexfile, --image or --lospec is required")
	}

	var (
		out []colour.RGB255
		err error
	)
	switch {
	case s.colours != "":
		out, err = loader.FromHexList(s.colours)
	case s.hexfile != "":
		out, err = loader.FromHexFile(s.hexfile)
	case s.image != "":
		out, err = loader.FromImage(s.image)
	default:
		log.Debug("downloading palette", "slug", s.lospec)
		out, err = loader.FromLospec(ctx, s.lospec)
	}
	if err != nil {
		return nil, err
	}
	return out, loader.Validate(out)
}

// illuminantFlags select the reference white, either a daylight preset or a
// black-body temperature in kelvin.
type illuminantFlags struct {
	preset string
	kelvin float64
}

func (i *illuminantFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&i.preset, "illuminant", "", "daylight illuminant preset (D50, D55, D65)")
	fs.Float64VarP(&i.kelvin, "temperature", "T", analyse.DefaultTemperature,
		"illuminant temperature in kelvin")
}

func (i *illuminantFlags) temperature() (float64, error) {
	if i.preset == "" {
		return i.kelvin, nil
	}
	switch strings.TrimPrefix(strings.ToUpper(i.preset), "D") {
	case "50":
		return 5000, nil
	case "55":
		return 5500, nil
	case "65":
		return 6503.51, nil
	}
	return 0, fmt.Errorf("invalid illuminant preset %q (want D50, D55 or D65)", i.preset)
}
