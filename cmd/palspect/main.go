// Palspect - a palette analyser for pixel art
//
// Palspect renders one-page analysis sheets for fixed palettes of 2 to 256
// colours: perceptual spread, hue and lightness coverage, colour
// temperature, close pairs and useful mixes, all measured in CAM16-UCS.
package main

import (
	"os"

	"palspect/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
