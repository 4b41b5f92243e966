// Package loader turns palette sources into colour lists. It accepts inline
// hex lists, hex files with one colour per line, pixel-art images, and
// palettes published on lospec.com. Loading and validation are separate
// steps so callers can report exactly which one failed.
package loader

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	_ "golang.org/x/image/webp"

	"palspect/internal/analysis"
	"palspect/internal/colour"
	"palspect/internal/util/http"
)

var (
	// ErrDuplicateColours is returned by Validate for palettes with
	// repeated members.
	ErrDuplicateColours = errors.New("duplicated colours")

	// ErrPaletteNotFound is returned when a remote palette slug does not
	// exist.
	ErrPaletteNotFound = errors.New("palette not found")

	// ErrSourceUnavailable wraps failures to reach a palette source at
	// all, as opposed to failures to parse what it returned.
	ErrSourceUnavailable = errors.New("palette source unavailable")
)

// Validate checks the palette size bounds and rejects duplicates. A loaded
// palette must pass Validate before analysis.
func Validate(colours []colour.RGB255) error {
	n := len(colours)
	if n < analysis.MinColours || n > analysis.MaxColours {
		return fmt.Errorf("%w: got %d", analysis.ErrInvalidPaletteSize, n)
	}
	seen := make(map[colour.RGB255]struct{}, n)
	for _, c := range colours {
		if _, ok := seen[c]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateColours, c.Hex())
		}
		seen[c] = struct{}{}
	}
	return nil
}

// FromHexList parses a comma-separated list of hex colours.
func FromHexList(list string) ([]colour.RGB255, error) {
	var out []colour.RGB255
	for _, field := range strings.Split(list, ",") {
		c, err := colour.ParseHex(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// FromHexFile reads a palette file with one hex colour per line. Blank
// lines are skipped.
func FromHexFile(path string) ([]colour.RGB255, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	var out []colour.RGB255
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c, err := colour.ParseHex(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", len(out)+1, err)
		}
		out = append(out, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return out, nil
}

// FromImage extracts the distinct colours of an image in scan order.
// Pixels that are not fully opaque are ignored.
func FromImage(path string) ([]colour.RGB255, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return distinctColours(img), nil
}

func distinctColours(img image.Image) []colour.RGB255 {
	var out []colour.RGB255
	seen := map[colour.RGB255]struct{}{}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if a != 0xffff {
				continue
			}
			c := colour.RGB255{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// lospecURL is a variable so tests can point it at a local server.
var lospecURL = "https://lospec.com/palette-list/%s.csv"

// FromLospec downloads a palette from lospec.com by slug. The CSV body
// starts with two metadata fields followed by the colour list.
func FromLospec(ctx context.Context, slug string) ([]colour.RGB255, error) {
	body, err := http.Fetch(ctx, fmt.Sprintf(lospecURL, slug), http.FetchOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return parseLospecCSV(body, slug)
}

func parseLospecCSV(body []byte, slug string) ([]colour.RGB255, error) {
	// Missing palettes come back as a 200 with a plain-text marker.
	if bytes.Equal(bytes.TrimSpace(body), []byte("file not found")) {
		return nil, fmt.Errorf("%w: %s", ErrPaletteNotFound, slug)
	}
	fields := strings.Split(strings.TrimSpace(string(body)), ",")
	if len(fields) < 3 {
		return nil, fmt.Errorf("malformed palette csv for %s", slug)
	}
	var out []colour.RGB255
	for _, field := range fields[2:] {
		c, err := colour.ParseHex(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
