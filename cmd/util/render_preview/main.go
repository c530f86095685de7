// render_preview composes an image the way the wallpaper engine does and
// writes the result to a file instead of the desktop.
//
//	go run ./cmd/util/render_preview -in photo.jpg -size 2560x1440 -mode Fill -out preview.jpg
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/dixieflatline76/DayNight/config"
	"github.com/dixieflatline76/DayNight/pkg/placement"
	"github.com/dixieflatline76/DayNight/pkg/selection"
	"github.com/dixieflatline76/DayNight/pkg/wallpaper"
)

func main() {
	in := flag.String("in", "", "image path or file:// URI, empty renders the placeholder")
	out := flag.String("out", "preview.jpg", "output file, format by extension")
	size := flag.String("size", "1920x1080", "surface size as WxH")
	mode := flag.String("mode", config.DefaultFillMode, "fill mode: "+strings.Join(wallpaper.FillModeNames(), ", "))
	cascade := flag.String("cascade", "", "pigo face cascade used by Smart fill")
	flag.Parse()

	if err := run(*in, *out, *size, *mode, *cascade); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(in, out, size, modeName, cascade string) error {
	w, h, err := config.ParseSurface(size)
	if err != nil {
		return err
	}
	mode, ok := wallpaper.ParseFillMode(modeName)
	if !ok {
		return fmt.Errorf("unknown fill mode %q", modeName)
	}
	surface := image.Pt(w, h)
	composer := wallpaper.NewComposer(wallpaper.DefaultPlaceholderText)
	if cascade != "" {
		data, err := os.ReadFile(cascade)
		if err != nil {
			return fmt.Errorf("reading cascade: %w", err)
		}
		if composer.Faces, err = wallpaper.NewPigoFaceFinder(data); err != nil {
			return err
		}
	}
	ctx := context.Background()

	var ref selection.ImageRef
	if in != "" {
		ref = selection.ImageRef(in)
		if ref.Scheme() == "" {
			ref = selection.FromPath(in)
		}
	}

	var canvas *image.NRGBA
	img, err := wallpaper.NewFileResolver().Resolve(ctx, ref)
	if err != nil {
		fmt.Printf("Cannot load %q (%v), rendering placeholder\n", in, err)
		canvas, err = composer.Placeholder(surface)
	} else {
		src := img.Bounds().Size()
		fmt.Printf("Source:  %dx%d\n", src.X, src.Y)
		fmt.Printf("Surface: %dx%d, mode %s\n", w, h, mode)
		switch mode {
		case wallpaper.FillCenter:
			fmt.Printf("Offset:  %v\n", placement.CenterOffset(surface, src))
		case wallpaper.FillCover:
			scaled := placement.Cover(surface, src)
			fmt.Printf("Scaled:  %dx%d, offset %v\n", scaled.X, scaled.Y, placement.CenterOffset(surface, scaled))
		}
		canvas, err = composer.Compose(ctx, img, surface, mode)
	}
	if err != nil {
		return err
	}

	if err := imaging.Save(canvas, out, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}
