package wallpaper

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/DayNight/pkg/placement"
	"github.com/dixieflatline76/DayNight/util/log"
	"github.com/muesli/smartcrop"
)

// FillMode decides how an image is sized before it is centered on the surface.
type FillMode int

const (
	// FillCenter keeps the image at its natural size.
	FillCenter FillMode = iota
	// FillCover scales the image until it covers the surface.
	FillCover
	// FillSmart crops the most interesting region to the surface aspect and scales it.
	FillSmart
)

var fillModeNames = [...]string{
	FillCenter: "Center",
	FillCover:  "Fill",
	FillSmart:  "Smart",
}

// FillModes returns every fill mode in display order.
func FillModes() []FillMode {
	return []FillMode{FillCenter, FillCover, FillSmart}
}

// FillModeNames returns the display names of FillModes.
func FillModeNames() []string {
	return fillModeNames[:]
}

func (m FillMode) String() string {
	if m < 0 || int(m) >= len(fillModeNames) {
		return fmt.Sprintf("FillMode(%d)", int(m))
	}
	return fillModeNames[m]
}

// ParseFillMode looks up a fill mode by its display name.
func ParseFillMode(name string) (FillMode, bool) {
	for i, n := range fillModeNames {
		if n == name {
			return FillMode(i), true
		}
	}
	return FillCenter, false
}

// fit sizes img for the surface according to mode. The result may be larger
// than the surface; centering crops the overflow.
func fit(ctx context.Context, img image.Image, surface image.Point, mode FillMode, resampler imaging.ResampleFilter, faces FaceFinder) (image.Image, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	size := img.Bounds().Size()

	switch mode {
	case FillCenter:
		return img, nil
	case FillCover:
		target := placement.Cover(surface, size)
		if target == size {
			return img, nil
		}
		r := &resizer{resampler: resampler}
		resized := r.resizeWithContext(ctx, img, uint(target.X), uint(target.Y))
		if resized == nil {
			return nil, ctx.Err()
		}
		return resized, nil
	case FillSmart:
		if size == surface {
			return img, nil
		}
		return smartCrop(ctx, img, surface, resampler, faces)
	default:
		return nil, fmt.Errorf("unknown fill mode %d", int(mode))
	}
}

// smartCrop finds the best surface-shaped region of img and scales it to the
// surface. With a face finder, the region is shifted to keep faces in frame.
func smartCrop(ctx context.Context, img image.Image, surface image.Point, resampler imaging.ResampleFilter, faces FaceFinder) (image.Image, error) {
	r := &resizer{resampler: resampler}
	analyzer := smartcrop.NewAnalyzer(r)

	type cropResult struct {
		crop image.Rectangle
		err  error
	}
	resultChan := make(chan cropResult, 1)

	go func() {
		topCrop, err := analyzer.FindBestCrop(img, surface.X, surface.Y)
		resultChan <- cropResult{crop: topCrop, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-resultChan:
		if result.err != nil {
			return nil, fmt.Errorf("finding best crop: %w", result.err)
		}

		crop := result.crop
		if faces != nil {
			found, err := faces.FindFaces(ctx, img)
			switch {
			case err != nil && ctx.Err() != nil:
				return nil, ctx.Err()
			case err != nil:
				log.Printf("Face detection failed, using plain smart crop: %v", err)
			default:
				crop = biasTowardFaces(crop, img.Bounds(), found)
				log.Debugf("Smart crop: %d faces, region %v", len(found), crop)
			}
		}

		cropped := imaging.Crop(img, crop)
		resized := r.resizeWithContext(ctx, cropped, uint(surface.X), uint(surface.Y))
		if resized == nil {
			return nil, ctx.Err()
		}
		return resized, nil
	}
}

// resizer implements the smartcrop.Resizer interface and adds context awareness.
type resizer struct {
	resampler imaging.ResampleFilter
}

// Resize satisfies smartcrop's resizer, which has no context.
func (r *resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.resampler)
}

// resizeWithContext returns nil if ctx is done before the resize finishes.
func (r *resizer) resizeWithContext(ctx context.Context, img image.Image, width, height uint) image.Image {
	resultChan := make(chan image.Image, 1)

	go func() {
		resultChan <- imaging.Resize(img, int(width), int(height), r.resampler)
	}()

	select {
	case <-ctx.Done():
		return nil
	case result := <-resultChan:
		return result
	}
}
