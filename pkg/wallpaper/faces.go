package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	pigo "github.com/esimov/pigo/core"
)

// FaceFinder locates faces in an image. Smart fill keeps the faces it
// reports inside the crop.
type FaceFinder interface {
	FindFaces(ctx context.Context, img image.Image) ([]image.Rectangle, error)
}

// Detection tuning for the pigo facefinder cascade.
const (
	faceScanWidth     = 640 // images are downscaled to this width before scanning
	faceMinSize       = 20
	faceShiftFactor   = 0.1
	faceScaleFactor   = 1.1
	faceIoUThreshold  = 0.2
	faceMinConfidence = 5.0
)

// PigoFaceFinder detects faces with a pigo cascade classifier.
type PigoFaceFinder struct {
	classifier *pigo.Pigo
}

// NewPigoFaceFinder unpacks a pigo cascade such as facefinder.
func NewPigoFaceFinder(cascade []byte) (finder *PigoFaceFinder, err error) {
	if len(cascade) == 0 {
		return nil, errors.New("face cascade is empty")
	}
	// Unpack indexes into the data without bounds checks.
	defer func() {
		if r := recover(); r != nil {
			finder, err = nil, fmt.Errorf("face cascade is malformed: %v", r)
		}
	}()

	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, fmt.Errorf("unpacking face cascade: %w", err)
	}
	return &PigoFaceFinder{classifier: classifier}, nil
}

// FindFaces returns the bounding boxes of confident detections in img coordinates.
func (f *PigoFaceFinder) FindFaces(ctx context.Context, img image.Image) ([]image.Rectangle, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	scan := img
	scale := 1.0
	if bounds.Dx() > faceScanWidth {
		scan = imaging.Resize(img, faceScanWidth, 0, imaging.Box)
		scale = float64(bounds.Dx()) / float64(scan.Bounds().Dx())
	}
	cols, rows := scan.Bounds().Dx(), scan.Bounds().Dy()

	params := pigo.CascadeParams{
		MinSize:     faceMinSize,
		MaxSize:     max(cols, rows),
		ShiftFactor: faceShiftFactor,
		ScaleFactor: faceScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pigo.RgbToGrayscale(scan),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}
	dets := f.classifier.RunCascade(params, 0.0)
	dets = f.classifier.ClusterDetections(dets, faceIoUThreshold)
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	var faces []image.Rectangle
	for _, d := range dets {
		if d.Q < faceMinConfidence {
			continue
		}
		half := float64(d.Scale) / 2
		r := image.Rect(
			int((float64(d.Col)-half)*scale), int((float64(d.Row)-half)*scale),
			int((float64(d.Col)+half)*scale), int((float64(d.Row)+half)*scale),
		).Add(bounds.Min).Intersect(bounds)
		if !r.Empty() {
			faces = append(faces, r)
		}
	}
	return faces, nil
}

// biasTowardFaces moves crop, keeping its size, so that it is centered on the
// detected faces when they are not already inside it. The result stays within bounds.
func biasTowardFaces(crop, bounds image.Rectangle, faces []image.Rectangle) image.Rectangle {
	if len(faces) == 0 {
		return crop
	}
	union := faces[0]
	for _, f := range faces[1:] {
		union = union.Union(f)
	}
	if union.In(crop) {
		return crop
	}

	size := crop.Size()
	center := image.Pt((union.Min.X+union.Max.X)/2, (union.Min.Y+union.Max.Y)/2)
	origin := center.Sub(size.Div(2))
	origin.X = clampInt(origin.X, bounds.Min.X, bounds.Max.X-size.X)
	origin.Y = clampInt(origin.Y, bounds.Min.Y, bounds.Max.Y-size.Y)
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
