package wallpaper

import (
	"context"
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/DayNight/pkg/placement"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultPlaceholderText is drawn when no image can be shown.
const DefaultPlaceholderText = "No image is selected"

// ErrInvalidSurface is returned when a surface has no area.
var ErrInvalidSurface = errors.New("surface must have a positive width and height")

// placeholderLinesPerSurface controls how large the placeholder text is drawn
// relative to the surface height.
const placeholderLinesPerSurface = 40

// Composer draws images onto surface-sized canvases. The zero value is not
// usable; use NewComposer.
type Composer struct {
	Background      color.Color
	Foreground      color.Color
	PlaceholderText string
	Resampler       imaging.ResampleFilter

	// Faces, when set, steers the Smart fill mode toward detected faces.
	Faces FaceFinder
}

// NewComposer returns a Composer that draws on black and uses text for placeholders.
func NewComposer(text string) *Composer {
	if text == "" {
		text = DefaultPlaceholderText
	}
	return &Composer{
		Background:      color.Black,
		Foreground:      color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
		PlaceholderText: text,
		Resampler:       imaging.Lanczos,
	}
}

// Compose returns a surface-sized image with img sized by mode and centered.
// Parts of img beyond the surface are cropped; uncovered parts show the background.
func (c *Composer) Compose(ctx context.Context, img image.Image, surface image.Point, mode FillMode) (*image.NRGBA, error) {
	if surface.X <= 0 || surface.Y <= 0 {
		return nil, ErrInvalidSurface
	}
	fitted, err := fit(ctx, img, surface, mode, c.Resampler, c.Faces)
	if err != nil {
		return nil, err
	}

	canvas := imaging.New(surface.X, surface.Y, c.Background)
	off := placement.CenterOffset(surface, fitted.Bounds().Size())
	return imaging.Paste(canvas, fitted, off), nil
}

// Placeholder returns a surface-sized image with the placeholder text centered.
func (c *Composer) Placeholder(surface image.Point) (*image.NRGBA, error) {
	if surface.X <= 0 || surface.Y <= 0 {
		return nil, ErrInvalidSurface
	}
	canvas := imaging.New(surface.X, surface.Y, c.Background)

	label := c.textImage(c.PlaceholderText)
	lineHeight := basicfont.Face7x13.Metrics().Height.Ceil()
	if scale := surface.Y / (placeholderLinesPerSurface * lineHeight); scale > 1 {
		label = imaging.Resize(label, label.Bounds().Dx()*scale, 0, imaging.NearestNeighbor)
	}

	off := placement.CenterOffset(surface, label.Bounds().Size())
	return imaging.Overlay(canvas, label, off, 1.0), nil
}

// textImage renders text on a transparent image sized to fit it.
func (c *Composer) textImage(text string) *image.NRGBA {
	const pad = 2
	face := basicfont.Face7x13
	metrics := face.Metrics()
	advance := font.MeasureString(face, text)

	img := imaging.New(advance.Ceil()+2*pad, metrics.Height.Ceil()+2*pad, color.Transparent)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c.Foreground),
		Face: face,
		Dot:  fixed.P(pad, pad+metrics.Ascent.Ceil()),
	}
	d.DrawString(text)
	return img
}
