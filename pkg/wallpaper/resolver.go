package wallpaper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/DayNight/pkg/selection"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

var (
	// ErrEmptyReference is returned when resolving the empty reference.
	ErrEmptyReference = errors.New("no image is selected")
	// ErrUnsupportedScheme is returned for references that do not name a local file.
	ErrUnsupportedScheme = errors.New("unsupported image reference scheme")
)

// Resolver turns an image reference into a decoded image.
type Resolver interface {
	Resolve(ctx context.Context, ref selection.ImageRef) (image.Image, error)
}

// FileResolver reads references that point to local files. Files larger than
// MaxBytes are rejected when MaxBytes is positive.
type FileResolver struct {
	MaxBytes int64
}

// DefaultMaxImageBytes bounds the size of a file the FileResolver will read.
const DefaultMaxImageBytes = 256 << 20

// NewFileResolver returns a FileResolver with the default size limit.
func NewFileResolver() *FileResolver {
	return &FileResolver{MaxBytes: DefaultMaxImageBytes}
}

// Resolve loads and decodes the image named by ref. EXIF orientation is applied.
func (r *FileResolver) Resolve(ctx context.Context, ref selection.ImageRef) (image.Image, error) {
	if ref.IsEmpty() {
		return nil, ErrEmptyReference
	}
	path, ok := ref.Path()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, ref.Scheme())
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("opening image: %s is a directory", path)
	}
	if r.MaxBytes > 0 && info.Size() > r.MaxBytes {
		return nil, fmt.Errorf("image %s is %d bytes, limit is %d", path, info.Size(), r.MaxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	return DecodeImage(ctx, data)
}

// DecodeImage decodes an image from a byte slice with context awareness.
func DecodeImage(ctx context.Context, data []byte) (image.Image, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return img, nil
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
