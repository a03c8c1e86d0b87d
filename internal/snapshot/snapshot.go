// Package snapshot exports rendered frames: still images by file extension,
// optional upscaling, a scene overlay and animated GIF recording.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	plog "github.com/lukaszgryglicki/photons2d/internal/log"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for file extensions with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

var logger = plog.New("snapshot")

// Options controls Save.
type Options struct {
	// Scale > 1 upscales the frame (Catmull-Rom) before encoding.
	Scale float64
}

// Save encodes img into path, picking the encoder from the extension:
// .png, .bmp, .tif or .tiff. The frame is composited onto black, so the
// file is opaque. Missing directories are created.
func Save(path string, img image.Image, opts Options) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !supported(format) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	img = flatten(img)
	if opts.Scale > 1 {
		img = Scale(img, opts.Scale)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, format, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	b := img.Bounds()
	logger.Infof("Saved %dx%d snapshot to %s", b.Dx(), b.Dy(), path)
	return nil
}

// flatten composites img over an opaque black canvas anchored at (0,0).
func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	bg := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(bg, bg.Bounds(), image.Black, image.Point{}, draw.Src)
	draw.Draw(bg, bg.Bounds(), img, b.Min, draw.Over)
	return bg
}

func supported(format string) bool {
	switch format {
	case "png", "bmp", "tif", "tiff":
		return true
	}
	return false
}

// Encode writes img to w in the named format (png, bmp, tif or tiff).
func Encode(w io.Writer, format string, img image.Image) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Scale resizes img by factor with Catmull-Rom resampling. Factors that
// would collapse the image to nothing return it unchanged.
func Scale(img image.Image, factor float64) image.Image {
	b := img.Bounds()
	w, h := int(float64(b.Dx())*factor+0.5), int(float64(b.Dy())*factor+0.5)
	if w < 1 || h < 1 || (w == b.Dx() && h == b.Dy()) {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// DefaultName is the timestamped screenshot name inside dir.
func DefaultName(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("ScreenShot-%d.png", now.UnixMilli()))
}
