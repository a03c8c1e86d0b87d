package snapshot

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lukaszgryglicki/photons2d/internal/photons2d"
)

func testFrame(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 255 / w), uint8(y * 255 / h), 128, 255})
		}
	}
	return img
}

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func TestSaveByExtension(t *testing.T) {
	dir := t.TempDir()
	frame := testFrame(16, 8)
	for _, name := range []string{"a.png", "b.bmp", "c.tif", "nested/d.TIFF"} {
		path := filepath.Join(dir, name)
		if err := Save(path, frame, Options{}); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		img := decodeFile(t, path)
		if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
			t.Fatalf("%s: bounds %v", name, img.Bounds())
		}
		r, g, _, _ := img.At(15, 7).RGBA()
		wr, wg, _, _ := frame.At(15, 7).RGBA()
		if r>>8 != wr>>8 || g>>8 != wg>>8 {
			t.Fatalf("%s: pixel changed: %d,%d vs %d,%d", name, r>>8, g>>8, wr>>8, wg>>8)
		}
	}
}

func TestSaveUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.jpg")
	if err := Save(path, testFrame(4, 4), Options{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("got %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("unsupported save created a file: %v", err)
	}
}

func TestSaveScaled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.png")
	if err := Save(path, testFrame(10, 6), Options{Scale: 2}); err != nil {
		t.Fatal(err)
	}
	if b := decodeFile(t, path).Bounds(); b.Dx() != 20 || b.Dy() != 12 {
		t.Fatalf("scaled bounds %v", b)
	}
	if img := Scale(testFrame(3, 3), 0.01); img.Bounds().Dx() != 3 {
		t.Fatal("degenerate scale should return the input")
	}
}

func TestDefaultName(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	if got, want := DefaultName("shots", now), filepath.Join("shots", "ScreenShot-1700000000123.png"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(0, 2)
	if r.Delay != 5 {
		t.Fatalf("default delay %d", r.Delay)
	}
	path := filepath.Join(t.TempDir(), "anim.gif")
	if err := r.Save(path); err == nil {
		t.Fatal("expected error for an empty recording")
	}
	frame := testFrame(12, 12)
	if !r.Add(frame) || !r.Add(frame) {
		t.Fatal("frames under the cap were dropped")
	}
	if r.Add(frame) {
		t.Fatal("frame over the cap was kept")
	}
	if err := r.Save(path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != 2 || g.Delay[0] != 5 {
		t.Fatalf("frames=%d delay=%v", len(g.Image), g.Delay)
	}
}

func TestOverlayMarksLights(t *testing.T) {
	w := photons2d.NewWorld(40, 30)
	w.AddSegment(photons2d.NewSegment(photons2d.Vec(5, 25), photons2d.Vec(35, 25), 0, 1, 0))
	l, err := photons2d.NewLight(photons2d.Vec(20, 12), photons2d.RGB(1, 0, 0), photons2d.Omnidirectional{})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.AddLight(l); err != nil {
		t.Fatal(err)
	}
	out, err := Overlay(image.NewNRGBA(image.Rect(0, 0, 40, 30)), w)
	if err != nil {
		t.Fatal(err)
	}
	if b := out.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("bounds %v", b)
	}
	r, g, _, a := out.At(20, 12).RGBA()
	if r < 0x8000 || g > 0x4000 || a != 0xffff {
		t.Fatalf("light marker pixel r=%x g=%x a=%x", r, g, a)
	}
	if r, _, _, _ := out.At(2, 2).RGBA(); r != 0 {
		t.Fatalf("background not black: r=%x", r)
	}
}

func TestSaveCompositesOntoBlack(t *testing.T) {
	frame := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	frame.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 20})
	frame.SetNRGBA(1, 0, color.NRGBA{0, 0, 255, 0})
	for _, name := range []string{"dim.png", "dim.bmp", "dim.tif"} {
		path := filepath.Join(t.TempDir(), name)
		if err := Save(path, frame, Options{}); err != nil {
			t.Fatal(err)
		}
		img := decodeFile(t, path)
		got := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
		if got.R < 19 || got.R > 21 || got.G != 0 || got.B != 0 || got.A != 255 {
			t.Fatalf("%s: dim pixel decoded as %+v, want about {20 0 0 255}", name, got)
		}
		if got := color.NRGBAModel.Convert(img.At(1, 0)).(color.NRGBA); got != (color.NRGBA{0, 0, 0, 255}) {
			t.Fatalf("%s: transparent pixel decoded as %+v, want opaque black", name, got)
		}
	}
}
