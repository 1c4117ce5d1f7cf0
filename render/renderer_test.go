package render

import (
	"image/color"
	"testing"

	"github.com/soypat/glgl/math/ms3"
)

func TestNewRendererRejectsBadConfig(t *testing.T) {
	if _, err := NewRenderer(Config{Width: 0, Height: 10}); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := NewRenderer(Config{Width: 10, Height: -1}); err == nil {
		t.Error("negative height accepted")
	}
	if _, err := NewRenderer(Config{Width: 10, Height: 10, Supersample: -2}); err == nil {
		t.Error("negative supersample accepted")
	}
}

func TestRenderFillsBackgroundOnEmptyScene(t *testing.T) {
	r, err := NewRenderer(Config{Width: 8, Height: 6, Workers: 2})
	if err != nil {
		t.Fatal(err)
	}
	empty := sdfFunc(func(ms3.Vec) float32 { return 1000 })
	sh := testShading(ms3.Vec{Z: 5})
	sh.Background = ms3.Vec{X: 0.2, Y: 0.4, Z: 0.6}
	cam := NewCamera(ms3.Vec{X: 3}, 45)

	img := r.Render(empty, cam, sh)
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("image bounds %v, want 8x6", b)
	}
	want := color.RGBA{R: 51, G: 102, B: 153, A: 255}
	for _, pt := range [][2]int{{0, 0}, {7, 5}, {4, 3}} {
		if got := img.RGBAAt(pt[0], pt[1]); got != want {
			t.Errorf("pixel %v: %+v, want %+v", pt, got, want)
		}
	}
}

func TestRenderSphereCenterPixel(t *testing.T) {
	// Odd dimensions put a pixel center exactly on the optical axis.
	r, err := NewRenderer(Config{Width: 33, Height: 33, Workers: 4})
	if err != nil {
		t.Fatal(err)
	}
	s := sphereAt(ms3.Vec{}, 1)
	sh := testShading(ms3.Vec{Z: 5})
	cam := NewCamera(ms3.Vec{Z: 5}, 60)
	cam.Up = ms3.Vec{Y: 1}

	img := r.Render(s, cam, sh)
	center := img.RGBAAt(16, 16)
	if center.R < 100 {
		t.Errorf("center pixel %+v, want a lit red surface", center)
	}
	if center.G != 0 || center.B != 0 {
		t.Errorf("center pixel %+v has non-red channels", center)
	}
	if corner := img.RGBAAt(0, 0); corner != (color.RGBA{A: 255}) {
		t.Errorf("corner pixel %+v, want black background", corner)
	}
}

func TestRenderSupersampleKeepsOutputSize(t *testing.T) {
	r, err := NewRenderer(Config{Width: 12, Height: 9, Supersample: 2, Workers: 2})
	if err != nil {
		t.Fatal(err)
	}
	empty := sdfFunc(func(ms3.Vec) float32 { return 1000 })
	sh := testShading(ms3.Vec{Z: 5})
	cam := NewCamera(ms3.Vec{X: 3}, 45)
	img := r.Render(empty, cam, sh)
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
		t.Errorf("image bounds %v, want 12x9", b)
	}
}
