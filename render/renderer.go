package render

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"runtime"
	"sync"

	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
	"golang.org/x/image/draw"
)

// Config sizes the output frame and the worker fan-out.
type Config struct {
	Width  int
	Height int
	// Supersample renders at an integer multiple of the output size and
	// downscales. 0 or 1 disables supersampling.
	Supersample int
	// Workers is the number of scanline goroutines; 0 picks one per CPU.
	Workers int
}

// Renderer rasterizes frames of a signed distance field scene. It owns no
// scene state: every Render call takes the frame's immutable snapshot
// explicitly, so one Renderer may be reused across frames and scenes.
type Renderer struct {
	cfg Config
}

// NewRenderer validates cfg and returns a renderer.
func NewRenderer(cfg Config) (*Renderer, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("non-positive frame dimension")
	}
	if cfg.Supersample < 0 {
		return nil, errors.New("negative supersample factor")
	}
	if cfg.Supersample == 0 {
		cfg.Supersample = 1
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Renderer{cfg: cfg}, nil
}

// Render draws one frame of s. The scene, camera and shading snapshot must
// not be mutated while Render is in flight; pixels are evaluated in
// parallel and share them read-only. There is no mid-frame cancellation; a
// frame is abandoned wholesale between frames or not at all.
func (r *Renderer) Render(s SDF, cam Camera, sh *Shading) *image.RGBA {
	ss := r.cfg.Supersample
	w := r.cfg.Width * ss
	h := r.cfg.Height * ss
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	aspect := float32(w) / float32(h)

	// Contiguous row ranges per worker. Rows are independent, so the only
	// synchronization is the final join.
	var wg sync.WaitGroup
	workers := r.cfg.Workers
	rowsPer := (h + workers - 1) / workers
	for start := 0; start < h; start += rowsPer {
		end := min(start+rowsPer, h)
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				r.renderRow(img, s, cam, sh, y, w, h, aspect)
			}
		}(start, end)
	}
	wg.Wait()

	if ss == 1 {
		return img
	}
	out := image.NewRGBA(image.Rect(0, 0, r.cfg.Width, r.cfg.Height))
	draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out
}

func (r *Renderer) renderRow(img *image.RGBA, s SDF, cam Camera, sh *Shading, y, w, h int, aspect float32) {
	// Normalized device coordinates spanning [-aspect,aspect] x [-1,1],
	// sampled at pixel centers, +y up.
	fragY := 1 - 2*(float32(y)+0.5)/float32(h)
	for x := 0; x < w; x++ {
		fragX := aspect * (2*(float32(x)+0.5)/float32(w) - 1)
		ray := cam.PixelRay(ms2.Vec{X: fragX, Y: fragY})
		dist := March(s, ray, MinDist, MaxDist)
		img.SetRGBA(x, y, toRGBA(sh.Shade(s, ray, dist)))
	}
}

// toRGBA clamps a linear color into 8-bit RGBA with alpha always 1.
func toRGBA(c ms3.Vec) color.RGBA {
	return color.RGBA{
		R: channel(c.X),
		G: channel(c.Y),
		B: channel(c.Z),
		A: 255,
	}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	} else if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// WritePNGFile encodes img to a PNG file with said filename.
func WritePNGFile(filename string, img image.Image) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	err = png.Encode(fp, img)
	if err != nil {
		return err
	}
	return fp.Sync()
}
