package renderer

import (
	"bytes"
	"math"
	"testing"

	"github.com/df07/glimmer/pkg/scene"
)

func TestRaytracer_SingleSphereEndToEnd(t *testing.T) {
	// Even image sizes put pixel (w/2, h/2) exactly on the optical axis,
	// which hits the sphere's front pole
	width, height := 64, 48
	rt := NewRaytracer(scene.NewSingleSphereScene(), width, height)
	rt.SetNumWorkers(3)

	frame, stats := rt.Render()

	r, g, b := frame.At(width/2, height/2)
	if r == 0 {
		t.Error("Expected a nonzero red channel at the front pole")
	}
	// 0.05 ambient + 0.8 * cos, with cos = 3/sqrt(17) for the light at (-2,-2,-1)
	expected := 255 * (0.05 + 0.8*3/math.Sqrt(17))
	if math.Abs(float64(r)-expected) > 1 {
		t.Errorf("Expected red near %f, got %d", expected, r)
	}
	if g != 0 || b != 0 {
		t.Errorf("Expected zero green and blue, got %d, %d", g, b)
	}

	r, g, b = frame.At(0, 0)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("Expected exact black for a miss, got (%d, %d, %d)", r, g, b)
	}

	if stats.TotalPixels != width*height {
		t.Errorf("Expected %d pixels, got %d", width*height, stats.TotalPixels)
	}
	if stats.Rays.PrimaryRays != int64(width*height) {
		t.Errorf("Expected %d primary rays, got %d", width*height, stats.Rays.PrimaryRays)
	}
	if stats.NumWorkers != 3 {
		t.Errorf("Expected 3 workers, got %d", stats.NumWorkers)
	}
}

func TestRaytracer_WorkerCountDoesNotChangeImage(t *testing.T) {
	s := scene.NewMirrorsScene()

	var reference []byte
	for _, workers := range []int{1, 2, 5, 16} {
		rt := NewRaytracer(s, 40, 30)
		rt.SetKernel(Grid2x2())
		rt.SetNumWorkers(workers)
		frame, stats := rt.Render()

		if stats.SamplesPerPixel != 4 || stats.Rays.PrimaryRays != 40*30*4 {
			t.Errorf("workers=%d: unexpected sample counts %+v", workers, stats)
		}
		if reference == nil {
			reference = frame.Pix
			continue
		}
		if !bytes.Equal(reference, frame.Pix) {
			t.Errorf("workers=%d: image differs from single-worker render", workers)
		}
	}
}

func TestRaytracer_PixelColorMatchesFrame(t *testing.T) {
	s := scene.NewDefaultScene()
	rt := NewRaytracer(s, 32, 18)
	rt.SetKernel(Grid2x2())
	frame, _ := rt.Render()

	for _, p := range [][2]int{{0, 0}, {16, 9}, {5, 15}, {31, 17}} {
		want := [3]uint8{}
		want[0], want[1], want[2] = frame.At(p[0], p[1])
		got := [3]uint8{}
		got[0], got[1], got[2] = rt.PixelColor(p[0], p[1]).ToRGB8()
		if got != want {
			t.Errorf("pixel %v: PixelColor gives %v, frame has %v", p, got, want)
		}
	}
}

func TestRaytracer_Inspect(t *testing.T) {
	rt := NewRaytracer(scene.NewSingleSphereScene(), 64, 48)

	hit := rt.Inspect(32, 24)
	if !hit.Hit || hit.Kind != "sphere" {
		t.Fatalf("Expected a sphere hit, got %+v", hit)
	}
	if hit.Material == nil || hit.Material.Diffuse != 0.8 || hit.Material.Texture != "solid" {
		t.Errorf("Unexpected material info %+v", hit.Material)
	}
	if math.Abs(hit.Distance-2) > 0.01 {
		t.Errorf("Expected distance near 2, got %f", hit.Distance)
	}
	if hit.RGB[0] == 0 || hit.Rays.ShadowRays != 1 {
		t.Errorf("Unexpected shading result %+v", hit)
	}

	miss := rt.Inspect(0, 0)
	if miss.Hit || miss.Material != nil || miss.RGB != [3]uint8{} {
		t.Errorf("Expected a miss, got %+v", miss)
	}
}

func TestRaytracer_InspectMatchesFrame(t *testing.T) {
	kernels := []struct {
		name   string
		kernel Kernel
	}{
		{"single sample", SingleSample()},
		{"2x2 grid", Grid2x2()},
	}

	for _, tt := range kernels {
		t.Run(tt.name, func(t *testing.T) {
			rt := NewRaytracer(scene.NewSingleSphereScene(), 64, 48)
			rt.SetKernel(tt.kernel)
			frame, _ := rt.Render()

			mismatches := 0
			for y := 0; y < 48; y++ {
				for x := 0; x < 64; x++ {
					var want [3]uint8
					want[0], want[1], want[2] = frame.At(x, y)
					if got := rt.Inspect(x, y).RGB; got != want {
						mismatches++
					}
				}
			}
			if mismatches != 0 {
				t.Errorf("Inspect disagrees with the frame at %d of %d pixels", mismatches, 64*48)
			}
		})
	}
}

func TestRender_Convenience(t *testing.T) {
	frame := Render(scene.NewSingleSphereScene(), 20, 10, Grid2x2())
	if frame.Width != 20 || frame.Height != 10 || len(frame.Pix) != 20*10*3 {
		t.Fatalf("Unexpected frame %dx%d with %d bytes", frame.Width, frame.Height, len(frame.Pix))
	}

	img := frame.RGBA()
	r, g, b := frame.At(10, 5)
	c := img.RGBAAt(10, 5)
	if c.R != r || c.G != g || c.B != b || c.A != 255 {
		t.Errorf("RGBA conversion mismatch: %v vs (%d, %d, %d)", c, r, g, b)
	}
}

func TestRaytracer_SetLoggerNil(t *testing.T) {
	rt := NewRaytracer(scene.NewSingleSphereScene(), 4, 4)
	rt.SetLogger(nil)
	rt.SetKernel(nil)
	frame, stats := rt.Render()
	if frame == nil || stats.SamplesPerPixel != 1 {
		t.Errorf("Expected a single-sample render, got %+v", stats)
	}
}
