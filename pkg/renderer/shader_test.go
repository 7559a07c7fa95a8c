package renderer

import (
	"math"
	"testing"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/material"
	"github.com/df07/glimmer/pkg/scene"
)

func white(diffuse, reflectivity float64) *material.Material {
	return material.MustMaterial(material.Solid(core.Gray(1)), diffuse, reflectivity)
}

func mustRay(t *testing.T, origin, direction core.Vec3) core.Ray {
	t.Helper()
	ray, err := core.NewRay(origin, direction)
	if err != nil {
		t.Fatalf("NewRay failed: %v", err)
	}
	return ray
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("scene construction failed: %v", err)
	}
}

func assertColor(t *testing.T, got, want core.Color) {
	t.Helper()
	if math.Abs(got.R-want.R) > 1e-9 || math.Abs(got.G-want.G) > 1e-9 || math.Abs(got.B-want.B) > 1e-9 {
		t.Errorf("Expected color %v, got %v", want, got)
	}
}

// floorScene is a white floor below the camera lit from straight above (0,1,5)
func floorScene(t *testing.T, occluded bool) *scene.Scene {
	s := scene.NewScene("floor")
	mustAdd(t, s.AddPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), white(1, 0)))
	mustAdd(t, s.AddLight(core.NewVec3(0, -5, 5), core.Gray(1)))
	if occluded {
		mustAdd(t, s.AddSphere(core.NewVec3(0, -2, 5), 0.5, white(1, 0)))
	}
	return s
}

func TestShader_ShadowOcclusion(t *testing.T) {
	ray := mustRay(t, core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 5))

	t.Run("occluded light contributes nothing", func(t *testing.T) {
		shader := NewShader(floorScene(t, true), DefaultShadingConfig())
		assertColor(t, shader.Shade(ray, 0), core.Gray(0.05))
	})

	t.Run("removing the occluder restores the light", func(t *testing.T) {
		shader := NewShader(floorScene(t, false), DefaultShadingConfig())
		assertColor(t, shader.Shade(ray, 0), core.Gray(1.05))
	})
}

func TestShader_ShadowRayDoesNotHitOwnSurface(t *testing.T) {
	// A light far along the plane's normal must reach the plane
	s := scene.NewScene("self")
	mustAdd(t, s.AddPlane(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), white(1, 0)))
	mustAdd(t, s.AddLight(core.NewVec3(0, 0, -100), core.Gray(1)))

	shader := NewShader(s, DefaultShadingConfig())
	got := shader.Shade(mustRay(t, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), 0)
	assertColor(t, got, core.Gray(1.05))
	if shader.Counts().ShadowRays != 1 {
		t.Errorf("Expected 1 shadow ray, got %d", shader.Counts().ShadowRays)
	}
}

func TestShader_BackfacingLight(t *testing.T) {
	// The light is behind the plane, so the cosine term is -1
	s := scene.NewScene("backfacing")
	mustAdd(t, s.AddPlane(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), white(0.5, 0)))
	mustAdd(t, s.AddLight(core.NewVec3(0, 0, 10), core.Gray(1)))
	ray := mustRay(t, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	t.Run("unclamped subtracts", func(t *testing.T) {
		shader := NewShader(s, DefaultShadingConfig())
		assertColor(t, shader.Shade(ray, 0), core.Gray(0.05-0.5))
	})

	t.Run("clamped ignores", func(t *testing.T) {
		config := DefaultShadingConfig()
		config.ClampBackfacing = true
		shader := NewShader(s, config)
		assertColor(t, shader.Shade(ray, 0), core.Gray(0.05))
	})
}

func mirrorCorridor(t *testing.T) *scene.Scene {
	s := scene.NewScene("corridor")
	mirror := material.MustMaterial(material.Solid(core.Gray(0.5)), 0, 1)
	mustAdd(t, s.AddPlane(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), mirror))
	mustAdd(t, s.AddPlane(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), mirror))
	return s
}

func TestShader_RecursionBound(t *testing.T) {
	ray := mustRay(t, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	tests := []struct {
		maxDepth        int
		wantShadeCalls  int64
		wantReflections int64
	}{
		{0, 1, 0},
		{1, 2, 1},
		{3, 4, 3},
		{6, 7, 6},
	}

	for _, tt := range tests {
		config := DefaultShadingConfig()
		config.MaxDepth = tt.maxDepth
		shader := NewShader(mirrorCorridor(t), config)

		got := shader.Shade(ray, 0)

		counts := shader.Counts()
		if counts.ShadeCalls != tt.wantShadeCalls {
			t.Errorf("MaxDepth %d: expected %d shade calls, got %d", tt.maxDepth, tt.wantShadeCalls, counts.ShadeCalls)
		}
		if counts.ReflectionRays != tt.wantReflections {
			t.Errorf("MaxDepth %d: expected %d reflection rays, got %d", tt.maxDepth, tt.wantReflections, counts.ReflectionRays)
		}
		// Each bounce adds the same ambient term at full reflectivity
		assertColor(t, got, core.Gray(0.025*float64(tt.wantShadeCalls)))
	}
}

func TestShader_MissReturnsBackground(t *testing.T) {
	ray := mustRay(t, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	shader := NewShader(scene.NewScene("empty"), DefaultShadingConfig())
	if got := shader.Shade(ray, 0); got != core.Black {
		t.Errorf("Expected exact black, got %v", got)
	}

	config := DefaultShadingConfig()
	config.Background = core.NewColor(0.1, 0.2, 0.3)
	shader = NewShader(scene.NewScene("empty"), config)
	if got := shader.Shade(ray, 0); got != config.Background {
		t.Errorf("Expected background %v, got %v", config.Background, got)
	}
}

func TestShader_TextureAtHitUV(t *testing.T) {
	// uv at the sphere's front pole is (0.25, 0.5); the pattern echoes it back
	s := scene.NewScene("uv")
	uvMat := material.MustMaterial(material.Procedural("uvdebug", material.UVDebugPattern), 0, 0)
	mustAdd(t, s.AddSphere(core.NewVec3(0, 0, 3), 1, uvMat))

	config := DefaultShadingConfig()
	config.Ambient = 1
	shader := NewShader(s, config)
	got := shader.Shade(mustRay(t, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), 0)
	assertColor(t, got, core.NewColor(0.25, 0.5, 0))
}

func TestShader_DepthMode(t *testing.T) {
	s := scene.NewScene("depth")
	mustAdd(t, s.AddPlane(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), white(1, 0)))

	config := DefaultShadingConfig()
	config.Mode = ShadeDepth
	shader := NewShader(s, config)

	got := shader.ShadePrimary(mustRay(t, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)))
	assertColor(t, got, core.Gray(205.0/255))

	miss := shader.ShadePrimary(mustRay(t, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
	if miss != core.Black {
		t.Errorf("Expected black for a miss, got %v", miss)
	}
	if shader.Counts().PrimaryRays != 2 {
		t.Errorf("Expected 2 primary rays, got %d", shader.Counts().PrimaryRays)
	}
}
