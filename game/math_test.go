package game

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestSafeNormalizeZeroVector(t *testing.T) {
	if got := SafeNormalize(mgl32.Vec3{}); got != (mgl32.Vec3{}) {
		t.Fatalf("expected zero vector, got %v", got)
	}
	got := SafeNormalize(mgl32.Vec3{3, 0, 4})
	if !vec3ApproxEq(got, mgl32.Vec3{0.6, 0, 0.8}) {
		t.Fatalf("expected (0.6, 0, 0.8), got %v", got)
	}
}

func TestForwardAndRightBasis(t *testing.T) {
	if f := Forward(0, 0); !vec3ApproxEq(f, mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("yaw=0 pitch=0: expected +X, got %v", f)
	}
	if r := Right(0); !vec3ApproxEq(r, mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("yaw=0: expected +Z, got %v", r)
	}
	if f := Forward(math32.Pi/2, 0); !vec3ApproxEq(f, mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("yaw=pi/2: expected +Z, got %v", f)
	}
	if f := Forward(0, -math32.Pi/2); !vec3ApproxEq(f, mgl32.Vec3{0, -1, 0}) {
		t.Fatalf("pitch=-pi/2: expected -Y, got %v", f)
	}

	for _, yaw := range []float32{-2.5, -1, 0.3, 1.7, 3} {
		for _, pitch := range []float32{-1.4, -0.5, 0, 0.9, 1.4} {
			f, r := Forward(yaw, pitch), Right(yaw)
			if !Float32ApproxEq(f.Len(), 1) {
				t.Fatalf("forward(%v, %v) not unit length: %v", yaw, pitch, f.Len())
			}
			if !Float32ApproxEq(Horizontal(f).Dot(r), 0) {
				t.Fatalf("right(%v) not perpendicular to forward: %v", yaw, Horizontal(f).Dot(r))
			}
		}
	}
}

func TestClampFloat(t *testing.T) {
	if got := ClampFloat(2, -1.4, 1.4); got != 1.4 {
		t.Fatalf("expected 1.4, got %v", got)
	}
	if got := ClampFloat(-2, -1.4, 1.4); got != -1.4 {
		t.Fatalf("expected -1.4, got %v", got)
	}
	if got := ClampFloat(0.5, -1.4, 1.4); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
}

func TestIsFiniteVec3(t *testing.T) {
	if !IsFiniteVec3(mgl32.Vec3{1, 2, 3}) {
		t.Fatal("expected finite vector")
	}
	if IsFiniteVec3(mgl32.Vec3{}.Normalize()) {
		t.Fatal("mgl32 normalization of a zero vector should not be finite")
	}
}

func vec3ApproxEq(a, b mgl32.Vec3) bool {
	return Float32ApproxEq(a[0], b[0]) && Float32ApproxEq(a[1], b[1]) && Float32ApproxEq(a[2], b[2])
}
