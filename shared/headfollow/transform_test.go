package headfollow

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBodySetForward(t *testing.T) {
	cases := []mgl64.Vec3{
		{0, 0, 1},
		{0, 0, -1},
		{1, 0, 0},
		{0.3, -0.4, 0.8},
		{0, 1, 0},
		{-2, 1, 5},
	}

	for _, f := range cases {
		b := NewBody(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})
		b.SetForward(f)
		want := f.Normalize()
		if got := b.Forward(); !closeTo(got, want, 1e-9) {
			t.Errorf("SetForward(%v): expected forward %v, got %v", f, want, got)
		}
	}
}

func TestBodySetForwardKeepsUpright(t *testing.T) {
	b := NewBody(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})
	b.SetForward(mgl64.Vec3{1, 0, 1})

	right := b.Rotation.Rotate(WorldRight)
	if math.Abs(right.Y()) > 1e-9 {
		t.Fatalf("expected a level right axis, got %v", right)
	}
	up := b.Rotation.Rotate(WorldUp)
	if up.Y() <= 0 {
		t.Fatalf("expected the body to stay upright, got up %v", up)
	}
}

func TestBodySetForwardIgnoresZero(t *testing.T) {
	b := NewBody(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})
	b.SetForward(mgl64.Vec3{1, 0, 0})
	before := b.Rotation

	b.SetForward(mgl64.Vec3{})
	if b.Rotation != before {
		t.Fatalf("zero forward should leave rotation alone")
	}
}

func TestLerpClamps(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{2, 4, 6}

	if got := Lerp(a, b, 0.5); got != (mgl64.Vec3{1, 2, 3}) {
		t.Fatalf("expected midpoint, got %v", got)
	}
	if got := Lerp(a, b, 1.5); got != b {
		t.Fatalf("expected clamp to b, got %v", got)
	}
	if got := Lerp(a, b, -1); got != a {
		t.Fatalf("expected clamp to a, got %v", got)
	}
}

func TestPoseFromAnglesIsOrthonormal(t *testing.T) {
	for _, yaw := range []float64{0, 0.5, -2, math.Pi} {
		for _, pitch := range []float64{0, 0.3, -0.9} {
			p := PoseFromAngles(mgl64.Vec3{}, yaw, pitch)
			if math.Abs(p.Forward.Len()-1) > 1e-12 || math.Abs(p.Up.Len()-1) > 1e-12 {
				t.Fatalf("yaw %v pitch %v: expected unit axes, got %v %v", yaw, pitch, p.Forward, p.Up)
			}
			if math.Abs(p.Forward.Dot(p.Up)) > 1e-12 {
				t.Fatalf("yaw %v pitch %v: forward and up not orthogonal", yaw, pitch)
			}
		}
	}

	p := PoseFromAngles(mgl64.Vec3{}, 0, 0)
	if !closeTo(p.Forward, WorldForward, 1e-12) {
		t.Fatalf("expected zero angles to look down +Z, got %v", p.Forward)
	}
}
