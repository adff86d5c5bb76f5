package systems

import (
	"image/color"

	"github.com/automoto/followhead/components"
	cfg "github.com/automoto/followhead/config"
	"github.com/automoto/followhead/shared/headfollow"
	"github.com/automoto/followhead/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// panelFillLines is how many strokes shade the panel face
const panelFillLines = 10

// viewport projects world points for one head pose onto a screen of w x h pixels.
// World space is left-handed (+X right when looking down +Z), the projection matrices
// are OpenGL's right-handed ones, so screen X is mirrored once in toScreen.
type viewport struct {
	view, proj mgl64.Mat4
	w, h       float64
	near       float64
}

func newViewport(pose headfollow.Pose, w, h int) viewport {
	aspect := float64(w) / float64(h)
	return viewport{
		view: mgl64.LookAtV(pose.Position, pose.Position.Add(pose.Forward), pose.Up),
		proj: mgl64.Perspective(mgl64.DegToRad(cfg.Render.FieldOfView), aspect, cfg.Render.Near, cfg.Render.Far),
		w:    float64(w),
		h:    float64(h),
		near: cfg.Render.Near,
	}
}

// segment returns the screen-space endpoints of the visible part of a-b.
// ok is false when the segment lies entirely behind the near plane.
func (v viewport) segment(a, b mgl64.Vec3) (x0, y0, x1, y1 float32, ok bool) {
	va := v.view.Mul4x1(a.Vec4(1)).Vec3()
	vb := v.view.Mul4x1(b.Vec4(1)).Vec3()

	// View space looks down -Z
	limit := -v.near
	if va.Z() > limit && vb.Z() > limit {
		return 0, 0, 0, 0, false
	}
	if va.Z() > limit {
		va = clipToNear(vb, va, limit)
	} else if vb.Z() > limit {
		vb = clipToNear(va, vb, limit)
	}

	x0, y0 = v.toScreen(va)
	x1, y1 = v.toScreen(vb)
	return x0, y0, x1, y1, true
}

// clipToNear moves out (behind the plane) along in->out onto z == limit
func clipToNear(in, out mgl64.Vec3, limit float64) mgl64.Vec3 {
	t := (limit - in.Z()) / (out.Z() - in.Z())
	return in.Add(out.Sub(in).Mul(t))
}

func (v viewport) toScreen(p mgl64.Vec3) (float32, float32) {
	clip := v.proj.Mul4x1(p.Vec4(1))
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	sx := (1 - ndcX) / 2 * v.w
	sy := (1 - ndcY) / 2 * v.h
	return float32(sx), float32(sy)
}

func (v viewport) line(screen *ebiten.Image, a, b mgl64.Vec3, width float32, clr color.Color) {
	if x0, y0, x1, y1, ok := v.segment(a, b); ok {
		vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
	}
}

// DrawScene renders the floor grid and every snack bar from the headset's view.
func DrawScene(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)

	headset, ok := tags.Headset.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	bounds := screen.Bounds()
	vp := newViewport(components.Camera.Get(headset).Pose(), bounds.Dx(), bounds.Dy())

	drawFloor(screen, vp)

	tags.SnackBar.Each(ecs.World, func(e *donburi.Entry) {
		drawPanel(screen, vp, components.Transform.Get(e))
	})
}

func drawFloor(screen *ebiten.Image, vp viewport) {
	n := cfg.Render.FloorSize
	step := cfg.Render.FloorSpacing
	extent := float64(n) * step
	for i := -n; i <= n; i++ {
		d := float64(i) * step
		vp.line(screen, mgl64.Vec3{d, 0, -extent}, mgl64.Vec3{d, 0, extent}, 1, cfg.Render.GridColor)
		vp.line(screen, mgl64.Vec3{-extent, 0, d}, mgl64.Vec3{extent, 0, d}, 1, cfg.Render.GridColor)
	}
}

// panelCorners returns the four world-space corners of a panel, counter-clockwise
// from bottom-left as seen from its front.
func panelCorners(t *components.TransformData) [4]mgl64.Vec3 {
	hw := cfg.SnackBar.Width / 2 * t.Size.X()
	hh := cfg.SnackBar.Height / 2 * t.Size.Y()
	local := [4]mgl64.Vec3{{-hw, -hh, 0}, {hw, -hh, 0}, {hw, hh, 0}, {-hw, hh, 0}}

	var out [4]mgl64.Vec3
	for i, c := range local {
		out[i] = t.Pos.Add(t.Rotation.Rotate(c))
	}
	return out
}

func drawPanel(screen *ebiten.Image, vp viewport, t *components.TransformData) {
	if t.Size.X() == 0 || t.Size.Y() == 0 {
		return // hidden during warm-up
	}
	c := panelCorners(t)

	for i := 1; i < panelFillLines; i++ {
		f := float64(i) / panelFillLines
		left := headfollow.Lerp(c[0], c[3], f)
		right := headfollow.Lerp(c[1], c[2], f)
		vp.line(screen, left, right, 2, cfg.SnackBar.FillColor)
	}
	for i := range c {
		vp.line(screen, c[i], c[(i+1)%4], cfg.Render.LineWidth, cfg.SnackBar.OutlineColor)
	}

	// Facing marker along the panel's forward axis
	front := t.Pos.Add(t.Forward().Mul(0.1 * t.Size.Z()))
	vp.line(screen, t.Pos, front, cfg.Render.LineWidth, cfg.SnackBar.FrontColor)
}
