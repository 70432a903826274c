package camera

import (
	"math"
	"testing"

	"github.com/quietfoxgames/hearthvale/internal/geom"
)

// stubTarget is a followable rectangle.
type stubTarget struct {
	rect geom.Rect
}

func (s *stubTarget) Bounds() geom.Rect { return s.rect }

func TestSetBoundsClampInvariant(t *testing.T) {
	cam := New(800, 600, 1)
	cam.SetBounds(1600, 1200)

	target := &stubTarget{rect: geom.NewRect(0, 0, 32, 32)}
	cam.SetTarget(target, 0, 0)

	// Drive the target around, including far out of bounds, and check the
	// offset never leaves the clamp rectangle.
	positions := []geom.Point{
		{X: -500, Y: -500},
		{X: 0, Y: 0},
		{X: 800, Y: 600},
		{X: 5000, Y: 5000},
		{X: 1590, Y: 10},
	}
	for _, p := range positions {
		target.rect.X, target.rect.Y = p.X, p.Y
		for i := 0; i < 120; i++ {
			cam.Update(1.0 / 60)
		}
		if cam.X < 0 || cam.X > 800 || cam.Y < 0 || cam.Y > 600 {
			t.Errorf("offset (%v, %v) escaped clamp [0,800]x[0,600] for target %v", cam.X, cam.Y, p)
		}
	}
}

func TestCenterOnInstantClamps(t *testing.T) {
	cam := New(800, 600, 1)
	cam.SetBounds(1600, 1200)

	cam.CenterOn(800, 600, true)
	if cam.X != 400 || cam.Y != 300 {
		t.Errorf("offset = (%v, %v), want (400, 300)", cam.X, cam.Y)
	}

	cam.CenterOn(0, 0, true)
	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("offset = (%v, %v), want clamp to (0, 0)", cam.X, cam.Y)
	}

	cam.CenterOn(1600, 1200, true)
	if cam.X != 800 || cam.Y != 600 {
		t.Errorf("offset = (%v, %v), want clamp to (800, 600)", cam.X, cam.Y)
	}
}

func TestDegenerateWorldCollapsesClamp(t *testing.T) {
	cam := New(800, 600, 1)
	cam.SetBounds(400, 300) // world smaller than viewport

	cam.CenterOn(200, 150, true)
	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("offset = (%v, %v), want pinned to (0, 0)", cam.X, cam.Y)
	}
}

func TestApplyInverseRoundTrip(t *testing.T) {
	cam := New(800, 600, 1)
	cam.X, cam.Y = 123, 456

	points := [][2]int{{0, 0}, {400, 300}, {-10, 17}, {799, 599}}
	for _, p := range points {
		wx, wy := cam.InverseApply(p[0], p[1])
		sx, sy := cam.Apply(wx, wy)
		if sx != p[0] || sy != p[1] {
			t.Errorf("round trip (%d, %d) -> (%v, %v) -> (%d, %d)", p[0], p[1], wx, wy, sx, sy)
		}
	}
}

func TestApplyRectPreservesSize(t *testing.T) {
	cam := New(800, 600, 1)
	cam.X, cam.Y = 100, 50

	r := cam.ApplyRect(geom.NewRect(150, 80, 32, 48))
	if r.X != 50 || r.Y != 30 {
		t.Errorf("origin = (%v, %v), want (50, 30)", r.X, r.Y)
	}
	if r.W != 32 || r.H != 48 {
		t.Errorf("size = (%v, %v), want (32, 48)", r.W, r.H)
	}
}

func TestSnapFollowCentersTarget(t *testing.T) {
	cam := New(800, 600, 1)
	cam.Smoothing = false

	target := &stubTarget{rect: geom.NewRect(984, 684, 32, 32)} // center (1000, 700)
	cam.SetTarget(target, 0, 0)
	cam.Update(1.0 / 60)

	if cam.X != 600 || cam.Y != 400 {
		t.Errorf("offset = (%v, %v), want (600, 400)", cam.X, cam.Y)
	}
}

func TestSmoothedFollowApproachesTarget(t *testing.T) {
	cam := New(800, 600, 1)
	target := &stubTarget{rect: geom.NewRect(984, 684, 32, 32)}
	cam.SetTarget(target, 0, 0)

	prevDist := math.Hypot(600-cam.X, 400-cam.Y)
	for i := 0; i < 120; i++ {
		cam.Update(1.0 / 60)
		dist := math.Hypot(600-cam.X, 400-cam.Y)
		if dist > prevDist+1e-9 {
			t.Fatalf("distance to target grew at step %d: %v -> %v", i, prevDist, dist)
		}
		prevDist = dist
	}
	if prevDist > 10 {
		t.Errorf("still %v pixels from target after 2s, want close", prevDist)
	}
}

func TestFollowOffset(t *testing.T) {
	cam := New(800, 600, 1)
	cam.Smoothing = false

	target := &stubTarget{rect: geom.NewRect(984, 684, 32, 32)}
	cam.SetTarget(target, 50, -20)
	cam.Update(1.0 / 60)

	if cam.X != 650 || cam.Y != 380 {
		t.Errorf("offset = (%v, %v), want (650, 380)", cam.X, cam.Y)
	}
}

func TestUpdateWithoutTargetHoldsStill(t *testing.T) {
	cam := New(800, 600, 1)
	cam.X, cam.Y = 33, 44
	cam.Update(1.0 / 60)
	if cam.X != 33 || cam.Y != 44 {
		t.Errorf("offset moved to (%v, %v) with no target", cam.X, cam.Y)
	}
}

func TestDeadzoneSuppressesSmallMoves(t *testing.T) {
	cam := New(800, 600, 1)
	cam.Smoothing = false
	cam.UseDeadzone = true
	cam.DeadzoneWidth = 100
	cam.DeadzoneHeight = 80

	target := &stubTarget{rect: geom.NewRect(384, 284, 32, 32)} // centered
	cam.SetTarget(target, 0, 0)
	cam.Update(1.0 / 60)
	if cam.X != 0 || cam.Y != 0 {
		t.Fatalf("setup: offset = (%v, %v), want (0, 0)", cam.X, cam.Y)
	}

	// Move within half the dead-zone on each axis: camera must hold.
	target.rect.X += 40
	target.rect.Y += 30
	cam.Update(1.0 / 60)
	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("offset = (%v, %v), want deadzone hold at (0, 0)", cam.X, cam.Y)
	}

	// Move past it on X only: X follows, Y still holds.
	target.rect.X += 30 // desired dx = 70 > 50
	cam.Update(1.0 / 60)
	if cam.X != 70 {
		t.Errorf("X = %v, want 70", cam.X)
	}
	if cam.Y != 0 {
		t.Errorf("Y = %v, want deadzone hold at 0", cam.Y)
	}
}

func TestShakeOffsetsWithinMagnitude(t *testing.T) {
	cam := New(800, 600, 7)
	cam.Shake(10, 0.001) // negligible decay so shake persists
	for i := 0; i < 20; i++ {
		cam.Update(1.0 / 60)
		x, y := cam.ShakeOffset()
		if math.Abs(x) > 10 || math.Abs(y) > 10 {
			t.Fatalf("shake offset (%v, %v) outside [-10, 10]", x, y)
		}
	}
}

func TestShakeDecaysToExactZero(t *testing.T) {
	cam := New(800, 600, 7)
	cam.Shake(10, 5)

	// 10 / 5 = 2 seconds of shake; run a little past that.
	for i := 0; i < 130; i++ {
		cam.Update(1.0 / 60)
	}

	if m := cam.ShakeMagnitude(); m != 0 {
		t.Errorf("ShakeMagnitude = %v, want 0", m)
	}
	if x, y := cam.ShakeOffset(); x != 0 || y != 0 {
		t.Errorf("ShakeOffset = (%v, %v), want (0, 0)", x, y)
	}
}

func TestShakeReplacesCurrent(t *testing.T) {
	cam := New(800, 600, 7)
	cam.Shake(10, 5)
	cam.Shake(3, 1)
	if m := cam.ShakeMagnitude(); m != 3 {
		t.Errorf("ShakeMagnitude = %v, want 3 (replaced, not queued)", m)
	}
}

func TestApplyIncludesShakeAndInverseRemovesIt(t *testing.T) {
	cam := New(800, 600, 7)
	cam.X, cam.Y = 100, 100
	cam.Shake(8, 0.001)
	cam.Update(1.0 / 60)

	sx, sy := cam.Apply(500, 500)
	wx, wy := cam.InverseApply(sx, sy)
	// Truncation aside, the inverse must undo the shake as well.
	if math.Abs(wx-500) > 1 || math.Abs(wy-500) > 1 {
		t.Errorf("inverse of apply = (%v, %v), want ~(500, 500)", wx, wy)
	}
}

func TestIsVisibleMargin(t *testing.T) {
	cam := New(800, 600, 1) // viewport at origin

	if !cam.IsVisible(geom.NewRect(-40, -40, 20, 20), 50) {
		t.Error("rect (-40,-40,20,20) should be visible with margin 50")
	}
	if cam.IsVisible(geom.NewRect(-60, -60, 5, 5), 50) {
		t.Error("rect (-60,-60,5,5) should not be visible with margin 50")
	}
	if !cam.IsVisible(geom.NewRect(100, 100, 10, 10), 0) {
		t.Error("rect inside the viewport should be visible with no margin")
	}
	if cam.IsVisible(geom.NewRect(900, 700, 10, 10), 50) {
		t.Error("rect far outside should not be visible")
	}
}
