package world

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-sim/stride/game"
)

func TestBoxWorldFloorPicksHighest(t *testing.T) {
	w := NewBoxWorld()
	w.AddFloor(-500, -500, 500, 500, 0, SurfaceDefault)
	w.AddBox(Box{Bounds: cube.Box(-100, 0, -100, 100, 50, 100), Floor: SurfaceNotSlippery})

	h, surf := w.FindFloor(mgl32.Vec3{0, 60, 0})
	if surf == nil || h != 50 {
		t.Fatalf("expected platform top at 50, got %v (%v)", h, surf)
	}
	if surf.Type != SurfaceNotSlippery {
		t.Fatalf("wrong floor type %v", surf.Type)
	}

	h, surf = w.FindFloor(mgl32.Vec3{300, 60, 0})
	if surf == nil || h != 0 {
		t.Fatalf("expected base floor at 0, got %v (%v)", h, surf)
	}
}

func TestBoxWorldNoFloor(t *testing.T) {
	w := NewBoxWorld()
	w.AddFloor(-500, -500, 500, 500, 0, SurfaceDefault)

	h, surf := w.FindFloor(mgl32.Vec3{1000, 100, 0})
	if surf != nil || h != game.FloorLowerLimit {
		t.Fatalf("expected missing floor, got %v (%v)", h, surf)
	}
}

func TestBoxWorldCeiling(t *testing.T) {
	w := NewBoxWorld()
	w.AddBox(Box{Bounds: cube.Box(-100, 200, -100, 100, 300, 100), Ceil: SurfaceHangable})

	h, surf := w.FindCeiling(mgl32.Vec3{0, 50, 0}, 80)
	if surf == nil || h != 200 {
		t.Fatalf("expected ceiling at 200, got %v (%v)", h, surf)
	}
	if surf.Type != SurfaceHangable {
		t.Fatalf("wrong ceiling type %v", surf.Type)
	}

	h, surf = w.FindCeiling(mgl32.Vec3{0, 50, 0}, 250)
	if surf != nil || h != game.CeilUpperLimit {
		t.Fatalf("expected no ceiling above 250, got %v (%v)", h, surf)
	}
}

func TestBoxWorldWallPushout(t *testing.T) {
	w := NewBoxWorld()
	w.AddBox(Box{Bounds: cube.Box(100, 0, -100, 300, 200, 100), Wall: SurfaceDefault})

	pos := mgl32.Vec3{80, 50, 0}
	resolved, primary, all := w.FindWallCollisions(pos, 30, 50)
	if primary == nil || len(all) != 1 {
		t.Fatalf("expected one wall hit, got %v / %d", primary, len(all))
	}
	if resolved.X() != 50 {
		t.Fatalf("expected pushout to x=50, got %v", resolved.X())
	}
	if primary.Normal.X() != -1 {
		t.Fatalf("expected -x wall normal, got %v", primary.Normal)
	}

	// A probe above the box slab hits nothing.
	if _, primary, _ := w.FindWallCollisions(mgl32.Vec3{80, 250, 0}, 30, 50); primary != nil {
		t.Fatalf("expected no wall above the box, got %v", primary)
	}
}
