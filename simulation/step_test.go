package simulation

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/stride-sim/stride/player"
	"github.com/stride-sim/stride/world"
)

func newTestSim(src world.Source) *Simulator {
	s := New(src)
	logger, _ := test.NewNullLogger()
	s.Log = logger
	return s
}

func flatWorld() *world.BoxWorld {
	w := world.NewBoxWorld()
	w.AddFloor(-10000, -10000, 10000, 10000, 0, world.SurfaceDefault)
	return w
}

func TestGroundStepBlockedByLowCeiling(t *testing.T) {
	w := flatWorld()
	w.AddBox(world.Box{Bounds: cube.Box(100, 120, -50, 300, 200, 50)})
	s := newTestSim(w)

	a := player.New()
	a.Position = mgl32.Vec3{0, 0, 0}
	a.FloorHeight = 0

	out := s.groundQuarterStep(a, mgl32.Vec3{150, 0, 0})
	if out != GroundStepHitWall {
		t.Fatalf("expected GroundStepHitWall under a 120-unit gap, got %v", out)
	}
	if a.Position.X() != 0 {
		t.Fatalf("blocked step must not move the actor, at x=%v", a.Position.X())
	}
}

func TestLedgeGrabOntoPlatform(t *testing.T) {
	w := flatWorld()
	w.AddBox(world.Box{Bounds: cube.Box(100, 0, -200, 400, 150, 200)})
	s := newTestSim(w)

	a := player.New()
	a.Position = mgl32.Vec3{60, 30, 0}
	a.Velocity = mgl32.Vec3{24, -4, 0}
	a.FaceAngle[1] = 0x4000
	a.FloorHeight = 0

	out := s.performAirStep(a, AirStepCheckLedgeGrab)
	if out != AirStepGrabbedLedge {
		t.Fatalf("expected AirStepGrabbedLedge, got %v", out)
	}
	want := mgl32.Vec3{110, 150, 0}
	if a.Position != want {
		t.Fatalf("ledge grab placed actor at %v, want %v", a.Position, want)
	}
	if a.FaceAngle[1] != 0x4000 {
		t.Fatalf("ledge grab must face away from the wall, yaw=%#x", uint16(a.FaceAngle[1]))
	}
}

func TestHangStepBand(t *testing.T) {
	w := flatWorld()
	w.AddBox(world.Box{
		Bounds: cube.Box(-500, 300, -500, 500, 400, 500),
		Ceil:   world.SurfaceHangable,
	})
	s := newTestSim(w)

	cases := []struct {
		y    float32
		want HangStepOutcome
	}{
		{140, HangStepNone},
		{109, HangStepHitCeilOrFell},
		{171, HangStepLeftCeil},
	}
	for _, c := range cases {
		a := player.New()
		a.Position = mgl32.Vec3{0, c.y, 0}
		out := s.performHangStep(a, a.Position)
		if out != c.want {
			t.Fatalf("hang step at y=%v: got %v, want %v", c.y, out, c.want)
		}
		if c.want == HangStepNone && a.Position.Y() != 140 {
			t.Fatalf("hang step must snap to the hang height, y=%v", a.Position.Y())
		}
	}
}

func TestVerticalWindLift(t *testing.T) {
	s := newTestSim(flatWorld())

	a := player.New()
	a.Position = mgl32.Vec3{0, -1400, 0}
	a.Floor = &world.Surface{Type: world.SurfaceVerticalWind, Normal: mgl32.Vec3{0, 1, 0}}

	s.applyVerticalWind(a)
	// offsetY=100 above the reference altitude caps lift at 10000/300; one
	// tick adds an eighth of that.
	if got := a.Velocity.Y(); got < 4 || got > 4.3 {
		t.Fatalf("expected one eighth of the capped updraft, got %v", got)
	}
	if !a.ParticleFlags.Has(player.ParticleWind) {
		t.Fatalf("vertical wind must emit the wind particle")
	}
}

func TestStationaryStepDriftsOnMovingSand(t *testing.T) {
	w := world.NewBoxWorld()
	// Force low byte 0 pushes toward +z.
	w.AddBox(world.Box{
		Bounds: cube.Box(-1000, -1000, -1000, 1000, 0, 1000),
		Floor:  world.SurfaceShallowMovingQuicksand,
	})
	s := newTestSim(w)

	a := player.New()
	a.Position = mgl32.Vec3{0, 0, 0}
	a.FloorHeight, a.Floor = s.World.FindFloor(a.Position)

	if out := s.stationaryGroundStep(a); out != GroundStepNone {
		t.Fatalf("drift step failed with %v", out)
	}
	if a.Position.Z() != 8 {
		t.Fatalf("shallow moving sand must carry the actor 8 units, z=%v", a.Position.Z())
	}
	if a.Inertia.Z() != 8 {
		t.Fatalf("floor drift must be recorded as inertia, got %v", a.Inertia)
	}
	if a.Velocity.Y() != 0 {
		t.Fatalf("stationary step must zero vertical velocity")
	}
}
