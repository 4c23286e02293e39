package simulation

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/player"
	"github.com/stride-sim/stride/world"
)

func TestRegisteredGroupsKnown(t *testing.T) {
	s := newTestSim(flatWorld())
	actions := s.Actions()
	if len(actions) != 34 {
		t.Fatalf("expected the full shipped catalogue, got %d actions", len(actions))
	}
	for _, code := range actions {
		if !game.KnownGroup(code) {
			t.Fatalf("registered action %#x carries an unknown group", code)
		}
	}
}

func TestDuplicateRegistrationWarns(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s := New(flatWorld())
	s.Log = logger

	s.Register(game.ActIdle, actIdle)
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("re-registering an action must log a warning")
	}
}

func TestUnregisteredActionResetsToIdle(t *testing.T) {
	s := newTestSim(flatWorld())
	a := player.New()
	a.Action = 0x20 | game.ActGroupMoving

	s.Advance(a)
	if a.Action != game.ActIdle {
		t.Fatalf("unregistered action must reset to idle, got %#x", a.Action)
	}
}

func TestTransitionBudgetPanics(t *testing.T) {
	const (
		pingAction = 0x20 | game.ActGroupStationary
		pongAction = 0x21 | game.ActGroupStationary
	)
	s := newTestSim(flatWorld())
	s.Register(pingAction, func(s *Simulator, a *player.Actor) bool {
		return s.SetAction(a, pongAction, 0)
	})
	s.Register(pongAction, func(s *Simulator, a *player.Actor) bool {
		return s.SetAction(a, pingAction, 0)
	})

	a := player.New()
	a.Action = pingAction
	defer func() {
		if recover() == nil {
			t.Fatalf("a behavior ping-pong must trip the transition budget")
		}
	}()
	s.Advance(a)
}

func TestWalkingEntryRaisesSlowSpeed(t *testing.T) {
	s := newTestSim(flatWorld())

	cases := []struct {
		fvel, want float32
	}{
		{3, 8},   // slow speeds are raised to the clamped intent
		{10, 10}, // already faster than the clamp, untouched
		{-5, -5}, // backward momentum untouched
	}
	for _, c := range cases {
		a := player.New()
		a.IntendedMag = 20
		a.ForwardVel = c.fvel
		s.SetAction(a, game.ActWalking, 0)
		if a.ForwardVel != c.want {
			t.Fatalf("walking entry with fvel=%v: got %v, want %v", c.fvel, a.ForwardVel, c.want)
		}
	}
}

func TestJumpChainFromLanding(t *testing.T) {
	s := newTestSim(flatWorld())

	cases := []struct {
		landing uint32
		timer   uint8
		fvel    float32
		want    uint32
	}{
		{game.ActJumpLand, 3, 10, game.ActDoubleJump},
		{game.ActFreefallLand, 3, 10, game.ActDoubleJump},
		{game.ActDoubleJumpLand, 3, 25, game.ActTripleJump},
		{game.ActDoubleJumpLand, 3, 10, game.ActJump},
		{game.ActJumpLand, 0, 10, game.ActJump},
	}
	for _, c := range cases {
		a := player.New()
		a.Action = c.landing
		a.DoubleJumpTimer = c.timer
		a.ForwardVel = c.fvel
		s.SetJumpFromLanding(a)
		if a.Action != c.want {
			t.Fatalf("landing %#x timer=%d fvel=%v: got %#x, want %#x",
				c.landing, c.timer, c.fvel, a.Action, c.want)
		}
		if a.DoubleJumpTimer != 0 {
			t.Fatalf("the chain window must close after every jump")
		}
	}
}

func TestQuicksandDeathTiming(t *testing.T) {
	// Deep moving sand also drifts the actor, so the slab extends far
	// enough in +z for the full sink.
	w := world.NewBoxWorld()
	w.AddFloor(-1000, -1000, 1000, 5000, 0, world.SurfaceDeepMovingQuicksand)
	s := newTestSim(w)

	a := player.New()
	a.Action = game.ActIdle

	for tick := 1; tick <= 319; tick++ {
		s.Advance(a)
		if a.Action != game.ActIdle {
			t.Fatalf("tick %d: sank early into %#x at depth %v", tick, a.Action, a.QuicksandDepth)
		}
	}
	if a.QuicksandDepth != 159.5 {
		t.Fatalf("depth after 319 ticks: got %v, want 159.5", a.QuicksandDepth)
	}
	s.Advance(a)
	if a.Action != game.ActQuicksandDeath {
		t.Fatalf("tick 320 must reach the death depth, action=%#x depth=%v", a.Action, a.QuicksandDepth)
	}
}

func TestHealthCountersBothSetSkipAmbient(t *testing.T) {
	s := newTestSim(flatWorld())

	a := player.New()
	a.Action = game.ActSwimming
	a.Health = 0x500
	a.WaterLevel = 100
	a.Position = mgl32.Vec3{0, 50, 0}

	a.HealCounter, a.HurtCounter = 1, 1
	s.updateHealth(a)
	if a.Health != 0x500 {
		t.Fatalf("both counters active must cancel out with no ambient, health=%#x", a.Health)
	}

	a.HealCounter, a.HurtCounter = 1, 0
	s.updateHealth(a)
	if a.Health != 0x500+game.HealthTickStep+game.WaterHealRate {
		t.Fatalf("heal-only tick must apply counter plus ambient regen, health=%#x", a.Health)
	}
}

func TestSnowTerrainChillsWater(t *testing.T) {
	w := flatWorld()
	w.SetWaterLevel(100)
	w.SetTerrain(world.TerrainSnow)
	s := newTestSim(w)

	a := player.New()
	a.Action = game.ActWaterIdle
	a.Health = 0x500
	a.Position = mgl32.Vec3{0, 50, 0}

	s.Advance(a)
	if !a.TerrainSnow {
		t.Fatalf("the terrain classification must refresh from the geometry source")
	}
	if a.Health != 0x500-3 {
		t.Fatalf("snow water must drain 3 per tick even near the surface, health=%#x", a.Health)
	}
}

func TestSquishScaleEasing(t *testing.T) {
	s := newTestSim(flatWorld())

	a := player.New()
	a.SquishTimer = 0xFF
	s.squishModel(a)
	if a.SquishTimer != 0xFF || a.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Fatalf("a frozen squish must hold the timer, timer=%d scale=%v", a.SquishTimer, a.Scale)
	}

	a.SquishTimer = 20
	s.squishModel(a)
	if a.SquishTimer != 19 || a.Scale != (mgl32.Vec3{1.4, 0.4, 1.4}) {
		t.Fatalf("above the easing window the actor stays flat, timer=%d scale=%v", a.SquishTimer, a.Scale)
	}

	a.SquishTimer = 16
	s.squishModel(a)
	// First easing entry is 0x46: 42% off the height, 28% onto the width.
	if !game.Float32ApproxEq(a.Scale.Y(), 0.58) || !game.Float32ApproxEq(a.Scale.X(), 1.28) {
		t.Fatalf("first easing entry not applied, scale=%v", a.Scale)
	}
	for a.SquishTimer > 0 {
		s.squishModel(a)
	}
	s.squishModel(a)
	if a.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Fatalf("the squish must ease back to identity scale, got %v", a.Scale)
	}
}

func TestWallKickWindow(t *testing.T) {
	s := newTestSim(flatWorld())

	a := player.New()
	a.Action = game.ActAirHitWall
	a.Position = mgl32.Vec3{0, 2000, 0}
	a.Controller = &player.ScriptedController{
		Frames: []player.ControllerState{{}, {}, {}, {APressed: true}},
	}
	for i := 0; i < 4; i++ {
		s.Advance(a)
	}
	if a.Action != game.ActWallKickAir {
		t.Fatalf("jumping inside the kick window must wall kick, got %#x", a.Action)
	}
	if uint16(a.FaceAngle[1]) != 0x8000 {
		t.Fatalf("the kick must flip the facing, yaw=%#x", uint16(a.FaceAngle[1]))
	}

	b := player.New()
	b.Action = game.ActAirHitWall
	b.Position = mgl32.Vec3{0, 2000, 0}
	b.Controller = &player.ScriptedController{
		Frames: []player.ControllerState{{}, {}, {}, {}, {}, {}, {APressed: true}},
	}
	for i := 0; i < 7; i++ {
		s.Advance(b)
	}
	if b.Action != game.ActFreefall {
		t.Fatalf("jumping past the kick window must fall instead, got %#x", b.Action)
	}
}

func TestSwimmingYawRampsThroughAngleVel(t *testing.T) {
	w := flatWorld()
	w.SetWaterLevel(1000)
	s := newTestSim(w)

	a := player.New()
	a.Action = game.ActSwimming
	a.Position = mgl32.Vec3{0, 500, 0}
	a.WaterLevel = 1000
	a.ForwardVel = 10
	a.Input.Add(player.InputNonzeroAnalog)
	a.IntendedYaw = 0x4000

	actSwimming(s, a)
	if a.AngleVel[1] != 0x80 || a.FaceAngle[1] != 0x80 {
		t.Fatalf("first turn tick must ramp the yaw velocity, angleVel=%#x yaw=%#x",
			uint16(a.AngleVel[1]), uint16(a.FaceAngle[1]))
	}
	actSwimming(s, a)
	if a.AngleVel[1] != 0x100 || a.FaceAngle[1] != 0x180 {
		t.Fatalf("second turn tick must keep ramping, angleVel=%#x yaw=%#x",
			uint16(a.AngleVel[1]), uint16(a.FaceAngle[1]))
	}

	a.Input.Clear()
	actSwimming(s, a)
	if a.AngleVel[1] != 0x80 {
		t.Fatalf("a neutral stick must bleed the yaw velocity off, got %#x", uint16(a.AngleVel[1]))
	}
}

func TestWaterPlungeOverridesAirborne(t *testing.T) {
	w := flatWorld()
	w.SetWaterLevel(500)
	s := newTestSim(w)

	a := player.New()
	a.Action = game.ActFreefall
	a.Position = mgl32.Vec3{0, 300, 0}
	a.Velocity = mgl32.Vec3{0, -30, 0}
	a.ForwardVel = 12

	s.Advance(a)
	if a.Action != game.ActWaterPlunge {
		t.Fatalf("deep submersion must force the plunge, got %#x", a.Action)
	}
	if a.ForwardVel != 3 {
		t.Fatalf("the plunge must quarter forward speed, got %v", a.ForwardVel)
	}
	if !a.ParticleFlags.Has(player.ParticleWaterSplash) {
		t.Fatalf("entering water must splash")
	}
}

func TestReplayDeterminism(t *testing.T) {
	w := flatWorld()
	w.AddBox(world.Box{Bounds: cube.Box(200, 0, -100, 600, 120, 100)})
	w.SetWaterLevel(-50)
	s := newTestSim(w)

	frames := make([]player.ControllerState, 0, 200)
	for i := 0; i < 200; i++ {
		st := player.ControllerState{StickY: -64}
		if i%37 == 0 {
			st.APressed = true
		}
		if i%3 != 0 {
			st.ADown = true
		}
		if i > 150 {
			st.StickX = 40
		}
		frames = append(frames, st)
	}

	a, b := player.New(), player.New()
	a.Controller = &player.ScriptedController{Frames: frames}
	b.Controller = &player.ScriptedController{Frames: frames}

	for tick := 0; tick < 200; tick++ {
		s.Advance(a)
		s.Advance(b)
		if ha, hb := a.StateHash(), b.StateHash(); ha != hb {
			t.Fatalf("tick %d: state hashes diverged (%#x vs %#x, actions %#x vs %#x)",
				tick, ha, hb, a.Action, b.Action)
		}
	}
}
