package player

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-sim/stride/amath"
	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/world"
)

// Actor is the full mutable state of one simulated character. It is owned
// exclusively by the driver advancing it: a tick reads and writes it with no
// internal locking, and no two ticks for the same actor may overlap.
type Actor struct {
	// Kinematics.
	Position   mgl32.Vec3
	Velocity   mgl32.Vec3
	ForwardVel float32
	SlideVelX  float32
	SlideVelZ  float32
	// Inertia is residual velocity carried across actions, fed by push
	// surfaces and folded into airborne stepping.
	Inertia mgl32.Vec3

	// FaceAngle and AngleVel are {pitch, yaw, roll} in fixed angle units.
	FaceAngle [3]int16
	AngleVel  [3]int16

	// Action bookkeeping. All five reset together on every transition.
	Action      uint32
	PrevAction  uint32
	ActionArg   uint32
	ActionState uint32
	ActionTimer uint32

	// Flag domains. Capabilities are not stored: they are decoded from the
	// action code via Capabilities().
	Flags         game.Flags
	Input         game.Flags
	ParticleFlags game.Flags

	// Intent derived from the controller each tick.
	IntendedMag float32
	IntendedYaw int16

	// Environment snapshot, refreshed once per tick and read-only after.
	Floor       *world.Surface
	Ceil        *world.Surface
	Wall        *world.Surface
	FloorHeight float32
	CeilHeight  float32
	FloorAngle  int16
	WaterLevel  float32
	GasLevel    float32
	TerrainSnow bool

	// Counters.
	Health             int32
	HealCounter        uint8
	HurtCounter        uint8
	QuicksandDepth     float32
	SquishTimer        uint8
	CapTimer           uint16
	InvincibilityTimer int16
	WallKickTimer      uint8
	DoubleJumpTimer    uint8
	FramesSinceA       uint8
	FramesSinceB       uint8

	PeakHeight float32

	// Presentation-adjacent state. Written here, consumed by the rendering
	// collaborator.
	Scale      mgl32.Vec3
	GfxYOffset float32
	AnimID     int32
	AnimFrame  int32

	// HasHeldObject mirrors whether the interaction collaborator has bound
	// an object to the actor's hands; teardown goes through the simulator's
	// held-object handler.
	HasHeldObject bool

	Controller ControllerSource
}

// New creates an actor in the spawn state with full health and identity
// scale. The aggregate lives for the actor's lifetime; teardown is the
// host's concern.
func New() *Actor {
	return &Actor{
		Action:      game.ActSpawn,
		Health:      game.FullHealth,
		Scale:       mgl32.Vec3{1, 1, 1},
		WaterLevel:  game.FloorLowerLimit,
		GasLevel:    game.FloorLowerLimit,
		FloorHeight: game.FloorLowerLimit,
		CeilHeight:  game.CeilUpperLimit,
	}
}

// Capabilities returns the read-only capability flag view encoded in the
// current action code.
func (a *Actor) Capabilities() game.Flags {
	return game.ActionCapabilities(a.Action)
}

// FaceYaw returns the facing yaw component.
func (a *Actor) FaceYaw() int16 {
	return a.FaceAngle[1]
}

// SetForwardVel sets the forward speed and projects it onto the facing
// direction, the only way horizontal velocity is derived for non-sliding
// actions.
func (a *Actor) SetForwardVel(speed float32) {
	a.ForwardVel = speed
	a.SlideVelX = speed * amath.Sins(a.FaceAngle[1])
	a.SlideVelZ = speed * amath.Coss(a.FaceAngle[1])
	a.Velocity[0] = a.SlideVelX
	a.Velocity[2] = a.SlideVelZ
}
