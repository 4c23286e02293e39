package game

const (
	// HitboxHeight is the vertical clearance the actor needs to occupy a
	// position. A floor-to-ceiling gap at or below this blocks movement.
	HitboxHeight = float32(160)

	// LeaveGroundHeight is how far above the floor a ground step may end
	// before the actor is considered to have left the ground.
	LeaveGroundHeight = float32(100)

	// LedgeGrabMinRise is the minimum height of a ledge floor above the
	// wall clip point for a grab to succeed.
	LedgeGrabMinRise = float32(100)
	// LedgeGrabDepth is how far past the wall the ledge floor is probed.
	LedgeGrabDepth = float32(60)

	// HangBand is the tolerance around the hang height within which the
	// actor stays attached to a hangable ceiling.
	HangBand = float32(30)

	DefaultGravity    = float32(4)
	HazardGravity     = float32(3.2)
	MetalWaterGravity = float32(1.6)

	TerminalVelocity           = float32(-75)
	HazardTerminalVelocity     = float32(-65)
	MetalWaterTerminalVelocity = float32(-16)
	FlutterTerminalVelocity    = float32(-37.5)
	FlutterPull                = float32(2)
	FlutterRecover             = float32(4)

	WindReferenceAltitude = float32(-1500)
	WindBandBelow         = float32(-3000)
	WindBandAbove         = float32(2000)
	WindMaxUpdraft        = float32(50)
	WindApproachDivisor   = float32(8)

	WalkTargetCap   = float32(32)
	SlowFloorCap    = float32(24)
	WalkHardCap     = float32(48)
	WalkAccel       = float32(1.1)
	WalkDragDivisor = float32(43)
	AirDragLimit    = float32(32)
	AirControlGain  = float32(1.5)
	SidewaysGain    = float32(10)

	WaterSurfaceOffset = float32(80)
	WaterPlungeDepth   = float32(100)
	WaterShallowBand   = float32(10)
	WaterHealBand      = float32(140)
	GasBreathBand      = float32(100)

	QuicksandDeathDepth = float32(160)
	QuicksandJumpDepth  = float32(11)
	DefaultSinkRate     = float32(0.5)

	FarFallHeight  = float32(1150)
	HardFallHeight = float32(3000)
	FarFallSpeed   = float32(-55)

	// SquishClearance is the floor-to-ceiling gap at or below which the
	// actor counts as squished for input purposes.
	SquishClearance = float32(150)

	WallKickWindowTicks = 5
	DoubleJumpWindow    = 5
	SpawnHoldTicks      = 10
	LandingHoldTicks    = 4

	FullHealth     = int32(0x880)
	CriticalHealth = int32(0x100)
	DeadHealth     = int32(0xFF)
	HealthTickStep = int32(0x40)
	WaterHealRate  = int32(0x1A)
	GasDrainRate   = int32(4)

	// TransitionBudget bounds same-tick action replacement chains. Hitting
	// it means a behavior pair ping-pongs forever, which is a defect.
	TransitionBudget = 128

	// FloorLowerLimit is the height reported when no floor exists.
	FloorLowerLimit = float32(-11000)
	// CeilUpperLimit is the height reported when no ceiling exists.
	CeilUpperLimit = float32(20000)
)
