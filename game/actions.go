package game

// Action codes pack three regions into a uint32: a per-group index in the low
// 6 bits, the behavioral group in bits 6-8, and capability bits from bit 9
// up. Group and capability extraction must always go through the masks below.
const (
	ActIndexMask      uint32 = 0x0000003F
	ActGroupMask      uint32 = 0x000001C0
	ActCapabilityMask uint32 = 0xFFFFFE00
)

// Behavioral groups. Every registered action code carries exactly one.
const (
	ActGroupStationary uint32 = 0 << 6
	ActGroupMoving     uint32 = 1 << 6
	ActGroupAirborne   uint32 = 2 << 6
	ActGroupSubmerged  uint32 = 3 << 6
	ActGroupCutscene   uint32 = 4 << 6
	ActGroupObject     uint32 = 5 << 6
)

// Capability bits encoded in the action code. These are exposed to callers
// only as a read-only Flags view; behaviors branch on them instead of on
// per-action switches wherever the policy is shared.
const (
	ActFlagStationary        uint32 = 1 << 9
	ActFlagMoving            uint32 = 1 << 10
	ActFlagAir               uint32 = 1 << 11
	ActFlagIntangible        uint32 = 1 << 12
	ActFlagSwimming          uint32 = 1 << 13
	ActFlagMetalWater        uint32 = 1 << 14
	ActFlagRidingShell       uint32 = 1 << 15
	ActFlagInvulnerable      uint32 = 1 << 16
	ActFlagButtSlide         uint32 = 1 << 17
	ActFlagDiving            uint32 = 1 << 18
	ActFlagHanging           uint32 = 1 << 19
	ActFlagIdle              uint32 = 1 << 20
	ActFlagAttacking         uint32 = 1 << 21
	ActFlagAllowVerticalWind uint32 = 1 << 22
	ActFlagControlJumpHeight uint32 = 1 << 23
	ActFlagHazard            uint32 = 1 << 24
)

// The shipped action catalogue. Codes are stable; hosts may register extra
// behaviors but must keep the group/capability regions coherent.
const (
	// Stationary.
	ActIdle      = 0x01 | ActGroupStationary | ActFlagStationary | ActFlagIdle
	ActCrouching = 0x02 | ActGroupStationary | ActFlagStationary
	ActLedgeGrab = 0x03 | ActGroupStationary | ActFlagStationary | ActFlagHanging
	ActSquished  = 0x04 | ActGroupStationary | ActFlagStationary | ActFlagInvulnerable

	// Moving.
	ActWalking        = 0x01 | ActGroupMoving | ActFlagMoving
	ActDecelerating   = 0x02 | ActGroupMoving | ActFlagMoving
	ActTurningAround  = 0x03 | ActGroupMoving | ActFlagMoving
	ActButtSlide      = 0x04 | ActGroupMoving | ActFlagMoving | ActFlagButtSlide
	ActJumpLand       = 0x05 | ActGroupMoving | ActFlagMoving
	ActDoubleJumpLand = 0x06 | ActGroupMoving | ActFlagMoving
	ActFreefallLand   = 0x07 | ActGroupMoving | ActFlagMoving

	// Airborne.
	ActJump          = 0x01 | ActGroupAirborne | ActFlagAir | ActFlagControlJumpHeight | ActFlagAllowVerticalWind
	ActDoubleJump    = 0x02 | ActGroupAirborne | ActFlagAir | ActFlagControlJumpHeight | ActFlagAllowVerticalWind
	ActTripleJump    = 0x03 | ActGroupAirborne | ActFlagAir
	ActFreefall      = 0x04 | ActGroupAirborne | ActFlagAir | ActFlagAllowVerticalWind
	ActWallKickAir   = 0x05 | ActGroupAirborne | ActFlagAir
	ActBackwardAirKB = 0x06 | ActGroupAirborne | ActFlagAir | ActFlagInvulnerable
	ActAirHitWall    = 0x07 | ActGroupAirborne | ActFlagAir
	ActLavaBoost     = 0x08 | ActGroupAirborne | ActFlagAir | ActFlagInvulnerable | ActFlagHazard
	ActVerticalWind  = 0x09 | ActGroupAirborne | ActFlagAir | ActFlagDiving
	ActStartHanging  = 0x0A | ActGroupAirborne | ActFlagAir | ActFlagHanging
	ActHanging       = 0x0B | ActGroupAirborne | ActFlagAir | ActFlagHanging

	// Submerged.
	ActWaterIdle          = 0x01 | ActGroupSubmerged | ActFlagSwimming
	ActSwimming           = 0x02 | ActGroupSubmerged | ActFlagSwimming
	ActWaterPlunge        = 0x03 | ActGroupSubmerged | ActFlagSwimming | ActFlagDiving
	ActDrowning           = 0x04 | ActGroupSubmerged | ActFlagSwimming | ActFlagIntangible
	ActWaterShellSwimming = 0x05 | ActGroupSubmerged | ActFlagSwimming | ActFlagRidingShell
	ActMetalWaterStanding = 0x06 | ActGroupSubmerged | ActFlagMetalWater | ActFlagInvulnerable

	// Cutscene.
	ActSpawn          = 0x01 | ActGroupCutscene | ActFlagIntangible
	ActStandingDeath  = 0x02 | ActGroupCutscene | ActFlagIntangible | ActFlagInvulnerable
	ActQuicksandDeath = 0x03 | ActGroupCutscene | ActFlagIntangible | ActFlagInvulnerable

	// Object interaction.
	ActPunching  = 0x01 | ActGroupObject | ActFlagStationary | ActFlagAttacking
	ActPickingUp = 0x02 | ActGroupObject | ActFlagStationary
	ActThrowing  = 0x03 | ActGroupObject | ActFlagStationary | ActFlagAttacking
)

// ActionGroup extracts the behavioral group of an action code.
func ActionGroup(action uint32) uint32 {
	return action & ActGroupMask
}

// ActionCapabilities returns the read-only capability view of an action code.
func ActionCapabilities(action uint32) Flags {
	return Flags(action & ActCapabilityMask)
}

// KnownGroup reports whether the group region of the code is one of the six
// defined groups. Dispatching an action outside these is a logic error.
func KnownGroup(action uint32) bool {
	return action&ActGroupMask <= ActGroupObject
}
