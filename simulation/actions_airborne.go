package simulation

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-sim/stride/amath"
	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/player"
	"github.com/stride-sim/stride/world"
)

// updateAirControl applies stick steering while airborne. Forward input adds
// speed, sideways input strafes without turning the facing, and drag pulls
// extreme speeds back toward the comfortable range.
func (s *Simulator) updateAirControl(a *player.Actor) {
	a.ForwardVel = game.ApproachF32(a.ForwardVel, 0, 0.35, 0.35)

	var sideways float32
	if a.Input.Has(player.InputNonzeroAnalog) {
		dYaw := amath.Diff(a.IntendedYaw, a.FaceAngle[1])
		a.ForwardVel += a.IntendedMag / 32 * amath.Coss(dYaw) * game.AirControlGain
		sideways = a.IntendedMag / 32 * amath.Sins(dYaw) * game.SidewaysGain
	}
	if a.ForwardVel > game.AirDragLimit {
		a.ForwardVel -= 1
	}
	if a.ForwardVel < -16 {
		a.ForwardVel += 2
	}

	yaw := a.FaceAngle[1]
	side := amath.Wrap(int32(yaw) + amath.QuarterTurn)
	a.SlideVelX = a.ForwardVel*amath.Sins(yaw) + sideways*amath.Sins(side)
	a.SlideVelZ = a.ForwardVel*amath.Coss(yaw) + sideways*amath.Coss(side)
	a.Velocity[0] = a.SlideVelX
	a.Velocity[2] = a.SlideVelZ
}

// bonkReflection reflects the facing off the wall the actor just hit. With no
// wall descriptor the facing simply flips.
func (s *Simulator) bonkReflection(a *player.Actor) {
	if a.Wall == nil {
		a.FaceAngle[1] = amath.Wrap(int32(a.FaceAngle[1]) + amath.HalfTurn)
		return
	}
	wallYaw := a.Wall.Yaw()
	a.FaceAngle[1] = amath.Wrap(int32(wallYaw) - int32(amath.Diff(a.FaceAngle[1], wallYaw)))
}

// commonAirActionStep steers, steps, and resolves the outcome the same way
// for every plain airborne action. It returns true when the outcome replaced
// the action.
func (s *Simulator) commonAirActionStep(a *player.Actor, landAction uint32, stepArg AirStepFlags) bool {
	s.updateAirControl(a)
	switch s.performAirStep(a, stepArg) {
	case AirStepLanded:
		s.checkFallDamage(a)
		return s.SetAction(a, landAction, 0)
	case AirStepHitWall:
		if a.ForwardVel > 16 {
			s.bonkReflection(a)
			a.FaceAngle[1] = amath.Wrap(int32(a.FaceAngle[1]) + amath.HalfTurn)
			if a.Wall != nil {
				return s.SetAction(a, game.ActAirHitWall, 0)
			}
			if a.Velocity.Y() > 0 {
				a.Velocity[1] = 0
			}
			if a.ForwardVel >= 38 {
				return s.SetAction(a, game.ActBackwardAirKB, 0)
			}
			if a.ForwardVel > 8 {
				a.SetForwardVel(-8)
			}
			return s.SetAction(a, game.ActFreefall, 0)
		}
		a.SetForwardVel(0)
	case AirStepGrabbedLedge:
		a.Velocity[1] = 0
		return s.SetAction(a, game.ActLedgeGrab, 0)
	case AirStepGrabbedCeiling:
		a.Velocity = mgl32.Vec3{}
		a.ForwardVel = 0
		return s.SetAction(a, game.ActStartHanging, 0)
	case AirStepHitLavaWall:
		return s.lavaBoostOnWall(a)
	}
	a.ActionTimer++
	return false
}

// checkFallDamage converts a long fall into hurt ticks on landing. A cap on
// the head softens the hit; lava floors skip it because the boost handles
// its own damage.
func (s *Simulator) checkFallDamage(a *player.Actor) {
	if a.Velocity.Y() >= game.FarFallSpeed {
		return
	}
	if a.Floor != nil && a.Floor.Type == world.SurfaceBurning {
		return
	}
	fall := a.PeakHeight - a.Position.Y()
	var hurt uint8
	switch {
	case fall > game.HardFallHeight:
		hurt = 24
	case fall > game.FarFallHeight:
		hurt = 12
	default:
		return
	}
	if a.Flags.Has(player.FlagCapOnHead) {
		hurt = hurt * 2 / 3
	}
	a.HurtCounter += hurt
	a.SquishTimer = 30
}

func (s *Simulator) lavaBoostOnWall(a *player.Actor) bool {
	if a.Wall != nil {
		a.FaceAngle[1] = a.Wall.Yaw()
	}
	if a.ForwardVel < 24 {
		a.ForwardVel = 24
	}
	s.hurtLava(a)
	return s.SetAction(a, game.ActLavaBoost, 0)
}

// checkWallKick fires when A is pressed inside the wall-kick window after
// bouncing off a wall.
func (s *Simulator) checkWallKick(a *player.Actor) bool {
	if a.Input.Has(player.InputAPressed) && a.WallKickTimer != 0 && a.PrevAction == game.ActAirHitWall {
		a.FaceAngle[1] = amath.Wrap(int32(a.FaceAngle[1]) + amath.HalfTurn)
		return s.SetAction(a, game.ActWallKickAir, 0)
	}
	return false
}

func actJump(s *Simulator, a *player.Actor) bool {
	return s.commonAirActionStep(a, game.ActJumpLand, AirStepCheckLedgeGrab|AirStepCheckHang)
}

func actDoubleJump(s *Simulator, a *player.Actor) bool {
	return s.commonAirActionStep(a, game.ActDoubleJumpLand, AirStepCheckLedgeGrab|AirStepCheckHang)
}

func actTripleJump(s *Simulator, a *player.Actor) bool {
	return s.commonAirActionStep(a, game.ActFreefallLand, 0)
}

func actFreefall(s *Simulator, a *player.Actor) bool {
	return s.commonAirActionStep(a, game.ActFreefallLand, AirStepCheckLedgeGrab)
}

func actWallKickAir(s *Simulator, a *player.Actor) bool {
	return s.commonAirActionStep(a, game.ActJumpLand, AirStepCheckLedgeGrab)
}

func actBackwardAirKB(s *Simulator, a *player.Actor) bool {
	if s.checkWallKick(a) {
		return true
	}
	return s.commonAirActionStep(a, game.ActFreefallLand, 0)
}

func actAirHitWall(s *Simulator, a *player.Actor) bool {
	a.ActionTimer++
	if a.ActionTimer <= game.WallKickWindowTicks {
		if a.Input.Has(player.InputAPressed) {
			a.FaceAngle[1] = amath.Wrap(int32(a.FaceAngle[1]) + amath.HalfTurn)
			return s.SetAction(a, game.ActWallKickAir, 0)
		}
	} else {
		a.WallKickTimer = game.WallKickWindowTicks
		if a.Velocity.Y() > 0 {
			a.Velocity[1] = 0
		}
		if a.ForwardVel >= 38 {
			return s.SetAction(a, game.ActBackwardAirKB, 0)
		}
		if a.ForwardVel > 8 {
			a.SetForwardVel(-8)
		}
		return s.SetAction(a, game.ActFreefall, 0)
	}
	// The actor hovers against the wall during the kick window; no step is
	// taken while the decision is pending.
	return false
}

func actLavaBoost(s *Simulator, a *player.Actor) bool {
	s.updateAirControl(a)
	switch s.performAirStep(a, 0) {
	case AirStepLanded:
		if a.Floor != nil && a.Floor.Type == world.SurfaceBurning {
			// Still over lava: take the hit again and bounce.
			s.hurtLava(a)
			a.Velocity[1] = 84
			return false
		}
		a.Velocity[1] = 0
		return s.SetAction(a, game.ActFreefallLand, 0)
	case AirStepHitLavaWall:
		return s.lavaBoostOnWall(a)
	}
	return false
}

func actVerticalWind(s *Simulator, a *player.Actor) bool {
	if a.Floor == nil || a.Floor.Type != world.SurfaceVerticalWind {
		return s.SetAction(a, game.ActFreefall, 0)
	}
	s.updateAirControl(a)
	if s.performAirStep(a, 0) == AirStepLanded {
		return s.SetAction(a, game.ActFreefallLand, 0)
	}
	return false
}

func actStartHanging(s *Simulator, a *player.Actor) bool {
	if !a.Input.Has(player.InputADown) || a.Ceil == nil || a.Ceil.Type != world.SurfaceHangable {
		return s.SetAction(a, game.ActFreefall, 0)
	}
	a.Velocity = mgl32.Vec3{}
	a.ForwardVel = 0
	a.Position[1] = a.CeilHeight - game.HitboxHeight
	a.ActionTimer++
	if a.ActionTimer >= 5 {
		return s.SetAction(a, game.ActHanging, 0)
	}
	return false
}

const hangMaxSpeed = float32(4)

func actHanging(s *Simulator, a *player.Actor) bool {
	if !a.Input.Has(player.InputADown) || a.Input.Has(player.InputZPressed) {
		return s.SetAction(a, game.ActFreefall, 0)
	}

	if a.Input.Has(player.InputNonzeroAnalog) {
		a.ForwardVel += 1
		if a.ForwardVel > hangMaxSpeed {
			a.ForwardVel = hangMaxSpeed
		}
		a.FaceAngle[1] = amath.Approach(a.FaceAngle[1], a.IntendedYaw, 0x800, 0x800)
	} else {
		a.ForwardVel = game.ApproachF32(a.ForwardVel, 0, 1, 1)
	}
	a.Velocity = mgl32.Vec3{
		a.ForwardVel * amath.Sins(a.FaceAngle[1]),
		0,
		a.ForwardVel * amath.Coss(a.FaceAngle[1]),
	}

	if s.performHangStep(a, a.Position.Add(a.Velocity)) != HangStepNone {
		return s.SetAction(a, game.ActFreefall, 0)
	}
	return false
}
