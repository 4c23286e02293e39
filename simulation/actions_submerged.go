package simulation

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-sim/stride/amath"
	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/player"
)

const (
	swimSpeedCap   = float32(28)
	swimYawVelMax  = int16(0x400)
	swimYawVelRamp = int32(0x80)
)

// updateSwimmingYaw steers the facing through the yaw angular velocity, so
// swim turns ramp in and bleed off instead of snapping. The velocity decays
// back to zero whenever the stick is neutral or the facing is on target.
func updateSwimmingYaw(a *player.Actor) {
	var target int16
	if a.Input.Has(player.InputNonzeroAnalog) {
		if d := amath.Diff(a.IntendedYaw, a.FaceAngle[1]); d > 0 {
			target = swimYawVelMax
		} else if d < 0 {
			target = -swimYawVelMax
		}
	}
	a.AngleVel[1] = amath.Approach(a.AngleVel[1], target, swimYawVelRamp, swimYawVelRamp)

	rate := int32(a.AngleVel[1])
	if rate < 0 {
		rate = -rate
	}
	a.FaceAngle[1] = amath.Approach(a.FaceAngle[1], a.IntendedYaw, rate, rate)
}

// applySwimVelocity projects the forward speed along both pitch and yaw so
// diving and surfacing come out of the same scalar.
func applySwimVelocity(a *player.Actor) {
	pitch, yaw := a.FaceAngle[0], a.FaceAngle[1]
	a.Velocity = mgl32.Vec3{
		a.ForwardVel * amath.Coss(pitch) * amath.Sins(yaw),
		a.ForwardVel * amath.Sins(pitch),
		a.ForwardVel * amath.Coss(pitch) * amath.Coss(yaw),
	}
}

func actWaterIdle(s *Simulator, a *player.Actor) bool {
	if a.Input.Has(player.InputNonzeroAnalog) || a.Input.Has(player.InputAPressed) {
		return s.SetAction(a, game.ActSwimming, 0)
	}
	a.ForwardVel = game.ApproachF32(a.ForwardVel, 0, 1, 1)
	// Idle bodies sink slowly.
	a.Velocity[1] = game.ApproachF32(a.Velocity.Y(), -2, 1, 1)
	a.Velocity[0] = a.ForwardVel * amath.Sins(a.FaceAngle[1])
	a.Velocity[2] = a.ForwardVel * amath.Coss(a.FaceAngle[1])
	s.performWaterStep(a)
	return false
}

func actSwimming(s *Simulator, a *player.Actor) bool {
	if !a.Input.Has(player.InputNonzeroAnalog) && !a.Input.Has(player.InputADown) &&
		a.ForwardVel < 1 {
		return s.SetAction(a, game.ActWaterIdle, 0)
	}

	updateSwimmingYaw(a)
	var targetPitch int16
	if a.Input.Has(player.InputZDown) {
		targetPitch = -0x2000
	} else if a.Input.Has(player.InputADown) {
		targetPitch = 0x2000
	}
	a.FaceAngle[0] = amath.Approach(a.FaceAngle[0], targetPitch, 0x200, 0x200)

	if a.Input.Has(player.InputAPressed) {
		// One stroke per press.
		a.ForwardVel += 7
	}
	a.ForwardVel = game.ApproachF32(a.ForwardVel, 0, 0.25, 0.25)
	a.ForwardVel = game.ClampF32(a.ForwardVel, -swimSpeedCap, swimSpeedCap)

	applySwimVelocity(a)
	if s.performWaterStep(a) == WaterStepCancelled {
		a.ForwardVel = 0
	}
	return false
}

func actWaterPlunge(s *Simulator, a *player.Actor) bool {
	if a.ActionState == 0 {
		a.ParticleFlags.Add(player.ParticleWaterSplash)
		a.ActionState = 1
	}
	outcome := s.performWaterStep(a)
	// Buoyancy bleeds off the plunge momentum.
	a.Velocity[1] += 2
	if outcome == WaterStepHitFloor || a.Velocity.Y() >= -5 {
		if a.Flags.Has(player.FlagMetalCap) {
			return s.SetAction(a, game.ActMetalWaterStanding, 0)
		}
		return s.SetAction(a, game.ActWaterIdle, 0)
	}
	return false
}

func actDrowning(s *Simulator, a *player.Actor) bool {
	a.ForwardVel = game.ApproachF32(a.ForwardVel, 0, 1, 1)
	a.Velocity[1] = game.ApproachF32(a.Velocity.Y(), -2, 1, 1)
	a.Velocity[0] = a.ForwardVel * amath.Sins(a.FaceAngle[1])
	a.Velocity[2] = a.ForwardVel * amath.Coss(a.FaceAngle[1])
	s.performWaterStep(a)

	a.ActionTimer++
	if a.ActionTimer >= 60 {
		a.Health = game.DeadHealth
		a.Flags.Add(player.FlagRespawnQueued)
	}
	return false
}

func actWaterShellSwimming(s *Simulator, a *player.Actor) bool {
	if !a.HasHeldObject {
		return s.SetAction(a, game.ActSwimming, 0)
	}

	updateSwimmingYaw(a)
	a.ForwardVel = game.ApproachF32(a.ForwardVel, swimSpeedCap, 2, 1)
	a.FaceAngle[0] = 0
	a.Velocity = mgl32.Vec3{
		a.ForwardVel * amath.Sins(a.FaceAngle[1]),
		0,
		a.ForwardVel * amath.Coss(a.FaceAngle[1]),
	}
	s.performWaterStep(a)

	// The shell ride is time-limited.
	a.ActionTimer++
	if a.ActionTimer >= 240 {
		return s.DropAndSetAction(a, game.ActSwimming, 0)
	}
	return false
}

func actMetalWaterStanding(s *Simulator, a *player.Actor) bool {
	if !a.Flags.Has(player.FlagMetalCap) {
		return s.SetAction(a, game.ActWaterIdle, 0)
	}
	s.stationaryGroundStep(a)
	return false
}
