package simulation

import (
	"github.com/stride-sim/stride/amath"
	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/player"
	"github.com/stride-sim/stride/world"
)

// analogHeldBack reports whether the stick points more than 100 degrees away
// from the facing direction.
func analogHeldBack(a *player.Actor) bool {
	return a.Input.Has(player.InputNonzeroAnalog) &&
		amath.AbsDiff(a.IntendedYaw, a.FaceAngle[1]) > 0x471C
}

// updateWalkingSpeed accelerates toward the intended magnitude with a drag
// term that makes the cap asymptotic, then turns the facing toward the stick
// and projects the result onto the floor.
func (s *Simulator) updateWalkingSpeed(a *player.Actor) {
	w := s.Tuning.Walk
	maxTarget := w.TargetCap
	if a.Floor != nil && a.Floor.Type == world.SurfaceSlow {
		maxTarget = w.SlowFloorCap
	}
	target := a.IntendedMag
	if target > maxTarget {
		target = maxTarget
	}
	if a.QuicksandDepth > 10 {
		target *= 6.25 / a.QuicksandDepth
	}

	switch {
	case a.ForwardVel <= 0:
		a.ForwardVel += w.Accel
	case a.ForwardVel <= target:
		a.ForwardVel += w.Accel - a.ForwardVel/game.WalkDragDivisor
	case a.Floor != nil && a.Floor.Normal.Y() >= 0.95:
		a.ForwardVel -= 1
	}
	if a.ForwardVel > w.HardCap {
		a.ForwardVel = w.HardCap
	}

	a.FaceAngle[1] = amath.Approach(a.FaceAngle[1], a.IntendedYaw, 0x800, 0x800)
	s.applyGroundVelocity(a)
}

func actWalking(s *Simulator, a *player.Actor) bool {
	if a.Input.Has(player.InputOffFloor) {
		return s.SetAction(a, game.ActFreefall, 0)
	}
	if a.Input.Has(player.InputAPressed) {
		return s.SetAction(a, game.ActJump, 0)
	}
	if a.Input.Has(player.InputBPressed) {
		if a.HasHeldObject {
			return s.SetAction(a, game.ActThrowing, 0)
		}
		return s.SetAction(a, game.ActPunching, 0)
	}
	if a.Input.Has(player.InputZPressed) {
		if a.ForwardVel > 10 {
			return s.SetAction(a, game.ActButtSlide, 0)
		}
		return s.SetAction(a, game.ActCrouching, 0)
	}
	if !a.Input.Has(player.InputNonzeroAnalog) {
		return s.SetAction(a, game.ActDecelerating, 0)
	}
	if analogHeldBack(a) && a.ForwardVel >= 16 {
		return s.SetAction(a, game.ActTurningAround, 0)
	}

	s.updateWalkingSpeed(a)
	switch s.performGroundStep(a) {
	case GroundStepLeftGround:
		return s.SetAction(a, game.ActFreefall, 0)
	case GroundStepHitWall:
		if a.ForwardVel > 16 {
			a.ParticleFlags.Add(player.ParticleDust)
		}
	}
	a.ActionTimer++
	return false
}

func actDecelerating(s *Simulator, a *player.Actor) bool {
	if a.Input.Has(player.InputOffFloor) {
		return s.SetAction(a, game.ActFreefall, 0)
	}
	if a.Input.Has(player.InputAPressed) {
		return s.SetAction(a, game.ActJump, 0)
	}
	if a.Input.Has(player.InputNonzeroAnalog) {
		return s.SetAction(a, game.ActWalking, 0)
	}
	if a.Input.Has(player.InputZPressed) {
		return s.SetAction(a, game.ActCrouching, 0)
	}

	a.ForwardVel = game.ApproachF32(a.ForwardVel, 0, 1, 1)
	if a.ForwardVel == 0 {
		return s.SetAction(a, game.ActIdle, 0)
	}
	s.applyGroundVelocity(a)
	if s.performGroundStep(a) == GroundStepLeftGround {
		return s.SetAction(a, game.ActFreefall, 0)
	}
	return false
}

func actTurningAround(s *Simulator, a *player.Actor) bool {
	if a.Input.Has(player.InputOffFloor) {
		return s.SetAction(a, game.ActFreefall, 0)
	}
	if a.Input.Has(player.InputAPressed) {
		return s.SetAction(a, game.ActJump, 0)
	}
	if !analogHeldBack(a) {
		return s.SetAction(a, game.ActWalking, 0)
	}

	a.ForwardVel -= 2
	if a.ForwardVel <= 0 {
		// Momentum is spent: snap the facing around and walk out the other
		// way with a small starting speed.
		a.FaceAngle[1] = amath.Wrap(int32(a.FaceAngle[1]) + amath.HalfTurn)
		a.SetForwardVel(8)
		return s.SetAction(a, game.ActWalking, 0)
	}
	s.applyGroundVelocity(a)
	if s.performGroundStep(a) == GroundStepLeftGround {
		return s.SetAction(a, game.ActFreefall, 0)
	}
	a.ParticleFlags.Add(player.ParticleDust)
	return false
}

func slideFriction(floor *world.Surface) float32 {
	if floor == nil {
		return 1
	}
	switch floor.Class() {
	case world.ClassVerySlippery:
		return 0.2
	case world.ClassSlippery:
		return 0.5
	case world.ClassNotSlippery:
		return 2
	default:
		return 1
	}
}

func actButtSlide(s *Simulator, a *player.Actor) bool {
	if a.Input.Has(player.InputOffFloor) {
		return s.SetAction(a, game.ActFreefall, 0)
	}
	if a.Input.Has(player.InputAPressed) {
		return s.SetAction(a, game.ActJump, 0)
	}

	a.ForwardVel = game.ApproachF32(a.ForwardVel, 0, slideFriction(a.Floor), slideFriction(a.Floor))
	if a.ForwardVel == 0 {
		return s.SetAction(a, game.ActIdle, 0)
	}
	s.applyGroundVelocity(a)
	switch s.performGroundStep(a) {
	case GroundStepLeftGround:
		return s.SetAction(a, game.ActFreefall, 0)
	case GroundStepHitWall:
		a.ForwardVel = 0
	}
	a.ParticleFlags.Add(player.ParticleDust)
	return false
}

// commonLandingCancels covers the transitions every landing action shares:
// losing the floor, re-jumping inside the chain window, and expiring into a
// walk or idle.
func (s *Simulator) commonLandingCancels(a *player.Actor) bool {
	if a.Input.Has(player.InputOffFloor) {
		return s.SetAction(a, game.ActFreefall, 0)
	}
	if a.Input.Has(player.InputAPressed) {
		return s.SetJumpFromLanding(a)
	}
	if a.ActionTimer >= game.LandingHoldTicks {
		if a.Input.Has(player.InputNonzeroAnalog) {
			return s.SetAction(a, game.ActWalking, 0)
		}
		return s.SetAction(a, game.ActIdle, 0)
	}
	return false
}

func (s *Simulator) commonLandingStep(a *player.Actor, airAction uint32) bool {
	if a.Input.Has(player.InputNonzeroAnalog) {
		a.ForwardVel *= 0.98
	} else if a.ForwardVel >= 16 {
		a.ForwardVel -= 2
	} else {
		a.ForwardVel = game.ApproachF32(a.ForwardVel, 0, 2, 2)
	}
	s.applyGroundVelocity(a)
	if s.performGroundStep(a) == GroundStepLeftGround {
		return s.SetAction(a, airAction, 0)
	}
	if a.ForwardVel > 16 {
		a.ParticleFlags.Add(player.ParticleDust)
	}
	a.ActionTimer++
	return false
}

func actJumpLand(s *Simulator, a *player.Actor) bool {
	if s.commonLandingCancels(a) {
		return true
	}
	return s.commonLandingStep(a, game.ActFreefall)
}

func actDoubleJumpLand(s *Simulator, a *player.Actor) bool {
	if s.commonLandingCancels(a) {
		return true
	}
	return s.commonLandingStep(a, game.ActFreefall)
}

func actFreefallLand(s *Simulator, a *player.Actor) bool {
	if s.commonLandingCancels(a) {
		return true
	}
	return s.commonLandingStep(a, game.ActFreefall)
}
