package simulation

import (
	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/player"
	"github.com/stride-sim/stride/world"
)

// SetAction is the single transition primitive used by all behaviors. The
// group entry routine runs first and may rewrite the requested code, then
// the generic bookkeeping resets the per-action state. The falling-far flag
// survives only when the new action is itself airborne, so one long arc
// produces one far-fall trigger even across airborne transitions.
func (s *Simulator) SetAction(a *player.Actor, action, arg uint32) bool {
	switch game.ActionGroup(action) {
	case game.ActGroupMoving:
		action = s.enterMovingAction(a, action)
	case game.ActGroupAirborne:
		action = s.enterAirborneAction(a, action)
	case game.ActGroupSubmerged:
		s.enterSubmergedAction(a)
	case game.ActGroupCutscene:
		s.enterCutsceneAction(a, action)
	}

	a.Flags.Remove(player.FlagActionSoundPlayed | player.FlagVoiceSoundPlayed)
	if game.ActionGroup(action) != game.ActGroupAirborne {
		a.Flags.Remove(player.FlagFallingFar)
	}

	a.PrevAction = a.Action
	a.Action = action
	a.ActionArg = arg
	a.ActionState = 0
	a.ActionTimer = 0
	return true
}

// DropAndSetAction tears down any held object before transitioning.
func (s *Simulator) DropAndSetAction(a *player.Actor, action, arg uint32) bool {
	if a.HasHeldObject && s.Held != nil {
		s.Held.DropHeldObject(a)
	}
	a.HasHeldObject = false
	return s.SetAction(a, action, arg)
}

func (s *Simulator) enterMovingAction(a *player.Actor, action uint32) uint32 {
	switch action {
	case game.ActWalking:
		// Entering a walk never slows the actor down; it only raises a
		// slow forward velocity up to the intended magnitude, capped at 8.
		mag := a.IntendedMag
		if mag > 8 {
			mag = 8
		}
		if a.Floor == nil || a.Floor.Class() != world.ClassVerySlippery {
			if a.ForwardVel >= 0 && a.ForwardVel < mag {
				a.ForwardVel = mag
			}
		}
	case game.ActJumpLand, game.ActDoubleJumpLand, game.ActFreefallLand:
		a.DoubleJumpTimer = game.DoubleJumpWindow
	}
	return action
}

func (s *Simulator) enterAirborneAction(a *player.Actor, action uint32) uint32 {
	if (a.SquishTimer != 0 || a.QuicksandDepth >= 1) && action == game.ActDoubleJump {
		action = game.ActJump
	}
	switch action {
	case game.ActJump:
		s.setYVelBasedOnFSpeed(a, 42, 0.25)
	case game.ActDoubleJump:
		s.setYVelBasedOnFSpeed(a, 52, 0.25)
		a.ForwardVel *= 0.8
	case game.ActTripleJump:
		s.setYVelBasedOnFSpeed(a, 69, 0)
		a.ForwardVel *= 0.8
	case game.ActWallKickAir:
		s.setYVelBasedOnFSpeed(a, 62, 0)
		if a.ForwardVel < 24 {
			a.ForwardVel = 24
		}
		a.WallKickTimer = 0
	case game.ActLavaBoost:
		a.Velocity[1] = 84
	}
	a.PeakHeight = a.Position.Y()
	return action
}

func (s *Simulator) enterSubmergedAction(a *player.Actor) {
	a.AngleVel = [3]int16{}
}

func (s *Simulator) enterCutsceneAction(a *player.Actor, action uint32) {
	switch action {
	case game.ActStandingDeath, game.ActQuicksandDeath:
		a.SetForwardVel(0)
		a.Velocity[1] = 0
	}
}

// setYVelBasedOnFSpeed converts forward momentum into jump height. Squished
// or sunk actors only get half the launch.
func (s *Simulator) setYVelBasedOnFSpeed(a *player.Actor, initialY, multiplier float32) {
	a.Velocity[1] = initialY + a.ForwardVel*multiplier
	if a.SquishTimer != 0 || a.QuicksandDepth > 1 {
		a.Velocity[1] *= 0.5
	}
}

// SetJumpFromLanding picks the next jump in the landing chain based on the
// landing action the actor is currently in: a jump or freefall landing
// chains into a double jump, a double-jump landing into a triple jump when
// there is enough speed. The chain breaks when the landing window expired or
// the actor is squished.
func (s *Simulator) SetJumpFromLanding(a *player.Actor) bool {
	if a.QuicksandDepth >= game.QuicksandJumpDepth {
		return s.SetAction(a, game.ActJump, 0)
	}
	defer func() { a.DoubleJumpTimer = 0 }()
	if a.DoubleJumpTimer == 0 || a.SquishTimer != 0 {
		return s.SetAction(a, game.ActJump, 0)
	}
	switch a.Action {
	case game.ActJumpLand, game.ActFreefallLand:
		return s.SetAction(a, game.ActDoubleJump, 0)
	case game.ActDoubleJumpLand:
		if a.ForwardVel > 20 {
			return s.SetAction(a, game.ActTripleJump, 0)
		}
		return s.SetAction(a, game.ActJump, 0)
	}
	return s.SetAction(a, game.ActJump, 0)
}

// setWaterPlungeAction is the forced entry into water once the actor sinks
// well below the surface: momentum is damped hard and a splash is emitted.
func (s *Simulator) setWaterPlungeAction(a *player.Actor) bool {
	a.ForwardVel /= 4
	a.Velocity[1] /= 2
	a.FaceAngle[2] = 0
	if !a.Capabilities().Has(game.Flags(game.ActFlagDiving)) {
		a.FaceAngle[0] = 0
	}
	a.ParticleFlags.Add(player.ParticleWaterSplash)
	return s.SetAction(a, game.ActWaterPlunge, 0)
}
