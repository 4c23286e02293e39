package simulation

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-sim/stride/assert"
	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/player"
	"github.com/stride-sim/stride/world"
)

// Advance runs one full simulation tick for one actor and returns the
// particle flags it emitted. This is the only supported mutation path into
// the dispatch loop.
func (s *Simulator) Advance(a *player.Actor) game.Flags {
	assert.IsTrue(s.World != nil, "simulator has no geometry source")

	s.updateInputs(a)
	if a.Floor == nil {
		// Nothing sensible can step without a floor reference; the
		// respawn flag is already queued.
		return a.ParticleFlags
	}

	s.handleSpecialFloors(a)
	s.dispatch(a)

	s.sinkInQuicksand(a)
	s.squishModel(a)
	if game.ActionGroup(a.Action) == game.ActGroupSubmerged &&
		a.Position.Y() < a.WaterLevel-game.HitboxHeight {
		a.ParticleFlags.Add(player.ParticleBubble)
	}
	s.updateHealth(a)
	s.updateTimers(a)

	if s.Options.Debugf != nil {
		s.Options.Debugf("tick: action=%#x pos=%v vel=%v fvel=%v", a.Action, a.Position, a.Velocity, a.ForwardVel)
	}
	return a.ParticleFlags
}

// handleSpecialFloors applies floor hazards that pre-empt the action itself:
// death barriers under bottomless floors and lava contact while grounded.
func (s *Simulator) handleSpecialFloors(a *player.Actor) {
	if game.ActionGroup(a.Action) == game.ActGroupCutscene || a.Floor == nil {
		return
	}

	if a.Floor.Type == world.SurfaceDeathPlane && a.Position.Y() < a.FloorHeight+2048 {
		a.Flags.Add(player.FlagRespawnQueued)
	}

	caps := a.Capabilities()
	if !caps.HasAny(game.Flags(game.ActFlagAir | game.ActFlagSwimming | game.ActFlagMetalWater)) {
		if a.Floor.Type == world.SurfaceBurning && !a.Flags.Has(player.FlagMetalCap) {
			s.hurtLava(a)
			s.SetAction(a, game.ActLavaBoost, 0)
		}
	}
}

// dispatch runs the action loop until an action signals no further
// cancellation. Each replacement re-enters the loop the same tick, bounded
// by the transition budget.
func (s *Simulator) dispatch(a *player.Actor) {
	for loops := 0; ; loops++ {
		assert.IsTrue(loops < game.TransitionBudget,
			"action %#x did not settle within the transition budget", a.Action)

		// Deep submersion pre-empts every non-submerged group check.
		if game.ActionGroup(a.Action) != game.ActGroupSubmerged && s.checkWaterPlunge(a) {
			continue
		}

		var again bool
		switch game.ActionGroup(a.Action) {
		case game.ActGroupStationary:
			again = s.executeStationary(a)
		case game.ActGroupMoving:
			again = s.executeMoving(a)
		case game.ActGroupAirborne:
			again = s.executeAirborne(a)
		case game.ActGroupSubmerged:
			again = s.executeSubmerged(a)
		case game.ActGroupCutscene:
			again = s.executeCutscene(a)
		case game.ActGroupObject:
			again = s.executeObject(a)
		default:
			s.Log.Warnf("action %#x carries an unknown group, resetting to idle", a.Action)
			s.forceIdle(a)
			return
		}
		if !again {
			return
		}
	}
}

func (s *Simulator) executeStationary(a *player.Actor) bool {
	if s.checkCommonGroundedCancels(a) {
		return true
	}
	if s.updateQuicksand(a, s.Tuning.Quicksand.SinkRate) {
		return true
	}
	again := s.run(a)
	if !again && a.Input.Has(player.InputInWater) {
		a.ParticleFlags.Add(player.ParticleIdleWaterWave)
	}
	return again
}

func (s *Simulator) executeMoving(a *player.Actor) bool {
	if s.checkCommonGroundedCancels(a) {
		return true
	}
	if s.updateQuicksand(a, s.Tuning.Quicksand.SinkRate) {
		return true
	}
	again := s.run(a)
	if !again && a.Input.Has(player.InputInWater) {
		a.ParticleFlags.Add(player.ParticleWaveTrail)
	}
	return again
}

func (s *Simulator) executeObject(a *player.Actor) bool {
	if s.checkCommonGroundedCancels(a) {
		return true
	}
	if s.updateQuicksand(a, s.Tuning.Quicksand.SinkRate) {
		return true
	}
	return s.run(a)
}

func (s *Simulator) executeAirborne(a *player.Actor) bool {
	s.markFarFall(a)
	if a.Input.Has(player.InputSquished) && a.Action != game.ActSquished {
		return s.DropAndSetAction(a, game.ActSquished, 0)
	}
	if a.Floor != nil && a.Floor.Type == world.SurfaceVerticalWind &&
		a.Capabilities().Has(game.Flags(game.ActFlagAllowVerticalWind)) {
		return s.DropAndSetAction(a, game.ActVerticalWind, 0)
	}
	a.QuicksandDepth = 0
	return s.run(a)
}

func (s *Simulator) executeSubmerged(a *player.Actor) bool {
	a.QuicksandDepth = 0
	if s.checkCommonSubmergedCancels(a) {
		return true
	}
	return s.run(a)
}

func (s *Simulator) executeCutscene(a *player.Actor) bool {
	if a.Floor != nil && a.Floor.Type == world.SurfaceInstantQuicksand &&
		a.Action != game.ActQuicksandDeath {
		return s.DropAndSetAction(a, game.ActQuicksandDeath, 0)
	}
	return s.run(a)
}

// checkWaterPlunge forces non-submerged actors under water once they sink
// well below the surface. Critical health turns the plunge into drowning.
func (s *Simulator) checkWaterPlunge(a *player.Actor) bool {
	if a.Position.Y() >= a.WaterLevel-game.WaterPlungeDepth {
		return false
	}
	if a.Health < game.CriticalHealth &&
		!a.Capabilities().Has(game.Flags(game.ActFlagInvulnerable)) {
		return s.SetAction(a, game.ActDrowning, 0)
	}
	return s.setWaterPlungeAction(a)
}

// checkCommonGroundedCancels is shared by the stationary, moving and object
// groups: squish and critical-health death overrides, in that order.
func (s *Simulator) checkCommonGroundedCancels(a *player.Actor) bool {
	if a.Input.Has(player.InputSquished) && a.Action != game.ActSquished {
		return s.DropAndSetAction(a, game.ActSquished, 0)
	}
	if a.Health < game.CriticalHealth &&
		!a.Capabilities().Has(game.Flags(game.ActFlagInvulnerable)) {
		return s.DropAndSetAction(a, game.ActStandingDeath, 0)
	}
	return false
}

func (s *Simulator) checkCommonSubmergedCancels(a *player.Actor) bool {
	surf := a.WaterLevel - game.WaterSurfaceOffset
	if a.Position.Y() > surf {
		if surf > a.FloorHeight {
			// Still over deep water; pin to the swimming height.
			a.Position[1] = surf
		} else {
			// The floor reaches the surface: walk out. A shell cannot
			// come along on land.
			if a.Action == game.ActWaterShellSwimming {
				if s.Held != nil {
					s.Held.DropHeldObject(a)
				}
				a.HasHeldObject = false
			}
			a.AngleVel = [3]int16{}
			a.FaceAngle[0] = 0
			return s.SetAction(a, game.ActWalking, 0)
		}
	}
	if a.Health < game.CriticalHealth &&
		!a.Capabilities().HasAny(game.Flags(game.ActFlagIntangible|game.ActFlagInvulnerable)) {
		return s.SetAction(a, game.ActDrowning, 0)
	}
	return false
}

// markFarFall latches the far-fall flag once per airborne arc; the audio
// collaborator consumes it.
func (s *Simulator) markFarFall(a *player.Actor) {
	if a.Flags.Has(player.FlagFallingFar) {
		return
	}
	if a.Floor != nil && a.Floor.Type == world.SurfaceBurning {
		return
	}
	if a.PeakHeight-a.Position.Y() > game.FarFallHeight && a.Velocity.Y() < game.FarFallSpeed {
		a.Flags.Add(player.FlagFallingFar)
	}
}

// updateQuicksand accumulates sinking depth while the actor stands on a
// quicksand subtype, each with its own saturation ceiling. Deep and instant
// subtypes transition straight into the quicksand death.
func (s *Simulator) updateQuicksand(a *player.Actor, sinkRate float32) bool {
	if a.Capabilities().Has(game.Flags(game.ActFlagRidingShell)) || a.Floor == nil {
		a.QuicksandDepth = 0
		return false
	}
	switch a.Floor.Type {
	case world.SurfaceShallowQuicksand:
		if a.QuicksandDepth += sinkRate; a.QuicksandDepth > 10 {
			a.QuicksandDepth = 10
		}
	case world.SurfaceShallowMovingQuicksand:
		if a.QuicksandDepth += sinkRate; a.QuicksandDepth > 25 {
			a.QuicksandDepth = 25
		}
	case world.SurfaceQuicksand, world.SurfaceMovingQuicksand:
		if a.QuicksandDepth += sinkRate; a.QuicksandDepth > 60 {
			a.QuicksandDepth = 60
		}
	case world.SurfaceDeepQuicksand, world.SurfaceDeepMovingQuicksand:
		a.QuicksandDepth += sinkRate
		if a.QuicksandDepth >= s.Tuning.Quicksand.DeathDepth {
			return s.DropAndSetAction(a, game.ActQuicksandDeath, 0)
		}
	case world.SurfaceInstantQuicksand:
		return s.DropAndSetAction(a, game.ActQuicksandDeath, 0)
	default:
		a.QuicksandDepth = 0
	}
	return false
}

func (s *Simulator) sinkInQuicksand(a *player.Actor) {
	a.GfxYOffset = -a.QuicksandDepth
}

// squishScaleOverTime eases the model back toward identity scale over the
// last 16 ticks of a squish.
var squishScaleOverTime = [16]uint8{
	0x46, 0x32, 0x32, 0x3C, 0x46, 0x50, 0x50, 0x3C,
	0x28, 0x14, 0x14, 0x1E, 0x32, 0x3C, 0x3C, 0x28,
}

// squishModel drives the render scale from the squish timer. 0xFF freezes
// the actor flat until something else rewrites the timer.
func (s *Simulator) squishModel(a *player.Actor) {
	switch {
	case a.SquishTimer == 0xFF:
	case a.SquishTimer == 0:
		a.Scale = mgl32.Vec3{1, 1, 1}
	case a.SquishTimer <= 16:
		a.SquishTimer--
		sc := float32(squishScaleOverTime[15-a.SquishTimer])
		a.Scale[1] = 1 - sc*0.6/100
		a.Scale[0] = 1 + sc*0.4/100
		a.Scale[2] = a.Scale[0]
	default:
		a.SquishTimer--
		a.Scale = mgl32.Vec3{1.4, 0.4, 1.4}
	}
}

// updateHealth runs the ambient regen/drain and the heal/hurt counters.
// The ambient logic is suppressed only when BOTH counters are non-zero;
// this mirrors the reference model's literal behavior and is locked in by
// tests, so do not "fix" it to an either-or check.
func (s *Simulator) updateHealth(a *player.Actor) {
	if a.Health < game.CriticalHealth {
		return
	}
	caps := a.Capabilities()
	if !(a.HealCounter != 0 && a.HurtCounter != 0) {
		if a.Input.Has(player.InputInPoisonGas) && !caps.Has(game.Flags(game.ActFlagIntangible)) {
			if !a.Flags.Has(player.FlagMetalCap) {
				a.Health -= game.GasDrainRate
			}
		} else if caps.Has(game.Flags(game.ActFlagSwimming)) && !caps.Has(game.Flags(game.ActFlagIntangible)) {
			if a.Position.Y() >= a.WaterLevel-game.WaterHealBand && !a.TerrainSnow {
				a.Health += game.WaterHealRate
			} else if a.TerrainSnow {
				a.Health -= 3
			} else {
				a.Health -= 1
			}
		}
	}
	if a.HealCounter > 0 {
		a.Health += game.HealthTickStep
		a.HealCounter--
	}
	if a.HurtCounter > 0 {
		a.Health -= game.HealthTickStep
		a.HurtCounter--
	}
	if a.Health > game.FullHealth {
		a.Health = game.FullHealth
	}
	if a.Health < game.CriticalHealth {
		a.Health = game.DeadHealth
	}
}

func (s *Simulator) updateTimers(a *player.Actor) {
	if a.CapTimer > 0 {
		a.CapTimer--
		if a.CapTimer == 0 {
			a.Flags.Remove(player.FlagWingCap | player.FlagMetalCap)
		}
	}
	if a.InvincibilityTimer > 0 {
		a.InvincibilityTimer--
	}
}

func (s *Simulator) hurtLava(a *player.Actor) {
	if a.Flags.Has(player.FlagMetalCap) {
		return
	}
	if a.Flags.Has(player.FlagCapOnHead) {
		a.HurtCounter += 12
	} else {
		a.HurtCounter += 18
	}
}
