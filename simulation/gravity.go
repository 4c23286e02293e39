package simulation

import (
	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/player"
	"github.com/stride-sim/stride/world"
)

// applyGravity integrates vertical acceleration once per full air step. The
// profile depends on the action's capabilities and the actor's caps, not a
// single constant.
func (s *Simulator) applyGravity(a *player.Actor) {
	g := s.Tuning.Gravity
	caps := a.Capabilities()
	switch {
	case !a.Input.Has(player.InputADown) && a.Velocity.Y() > 20 &&
		caps.Has(game.Flags(game.ActFlagControlJumpHeight)):
		// Releasing jump early cuts the ascent short.
		a.Velocity[1] /= 4
	case caps.Has(game.Flags(game.ActFlagHazard)):
		a.Velocity[1] -= g.Hazard
		if a.Velocity[1] < g.TerminalHazard {
			a.Velocity[1] = g.TerminalHazard
		}
	case caps.Has(game.Flags(game.ActFlagMetalWater)):
		a.Velocity[1] -= g.MetalWater
		if a.Velocity[1] < g.TerminalMetalWater {
			a.Velocity[1] = g.TerminalMetalWater
		}
	case a.Flags.Has(player.FlagWingCap) && a.Velocity.Y() < 0 && a.Input.Has(player.InputADown):
		// Wing cap flutter: a hard pull past the flutter terminal velocity
		// recovers back toward it, producing the bobbing descent.
		a.Velocity[1] -= game.FlutterPull
		if a.Velocity[1] < g.TerminalFlutter {
			a.Velocity[1] += game.FlutterRecover
			if a.Velocity[1] > g.TerminalFlutter {
				a.Velocity[1] = g.TerminalFlutter
			}
		}
	default:
		a.Velocity[1] -= g.Default
		if a.Velocity[1] < g.Terminal {
			a.Velocity[1] = g.Terminal
		}
	}
}

// applyVerticalWind adds the updraft of a vertical wind floor. The maximum
// lift falls off with altitude above the reference level; each tick closes
// an eighth of the deficit toward it.
func (s *Simulator) applyVerticalWind(a *player.Actor) {
	if a.Floor == nil || a.Floor.Type != world.SurfaceVerticalWind {
		return
	}
	w := s.Tuning.Wind
	offsetY := a.Position.Y() - w.ReferenceAltitude
	if offsetY <= w.BandBelow || offsetY >= w.BandAbove {
		return
	}
	maxVelY := w.MaxUpdraft
	if offsetY >= 0 {
		maxVelY = 10000 / (offsetY + 200)
	}
	if a.Velocity.Y() < maxVelY {
		a.Velocity[1] += maxVelY / w.ApproachDivisor
		if a.Velocity[1] > maxVelY {
			a.Velocity[1] = maxVelY
		}
	}
	a.ParticleFlags.Add(player.ParticleWind)
}
