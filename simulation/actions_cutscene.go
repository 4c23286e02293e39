package simulation

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/player"
)

func actSpawn(s *Simulator, a *player.Actor) bool {
	a.ActionTimer++
	if a.ActionTimer < game.SpawnHoldTicks {
		return false
	}
	if a.Input.Has(player.InputInWater) {
		return s.SetAction(a, game.ActWaterIdle, 0)
	}
	if a.Input.Has(player.InputOffFloor) {
		return s.SetAction(a, game.ActFreefall, 0)
	}
	return s.SetAction(a, game.ActIdle, 0)
}

func actStandingDeath(s *Simulator, a *player.Actor) bool {
	s.stationaryGroundStep(a)
	a.ActionTimer++
	if a.ActionTimer >= 60 {
		a.Health = game.DeadHealth
		a.Flags.Add(player.FlagRespawnQueued)
	}
	return false
}

func actQuicksandDeath(s *Simulator, a *player.Actor) bool {
	a.Velocity = mgl32.Vec3{}
	a.ForwardVel = 0
	// Keep sinking past the playable depth while the death plays out.
	a.QuicksandDepth += 5
	a.ActionTimer++
	if a.ActionTimer >= 60 {
		a.Health = game.DeadHealth
		a.Flags.Add(player.FlagRespawnQueued)
	}
	return false
}
