package simulation

import (
	"github.com/stride-sim/stride/amath"
	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/player"
)

func actIdle(s *Simulator, a *player.Actor) bool {
	if a.Input.Has(player.InputOffFloor) {
		return s.SetAction(a, game.ActFreefall, 0)
	}
	if a.Input.Has(player.InputAPressed) {
		return s.SetJumpFromLanding(a)
	}
	if a.Input.Has(player.InputBPressed) {
		if a.HasHeldObject {
			return s.SetAction(a, game.ActThrowing, 0)
		}
		return s.SetAction(a, game.ActPunching, 0)
	}
	if a.Input.Has(player.InputZDown) {
		return s.SetAction(a, game.ActCrouching, 0)
	}
	if a.Input.Has(player.InputNonzeroAnalog) {
		return s.SetAction(a, game.ActWalking, 0)
	}
	s.stationaryGroundStep(a)
	a.ActionTimer++
	return false
}

func actCrouching(s *Simulator, a *player.Actor) bool {
	if a.Input.Has(player.InputOffFloor) {
		return s.SetAction(a, game.ActFreefall, 0)
	}
	if a.Input.Has(player.InputAPressed) {
		return s.SetJumpFromLanding(a)
	}
	if !a.Input.Has(player.InputZDown) {
		if a.Input.Has(player.InputNonzeroAnalog) {
			return s.SetAction(a, game.ActWalking, 0)
		}
		return s.SetAction(a, game.ActIdle, 0)
	}
	s.stationaryGroundStep(a)
	return false
}

func actLedgeGrab(s *Simulator, a *player.Actor) bool {
	a.ActionTimer++

	// Pulling the stick away from the ledge or pressing Z lets go.
	analogAway := a.Input.Has(player.InputNonzeroAnalog) &&
		amath.AbsDiff(a.IntendedYaw, a.FaceAngle[1]) >= amath.QuarterTurn
	if a.Input.Has(player.InputZPressed) || analogAway {
		return letGoOfLedge(s, a)
	}

	analogToward := a.Input.Has(player.InputNonzeroAnalog) &&
		amath.AbsDiff(a.IntendedYaw, a.FaceAngle[1]) < amath.QuarterTurn
	if a.Input.Has(player.InputAPressed) || (a.ActionTimer >= 10 && analogToward) {
		// Climb up: the grab already placed the actor on the ledge floor.
		a.Position[1] = a.FloorHeight
		return s.SetAction(a, game.ActIdle, 0)
	}

	s.stationaryGroundStep(a)
	return false
}

// letGoOfLedge drops the actor back off the ledge face it was holding.
func letGoOfLedge(s *Simulator, a *player.Actor) bool {
	a.Velocity[1] = 0
	a.ForwardVel = -8
	a.Position[0] -= 60 * amath.Sins(a.FaceAngle[1])
	a.Position[2] -= 60 * amath.Coss(a.FaceAngle[1])

	floorHeight, floor := s.World.FindFloor(a.Position)
	if floor == nil || floorHeight < a.Position.Y()-100 {
		a.Position[1] -= 100
	} else {
		a.Position[1] = floorHeight
	}
	return s.SetAction(a, game.ActFreefall, 0)
}

func actSquished(s *Simulator, a *player.Actor) bool {
	if a.Input.Has(player.InputSquished) {
		// Still pinned; stay flat until the gap opens.
		a.SquishTimer = 0xFF
	} else if a.SquishTimer == 0xFF {
		a.SquishTimer = 16
	}
	if a.SquishTimer == 0 {
		return s.SetAction(a, game.ActIdle, 0)
	}
	s.stationaryGroundStep(a)
	return false
}
