package simulation

import (
	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/player"
)

func actPunching(s *Simulator, a *player.Actor) bool {
	s.stationaryGroundStep(a)
	a.ActionTimer++
	if a.ActionTimer >= 4 {
		if a.Input.Has(player.InputNonzeroAnalog) {
			return s.SetAction(a, game.ActWalking, 0)
		}
		return s.SetAction(a, game.ActIdle, 0)
	}
	return false
}

func actPickingUp(s *Simulator, a *player.Actor) bool {
	if a.ActionState == 0 {
		if s.Held != nil && s.Held.PickUpObject(a) {
			a.HasHeldObject = true
		}
		a.ActionState = 1
	}
	s.stationaryGroundStep(a)
	a.ActionTimer++
	if a.ActionTimer >= 5 {
		return s.SetAction(a, game.ActIdle, 0)
	}
	return false
}

func actThrowing(s *Simulator, a *player.Actor) bool {
	if a.ActionState == 0 {
		if s.Held != nil {
			s.Held.DropHeldObject(a)
		}
		a.HasHeldObject = false
		a.ActionState = 1
	}
	s.stationaryGroundStep(a)
	a.ActionTimer++
	if a.ActionTimer >= 5 {
		return s.SetAction(a, game.ActIdle, 0)
	}
	return false
}
