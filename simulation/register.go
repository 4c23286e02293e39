package simulation

import "github.com/stride-sim/stride/game"

// registerDefaults installs the shipped action catalogue.
func (s *Simulator) registerDefaults() {
	s.Register(game.ActIdle, actIdle)
	s.Register(game.ActCrouching, actCrouching)
	s.Register(game.ActLedgeGrab, actLedgeGrab)
	s.Register(game.ActSquished, actSquished)

	s.Register(game.ActWalking, actWalking)
	s.Register(game.ActDecelerating, actDecelerating)
	s.Register(game.ActTurningAround, actTurningAround)
	s.Register(game.ActButtSlide, actButtSlide)
	s.Register(game.ActJumpLand, actJumpLand)
	s.Register(game.ActDoubleJumpLand, actDoubleJumpLand)
	s.Register(game.ActFreefallLand, actFreefallLand)

	s.Register(game.ActJump, actJump)
	s.Register(game.ActDoubleJump, actDoubleJump)
	s.Register(game.ActTripleJump, actTripleJump)
	s.Register(game.ActFreefall, actFreefall)
	s.Register(game.ActWallKickAir, actWallKickAir)
	s.Register(game.ActBackwardAirKB, actBackwardAirKB)
	s.Register(game.ActAirHitWall, actAirHitWall)
	s.Register(game.ActLavaBoost, actLavaBoost)
	s.Register(game.ActVerticalWind, actVerticalWind)
	s.Register(game.ActStartHanging, actStartHanging)
	s.Register(game.ActHanging, actHanging)

	s.Register(game.ActWaterIdle, actWaterIdle)
	s.Register(game.ActSwimming, actSwimming)
	s.Register(game.ActWaterPlunge, actWaterPlunge)
	s.Register(game.ActDrowning, actDrowning)
	s.Register(game.ActWaterShellSwimming, actWaterShellSwimming)
	s.Register(game.ActMetalWaterStanding, actMetalWaterStanding)

	s.Register(game.ActSpawn, actSpawn)
	s.Register(game.ActStandingDeath, actStandingDeath)
	s.Register(game.ActQuicksandDeath, actQuicksandDeath)

	s.Register(game.ActPunching, actPunching)
	s.Register(game.ActPickingUp, actPickingUp)
	s.Register(game.ActThrowing, actThrowing)
}
