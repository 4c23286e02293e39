package simulation

import (
	"github.com/chewxy/math32"

	"github.com/stride-sim/stride/amath"
	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/player"
	"github.com/stride-sim/stride/world"
)

// updateInputs rebuilds the per-tick flag domains from the controller and
// the geometry source. Everything dispatch reads this tick comes from here.
func (s *Simulator) updateInputs(a *player.Actor) {
	a.ParticleFlags.Clear()
	a.Input.Clear()

	var st player.ControllerState
	if a.Controller != nil {
		st = a.Controller.Sample()
	}
	s.updateButtonInputs(a, st)
	s.updateJoystickInputs(a, st)
	s.updateGeometryInputs(a)

	if a.WallKickTimer > 0 {
		a.WallKickTimer--
	}
	if a.DoubleJumpTimer > 0 {
		a.DoubleJumpTimer--
	}
}

func (s *Simulator) updateButtonInputs(a *player.Actor, st player.ControllerState) {
	if st.APressed {
		a.Input.Add(player.InputAPressed)
	}
	if st.ADown {
		a.Input.Add(player.InputADown)
	}
	// A squished actor cannot attack or crouch.
	if a.SquishTimer == 0 {
		if st.BPressed {
			a.Input.Add(player.InputBPressed)
		}
		if st.ZPressed {
			a.Input.Add(player.InputZPressed)
		}
		if st.ZDown {
			a.Input.Add(player.InputZDown)
		}
	}

	if a.Input.Has(player.InputAPressed) {
		a.FramesSinceA = 0
	} else if a.FramesSinceA < 0xFF {
		a.FramesSinceA++
	}
	if a.Input.Has(player.InputBPressed) {
		a.FramesSinceB = 0
	} else if a.FramesSinceB < 0xFF {
		a.FramesSinceB++
	}
}

func (s *Simulator) updateJoystickInputs(a *player.Actor, st player.ControllerState) {
	stickMag := game.ClampF32(math32.Sqrt(st.StickX*st.StickX+st.StickY*st.StickY), 0, 64)
	// Quadratic response curve; full deflection intends magnitude 32.
	a.IntendedMag = (stickMag / 64) * (stickMag / 64) * 64 / 2

	if a.IntendedMag > 0 {
		a.IntendedYaw = amath.Wrap(int32(amath.Atan2s(-st.StickY, st.StickX)) + int32(st.CameraYaw))
		a.Input.Add(player.InputNonzeroAnalog)
	} else {
		a.IntendedYaw = a.FaceAngle[1]
	}
}

func (s *Simulator) updateGeometryInputs(a *player.Actor) {
	pos, _, _ := s.World.FindWallCollisions(a.Position, 60, 50)
	pos, _, _ = s.World.FindWallCollisions(pos, 30, 24)
	a.Position = pos
	a.TerrainSnow = s.World.Terrain() == world.TerrainSnow

	a.FloorHeight, a.Floor = s.World.FindFloor(a.Position)
	if a.Floor == nil {
		s.Log.Errorf("no floor below actor at %v, queueing respawn", a.Position)
		a.Flags.Add(player.FlagRespawnQueued)
		return
	}
	a.FloorAngle = a.Floor.Yaw()
	a.CeilHeight, a.Ceil = s.World.FindCeiling(a.Position, a.FloorHeight)

	if h, ok := s.World.FindTaggedPlane(a.Position, world.PlaneWater); ok {
		a.WaterLevel = h
	} else {
		a.WaterLevel = game.FloorLowerLimit
	}
	if h, ok := s.World.FindTaggedPlane(a.Position, world.PlaneGas); ok {
		a.GasLevel = h
	} else {
		a.GasLevel = game.FloorLowerLimit
	}

	if gap := a.CeilHeight - a.FloorHeight; gap >= 0 && gap <= game.SquishClearance {
		a.Input.Add(player.InputSquished)
	}
	if a.Position.Y() > a.FloorHeight+game.LeaveGroundHeight {
		a.Input.Add(player.InputOffFloor)
	}
	if a.Position.Y() < a.WaterLevel-game.WaterShallowBand {
		a.Input.Add(player.InputInWater)
	}
	if a.Position.Y() < a.GasLevel-game.GasBreathBand {
		a.Input.Add(player.InputInPoisonGas)
	}
	if c := a.Floor.Class(); c == world.ClassSlippery || c == world.ClassVerySlippery {
		a.Input.Add(player.InputAboveSlide)
	}
}
