package simulation

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/player"
)

// WaterStepOutcome is the result of a full underwater step.
type WaterStepOutcome int

const (
	WaterStepNone WaterStepOutcome = iota
	WaterStepHitFloor
	WaterStepHitCeiling
	WaterStepHitWall
	// WaterStepCancelled means the step could not resolve to any legal
	// position (no floor, or a gap too tight to occupy); position is left
	// unchanged.
	WaterStepCancelled
)

// performWaterStep advances a submerged actor a full velocity step, clamped
// so it never pokes above the swimming surface height.
func (s *Simulator) performWaterStep(a *player.Actor) WaterStepOutcome {
	next := mgl32.Vec3{
		a.Position.X() + a.Velocity.X(),
		a.Position.Y() + a.Velocity.Y(),
		a.Position.Z() + a.Velocity.Z(),
	}
	if surf := a.WaterLevel - game.WaterSurfaceOffset; next.Y() > surf {
		next[1] = surf
	}
	return s.waterFullStep(a, next)
}

func (s *Simulator) waterFullStep(a *player.Actor, next mgl32.Vec3) WaterStepOutcome {
	next, _, walls := s.World.FindWallCollisions(next, 10, 110)
	wall := closestWall(walls, a.FaceAngle[1])
	a.Wall = wall

	floorHeight, floor := s.World.FindFloor(next)
	ceilHeight, _ := s.World.FindCeiling(next, floorHeight)

	if floor == nil {
		return WaterStepCancelled
	}
	if next.Y() >= floorHeight {
		if ceilHeight-next.Y() >= game.HitboxHeight {
			a.Position = next
			a.Floor, a.FloorHeight = floor, floorHeight
			if wall != nil {
				return WaterStepHitWall
			}
			return WaterStepNone
		}
		if floorHeight+game.HitboxHeight >= ceilHeight {
			return WaterStepCancelled
		}
		a.Position = mgl32.Vec3{next.X(), ceilHeight - game.HitboxHeight, next.Z()}
		a.Floor, a.FloorHeight = floor, floorHeight
		return WaterStepHitCeiling
	}
	if ceilHeight-floorHeight < game.HitboxHeight {
		return WaterStepCancelled
	}
	a.Position = mgl32.Vec3{next.X(), floorHeight, next.Z()}
	a.Floor, a.FloorHeight = floor, floorHeight
	return WaterStepHitFloor
}
