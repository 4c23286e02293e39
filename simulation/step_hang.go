package simulation

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/player"
	"github.com/stride-sim/stride/world"
)

// HangStepOutcome is the result of one hang step under a hangable ceiling.
type HangStepOutcome int

const (
	HangStepNone HangStepOutcome = iota
	// HangStepLeftCeil means the ceiling is gone, not hangable, or the
	// actor drifted too far above the hang band; the grab releases.
	HangStepLeftCeil
	// HangStepHitCeilOrFell means the actor is blocked, out of bounds, or
	// sagged too far below the hang band to keep hold and falls off.
	HangStepHitCeilOrFell
)

// performHangStep moves a hanging actor to next, keeping its head snapped to
// the ceiling as long as it stays within the hang band.
func (s *Simulator) performHangStep(a *player.Actor, next mgl32.Vec3) HangStepOutcome {
	next, _, walls := s.World.FindWallCollisions(next, 50, 50)
	a.Wall = closestWall(walls, a.FaceAngle[1])

	floorHeight, floor := s.World.FindFloor(next)
	ceilHeight, ceil := s.World.FindCeiling(next, floorHeight)

	if floor == nil {
		return HangStepHitCeilOrFell
	}
	if ceil == nil {
		return HangStepLeftCeil
	}
	if ceilHeight-floorHeight <= game.HitboxHeight {
		return HangStepHitCeilOrFell
	}
	if ceil.Type != world.SurfaceHangable {
		return HangStepLeftCeil
	}

	ceilOffset := ceilHeight - (next.Y() + game.HitboxHeight)
	if ceilOffset < -game.HangBand {
		return HangStepLeftCeil
	}
	if ceilOffset > game.HangBand {
		return HangStepHitCeilOrFell
	}

	a.Position = mgl32.Vec3{next.X(), ceilHeight - game.HitboxHeight, next.Z()}
	a.Floor, a.FloorHeight = floor, floorHeight
	a.Ceil, a.CeilHeight = ceil, ceilHeight
	return HangStepNone
}
