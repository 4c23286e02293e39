package simulation

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-sim/stride/amath"
	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/player"
	"github.com/stride-sim/stride/world"
)

// GroundStepOutcome is the terminal result of a full ground step.
type GroundStepOutcome int

const (
	GroundStepNone GroundStepOutcome = iota
	GroundStepLeftGround
	GroundStepHitWall

	// A near-perpendicular wall graze keeps the remaining sub-steps going
	// but still reports a wall hit if it is the final sub-step's result.
	groundStepHitWallContinue
)

// closestWall picks the canonical wall out of a multi-hit: the one whose
// normal yaw is angularly closest to the actor's facing. This keeps replays
// stable regardless of the geometry source's hit ordering.
func closestWall(walls []*world.Surface, faceYaw int16) *world.Surface {
	var best *world.Surface
	bestDiff := int32(0x10000)
	for _, w := range walls {
		if d := amath.AbsDiff(w.Yaw(), faceYaw); d < bestDiff {
			bestDiff = d
			best = w
		}
	}
	return best
}

// performGroundStep advances the actor along the floor, subdividing the
// intended displacement into quarter steps. The horizontal displacement is
// scaled by the floor normal's Y so slopes shorten effective travel.
func (s *Simulator) performGroundStep(a *player.Actor) GroundStepOutcome {
	steps := s.quarterSteps()
	outcome := GroundStepNone
	for i := 0; i < steps; i++ {
		ny := float32(1)
		if a.Floor != nil {
			ny = a.Floor.Normal.Y()
		}
		intended := mgl32.Vec3{
			a.Position.X() + ny*a.Velocity.X()/float32(steps),
			a.Position.Y(),
			a.Position.Z() + ny*a.Velocity.Z()/float32(steps),
		}
		outcome = s.groundQuarterStep(a, intended)
		if outcome == GroundStepLeftGround || outcome == GroundStepHitWall {
			break
		}
	}
	if outcome == groundStepHitWallContinue {
		outcome = GroundStepHitWall
	}
	return outcome
}

func (s *Simulator) groundQuarterStep(a *player.Actor, intended mgl32.Vec3) GroundStepOutcome {
	next, _, _ := s.World.FindWallCollisions(intended, 30, 24)
	next, _, upperWalls := s.World.FindWallCollisions(next, 60, 50)

	floorHeight, floor := s.World.FindFloor(next)
	ceilHeight, ceil := s.World.FindCeiling(next, floorHeight)

	a.Wall = closestWall(upperWalls, a.FaceAngle[1])

	if floor == nil {
		return GroundStepHitWall
	}
	if next.Y() > floorHeight+game.LeaveGroundHeight {
		if next.Y()+game.HitboxHeight >= ceilHeight {
			return GroundStepHitWall
		}
		a.Position = next
		a.Floor, a.FloorHeight = floor, floorHeight
		a.Ceil, a.CeilHeight = ceil, ceilHeight
		return GroundStepLeftGround
	}
	if floorHeight+game.HitboxHeight >= ceilHeight {
		return GroundStepHitWall
	}

	a.Position = mgl32.Vec3{next.X(), floorHeight, next.Z()}
	a.Floor, a.FloorHeight = floor, floorHeight
	a.Ceil, a.CeilHeight = ceil, ceilHeight

	if a.Wall != nil {
		// Walls 60-120 degrees off facing are sidled along; anything more
		// head-on blocks.
		dYaw := amath.AbsDiff(a.Wall.Yaw(), a.FaceAngle[1])
		if dYaw >= 0x2AAA && dYaw <= 0x5555 {
			return GroundStepNone
		}
		return groundStepHitWallContinue
	}
	return GroundStepNone
}

// stationaryGroundStep keeps a non-moving actor attached to the floor while
// drift surfaces (moving sand, push floors) may still carry it around.
func (s *Simulator) stationaryGroundStep(a *player.Actor) GroundStepOutcome {
	a.SetForwardVel(0)
	a.Velocity[1] = 0
	s.applyFloorDrift(a)
	return s.performGroundStep(a)
}

// applyGroundVelocity projects the forward speed onto the facing direction
// and folds in any floor drift.
func (s *Simulator) applyGroundVelocity(a *player.Actor) {
	a.SlideVelX = a.ForwardVel * amath.Sins(a.FaceAngle[1])
	a.SlideVelZ = a.ForwardVel * amath.Coss(a.FaceAngle[1])
	a.Velocity = mgl32.Vec3{a.SlideVelX, 0, a.SlideVelZ}
	s.applyFloorDrift(a)
}

// applyFloorDrift adds the push of moving sand and push floors to this
// tick's velocity and records it as inertia, so an actor blown off such a
// floor keeps drifting through the air.
func (s *Simulator) applyFloorDrift(a *player.Actor) {
	a.Inertia = mgl32.Vec3{}
	if a.Floor == nil {
		return
	}
	var push mgl32.Vec3
	switch a.Floor.Type {
	case world.SurfaceHorizontalPush:
		push = a.Floor.PushVector()
	case world.SurfaceShallowMovingQuicksand, world.SurfaceMovingQuicksand, world.SurfaceDeepMovingQuicksand:
		speed := movingSandSpeed(a.Floor.Type)
		yaw := amath.Wrap(int32(a.Floor.Force&0xFF) << 8)
		push = mgl32.Vec3{speed * amath.Sins(yaw), 0, speed * amath.Coss(yaw)}
	default:
		return
	}
	a.Velocity[0] += push.X()
	a.Velocity[2] += push.Z()
	a.Inertia = push
}

func movingSandSpeed(t world.SurfaceType) float32 {
	switch t {
	case world.SurfaceDeepMovingQuicksand:
		return 12
	case world.SurfaceShallowMovingQuicksand:
		return 8
	default:
		return 4
	}
}
