package simulation

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-sim/stride/amath"
	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/player"
	"github.com/stride-sim/stride/world"
)

// AirStepOutcome is the terminal result of a full air step.
type AirStepOutcome int

const (
	AirStepNone AirStepOutcome = iota
	AirStepLanded
	AirStepHitWall
	AirStepGrabbedLedge
	AirStepGrabbedCeiling
	AirStepHitLavaWall
)

// AirStepFlags request optional grab checks from the air stepper.
type AirStepFlags uint32

const (
	AirStepCheckLedgeGrab AirStepFlags = 1 << 0
	AirStepCheckHang      AirStepFlags = 1 << 1
)

// performAirStep advances an airborne actor by (velocity + inertia) split
// into quarter steps, then integrates gravity and vertical wind once for the
// whole step. The peak height is refreshed while still ascending so fall
// distance is always measured from the apex.
func (s *Simulator) performAirStep(a *player.Actor, stepArg AirStepFlags) AirStepOutcome {
	steps := s.quarterSteps()
	outcome := AirStepNone
	a.Wall = nil
	for i := 0; i < steps; i++ {
		intended := mgl32.Vec3{
			a.Position.X() + (a.Velocity.X()+a.Inertia.X())/float32(steps),
			a.Position.Y() + (a.Velocity.Y()+a.Inertia.Y())/float32(steps),
			a.Position.Z() + (a.Velocity.Z()+a.Inertia.Z())/float32(steps),
		}
		q := s.airQuarterStep(a, intended, stepArg)
		if q != AirStepNone {
			outcome = q
		}
		if q == AirStepLanded || q == AirStepGrabbedLedge || q == AirStepGrabbedCeiling || q == AirStepHitLavaWall {
			break
		}
	}

	if a.Velocity.Y() >= 0 {
		a.PeakHeight = a.Position.Y()
	}
	s.applyGravity(a)
	s.applyVerticalWind(a)
	for i := range a.Inertia {
		a.Inertia[i] = game.ApproachF32(a.Inertia[i], 0, 0.15, 0.15)
	}
	return outcome
}

func (s *Simulator) airQuarterStep(a *player.Actor, intended mgl32.Vec3, stepArg AirStepFlags) AirStepOutcome {
	next, _, upperWalls := s.World.FindWallCollisions(intended, 150, 50)
	next, _, lowerWalls := s.World.FindWallCollisions(next, 30, 50)
	upperWall := closestWall(upperWalls, a.FaceAngle[1])
	lowerWall := closestWall(lowerWalls, a.FaceAngle[1])

	floorHeight, floor := s.World.FindFloor(next)
	ceilHeight, ceil := s.World.FindCeiling(next, floorHeight)

	a.Wall = nil

	if floor == nil {
		if next.Y() <= a.FloorHeight {
			a.Position[1] = a.FloorHeight
			return AirStepLanded
		}
		a.Position[1] = next.Y()
		return AirStepHitWall
	}

	if next.Y() <= floorHeight {
		// A gap too tight to occupy lands the actor without making the
		// floor authoritative.
		if ceilHeight-floorHeight > game.HitboxHeight {
			a.Position[0], a.Position[2] = next.X(), next.Z()
			a.Floor, a.FloorHeight = floor, floorHeight
			a.Ceil, a.CeilHeight = ceil, ceilHeight
		}
		a.Position[1] = floorHeight
		return AirStepLanded
	}

	if next.Y()+game.HitboxHeight > ceilHeight {
		if a.Velocity.Y() >= 0 {
			a.Velocity[1] = 0
			if stepArg&AirStepCheckHang != 0 && ceil != nil && ceil.Type == world.SurfaceHangable {
				a.Ceil, a.CeilHeight = ceil, ceilHeight
				return AirStepGrabbedCeiling
			}
			return AirStepNone
		}
		if next.Y() <= a.FloorHeight {
			a.Position[1] = a.FloorHeight
			return AirStepLanded
		}
		a.Position[1] = next.Y()
		return AirStepHitWall
	}

	if stepArg&AirStepCheckLedgeGrab != 0 && upperWall == nil && lowerWall != nil {
		if s.checkLedgeGrab(a, lowerWall, intended, next) {
			return AirStepGrabbedLedge
		}
		a.Position = next
		a.Floor, a.FloorHeight = floor, floorHeight
		a.Ceil, a.CeilHeight = ceil, ceilHeight
		return AirStepNone
	}

	a.Position = next
	a.Floor, a.FloorHeight = floor, floorHeight
	a.Ceil, a.CeilHeight = ceil, ceilHeight

	if upperWall != nil || lowerWall != nil {
		wall := upperWall
		if wall == nil {
			wall = lowerWall
		}
		if wall.Type == world.SurfaceBurning {
			a.Wall = wall
			return AirStepHitLavaWall
		}
		if amath.AbsDiff(wall.Yaw(), a.FaceAngle[1]) > 0x6000 {
			a.Wall = wall
			return AirStepHitWall
		}
	}
	return AirStepNone
}

// checkLedgeGrab decides whether a descending actor pushed back by a wall
// catches the ledge above it. Success relocates the actor onto the ledge
// floor, facing away from the wall.
func (s *Simulator) checkLedgeGrab(a *player.Actor, wall *world.Surface, intended, next mgl32.Vec3) bool {
	if a.Velocity.Y() > 0 {
		return false
	}
	dispX := next.X() - intended.X()
	dispZ := next.Z() - intended.Z()
	if dispX*a.Velocity.X()+dispZ*a.Velocity.Z() > 0 {
		return false
	}

	ledgePos := mgl32.Vec3{
		next.X() - wall.Normal.X()*game.LedgeGrabDepth,
		next.Y() + game.HitboxHeight,
		next.Z() - wall.Normal.Z()*game.LedgeGrabDepth,
	}
	height, floor := s.World.FindFloor(ledgePos)
	if floor == nil || height-next.Y() < game.LedgeGrabMinRise {
		return false
	}

	a.Position = mgl32.Vec3{ledgePos.X(), height, ledgePos.Z()}
	a.Floor, a.FloorHeight = floor, height
	a.FloorAngle = floor.Yaw()
	a.FaceAngle[0] = 0
	a.FaceAngle[1] = amath.Wrap(int32(wall.Yaw()) + amath.HalfTurn)
	return true
}
