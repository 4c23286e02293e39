package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-sim/stride/game"
)

// floorTolerance is how far above the query point a box top may sit and
// still count as the floor under it, so that small step-ups resolve.
const floorTolerance = float32(78)

// Box is a single axis-aligned collision volume in a BoxWorld. Its top acts
// as a floor, its bottom as a ceiling and its sides as walls, each with its
// own surface type.
type Box struct {
	Bounds cube.BBox

	Floor SurfaceType
	Ceil  SurfaceType
	Wall  SurfaceType

	// Force is the attribute payload copied onto every surface descriptor
	// produced from this box.
	Force int32
}

// BoxWorld is a Source backed by a flat list of axis-aligned boxes. It is
// the reference geometry implementation used by the tests and the demo
// host; real hosts are expected to bring their own Source.
//
// All queries are read-only, so a BoxWorld may serve any number of actors
// concurrently once built.
type BoxWorld struct {
	boxes []Box

	waterLevel float32
	hasWater   bool
	gasLevel   float32
	hasGas     bool
	terrain    Terrain
}

func NewBoxWorld() *BoxWorld {
	return &BoxWorld{}
}

// AddBox appends a collision volume. Not safe to call concurrently with
// queries.
func (w *BoxWorld) AddBox(b Box) {
	w.boxes = append(w.boxes, b)
}

// AddFloor is a convenience for a large flat slab with the given top height
// and floor type.
func (w *BoxWorld) AddFloor(minX, minZ, maxX, maxZ, top float32, typ SurfaceType) {
	w.AddBox(Box{
		Bounds: cube.Box(minX, top-1000, minZ, maxX, top, maxZ),
		Floor:  typ,
	})
}

// SetWaterLevel installs a global water pseudo-plane.
func (w *BoxWorld) SetWaterLevel(h float32) {
	w.waterLevel, w.hasWater = h, true
}

// SetGasLevel installs a global poison gas pseudo-plane.
func (w *BoxWorld) SetGasLevel(h float32) {
	w.gasLevel, w.hasGas = h, true
}

// SetTerrain sets the course-wide terrain classification.
func (w *BoxWorld) SetTerrain(t Terrain) {
	w.terrain = t
}

func (w *BoxWorld) Terrain() Terrain {
	return w.terrain
}

func (w *BoxWorld) FindFloor(pos mgl32.Vec3) (float32, *Surface) {
	height := game.FloorLowerLimit
	var found *Surface
	for i := range w.boxes {
		b := &w.boxes[i]
		min, max := b.Bounds.Min(), b.Bounds.Max()
		if pos.X() < min.X() || pos.X() > max.X() || pos.Z() < min.Z() || pos.Z() > max.Z() {
			continue
		}
		top := max.Y()
		if top > pos.Y()+floorTolerance || top <= height {
			continue
		}
		height = top
		found = &Surface{
			Type:   b.Floor,
			Normal: mgl32.Vec3{0, 1, 0},
			Force:  b.Force,
			Handle: i,
		}
	}
	return height, found
}

func (w *BoxWorld) FindCeiling(pos mgl32.Vec3, lower float32) (float32, *Surface) {
	height := game.CeilUpperLimit
	var found *Surface
	for i := range w.boxes {
		b := &w.boxes[i]
		min, max := b.Bounds.Min(), b.Bounds.Max()
		if pos.X() < min.X() || pos.X() > max.X() || pos.Z() < min.Z() || pos.Z() > max.Z() {
			continue
		}
		bottom := min.Y()
		if bottom < lower || bottom >= height {
			continue
		}
		height = bottom
		found = &Surface{
			Type:   b.Ceil,
			Normal: mgl32.Vec3{0, -1, 0},
			Force:  b.Force,
			Handle: i,
		}
	}
	return height, found
}

func (w *BoxWorld) FindWallCollisions(pos mgl32.Vec3, offsetY, radius float32) (mgl32.Vec3, *Surface, []*Surface) {
	probeY := pos.Y() + offsetY
	x, z := pos.X(), pos.Z()

	var walls []*Surface
	var primary *Surface
	for i := range w.boxes {
		b := &w.boxes[i]
		min, max := b.Bounds.Min(), b.Bounds.Max()
		if probeY <= min.Y() || probeY >= max.Y() {
			continue
		}
		westPush := x - (min.X() - radius)
		eastPush := (max.X() + radius) - x
		northPush := z - (min.Z() - radius)
		southPush := (max.Z() + radius) - z
		if westPush <= 0 || eastPush <= 0 || northPush <= 0 || southPush <= 0 {
			continue
		}

		// Push out through the closest side face.
		push, normal := westPush, mgl32.Vec3{-1, 0, 0}
		newX, newZ := min.X()-radius, z
		if eastPush < push {
			push, normal = eastPush, mgl32.Vec3{1, 0, 0}
			newX, newZ = max.X()+radius, z
		}
		if northPush < push {
			push, normal = northPush, mgl32.Vec3{0, 0, -1}
			newX, newZ = x, min.Z()-radius
		}
		if southPush < push {
			normal = mgl32.Vec3{0, 0, 1}
			newX, newZ = x, max.Z()+radius
		}
		x, z = newX, newZ

		surf := &Surface{
			Type:   b.Wall,
			Normal: normal,
			Force:  b.Force,
			Handle: i,
		}
		walls = append(walls, surf)
		primary = surf
	}
	return mgl32.Vec3{x, pos.Y(), z}, primary, walls
}

func (w *BoxWorld) FindTaggedPlane(pos mgl32.Vec3, tag PlaneTag) (float32, bool) {
	switch tag {
	case PlaneWater:
		return w.waterLevel, w.hasWater
	case PlaneGas:
		return w.gasLevel, w.hasGas
	}
	return 0, false
}
