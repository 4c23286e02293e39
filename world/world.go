package world

import "github.com/go-gl/mathgl/mgl32"

// PlaneTag selects a pseudo-surface plane kind for FindTaggedPlane.
type PlaneTag uint8

const (
	PlaneWater PlaneTag = iota
	PlaneGas
)

// Terrain is the course-wide terrain classification. It drives ambient
// temperature effects such as the cold-water health drain.
type Terrain uint8

const (
	TerrainDefault Terrain = iota
	TerrainSnow
)

// Source is the geometry query facade the simulation core runs against. The
// core only ever reads through it; implementations must be safe for
// concurrent readers if independent actors are advanced in parallel.
type Source interface {
	// FindFloor returns the height and descriptor of the highest floor at
	// or below the point (with a small upward tolerance for steps). When no
	// floor exists the descriptor is nil and the height is the lower limit.
	FindFloor(pos mgl32.Vec3) (float32, *Surface)

	// FindCeiling returns the lowest ceiling above the given lower bound at
	// the point's XZ. When none exists the descriptor is nil and the height
	// is the upper limit.
	FindCeiling(pos mgl32.Vec3, lower float32) (float32, *Surface)

	// FindWallCollisions pushes the probe point at pos.y+offsetY out of any
	// walls within radius and returns the resolved position, the primary
	// wall (nil when no hit) and every wall touched.
	FindWallCollisions(pos mgl32.Vec3, offsetY, radius float32) (mgl32.Vec3, *Surface, []*Surface)

	// FindTaggedPlane returns the height of the water/gas pseudo-surface
	// covering the point, if any.
	FindTaggedPlane(pos mgl32.Vec3, tag PlaneTag) (float32, bool)

	// Terrain returns the course-wide terrain classification.
	Terrain() Terrain
}
