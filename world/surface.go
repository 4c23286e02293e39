package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-sim/stride/amath"
)

// SurfaceType classifies a surface for the movement engine. It decides
// friction class, hazards and the quicksand table; anything else a host
// wants to attach rides on the opaque Handle.
type SurfaceType uint8

const (
	SurfaceDefault SurfaceType = iota
	SurfaceBurning
	SurfaceHangable
	SurfaceSlow
	SurfaceDeathPlane
	SurfaceVerticalWind
	SurfaceHorizontalPush
	SurfaceVerySlippery
	SurfaceSlippery
	SurfaceNotSlippery
	SurfaceShallowQuicksand
	SurfaceShallowMovingQuicksand
	SurfaceQuicksand
	SurfaceMovingQuicksand
	SurfaceDeepQuicksand
	SurfaceDeepMovingQuicksand
	SurfaceInstantQuicksand
	SurfaceWater
)

// SurfaceClass is the friction classification derived from the type.
type SurfaceClass uint8

const (
	ClassDefault SurfaceClass = iota
	ClassVerySlippery
	ClassSlippery
	ClassNotSlippery
)

// Surface describes a single floor/ceiling/wall hit. Descriptors are owned
// by the geometry source; the simulation core holds them only for the
// duration of the tick that queried them.
type Surface struct {
	Type   SurfaceType
	Normal mgl32.Vec3

	// Force carries the surface's attribute payload, e.g. the encoded push
	// direction/strength of moving sand. Interpretation belongs to the
	// geometry source; PushVector decodes the stock encoding.
	Force int32

	// Handle is an opaque reference back into the geometry source for
	// attribute lookups beyond Force.
	Handle any
}

// Class returns the friction class of the surface.
func (s *Surface) Class() SurfaceClass {
	switch s.Type {
	case SurfaceVerySlippery:
		return ClassVerySlippery
	case SurfaceSlippery:
		return ClassSlippery
	case SurfaceNotSlippery:
		return ClassNotSlippery
	default:
		return ClassDefault
	}
}

// Yaw returns the fixed-point yaw of the surface normal's horizontal
// projection. For walls this is the direction the wall pushes toward.
func (s *Surface) Yaw() int16 {
	return amath.Atan2s(s.Normal.Z(), s.Normal.X())
}

// PushVector decodes the stock push-force encoding of SurfaceHorizontalPush
// floors: the low byte is a yaw in 1/256ths of a turn, the next byte is the
// speed in quarter units.
func (s *Surface) PushVector() mgl32.Vec3 {
	if s.Type != SurfaceHorizontalPush {
		return mgl32.Vec3{}
	}
	yaw := amath.Wrap(int32(s.Force&0xFF) << 8)
	speed := float32((s.Force>>8)&0xFF) / 4
	return mgl32.Vec3{speed * amath.Sins(yaw), 0, speed * amath.Coss(yaw)}
}

// IsQuicksand reports whether the surface sinks the actor.
func (s *Surface) IsQuicksand() bool {
	switch s.Type {
	case SurfaceShallowQuicksand, SurfaceShallowMovingQuicksand,
		SurfaceQuicksand, SurfaceMovingQuicksand,
		SurfaceDeepQuicksand, SurfaceDeepMovingQuicksand,
		SurfaceInstantQuicksand:
		return true
	}
	return false
}
