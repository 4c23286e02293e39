package amath

import "github.com/chewxy/math32"

// Angles are signed 16-bit units: a full turn is 65536 units, so one unit is
// 2π/65536 radians. All arithmetic must wrap; plain integer comparisons near
// the ±0x8000 boundary give wrong answers.

const (
	// HalfTurn is 180 degrees in angle units.
	HalfTurn = 0x8000
	// QuarterTurn is 90 degrees in angle units.
	QuarterTurn = 0x4000
)

// sineTable covers a full turn in 4096 steps. Sins indexes it with the top
// 12 bits of the angle, matching the granularity of the original fixed-point
// tables this model was tuned against.
var sineTable [4096]float32

func init() {
	for i := range sineTable {
		sineTable[i] = math32.Sin(2 * math32.Pi * float32(i) / 4096)
	}
}

// Wrap reduces any integer angle into the signed 16-bit range.
func Wrap(x int32) int16 {
	return int16(uint16(x))
}

// Sins returns the sine of a fixed-point angle.
func Sins(a int16) float32 {
	return sineTable[uint16(a)>>4]
}

// Coss returns the cosine of a fixed-point angle.
func Coss(a int16) float32 {
	return sineTable[uint16(uint16(a)+QuarterTurn)>>4]
}

// Atan2s returns the fixed-point angle of the horizontal vector (x, z),
// measured so that Sins(Atan2s(z, x)) points along x and Coss along z. A yaw
// of zero therefore faces +z.
func Atan2s(z, x float32) int16 {
	if x == 0 && z == 0 {
		return 0
	}
	r := math32.Atan2(x, z) * (HalfTurn / math32.Pi)
	return Wrap(int32(math32.Round(r)))
}

// Diff returns the wrapped difference a-b. The result is always within half
// a turn of zero, which makes "behind" checks a comparison against HalfTurn.
func Diff(a, b int16) int16 {
	return int16(uint16(a) - uint16(b))
}

// AbsDiff returns the magnitude of the wrapped difference a-b as an int32 so
// that the extreme value 0x8000 survives.
func AbsDiff(a, b int16) int32 {
	d := int32(Diff(a, b))
	if d < 0 {
		d = -d
	}
	return d
}

// Approach steps current toward target by at most inc/dec without
// overshooting, wrapping through the shorter direction.
func Approach(current, target int16, inc, dec int32) int16 {
	d := int32(Diff(target, current))
	if d > 0 {
		if d > inc {
			d = inc
		}
	} else {
		if d < -dec {
			d = -dec
		}
	}
	return Wrap(int32(current) + d)
}
