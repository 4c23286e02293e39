package player

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// StateHash digests the replay-relevant portion of the actor state. Two
// simulations fed identical inputs over identical geometry must produce
// identical hash sequences; the determinism harness compares these per tick.
func (a *Actor) StateHash() uint64 {
	buf := make([]byte, 0, 160)

	putF := func(v float32) {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	putU := func(v uint32) {
		buf = binary.LittleEndian.AppendUint32(buf, v)
	}

	for i := 0; i < 3; i++ {
		putF(a.Position[i])
		putF(a.Velocity[i])
		putF(a.Inertia[i])
		putU(uint32(uint16(a.FaceAngle[i])))
		putU(uint32(uint16(a.AngleVel[i])))
	}
	putF(a.ForwardVel)
	putF(a.SlideVelX)
	putF(a.SlideVelZ)

	putU(a.Action)
	putU(a.PrevAction)
	putU(a.ActionArg)
	putU(a.ActionState)
	putU(a.ActionTimer)

	putU(uint32(a.Flags))
	putU(uint32(a.Input))
	putU(uint32(a.ParticleFlags))

	putU(uint32(a.Health))
	putU(uint32(a.HealCounter)<<8 | uint32(a.HurtCounter))
	putF(a.QuicksandDepth)
	putU(uint32(a.SquishTimer))
	putU(uint32(a.CapTimer))
	putU(uint32(uint16(a.InvincibilityTimer)))
	putU(uint32(a.WallKickTimer)<<8 | uint32(a.DoubleJumpTimer))
	putF(a.PeakHeight)

	return xxh3.Hash(buf)
}
