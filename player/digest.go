package player

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"
)

// Digest hashes the simulated state of the player. Two players fed the same input in the same
// world produce the same digest every tick.
func (p *Player) Digest() uint64 {
	buf := make([]byte, 0, 96)
	appendVec := func(v mgl32.Vec3) {
		for _, f := range v {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
		}
	}
	appendFloat := func(f float32) {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}

	s := &p.state
	appendVec(s.Pos)
	appendVec(s.Vel)
	appendFloat(s.Yaw)
	appendFloat(s.Pitch)
	appendFloat(s.FallTimer)
	appendFloat(s.GroundTimer)
	appendFloat(p.speed)
	appendFloat(p.capsule.Height)

	var flags byte
	for i, b := range [...]bool{s.Grounded, s.Ceiling, s.Side, s.Walkable, s.JumpArmed} {
		if b {
			flags |= 1 << i
		}
	}
	buf = append(buf, flags, byte(s.Stance), byte(s.Regime))
	return xxh3.Hash(buf)
}
