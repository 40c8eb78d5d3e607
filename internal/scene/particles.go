package scene

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
)

// particle is one ambient mote. Its home position is derived from a hash of
// its index, so the field is deterministic: every frame recomputes the same
// layout from (index, now) with no stored state.
type particle struct {
	angle  float64 // home bearing, radians
	radial float64 // home distance as a fraction of the field radius
	speed  float64 // orbital drift, radians per second
	shade  float64 // [0,1] intrinsic brightness
}

// particleAt derives the i-th particle from its hash.
func particleAt(i int) particle {
	var seed [8]byte
	binary.BigEndian.PutUint64(seed[:], uint64(i))
	h := sha256.Sum256(seed[:])

	angle := frac(h[0:4]) * 2 * math.Pi
	// Bias homes toward the outer field so the orb interior stays quiet.
	radial := 0.45 + 0.55*math.Sqrt(frac(h[4:8]))
	speed := 0.02 + 0.06*frac(h[8:12])
	if h[12]&1 == 1 {
		speed = -speed
	}
	shade := 0.3 + 0.7*frac(h[13:17])

	return particle{angle: angle, radial: radial, speed: speed, shade: shade}
}

// position returns the particle's cell offset from center at an absolute
// time, given the field radius in cells. Pure function of (i, now).
func (p particle) position(now, radius, aspect float64) (dc, dr int) {
	a := NormalizeAngle(p.angle + p.speed*now)
	r := p.radial * radius
	dc = int(math.Round(r * math.Sin(a)))
	dr = -int(math.Round(r * math.Cos(a) * aspect))
	return dc, dr
}

// trailPositions returns up to n cells trailing behind the particle's
// current position, oldest last.
func (p particle) trailPositions(now, radius, aspect float64, n int) [][2]int {
	if n <= 0 {
		return nil
	}
	// One trail step corresponds to ~0.6s of drift.
	const step = 0.6
	out := make([][2]int, 0, n)
	for k := 1; k <= n; k++ {
		dc, dr := p.position(now-step*float64(k), radius, aspect)
		out = append(out, [2]int{dc, dr})
	}
	return out
}

func frac(b []byte) float64 {
	return float64(binary.BigEndian.Uint32(b)) / float64(math.MaxUint32)
}
