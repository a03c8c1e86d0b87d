package photons2d

import (
	"math/rand"
	"time"
)

// xorshift is a 64-bit xorshift generator (shifts 21, 35, 4). It is not
// safe for concurrent use; every worker owns one.
type xorshift struct{ s uint64 }

func (x *xorshift) Seed(seed int64) {
	x.s = uint64(seed)
	if x.s == 0 {
		x.s = goldenGamma
	}
}

func (x *xorshift) Uint64() uint64 {
	s := x.s
	s ^= s << 21
	s ^= s >> 35
	s ^= s << 4
	x.s = s
	return s
}

func (x *xorshift) Int63() int64 { return int64(x.Uint64() >> 1) }

// NewRand returns a *rand.Rand over a xorshift stream.
func NewRand(seed int64) *rand.Rand {
	src := &xorshift{}
	src.Seed(seed)
	return rand.New(src)
}

// workerSeed mixes a base seed with a worker id. A zero base seed means
// "seed from the clock".
func workerSeed(base int64, wid int) int64 {
	if base == 0 {
		base = time.Now().UnixNano()
	}
	return base ^ int64(uint64(wid+1)*goldenGamma)
}
