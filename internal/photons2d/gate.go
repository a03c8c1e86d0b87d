package photons2d

import (
	"context"
	"sync"
	"sync/atomic"
)

// gate is the stop-the-world handshake between emission workers and scene
// mutators. Workers bracket every tick with enter/leave; pause blocks until
// no tick is in flight and keeps new ticks from starting until the matching
// resume. Pauses nest. The unpaused fast path is two atomic adds.
type gate struct {
	mu     sync.Mutex
	cond   *sync.Cond
	depth  atomic.Int32 // outstanding pauses
	active atomic.Int32 // ticks in flight
}

func newGate() *gate {
	g := &gate{}
	g.cond = sync.NewCond(&g.mu)
	return g
}

// enter reports false once ctx is done; otherwise it returns when the caller
// may run one tick.
func (g *gate) enter(ctx context.Context) bool {
	for {
		if ctx.Err() != nil {
			return false
		}
		g.active.Add(1)
		if g.depth.Load() == 0 {
			return true
		}
		// a pause is pending: back out and park
		g.leave()
		g.mu.Lock()
		for g.depth.Load() > 0 && ctx.Err() == nil {
			g.cond.Wait()
		}
		g.mu.Unlock()
	}
}

func (g *gate) leave() {
	if g.active.Add(-1) == 0 && g.depth.Load() > 0 {
		g.mu.Lock()
		g.cond.Broadcast()
		g.mu.Unlock()
	}
}

// pause returns once every in-flight tick has finished. No tick starts
// until resume.
func (g *gate) pause() {
	g.mu.Lock()
	g.depth.Add(1)
	for g.active.Load() > 0 {
		g.cond.Wait()
	}
	g.mu.Unlock()
}

func (g *gate) resume() {
	g.mu.Lock()
	if g.depth.Add(-1) < 0 {
		g.depth.Store(0)
	}
	g.cond.Broadcast()
	g.mu.Unlock()
}

func (g *gate) paused() bool { return g.depth.Load() > 0 }

// wake rouses parked workers so they can observe a cancelled context.
func (g *gate) wake() {
	g.mu.Lock()
	g.cond.Broadcast()
	g.mu.Unlock()
}
