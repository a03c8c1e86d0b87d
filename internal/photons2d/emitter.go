package photons2d

import (
	"context"
	"errors"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrEmitterRunning is returned by Start on an emitter that is already running.
var ErrEmitterRunning = errors.New("emitter already running")

// Emitter keeps a fixed set of workers tracing rays into a World until
// stopped. Each worker owns its random stream.
type Emitter struct {
	world   *World
	workers int
	seed    int64

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	ticks  atomic.Int64
}

// NewEmitter prepares workers for w. workers <= 0 means one per CPU; a
// zero seed seeds every worker from the clock.
func NewEmitter(w *World, workers int, seed int64) *Emitter {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Emitter{world: w, workers: imax(workers, 1), seed: seed}
}

// Start launches the workers. They run until ctx is done or Stop is called.
func (e *Emitter) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		return ErrEmitterRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel

	e.wg.Add(e.workers)
	for wid := 0; wid < e.workers; wid++ {
		rng := NewRand(workerSeed(e.seed, wid))
		go e.run(ctx, rng)
	}
	// a parent cancellation must also reach parked workers
	go func() {
		<-ctx.Done()
		e.world.gate.wake()
	}()
	logger.Infof("Started %d emission workers", e.workers)
	return nil
}

func (e *Emitter) run(ctx context.Context, rng *rand.Rand) {
	defer e.wg.Done()
	var dirs []Vector2
	g := e.world.gate
	for g.enter(ctx) {
		dirs = e.world.tick(rng, dirs)
		e.ticks.Add(1)
		g.leave()
	}
}

// Stop cancels the workers and waits for them to exit. A tick in flight is
// finished, never aborted. Stop on a stopped emitter is a no-op.
func (e *Emitter) Stop() {
	e.mu.Lock()
	cancel := e.cancel
	e.cancel = nil
	e.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	e.world.gate.wake()
	e.wg.Wait()
	logger.Infof("Stopped emission workers after %d ticks", e.ticks.Load())
}

// Wait blocks until every worker has exited.
func (e *Emitter) Wait() { e.wg.Wait() }

// PauseAll blocks until every worker is idle; see World.PauseAll.
func (e *Emitter) PauseAll() { e.world.PauseAll() }

// ResumeAll lets workers tick again.
func (e *Emitter) ResumeAll() { e.world.ResumeAll() }

func (e *Emitter) Workers() int { return e.workers }

// Ticks counts completed ticks over the emitter's lifetime.
func (e *Emitter) Ticks() int64 { return e.ticks.Load() }
