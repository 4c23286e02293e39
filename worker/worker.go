package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"

	"github.com/stride-sim/stride/player"
	"github.com/stride-sim/stride/simulation"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	defer sentry.Recover()

	for {
		f, ok := <-workerQueue
		if !ok {
			return
		}

		f()
	}
}

// To be used by a function that may be CPU intensive.
func Submit(f func()) {
	workerQueue <- f
}

// AdvanceAll ticks every actor once across the pool and blocks until all of
// them finished. Each actor is owned by exactly one job per call, so the
// simulator's no-overlap rule holds without locking.
func AdvanceAll(s *simulation.Simulator, actors []*player.Actor) {
	var wg sync.WaitGroup
	wg.Add(len(actors))
	for _, a := range actors {
		a := a
		Submit(func() {
			defer wg.Done()
			s.Advance(a)
		})
	}
	wg.Wait()
}
