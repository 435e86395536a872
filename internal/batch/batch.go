// Package batch runs independent event resolutions concurrently. A
// resolution is pure and touches only the state it was given, so a
// batch of unrelated (state, event) pairs — e.g. simulating candidate
// moves for an AI, or replaying many games for analysis — can be
// resolved in parallel with no locking. Jobs are handed to a fixed pool
// of worker goroutines through a channel.
package batch

import (
	"runtime"
	"sync"

	"github.com/kestrelgames/chesskernel/internal/board"
	"github.com/kestrelgames/chesskernel/internal/engine"
)

// Job is one independent resolution to run: events against state, using
// listeners.
type Job struct {
	State     *board.GameState
	Events    []engine.Event
	Listeners []engine.Listener
}

// Result pairs a Job's index (so callers can correlate results back to
// their input slice) with its Resolution.
type Result struct {
	Index      int
	Resolution engine.Resolution
}

// NumWorkers is the number of goroutines Run spawns (capped at the
// number of jobs); it defaults to GOMAXPROCS.
var NumWorkers = runtime.GOMAXPROCS(0)

// Run resolves every job in jobs concurrently across NumWorkers workers
// and returns their results in the same order as jobs, regardless of
// which worker finished first. sink, if non-nil, is passed to every
// resolution's engine.Resolve call.
func Run(jobs []Job, sink engine.DiagnosticSink) []Result {
	results := make([]Result, len(jobs))

	jobCh := make(chan int, len(jobs))
	for i := range jobs {
		jobCh <- i
	}
	close(jobCh)

	var wg sync.WaitGroup
	workers := NumWorkers
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers < 1 {
		workers = 1
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go runWorker(jobCh, jobs, results, sink, &wg)
	}
	wg.Wait()

	return results
}

func runWorker(jobCh <-chan int, jobs []Job, results []Result, sink engine.DiagnosticSink, wg *sync.WaitGroup) {
	defer wg.Done()
	for i := range jobCh {
		job := jobs[i]
		resolution := engine.Resolve(job.Events, job.State, job.Listeners, sink)
		results[i] = Result{Index: i, Resolution: resolution}
	}
}
