package app

import (
	"sync"

	"gamedebug/debug"
)

// checkpointEvery is how many jobs a worker runs between persistent records.
const checkpointEvery = 120

// workerPool stands in for simulation threads: every frame each worker runs one
// job concurrently with the others and records into the shared instrument.
type workerPool struct {
	in      *debug.Instrument
	jobs    []chan uint64
	done    sync.WaitGroup
	running sync.WaitGroup
	once    sync.Once
}

func newWorkerPool(in *debug.Instrument, n int) *workerPool {
	p := &workerPool{in: in}
	for id := 0; id < n; id++ {
		ch := make(chan uint64)
		p.jobs = append(p.jobs, ch)
		p.running.Add(1)
		go p.worker(id, ch)
	}
	return p
}

func (p *workerPool) worker(id int, jobs <-chan uint64) {
	defer p.running.Done()
	var count, acc uint64
	for frame := range jobs {
		count++
		// a small deterministic workload
		acc = acc*31 + frame + uint64(id)
		p.in.Msgf("worker %d: job %d acc=%04x", id, count, acc&0xffff)
		if count%checkpointEvery == 0 {
			p.in.Persistf("worker %d: %d jobs", id, count)
		}
		p.done.Done()
	}
}

// run hands frame to every worker and waits until all of them have recorded.
func (p *workerPool) run(frame uint64) {
	if len(p.jobs) == 0 {
		return
	}
	p.done.Add(len(p.jobs))
	for _, ch := range p.jobs {
		ch <- frame
	}
	p.done.Wait()
}

func (p *workerPool) close() {
	p.once.Do(func() {
		for _, ch := range p.jobs {
			close(ch)
		}
		p.running.Wait()
	})
}
