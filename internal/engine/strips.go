package engine

import "sync"

// span is a half-open column range [start, end) owned by one strip worker.
type span struct{ start, end int }

// partitionStrips splits width columns into count contiguous strips. The
// last strip absorbs the remainder, so the spans cover [0, width) exactly
// once.
func partitionStrips(width, count int) []span {
	if width <= 0 {
		return nil
	}
	count = clampInt(count, 1, width)
	per := width / count
	spans := make([]span, count)
	for i := range spans {
		spans[i] = span{start: i * per, end: (i + 1) * per}
	}
	spans[count-1].end = width
	return spans
}

// stripPool runs one persistent goroutine per strip. run hands every
// worker the same job, each with its own strip index, and returns once all
// of them have finished.
type stripPool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	workers int
	step    int
	pending int
	closed  bool
	job     func(index int)
}

func newStripPool(workers int) *stripPool {
	p := &stripPool{workers: workers}
	p.cond = sync.NewCond(&p.mu)
	for i := 0; i < workers; i++ {
		go p.workerLoop(i)
	}
	return p
}

func (p *stripPool) workerLoop(index int) {
	lastStep := 0
	p.mu.Lock()
	for {
		for p.step == lastStep && !p.closed {
			p.cond.Wait()
		}
		if p.closed {
			p.mu.Unlock()
			return
		}
		lastStep = p.step
		job := p.job
		p.mu.Unlock()

		job(index)

		p.mu.Lock()
		p.pending--
		if p.pending == 0 {
			p.cond.Broadcast()
		}
	}
}

// run executes job(0..workers-1) in parallel and waits for completion.
// After close it runs the job inline.
func (p *stripPool) run(job func(index int)) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		for i := 0; i < p.workers; i++ {
			job(i)
		}
		return
	}
	p.job = job
	p.pending = p.workers
	p.step++
	p.cond.Broadcast()
	for p.pending > 0 {
		p.cond.Wait()
	}
	p.job = nil
	p.mu.Unlock()
}

// close stops the workers. It must not race with run.
func (p *stripPool) close() {
	p.mu.Lock()
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()
}
