package worker

import (
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// ErrClosed is returned by Submit once the pool has been closed.
var ErrClosed = errors.New("worker pool closed")

// Pool runs submitted functions on a fixed set of goroutines. A panicking job is recovered,
// logged and reported to sentry; the worker keeps running.
type Pool struct {
	log  logrus.FieldLogger
	jobs chan func()

	mu     deadlock.RWMutex
	closed *atomic.Bool
	wg     sync.WaitGroup
}

// New starts a pool of the given size. A size below one uses one worker per CPU.
func New(log logrus.FieldLogger, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{
		log:    log,
		jobs:   make(chan func(), workers),
		closed: atomic.NewBool(false),
	}
	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for f := range p.jobs {
		p.run(f)
	}
}

func (p *Pool) run(f func()) {
	defer func() {
		if err := recover(); err != nil {
			if p.log != nil {
				p.log.Errorf("worker job panic: %v", err)
			}
			hub := sentry.CurrentHub().Clone()
			hub.Recover(err)
			hub.Flush(time.Second * 5)
		}
	}()
	f()
}

// Submit queues f to run on a worker. It blocks while the queue is full.
func (p *Pool) Submit(f func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		return ErrClosed
	}
	p.jobs <- f
	return nil
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	return p.closed.Load()
}

// Close stops accepting jobs and waits for the queued ones to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed.Swap(true) {
		p.mu.Unlock()
		return
	}
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
}
