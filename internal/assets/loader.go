package assets

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/text"
	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/internal/logger"
)

// ErrClosed is returned by loads requested after Close.
var ErrClosed = errors.New("assets: loader closed")

// Loader reads and decodes assets on a pool of worker goroutines. Decoded
// results wait in a queue until Poll applies them.
type Loader struct {
	manager *Manager
	log     *zap.Logger

	jobs      chan func()
	wg        sync.WaitGroup
	closeOnce sync.Once
	closed    chan struct{}

	mu      sync.Mutex
	ready   []func()
	pending int
}

// NewLoader starts workers reading from m.
func NewLoader(m *Manager, workers int) *Loader {
	workers = max(workers, 1)
	l := &Loader{
		manager: m,
		log:     logger.Named("assets"),
		jobs:    make(chan func(), 64),
		closed:  make(chan struct{}),
	}
	l.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go l.work()
	}
	return l
}

func (l *Loader) work() {
	defer l.wg.Done()
	for job := range l.jobs {
		job()
	}
}

// Load reads name and decodes it off the calling goroutine. The returned
// future resolves during a later Poll.
func Load[T any](l *Loader, name string, decode func(name string, data []byte) (T, error)) *Future[T] {
	f := &Future[T]{name: name}

	l.mu.Lock()
	l.pending++
	l.mu.Unlock()

	job := func() {
		var v T
		data, err := l.manager.Load(name)
		if err == nil {
			v, err = decode(name, data)
		}
		l.complete(func() {
			if err != nil {
				l.log.Debug("asset load failed", zap.String("name", name), zap.Error(err))
			} else {
				l.log.Debug("asset loaded", zap.String("name", name))
			}
			f.resolve(v, err)
		})
	}

	select {
	case <-l.closed:
		l.complete(func() {
			var zero T
			f.resolve(zero, ErrClosed)
		})
	default:
		l.jobs <- job
	}
	return f
}

// LoadBytes loads a file without decoding it.
func (l *Loader) LoadBytes(name string) *Future[[]byte] {
	return Load(l, name, func(_ string, data []byte) ([]byte, error) { return data, nil })
}

// LoadTexture loads and decodes an image.
func (l *Loader) LoadTexture(name string) *Future[*texture.Image] {
	return Load(l, name, texture.Decode)
}

// LoadFont loads and parses a TrueType or OpenType font.
func (l *Loader) LoadFont(name string) *Future[*text.Font] {
	return Load(l, name, text.ParseFont)
}

func (l *Loader) complete(apply func()) {
	l.mu.Lock()
	l.ready = append(l.ready, apply)
	l.mu.Unlock()
}

// Poll resolves every completed load and runs its callbacks on the calling
// goroutine. It returns how many futures were resolved.
func (l *Loader) Poll() int {
	l.mu.Lock()
	ready := l.ready
	l.ready = nil
	l.pending -= len(ready)
	l.mu.Unlock()

	for _, apply := range ready {
		apply()
	}
	return len(ready)
}

// Pending returns the number of loads not yet resolved by Poll.
func (l *Loader) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}

// Close stops the workers after in-flight loads finish. Completed results
// can still be collected with Poll. Close must not race with Load.
func (l *Loader) Close() {
	l.closeOnce.Do(func() {
		close(l.closed)
		close(l.jobs)
	})
	l.wg.Wait()
}
