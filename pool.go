package reportkit

import (
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one exporter is available.
	MinPoolSize = 1

	// MaxPoolSize caps concurrent exports to bound peak memory: a large
	// document holds its full page list and PDF buffer in memory.
	MaxPoolSize = 8
)

// ErrPoolClosed is returned when acquiring from a closed pool.
var ErrPoolClosed = errors.New("exporter pool is closed")

// ExporterPool manages a bounded set of Exporter instances for batch
// processing. Exporters are created lazily on first acquire.
type ExporterPool struct {
	size    int
	opts    []Option
	sem     chan *Exporter
	mu      sync.Mutex
	created int
	closed  bool
}

// NewExporterPool creates a pool with capacity for n Exporter instances,
// each configured with opts. Exporters are created lazily when acquired.
func NewExporterPool(n int, opts ...Option) *ExporterPool {
	if n < MinPoolSize {
		n = MinPoolSize
	}
	return &ExporterPool{
		size: n,
		opts: opts,
		sem:  make(chan *Exporter, n),
	}
}

// DefaultPoolSize returns a pool size derived from the CPU count,
// clamped to [MinPoolSize, MaxPoolSize].
func DefaultPoolSize() int {
	n := runtime.NumCPU()
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}

// Acquire gets an exporter from the pool, creating one if capacity
// allows. Blocks if all exporters are in use.
func (p *ExporterPool) Acquire() (*Exporter, error) {
	// Try to get an existing exporter (non-blocking)
	select {
	case exp := <-p.sem:
		return exp, nil
	default:
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		exp, err := NewExporter(p.opts...)
		if err != nil {
			// Give the slot back so a later acquire can retry.
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}
		return exp, nil
	}
	p.mu.Unlock()

	// All exporters created, wait for one to be released.
	return <-p.sem, nil
}

// Release returns an exporter to the pool. Releasing nil is a no-op.
func (p *ExporterPool) Release(exp *Exporter) {
	if exp == nil {
		return
	}
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return
	}
	select {
	case p.sem <- exp:
	default:
		// Pool full; drop the extra exporter.
	}
}

// Size returns the pool capacity.
func (p *ExporterPool) Size() int {
	return p.size
}

// Close marks the pool closed. Outstanding exporters remain usable but
// cannot be re-acquired once released.
func (p *ExporterPool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}
