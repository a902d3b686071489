package pixel

import "sync"

// Pool provides sync.Pool-based snapshot reuse so repeated filter calls do
// not allocate a full frame copy each time.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed Buffer of the requested geometry.
// Callers must return it via Put when done.
func (p *Pool) Get(width, height int) *Buffer {
	b := p.pool.Get().(*Buffer)
	n := width * height * Channels
	if cap(b.pix) < n {
		b.pix = make([]byte, n)
	} else {
		b.pix = b.pix[:n]
		clear(b.pix)
	}
	b.width = width
	b.height = height
	return b
}

// Snapshot returns a pooled copy of src.
func (p *Pool) Snapshot(src *Buffer) *Buffer {
	b := p.Get(src.width, src.height)
	copy(b.pix, src.pix)
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

var defaultPool = NewPool()

// Snapshot returns a copy of src from the package-level pool.
// Release it with [Release].
func Snapshot(src *Buffer) *Buffer {
	return defaultPool.Snapshot(src)
}

// Release returns a buffer obtained from [Snapshot] to the package-level pool.
func Release(b *Buffer) {
	defaultPool.Put(b)
}
