package image

import "sync"

// Pool is a thread-safe pool for reusing decoded pixel memory.
//
// Pool groups slices by the dimensions and channel count they were allocated
// for, so a decoder that repeatedly loads same-sized images reuses memory
// instead of allocating.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][][]byte
	maxSize int // max slices per bucket
}

// poolKey identifies a bucket of identically shaped pixel memory.
type poolKey struct {
	width    int
	height   int
	channels int
}

// NewPool creates a new pool with the given maximum slices per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][][]byte),
		maxSize: maxPerBucket,
	}
}

// Get returns zeroed memory for a tightly packed width x height x channels
// image, reusing a pooled slice when one is available.
func (p *Pool) Get(width, height, channels int) []byte {
	key := poolKey{width: width, height: height, channels: channels}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		pix := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		clear(pix)
		return pix
	}
	p.mu.Unlock()

	return make([]byte, ByteSize(width, height, channels))
}

// Put returns memory obtained from Get with the same shape.
// Slices of the wrong length, nil slices and overflow are discarded.
func (p *Pool) Put(pix []byte, width, height, channels int) {
	if pix == nil || len(pix) != ByteSize(width, height, channels) {
		return
	}

	key := poolKey{width: width, height: height, channels: channels}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, pix)
}

// Len returns the number of pooled slices across all buckets.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

// defaultPool backs DefaultDecoder.
var defaultPool = NewPool(8)
