package canvas

import intImage "github.com/gogpu/canvas/internal/image"

// owner is the lifetime strategy behind a Canvas's memory.
// The set of implementations is closed: unowned, imageOwner and heapOwner.
type owner interface {
	// release gives the memory back. Calling it again is a no-op.
	release()
	kind() string
}

// unowned memory belongs to the caller of New.
type unowned struct{}

func (unowned) release()     {}
func (unowned) kind() string { return "unowned" }

// imageOwner holds pixels produced by a Decoder and frees them through the
// same Decoder exactly once.
type imageOwner struct {
	decoder intImage.Decoder
	pixels  *intImage.Decoded
}

func (o *imageOwner) release() {
	if o.pixels == nil {
		return
	}
	o.decoder.Free(o.pixels)
	o.pixels = nil
}

func (o *imageOwner) kind() string { return "image" }

// heapOwner holds Go-allocated pixels; the garbage collector reclaims them
// once the reference is dropped.
type heapOwner struct {
	pixels []byte
}

func (o *heapOwner) release()     { o.pixels = nil }
func (o *heapOwner) kind() string { return "heap" }
