package graph

// Buffer groups the accessors (and, for buffer 0, the image bytes) that
// share one output binary blob. A Buffer carries no bytes itself — the
// writer derives them from its accessors' Data at pack time.
type Buffer struct {
	Common

	// URI, if non-empty, is a caller-pinned resource name that takes
	// precedence over the URI generator (spec §4.6).
	URI string

	handle Handle
}

func (b *Buffer) Handle() Handle { return b.handle }

// NewBuffer allocates a buffer and appends it to Root.Buffers.
func (r *Root) NewBuffer(name string) *Buffer {
	b := &Buffer{Common: Common{Name: name}}
	b.handle = Handle{Kind: KindBuffer, Index: uint32(len(r.Buffers))}
	r.Buffers = append(r.Buffers, b)
	return b
}
