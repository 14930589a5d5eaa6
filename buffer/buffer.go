package buffer

// Buffer is a bounds-checked view over a caller-owned fixed-capacity byte
// region with independent write (fill) and read (pos) cursors. All parsers
// and codecs in this module borrow slices from it instead of copying, so a
// value produced from a Buffer must not outlive a Reset of that Buffer.
// No operation ever reallocates; the capacity is fixed for the whole
// lifetime and equals len of the region passed to New.
type Buffer struct {
	memory []byte
	filled int
	pos    int
}

// New wraps the provided region. The Buffer takes no ownership of it beyond
// writing into it, and performs no allocations of its own.
func New(mem []byte) Buffer {
	return Buffer{memory: mem}
}

// Append writes data after the already filled part, returning false if the
// remaining capacity is insufficient. The data is never truncated: either
// all of it is written, or none.
func (b *Buffer) Append(data []byte) (ok bool) {
	if b.filled+len(data) > len(b.memory) {
		return false
	}

	copy(b.memory[b.filled:], data)
	b.filled += len(data)
	return true
}

// AppendString works exactly like Append, but accepts a string.
func (b *Buffer) AppendString(data string) (ok bool) {
	if b.filled+len(data) > len(b.memory) {
		return false
	}

	copy(b.memory[b.filled:], data)
	b.filled += len(data)
	return true
}

// AppendByte writes a single byte, returning false if the buffer is full.
func (b *Buffer) AppendByte(c byte) (ok bool) {
	if b.filled >= len(b.memory) {
		return false
	}

	b.memory[b.filled] = c
	b.filled++
	return true
}

// Peek returns a view of the next n unread bytes without consuming them,
// or false if fewer than n bytes are available.
func (b *Buffer) Peek(n int) ([]byte, bool) {
	if b.pos+n > b.filled {
		return nil, false
	}

	return b.memory[b.pos : b.pos+n], true
}

// Consume returns a view of the next n unread bytes and advances the read
// position past them, or false (consuming nothing) if fewer than n bytes
// are available.
func (b *Buffer) Consume(n int) ([]byte, bool) {
	view, ok := b.Peek(n)
	if ok {
		b.pos += n
	}

	return view, ok
}

// Advance moves the read position n bytes forward, clamped to the filled
// length.
func (b *Buffer) Advance(n int) {
	b.pos += n
	if b.pos > b.filled {
		b.pos = b.filled
	}
}

// Unread exposes the unconsumed tail. The view stays valid until Reset.
func (b *Buffer) Unread() []byte {
	return b.memory[b.pos:b.filled]
}

// Len returns the number of filled bytes, both consumed and not.
func (b *Buffer) Len() int {
	return b.filled
}

// Consumed returns the current read position.
func (b *Buffer) Consumed() int {
	return b.pos
}

// Cap returns the fixed capacity of the underlying region.
func (b *Buffer) Cap() int {
	return len(b.memory)
}

// Free returns the remaining writable capacity.
func (b *Buffer) Free() int {
	return len(b.memory) - b.filled
}

// Reset drops all content and repositions both cursors to the start. Views
// previously borrowed from the buffer must not be used past this point.
func (b *Buffer) Reset() {
	b.filled = 0
	b.pos = 0
}
