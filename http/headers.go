package http

import (
	"github.com/indigo-web/weblite/internal/strutil"
)

// Header is a single (name, value) pair. When produced by the parser, both
// strings borrow from the input buffer and live only until it is reset.
type Header struct {
	Key, Value string
}

// Headers is a bounded ordered sequence of header fields. The capacity is
// fixed at construction; Add reports an overflow instead of growing or
// silently dropping fields. Lookup is case-insensitive and linear, which
// beats hashing at the field counts the codec permits.
type Headers struct {
	fields []Header
}

func NewHeaders(maxNumber int) Headers {
	return Headers{fields: make([]Header, 0, maxNumber)}
}

// Add appends a field, returning false if the sequence is full.
func (h *Headers) Add(key, value string) (ok bool) {
	if len(h.fields) == cap(h.fields) {
		return false
	}

	h.fields = append(h.fields, Header{Key: key, Value: value})
	return true
}

// Get returns the first value for the key and whether it was found at all.
func (h *Headers) Get(key string) (value string, found bool) {
	for _, field := range h.fields {
		if strutil.EqualFold(field.Key, key) {
			return field.Value, true
		}
	}

	return "", false
}

// Value returns the first value for the key, or an empty string.
func (h *Headers) Value(key string) string {
	value, _ := h.Get(key)
	return value
}

// Has reports whether at least one field with the key is present.
func (h *Headers) Has(key string) bool {
	_, found := h.Get(key)
	return found
}

// All exposes the fields in their wire order for iteration.
func (h *Headers) All() []Header {
	return h.fields
}

func (h *Headers) Len() int {
	return len(h.fields)
}

// Reset drops all fields, keeping the capacity.
func (h *Headers) Reset() {
	h.fields = h.fields[:0]
}
