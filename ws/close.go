package ws

import "encoding/binary"

// ClosePayload assembles a Close frame payload from a code and an optional
// reason into dst, returning the filled prefix. Fails (ok=false) when dst
// cannot hold it or the result would exceed MaxControlPayload.
func ClosePayload(code CloseCode, reason string, dst []byte) (payload []byte, ok bool) {
	size := 2 + len(reason)
	if size > MaxControlPayload || size > len(dst) {
		return nil, false
	}

	binary.BigEndian.PutUint16(dst, uint16(code))
	copy(dst[2:], reason)
	return dst[:size], true
}

// ParseClosePayload splits a received Close frame payload into the code and
// the reason bytes. An empty payload is valid and reported as CloseNormal;
// a single-byte payload is malformed.
func ParseClosePayload(payload []byte) (code CloseCode, reason []byte, err error) {
	switch {
	case len(payload) == 0:
		return CloseNormal, nil, nil
	case len(payload) == 1:
		return 0, nil, ErrBadClosePayload
	default:
		return CloseCode(binary.BigEndian.Uint16(payload)), payload[2:], nil
	}
}
