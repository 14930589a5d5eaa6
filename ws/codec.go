package ws

import (
	"crypto/rand"
	"encoding/binary"
	"math"

	"github.com/indigo-web/weblite/buffer"
)

// Role determines the masking direction: clients mask what they send and
// require unmasked input, servers require masked input and never mask.
type Role uint8

const (
	Server Role = iota + 1
	Client
)

// MaskSource supplies a fresh masking key per outgoing frame in the Client
// role.
type MaskSource func() [4]byte

func randomMask() (key [4]byte) {
	_, _ = rand.Read(key[:])
	return key
}

// Codec encodes and decodes frames over fixed buffers. It is stateless per
// call: fragmentation bookkeeping and the Open/Closing/Closed connection
// state machine belong to the caller.
type Codec struct {
	role Role
	mask MaskSource
}

func NewCodec(role Role) Codec {
	return Codec{role: role, mask: randomMask}
}

// WithMaskSource replaces the masking key source, which the Server role
// never consults.
func (c Codec) WithMaskSource(mask MaskSource) Codec {
	c.mask = mask
	return c
}

// Decode attempts to decode one whole frame from the unread region of in.
// done=false with a nil error means the frame is not fully buffered yet:
// nothing was consumed, append more bytes and call again. On success the
// frame payload borrows from the buffer and is already unmasked in place.
func (c Codec) Decode(in *buffer.Buffer) (frame Frame, done bool, err error) {
	head, ok := in.Peek(2)
	if !ok {
		return frame, false, nil
	}

	if head[0]&0x70 != 0 {
		return frame, false, ErrReservedBits
	}

	fin := head[0]&0x80 != 0
	opcode := Opcode(head[0] & 0x0F)
	if !opcode.Known() {
		return frame, false, ErrReservedOpcode
	}

	masked := head[1]&0x80 != 0
	switch c.role {
	case Server:
		if !masked {
			return frame, false, ErrUnmaskedFrame
		}
	case Client:
		if masked {
			return frame, false, ErrMaskedFrame
		}
	}

	indicator := head[1] & 0x7F
	if opcode.IsControl() {
		if !fin {
			return frame, false, ErrFragmentedControl
		}
		if indicator > MaxControlPayload {
			return frame, false, ErrControlTooLarge
		}
	}

	headerLen := 2
	switch indicator {
	case 126:
		headerLen += 2
	case 127:
		headerLen += 8
	}
	if masked {
		headerLen += 4
	}

	header, ok := in.Peek(headerLen)
	if !ok {
		return frame, false, nil
	}

	var length uint64
	switch indicator {
	case 126:
		length = uint64(binary.BigEndian.Uint16(header[2:]))
	case 127:
		length = binary.BigEndian.Uint64(header[2:])
	default:
		length = uint64(indicator)
	}

	// a frame that cannot ever fit the remaining capacity will never
	// complete, so reject it right away instead of starving the caller
	if length > uint64(in.Cap()-in.Consumed()-headerLen) {
		return frame, false, ErrFrameTooLarge
	}

	whole, ok := in.Peek(headerLen + int(length))
	if !ok {
		return frame, false, nil
	}
	in.Advance(headerLen + int(length))

	frame = Frame{
		Fin:     fin,
		Opcode:  opcode,
		Masked:  masked,
		Payload: whole[headerLen:],
	}
	if masked {
		copy(frame.MaskKey[:], whole[headerLen-4:headerLen])
		Mask(frame.Payload, frame.MaskKey)
	}

	return frame, true, nil
}

// Encode writes the frame into out, masking the payload if the codec
// operates in the Client role. The capacity is verified upfront: on
// ErrFrameTooLarge the buffer is left untouched.
func (c Codec) Encode(f Frame, out *buffer.Buffer) error {
	if !f.Opcode.Known() {
		return ErrReservedOpcode
	}
	if f.Opcode.IsControl() {
		if !f.Fin {
			return ErrFragmentedControl
		}
		if len(f.Payload) > MaxControlPayload {
			return ErrControlTooLarge
		}
	}

	headerLen := 2
	switch {
	case len(f.Payload) > math.MaxUint16:
		headerLen += 8
	case len(f.Payload) > 125:
		headerLen += 2
	}

	masking := c.role == Client
	if masking {
		headerLen += 4
	}
	if headerLen+len(f.Payload) > out.Free() {
		return ErrFrameTooLarge
	}

	b0 := byte(f.Opcode) & 0x0F
	if f.Fin {
		b0 |= 0x80
	}

	var maskBit byte
	if masking {
		maskBit = 0x80
	}

	// the appends below cannot fail: the capacity was verified upfront
	out.AppendByte(b0)

	var ext [8]byte
	switch {
	case len(f.Payload) > math.MaxUint16:
		out.AppendByte(maskBit | 127)
		binary.BigEndian.PutUint64(ext[:], uint64(len(f.Payload)))
		out.Append(ext[:])
	case len(f.Payload) > 125:
		out.AppendByte(maskBit | 126)
		binary.BigEndian.PutUint16(ext[:2], uint16(len(f.Payload)))
		out.Append(ext[:2])
	default:
		out.AppendByte(maskBit | byte(len(f.Payload)))
	}

	if !masking {
		out.Append(f.Payload)
		return nil
	}

	key := c.mask()
	out.Append(key[:])
	// the caller's payload stays intact: bytes are XORed on the way out
	for i, b := range f.Payload {
		out.AppendByte(b ^ key[i&3])
	}

	return nil
}

// Mask XORs the payload in place with the key, byte i with key[i mod 4].
// Masking is an involution: applying it twice restores the input.
func Mask(payload []byte, key [4]byte) {
	for i := range payload {
		payload[i] ^= key[i&3]
	}
}
