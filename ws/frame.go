package ws

// Opcode enumerates the frame types defined by RFC 6455, section 5.2.
// Values 0x3..0x7 and 0xB..0xF are reserved and rejected at decode time.
type Opcode uint8

const (
	Continuation Opcode = 0x0
	Text         Opcode = 0x1
	Binary       Opcode = 0x2
	Close        Opcode = 0x8
	Ping         Opcode = 0x9
	Pong         Opcode = 0xA
)

// IsControl reports whether the opcode designates a control frame. Control
// frames must not be fragmented and carry at most MaxControlPayload bytes.
func (o Opcode) IsControl() bool {
	return o&0x8 != 0
}

// Known reports whether the opcode is defined by the protocol.
func (o Opcode) Known() bool {
	switch o {
	case Continuation, Text, Binary, Close, Ping, Pong:
		return true
	default:
		return false
	}
}

func (o Opcode) String() string {
	switch o {
	case Continuation:
		return "continuation"
	case Text:
		return "text"
	case Binary:
		return "binary"
	case Close:
		return "close"
	case Ping:
		return "ping"
	case Pong:
		return "pong"
	default:
		return "reserved"
	}
}

// MaxControlPayload is the greatest payload a control frame may carry,
// fixed by RFC 6455, section 5.5.
const MaxControlPayload = 125

// Frame is a single decoded or to-be-encoded protocol unit. On decode the
// payload borrows from the input buffer and is already unmasked; fin and
// opcode are surfaced untouched, so a caller reassembling a fragmented
// message gets everything it needs while the codec itself stays free of
// unbounded buffering. On encode Masked and MaskKey are ignored: the
// codec's role alone decides the masking direction.
type Frame struct {
	Fin     bool
	Opcode  Opcode
	Masked  bool
	MaskKey [4]byte
	Payload []byte
}
