package ws

// CloseCode is a status code carried by a Close frame payload.
type CloseCode uint16

const (
	CloseNormal          CloseCode = 1000
	CloseGoingAway       CloseCode = 1001
	CloseProtocolError   CloseCode = 1002
	CloseUnsupportedData CloseCode = 1003
	CloseInvalidPayload  CloseCode = 1007
	ClosePolicyViolation CloseCode = 1008
	CloseTooLarge        CloseCode = 1009
	CloseInternalError   CloseCode = 1011
)

// ProtocolError carries the close code a peer should be dismissed with when
// the error reaches the connection. Errors are compared by value, the same
// way the http/status ones are.
type ProtocolError struct {
	Message string
	Code    CloseCode
}

func NewError(code CloseCode, message string) error {
	return ProtocolError{
		Code:    code,
		Message: message,
	}
}

func (p ProtocolError) Error() string {
	return p.Message
}

var (
	ErrReservedBits      = NewError(CloseProtocolError, "reserved header bits are set")
	ErrReservedOpcode    = NewError(CloseProtocolError, "reserved opcode")
	ErrFragmentedControl = NewError(CloseProtocolError, "fragmented control frame")
	ErrControlTooLarge   = NewError(CloseProtocolError, "control frame payload exceeds 125 bytes")
	ErrUnmaskedFrame     = NewError(CloseProtocolError, "client frame is not masked")
	ErrMaskedFrame       = NewError(CloseProtocolError, "server frame is masked")
	ErrFrameTooLarge     = NewError(CloseTooLarge, "frame does not fit the buffer")
	ErrBadClosePayload   = NewError(CloseProtocolError, "malformed close frame payload")
	ErrHandshake         = NewError(CloseProtocolError, "malformed upgrade request")
)
