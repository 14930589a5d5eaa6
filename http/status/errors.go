package status

// HTTPError carries the status code a server should answer with when the
// error reaches the wire. Errors are compared by value, so the predefined
// ones below work with plain equality and errors.Is.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	// malformed input
	ErrBadRequest           = NewError(BadRequest, "malformed request")
	ErrMethodNotImplemented = NewError(NotImplemented, "request method is not supported")
	ErrUnsupportedProtocol  = NewError(HTTPVersionNotSupported, "protocol version is not supported")

	// recognized but rejected features
	ErrUnsupportedEncoding = NewError(NotImplemented, "transfer encodings are not supported")

	// fixed-capacity limits exceeded on the read path
	ErrTooLongRequestLine = NewError(RequestURITooLong, "request line is too long")
	ErrTooManyHeaders     = NewError(RequestHeaderFieldsTooLarge, "too many headers")
	ErrHeadersTooLarge    = NewError(RequestHeaderFieldsTooLarge, "header section does not fit the buffer")
	ErrBodyTooLarge       = NewError(RequestEntityTooLarge, "request body is too large")

	// write path
	ErrOverflow          = NewError(InternalServerError, "output buffer capacity exceeded")
	ErrInvalidStatusCode = NewError(InternalServerError, "status code is out of the 100..599 range")
)
