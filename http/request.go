package http

import (
	"github.com/indigo-web/weblite/config"
	"github.com/indigo-web/weblite/http/method"
	"github.com/indigo-web/weblite/http/proto"
)

// Request is the structured form of a single parsed request. All string and
// byte-slice fields borrow from the input buffer the request was parsed
// from, so the value must be consumed before that buffer is reset or
// overwritten. The instance itself is reusable across requests via Reset.
type Request struct {
	// Method is an enum of the request method.
	Method method.Method
	// Path is the raw request target as it appeared on the wire.
	Path string
	// Proto is the protocol version of the request.
	Proto proto.Proto
	// Headers holds the header fields in wire order, capped by
	// config.Headers.MaxNumber.
	Headers Headers
	// ContentLength is the parsed Content-Length value, zero if absent.
	ContentLength int
	// Body is non-nil only when Content-Length was given and that many
	// bytes were available in the buffer.
	Body []byte
}

func NewRequest(cfg *config.Config) *Request {
	return &Request{
		Headers: NewHeaders(cfg.Headers.MaxNumber),
	}
}

// Host returns the Host header value, if any.
func (r *Request) Host() string {
	return r.Headers.Value("host")
}

// ContentType returns the Content-Type header value, if any.
func (r *Request) ContentType() string {
	return r.Headers.Value("content-type")
}

// UserAgent returns the User-Agent header value, if any.
func (r *Request) UserAgent() string {
	return r.Headers.Value("user-agent")
}

// Reset prepares the instance for the next request. Must be called no
// earlier than the borrowed fields are done with.
func (r *Request) Reset() {
	r.Method = method.Unknown
	r.Path = ""
	r.Proto = proto.Unknown
	r.Headers.Reset()
	r.ContentLength = 0
	r.Body = nil
}
