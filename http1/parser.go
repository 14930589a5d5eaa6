package http1

import (
	"bytes"

	"github.com/indigo-web/utils/uf"
	"github.com/indigo-web/weblite/buffer"
	"github.com/indigo-web/weblite/config"
	"github.com/indigo-web/weblite/http"
	"github.com/indigo-web/weblite/http/method"
	"github.com/indigo-web/weblite/http/proto"
	"github.com/indigo-web/weblite/http/status"
	"github.com/indigo-web/weblite/internal/strutil"
)

type parserState uint8

const (
	eStartLine parserState = iota + 1
	eHeaders
	eBody
	eDone
)

// Parser is a resumable request parser over the unread region of an input
// buffer. Each Parse call advances as far as the buffered bytes allow and
// commits consumed input at token (line) granularity: an unfinished token
// leaves the read position where it was, so re-invoking Parse after
// appending more bytes never double-consumes anything. The parser keeps no
// partial-token state of its own; the re-scan of an unfinished line on the
// next call is the price of staying allocation-free.
//
// All strings and slices placed into the request borrow from the input
// buffer.
type Parser struct {
	cfg               *config.Config
	request           *http.Request
	in                *buffer.Buffer
	state             parserState
	contentLength     int
	seenContentLength bool
}

func NewParser(cfg *config.Config, request *http.Request, in *buffer.Buffer) *Parser {
	return &Parser{
		cfg:     cfg,
		request: request,
		in:      in,
		state:   eStartLine,
	}
}

// Parse attempts to complete the request from the bytes buffered so far.
// done=false with a nil error means more input is needed; feed the buffer
// and call again. A non-nil error is fatal for the message and usually for
// the connection.
func (p *Parser) Parse() (done bool, err error) {
	for {
		switch p.state {
		case eStartLine:
			line, ok := p.nextLine()
			if !ok {
				return false, p.checkLineFits(p.cfg.RequestLine.MaxSize, status.ErrTooLongRequestLine)
			}
			if len(line) > p.cfg.RequestLine.MaxSize {
				return false, status.ErrTooLongRequestLine
			}
			if err = p.parseStartLine(line); err != nil {
				return false, err
			}

			p.state = eHeaders
		case eHeaders:
			line, ok := p.nextLine()
			if !ok {
				return false, p.checkLineFits(p.in.Cap(), status.ErrHeadersTooLarge)
			}
			if len(line) == 0 {
				if p.contentLength == 0 {
					p.state = eDone
					continue
				}
				if p.contentLength > p.in.Cap()-p.in.Consumed() {
					// the body can never be buffered completely
					return false, status.ErrBodyTooLarge
				}

				p.state = eBody
				continue
			}
			if err = p.parseHeaderLine(line); err != nil {
				return false, err
			}
		case eBody:
			body, ok := p.in.Consume(p.contentLength)
			if !ok {
				return false, nil
			}

			p.request.Body = body
			p.state = eDone
		case eDone:
			return true, nil
		}
	}
}

// Reset prepares the parser for the next request on the same buffer and
// request instance. The caller resets those two on its own, once the
// previous request is fully consumed.
func (p *Parser) Reset() {
	p.state = eStartLine
	p.contentLength = 0
	p.seenContentLength = false
}

// nextLine commits and returns the next complete line, CRLF stripped.
// Without a complete line it consumes nothing.
func (p *Parser) nextLine() (line []byte, ok bool) {
	unread := p.in.Unread()
	lf := bytes.IndexByte(unread, '\n')
	if lf == -1 {
		return nil, false
	}

	line = unread[:lf]
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}

	p.in.Advance(lf + 1)
	return line, true
}

// checkLineFits turns a pending line into overflow when it provably cannot
// be completed anymore: either it already exceeds the limit, or the buffer
// has no room left to ever receive the terminator.
func (p *Parser) checkLineFits(limit int, overflow error) error {
	if len(p.in.Unread()) > limit || p.in.Free() == 0 {
		return overflow
	}

	return nil
}

func (p *Parser) parseStartLine(line []byte) error {
	sp := bytes.IndexByte(line, ' ')
	if sp == -1 {
		return status.ErrBadRequest
	}

	p.request.Method = method.Parse(uf.B2S(line[:sp]))
	if p.request.Method == method.Unknown {
		return status.ErrBadRequest
	}

	rest := line[sp+1:]
	sp = bytes.IndexByte(rest, ' ')
	if sp < 1 {
		// either no protocol token, or an empty request target
		return status.ErrBadRequest
	}

	p.request.Path = uf.B2S(rest[:sp])
	p.request.Proto = proto.FromBytes(rest[sp+1:])
	if p.request.Proto == proto.Unknown {
		return status.ErrUnsupportedProtocol
	}

	return nil
}

func (p *Parser) parseHeaderLine(line []byte) error {
	colon := bytes.IndexByte(line, ':')
	if colon == -1 {
		return status.ErrBadRequest
	}

	key := strutil.TrimWS(uf.B2S(line[:colon]))
	value := strutil.TrimWS(uf.B2S(line[colon+1:]))
	if len(key) == 0 {
		return status.ErrBadRequest
	}

	if !p.request.Headers.Add(key, value) {
		return status.ErrTooManyHeaders
	}

	switch {
	case strutil.EqualFold(key, "content-length"):
		length, err := parseUint(value)
		if err != nil {
			return err
		}
		if p.seenContentLength && length != p.contentLength {
			return status.ErrBadRequest
		}
		if length > p.cfg.Body.MaxSize {
			return status.ErrBodyTooLarge
		}

		p.contentLength = length
		p.seenContentLength = true
		p.request.ContentLength = length
	case strutil.EqualFold(key, "transfer-encoding"):
		// recognized and rejected: the codec speaks identity only
		return status.ErrUnsupportedEncoding
	}

	return nil
}

// content lengths beyond this are unreasonable for a fixed buffer anyway,
// and the cutoff keeps the accumulation below overflow-free
const maxContentLength = 1 << 30

func parseUint(value string) (int, error) {
	if len(value) == 0 {
		return 0, status.ErrBadRequest
	}

	var n int
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c < '0' || c > '9' {
			return 0, status.ErrBadRequest
		}

		n = n*10 + int(c-'0')
		if n > maxContentLength {
			return 0, status.ErrBodyTooLarge
		}
	}

	return n, nil
}
