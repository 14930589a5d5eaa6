package ws

import (
	"crypto/sha1"
	"encoding/base64"

	"github.com/indigo-web/utils/uf"
	"github.com/indigo-web/weblite/http"
	"github.com/indigo-web/weblite/http/method"
	"github.com/indigo-web/weblite/http/status"
	"github.com/indigo-web/weblite/internal/strutil"
)

// AcceptGUID is the fixed string RFC 6455 appends to the client key before
// hashing it into the Sec-WebSocket-Accept value.
const AcceptGUID = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"

// Digest computes the accept value for a client key, writing it into dst
// and returning the number of bytes written. It is injected so the codec
// itself stays independent of any particular hash implementation; the
// default is SHA1Accept.
type Digest func(key string, dst []byte) int

const acceptLength = 28 // base64 of a sha1 digest

var acceptGUID = []byte(AcceptGUID)

// SHA1Accept is the standard accept computation: base64 of
// sha1(key + AcceptGUID).
func SHA1Accept(key string, dst []byte) int {
	h := sha1.New()
	h.Write([]byte(key))
	h.Write(acceptGUID)

	var sum [sha1.Size]byte
	base64.StdEncoding.Encode(dst, h.Sum(sum[:0]))
	return base64.StdEncoding.EncodedLen(sha1.Size)
}

// Handshake validates upgrade requests and prepares the 101 reply for the
// response serializer. A single instance serves a connection; the accept
// value it hands to the response lives inside the instance and stays valid
// until the next Upgrade call.
type Handshake struct {
	digest Digest
	accept [acceptLength]byte
}

func NewHandshake() *Handshake {
	return &Handshake{digest: SHA1Accept}
}

// WithDigest replaces the accept computation.
func (h *Handshake) WithDigest(digest Digest) *Handshake {
	h.digest = digest
	return h
}

// Upgrade checks the preconditions of RFC 6455, section 4.2.1 — a GET with
// Upgrade: websocket, Connection containing the Upgrade token and a
// Sec-WebSocket-Key — and on success fills resp with the 101 Switching
// Protocols reply. On ErrHandshake the response is left untouched and the
// caller is expected to answer with an ordinary 4xx.
func (h *Handshake) Upgrade(req *http.Request, resp *http.Response) error {
	if req.Method != method.GET {
		return ErrHandshake
	}
	if !strutil.EqualFold(req.Headers.Value("upgrade"), "websocket") {
		return ErrHandshake
	}
	if !strutil.HasToken(req.Headers.Value("connection"), "upgrade") {
		return ErrHandshake
	}

	key, found := req.Headers.Get("sec-websocket-key")
	if !found || len(key) == 0 {
		return ErrHandshake
	}

	n := h.digest(key, h.accept[:])

	resp.WithCode(status.SwitchingProtocols).
		WithHeader("Upgrade", "websocket").
		WithHeader("Connection", "Upgrade").
		WithHeader("Sec-WebSocket-Accept", uf.B2S(h.accept[:n]))

	return nil
}
