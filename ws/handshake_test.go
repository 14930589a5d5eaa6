package ws

import (
	"testing"

	"github.com/indigo-web/weblite/buffer"
	"github.com/indigo-web/weblite/config"
	"github.com/indigo-web/weblite/http"
	"github.com/indigo-web/weblite/http/method"
	"github.com/indigo-web/weblite/http/status"
	"github.com/indigo-web/weblite/http1"
	"github.com/stretchr/testify/require"
)

func upgradeRequest(t *testing.T) *http.Request {
	req := http.NewRequest(config.Default())
	req.Method = method.GET
	require.True(t, req.Headers.Add("Host", "server.example.com"))
	require.True(t, req.Headers.Add("Upgrade", "websocket"))
	require.True(t, req.Headers.Add("Connection", "Upgrade"))
	// the sample key of RFC 6455, section 1.3
	require.True(t, req.Headers.Add("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ=="))
	return req
}

func TestUpgrade(t *testing.T) {
	req := upgradeRequest(t)
	resp := http.NewResponse(config.Default())

	require.NoError(t, NewHandshake().Upgrade(req, resp))
	require.NoError(t, resp.Err())
	require.Equal(t, status.SwitchingProtocols, resp.Code)
	require.Equal(t, "websocket", resp.Headers.Value("upgrade"))
	require.Equal(t, "Upgrade", resp.Headers.Value("connection"))
	require.Equal(t, "s3pPLMBiTxaQ9kYGzzhZRbK+xOo=", resp.Headers.Value("sec-websocket-accept"))
}

func TestUpgradeConnectionTokenList(t *testing.T) {
	req := upgradeRequest(t)
	req.Headers.Reset()
	require.True(t, req.Headers.Add("Upgrade", "WebSocket"))
	require.True(t, req.Headers.Add("Connection", "keep-alive, Upgrade"))
	require.True(t, req.Headers.Add("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ=="))

	resp := http.NewResponse(config.Default())
	require.NoError(t, NewHandshake().Upgrade(req, resp))
	require.Equal(t, status.SwitchingProtocols, resp.Code)
}

func TestUpgradeRejections(t *testing.T) {
	for name, corrupt := range map[string]func(req *http.Request){
		"not a GET": func(req *http.Request) {
			req.Method = method.POST
		},
		"no upgrade header": func(req *http.Request) {
			req.Headers.Reset()
			req.Headers.Add("Connection", "Upgrade")
			req.Headers.Add("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")
		},
		"upgrade to something else": func(req *http.Request) {
			req.Headers.Reset()
			req.Headers.Add("Upgrade", "h2c")
			req.Headers.Add("Connection", "Upgrade")
			req.Headers.Add("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")
		},
		"connection without the token": func(req *http.Request) {
			req.Headers.Reset()
			req.Headers.Add("Upgrade", "websocket")
			req.Headers.Add("Connection", "keep-alive")
			req.Headers.Add("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")
		},
		"no key": func(req *http.Request) {
			req.Headers.Reset()
			req.Headers.Add("Upgrade", "websocket")
			req.Headers.Add("Connection", "Upgrade")
		},
		"empty key": func(req *http.Request) {
			req.Headers.Reset()
			req.Headers.Add("Upgrade", "websocket")
			req.Headers.Add("Connection", "Upgrade")
			req.Headers.Add("Sec-WebSocket-Key", "")
		},
	} {
		req := upgradeRequest(t)
		corrupt(req)
		resp := http.NewResponse(config.Default())

		require.Equal(t, ErrHandshake, NewHandshake().Upgrade(req, resp), name)
		require.Zero(t, resp.Code, "%s: the response must stay untouched", name)
		require.Zero(t, resp.Headers.Len(), name)
	}
}

func TestUpgradeCustomDigest(t *testing.T) {
	h := NewHandshake().WithDigest(func(key string, dst []byte) int {
		return copy(dst, "fixed")
	})

	resp := http.NewResponse(config.Default())
	require.NoError(t, h.Upgrade(upgradeRequest(t), resp))
	require.Equal(t, "fixed", resp.Headers.Value("sec-websocket-accept"))
}

func TestUpgradeOverWire(t *testing.T) {
	raw := "GET /chat HTTP/1.1\r\n" +
		"Host: server.example.com\r\n" +
		"Upgrade: websocket\r\n" +
		"Connection: Upgrade\r\n" +
		"Sec-WebSocket-Key: dGhlIHNhbXBsZSBub25jZQ==\r\n" +
		"Sec-WebSocket-Version: 13\r\n" +
		"\r\n"

	cfg := config.Default()
	in := buffer.New(make([]byte, 4096))
	require.True(t, in.AppendString(raw))

	req := http.NewRequest(cfg)
	parser := http1.NewParser(cfg, req, &in)
	done, err := parser.Parse()
	require.NoError(t, err)
	require.True(t, done)

	resp := http.NewResponse(cfg)
	require.NoError(t, NewHandshake().Upgrade(req, resp))

	out := buffer.New(make([]byte, 4096))
	require.NoError(t, http1.Serializer{}.Write(resp, &out))
	require.Equal(t,
		"HTTP/1.1 101 Switching Protocols\r\n"+
			"Upgrade: websocket\r\n"+
			"Connection: Upgrade\r\n"+
			"Sec-WebSocket-Accept: s3pPLMBiTxaQ9kYGzzhZRbK+xOo=\r\n"+
			"\r\n",
		string(out.Unread()))
}
