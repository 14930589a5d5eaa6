package config

type (
	Headers struct {
		// MaxNumber limits how many header fields a single message may carry.
		// Exceeding it is reported as an error, never as silent truncation.
		MaxNumber int
	}

	RequestLine struct {
		// MaxSize bounds the total length of the request line, including the
		// method and protocol tokens.
		MaxSize int
	}

	Body struct {
		// MaxSize is the greatest Content-Length the parser accepts. It must
		// not exceed the capacity of the input buffer the parser reads from,
		// otherwise such a body could never be buffered completely.
		MaxSize int
	}
)

// Config holds construction-time limits of the codec. There is no runtime
// reconfiguration: a parser or serializer is built over a config once and
// keeps it for its whole lifetime.
//
// Modify values returned by Default() instead of constructing the struct
// manually, as zero limits reject everything.
type Config struct {
	Headers     Headers
	RequestLine RequestLine
	Body        Body
}

// Default returns a config with limits that suit small embedded-style
// deployments. Tune them to the buffer sizes actually given to the codec.
func Default() *Config {
	return &Config{
		Headers: Headers{
			MaxNumber: 32,
		},
		RequestLine: RequestLine{
			MaxSize: 2048,
		},
		Body: Body{
			MaxSize: 65536,
		},
	}
}
