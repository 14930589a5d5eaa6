package proto

// Proto enumerates the protocol versions the codec speaks. Everything else,
// HTTP/2 included, is rejected at parse time.
type Proto uint8

const (
	Unknown Proto = iota
	HTTP10
	HTTP11
)

func (p Proto) String() string {
	lut := [...]string{HTTP10: "HTTP/1.0", HTTP11: "HTTP/1.1"}
	if int(p) >= len(lut) {
		return ""
	}

	return lut[p]
}

const (
	tokenLength = len("HTTP/x.x")
	majorOffset = len("HTTP/x") - 1
	minorOffset = len("HTTP/x.x") - 1
	scheme      = "HTTP/"
)

// FromBytes parses a protocol token of the exact form HTTP/x.x.
func FromBytes(raw []byte) Proto {
	if len(raw) != tokenLength || string(raw[:majorOffset]) != scheme || raw[majorOffset+1] != '.' {
		return Unknown
	}

	return Parse(raw[majorOffset]-'0', raw[minorOffset]-'0')
}

func Parse(major, minor uint8) Proto {
	if major == 1 {
		switch minor {
		case 0:
			return HTTP10
		case 1:
			return HTTP11
		}
	}

	return Unknown
}
