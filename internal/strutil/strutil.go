package strutil

// EqualFold compares two strings ASCII-case-insensitively. Unlike
// strings.EqualFold it folds letters only, which is all HTTP header
// matching needs.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if a[i]|0x20 != b[i]|0x20 {
			return false
		}
	}

	return true
}

// TrimWS strips leading and trailing spaces and horizontal tabs.
func TrimWS(str string) string {
	start := 0
	for ; start < len(str); start++ {
		if str[start] != ' ' && str[start] != '\t' {
			break
		}
	}

	end := len(str)
	for ; end > start; end-- {
		if str[end-1] != ' ' && str[end-1] != '\t' {
			break
		}
	}

	return str[start:end]
}

// HasToken reports whether a comma-separated list contains the token,
// compared case-insensitively with surrounding whitespace ignored.
func HasToken(list, token string) bool {
	for len(list) > 0 {
		var elem string
		elem, list = cutByte(list, ',')

		if EqualFold(TrimWS(elem), token) {
			return true
		}
	}

	return false
}

func cutByte(str string, sep byte) (prefix, postfix string) {
	for i := 0; i < len(str); i++ {
		if str[i] == sep {
			return str[:i], str[i+1:]
		}
	}

	return str, ""
}
