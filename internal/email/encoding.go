package email

import (
	"encoding/base64"
	"regexp"
	"strconv"
	"strings"
)

var (
	softBreakRe = regexp.MustCompile(`=\r?\n`)
	hexEscapeRe = regexp.MustCompile(`=([0-9A-Fa-f]{2})`)
	lineBreakRe = regexp.MustCompile(`\r?\n`)
)

// decodeQuotedPrintable unescapes quoted-printable content: soft line
// breaks are removed first, then =XX hex escapes. Malformed escapes are
// left in place rather than failing.
func decodeQuotedPrintable(text string) string {
	text = softBreakRe.ReplaceAllString(text, "")
	return hexEscapeRe.ReplaceAllStringFunc(text, func(m string) string {
		code, err := strconv.ParseUint(m[1:], 16, 8)
		if err != nil {
			return m
		}
		return string(rune(code))
	})
}

// decodeBase64 strips line breaks and decodes. The input is returned
// unchanged when it is not valid base64.
func decodeBase64(text string) string {
	cleaned := lineBreakRe.ReplaceAllString(text, "")
	decoded, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		if decoded, err = base64.RawStdEncoding.DecodeString(cleaned); err != nil {
			return text
		}
	}
	return string(decoded)
}

// decodeContent decodes a MIME part body per its transfer encoding.
// Unrecognized encodings (including the default 7bit) pass through.
func decodeContent(content, encoding string) string {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "quoted-printable":
		return decodeQuotedPrintable(content)
	case "base64":
		return decodeBase64(content)
	default:
		return content
	}
}
