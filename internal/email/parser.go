// Package email parses raw RFC 822 messages into clean, classifiable
// text. It handles folded headers, nested multipart MIME bodies,
// quoted-printable and base64 transfer encodings, and HTML-only
// messages, without any external MIME or HTML library. Parsing never
// fails: malformed structure degrades to empty or pass-through text.
package email

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hindsight-labs/hindsight/internal/model"
)

// maxMultipartDepth caps boundary recursion to guard against
// pathological nesting.
const maxMultipartDepth = 5

var boundaryRe = regexp.MustCompile(`(?i)boundary=["']?([^"';\s]+)["']?`)

// parseHeaders reads RFC 822 headers up to the first blank line.
// Header names map to lower-case keys; continuation lines are unfolded
// with a single space. Returns the headers and the offset where the
// body begins.
func parseHeaders(raw string) (map[string]string, int) {
	headers := make(map[string]string)
	var curName, curValue string

	flush := func() {
		if curName != "" {
			headers[strings.ToLower(curName)] = curValue
		}
	}

	pos := 0
	for pos < len(raw) {
		next := len(raw)
		line := raw[pos:]
		if idx := strings.IndexByte(line, '\n'); idx >= 0 {
			line = line[:idx]
			next = pos + idx + 1
		}
		line = strings.TrimSuffix(line, "\r")

		if line == "" {
			flush()
			return headers, next
		}

		if (line[0] == ' ' || line[0] == '\t') && curName != "" {
			curValue += " " + strings.TrimSpace(line)
			pos = next
			continue
		}

		flush()
		curName, curValue = splitHeaderLine(line)
		pos = next
	}

	flush()
	return headers, len(raw)
}

// splitHeaderLine splits "Name: value"; lines without a name yield "".
func splitHeaderLine(line string) (name, value string) {
	idx := strings.IndexByte(line, ':')
	if idx <= 0 {
		return "", ""
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:])
}

// extractBoundary pulls the boundary token from a Content-Type value.
func extractBoundary(contentType string) string {
	m := boundaryRe.FindStringSubmatch(contentType)
	if m == nil {
		return ""
	}
	return m[1]
}

// mimePart is one decoded section of a multipart body.
type mimePart struct {
	contentType string
	content     string
}

// parseMultipartBody splits a body on the boundary delimiter and
// decodes each section per its own transfer encoding. Empty sections
// and the terminal marker are discarded.
func parseMultipartBody(body, boundary string) []mimePart {
	var parts []mimePart

	for _, section := range strings.Split(body, "--"+boundary) {
		trimmed := strings.TrimSpace(section)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}

		headers, bodyStart := parseHeaders(trimmed)
		partBody := strings.TrimSpace(trimmed[bodyStart:])

		contentType := headers["content-type"]
		if contentType == "" {
			contentType = "text/plain"
		}
		encoding := headers["content-transfer-encoding"]
		if encoding == "" {
			encoding = "7bit"
		}

		parts = append(parts, mimePart{
			contentType: contentType,
			content:     decodeContent(partBody, encoding),
		})
	}

	return parts
}

// collectParts walks a multipart tree accumulating plain-text and HTML
// leaves. Nested multipart parts recurse up to maxMultipartDepth.
func collectParts(body, boundary string, depth int, plain, html *strings.Builder) {
	if depth > maxMultipartDepth {
		return
	}

	for _, part := range parseMultipartBody(body, boundary) {
		partType := strings.ToLower(part.contentType)
		switch {
		case strings.Contains(partType, "multipart"):
			if nested := extractBoundary(part.contentType); nested != "" {
				collectParts(part.content, nested, depth+1, plain, html)
			}
		case strings.Contains(partType, "text/plain"):
			plain.WriteString(part.content)
			plain.WriteString("\n")
		case strings.Contains(partType, "text/html"):
			html.WriteString(part.content)
			html.WriteString("\n")
		}
	}
}

// dateLayouts are tried in order against the Date header.
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	time.RFC822Z,
	time.RFC822,
}

var dateCommentRe = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// parseDateHeader converts a Date header to an ISO calendar date.
// Malformed headers fall back to the current date; parsing never fails.
func parseDateHeader(header string) string {
	value := dateCommentRe.ReplaceAllString(strings.TrimSpace(header), "")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return time.Now().Format("2006-01-02")
}

// ParseRawEmail converts raw RFC 822 content, as produced by an email
// provider's raw message format, into structured text. Plain-text
// parts are preferred; HTML-only messages are stripped to text.
func ParseRawEmail(raw string) model.ParsedRawEmail {
	headers, bodyStart := parseHeaders(raw)
	body := raw[bodyStart:]

	contentType := headers["content-type"]
	if contentType == "" {
		contentType = "text/plain"
	}
	encoding := headers["content-transfer-encoding"]
	if encoding == "" {
		encoding = "7bit"
	}

	var plain, html strings.Builder
	if strings.Contains(strings.ToLower(contentType), "multipart") {
		if boundary := extractBoundary(contentType); boundary != "" {
			collectParts(body, boundary, 1, &plain, &html)
		}
	} else {
		decoded := decodeContent(body, encoding)
		if strings.Contains(strings.ToLower(contentType), "text/html") {
			html.WriteString(decoded)
		} else {
			plain.WriteString(decoded)
		}
	}

	textPlain := plain.String()
	textHTML := html.String()

	rawText := textPlain
	if rawText == "" {
		rawText = StripHTML(textHTML)
	}
	cleanedText := CleanForReceipt(rawText)

	return model.ParsedRawEmail{
		MessageID:   headers["message-id"],
		From:        headers["from"],
		To:          headers["to"],
		Subject:     headers["subject"],
		Date:        parseDateHeader(headers["date"]),
		ContentType: contentType,
		TextPlain:   strings.TrimSpace(textPlain),
		TextHTML:    strings.TrimSpace(textHTML),
		CleanedText: cleanedText,
	}
}

// ExtractReceiptText returns the cleaned message text prefixed with the
// subject when one is present, ready for downstream extraction.
func ExtractReceiptText(parsed model.ParsedRawEmail) string {
	if parsed.Subject == "" {
		return parsed.CleanedText
	}
	return fmt.Sprintf("Subject: %s\n\n%s", parsed.Subject, parsed.CleanedText)
}
