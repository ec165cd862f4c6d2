package email

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantHeaders map[string]string
		wantBody    string
	}{
		{
			name: "simple headers",
			raw:  "From: a@b.example\nSubject: Hi\n\nBody text",
			wantHeaders: map[string]string{
				"from":    "a@b.example",
				"subject": "Hi",
			},
			wantBody: "Body text",
		},
		{
			name: "folded header unfolds with a space",
			raw:  "Subject: Your\n receipt from\n\tAcme\n\n",
			wantHeaders: map[string]string{
				"subject": "Your receipt from Acme",
			},
			wantBody: "",
		},
		{
			name: "crlf line endings",
			raw:  "Subject: Hi\r\n\r\nBody",
			wantHeaders: map[string]string{
				"subject": "Hi",
			},
			wantBody: "Body",
		},
		{
			name: "no blank line means no body",
			raw:  "Subject: Hi\nFrom: a@b.example",
			wantHeaders: map[string]string{
				"subject": "Hi",
				"from":    "a@b.example",
			},
			wantBody: "",
		},
		{
			name:        "line without a colon is dropped",
			raw:         "garbage line\nSubject: Hi\n\nBody",
			wantHeaders: map[string]string{"subject": "Hi"},
			wantBody:    "Body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers, bodyStart := parseHeaders(tt.raw)

			for k, v := range tt.wantHeaders {
				assert.Equal(t, v, headers[k], "header %q", k)
			}
			assert.Equal(t, tt.wantBody, tt.raw[bodyStart:])
		})
	}
}

func TestParseDateHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "rfc1123z",
			header: "Tue, 05 Aug 2025 10:30:00 -0700",
			want:   "2025-08-05",
		},
		{
			name:   "trailing comment stripped",
			header: "Tue, 05 Aug 2025 10:30:00 -0700 (PDT)",
			want:   "2025-08-05",
		},
		{
			name:   "single digit day",
			header: "Tue, 5 Aug 2025 10:30:00 -0700",
			want:   "2025-08-05",
		},
		{
			name:   "rfc822",
			header: "05 Aug 25 10:30 MST",
			want:   "2025-08-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDateHeader(tt.header))
		})
	}

	t.Run("garbage falls back to today", func(t *testing.T) {
		assert.Equal(t, time.Now().Format("2006-01-02"), parseDateHeader("not a date"))
	})

	t.Run("empty falls back to today", func(t *testing.T) {
		assert.Equal(t, time.Now().Format("2006-01-02"), parseDateHeader(""))
	})
}

func TestParseRawEmail_PlainText(t *testing.T) {
	raw := "From: Acme Store <store@acme.example>\n" +
		"To: jane@example.com\n" +
		"Subject: Your receipt\n" +
		"Date: Tue, 05 Aug 2025 10:30:00 -0700\n" +
		"Message-ID: <abc123@acme.example>\n" +
		"\n" +
		"Order #12345\nTotal: $42.99\n"

	parsed := ParseRawEmail(raw)

	assert.Equal(t, "<abc123@acme.example>", parsed.MessageID)
	assert.Equal(t, "Acme Store <store@acme.example>", parsed.From)
	assert.Equal(t, "jane@example.com", parsed.To)
	assert.Equal(t, "Your receipt", parsed.Subject)
	assert.Equal(t, "2025-08-05", parsed.Date)
	assert.Equal(t, "text/plain", parsed.ContentType)
	assert.Contains(t, parsed.TextPlain, "Total: $42.99")
	assert.Contains(t, parsed.CleanedText, "Total: $42.99")
	assert.Empty(t, parsed.TextHTML)
}

func TestParseRawEmail_MultipartAlternative(t *testing.T) {
	raw := strings.Join([]string{
		"From: Acme Store <store@acme.example>",
		"Subject: Your receipt from Acme",
		"Date: Tue, 05 Aug 2025 10:30:00 -0700",
		`Content-Type: multipart/alternative; boundary="PART-42"`,
		"",
		"--PART-42",
		"Content-Type: text/plain; charset=UTF-8",
		"Content-Transfer-Encoding: quoted-printable",
		"",
		"Total: $42.99=",
		" for your order.",
		"",
		"--PART-42",
		"Content-Type: text/html; charset=UTF-8",
		"Content-Transfer-Encoding: base64",
		"",
		"PGRpdj5Ub3RhbDogJDQyLjk5PC9kaXY+",
		"",
		"--PART-42--",
		"",
	}, "\n")

	parsed := ParseRawEmail(raw)

	assert.Equal(t, "Your receipt from Acme", parsed.Subject)
	assert.Equal(t, "2025-08-05", parsed.Date)
	// Quoted-printable soft break joined the two lines.
	assert.Contains(t, parsed.TextPlain, "Total: $42.99 for your order.")
	// Base64 HTML part decoded alongside.
	assert.Contains(t, parsed.TextHTML, "<div>Total: $42.99</div>")
	// Plain text wins for the cleaned output.
	assert.Contains(t, parsed.CleanedText, "Total: $42.99 for your order.")
}

func TestParseRawEmail_HTMLOnly(t *testing.T) {
	raw := "Subject: Order update\n" +
		"Content-Type: text/html; charset=UTF-8\n" +
		"\n" +
		"<html><body><p>Total: $19.99</p><p>Thanks!</p></body></html>\n"

	parsed := ParseRawEmail(raw)

	assert.Empty(t, parsed.TextPlain)
	assert.Contains(t, parsed.TextHTML, "<p>Total: $19.99</p>")
	assert.Contains(t, parsed.CleanedText, "Total: $19.99")
	assert.Contains(t, parsed.CleanedText, "Thanks!")
	assert.NotContains(t, parsed.CleanedText, "<p>")
}

func TestParseRawEmail_NestedMultipart(t *testing.T) {
	raw := strings.Join([]string{
		"Subject: Nested receipt",
		`Content-Type: multipart/mixed; boundary="OUTER"`,
		"",
		"--OUTER",
		`Content-Type: multipart/alternative; boundary="INNER"`,
		"",
		"--INNER",
		"Content-Type: text/plain",
		"",
		"Order total $15.00",
		"",
		"--INNER--",
		"",
		"--OUTER--",
		"",
	}, "\n")

	parsed := ParseRawEmail(raw)

	assert.Contains(t, parsed.TextPlain, "Order total $15.00")
	assert.Contains(t, parsed.CleanedText, "Order total $15.00")
}

func TestParseRawEmail_MissingContentTypeDefaultsToPlain(t *testing.T) {
	parsed := ParseRawEmail("Subject: Hi\n\nJust some text")

	assert.Equal(t, "text/plain", parsed.ContentType)
	assert.Equal(t, "Just some text", parsed.TextPlain)
}

func TestParseRawEmail_NeverPanicsOnMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"Content-Type: multipart/mixed; boundary=\"X\"\n\n--X\n--X--",
		"Content-Type: multipart/mixed\n\nno boundary declared",
		strings.Repeat("A", 10_000),
	}

	for _, raw := range inputs {
		assert.NotPanics(t, func() { ParseRawEmail(raw) })
	}
}

func TestExtractBoundary(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        string
	}{
		{
			name:        "quoted boundary",
			contentType: `multipart/alternative; boundary="abc-123"`,
			want:        "abc-123",
		},
		{
			name:        "unquoted boundary",
			contentType: "multipart/mixed; boundary=xyz",
			want:        "xyz",
		},
		{
			name:        "case-insensitive key",
			contentType: `multipart/mixed; BOUNDARY="Zz"`,
			want:        "Zz",
		},
		{
			name:        "no boundary",
			contentType: "text/plain",
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractBoundary(tt.contentType))
		})
	}
}

func TestExtractReceiptText(t *testing.T) {
	t.Run("subject prefixed", func(t *testing.T) {
		parsed := ParseRawEmail("Subject: Your receipt\n\nTotal: $10.00")
		got := ExtractReceiptText(parsed)
		require.True(t, strings.HasPrefix(got, "Subject: Your receipt\n\n"))
		assert.Contains(t, got, "Total: $10.00")
	})

	t.Run("no subject", func(t *testing.T) {
		parsed := ParseRawEmail("From: a@b.example\n\nTotal: $10.00")
		assert.Equal(t, parsed.CleanedText, ExtractReceiptText(parsed))
	})
}
