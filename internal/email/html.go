package email

import (
	"regexp"
	"strconv"
	"strings"
)

// Tag and entity patterns, applied in declaration order.
var (
	styleBlockRe   = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	scriptBlockRe  = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	htmlCommentRe  = regexp.MustCompile(`(?s)<!--.*?-->`)
	headBlockRe    = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	blockTagRe     = regexp.MustCompile(`(?i)</?(div|p|br|hr|tr|table|h[1-6])[^>]*>`)
	listItemRe     = regexp.MustCompile(`(?i)<li[^>]*>`)
	anyTagRe       = regexp.MustCompile(`<[^>]+>`)
	decimalRefRe   = regexp.MustCompile(`&#(\d+);`)
	hexRefRe       = regexp.MustCompile(`&#x([0-9A-Fa-f]+);`)
	horizSpaceRe   = regexp.MustCompile(`[ \t]+`)
	newlineRunRe   = regexp.MustCompile(`\n{3,}`)
	namedEntities  = []struct{ entity, replacement string }{
		{`(?i)&nbsp;`, " "},
		{`(?i)&amp;`, "&"},
		{`(?i)&lt;`, "<"},
		{`(?i)&gt;`, ">"},
		{`(?i)&quot;`, `"`},
		{`(?i)&#39;`, "'"},
		{`(?i)&apos;`, "'"},
	}
	namedEntityRes = compileEntities()
)

func compileEntities() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(namedEntities))
	for i, e := range namedEntities {
		res[i] = regexp.MustCompile(e.entity)
	}
	return res
}

// StripHTML converts HTML email content to readable text. Style,
// script, comment, and head blocks are dropped entirely; block-level
// tags become newlines; list items become bullets; entities are
// decoded; whitespace is normalized. Applying it to its own output is
// a no-op.
func StripHTML(html string) string {
	text := styleBlockRe.ReplaceAllString(html, "")
	text = scriptBlockRe.ReplaceAllString(text, "")
	text = htmlCommentRe.ReplaceAllString(text, "")
	text = headBlockRe.ReplaceAllString(text, "")
	text = blockTagRe.ReplaceAllString(text, "\n")
	text = listItemRe.ReplaceAllString(text, "\n• ")
	text = anyTagRe.ReplaceAllString(text, " ")

	for i, re := range namedEntityRes {
		text = re.ReplaceAllString(text, namedEntities[i].replacement)
	}
	text = decimalRefRe.ReplaceAllStringFunc(text, func(m string) string {
		code, err := strconv.ParseInt(decimalRefRe.FindStringSubmatch(m)[1], 10, 32)
		if err != nil {
			return m
		}
		return string(rune(code))
	})
	text = hexRefRe.ReplaceAllStringFunc(text, func(m string) string {
		code, err := strconv.ParseInt(hexRefRe.FindStringSubmatch(m)[1], 16, 32)
		if err != nil {
			return m
		}
		return string(rune(code))
	})

	text = horizSpaceRe.ReplaceAllString(text, " ")
	text = newlineRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
