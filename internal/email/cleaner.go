package email

import (
	"regexp"
	"strings"
)

// Noise patterns removed before receipt extraction.
var (
	emailAddrRe    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	urlRe          = regexp.MustCompile(`(?i)https?://[^\s<>"{}|\\^` + "`" + `\[\]]+`)
	imageTokenRe   = regexp.MustCompile(`(?i)\[image:[^\]]+\]`)
	cidTokenRe     = regexp.MustCompile(`(?i)\[cid:[^\]]+\]`)
	footerPhraseRe = regexp.MustCompile(`(?i)(unsubscribe|manage\s+preferences|view\s+in\s+browser)`)
	sentToBlockRe  = regexp.MustCompile(`(?is)this\s+email\s+was\s+sent\s+(to|from).{0,200}$`)
	didNotBlockRe  = regexp.MustCompile(`(?is)if\s+you\s+(did\s+not|didn't).{0,150}$`)
	separatorRunRe = regexp.MustCompile(`[-=_]{10,}`)
	asteriskRunRe  = regexp.MustCompile(`\*{5,}`)
)

// CleanForReceipt removes email noise (addresses, URLs, tracking
// placeholders, footer boilerplate, separator runs) while preserving
// receipt-relevant content, then normalizes whitespace.
func CleanForReceipt(text string) string {
	text = emailAddrRe.ReplaceAllString(text, "")
	text = urlRe.ReplaceAllString(text, " ")
	text = imageTokenRe.ReplaceAllString(text, "")
	text = cidTokenRe.ReplaceAllString(text, "")
	text = footerPhraseRe.ReplaceAllString(text, "")
	text = sentToBlockRe.ReplaceAllString(text, "")
	text = didNotBlockRe.ReplaceAllString(text, "")
	text = separatorRunRe.ReplaceAllString(text, "\n")
	text = asteriskRunRe.ReplaceAllString(text, "\n")
	text = horizSpaceRe.ReplaceAllString(text, " ")
	text = newlineRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
