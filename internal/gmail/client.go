package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/hindsight-labs/hindsight/internal/common"
)

// Client wraps the Gmail API for receipt ingestion.
type Client struct {
	svc *gmailapi.Service
}

// NewClient builds a Gmail client from stored OAuth2 credentials,
// refreshing the token if needed.
func NewClient(ctx context.Context, config OAuth2Config) (*Client, error) {
	token, err := LoadToken(config.TokenFile)
	if err != nil {
		return nil, common.NewUserError("not authenticated with Gmail; run 'hindsight auth' first", err)
	}

	token, err = RefreshTokenIfNeeded(ctx, config, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMailConnection, err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmailapi.GmailReadonlyScope},
	}

	svc, err := gmailapi.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMailConnection, err)
	}

	return &Client{svc: svc}, nil
}

// BuildReceiptQuery builds the Gmail search query for receipt-like
// email: known transactional sender and subject patterns within the
// given window.
func BuildReceiptQuery(sinceDays int) string {
	filters := []string{
		// Sender patterns
		"from:(noreply OR no-reply OR receipt OR order OR confirmation OR shipping OR auto-confirm)",
		// Subject patterns
		`subject:(receipt OR order OR confirmation OR "thank you for your" OR shipping OR invoice OR "your purchase")`,
		// Time filter
		fmt.Sprintf("newer_than:%dd", sinceDays),
	}
	return strings.Join(filters, " ")
}

// ListMessageIDs returns the IDs of messages matching the receipt query.
func (c *Client) ListMessageIDs(ctx context.Context, sinceDays, maxResults int) ([]string, error) {
	resp, err := c.svc.Users.Messages.List("me").
		Q(BuildReceiptQuery(sinceDays)).
		MaxResults(int64(maxResults)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list Gmail messages: %w", err)
	}

	ids := make([]string, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		ids = append(ids, m.Id)
	}
	return ids, nil
}

// FetchRaw fetches one message in raw RFC 822 form, decoding the
// transport-layer base64url wrapping. Transient failures are retried
// with backoff.
func (c *Client) FetchRaw(ctx context.Context, messageID string) (string, error) {
	var msg *gmailapi.Message

	err := common.WithRetry(ctx, func() error {
		var fetchErr error
		msg, fetchErr = c.svc.Users.Messages.Get("me", messageID).
			Format("raw").
			Context(ctx).
			Do()
		return fetchErr
	}, common.RetryOptions{MaxAttempts: 3})
	if err != nil {
		return "", fmt.Errorf("failed to get Gmail message %s: %w", messageID, err)
	}

	raw, err := decodeBase64URL(msg.Raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode raw message %s: %w", messageID, err)
	}
	return raw, nil
}

// decodeBase64URL decodes base64url content with or without padding.
func decodeBase64URL(data string) (string, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		decoded, err = base64.URLEncoding.DecodeString(data)
		if err != nil {
			return "", err
		}
	}
	return string(decoded), nil
}
