package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hindsight-labs/hindsight/internal/cli"
	"github.com/hindsight-labs/hindsight/internal/common"
	"github.com/hindsight-labs/hindsight/internal/config"
	"github.com/hindsight-labs/hindsight/internal/email"
	"github.com/hindsight-labs/hindsight/internal/gmail"
	"github.com/hindsight-labs/hindsight/internal/model"
	"github.com/hindsight-labs/hindsight/internal/receipt"
	"github.com/hindsight-labs/hindsight/internal/storage"
)

func ingestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Fetch and triage receipt email from Gmail",
		Long: `Fetch receipt-like messages from Gmail, parse them, run the
receipt filter, and record the outcomes in the local ledger.
Messages already in the ledger are skipped unless --reprocess is set.`,
		RunE: runIngest,
	}

	cmd.Flags().Int("since-days", 90, "how far back to search")
	cmd.Flags().Int("max", 100, "maximum number of messages to list")
	cmd.Flags().Bool("reprocess", false, "re-run the filter on already-seen messages")

	return cmd
}

func runIngest(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	sinceDays, _ := cmd.Flags().GetInt("since-days")
	maxResults, _ := cmd.Flags().GetInt("max")
	reprocess, _ := cmd.Flags().GetBool("reprocess")

	store, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	oauthConfig, err := gmailOAuthConfig()
	if err != nil {
		return err
	}
	client, err := gmail.NewClient(ctx, oauthConfig)
	if err != nil {
		return err
	}

	ids, err := client.ListMessageIDs(ctx, sinceDays, maxResults)
	if err != nil {
		return err
	}
	common.LogInfo("Listed candidate messages", common.Fields{
		"count":      len(ids),
		"since_days": sinceDays,
	})

	bar := progressbar.NewOptions(len(ids),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Triaging receipt email...[reset]"),
	)

	var accepted, rejected, skipped, failed int
	for _, id := range ids {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		_ = bar.Add(1)

		if !reprocess {
			seen, seenErr := store.IsProcessed(ctx, id)
			if seenErr != nil {
				return seenErr
			}
			if seen {
				common.LogDebug("Skipping already-processed message", common.Fields{"message_id": id})
				skipped++
				continue
			}
		}

		candidate, ingestErr := ingestMessage(ctx, client, id)
		if ingestErr != nil {
			slog.Warn("Failed to ingest message",
				"message_id", id,
				"retryable", common.IsRetryable(ingestErr),
				"error", ingestErr)
			failed++
			continue
		}

		if saveErr := store.SaveCandidate(ctx, *candidate); saveErr != nil {
			return saveErr
		}
		if candidate.ShouldProcess {
			accepted++
		} else {
			rejected++
		}
	}
	fmt.Println()

	fmt.Println(cli.TitleStyle.Render("Ingest summary"))
	fmt.Printf("  %s %d\n", cli.SuccessStyle.Render("accepted:"), accepted)
	fmt.Printf("  %s %d\n", cli.ErrorStyle.Render("rejected:"), rejected)
	fmt.Printf("  %s %d\n", cli.SubtleStyle.Render("skipped:"), skipped)
	if failed > 0 {
		fmt.Printf("  %s %d\n", cli.WarningStyle.Render("failed:"), failed)
	}
	return nil
}

// ingestMessage fetches, parses, and filters one message.
func ingestMessage(ctx context.Context, client *gmail.Client, id string) (*model.ReceiptCandidate, error) {
	raw, err := client.FetchRaw(ctx, id)
	if err != nil {
		return nil, err
	}

	parsed := email.ParseRawEmail(raw)
	result := receipt.Filter(model.ReceiptEmail{
		Subject:     parsed.Subject,
		TextContent: parsed.CleanedText,
	})

	candidate := &model.ReceiptCandidate{
		MessageID:       id,
		From:            parsed.From,
		Subject:         parsed.Subject,
		Date:            parsed.Date,
		ShouldProcess:   result.ShouldProcess,
		Confidence:      result.Confidence,
		RejectionReason: result.RejectionReason,
		IngestedAt:      time.Now(),
	}
	if result.ShouldProcess {
		candidate.ReceiptText = email.ExtractReceiptText(parsed)
	}
	return candidate, nil
}

// openLedger opens and migrates the ingest ledger database.
func openLedger(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

func candidatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "candidates",
		Short: "List accepted receipt candidates from the ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			candidates, err := store.ListAccepted(ctx)
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				fmt.Println("No accepted receipt candidates yet. Run 'hindsight ingest' first.")
				return nil
			}

			fmt.Println(cli.TitleStyle.Render("Accepted receipt candidates"))
			for _, c := range candidates {
				subject := c.Subject
				if subject == "" {
					subject = "(no subject)"
				}
				fmt.Printf("%s  %s  %s\n",
					cli.SubtleStyle.Render(c.Date),
					cli.BoldStyle.Render(subject),
					cli.SubtleStyle.Render(fmt.Sprintf("confidence %.2f", c.Confidence)))
			}
			return nil
		},
	}
}
