package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hindsight-labs/hindsight/internal/cli"
	"github.com/hindsight-labs/hindsight/internal/email"
	"github.com/hindsight-labs/hindsight/internal/model"
	"github.com/hindsight-labs/hindsight/internal/receipt"
)

func filterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter [file]",
		Short: "Decide whether a raw email is worth receipt extraction",
		Long: `Run the receipt filter pipeline over one raw RFC 822 message,
read from the given file or from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFilter,
	}
}

func runFilter(_ *cobra.Command, args []string) error {
	raw, err := readMessage(args)
	if err != nil {
		return err
	}

	parsed := email.ParseRawEmail(raw)
	result := receipt.Filter(model.ReceiptEmail{
		Subject:     parsed.Subject,
		TextContent: parsed.CleanedText,
	})

	fmt.Println(cli.RenderFilterResult(parsed.Subject, result))
	return nil
}

// readMessage reads raw message content from the named file or stdin.
func readMessage(args []string) (string, error) {
	if len(args) == 1 {
		content, err := os.ReadFile(args[0]) // #nosec G304
		if err != nil {
			return "", fmt.Errorf("failed to read message file: %w", err)
		}
		return string(content), nil
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read message from stdin: %w", err)
	}
	return string(content), nil
}
