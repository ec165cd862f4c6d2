package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hindsight-labs/hindsight/internal/cli"
	"github.com/hindsight-labs/hindsight/internal/email"
)

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a raw email into structured fields and receipt text",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().Bool("receipt-text", false, "print only the extracted receipt text")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	raw, err := readMessage(args)
	if err != nil {
		return err
	}

	parsed := email.ParseRawEmail(raw)

	if onlyText, _ := cmd.Flags().GetBool("receipt-text"); onlyText {
		fmt.Println(email.ExtractReceiptText(parsed))
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Parsed message"))
	for _, field := range []struct{ name, value string }{
		{"Message-ID", parsed.MessageID},
		{"From", parsed.From},
		{"To", parsed.To},
		{"Subject", parsed.Subject},
		{"Date", parsed.Date},
		{"Content-Type", parsed.ContentType},
	} {
		fmt.Printf("%s %s\n", cli.BoldStyle.Render(field.name+":"), field.value)
	}

	fmt.Println()
	fmt.Println(cli.SubtitleStyle.Render("Receipt text"))
	fmt.Println(email.ExtractReceiptText(parsed))
	return nil
}
