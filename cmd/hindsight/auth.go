package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hindsight-labs/hindsight/internal/common"
	"github.com/hindsight-labs/hindsight/internal/config"
	"github.com/hindsight-labs/hindsight/internal/gmail"
)

func authCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with Gmail",
		Long: `Authenticate with Gmail for receipt ingestion.

This command will:
1. Start a local web server
2. Open the Google consent page in your browser
3. Save the resulting token for future use

Requires gmail.client_id and gmail.client_secret in the config file.`,
		RunE: runAuth,
	}
}

// gmailOAuthConfig assembles OAuth settings from viper.
func gmailOAuthConfig() (gmail.OAuth2Config, error) {
	clientID := viper.GetString("gmail.client_id")
	clientSecret := viper.GetString("gmail.client_secret")
	if clientID == "" || clientSecret == "" {
		return gmail.OAuth2Config{}, common.NewUserError(
			"gmail.client_id and gmail.client_secret must be set in the config file",
			common.ErrMissingConfig)
	}

	tokenFile := viper.GetString("gmail.token_file")
	if tokenFile == "" {
		tokenFile = config.DefaultTokenPath()
	} else {
		tokenFile = config.ExpandPath(tokenFile)
	}

	return gmail.OAuth2Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenFile:    tokenFile,
	}, nil
}

func runAuth(cmd *cobra.Command, _ []string) error {
	oauthConfig, err := gmailOAuthConfig()
	if err != nil {
		return err
	}

	if _, err := gmail.GetOrCreateToken(cmd.Context(), oauthConfig); err != nil {
		return fmt.Errorf("gmail authentication failed: %w", err)
	}

	fmt.Println("Authenticated with Gmail.")
	return nil
}
