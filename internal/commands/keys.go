package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skinledger/skinledger/internal/keys"
	"github.com/skinledger/skinledger/internal/skinport"
)

func newKeysCommand(g *globalFlags) *cobra.Command {
	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage Skinport API keys",
	}
	keysCmd.AddCommand(newKeysSaveCommand(g))
	return keysCmd
}

func newKeysSaveCommand(g *globalFlags) *cobra.Command {
	var creds skinport.Credentials

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the API client id and secret to the env file",
		Long:  "Save the API client id and secret to the env file. Both are found at https://skinport.com/account.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := keys.Save(g.envFile, creds); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved API keys to %s\n", g.envFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&creds.ClientID, "client-id", "", "API client id (required)")
	cmd.Flags().StringVar(&creds.ClientSecret, "client-secret", "", "API client secret (required)")
	_ = cmd.MarkFlagRequired("client-id")
	_ = cmd.MarkFlagRequired("client-secret")

	return cmd
}
