package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func newURLCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the feed subscription URL",
		Long: `Print the URL a calendar client should subscribe to. With --copy the
URL is also placed on the system clipboard.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			url := cfg.FeedURL()
			fmt.Fprintln(cmd.OutOrStdout(), url)

			if copyToClipboard {
				if err := clipboard.WriteAll(url); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Copied to clipboard.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "copy the URL to the clipboard")
	return cmd
}
