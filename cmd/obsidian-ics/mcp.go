package main

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/taigrr/obsidian-ics/internal/config"
	"github.com/taigrr/obsidian-ics/internal/feed"
	"github.com/taigrr/obsidian-ics/internal/pathfilter"
	"github.com/taigrr/obsidian-ics/internal/vault"
)

// Shared state for the MCP tool handlers, initialized by runMCP.
var (
	vaultService *vault.Service
	feedBuilder  *feed.Builder
	feedConfig   *config.Config
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp [vault-path]",
		Short: "Expose the diary feed to MCP clients over stdio",
		Long: `Run a Model Context Protocol server that lets MCP-compatible tools
inspect the diary feed: list the matched diary files, fetch the
subscription URL, or generate the calendar document directly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	vaultPath, err := vaultPathFromArgs(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	feedConfig = cfg
	vaultService = vault.New(vaultPath, pathfilter.New())
	feedBuilder = feed.NewBuilder(vaultService, cfg)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "obsidian-ics",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running MCP server: %w", err)
	}
	return nil
}
