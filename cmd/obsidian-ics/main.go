// Package main implements the obsidian-ics daemon: it serves a vault's
// diary notes as a subscribable iCalendar feed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/obsidian-ics/internal/config"
	"github.com/taigrr/obsidian-ics/internal/feed"
	"github.com/taigrr/obsidian-ics/internal/log"
	"github.com/taigrr/obsidian-ics/internal/pathfilter"
	"github.com/taigrr/obsidian-ics/internal/server"
	"github.com/taigrr/obsidian-ics/internal/vault"
)

var (
	configPath string
	portFlag   int
	bindFlag   string
	debugFlag  bool
)

func main() {
	root := &cobra.Command{
		Use:   "obsidian-ics [vault-path]",
		Short: "Serve a vault's diary notes as a calendar feed",
		Long: `obsidian-ics scans an Obsidian vault for daily diary notes, turns
their headings (and optionally front matter) into all-day calendar
events, and serves the result on a local HTTP endpoint that any
calendar client can subscribe to.

The feed is unauthenticated by design: it is meant for loopback use.
Binding to a non-loopback address exposes diary contents to the
network.`,
		Example: `obsidian-ics ~/vaults/journal`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runServe,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file (default: user config dir)")
	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	root.Flags().IntVar(&portFlag, "port", 0, "override the configured HTTP port")
	root.Flags().StringVar(&bindFlag, "bind", "", "override the configured bind address")

	root.AddCommand(newURLCmd(), newMCPCmd())

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	if debugFlag {
		log.SetLevel(log.LevelDebug)
	}

	vaultPath, err := vaultPathFromArgs(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	v := vault.New(vaultPath, pathfilter.New())
	srv := server.New(cfg, feed.NewBuilder(v, cfg))
	if err := srv.Start(); err != nil {
		return fmt.Errorf("cannot start feed server: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Subscribe to your diary at %s\n", cfg.FeedURL())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	for sig := range sigCh {
		if sig != syscall.SIGHUP {
			log.Info("shutting down", "signal", sig.String())
			return srv.Stop()
		}

		// Settings reload. Stop before starting the replacement so two
		// listeners never serve different settings at once; if the new
		// bind fails the server stays stopped until the operator fixes
		// the settings and sends another SIGHUP.
		newCfg, err := loadConfig()
		if err != nil {
			log.Error("settings reload failed, keeping current server", err)
			continue
		}
		if err := srv.Stop(); err != nil {
			log.Error("error stopping feed server", err)
		}
		cfg = newCfg
		srv = server.New(cfg, feed.NewBuilder(v, cfg))
		if err := srv.Start(); err != nil {
			log.Error("feed server did not restart; fix settings and send SIGHUP again", err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Settings reloaded, feed now at %s\n", cfg.FeedURL())
	}
	return nil
}

// loadConfig reads the config file, applying any CLI overrides.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("cannot locate user config dir: %w", err)
		}
		path = filepath.Join(dir, "obsidian-ics", "config.yaml")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if portFlag != 0 {
		cfg.Port = portFlag
	}
	if bindFlag != "" {
		cfg.BindAddress = bindFlag
	}
	cfg.Normalize()
	return cfg, nil
}

func vaultPathFromArgs(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return wd, nil
}
