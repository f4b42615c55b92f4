package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harukisawai/godchecker/config"
	"github.com/harukisawai/godchecker/infra/fetch"
	"github.com/harukisawai/godchecker/infra/logger"
	"github.com/harukisawai/godchecker/pkg/export"
	"github.com/harukisawai/godchecker/sources"
)

var collectCmd = &cobra.Command{
	Use:   "collect <source>",
	Short: "Run a single collector and print its items as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  collectOne,
}

func init() {
	rootCmd.AddCommand(collectCmd)
}

func collectOne(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logg := logger.New("collect-command")
	col := sources.ByName(args[0], fetch.New(cfg.Fetch), logg)
	if col == nil {
		return fmt.Errorf("unknown source %q", args[0])
	}
	items, err := col.Collect(ctx)
	if err != nil {
		return fmt.Errorf("collect %s: %w", args[0], err)
	}
	return export.WriteJSON(os.Stdout, items)
}
