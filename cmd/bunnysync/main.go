package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bunnysync/bunnysync/internal/config"
	"github.com/bunnysync/bunnysync/pkg/executor"
	"github.com/bunnysync/bunnysync/pkg/logger"
	"github.com/bunnysync/bunnysync/pkg/pathmap"
	"github.com/bunnysync/bunnysync/pkg/planner"
	"github.com/bunnysync/bunnysync/pkg/storage"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	apiKey      string
	region      string
	dryRun      bool
	deleteFlag  bool
	excludes    []string
	quiet       bool
	verbose     bool
	concurrency int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bunnysync <source> <destination>",
		Short: "Synchronize a local directory with a bunny.net storage zone",
		Long: `bunnysync synchronizes a local directory tree with a bunny.net storage
zone in either direction, comparing entries by size and modification time.
Storage zones carry the zone:// prefix, e.g.:

  bunnysync ./public zone://my-zone
  bunnysync zone://my-zone ./public`,
		Version:       fmt.Sprintf("%s (commit: %s, built at: %s)", version, commit, date),
		Args:          cobra.ExactArgs(2),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVar(&apiKey, "api-key", os.Getenv("BUNNYSYNC_API_KEY"),
		"bunny.net storage API key (env BUNNYSYNC_API_KEY)")
	rootCmd.Flags().StringVar(&region, "region", defaultRegion(),
		"Storage region: "+strings.Join(storage.Regions(), ", "))
	rootCmd.Flags().BoolVar(&dryRun, "dryrun", false, "Show operations without executing")
	rootCmd.Flags().BoolVar(&deleteFlag, "delete", false, "Delete destination files missing from the source")
	rootCmd.Flags().StringSliceVar(&excludes, "exclude", nil, "Exclude files matching pattern, * is a wildcard (multiple allowed)")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress per-file output")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", 8, "Number of concurrent transfers")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultRegion() string {
	if r := os.Getenv("BUNNYSYNC_REGION"); r != "" {
		return r
	}
	return "de"
}

func run(cmd *cobra.Command, args []string) error {
	setupLogging()

	source := args[0]
	destination := args[1]

	fileCfg, err := config.Load()
	if err != nil {
		return err
	}
	apiKey, region, excludes = fileCfg.Apply(apiKey, region, excludes)

	if apiKey == "" {
		return fmt.Errorf("no API key: pass --api-key, set BUNNYSYNC_API_KEY or add api_key to %s", config.FileName)
	}

	endpoint, err := storage.EndpointForRegion(region)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client := storage.NewHTTPClient(endpoint, apiKey)
	plnr := planner.New(client)
	opts := planner.Options{
		DeleteEnabled: deleteFlag,
		Excludes:      excludes,
	}

	var items []planner.Item
	switch {
	case !pathmap.IsZone(source) && pathmap.IsZone(destination):
		if _, err := os.Stat(source); err != nil {
			return fmt.Errorf("source path does not exist: %s", source)
		}
		remoteRoot := pathmap.StripZoneScheme(destination)
		items, err = plnr.PlanPush(ctx, source, remoteRoot, opts)

	case pathmap.IsZone(source) && !pathmap.IsZone(destination):
		if _, err := os.Stat(destination); err != nil {
			return fmt.Errorf("destination path does not exist: %s", destination)
		}
		remoteRoot := pathmap.StripZoneScheme(source)
		items, err = plnr.PlanPull(ctx, destination, remoteRoot, opts)

	default:
		return fmt.Errorf("exactly one of source and destination must be a zone:// path")
	}
	if err != nil {
		return err
	}

	syncLogger := &logger.SyncLogger{
		IsDryRun: dryRun,
		IsQuiet:  quiet,
	}

	if dryRun {
		for _, item := range items {
			describe(syncLogger, item)
		}
		return nil
	}

	exec := executor.New(client, syncLogger, concurrency)
	if err := exec.Execute(ctx, items); err != nil {
		return err
	}

	if !quiet {
		fmt.Printf("Sync complete: %s\n", summarize(items))
	}
	return nil
}

// describe replays the decision for one item through the logger without
// touching the filesystem or the network.
func describe(l logger.Logger, item planner.Item) {
	switch item.Action {
	case planner.ActionUpload:
		l.Update(item.LocalPath, item.RemotePath)
	case planner.ActionDownload:
		l.Update(item.RemotePath, item.LocalPath)
	case planner.ActionDeleteRemote:
		l.Delete(item.RemotePath)
	case planner.ActionDeleteLocal:
		l.Delete(item.LocalPath)
	}
}

func summarize(items []planner.Item) string {
	var transferred, deleted int
	var bytes uint64
	for _, item := range items {
		switch item.Action {
		case planner.ActionUpload, planner.ActionDownload:
			transferred++
			bytes += uint64(item.Size)
		case planner.ActionDeleteRemote, planner.ActionDeleteLocal:
			deleted++
		}
	}
	return fmt.Sprintf("%d files transferred (%s), %d deleted",
		transferred, humanize.Bytes(bytes), deleted)
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   level,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}
