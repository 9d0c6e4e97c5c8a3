// Package executor runs a computed plan against the storage API and the
// local filesystem. The plan is a snapshot: every comparison has already
// been made before the first mutation starts.
package executor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/bunnysync/bunnysync/pkg/logger"
	"github.com/bunnysync/bunnysync/pkg/planner"
	"github.com/bunnysync/bunnysync/pkg/storage"
)

const defaultConcurrency = 8

type Executor struct {
	client      storage.Client
	logger      logger.Logger
	concurrency int
}

func New(client storage.Client, logger logger.Logger, concurrency int) *Executor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Executor{
		client:      client,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Execute runs the plan through a fixed-size worker pool. Independent items
// run in any order; the first error cancels the remaining work and is
// returned. Items that already completed stay applied.
func (e *Executor) Execute(ctx context.Context, items []planner.Item) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for _, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return e.executeItem(ctx, item)
		})
	}

	return g.Wait()
}

func (e *Executor) executeItem(ctx context.Context, item planner.Item) error {
	switch item.Action {
	case planner.ActionUpload:
		return e.upload(ctx, item)
	case planner.ActionDownload:
		return e.download(ctx, item)
	case planner.ActionDeleteRemote:
		if err := e.client.DeleteObject(ctx, item.RemotePath); err != nil {
			return fmt.Errorf("delete %s: %w", item.RemotePath, err)
		}
		e.logger.Delete(item.RemotePath)
		return nil
	case planner.ActionDeleteLocal:
		if err := os.Remove(item.LocalPath); err != nil {
			return fmt.Errorf("delete %s: %w", item.LocalPath, err)
		}
		e.logger.Delete(item.LocalPath)
		return nil
	default:
		return fmt.Errorf("unknown action %q", item.Action)
	}
}

func (e *Executor) upload(ctx context.Context, item planner.Item) error {
	data, err := os.ReadFile(item.LocalPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", item.LocalPath, err)
	}
	if err := e.client.PutObject(ctx, item.RemotePath, data); err != nil {
		return fmt.Errorf("upload %s: %w", item.RemotePath, err)
	}
	e.logger.Update(item.LocalPath, item.RemotePath)
	return nil
}

func (e *Executor) download(ctx context.Context, item planner.Item) error {
	data, err := e.client.GetObject(ctx, item.RemotePath)
	if err != nil {
		return fmt.Errorf("download %s: %w", item.RemotePath, err)
	}
	if dir := filepath.Dir(item.LocalPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(item.LocalPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", item.LocalPath, err)
	}
	e.logger.Update(item.RemotePath, item.LocalPath)
	return nil
}
