// Package planner computes the set of transfer and delete operations
// needed to bring one side of a sync up to date with the other. Change
// detection is metadata-only: an entry is in sync when the destination is
// no older than the source and the byte lengths match.
package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bunnysync/bunnysync/pkg/pathmap"
	"github.com/bunnysync/bunnysync/pkg/storage"
)

type Planner struct {
	client storage.Client
}

func New(client storage.Client) *Planner {
	return &Planner{client: client}
}

// PlanPush plans a local-to-remote run. remoteRoot is the scheme-stripped
// zone path, e.g. "myzone" or "myzone/sub".
func (p *Planner) PlanPush(ctx context.Context, localRoot, remoteRoot string, opts Options) ([]Item, error) {
	localMap, remoteMap, err := p.buildMaps(ctx, localRoot, remoteRoot, opts)
	if err != nil {
		return nil, err
	}
	return ComparePush(localMap, remoteMap, opts.DeleteEnabled), nil
}

// PlanPull plans a remote-to-local run. Download destinations are derived
// from each object's sync key, rooted at localRoot.
func (p *Planner) PlanPull(ctx context.Context, localRoot, remoteRoot string, opts Options) ([]Item, error) {
	localMap, remoteMap, err := p.buildMaps(ctx, localRoot, remoteRoot, opts)
	if err != nil {
		return nil, err
	}
	zoneName := pathmap.ZoneName(remoteRoot)
	return ComparePull(localMap, remoteMap, localRoot, zoneName, opts.DeleteEnabled), nil
}

// buildMaps enumerates both sides and projects them onto sync keys. Both
// enumerations complete before any comparison, so a plan is a snapshot.
func (p *Planner) buildMaps(ctx context.Context, localRoot, remoteRoot string, opts Options) (map[string]LocalFile, map[string]storage.Object, error) {
	objects, err := storage.ListAll(ctx, p.client, remoteRoot)
	if err != nil {
		return nil, nil, fmt.Errorf("list remote %s: %w", remoteRoot, err)
	}
	remoteMap, err := BuildRemoteMap(objects, opts.Excludes)
	if err != nil {
		return nil, nil, err
	}

	localFiles, err := ListLocal(localRoot)
	if err != nil {
		return nil, nil, fmt.Errorf("list local %s: %w", localRoot, err)
	}
	zoneName := pathmap.ZoneName(remoteRoot)
	localMap, err := BuildLocalMap(localFiles, zoneName, opts.Excludes)
	if err != nil {
		return nil, nil, err
	}

	slog.Debug("sync maps built",
		"local", len(localMap),
		"remote", len(remoteMap),
		"zone", zoneName)

	return localMap, remoteMap, nil
}
