package planner

import (
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/bunnysync/bunnysync/pkg/pathmap"
	"github.com/bunnysync/bunnysync/pkg/storage"
)

// IsExcluded reports whether a leaf file name matches any exclusion
// pattern. Patterns are shell-style globs; matching is against the base
// name only, never the full path.
func IsExcluded(name string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// BuildRemoteMap folds a remote enumeration into a key-unique map,
// dropping directory markers and excluded names.
func BuildRemoteMap(objects []storage.Object, excludes []string) (map[string]storage.Object, error) {
	m := make(map[string]storage.Object, len(objects))
	for _, obj := range objects {
		if obj.IsDirectory {
			continue
		}
		excluded, err := IsExcluded(obj.ObjectName, excludes)
		if err != nil {
			return nil, err
		}
		if excluded {
			continue
		}
		m[obj.Key()] = obj
	}
	return m, nil
}

// BuildLocalMap folds a local enumeration into a key-unique map keyed by
// sync key, dropping directories and excluded names.
func BuildLocalMap(files []LocalFile, zoneName string, excludes []string) (map[string]LocalFile, error) {
	m := make(map[string]LocalFile, len(files))
	for _, file := range files {
		if file.IsDirectory {
			continue
		}
		excluded, err := IsExcluded(filepath.Base(file.RelPath), excludes)
		if err != nil {
			return nil, err
		}
		if excluded {
			continue
		}
		m[pathmap.SyncKey(zoneName, file.RelPath)] = file
	}
	return m, nil
}

// inSync is the metadata equivalence rule shared by both directions: the
// destination is no older than the source and the sizes match. Content is
// never inspected, so a same-size rewrite with a newer destination
// timestamp is still considered in sync.
func inSync(srcModTime, destModTime time.Time, srcSize, destSize int64) bool {
	return !destModTime.Before(srcModTime) && srcSize == destSize
}

// ComparePush plans a local-to-remote run from the two sync maps.
func ComparePush(localMap map[string]LocalFile, remoteMap map[string]storage.Object, deleteEnabled bool) []Item {
	items := []Item{}

	for key, local := range localMap {
		remote, exists := remoteMap[key]
		if exists && inSync(local.ModTime, remote.LastChanged.Time, local.Size, remote.Length) {
			continue
		}

		reason := "new file"
		if exists {
			if local.Size != remote.Length {
				reason = "size differs"
			} else {
				reason = "newer locally"
			}
		}

		items = append(items, Item{
			Action:     ActionUpload,
			Key:        key,
			LocalPath:  local.Path,
			RemotePath: key,
			Size:       local.Size,
			Reason:     reason,
		})
	}

	if deleteEnabled {
		for key, remote := range remoteMap {
			if _, exists := localMap[key]; !exists {
				items = append(items, Item{
					Action:     ActionDeleteRemote,
					Key:        key,
					RemotePath: key,
					Size:       remote.Length,
					Reason:     "missing locally",
				})
			}
		}
	}

	sortItems(items)
	return items
}

// ComparePull plans a remote-to-local run. Local destination paths are
// derived from the sync key via the path mapper.
func ComparePull(localMap map[string]LocalFile, remoteMap map[string]storage.Object, localBase, zoneName string, deleteEnabled bool) []Item {
	items := []Item{}

	for key, remote := range remoteMap {
		local, exists := localMap[key]
		if exists && inSync(remote.LastChanged.Time, local.ModTime, remote.Length, local.Size) {
			continue
		}

		reason := "new file"
		if exists {
			if remote.Length != local.Size {
				reason = "size differs"
			} else {
				reason = "newer remotely"
			}
		}

		items = append(items, Item{
			Action:     ActionDownload,
			Key:        key,
			LocalPath:  pathmap.ToLocalPath(localBase, zoneName, key),
			RemotePath: key,
			Size:       remote.Length,
			Reason:     reason,
		})
	}

	if deleteEnabled {
		for key, local := range localMap {
			if _, exists := remoteMap[key]; !exists {
				items = append(items, Item{
					Action:    ActionDeleteLocal,
					Key:       key,
					LocalPath: local.Path,
					Size:      local.Size,
					Reason:    "missing remotely",
				})
			}
		}
	}

	sortItems(items)
	return items
}

// sortItems orders the plan by action then key so output is stable
// regardless of map iteration order.
func sortItems(items []Item) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Action != items[j].Action {
			return items[i].Action < items[j].Action
		}
		return items[i].Key < items[j].Key
	})
}
