// Package pathmap translates between local filesystem paths and storage
// zone paths. A zone path always starts with the zone name, e.g.
// "/myzone/sub/file.txt"; the zone name is the coordinate both sides of a
// sync are projected onto before comparison.
package pathmap

import (
	"path/filepath"
	"strings"
)

// ZoneScheme marks a CLI argument as a storage zone rather than a local
// directory.
const ZoneScheme = "zone://"

// IsZone reports whether the path refers to a storage zone.
func IsZone(path string) bool {
	return strings.HasPrefix(path, ZoneScheme)
}

// StripZoneScheme removes the zone:// scheme if present.
func StripZoneScheme(path string) string {
	return strings.TrimPrefix(path, ZoneScheme)
}

// ZoneName returns the first non-empty path segment of a zone path.
func ZoneName(remote string) string {
	for _, part := range strings.Split(remote, "/") {
		if part != "" {
			return part
		}
	}
	return ""
}

// SyncKey builds the zone-relative key for a local file:
// "/" + zone + "/" + relative path, always with forward slashes.
func SyncKey(zoneName, relPath string) string {
	return "/" + zoneName + "/" + filepath.ToSlash(relPath)
}

// ToLocalPath maps a remote zone path onto the local base directory. Only
// the first leading "/zoneName/" segment is stripped; a path that repeats
// the zone name keeps the second occurrence. The result is canonicalized
// when the target exists, otherwise it is the literal concatenation. An
// empty remainder maps to the base itself.
func ToLocalPath(localBase, zoneName, remotePath string) string {
	prefix := "/" + zoneName + "/"

	rel := remotePath
	switch {
	case strings.HasPrefix(rel, prefix):
		rel = rel[len(prefix):]
	case rel == "/"+zoneName || rel == zoneName:
		rel = ""
	}

	local := strings.TrimSuffix(localBase, string(filepath.Separator))
	if rel != "" {
		local += string(filepath.Separator) + filepath.FromSlash(strings.TrimPrefix(rel, "/"))
	}

	if resolved, err := filepath.EvalSymlinks(local); err == nil {
		return resolved
	}
	return local
}
