package storage

import (
	"context"
	"log/slog"
)

// ListAll enumerates every object under root by repeatedly listing one
// pseudo-directory at a time. The API has no deep-listing call, so this
// keeps an explicit worklist of pending directory paths instead of
// recursing. Any listing error aborts the whole enumeration.
func ListAll(ctx context.Context, client Client, root string) ([]Object, error) {
	var objects []Object
	pending := []string{root}

	for len(pending) > 0 {
		next := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := client.ListObjects(ctx, next)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDirectory {
				pending = append(pending, entry.Path+entry.ObjectName+"/")
			}
		}
		objects = append(objects, entries...)
	}

	slog.Debug("remote enumeration complete", "root", root, "objects", len(objects))
	return objects, nil
}
