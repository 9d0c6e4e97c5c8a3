package planner

import (
	"reflect"
	"testing"
	"time"

	"github.com/bunnysync/bunnysync/pkg/storage"
)

var (
	t0 = time.Date(2025, 2, 3, 21, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
)

func remoteFile(containerPath, name string, size int64, modTime time.Time) storage.Object {
	return storage.Object{
		Path:        containerPath,
		ObjectName:  name,
		Length:      size,
		LastChanged: storage.Timestamp{Time: modTime},
	}
}

func localFile(path, relPath string, size int64, modTime time.Time) LocalFile {
	return LocalFile{
		Path:    path,
		RelPath: relPath,
		ModTime: modTime,
		Size:    size,
	}
}

func TestComparePush(t *testing.T) {
	tests := []struct {
		name          string
		local         map[string]LocalFile
		remote        map[string]storage.Object
		deleteEnabled bool
		want          []Item
	}{
		{
			name: "new file is uploaded",
			local: map[string]LocalFile{
				"/z/a.txt": localFile("/src/a.txt", "a.txt", 10, t0),
			},
			remote: map[string]storage.Object{},
			want: []Item{
				{Action: ActionUpload, Key: "/z/a.txt", LocalPath: "/src/a.txt", RemotePath: "/z/a.txt", Size: 10, Reason: "new file"},
			},
		},
		{
			name: "skipped when remote is newer with equal size",
			local: map[string]LocalFile{
				"/z/a.txt": localFile("/src/a.txt", "a.txt", 10, t0),
			},
			remote: map[string]storage.Object{
				"/z/a.txt": remoteFile("/z/", "a.txt", 10, t1),
			},
			want: []Item{},
		},
		{
			name: "skipped when timestamps are equal with equal size",
			local: map[string]LocalFile{
				"/z/a.txt": localFile("/src/a.txt", "a.txt", 10, t0),
			},
			remote: map[string]storage.Object{
				"/z/a.txt": remoteFile("/z/", "a.txt", 10, t0),
			},
			want: []Item{},
		},
		{
			name: "uploaded when sizes differ even if remote is newer",
			local: map[string]LocalFile{
				"/z/a.txt": localFile("/src/a.txt", "a.txt", 10, t0),
			},
			remote: map[string]storage.Object{
				"/z/a.txt": remoteFile("/z/", "a.txt", 20, t1),
			},
			want: []Item{
				{Action: ActionUpload, Key: "/z/a.txt", LocalPath: "/src/a.txt", RemotePath: "/z/a.txt", Size: 10, Reason: "size differs"},
			},
		},
		{
			name: "uploaded when local is newer",
			local: map[string]LocalFile{
				"/z/a.txt": localFile("/src/a.txt", "a.txt", 10, t1),
			},
			remote: map[string]storage.Object{
				"/z/a.txt": remoteFile("/z/", "a.txt", 10, t0),
			},
			want: []Item{
				{Action: ActionUpload, Key: "/z/a.txt", LocalPath: "/src/a.txt", RemotePath: "/z/a.txt", Size: 10, Reason: "newer locally"},
			},
		},
		{
			name: "delete flag removes remote-only objects",
			local: map[string]LocalFile{
				"/z/a.txt": localFile("/src/a.txt", "a.txt", 10, t0),
				"/z/b.txt": localFile("/src/b.txt", "b.txt", 5, t1),
			},
			remote: map[string]storage.Object{
				"/z/a.txt": remoteFile("/z/", "a.txt", 10, t1),
				"/z/c.txt": remoteFile("/z/", "c.txt", 7, t0),
			},
			deleteEnabled: true,
			want: []Item{
				{Action: ActionDeleteRemote, Key: "/z/c.txt", RemotePath: "/z/c.txt", Size: 7, Reason: "missing locally"},
				{Action: ActionUpload, Key: "/z/b.txt", LocalPath: "/src/b.txt", RemotePath: "/z/b.txt", Size: 5, Reason: "new file"},
			},
		},
		{
			name: "delete flag disabled leaves remote-only objects alone",
			local: map[string]LocalFile{
				"/z/a.txt": localFile("/src/a.txt", "a.txt", 10, t0),
			},
			remote: map[string]storage.Object{
				"/z/a.txt": remoteFile("/z/", "a.txt", 10, t1),
				"/z/c.txt": remoteFile("/z/", "c.txt", 7, t0),
			},
			want: []Item{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComparePush(tt.local, tt.remote, tt.deleteEnabled)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComparePush() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// A push that copied everything is a no-op when run again against the same
// local tree.
func TestComparePushIdempotent(t *testing.T) {
	local := map[string]LocalFile{
		"/z/a.txt":     localFile("/src/a.txt", "a.txt", 10, t0),
		"/z/sub/b.txt": localFile("/src/sub/b.txt", "sub/b.txt", 20, t0),
	}
	remote := map[string]storage.Object{
		"/z/a.txt":     remoteFile("/z/", "a.txt", 10, t0),
		"/z/sub/b.txt": remoteFile("/z/sub/", "b.txt", 20, t1),
	}

	got := ComparePush(local, remote, true)
	if len(got) != 0 {
		t.Errorf("second push produced %d actions, want 0: %+v", len(got), got)
	}
}

func TestComparePull(t *testing.T) {
	tests := []struct {
		name          string
		local         map[string]LocalFile
		remote        map[string]storage.Object
		deleteEnabled bool
		want          []Item
	}{
		{
			name:  "new remote file is downloaded",
			local: map[string]LocalFile{},
			remote: map[string]storage.Object{
				"/z/sub/a.txt": remoteFile("/z/sub/", "a.txt", 10, t0),
			},
			want: []Item{
				{Action: ActionDownload, Key: "/z/sub/a.txt", LocalPath: "/dst/sub/a.txt", RemotePath: "/z/sub/a.txt", Size: 10, Reason: "new file"},
			},
		},
		{
			name: "skipped when local is newer with equal size",
			local: map[string]LocalFile{
				"/z/a.txt": localFile("/dst/a.txt", "a.txt", 10, t1),
			},
			remote: map[string]storage.Object{
				"/z/a.txt": remoteFile("/z/", "a.txt", 10, t0),
			},
			want: []Item{},
		},
		{
			name: "downloaded when remote is newer",
			local: map[string]LocalFile{
				"/z/a.txt": localFile("/dst/a.txt", "a.txt", 10, t0),
			},
			remote: map[string]storage.Object{
				"/z/a.txt": remoteFile("/z/", "a.txt", 10, t1),
			},
			want: []Item{
				{Action: ActionDownload, Key: "/z/a.txt", LocalPath: "/dst/a.txt", RemotePath: "/z/a.txt", Size: 10, Reason: "newer remotely"},
			},
		},
		{
			name: "delete flag removes local-only files",
			local: map[string]LocalFile{
				"/z/a.txt": localFile("/dst/a.txt", "a.txt", 10, t1),
				"/z/b.txt": localFile("/dst/b.txt", "b.txt", 5, t0),
			},
			remote: map[string]storage.Object{
				"/z/a.txt": remoteFile("/z/", "a.txt", 10, t0),
			},
			deleteEnabled: true,
			want: []Item{
				{Action: ActionDeleteLocal, Key: "/z/b.txt", LocalPath: "/dst/b.txt", Size: 5, Reason: "missing remotely"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComparePull(tt.local, tt.remote, "/dst", "z", tt.deleteEnabled)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComparePull() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIsExcluded(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		want     bool
	}{
		{"file.txt", nil, false},
		{"file.txt", []string{"*.txt"}, true},
		{"file.txt", []string{"*.log"}, false},
		{"file.txt", []string{"*.log", "file.*"}, true},
		{".bunnysync", []string{".bunnysync"}, true},
		{"data.tar.gz", []string{"*.gz"}, true},
	}

	for _, tt := range tests {
		got, err := IsExcluded(tt.name, tt.patterns)
		if err != nil {
			t.Fatalf("IsExcluded(%q, %v): %v", tt.name, tt.patterns, err)
		}
		if got != tt.want {
			t.Errorf("IsExcluded(%q, %v) = %v, want %v", tt.name, tt.patterns, got, tt.want)
		}
	}
}

func TestBuildRemoteMap(t *testing.T) {
	objects := []storage.Object{
		remoteFile("/z/", "a.txt", 10, t0),
		remoteFile("/z/", "skip.log", 5, t0),
		{Path: "/z/", ObjectName: "sub", IsDirectory: true},
		remoteFile("/z/sub/", "b.txt", 20, t0),
	}

	m, err := BuildRemoteMap(objects, []string{"*.log"})
	if err != nil {
		t.Fatal(err)
	}

	wantKeys := []string{"/z/a.txt", "/z/sub/b.txt"}
	if len(m) != len(wantKeys) {
		t.Fatalf("got %d entries, want %d: %v", len(m), len(wantKeys), m)
	}
	for _, key := range wantKeys {
		if _, ok := m[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
}

func TestBuildLocalMap(t *testing.T) {
	files := []LocalFile{
		localFile("/src/a.txt", "a.txt", 10, t0),
		localFile("/src/skip.log", "skip.log", 5, t0),
		{Path: "/src/sub", RelPath: "sub", IsDirectory: true},
		localFile("/src/sub/b.txt", "sub/b.txt", 20, t0),
	}

	m, err := BuildLocalMap(files, "z", []string{"*.log"})
	if err != nil {
		t.Fatal(err)
	}

	wantKeys := []string{"/z/a.txt", "/z/sub/b.txt"}
	if len(m) != len(wantKeys) {
		t.Fatalf("got %d entries, want %d: %v", len(m), len(wantKeys), m)
	}
	for _, key := range wantKeys {
		if _, ok := m[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
}
