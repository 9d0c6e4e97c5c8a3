package planner

import "time"

// LocalFile is one node of the local scan.
type LocalFile struct {
	Path        string // absolute path
	RelPath     string // relative to the scan root
	IsDirectory bool
	ModTime     time.Time // UTC
	Size        int64
}

type Action string

const (
	ActionUpload       Action = "upload"
	ActionDownload     Action = "download"
	ActionDeleteRemote Action = "delete-remote"
	ActionDeleteLocal  Action = "delete-local"
)

// Item is one planned operation. The plan is fully computed before any item
// executes, so a run's decisions never observe its own mutations.
type Item struct {
	Action     Action
	Key        string // sync key, e.g. "/myzone/sub/file.txt"
	LocalPath  string // source for uploads, destination for downloads
	RemotePath string // zone path of the remote object
	Size       int64
	Reason     string
}

type Options struct {
	DeleteEnabled bool
	Excludes      []string
}
