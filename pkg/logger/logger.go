package logger

import "fmt"

// Logger receives one call per executed (or planned, in dry-run mode) sync
// action.
type Logger interface {
	Update(source, dest string)
	Delete(path string)
}

// SyncLogger writes one action line per transfer or delete to stdout.
type SyncLogger struct {
	IsDryRun bool
	IsQuiet  bool
}

func (l *SyncLogger) Update(source, dest string) {
	if l.IsQuiet {
		return
	}
	if l.IsDryRun {
		fmt.Printf("Would update: %s -> %s\n", source, dest)
	} else {
		fmt.Printf("Updated: %s -> %s\n", source, dest)
	}
}

func (l *SyncLogger) Delete(path string) {
	if l.IsQuiet {
		return
	}
	if l.IsDryRun {
		fmt.Printf("Would delete: %s\n", path)
	} else {
		fmt.Printf("Deleted: %s\n", path)
	}
}

// NullLogger discards all action lines.
type NullLogger struct{}

func (l *NullLogger) Update(source, dest string) {}

func (l *NullLogger) Delete(path string) {}
