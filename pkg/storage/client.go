package storage

import (
	"context"
	"strings"
	"time"
)

// Timestamp is a bunny.net Edge Storage timestamp. The API returns naive
// local-less timestamps ("2006-01-02T15:04:05.999"); they are always UTC.
type Timestamp struct {
	time.Time
}

const timestampLayout = "2006-01-02T15:04:05"

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.ParseInLocation(timestampLayout, s, time.UTC)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Time.Format(timestampLayout) + `"`), nil
}

// Object is one entry of a storage zone directory listing.
type Object struct {
	Guid            string    `json:"Guid"`
	StorageZoneName string    `json:"StorageZoneName"`
	Path            string    `json:"Path"` // containing pseudo-directory, ends with "/"
	ObjectName      string    `json:"ObjectName"`
	Length          int64     `json:"Length"`
	LastChanged     Timestamp `json:"LastChanged"`
	IsDirectory     bool      `json:"IsDirectory"`
	DateCreated     Timestamp `json:"DateCreated"`
}

// Key returns the zone-relative path identifying the object, e.g.
// "/myzone/sub/file.txt". Path + ObjectName is unique within a zone.
func (o Object) Key() string {
	return o.Path + o.ObjectName
}

// Client is the Edge Storage API surface the sync engine needs. The API has
// no recursive listing call; ListObjects returns the immediate children of
// one pseudo-directory only.
type Client interface {
	ListObjects(ctx context.Context, path string) ([]Object, error)
	GetObject(ctx context.Context, path string) ([]byte, error)
	PutObject(ctx context.Context, path string, data []byte) error
	DeleteObject(ctx context.Context, path string) error
}
