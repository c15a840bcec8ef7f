package gsheet

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Revision identifies the latest Drive revision of a spreadsheet, used to skip
// runs when the source has not changed since the last successful run.
type Revision struct {
	ID       string    `json:"revision"`
	Modified time.Time `json:"modified"`
}

// LatestRevision walks the Drive revision list for the file and returns the
// most recently modified revision.
func (c *Client) LatestRevision(ctx context.Context, fileID string) (*Revision, error) {
	if c.drive == nil {
		return nil, fmt.Errorf("drive service not initialised")
	}

	latest := Revision{}
	page := ""

	for {
		call := c.drive.Revisions.List(fileID).Fields("revisions(id,modifiedTime)", "nextPageToken").Context(ctx)
		if page != "" {
			call = call.PageToken(page)
		}

		revisions, err := call.Do()
		if err != nil {
			return nil, err
		}

		for _, revision := range revisions.Revisions {
			modified, err := time.Parse(time.RFC3339, revision.ModifiedTime)
			if err != nil {
				return nil, err
			}

			if latest.Modified.Before(modified) {
				latest.ID = revision.Id
				latest.Modified = modified
			}
		}

		if page = revisions.NextPageToken; page == "" {
			break
		}
	}

	if latest.Modified.IsZero() {
		return nil, fmt.Errorf("unable to identify latest revision for file ID %s", fileID)
	}

	return &latest, nil
}

// revisionFile is the cache of the last processed source revision, stored in
// the working directory.
func revisionFile(workdir, fileID string) string {
	return filepath.Join(workdir, fmt.Sprintf("%s.revision", fileID))
}

// LoadRevision reads the cached revision for the file, returning nil if no run
// has been recorded yet.
func LoadRevision(workdir, fileID string) (*Revision, error) {
	b, err := os.ReadFile(revisionFile(workdir, fileID))
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	revision := Revision{}
	if err := json.Unmarshal(b, &revision); err != nil {
		return nil, err
	}

	return &revision, nil
}

// StoreRevision caches the revision processed by a successful run.
func StoreRevision(workdir string, fileID string, revision *Revision) error {
	b, err := json.MarshalIndent(revision, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(workdir, 0770); err != nil {
		return err
	}

	return os.WriteFile(revisionFile(workdir, fileID), b, 0600)
}
