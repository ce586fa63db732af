// Package gdrive wraps the file-hosting remote used for timetable documents.
package gdrive

import (
	"bytes"
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"school_admin_backend/models"
)

// Client talks to the file host. It implements services.FileHost.
type Client struct {
	svc *drive.Service
}

func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	svc, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating drive service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// Upload stores data under name inside folderID and returns the new file's
// handle. The host happily stores duplicate names; callers are responsible
// for deleting a superseded file first.
func (c *Client) Upload(ctx context.Context, data []byte, name, folderID string) (models.TimetableFile, error) {
	f, err := c.svc.Files.Create(&drive.File{
		Name:    name,
		Parents: []string{folderID},
	}).Media(bytes.NewReader(data)).Fields("id, name, webViewLink").Context(ctx).Do()
	if err != nil {
		return models.TimetableFile{}, err
	}
	return models.TimetableFile{FileName: f.Name, URL: f.WebViewLink, FileID: f.Id}, nil
}

// Delete removes the file with the given id.
func (c *Client) Delete(ctx context.Context, fileID string) error {
	return c.svc.Files.Delete(fileID).Context(ctx).Do()
}

// List returns every live file directly inside folderID.
func (c *Client) List(ctx context.Context, folderID string) ([]models.TimetableFile, error) {
	resp, err := c.svc.Files.List().
		Q(fmt.Sprintf("'%s' in parents and trashed = false", folderID)).
		Fields("files(id, name, webViewLink)").
		Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	files := make([]models.TimetableFile, 0, len(resp.Files))
	for _, f := range resp.Files {
		files = append(files, models.TimetableFile{FileName: f.Name, URL: f.WebViewLink, FileID: f.Id})
	}
	return files, nil
}
