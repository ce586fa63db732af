package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"school_admin_backend/models"
)

func init() {
	// Keep backoff out of test wall time.
	retryBaseDelay = time.Millisecond
}

// fakeHost is an in-memory file host keyed by folder.
type fakeHost struct {
	mu          sync.Mutex
	files       map[string][]models.TimetableFile
	nextID      int
	uploadErr   error
	deleteErr   error
	listErr     error
	deleteCalls int
	uploadCalls int
}

func newFakeHost() *fakeHost {
	return &fakeHost{files: make(map[string][]models.TimetableFile)}
}

func (f *fakeHost) Upload(_ context.Context, _ []byte, name, folderID string) (models.TimetableFile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploadCalls++
	if f.uploadErr != nil {
		return models.TimetableFile{}, f.uploadErr
	}
	f.nextID++
	file := models.TimetableFile{
		FileName: name,
		URL:      fmt.Sprintf("https://host.example/%d", f.nextID),
		FileID:   fmt.Sprintf("file-%d", f.nextID),
	}
	f.files[folderID] = append(f.files[folderID], file)
	return file, nil
}

func (f *fakeHost) Delete(_ context.Context, fileID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for folder, files := range f.files {
		kept := files[:0]
		for _, file := range files {
			if file.FileID != fileID {
				kept = append(kept, file)
			}
		}
		f.files[folder] = kept
	}
	return nil
}

func (f *fakeHost) List(_ context.Context, folderID string) ([]models.TimetableFile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.TimetableFile(nil), f.files[folderID]...), nil
}

func (f *fakeHost) fileIDs(folderID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := []string{}
	for _, file := range f.files[folderID] {
		ids = append(ids, file.FileID)
	}
	return ids
}

// fakeRangeStore mirrors the remote spreadsheet: each tab is a grid and
// updates overwrite from the range anchor.
type fakeRangeStore struct {
	mu   sync.Mutex
	tabs map[string][][]string
	err  error
}

func newFakeRangeStore() *fakeRangeStore {
	return &fakeRangeStore{tabs: make(map[string][][]string)}
}

func tabOf(rng string) string {
	return strings.SplitN(rng, "!", 2)[0]
}

func (f *fakeRangeStore) GetRange(_ context.Context, rng string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	src := f.tabs[tabOf(rng)]
	out := make([][]string, len(src))
	for i, row := range src {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (f *fakeRangeStore) AppendRow(_ context.Context, rng string, row []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	tab := tabOf(rng)
	f.tabs[tab] = append(f.tabs[tab], append([]string(nil), row...))
	return nil
}

func (f *fakeRangeStore) UpdateRange(_ context.Context, rng string, rows [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	tab := tabOf(rng)
	existing := f.tabs[tab]
	for i, row := range rows {
		copied := append([]string(nil), row...)
		if i < len(existing) {
			existing[i] = copied
		} else {
			existing = append(existing, copied)
		}
	}
	f.tabs[tab] = existing
	return nil
}

func (f *fakeRangeStore) ClearRange(_ context.Context, rng string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.tabs, tabOf(rng))
	return nil
}

func (f *fakeRangeStore) snapshot(tab string) [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	src := f.tabs[tab]
	out := make([][]string, len(src))
	for i, row := range src {
		out[i] = append([]string(nil), row...)
	}
	return out
}
