// Package services implements the consistency core: the orchestration layers
// that keep invariants across the non-transactional remote stores.
package services

import (
	"context"
	"fmt"

	"school_admin_backend/apperr"
	"school_admin_backend/models"
	"school_admin_backend/store"
)

// FileHost is the capability set the file-hosting remote offers.
type FileHost interface {
	Upload(ctx context.Context, data []byte, name, folderID string) (models.TimetableFile, error)
	Delete(ctx context.Context, fileID string) error
	List(ctx context.Context, folderID string) ([]models.TimetableFile, error)
}

// TimetableFileService owns the replace-on-upload policy: each (category,
// class) key tracks at most one live remote file, and a new upload must
// remove the superseded file before the replacement is created. All sequences
// for the same key run under that key's lock.
type TimetableFileService struct {
	host    FileHost
	index   *store.FileIndex
	locks   *store.KeyedMutex
	folders map[string]string // category -> folder id
}

func NewTimetableFileService(host FileHost, index *store.FileIndex, locks *store.KeyedMutex, folders map[string]string) *TimetableFileService {
	return &TimetableFileService{host: host, index: index, locks: locks, folders: folders}
}

func (s *TimetableFileService) folderFor(category string) (string, error) {
	folder, ok := s.folders[category]
	if !ok {
		return "", apperr.Validation("unknown timetable category %q", category)
	}
	return folder, nil
}

func lockName(key store.FileKey) string {
	return key.Category + "/" + key.ClassID
}

// storedName prefixes the class so one folder per category can hold every
// class's file and the listing stays attributable.
func storedName(classID, fileName string) string {
	return classID + "_" + fileName
}

// Upload stores a new timetable file for the class, deleting the currently
// tracked file first if there is one. If that delete fails the upload is
// aborted: an orphaned duplicate is worse than a retryable failure. If the
// delete succeeds but the upload then fails, the slot is left empty and the
// error distinguishes that state so operators can recover.
func (s *TimetableFileService) Upload(ctx context.Context, category, classID string, data []byte, fileName string) (store.FileRecord, error) {
	if len(data) == 0 || fileName == "" {
		return store.FileRecord{}, apperr.Validation("timetable file is required")
	}
	folder, err := s.folderFor(category)
	if err != nil {
		return store.FileRecord{}, err
	}

	key := store.FileKey{Category: category, ClassID: classID}
	unlock := s.locks.Lock(lockName(key))
	defer unlock()

	replaced := false
	if old, ok := s.index.Get(key); ok {
		if err := s.host.Delete(ctx, old.FileID); err != nil {
			return store.FileRecord{}, apperr.Remote(fmt.Sprintf("delete superseded %s for %s", category, classID), err)
		}
		// The old file is gone remotely; drop it from the index before the
		// upload so a failure below leaves the index honest.
		s.index.Clear(key)
		replaced = true
	}

	f, err := s.host.Upload(ctx, data, storedName(classID, fileName), folder)
	if err != nil {
		op := fmt.Sprintf("upload %s for %s", category, classID)
		if replaced {
			return store.FileRecord{}, &apperr.PartialFailure{Op: op, Err: err}
		}
		return store.FileRecord{}, apperr.Remote(op, err)
	}

	rec := store.FileRecord{FileID: f.FileID, URL: f.URL, DisplayName: f.FileName}
	s.index.Set(key, rec)
	return rec, nil
}

// Delete removes the tracked file for the class. Untracked keys fail with
// NotFound before any call to the host.
func (s *TimetableFileService) Delete(ctx context.Context, category, classID string) error {
	if _, err := s.folderFor(category); err != nil {
		return err
	}

	key := store.FileKey{Category: category, ClassID: classID}
	unlock := s.locks.Lock(lockName(key))
	defer unlock()

	rec, ok := s.index.Get(key)
	if !ok {
		return apperr.NotFound("no tracked %s for %s", category, classID)
	}
	if err := s.host.Delete(ctx, rec.FileID); err != nil {
		return apperr.Remote(fmt.Sprintf("delete %s for %s", category, classID), err)
	}
	s.index.Clear(key)
	return nil
}

// List is a read-only passthrough of the host folder for the category,
// filtered to the class. It deliberately bypasses the index: after a restart
// or an out-of-band edit the index can be stale, and the listing is how the
// true host state is observed.
func (s *TimetableFileService) List(ctx context.Context, category, classID string) ([]models.TimetableFile, error) {
	folder, err := s.folderFor(category)
	if err != nil {
		return nil, err
	}

	var files []models.TimetableFile
	err = withRetry(ctx, func() error {
		all, err := s.host.List(ctx, folder)
		if err != nil {
			return err
		}
		files = files[:0]
		prefix := classID + "_"
		for _, f := range all {
			if len(f.FileName) >= len(prefix) && f.FileName[:len(prefix)] == prefix {
				files = append(files, f)
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Remote(fmt.Sprintf("list %s for %s", category, classID), err)
	}
	if files == nil {
		files = []models.TimetableFile{}
	}
	return files, nil
}
