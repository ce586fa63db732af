// Package store holds the process-wide mutable state: the remote file index
// and the per-key locks that serialize multi-step remote sequences. Both are
// injected into the services so tests can build fresh instances.
package store

import "sync"

// FileKey identifies one tracked timetable slot.
type FileKey struct {
	Category string
	ClassID  string
}

// FileRecord is the handle of the currently-live remote file for a key.
// Not persisted; the index is rebuilt empty on every restart.
type FileRecord struct {
	FileID      string
	URL         string
	DisplayName string
}

// FileIndex maps each (category, class) key to at most one live FileRecord.
type FileIndex struct {
	mu      sync.RWMutex
	records map[FileKey]FileRecord
}

func NewFileIndex() *FileIndex {
	return &FileIndex{records: make(map[FileKey]FileRecord)}
}

// Get returns the tracked record for key, if any.
func (ix *FileIndex) Get(key FileKey) (FileRecord, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	rec, ok := ix.records[key]
	return rec, ok
}

// Set registers rec as the single live record for key, replacing any previous
// entry.
func (ix *FileIndex) Set(key FileKey, rec FileRecord) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.records[key] = rec
}

// Clear removes the entry for key, if present.
func (ix *FileIndex) Clear(key FileKey) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	delete(ix.records, key)
}
